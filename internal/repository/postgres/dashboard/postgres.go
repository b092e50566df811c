package dashboard

import (
	"context"

	clientdomain "care-app-go/internal/domain/client"
	dashboarddomain "care-app-go/internal/domain/dashboard"
	programdomain "care-app-go/internal/domain/program"
	reviewdomain "care-app-go/internal/domain/review"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CountPrograms(ctx context.Context) (int64, error) {
	return r.count(ctx, &programdomain.Program{})
}

func (r *PostgresRepository) CountClients(ctx context.Context) (int64, error) {
	return r.count(ctx, &clientdomain.Client{})
}

func (r *PostgresRepository) CountReviews(ctx context.Context) (int64, error) {
	return r.count(ctx, &reviewdomain.Review{})
}

func (r *PostgresRepository) count(ctx context.Context, model interface{}) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(model).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// TopProgramsByEnrollment ranks programs by enrolled client count. The
// left join keeps programs with zero clients in the ranking.
func (r *PostgresRepository) TopProgramsByEnrollment(ctx context.Context, limit int) ([]dashboarddomain.ProgramEnrollment, error) {
	query := "SELECT p.name AS name, COUNT(c.id) AS total_clients " +
		"FROM programs p " +
		"LEFT JOIN clients c ON c.program_id = p.id " +
		"GROUP BY p.id, p.name " +
		"ORDER BY total_clients DESC, p.name ASC " +
		"LIMIT ?"

	var rows []struct {
		Name         string `gorm:"column:name"`
		TotalClients int64  `gorm:"column:total_clients"`
	}
	if err := r.db.WithContext(ctx).Raw(query, limit).Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]dashboarddomain.ProgramEnrollment, 0, len(rows))
	for _, row := range rows {
		result = append(result, dashboarddomain.ProgramEnrollment{
			Name:         row.Name,
			TotalClients: row.TotalClients,
		})
	}
	return result, nil
}
