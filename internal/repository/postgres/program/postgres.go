package program

import (
	"context"
	"errors"

	clientdomain "care-app-go/internal/domain/client"
	programdomain "care-app-go/internal/domain/program"
	"care-app-go/internal/repository/postgres/pgerr"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, program *programdomain.Program) error {
	return r.db.WithContext(ctx).Create(program).Error
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*programdomain.Program, error) {
	var result programdomain.Program
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || pgerr.IsInvalidTextRepresentation(err) {
			return nil, programdomain.ErrProgramNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]programdomain.Program, error) {
	var result []programdomain.Program
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&result).Error; err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, program *programdomain.Program) error {
	return r.db.WithContext(ctx).
		Model(&programdomain.Program{}).
		Where("id = ?", program.ID).
		Updates(map[string]interface{}{
			"name":        program.Name,
			"description": program.Description,
			"logo":        program.Logo,
			"updated_at":  program.UpdatedAt,
		}).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&programdomain.Program{}, "id = ?", id).Error
}

func (r *PostgresRepository) CountClients(ctx context.Context, programID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&clientdomain.Client{}).
		Where("program_id = ?", programID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
