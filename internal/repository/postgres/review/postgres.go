package review

import (
	"context"

	reviewdomain "care-app-go/internal/domain/review"
	"care-app-go/internal/repository/postgres/pgerr"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, review *reviewdomain.Review) error {
	err := r.db.WithContext(ctx).Create(review).Error
	// a malformed client id fails the uuid cast before the FK check;
	// both mean the referenced client does not exist
	if pgerr.IsForeignKeyViolation(err) || pgerr.IsInvalidTextRepresentation(err) {
		return reviewdomain.ErrClientReference
	}
	return err
}

func (r *PostgresRepository) ListByClient(ctx context.Context, clientID string) ([]reviewdomain.Review, error) {
	var result []reviewdomain.Review
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at desc").
		Find(&result).Error; err != nil {
		// a malformed client id matches nothing
		if pgerr.IsInvalidTextRepresentation(err) {
			return []reviewdomain.Review{}, nil
		}
		return nil, err
	}
	return result, nil
}
