package client

import (
	"context"
	"errors"
	"strings"
	"time"

	clientdomain "care-app-go/internal/domain/client"
	"care-app-go/internal/repository/postgres/pgerr"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, client *clientdomain.Client) error {
	err := r.db.WithContext(ctx).Create(client).Error
	// a malformed program id fails the uuid cast before the FK check;
	// both mean the referenced program does not exist
	if pgerr.IsForeignKeyViolation(err) || pgerr.IsInvalidTextRepresentation(err) {
		return clientdomain.ErrProgramReference
	}
	return err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*clientdomain.Client, error) {
	var result clientdomain.Client
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || pgerr.IsInvalidTextRepresentation(err) {
			return nil, clientdomain.ErrClientNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *PostgresRepository) GetDetailByID(ctx context.Context, id string) (*clientdomain.Detail, error) {
	type detailRow struct {
		ID                 string    `gorm:"column:id"`
		FullName           string    `gorm:"column:full_name"`
		Email              *string   `gorm:"column:email"`
		Phone              *string   `gorm:"column:phone"`
		ProgramID          string    `gorm:"column:program_id"`
		CreatedAt          time.Time `gorm:"column:created_at"`
		UpdatedAt          time.Time `gorm:"column:updated_at"`
		ProgramName        string    `gorm:"column:program_name"`
		ProgramDescription string    `gorm:"column:program_description"`
	}

	var row detailRow
	err := r.db.WithContext(ctx).
		Table("clients").
		Select("clients.*, programs.name AS program_name, programs.description AS program_description").
		Joins("join programs on programs.id = clients.program_id").
		Where("clients.id = ?", id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || pgerr.IsInvalidTextRepresentation(err) {
		return nil, clientdomain.ErrClientNotFound
	}
	if err != nil {
		return nil, err
	}

	return &clientdomain.Detail{
		Client: clientdomain.Client{
			ID:        row.ID,
			FullName:  row.FullName,
			Email:     row.Email,
			Phone:     row.Phone,
			ProgramID: row.ProgramID,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		},
		ProgramName:        row.ProgramName,
		ProgramDescription: row.ProgramDescription,
	}, nil
}

func (r *PostgresRepository) List(ctx context.Context, filter clientdomain.ListFilter) ([]clientdomain.Client, error) {
	query := r.db.WithContext(ctx).Model(&clientdomain.Client{})

	if filter.ProgramID != "" {
		query = query.Where("program_id = ?", filter.ProgramID)
	}
	if filter.FullName != "" {
		query = query.Where("full_name ILIKE ?", containsPattern(filter.FullName))
	}
	if filter.Email != "" {
		query = query.Where("email ILIKE ?", containsPattern(filter.Email))
	}
	if filter.Phone != "" {
		query = query.Where("phone ILIKE ?", containsPattern(filter.Phone))
	}

	var result []clientdomain.Client
	if err := query.Order("created_at asc").Find(&result).Error; err != nil {
		// a malformed programId filter matches nothing
		if pgerr.IsInvalidTextRepresentation(err) {
			return []clientdomain.Client{}, nil
		}
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, client *clientdomain.Client) error {
	err := r.db.WithContext(ctx).
		Model(&clientdomain.Client{}).
		Where("id = ?", client.ID).
		Updates(map[string]interface{}{
			"full_name":  client.FullName,
			"email":      client.Email,
			"phone":      client.Phone,
			"program_id": client.ProgramID,
			"updated_at": client.UpdatedAt,
		}).Error
	if pgerr.IsForeignKeyViolation(err) || pgerr.IsInvalidTextRepresentation(err) {
		return clientdomain.ErrProgramReference
	}
	return err
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&clientdomain.Client{}, "id = ?", id).Error
}

// containsPattern builds a case-insensitive substring pattern, escaping
// LIKE metacharacters in the user-provided term.
func containsPattern(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(term) + "%"
}
