package client

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores the client fields exactly as provided. The full name
// and program id must not be blank; blank optional fields become NULL.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Client, error) {
	if strings.TrimSpace(input.FullName) == "" {
		return nil, ErrFullNameRequired
	}
	if strings.TrimSpace(input.ProgramID) == "" {
		return nil, ErrProgramRequired
	}

	result := Client{
		ID:        uuid.NewString(),
		FullName:  input.FullName,
		Email:     normalizeOptional(input.Email),
		Phone:     normalizeOptional(input.Phone),
		ProgramID: input.ProgramID,
	}
	if err := s.repo.Create(ctx, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Detail, error) {
	return s.repo.GetDetailByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Client, error) {
	return s.repo.List(ctx, filter)
}

// Update applies only the fields present in the patch. Present-but-empty
// email and phone clear to NULL; full name and program id may not be
// cleared. A program change against a missing program surfaces as
// ErrProgramReference from the store.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (*Client, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.FullName != nil {
		if strings.TrimSpace(*patch.FullName) == "" {
			return nil, ErrFullNameRequired
		}
		result.FullName = *patch.FullName
	}
	if patch.Email != nil {
		result.Email = normalizeOptional(patch.Email)
	}
	if patch.Phone != nil {
		result.Phone = normalizeOptional(patch.Phone)
	}
	if patch.ProgramID != nil {
		if strings.TrimSpace(*patch.ProgramID) == "" {
			return nil, ErrProgramRequired
		}
		result.ProgramID = *patch.ProgramID
	}
	result.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, result); err != nil {
		return nil, err
	}

	return result, nil
}

// Delete is unconditional; the store cascades removal of owned reviews.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// normalizeOptional maps blank optional values to NULL and leaves
// anything else untouched.
func normalizeOptional(value *string) *string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}
	return value
}
