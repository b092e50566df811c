package program

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

// Create stores the program fields exactly as provided; the name must
// not be blank.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Program, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrNameRequired
	}

	result := Program{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Logo:        input.Logo,
	}
	if err := s.repo.Create(ctx, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Program, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Program, error) {
	return s.repo.List(ctx)
}

// Update applies only the fields present in the patch. Present-but-empty
// description and logo clear the stored value; name may not be cleared.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (*Program, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, ErrNameRequired
		}
		result.Name = *patch.Name
	}
	if patch.Description != nil {
		result.Description = *patch.Description
	}
	if patch.Logo != nil {
		result.Logo = *patch.Logo
	}
	result.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, result); err != nil {
		return nil, err
	}

	return result, nil
}

// Delete refuses to remove a program that still has enrolled clients.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.repo.CountClients(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrProgramHasClients
	}

	return s.repo.Delete(ctx, id)
}
