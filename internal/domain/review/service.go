package review

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create appends a review with the comment stored exactly as provided.
func (s *Service) Create(ctx context.Context, clientID, comment string) (*Review, error) {
	if strings.TrimSpace(clientID) == "" {
		return nil, ErrClientReference
	}
	if strings.TrimSpace(comment) == "" {
		return nil, ErrCommentRequired
	}

	result := Review{
		ID:       uuid.NewString(),
		ClientID: clientID,
		Comment:  comment,
	}
	if err := s.repo.Create(ctx, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *Service) ListByClient(ctx context.Context, clientID string) ([]Review, error) {
	return s.repo.ListByClient(ctx, clientID)
}
