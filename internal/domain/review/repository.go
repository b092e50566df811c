package review

import "context"

type Repository interface {
	Create(ctx context.Context, review *Review) error
	ListByClient(ctx context.Context, clientID string) ([]Review, error)
}
