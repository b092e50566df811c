package inmemory

import (
	"context"

	reviewdomain "care-app-go/internal/domain/review"
)

type ReviewRepository struct {
	store *Store
}

func (r *ReviewRepository) Create(ctx context.Context, review *reviewdomain.Review) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.clients[review.ClientID]; !ok {
		return reviewdomain.ErrClientReference
	}

	review.CreatedAt = stampNow(review.CreatedAt)
	r.store.reviews[review.ID] = *review
	r.store.reviewOrder = append(r.store.reviewOrder, review.ID)
	return nil
}

// ListByClient returns reviews newest first, matching the postgres
// repository's created_at desc order.
func (r *ReviewRepository) ListByClient(ctx context.Context, clientID string) ([]reviewdomain.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]reviewdomain.Review, 0)
	for i := len(r.store.reviewOrder) - 1; i >= 0; i-- {
		stored := r.store.reviews[r.store.reviewOrder[i]]
		if stored.ClientID == clientID {
			result = append(result, stored)
		}
	}
	return result, nil
}
