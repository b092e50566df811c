package inmemory

import (
	"context"
	"sort"

	dashboarddomain "care-app-go/internal/domain/dashboard"
)

type DashboardRepository struct {
	store *Store
}

func (r *DashboardRepository) CountPrograms(ctx context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return int64(len(r.store.programs)), nil
}

func (r *DashboardRepository) CountClients(ctx context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return int64(len(r.store.clients)), nil
}

func (r *DashboardRepository) CountReviews(ctx context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return int64(len(r.store.reviews)), nil
}

func (r *DashboardRepository) TopProgramsByEnrollment(ctx context.Context, limit int) ([]dashboarddomain.ProgramEnrollment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	counts := make(map[string]int64, len(r.store.programs))
	for _, stored := range r.store.clients {
		counts[stored.ProgramID]++
	}

	result := make([]dashboarddomain.ProgramEnrollment, 0, len(r.store.programs))
	for id, stored := range r.store.programs {
		result = append(result, dashboarddomain.ProgramEnrollment{
			Name:         stored.Name,
			TotalClients: counts[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].TotalClients != result[j].TotalClients {
			return result[i].TotalClients > result[j].TotalClients
		}
		return result[i].Name < result[j].Name
	})

	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
