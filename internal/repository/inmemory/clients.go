package inmemory

import (
	"context"
	"strings"

	clientdomain "care-app-go/internal/domain/client"
)

type ClientRepository struct {
	store *Store
}

func (r *ClientRepository) Create(ctx context.Context, client *clientdomain.Client) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.programs[client.ProgramID]; !ok {
		return clientdomain.ErrProgramReference
	}

	client.CreatedAt = stampNow(client.CreatedAt)
	client.UpdatedAt = stampNow(client.UpdatedAt)
	r.store.clients[client.ID] = *client
	r.store.clientOrder = append(r.store.clientOrder, client.ID)
	return nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id string) (*clientdomain.Client, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result, ok := r.store.clients[id]
	if !ok {
		return nil, clientdomain.ErrClientNotFound
	}
	return &result, nil
}

func (r *ClientRepository) GetDetailByID(ctx context.Context, id string) (*clientdomain.Detail, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	stored, ok := r.store.clients[id]
	if !ok {
		return nil, clientdomain.ErrClientNotFound
	}

	owner := r.store.programs[stored.ProgramID]
	return &clientdomain.Detail{
		Client:             stored,
		ProgramName:        owner.Name,
		ProgramDescription: owner.Description,
	}, nil
}

func (r *ClientRepository) List(ctx context.Context, filter clientdomain.ListFilter) ([]clientdomain.Client, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]clientdomain.Client, 0, len(r.store.clientOrder))
	for _, id := range r.store.clientOrder {
		stored := r.store.clients[id]
		if matchesFilter(stored, filter) {
			result = append(result, stored)
		}
	}
	return result, nil
}

func (r *ClientRepository) Update(ctx context.Context, client *clientdomain.Client) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.clients[client.ID]
	if !ok {
		return clientdomain.ErrClientNotFound
	}
	if _, ok := r.store.programs[client.ProgramID]; !ok {
		return clientdomain.ErrProgramReference
	}

	stored.FullName = client.FullName
	stored.Email = client.Email
	stored.Phone = client.Phone
	stored.ProgramID = client.ProgramID
	stored.UpdatedAt = client.UpdatedAt
	r.store.clients[client.ID] = stored
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.clients, id)
	r.store.clientOrder = removeID(r.store.clientOrder, id)

	for reviewID, stored := range r.store.reviews {
		if stored.ClientID == id {
			delete(r.store.reviews, reviewID)
			r.store.reviewOrder = removeID(r.store.reviewOrder, reviewID)
		}
	}
	return nil
}

func matchesFilter(stored clientdomain.Client, filter clientdomain.ListFilter) bool {
	if filter.ProgramID != "" && stored.ProgramID != filter.ProgramID {
		return false
	}
	if filter.FullName != "" && !containsFold(stored.FullName, filter.FullName) {
		return false
	}
	if filter.Email != "" && (stored.Email == nil || !containsFold(*stored.Email, filter.Email)) {
		return false
	}
	if filter.Phone != "" && (stored.Phone == nil || !containsFold(*stored.Phone, filter.Phone)) {
		return false
	}
	return true
}

func containsFold(value, term string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(term))
}
