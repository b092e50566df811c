package inmemory

import (
	"sync"
	"time"

	clientdomain "care-app-go/internal/domain/client"
	programdomain "care-app-go/internal/domain/program"
	reviewdomain "care-app-go/internal/domain/review"
)

// Store is a process-local implementation of the entity repositories.
// It backs handler tests and local development without postgres, and
// mirrors the store-enforced referential integrity of the real schema:
// client creation requires an existing program, review creation requires
// an existing client, and deleting a client cascades to its reviews.
type Store struct {
	mu sync.RWMutex

	programs     map[string]programdomain.Program
	programOrder []string

	clients     map[string]clientdomain.Client
	clientOrder []string

	reviews     map[string]reviewdomain.Review
	reviewOrder []string
}

func NewStore() *Store {
	return &Store{
		programs: make(map[string]programdomain.Program),
		clients:  make(map[string]clientdomain.Client),
		reviews:  make(map[string]reviewdomain.Review),
	}
}

func (s *Store) Programs() *ProgramRepository {
	return &ProgramRepository{store: s}
}

func (s *Store) Clients() *ClientRepository {
	return &ClientRepository{store: s}
}

func (s *Store) Reviews() *ReviewRepository {
	return &ReviewRepository{store: s}
}

func (s *Store) Dashboard() *DashboardRepository {
	return &DashboardRepository{store: s}
}

func removeID(ids []string, id string) []string {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

func stampNow(value time.Time) time.Time {
	if value.IsZero() {
		return time.Now().UTC()
	}
	return value
}
