package inmemory

import (
	"context"

	programdomain "care-app-go/internal/domain/program"
)

type ProgramRepository struct {
	store *Store
}

func (r *ProgramRepository) Create(ctx context.Context, program *programdomain.Program) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	program.CreatedAt = stampNow(program.CreatedAt)
	program.UpdatedAt = stampNow(program.UpdatedAt)
	r.store.programs[program.ID] = *program
	r.store.programOrder = append(r.store.programOrder, program.ID)
	return nil
}

func (r *ProgramRepository) GetByID(ctx context.Context, id string) (*programdomain.Program, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result, ok := r.store.programs[id]
	if !ok {
		return nil, programdomain.ErrProgramNotFound
	}
	return &result, nil
}

func (r *ProgramRepository) List(ctx context.Context) ([]programdomain.Program, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]programdomain.Program, 0, len(r.store.programOrder))
	for _, id := range r.store.programOrder {
		result = append(result, r.store.programs[id])
	}
	return result, nil
}

func (r *ProgramRepository) Update(ctx context.Context, program *programdomain.Program) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.programs[program.ID]
	if !ok {
		return programdomain.ErrProgramNotFound
	}

	stored.Name = program.Name
	stored.Description = program.Description
	stored.Logo = program.Logo
	stored.UpdatedAt = program.UpdatedAt
	r.store.programs[program.ID] = stored
	return nil
}

func (r *ProgramRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.programs, id)
	r.store.programOrder = removeID(r.store.programOrder, id)
	return nil
}

func (r *ProgramRepository) CountClients(ctx context.Context, programID string) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var count int64
	for _, stored := range r.store.clients {
		if stored.ProgramID == programID {
			count++
		}
	}
	return count, nil
}
