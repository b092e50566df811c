package program

import "context"

type Repository interface {
	Create(ctx context.Context, program *Program) error
	GetByID(ctx context.Context, id string) (*Program, error)
	List(ctx context.Context) ([]Program, error)
	Update(ctx context.Context, program *Program) error
	Delete(ctx context.Context, id string) error
	CountClients(ctx context.Context, programID string) (int64, error)
}
