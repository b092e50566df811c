package dashboard

import "context"

type Repository interface {
	CountPrograms(ctx context.Context) (int64, error)
	CountClients(ctx context.Context) (int64, error)
	CountReviews(ctx context.Context) (int64, error)
	TopProgramsByEnrollment(ctx context.Context, limit int) ([]ProgramEnrollment, error)
}
