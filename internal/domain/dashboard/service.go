package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"
)

const defaultTopProgramsCount = 5

type Config struct {
	TopProgramsCount int
}

type Service struct {
	repo             Repository
	topProgramsCount int
}

func NewService(repo Repository) *Service {
	return NewServiceWithConfig(repo, Config{TopProgramsCount: defaultTopProgramsCount})
}

func NewServiceWithConfig(repo Repository, cfg Config) *Service {
	count := cfg.TopProgramsCount
	if count <= 0 {
		count = defaultTopProgramsCount
	}
	return &Service{repo: repo, topProgramsCount: count}
}

// Metrics runs the four aggregate queries concurrently and joins the
// results. Any single failure fails the whole call; there is no partial
// result.
func (s *Service) Metrics(ctx context.Context) (Metrics, error) {
	var result Metrics

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := s.repo.CountPrograms(ctx)
		result.TotalPrograms = count
		return err
	})
	g.Go(func() error {
		count, err := s.repo.CountClients(ctx)
		result.TotalClients = count
		return err
	})
	g.Go(func() error {
		count, err := s.repo.CountReviews(ctx)
		result.TotalReviews = count
		return err
	})
	g.Go(func() error {
		top, err := s.repo.TopProgramsByEnrollment(ctx, s.topProgramsCount)
		result.TopProgramsByEnrollment = top
		return err
	})

	if err := g.Wait(); err != nil {
		return Metrics{}, err
	}

	if result.TopProgramsByEnrollment == nil {
		result.TopProgramsByEnrollment = []ProgramEnrollment{}
	}
	return result, nil
}
