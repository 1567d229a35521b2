package service

import (
	"context"
	"fmt"

	"github.com/altiusfest/altius-api/internal/domain"
)

type ScoreWinnerRepository interface {
	FindAll(ctx context.Context) ([]domain.Winner, error)
}

// ScoreService recomputes department point totals from the full winner
// log. Totals are always derived from scratch, never incremented, so a
// recompute over an unchanged winner set is idempotent.
type ScoreService struct {
	departmentRepo DepartmentRepository
	winnerRepo     ScoreWinnerRepository
}

func NewScoreService(departmentRepo DepartmentRepository, winnerRepo ScoreWinnerRepository) *ScoreService {
	return &ScoreService{
		departmentRepo: departmentRepo,
		winnerRepo:     winnerRepo,
	}
}

// ComputeDepartmentPoints derives every department's total from the
// winner log. Each known department starts at 0, so departments with no
// wins report 0 rather than a stale value. Winners naming an unknown
// department are skipped.
func ComputeDepartmentPoints(departments []domain.Department, winners []domain.Winner) map[string]int {
	points := make(map[string]int, len(departments))
	for _, department := range departments {
		points[department.Name] = 0
	}

	for _, winner := range winners {
		if _, ok := points[winner.Department]; !ok {
			continue
		}

		points[winner.Department] += winner.Points()
	}

	return points
}

// RecomputeDepartmentPoints reads a snapshot of departments and winners,
// computes fresh totals, persists them in one transaction, and returns
// the re-read department list ordered by name ascending.
//
// Two concurrent recomputes still race on the read-then-write sequence,
// but because each writes totals derived purely from its winner
// snapshot, last-write-wins converges to the same values whenever the
// winner set is unchanged between the two reads.
func (s *ScoreService) RecomputeDepartmentPoints(ctx context.Context) ([]domain.Department, error) {
	departments, err := s.departmentRepo.FindAllByName(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.departmentRepo.FindAllByName -> %w", err)
	}

	winners, err := s.winnerRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.winnerRepo.FindAll -> %w", err)
	}

	points := ComputeDepartmentPoints(departments, winners)

	if err = s.departmentRepo.ReplaceAllPoints(ctx, points); err != nil {
		return nil, fmt.Errorf("s.departmentRepo.ReplaceAllPoints -> %w", err)
	}

	updated, err := s.departmentRepo.FindAllByName(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.departmentRepo.FindAllByName -> %w", err)
	}

	return updated, nil
}
