package service

import (
	"context"
	"fmt"

	"github.com/altiusfest/altius-api/internal/domain"
	"github.com/altiusfest/altius-api/internal/repository"
)

var (
	ErrCollegeNameExists = repository.ErrCollegeNameExists
	ErrCollegeNotFound   = repository.ErrCollegeNotFound
)

type CollegeRepository interface {
	Create(ctx context.Context, college domain.College) (domain.College, error)
	FindAllByName(ctx context.Context) ([]domain.College, error)
	FindAllByPoint(ctx context.Context) ([]domain.College, error)
	UpdatePoint(ctx context.Context, id uint, point int) (domain.College, error)
	Delete(ctx context.Context, id uint) error
}

type CollegeService struct {
	repo CollegeRepository
}

func NewCollegeService(repo CollegeRepository) *CollegeService {
	return &CollegeService{
		repo: repo,
	}
}

func (s *CollegeService) CreateCollege(ctx context.Context, college domain.College) (domain.College, error) {
	created, err := s.repo.Create(ctx, college)
	if err != nil {
		return domain.College{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// ListColleges returns every college ordered by name ascending, the
// canonical order for the admin listing.
func (s *CollegeService) ListColleges(ctx context.Context) ([]domain.College, error) {
	colleges, err := s.repo.FindAllByName(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllByName -> %w", err)
	}

	return colleges, nil
}

// Leaderboard returns every college ordered by point descending, the
// canonical order for the dashboard leaderboard.
func (s *CollegeService) Leaderboard(ctx context.Context) ([]domain.College, error) {
	colleges, err := s.repo.FindAllByPoint(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllByPoint -> %w", err)
	}

	return colleges, nil
}

func (s *CollegeService) UpdateCollegePoint(ctx context.Context, id uint, point int) (domain.College, error) {
	updated, err := s.repo.UpdatePoint(ctx, id, point)
	if err != nil {
		return domain.College{}, fmt.Errorf("s.repo.UpdatePoint -> %w", err)
	}

	return updated, nil
}

func (s *CollegeService) DeleteCollege(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
