package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/altiusfest/altius-api/internal/domain"
	"github.com/altiusfest/altius-api/internal/repository"
)

var ErrWinnerNotFound = repository.ErrWinnerNotFound

type WinnerRepository interface {
	Create(ctx context.Context, winner domain.Winner) (domain.Winner, error)
	FindAll(ctx context.Context) ([]domain.Winner, error)
	FindAllByUserID(ctx context.Context, userID uint) ([]domain.Winner, error)
	Delete(ctx context.Context, id uint) error
}

type WinnerUserRepository interface {
	FindByUsername(ctx context.Context, username string) (domain.User, error)
}

type WinnerService struct {
	repo     WinnerRepository
	userRepo WinnerUserRepository
}

func NewWinnerService(repo WinnerRepository, userRepo WinnerUserRepository) *WinnerService {
	return &WinnerService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// RecordWinner resolves the recording user by username and creates the
// placement under that user's ID.
func (s *WinnerService) RecordWinner(ctx context.Context, username string, winner domain.Winner) (domain.Winner, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.Winner{}, ErrUserNotFound
		}

		return domain.Winner{}, fmt.Errorf("s.userRepo.FindByUsername -> %w", err)
	}

	winner.UserID = user.ID
	created, err := s.repo.Create(ctx, winner)
	if err != nil {
		return domain.Winner{}, fmt.Errorf("s.repo.Create -> %w", err)
	}
	created.Username = user.Username

	return created, nil
}

// ListWinnersByUsername returns the placements recorded by one user.
func (s *WinnerService) ListWinnersByUsername(ctx context.Context, username string) ([]domain.Winner, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, fmt.Errorf("s.userRepo.FindByUsername -> %w", err)
	}

	winners, err := s.repo.FindAllByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllByUserID -> %w", err)
	}

	return winners, nil
}

func (s *WinnerService) DeleteWinner(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
