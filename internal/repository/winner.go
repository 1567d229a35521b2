package repository

import (
	"context"
	"fmt"

	"github.com/altiusfest/altius-api/internal/domain"
	"github.com/altiusfest/altius-api/internal/repository/dao"
)

var ErrWinnerNotFound = dao.ErrWinnerNotFound

type WinnerDAO interface {
	Insert(ctx context.Context, winner dao.Winner) (dao.Winner, error)
	FindAll(ctx context.Context) ([]dao.Winner, error)
	FindAllByUserID(ctx context.Context, userID uint) ([]dao.Winner, error)
	Delete(ctx context.Context, id uint) error
}

type WinnerRepository struct {
	dao WinnerDAO
}

func NewWinnerRepository(dao WinnerDAO) *WinnerRepository {
	return &WinnerRepository{
		dao: dao,
	}
}

func (r *WinnerRepository) Create(ctx context.Context, winner domain.Winner) (domain.Winner, error) {
	created, err := r.dao.Insert(ctx, dao.Winner{
		Name:       winner.Name,
		Department: winner.Department,
		Semester:   winner.Semester,
		Event:      winner.Event,
		Place:      winner.Place,
		UserID:     winner.UserID,
	})
	if err != nil {
		return domain.Winner{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *WinnerRepository) FindAll(ctx context.Context) ([]domain.Winner, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daoToDomainAll(found), nil
}

func (r *WinnerRepository) FindAllByUserID(ctx context.Context, userID uint) ([]domain.Winner, error) {
	found, err := r.dao.FindAllByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllByUserID -> %w", err)
	}

	return r.daoToDomainAll(found), nil
}

func (r *WinnerRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *WinnerRepository) daoToDomain(w dao.Winner) domain.Winner {
	return domain.Winner{
		ID:         w.ID,
		Name:       w.Name,
		Department: w.Department,
		Semester:   w.Semester,
		Event:      w.Event,
		Place:      w.Place,
		UserID:     w.UserID,
		Username:   w.User.Username,
		CreatedAt:  w.CreatedAt,
	}
}

func (r *WinnerRepository) daoToDomainAll(winners []dao.Winner) []domain.Winner {
	results := make([]domain.Winner, 0, len(winners))
	for _, w := range winners {
		results = append(results, r.daoToDomain(w))
	}

	return results
}
