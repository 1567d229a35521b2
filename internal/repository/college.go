package repository

import (
	"context"
	"fmt"

	"github.com/altiusfest/altius-api/internal/domain"
	"github.com/altiusfest/altius-api/internal/repository/dao"
)

var (
	ErrCollegeNameExists = dao.ErrCollegeNameExists
	ErrCollegeNotFound   = dao.ErrCollegeNotFound
)

type CollegeDAO interface {
	Insert(ctx context.Context, college dao.College) (dao.College, error)
	FindAllByName(ctx context.Context) ([]dao.College, error)
	FindAllByPoint(ctx context.Context) ([]dao.College, error)
	UpdatePoint(ctx context.Context, id uint, point int) (dao.College, error)
	Delete(ctx context.Context, id uint) error
}

type CollegeRepository struct {
	dao CollegeDAO
}

func NewCollegeRepository(dao CollegeDAO) *CollegeRepository {
	return &CollegeRepository{
		dao: dao,
	}
}

func (r *CollegeRepository) Create(ctx context.Context, college domain.College) (domain.College, error) {
	created, err := r.dao.Insert(ctx, dao.College{
		Name:  college.Name,
		Point: college.Point,
		Event: college.Event,
	})
	if err != nil {
		return domain.College{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *CollegeRepository) FindAllByName(ctx context.Context) ([]domain.College, error) {
	found, err := r.dao.FindAllByName(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllByName -> %w", err)
	}

	return r.daoToDomainAll(found), nil
}

func (r *CollegeRepository) FindAllByPoint(ctx context.Context) ([]domain.College, error) {
	found, err := r.dao.FindAllByPoint(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllByPoint -> %w", err)
	}

	return r.daoToDomainAll(found), nil
}

func (r *CollegeRepository) UpdatePoint(ctx context.Context, id uint, point int) (domain.College, error) {
	updated, err := r.dao.UpdatePoint(ctx, id, point)
	if err != nil {
		return domain.College{}, fmt.Errorf("r.dao.UpdatePoint -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *CollegeRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *CollegeRepository) daoToDomain(c dao.College) domain.College {
	return domain.College{
		ID:        c.ID,
		Name:      c.Name,
		Point:     c.Point,
		Event:     c.Event,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (r *CollegeRepository) daoToDomainAll(colleges []dao.College) []domain.College {
	results := make([]domain.College, 0, len(colleges))
	for _, c := range colleges {
		results = append(results, r.daoToDomain(c))
	}

	return results
}
