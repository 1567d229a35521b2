package repository

import (
	"context"
	"fmt"

	"github.com/altiusfest/altius-api/internal/domain"
	"github.com/altiusfest/altius-api/internal/repository/dao"
)

var (
	ErrDepartmentNameExists = dao.ErrDepartmentNameExists
	ErrDepartmentNotFound   = dao.ErrDepartmentNotFound
)

type DepartmentDAO interface {
	Insert(ctx context.Context, department dao.Department) (dao.Department, error)
	FindAllByName(ctx context.Context) ([]dao.Department, error)
	UpdatePoint(ctx context.Context, id uint, point int) (dao.Department, error)
	ReplaceAllPoints(ctx context.Context, points map[string]int) error
	Delete(ctx context.Context, id uint) error
}

type DepartmentRepository struct {
	dao DepartmentDAO
}

func NewDepartmentRepository(dao DepartmentDAO) *DepartmentRepository {
	return &DepartmentRepository{
		dao: dao,
	}
}

func (r *DepartmentRepository) Create(ctx context.Context, department domain.Department) (domain.Department, error) {
	created, err := r.dao.Insert(ctx, dao.Department{
		Name:      department.Name,
		Point:     department.Point,
		Event:     department.Event,
		ImagePath: department.ImagePath,
	})
	if err != nil {
		return domain.Department{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *DepartmentRepository) FindAllByName(ctx context.Context) ([]domain.Department, error) {
	found, err := r.dao.FindAllByName(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllByName -> %w", err)
	}

	return r.daoToDomainAll(found), nil
}

func (r *DepartmentRepository) UpdatePoint(ctx context.Context, id uint, point int) (domain.Department, error) {
	updated, err := r.dao.UpdatePoint(ctx, id, point)
	if err != nil {
		return domain.Department{}, fmt.Errorf("r.dao.UpdatePoint -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

// ReplaceAllPoints persists a recomputed totals map atomically.
func (r *DepartmentRepository) ReplaceAllPoints(ctx context.Context, points map[string]int) error {
	if err := r.dao.ReplaceAllPoints(ctx, points); err != nil {
		return fmt.Errorf("r.dao.ReplaceAllPoints -> %w", err)
	}

	return nil
}

func (r *DepartmentRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *DepartmentRepository) daoToDomain(d dao.Department) domain.Department {
	return domain.Department{
		ID:        d.ID,
		Name:      d.Name,
		Point:     d.Point,
		Event:     d.Event,
		ImagePath: d.ImagePath,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *DepartmentRepository) daoToDomainAll(departments []dao.Department) []domain.Department {
	results := make([]domain.Department, 0, len(departments))
	for _, d := range departments {
		results = append(results, r.daoToDomain(d))
	}

	return results
}
