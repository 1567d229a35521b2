package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/altiusfest/altius-api/internal/domain"
	"github.com/altiusfest/altius-api/internal/repository"
)

var (
	ErrDepartmentNameExists = repository.ErrDepartmentNameExists
	ErrDepartmentNotFound   = repository.ErrDepartmentNotFound
)

type DepartmentRepository interface {
	Create(ctx context.Context, department domain.Department) (domain.Department, error)
	FindAllByName(ctx context.Context) ([]domain.Department, error)
	UpdatePoint(ctx context.Context, id uint, point int) (domain.Department, error)
	ReplaceAllPoints(ctx context.Context, points map[string]int) error
	Delete(ctx context.Context, id uint) error
}

type DepartmentService struct {
	repo DepartmentRepository
}

func NewDepartmentService(repo DepartmentRepository) *DepartmentService {
	return &DepartmentService{
		repo: repo,
	}
}

// CreateDepartments inserts a batch of departments one by one. A
// duplicate name aborts the batch; departments inserted before the
// duplicate remain, matching the bulk-form behavior of the admin UI.
// The returned conflict error names the colliding department.
func (s *DepartmentService) CreateDepartments(ctx context.Context, departments []domain.Department) error {
	for _, department := range departments {
		if _, err := s.repo.Create(ctx, department); err != nil {
			if errors.Is(err, ErrDepartmentNameExists) {
				return fmt.Errorf("%w: %q", ErrDepartmentNameExists, department.Name)
			}

			return fmt.Errorf("s.repo.Create -> %w", err)
		}
	}

	return nil
}

func (s *DepartmentService) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	departments, err := s.repo.FindAllByName(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllByName -> %w", err)
	}

	return departments, nil
}

func (s *DepartmentService) UpdateDepartmentPoint(ctx context.Context, id uint, point int) (domain.Department, error) {
	updated, err := s.repo.UpdatePoint(ctx, id, point)
	if err != nil {
		return domain.Department{}, fmt.Errorf("s.repo.UpdatePoint -> %w", err)
	}

	return updated, nil
}

func (s *DepartmentService) DeleteDepartment(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
