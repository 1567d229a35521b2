package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrDepartmentNameExists = errors.New("department already exists")
	ErrDepartmentNotFound   = errors.New("department not found")
)

type Department struct {
	ID uint `gorm:"primaryKey"`

	Name      string `gorm:"unique;not null"`
	Point     int    `gorm:"not null;default:0;check:point >= 0"`
	Event     int    `gorm:"not null;default:0;check:event >= 0"`
	ImagePath string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type DepartmentDAO struct {
	db *gorm.DB
}

func NewDepartmentDAO(db *gorm.DB) *DepartmentDAO {
	return &DepartmentDAO{
		db: db,
	}
}

func (d *DepartmentDAO) Insert(ctx context.Context, department Department) (Department, error) {
	result := d.db.WithContext(ctx).Create(&department)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, `unique constraint "uni_departments_name"`) {
			return Department{}, ErrDepartmentNameExists
		}

		return Department{}, result.Error
	}

	return department, nil
}

// FindAllByName lists every department ordered by name ascending.
func (d *DepartmentDAO) FindAllByName(ctx context.Context) ([]Department, error) {
	var departments []Department

	result := d.db.WithContext(ctx).Order("name asc").Find(&departments)
	if result.Error != nil {
		return nil, result.Error
	}

	return departments, nil
}

func (d *DepartmentDAO) UpdatePoint(ctx context.Context, id uint, point int) (Department, error) {
	var department Department

	result := d.db.WithContext(ctx).First(&department, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Department{}, ErrDepartmentNotFound
		}

		return Department{}, result.Error
	}

	department.Point = point
	if err := d.db.WithContext(ctx).Save(&department).Error; err != nil {
		return Department{}, err
	}

	return department, nil
}

// ReplaceAllPoints writes recomputed totals for every department in a
// single transaction, so a recompute either lands in full or not at all.
func (d *DepartmentDAO) ReplaceAllPoints(ctx context.Context, points map[string]int) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for name, point := range points {
			result := tx.Model(&Department{}).
				Where("name = ?", name).
				Update("point", point)
			if result.Error != nil {
				return result.Error
			}
		}

		return nil
	})
}

func (d *DepartmentDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Department{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDepartmentNotFound
	}

	return nil
}
