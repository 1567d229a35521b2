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
	ErrCollegeNameExists = errors.New("college already exists")
	ErrCollegeNotFound   = errors.New("college not found")
)

type College struct {
	ID uint `gorm:"primaryKey"`

	Name  string `gorm:"unique;not null"`
	Point int    `gorm:"not null;default:0;check:point >= 0"`
	Event int    `gorm:"not null;default:0;check:event >= 0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type CollegeDAO struct {
	db *gorm.DB
}

func NewCollegeDAO(db *gorm.DB) *CollegeDAO {
	return &CollegeDAO{
		db: db,
	}
}

func (d *CollegeDAO) Insert(ctx context.Context, college College) (College, error) {
	result := d.db.WithContext(ctx).Create(&college)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, `unique constraint "uni_colleges_name"`) {
			return College{}, ErrCollegeNameExists
		}

		return College{}, result.Error
	}

	return college, nil
}

// FindAllByName lists every college ordered by name ascending.
func (d *CollegeDAO) FindAllByName(ctx context.Context) ([]College, error) {
	var colleges []College

	result := d.db.WithContext(ctx).Order("name asc").Find(&colleges)
	if result.Error != nil {
		return nil, result.Error
	}

	return colleges, nil
}

// FindAllByPoint lists every college ordered by point descending.
func (d *CollegeDAO) FindAllByPoint(ctx context.Context) ([]College, error) {
	var colleges []College

	result := d.db.WithContext(ctx).Order("point desc").Find(&colleges)
	if result.Error != nil {
		return nil, result.Error
	}

	return colleges, nil
}

func (d *CollegeDAO) UpdatePoint(ctx context.Context, id uint, point int) (College, error) {
	var college College

	result := d.db.WithContext(ctx).First(&college, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return College{}, ErrCollegeNotFound
		}

		return College{}, result.Error
	}

	college.Point = point
	if err := d.db.WithContext(ctx).Save(&college).Error; err != nil {
		return College{}, err
	}

	return college, nil
}

func (d *CollegeDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&College{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCollegeNotFound
	}

	return nil
}
