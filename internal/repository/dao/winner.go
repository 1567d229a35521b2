package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrWinnerNotFound = errors.New("winner not found")

type Winner struct {
	ID uint `gorm:"primaryKey"`

	Name       string `gorm:"not null"`
	Department string `gorm:"not null"`
	Semester   string `gorm:"not null"`
	Event      string `gorm:"not null"`
	Place      string `gorm:"not null"`

	UserID uint `gorm:"not null;index"`
	User   User `gorm:"foreignKey:UserID"`

	CreatedAt time.Time `gorm:"not null"`
}

type WinnerDAO struct {
	db *gorm.DB
}

func NewWinnerDAO(db *gorm.DB) *WinnerDAO {
	return &WinnerDAO{
		db: db,
	}
}

func (d *WinnerDAO) Insert(ctx context.Context, winner Winner) (Winner, error) {
	result := d.db.WithContext(ctx).Create(&winner)
	if result.Error != nil {
		return Winner{}, result.Error
	}

	return winner, nil
}

func (d *WinnerDAO) FindAll(ctx context.Context) ([]Winner, error) {
	var winners []Winner

	result := d.db.WithContext(ctx).Preload("User").Find(&winners)
	if result.Error != nil {
		return nil, result.Error
	}

	return winners, nil
}

func (d *WinnerDAO) FindAllByUserID(ctx context.Context, userID uint) ([]Winner, error) {
	var winners []Winner

	result := d.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).Find(&winners)
	if result.Error != nil {
		return nil, result.Error
	}

	return winners, nil
}

func (d *WinnerDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Winner{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWinnerNotFound
	}

	return nil
}
