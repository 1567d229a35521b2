package domain

import "time"

type User struct {
	ID           uint      `json:"id"`
	Username     string    `json:"username"`
	Password     string    `json:"-"`
	RefreshToken string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
