package domain

import "time"

// College is a participating college on the fest-wide leaderboard.
// Point is edited directly by organizers, unlike Department.Point
// which is derived from the winner log.
type College struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Point     int       `json:"point"`
	Event     int       `json:"event"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
