package domain

import "time"

// Department is a department on the intra-college leaderboard.
// Point is recomputed from the winner log, never edited incrementally.
type Department struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Point     int       `json:"point"`
	Event     int       `json:"event"`
	ImagePath string    `json:"imgpath"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
