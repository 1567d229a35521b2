package domain

import (
	"strings"
	"time"
)

// Placement point values. A case-insensitive "first" place earns
// PointsFirstPlace; every other recorded place earns PointsOtherPlace.
const (
	PlaceFirst = "First"

	PointsFirstPlace = 5
	PointsOtherPlace = 3
)

// Winner records a single participant placement. Department is a loose
// reference to Department.Name; winners naming an unknown department
// are tolerated and skipped by the aggregator.
type Winner struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Department string    `json:"department"`
	Semester   string    `json:"semester"`
	Event      string    `json:"event"`
	Place      string    `json:"place"`
	UserID     uint      `json:"user_id"`
	Username   string    `json:"username"`
	CreatedAt  time.Time `json:"created_at"`
}

// Points returns the score this placement contributes to its department.
func (w Winner) Points() int {
	if strings.EqualFold(w.Place, PlaceFirst) {
		return PointsFirstPlace
	}

	return PointsOtherPlace
}
