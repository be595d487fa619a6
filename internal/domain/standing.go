package domain

import "github.com/google/uuid"

// EventResult is one team's outcome (recorded or projected) in one event.
type EventResult struct {
	EventID   uuid.UUID
	Points    int
	Position  int // 1-based
	Projected bool
}

// Standing is a team's accumulated season line. EarnedPoints comes only
// from recorded placements of completed events; ProjectedPoints only from
// rating-based projection of events still to be played. The two never mix.
type Standing struct {
	Team            Team
	EarnedPoints    int
	ProjectedPoints int
	FirstPlaces     int
	SecondPlaces    int
	Results         []EventResult
}

// TotalPoints is the speculative season total.
func (s Standing) TotalPoints() int {
	return s.EarnedPoints + s.ProjectedPoints
}
