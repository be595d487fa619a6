package domain

import "github.com/google/uuid"

type EventType string

const (
	EventTournament   EventType = "TOURNAMENT"
	EventScored       EventType = "SCORED"
	EventCombinedTeam EventType = "COMBINED_TEAM"
)

type EventStatus string

const (
	StatusUpcoming   EventStatus = "UPCOMING"
	StatusInProgress EventStatus = "IN_PROGRESS"
	StatusCompleted  EventStatus = "COMPLETED"
)

type Event struct {
	ID           uuid.UUID
	Name         string
	Abbreviation string
	Symbol       string
	Type         EventType
	Status       EventStatus
	// Points[i] is the reward for finishing in place i (0-based).
	// Placements past the end of the list earn nothing.
	Points []int
	// FinalStandings lists team IDs in finish order. Nil until the event
	// is completed and its result recorded.
	FinalStandings []uuid.UUID
	Year           int
}

// Completed reports whether the event has a terminal status. A completed
// event without recorded standings is treated as void, never re-projected.
func (e Event) Completed() bool {
	return e.Status == StatusCompleted
}
