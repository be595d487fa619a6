package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventRating is a player's skill rating scoped to a single event.
// At most one row exists per (player, event) pair.
type EventRating struct {
	PlayerID uuid.UUID
	EventID  uuid.UUID
	Rating   int
}

// RatingChange is one entry of the append-only rating history. EventID is
// uuid.Nil for changes to the player's overall rating. Entries are never
// edited; the vote processor only appends.
type RatingChange struct {
	PlayerID  uuid.UUID
	EventID   uuid.UUID
	OldRating int
	NewRating int
	Date      time.Time
}
