package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultRating is the base rating every player starts with and the
// fallback used when a player has no event ratings at all.
const DefaultRating = 5000

type Player struct {
	ID           uuid.UUID
	Name         string
	BaseRating   int
	Experience   int
	Wins         int
	Active       bool
	RegisteredAt time.Time
}
