package domain

import "github.com/google/uuid"

type Team struct {
	ID           uuid.UUID
	Name         string
	Color        string
	Abbreviation string
	// CaptainID is uuid.Nil when the team has no captain. A captain must
	// reference a player that is also rostered on the team.
	CaptainID uuid.UUID
	Logo      string
	Year      int
}

type TeamMember struct {
	TeamID   uuid.UUID
	PlayerID uuid.UUID
	Year     int
}
