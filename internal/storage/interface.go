package storage

import (
	"errors"

	"github.com/goserg/standingsserver/internal/domain"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an entity referenced by ID does not exist.
var ErrNotFound = errors.New("not found")

type PlayerStorage interface {
	ListPlayers() ([]domain.Player, error)
	ListActivePlayers() ([]domain.Player, error)
	GetPlayer(uuid.UUID) (domain.Player, error)
	AddPlayer(domain.Player) (domain.Player, error)

	ImportPlayers([]domain.Player) error
}

type RatingStorage interface {
	// ListEventRatings filters by player and/or event; uuid.Nil means
	// no filter on that key.
	ListEventRatings(playerID uuid.UUID, eventID uuid.UUID) ([]domain.EventRating, error)
	SaveEventRating(domain.EventRating) error

	// ListHistory returns a player's rating changes ordered by date
	// ascending. eventID uuid.Nil returns all of the player's entries.
	ListHistory(playerID uuid.UUID, eventID uuid.UUID) ([]domain.RatingChange, error)
	AppendHistory(domain.RatingChange) error
}

type TeamStorage interface {
	// ListTeams filters by season; year 0 means all seasons.
	ListTeams(year int) ([]domain.Team, error)
	GetTeam(uuid.UUID) (domain.Team, error)
	AddTeam(domain.Team) (domain.Team, error)
	// ListTeamMembers filters by team and/or season; uuid.Nil and 0
	// mean no filter.
	ListTeamMembers(teamID uuid.UUID, year int) ([]domain.TeamMember, error)
	AddTeamMember(domain.TeamMember) error
}

type EventStorage interface {
	// ListEvents filters by season; year 0 means all seasons. Events
	// come back in creation order.
	ListEvents(year int) ([]domain.Event, error)
	GetEvent(uuid.UUID) (domain.Event, error)
	AddEvent(domain.Event) (domain.Event, error)
	// SetFinalStandings records the finish order of a completed event
	// and moves it to the COMPLETED status.
	SetFinalStandings(eventID uuid.UUID, standings []uuid.UUID) error
}
