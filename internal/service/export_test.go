package service

import (
	"testing"

	"github.com/goserg/standingsserver/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestExportImportRoundTrip(t *testing.T) {
	eventID := uuid.New()
	player := domain.Player{ID: uuid.New(), Name: "P", BaseRating: 5000, Active: true, RegisteredAt: day(0)}
	team := domain.Team{ID: uuid.New(), Name: "T", Year: 2024}
	source := &memStorage{
		players: []domain.Player{player},
		teams:   []domain.Team{team},
		members: []domain.TeamMember{{TeamID: team.ID, PlayerID: player.ID, Year: 2024}},
		events: []domain.Event{{
			ID:     eventID,
			Name:   "E",
			Type:   domain.EventTournament,
			Status: domain.StatusUpcoming,
			Points: []int{5, 3},
			Year:   2024,
		}},
		ratings: []domain.EventRating{{PlayerID: player.ID, EventID: eventID, Rating: 5200}},
		history: []domain.RatingChange{{PlayerID: player.ID, EventID: eventID, OldRating: 5000, NewRating: 5200, Date: day(1)}},
	}

	data, err := newTestService(source).Export()
	require.NoError(t, err)

	target := &memStorage{}
	restored := newTestService(target)
	require.NoError(t, restored.Import(data))

	require.Equal(t, source.players, target.players)
	require.Equal(t, source.teams, target.teams)
	require.Equal(t, source.members, target.members)
	require.Equal(t, source.events, target.events)
	require.Equal(t, source.ratings, target.ratings)
	require.Equal(t, source.history, target.history)
}

func TestImportRejectsUnknownVersion(t *testing.T) {
	s := newTestService(&memStorage{})
	err := s.Import([]byte(`{"Version": 99}`))
	require.Error(t, err)
}
