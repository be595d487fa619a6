package service

import (
	"testing"

	"github.com/goserg/standingsserver/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fourTeams builds four single-player teams with per-event ratings for
// the given event, highest rating first.
func fourTeams(eventID uuid.UUID, ratings [4]int) *memStorage {
	store := &memStorage{}
	for i := 0; i < 4; i++ {
		player := domain.Player{ID: uuid.New(), Name: "P", RegisteredAt: day(i)}
		team := domain.Team{ID: uuid.New(), Name: "T", Year: 2024}
		store.players = append(store.players, player)
		store.teams = append(store.teams, team)
		store.members = append(store.members, domain.TeamMember{
			TeamID:   team.ID,
			PlayerID: player.ID,
			Year:     2024,
		})
		store.ratings = append(store.ratings, domain.EventRating{
			PlayerID: player.ID,
			EventID:  eventID,
			Rating:   ratings[i],
		})
	}
	return store
}

func standingFor(t *testing.T, standings []domain.Standing, teamID uuid.UUID) domain.Standing {
	t.Helper()
	for _, st := range standings {
		if st.Team.ID == teamID {
			return st
		}
	}
	t.Fatalf("no standing for team %v", teamID)
	return domain.Standing{}
}

func TestStandingsCompletedTournament(t *testing.T) {
	eventID := uuid.New()
	store := fourTeams(eventID, [4]int{5000, 5000, 5000, 5000})
	t1 := store.teams[0].ID
	t2 := store.teams[1].ID
	t3 := store.teams[2].ID
	t4 := store.teams[3].ID
	store.events = []domain.Event{{
		ID:             eventID,
		Name:           "E1",
		Type:           domain.EventTournament,
		Status:         domain.StatusCompleted,
		Points:         []int{10, 6, 3},
		FinalStandings: []uuid.UUID{t2, t1, t3},
		Year:           2024,
	}}
	s := newTestService(store)

	result, err := s.Standings(2024)
	require.NoError(t, err)

	winner := standingFor(t, result.Insertion, t2)
	require.Equal(t, 10, winner.EarnedPoints)
	require.Equal(t, 0, winner.ProjectedPoints)
	require.Equal(t, 1, winner.FirstPlaces)
	require.Equal(t, 0, winner.SecondPlaces)
	require.Equal(t, []domain.EventResult{{EventID: eventID, Points: 10, Position: 1}}, winner.Results)

	runnerUp := standingFor(t, result.Insertion, t1)
	require.Equal(t, 6, runnerUp.EarnedPoints)
	require.Equal(t, 1, runnerUp.SecondPlaces)

	third := standingFor(t, result.Insertion, t3)
	require.Equal(t, 3, third.EarnedPoints)
	require.Equal(t, 0, third.FirstPlaces)
	require.Equal(t, 0, third.SecondPlaces)

	rest := standingFor(t, result.Insertion, t4)
	require.Equal(t, 0, rest.EarnedPoints)
	require.Empty(t, rest.Results)
}

func TestStandingsCombinedTeamFinishCounting(t *testing.T) {
	eventID := uuid.New()
	store := fourTeams(eventID, [4]int{5000, 5000, 5000, 5000})
	t1 := store.teams[0].ID
	t2 := store.teams[1].ID
	t3 := store.teams[2].ID
	t4 := store.teams[3].ID
	store.events = []domain.Event{{
		ID:             eventID,
		Name:           "E2",
		Type:           domain.EventCombinedTeam,
		Status:         domain.StatusCompleted,
		Points:         []int{8, 8, 2, 2},
		FinalStandings: []uuid.UUID{t1, t4, t2, t3},
		Year:           2024,
	}}
	s := newTestService(store)

	result, err := s.Standings(2024)
	require.NoError(t, err)

	for _, teamID := range []uuid.UUID{t1, t4} {
		st := standingFor(t, result.Insertion, teamID)
		require.Equal(t, 8, st.EarnedPoints)
		require.Equal(t, 1, st.FirstPlaces)
		require.Equal(t, 0, st.SecondPlaces)
	}
	for _, teamID := range []uuid.UUID{t2, t3} {
		st := standingFor(t, result.Insertion, teamID)
		require.Equal(t, 2, st.EarnedPoints)
		require.Equal(t, 0, st.FirstPlaces)
		require.Equal(t, 1, st.SecondPlaces)
	}
}

func TestStandingsProjection(t *testing.T) {
	eventID := uuid.New()
	store := fourTeams(eventID, [4]int{6000, 5500, 5000, 4500})
	// Fourth team loses its roster so only three teams are eligible.
	store.members = store.members[:3]
	store.events = []domain.Event{{
		ID:     eventID,
		Name:   "E3",
		Type:   domain.EventTournament,
		Status: domain.StatusUpcoming,
		Points: []int{5, 3},
		Year:   2024,
	}}
	s := newTestService(store)

	result, err := s.Standings(2024)
	require.NoError(t, err)

	first := standingFor(t, result.Insertion, store.teams[0].ID)
	require.Equal(t, 5, first.ProjectedPoints)
	require.Equal(t, 0, first.EarnedPoints)
	require.Equal(t, []domain.EventResult{{EventID: eventID, Points: 5, Position: 1, Projected: true}}, first.Results)

	second := standingFor(t, result.Insertion, store.teams[1].ID)
	require.Equal(t, 3, second.ProjectedPoints)

	third := standingFor(t, result.Insertion, store.teams[2].ID)
	require.Equal(t, 0, third.ProjectedPoints)
	require.Equal(t, 3, third.Results[0].Position)

	// The rosterless team cannot place at all.
	empty := standingFor(t, result.Insertion, store.teams[3].ID)
	require.Empty(t, empty.Results)
}

func TestStandingsProjectionBound(t *testing.T) {
	eventID := uuid.New()
	store := fourTeams(eventID, [4]int{6000, 5500, 5000, 4500})
	store.events = []domain.Event{{
		ID:     eventID,
		Type:   domain.EventTournament,
		Status: domain.StatusInProgress,
		Points: []int{5, 3},
		Year:   2024,
	}}
	s := newTestService(store)

	result, err := s.Standings(2024)
	require.NoError(t, err)

	receiving := 0
	for _, st := range result.Insertion {
		if st.ProjectedPoints > 0 {
			receiving++
		}
	}
	require.LessOrEqual(t, receiving, 2)
}

func TestStandingsCompletedWithoutResultIsVoid(t *testing.T) {
	eventID := uuid.New()
	store := fourTeams(eventID, [4]int{6000, 5500, 5000, 4500})
	store.events = []domain.Event{{
		ID:     eventID,
		Type:   domain.EventTournament,
		Status: domain.StatusCompleted,
		Points: []int{10, 6},
		Year:   2024,
	}}
	s := newTestService(store)

	result, err := s.Standings(2024)
	require.NoError(t, err)
	for _, st := range result.Insertion {
		require.Zero(t, st.EarnedPoints)
		require.Zero(t, st.ProjectedPoints)
		require.Empty(t, st.Results)
	}
}

func TestStandingsSkipsDanglingTeamReference(t *testing.T) {
	eventID := uuid.New()
	store := fourTeams(eventID, [4]int{5000, 5000, 5000, 5000})
	t1 := store.teams[0].ID
	t2 := store.teams[1].ID
	store.events = []domain.Event{{
		ID:             eventID,
		Type:           domain.EventTournament,
		Status:         domain.StatusCompleted,
		Points:         []int{10, 6, 3},
		FinalStandings: []uuid.UUID{t1, uuid.New(), t2},
		Year:           2024,
	}}
	s := newTestService(store)

	result, err := s.Standings(2024)
	require.NoError(t, err)

	require.Equal(t, 10, standingFor(t, result.Insertion, t1).EarnedPoints)
	// The dangling second entry is skipped; the third team keeps its
	// recorded placement and its recorded reward.
	third := standingFor(t, result.Insertion, t2)
	require.Equal(t, 3, third.EarnedPoints)
	require.Equal(t, 3, third.Results[0].Position)
}

func TestStandingsPointsConservation(t *testing.T) {
	eventID := uuid.New()
	store := fourTeams(eventID, [4]int{5000, 5000, 5000, 5000})
	points := []int{10, 6, 3, 1}
	final := []uuid.UUID{
		store.teams[3].ID,
		store.teams[0].ID,
		store.teams[2].ID,
		store.teams[1].ID,
	}
	store.events = []domain.Event{{
		ID:             eventID,
		Type:           domain.EventTournament,
		Status:         domain.StatusCompleted,
		Points:         points,
		FinalStandings: final,
		Year:           2024,
	}}
	s := newTestService(store)

	result, err := s.Standings(2024)
	require.NoError(t, err)

	total := 0
	for _, st := range result.Insertion {
		total += st.EarnedPoints
	}
	require.Equal(t, 10+6+3+1, total)
}

func TestStandingsDisplayOrder(t *testing.T) {
	completed := uuid.New()
	upcoming := uuid.New()
	store := fourTeams(completed, [4]int{5000, 5000, 5000, 9000})
	t1 := store.teams[0].ID
	t2 := store.teams[1].ID
	t3 := store.teams[2].ID
	t4 := store.teams[3].ID
	store.events = []domain.Event{
		{
			ID:             completed,
			Type:           domain.EventTournament,
			Status:         domain.StatusCompleted,
			Points:         []int{10, 6, 3},
			FinalStandings: []uuid.UUID{t1, t2, t3},
			Year:           2024,
		},
		{
			ID:     upcoming,
			Type:   domain.EventTournament,
			Status: domain.StatusUpcoming,
			Points: []int{100},
			Year:   2024,
		},
	}
	s := newTestService(store)

	result, err := s.Standings(2024)
	require.NoError(t, err)

	// T4 projects a huge score but has no earned points, so it stays
	// behind every team with any earned points.
	var order []uuid.UUID
	for _, st := range result.Display {
		order = append(order, st.Team.ID)
	}
	require.Equal(t, []uuid.UUID{t1, t2, t3, t4}, order)

	for i := 1; i < len(result.Display); i++ {
		prev, cur := result.Display[i-1], result.Display[i]
		ok := prev.EarnedPoints > cur.EarnedPoints ||
			(prev.EarnedPoints == cur.EarnedPoints && prev.TotalPoints() >= cur.TotalPoints())
		require.True(t, ok, "display order violated at %d", i)
	}

	// Insertion order always mirrors team creation order.
	for i, st := range result.Insertion {
		require.Equal(t, store.teams[i].ID, st.Team.ID)
	}
}

func TestStandingsEarnedAndProjectedAccumulateSeparately(t *testing.T) {
	completed := uuid.New()
	upcoming := uuid.New()
	store := fourTeams(completed, [4]int{6000, 5500, 5000, 4500})
	t1 := store.teams[0].ID
	store.events = []domain.Event{
		{
			ID:             completed,
			Type:           domain.EventTournament,
			Status:         domain.StatusCompleted,
			Points:         []int{10},
			FinalStandings: []uuid.UUID{t1},
			Year:           2024,
		},
		{
			ID:     upcoming,
			Type:   domain.EventTournament,
			Status: domain.StatusUpcoming,
			Points: []int{5},
			Year:   2024,
		},
	}
	s := newTestService(store)

	result, err := s.Standings(2024)
	require.NoError(t, err)

	leader := standingFor(t, result.Insertion, t1)
	require.Equal(t, 10, leader.EarnedPoints)
	// Leader has no rating for the upcoming event, so every member falls
	// back to the overall rating from the completed event: still top.
	require.Equal(t, 5, leader.ProjectedPoints)
	require.Equal(t, 15, leader.TotalPoints())
	require.Len(t, leader.Results, 2)
}
