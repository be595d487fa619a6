package service

import (
	"math"
	"sort"

	"github.com/goserg/standingsserver/internal/domain"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
)

// TeamRating resolves a team's rating for an event: the mean of every
// member's resolved rating, event-scoped when eventID is not uuid.Nil.
// Returns ErrNoMembers for a team with an empty roster.
func (s *StandingsService) TeamRating(teamID uuid.UUID, eventID uuid.UUID) (int, error) {
	team, err := s.teams.GetTeam(teamID)
	if err != nil {
		return 0, err
	}
	members, err := s.teams.ListTeamMembers(teamID, team.Year)
	if err != nil {
		return 0, err
	}
	players, err := s.players.ListPlayers()
	if err != nil {
		return 0, err
	}
	ratings, err := s.ratings.ListEventRatings(uuid.Nil, uuid.Nil)
	if err != nil {
		return 0, err
	}
	rating, ok := teamRating(team, members, playersByID(players), ratingsByPlayer(ratings), eventID)
	if !ok {
		return 0, ErrNoMembers
	}
	return int(math.Round(rating)), nil
}

// rosterIDs collects the team's member IDs plus its captain. The set
// semantics guarantee a captain that is also rostered counts once.
func rosterIDs(team domain.Team, members []domain.TeamMember) []uuid.UUID {
	set := mapset.NewSet[uuid.UUID]()
	for _, m := range members {
		if m.TeamID == team.ID {
			set.Add(m.PlayerID)
		}
	}
	if team.CaptainID != uuid.Nil {
		set.Add(team.CaptainID)
	}
	ids := set.ToSlice()
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})
	return ids
}

// teamRating averages resolved member ratings. ok is false when nothing
// can be averaged; such a team cannot receive a projected placement.
// Members referencing players missing from the snapshot are skipped.
func teamRating(
	team domain.Team,
	members []domain.TeamMember,
	players map[uuid.UUID]domain.Player,
	ratings map[uuid.UUID][]domain.EventRating,
	eventID uuid.UUID,
) (float64, bool) {
	var sum float64
	var n int
	for _, id := range rosterIDs(team, members) {
		player, ok := players[id]
		if !ok {
			continue
		}
		sum += eventRatingExact(player, ratings[id], eventID)
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
