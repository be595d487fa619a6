package service

import (
	"sort"

	"github.com/goserg/standingsserver/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// StandingsResult carries the same standings twice: Display sorted for
// presentation and Insertion kept in team creation order so callers can
// recover a placement-index to team mapping independent of display sort.
type StandingsResult struct {
	Display   []domain.Standing
	Insertion []domain.Standing
}

// Standings computes the season table for the given year (0 for all).
// Completed events with a recorded result contribute earned points from
// that result and nothing else; every other event contributes projected
// points from current team ratings.
func (s *StandingsService) Standings(year int) (StandingsResult, error) {
	events, err := s.events.ListEvents(year)
	if err != nil {
		return StandingsResult{}, err
	}
	teams, err := s.teams.ListTeams(year)
	if err != nil {
		return StandingsResult{}, err
	}
	members, err := s.teams.ListTeamMembers(uuid.Nil, year)
	if err != nil {
		return StandingsResult{}, err
	}
	players, err := s.players.ListPlayers()
	if err != nil {
		return StandingsResult{}, err
	}
	ratings, err := s.ratings.ListEventRatings(uuid.Nil, uuid.Nil)
	if err != nil {
		return StandingsResult{}, err
	}
	insertion := computeStandings(events, teams, members, playersByID(players), ratingsByPlayer(ratings), s.log)
	return StandingsResult{
		Display:   displayOrder(insertion),
		Insertion: insertion,
	}, nil
}

func computeStandings(
	events []domain.Event,
	teams []domain.Team,
	members []domain.TeamMember,
	players map[uuid.UUID]domain.Player,
	ratings map[uuid.UUID][]domain.EventRating,
	log *logrus.Logger,
) []domain.Standing {
	standings := make([]domain.Standing, len(teams))
	index := make(map[uuid.UUID]int, len(teams))
	for i, team := range teams {
		standings[i] = domain.Standing{Team: team}
		index[team.ID] = i
	}
	for _, event := range events {
		switch {
		case event.Completed() && event.FinalStandings != nil:
			applyRecorded(standings, index, event, log)
		case event.Completed():
			// completed but unscored: void, never re-projected
		default:
			applyProjected(standings, teams, members, players, ratings, event)
		}
	}
	return standings
}

// applyRecorded awards earned points from an event's recorded finish
// order. Entries referencing teams missing from the snapshot are skipped
// so one dangling ID cannot void the whole table.
func applyRecorded(standings []domain.Standing, index map[uuid.UUID]int, event domain.Event, log *logrus.Logger) {
	for place, teamID := range event.FinalStandings {
		i, ok := index[teamID]
		if !ok {
			log.WithFields(logrus.Fields{
				"event": event.ID,
				"team":  teamID,
			}).Warn("final standings reference an unknown team, skipping entry")
			continue
		}
		points := pointsFor(event.Points, place)
		standings[i].EarnedPoints += points
		countFinish(&standings[i], event.Type, place)
		standings[i].Results = append(standings[i].Results, domain.EventResult{
			EventID:  event.ID,
			Points:   points,
			Position: place + 1,
		})
	}
}

// countFinish increments podium counters. Combined-team events pair two
// teams per slot, so places 0 and 1 are both first-place finishes and
// everything below counts as second.
func countFinish(standing *domain.Standing, eventType domain.EventType, place int) {
	if eventType == domain.EventCombinedTeam {
		if place <= 1 {
			standing.FirstPlaces++
		} else {
			standing.SecondPlaces++
		}
		return
	}
	switch place {
	case 0:
		standing.FirstPlaces++
	case 1:
		standing.SecondPlaces++
	}
}

// applyProjected ranks teams by current event-scoped team rating and
// hands out the paylist in that order. Teams without members have no
// rating and take no part.
func applyProjected(
	standings []domain.Standing,
	teams []domain.Team,
	members []domain.TeamMember,
	players map[uuid.UUID]domain.Player,
	ratings map[uuid.UUID][]domain.EventRating,
	event domain.Event,
) {
	type candidate struct {
		index  int
		rating float64
	}
	var ranked []candidate
	for i, team := range teams {
		rating, ok := teamRating(team, members, players, ratings, event.ID)
		if !ok {
			continue
		}
		ranked = append(ranked, candidate{index: i, rating: rating})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].rating != ranked[j].rating {
			return ranked[i].rating > ranked[j].rating
		}
		return teams[ranked[i].index].ID.String() < teams[ranked[j].index].ID.String()
	})
	for place, c := range ranked {
		points := pointsFor(event.Points, place)
		standings[c.index].ProjectedPoints += points
		standings[c.index].Results = append(standings[c.index].Results, domain.EventResult{
			EventID:   event.ID,
			Points:    points,
			Position:  place + 1,
			Projected: true,
		})
	}
}

// pointsFor is the paylist lookup: places past the end earn nothing.
func pointsFor(points []int, place int) int {
	if place < 0 || place >= len(points) {
		return 0
	}
	return points[place]
}

// displayOrder sorts by earned points, breaking ties on the speculative
// total. A team with zero earned points never outranks one with any.
func displayOrder(standings []domain.Standing) []domain.Standing {
	ordered := append([]domain.Standing(nil), standings...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].EarnedPoints != ordered[j].EarnedPoints {
			return ordered[i].EarnedPoints > ordered[j].EarnedPoints
		}
		return ordered[i].TotalPoints() > ordered[j].TotalPoints()
	})
	return ordered
}
