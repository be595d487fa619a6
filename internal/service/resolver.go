package service

import (
	"math"

	"github.com/goserg/standingsserver/internal/domain"

	"github.com/google/uuid"
)

// PlayerRating resolves a player's current rating. With eventID set, the
// event-scoped rating is returned when one exists, otherwise the overall
// rating stands in for it. With eventID uuid.Nil the overall rating is
// returned: the mean of all event ratings, or the base rating when the
// player has none.
func (s *StandingsService) PlayerRating(playerID uuid.UUID, eventID uuid.UUID) (int, error) {
	player, err := s.players.GetPlayer(playerID)
	if err != nil {
		return 0, err
	}
	ratings, err := s.ratings.ListEventRatings(playerID, uuid.Nil)
	if err != nil {
		return 0, err
	}
	if eventID == uuid.Nil {
		return overallRating(player, ratings), nil
	}
	return eventRating(player, ratings, eventID), nil
}

func overallRating(player domain.Player, ratings []domain.EventRating) int {
	return int(math.Round(overallRatingExact(player, ratings)))
}

// overallRatingExact keeps full precision so the value can be used as a
// sort key without rank inversions from double rounding.
func overallRatingExact(player domain.Player, ratings []domain.EventRating) float64 {
	if len(ratings) == 0 {
		base := player.BaseRating
		if base == 0 {
			base = domain.DefaultRating
		}
		return float64(base)
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Rating
	}
	return float64(sum) / float64(len(ratings))
}

func eventRating(player domain.Player, ratings []domain.EventRating, eventID uuid.UUID) int {
	for _, r := range ratings {
		if r.EventID == eventID {
			return r.Rating
		}
	}
	return overallRating(player, ratings)
}

func eventRatingExact(player domain.Player, ratings []domain.EventRating, eventID uuid.UUID) float64 {
	for _, r := range ratings {
		if r.EventID == eventID {
			return float64(r.Rating)
		}
	}
	return overallRatingExact(player, ratings)
}
