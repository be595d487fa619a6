package service

import (
	"math"
	"sort"

	"github.com/goserg/standingsserver/internal/domain"
	"github.com/goserg/standingsserver/internal/storage"

	"github.com/google/uuid"
)

// PlayerRank is one row of the global ranking.
type PlayerRank struct {
	Player domain.Player
	Rating int
	Rank   int
}

// GetRatings ranks the whole player population by overall rating,
// descending. Ties resolve by registration time, then ID, so repeated
// calls over the same snapshot produce the same order.
func (s *StandingsService) GetRatings() ([]PlayerRank, error) {
	players, err := s.players.ListPlayers()
	if err != nil {
		return nil, err
	}
	ratings, err := s.ratings.ListEventRatings(uuid.Nil, uuid.Nil)
	if err != nil {
		return nil, err
	}
	return rankPlayers(players, ratingsByPlayer(ratings)), nil
}

// GlobalRank is the player's 1-based position in the full ranking. Rank
// is a global statistic; it is never computed over a subset.
func (s *StandingsService) GlobalRank(playerID uuid.UUID) (int, error) {
	ranked, err := s.GetRatings()
	if err != nil {
		return 0, err
	}
	for _, r := range ranked {
		if r.Player.ID == playerID {
			return r.Rank, nil
		}
	}
	return 0, storage.ErrNotFound
}

func rankPlayers(players []domain.Player, ratings map[uuid.UUID][]domain.EventRating) []PlayerRank {
	type keyed struct {
		player domain.Player
		exact  float64
	}
	keys := make([]keyed, 0, len(players))
	for _, p := range players {
		keys = append(keys, keyed{player: p, exact: overallRatingExact(p, ratings[p.ID])})
	}
	sort.SliceStable(keys, func(i, j int) bool {
		if keys[i].exact != keys[j].exact {
			return keys[i].exact > keys[j].exact
		}
		if !keys[i].player.RegisteredAt.Equal(keys[j].player.RegisteredAt) {
			return keys[i].player.RegisteredAt.Before(keys[j].player.RegisteredAt)
		}
		return keys[i].player.ID.String() < keys[j].player.ID.String()
	})
	ranked := make([]PlayerRank, 0, len(keys))
	for i, k := range keys {
		ranked = append(ranked, PlayerRank{
			Player: k.player,
			Rating: int(math.Round(k.exact)),
			Rank:   i + 1,
		})
	}
	return ranked
}
