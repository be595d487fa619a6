package service

import (
	"errors"

	"github.com/goserg/standingsserver/internal/cache/mem"
	"github.com/goserg/standingsserver/internal/domain"
	"github.com/goserg/standingsserver/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrNoMembers is returned when a team rating is requested for a team
// with an empty roster. Such a team has no defined rating.
var ErrNoMembers = errors.New("team has no members")

// StandingsService computes standings, rankings and rating histories
// from the persisted snapshot. It never writes rating data.
type StandingsService struct {
	players storage.PlayerStorage
	ratings storage.RatingStorage
	teams   storage.TeamStorage
	events  storage.EventStorage
	cache   *mem.Cache
	log     *logrus.Logger
}

func New(
	log *logrus.Logger,
	players storage.PlayerStorage,
	ratings storage.RatingStorage,
	teams storage.TeamStorage,
	events storage.EventStorage,
) *StandingsService {
	return &StandingsService{
		players: players,
		ratings: ratings,
		teams:   teams,
		events:  events,
		cache:   mem.New(),
		log:     log,
	}
}

func (s *StandingsService) ListPlayers() ([]domain.Player, error) {
	return s.players.ListPlayers()
}

func (s *StandingsService) GetPlayer(id uuid.UUID) (domain.Player, error) {
	return s.players.GetPlayer(id)
}

// GetPlayerByName finds a player by a case-insensitive name lookup.
func (s *StandingsService) GetPlayerByName(name string) (domain.Player, error) {
	if player, ok := s.cache.GetPlayerByName(name); ok {
		return player, nil
	}
	players, err := s.players.ListPlayers()
	if err != nil {
		return domain.Player{}, err
	}
	s.cache.Update(players)
	player, ok := s.cache.GetPlayerByName(name)
	if !ok {
		return domain.Player{}, storage.ErrNotFound
	}
	return player, nil
}

// ratingsByPlayer groups event ratings by their player.
func ratingsByPlayer(ratings []domain.EventRating) map[uuid.UUID][]domain.EventRating {
	m := make(map[uuid.UUID][]domain.EventRating)
	for _, r := range ratings {
		m[r.PlayerID] = append(m[r.PlayerID], r)
	}
	return m
}

func playersByID(players []domain.Player) map[uuid.UUID]domain.Player {
	m := make(map[uuid.UUID]domain.Player, len(players))
	for _, p := range players {
		m[p.ID] = p
	}
	return m
}
