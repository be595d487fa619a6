package service

import (
	"encoding/json"
	"errors"

	"github.com/goserg/standingsserver/internal/domain"

	"github.com/google/uuid"
)

const exportVersion = 1

type export struct {
	Version int
	Players []domain.Player
	Teams   []domain.Team
	Members []domain.TeamMember
	Events  []domain.Event
	Ratings []domain.EventRating
	History []domain.RatingChange
}

// Export serializes the full snapshot for backup. The engine output is
// recomputable, so only source entities are included.
func (s *StandingsService) Export() ([]byte, error) {
	players, err := s.players.ListPlayers()
	if err != nil {
		return nil, err
	}
	teams, err := s.teams.ListTeams(0)
	if err != nil {
		return nil, err
	}
	members, err := s.teams.ListTeamMembers(uuid.Nil, 0)
	if err != nil {
		return nil, err
	}
	events, err := s.events.ListEvents(0)
	if err != nil {
		return nil, err
	}
	ratings, err := s.ratings.ListEventRatings(uuid.Nil, uuid.Nil)
	if err != nil {
		return nil, err
	}
	var history []domain.RatingChange
	for _, player := range players {
		changes, err := s.ratings.ListHistory(player.ID, uuid.Nil)
		if err != nil {
			return nil, err
		}
		history = append(history, changes...)
	}
	return json.Marshal(export{
		Version: exportVersion,
		Players: players,
		Teams:   teams,
		Members: members,
		Events:  events,
		Ratings: ratings,
		History: history,
	})
}

func (s *StandingsService) Import(data []byte) error {
	var importData export
	if err := json.Unmarshal(data, &importData); err != nil {
		return err
	}
	if importData.Version != exportVersion {
		return errors.New("invalid export file version")
	}
	if err := s.players.ImportPlayers(importData.Players); err != nil {
		return err
	}
	for _, team := range importData.Teams {
		if _, err := s.teams.AddTeam(team); err != nil {
			return err
		}
	}
	for _, member := range importData.Members {
		if err := s.teams.AddTeamMember(member); err != nil {
			return err
		}
	}
	for _, event := range importData.Events {
		if _, err := s.events.AddEvent(event); err != nil {
			return err
		}
	}
	for _, rating := range importData.Ratings {
		if err := s.ratings.SaveEventRating(rating); err != nil {
			return err
		}
	}
	for _, change := range importData.History {
		if err := s.ratings.AppendHistory(change); err != nil {
			return err
		}
	}
	return nil
}
