package sqlite

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/goserg/standingsserver/gen/model"
	"github.com/goserg/standingsserver/internal/domain"

	"github.com/google/uuid"
)

func convertPlayersToDomain(players []model.Players) ([]domain.Player, error) {
	converted := make([]domain.Player, 0, len(players))
	for _, player := range players {
		p, err := convertPlayerToDomain(player)
		if err != nil {
			return nil, err
		}
		converted = append(converted, p)
	}
	return converted, nil
}

func convertPlayerToDomain(player model.Players) (domain.Player, error) {
	id, err := uuid.Parse(player.ID)
	if err != nil {
		return domain.Player{}, fmt.Errorf("parse player id: %w", err)
	}
	return domain.Player{
		ID:           id,
		Name:         player.Name,
		BaseRating:   int(player.BaseRating),
		Experience:   int(player.Experience),
		Wins:         int(player.Wins),
		Active:       player.Active,
		RegisteredAt: player.CreatedAt,
	}, nil
}

func convertPlayerFromDomain(player domain.Player) model.Players {
	return model.Players{
		ID:         player.ID.String(),
		Name:       player.Name,
		BaseRating: int32(player.BaseRating),
		Experience: int32(player.Experience),
		Wins:       int32(player.Wins),
		Active:     player.Active,
		CreatedAt:  player.RegisteredAt,
	}
}

func convertEventRatingsToDomain(ratings []model.EventRatings) ([]domain.EventRating, error) {
	converted := make([]domain.EventRating, 0, len(ratings))
	for _, rating := range ratings {
		playerID, err := uuid.Parse(rating.PlayerID)
		if err != nil {
			return nil, fmt.Errorf("parse rating player id: %w", err)
		}
		eventID, err := uuid.Parse(rating.EventID)
		if err != nil {
			return nil, fmt.Errorf("parse rating event id: %w", err)
		}
		converted = append(converted, domain.EventRating{
			PlayerID: playerID,
			EventID:  eventID,
			Rating:   int(rating.Rating),
		})
	}
	return converted, nil
}

func convertEventRatingFromDomain(rating domain.EventRating) model.EventRatings {
	return model.EventRatings{
		PlayerID: rating.PlayerID.String(),
		EventID:  rating.EventID.String(),
		Rating:   int32(rating.Rating),
	}
}

func convertHistoryToDomain(history []model.EloHistory) ([]domain.RatingChange, error) {
	converted := make([]domain.RatingChange, 0, len(history))
	for _, entry := range history {
		playerID, err := uuid.Parse(entry.PlayerID)
		if err != nil {
			return nil, fmt.Errorf("parse history player id: %w", err)
		}
		eventID := uuid.Nil
		if entry.EventID != nil {
			eventID, err = uuid.Parse(*entry.EventID)
			if err != nil {
				return nil, fmt.Errorf("parse history event id: %w", err)
			}
		}
		converted = append(converted, domain.RatingChange{
			PlayerID:  playerID,
			EventID:   eventID,
			OldRating: int(entry.OldRating),
			NewRating: int(entry.NewRating),
			Date:      entry.CreatedAt,
		})
	}
	return converted, nil
}

func convertChangeFromDomain(change domain.RatingChange) model.EloHistory {
	m := model.EloHistory{
		PlayerID:  change.PlayerID.String(),
		OldRating: int32(change.OldRating),
		NewRating: int32(change.NewRating),
		CreatedAt: change.Date,
	}
	if change.EventID != uuid.Nil {
		id := change.EventID.String()
		m.EventID = &id
	}
	return m
}

func convertTeamsToDomain(teams []model.Teams) ([]domain.Team, error) {
	converted := make([]domain.Team, 0, len(teams))
	for _, team := range teams {
		t, err := convertTeamToDomain(team)
		if err != nil {
			return nil, err
		}
		converted = append(converted, t)
	}
	return converted, nil
}

func convertTeamToDomain(team model.Teams) (domain.Team, error) {
	id, err := uuid.Parse(team.ID)
	if err != nil {
		return domain.Team{}, fmt.Errorf("parse team id: %w", err)
	}
	captainID := uuid.Nil
	if team.CaptainID != nil {
		captainID, err = uuid.Parse(*team.CaptainID)
		if err != nil {
			return domain.Team{}, fmt.Errorf("parse captain id: %w", err)
		}
	}
	logo := ""
	if team.Logo != nil {
		logo = *team.Logo
	}
	return domain.Team{
		ID:           id,
		Name:         team.Name,
		Color:        team.Color,
		Abbreviation: team.Abbreviation,
		CaptainID:    captainID,
		Logo:         logo,
		Year:         int(team.Year),
	}, nil
}

func convertTeamFromDomain(team domain.Team) model.Teams {
	m := model.Teams{
		ID:           team.ID.String(),
		Name:         team.Name,
		Color:        team.Color,
		Abbreviation: team.Abbreviation,
		Year:         int32(team.Year),
		CreatedAt:    time.Now(),
	}
	if team.CaptainID != uuid.Nil {
		id := team.CaptainID.String()
		m.CaptainID = &id
	}
	if team.Logo != "" {
		logo := team.Logo
		m.Logo = &logo
	}
	return m
}

func convertTeamMembersToDomain(members []model.TeamMembers) ([]domain.TeamMember, error) {
	converted := make([]domain.TeamMember, 0, len(members))
	for _, member := range members {
		teamID, err := uuid.Parse(member.TeamID)
		if err != nil {
			return nil, fmt.Errorf("parse member team id: %w", err)
		}
		playerID, err := uuid.Parse(member.PlayerID)
		if err != nil {
			return nil, fmt.Errorf("parse member player id: %w", err)
		}
		converted = append(converted, domain.TeamMember{
			TeamID:   teamID,
			PlayerID: playerID,
			Year:     int(member.Year),
		})
	}
	return converted, nil
}

func convertTeamMemberFromDomain(member domain.TeamMember) model.TeamMembers {
	return model.TeamMembers{
		TeamID:   member.TeamID.String(),
		PlayerID: member.PlayerID.String(),
		Year:     int32(member.Year),
	}
}

func convertEventsToDomain(events []model.Events) ([]domain.Event, error) {
	converted := make([]domain.Event, 0, len(events))
	for _, event := range events {
		e, err := convertEventToDomain(event)
		if err != nil {
			return nil, err
		}
		converted = append(converted, e)
	}
	return converted, nil
}

func convertEventToDomain(event model.Events) (domain.Event, error) {
	id, err := uuid.Parse(event.ID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("parse event id: %w", err)
	}
	var points []int
	if event.Points != "" {
		if err := json.Unmarshal([]byte(event.Points), &points); err != nil {
			return domain.Event{}, fmt.Errorf("decode event points: %w", err)
		}
	}
	var standings []uuid.UUID
	if event.FinalStandings != nil {
		var ids []string
		if err := json.Unmarshal([]byte(*event.FinalStandings), &ids); err != nil {
			return domain.Event{}, fmt.Errorf("decode final standings: %w", err)
		}
		standings = make([]uuid.UUID, 0, len(ids))
		for _, raw := range ids {
			teamID, err := uuid.Parse(raw)
			if err != nil {
				return domain.Event{}, fmt.Errorf("parse standings team id: %w", err)
			}
			standings = append(standings, teamID)
		}
	}
	return domain.Event{
		ID:             id,
		Name:           event.Name,
		Abbreviation:   event.Abbreviation,
		Symbol:         event.Symbol,
		Type:           domain.EventType(event.EventType),
		Status:         domain.EventStatus(event.Status),
		Points:         points,
		FinalStandings: standings,
		Year:           int(event.Year),
	}, nil
}

func convertEventFromDomain(event domain.Event) (model.Events, error) {
	points, err := json.Marshal(event.Points)
	if err != nil {
		return model.Events{}, fmt.Errorf("encode event points: %w", err)
	}
	m := model.Events{
		ID:           event.ID.String(),
		Name:         event.Name,
		Abbreviation: event.Abbreviation,
		Symbol:       event.Symbol,
		EventType:    string(event.Type),
		Status:       string(event.Status),
		Points:       string(points),
		Year:         int32(event.Year),
		CreatedAt:    time.Now(),
	}
	if event.FinalStandings != nil {
		encoded, err := encodeStandings(event.FinalStandings)
		if err != nil {
			return model.Events{}, err
		}
		m.FinalStandings = &encoded
	}
	return m, nil
}

func encodeStandings(standings []uuid.UUID) (string, error) {
	ids := make([]string, 0, len(standings))
	for _, id := range standings {
		ids = append(ids, id.String())
	}
	encoded, err := json.Marshal(ids)
	if err != nil {
		return "", fmt.Errorf("encode final standings: %w", err)
	}
	return string(encoded), nil
}
