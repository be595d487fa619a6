package web

import (
	"github.com/goserg/standingsserver/internal/domain"
	"github.com/goserg/standingsserver/internal/service"
)

type eventResultDTO struct {
	EventID   string `json:"eventId"`
	Points    int    `json:"points"`
	Position  int    `json:"position"`
	Projected bool   `json:"isProjected"`
}

type standingDTO struct {
	TeamID          string           `json:"teamId"`
	Name            string           `json:"name"`
	Abbreviation    string           `json:"abbreviation"`
	Color           string           `json:"color"`
	EarnedPoints    int              `json:"earnedPoints"`
	ProjectedPoints int              `json:"projectedPoints"`
	TotalPoints     int              `json:"totalPoints"`
	FirstPlaces     int              `json:"firstPlaceFinishes"`
	SecondPlaces    int              `json:"secondPlaceFinishes"`
	Results         []eventResultDTO `json:"results"`
}

type standingsResponse struct {
	Display   []standingDTO `json:"displayOrdered"`
	Insertion []standingDTO `json:"insertionOrdered"`
}

func convertStandings(result service.StandingsResult) standingsResponse {
	return standingsResponse{
		Display:   convertStandingList(result.Display),
		Insertion: convertStandingList(result.Insertion),
	}
}

func convertStandingList(standings []domain.Standing) []standingDTO {
	converted := make([]standingDTO, 0, len(standings))
	for _, st := range standings {
		results := make([]eventResultDTO, 0, len(st.Results))
		for _, r := range st.Results {
			results = append(results, eventResultDTO{
				EventID:   r.EventID.String(),
				Points:    r.Points,
				Position:  r.Position,
				Projected: r.Projected,
			})
		}
		converted = append(converted, standingDTO{
			TeamID:          st.Team.ID.String(),
			Name:            st.Team.Name,
			Abbreviation:    st.Team.Abbreviation,
			Color:           st.Team.Color,
			EarnedPoints:    st.EarnedPoints,
			ProjectedPoints: st.ProjectedPoints,
			TotalPoints:     st.TotalPoints(),
			FirstPlaces:     st.FirstPlaces,
			SecondPlaces:    st.SecondPlaces,
			Results:         results,
		})
	}
	return converted
}

type playerRankDTO struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Rating   int    `json:"rating"`
	Rank     int    `json:"rank"`
}

func convertRanking(ranked []service.PlayerRank) []playerRankDTO {
	converted := make([]playerRankDTO, 0, len(ranked))
	for _, r := range ranked {
		converted = append(converted, playerRankDTO{
			PlayerID: r.Player.ID.String(),
			Name:     r.Player.Name,
			Rating:   r.Rating,
			Rank:     r.Rank,
		})
	}
	return converted
}

type ratingPointDTO struct {
	Date      string `json:"date"`
	Rating    int    `json:"rating"`
	Synthetic bool   `json:"synthetic,omitempty"`
}

type eventHistoryDTO struct {
	EventID string           `json:"eventId"`
	Name    string           `json:"name"`
	Points  []ratingPointDTO `json:"points"`
}

type historyResponse struct {
	Overall   []ratingPointDTO  `json:"overallHistory"`
	Events    []eventHistoryDTO `json:"eventHistories"`
	VoteCount int               `json:"overallVoteCount"`
}

func convertHistory(history domain.PlayerHistory) historyResponse {
	events := make([]eventHistoryDTO, 0, len(history.Events))
	for _, eh := range history.Events {
		events = append(events, eventHistoryDTO{
			EventID: eh.Event.ID.String(),
			Name:    eh.Event.Name,
			Points:  convertPoints(eh.Points),
		})
	}
	return historyResponse{
		Overall:   convertPoints(history.Overall),
		Events:    events,
		VoteCount: history.VoteCount,
	}
}

func convertPoints(points []domain.RatingPoint) []ratingPointDTO {
	converted := make([]ratingPointDTO, 0, len(points))
	for _, p := range points {
		converted = append(converted, ratingPointDTO{
			Date:      p.Date.Format("2006-01-02"),
			Rating:    p.Rating,
			Synthetic: p.Synthetic,
		})
	}
	return converted
}

type compareResponse struct {
	PlayerA      string  `json:"playerA"`
	PlayerB      string  `json:"playerB"`
	RatingA      int     `json:"ratingA"`
	RatingB      int     `json:"ratingB"`
	ProbabilityA float64 `json:"probabilityA"`
	ProbabilityB float64 `json:"probabilityB"`
}
