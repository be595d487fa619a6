package service

import (
	"math"
	"sort"
	"time"

	"github.com/goserg/standingsserver/internal/domain"

	"github.com/google/uuid"
)

// maxChartRating is the soft ceiling for synthetic chart padding.
const maxChartRating = 9999

// PlayerHistory assembles day-granular rating series for a player: one
// series per rated event, plus an overall series averaging the events'
// last known ratings per day with carry-forward.
func (s *StandingsService) PlayerHistory(playerID uuid.UUID) (domain.PlayerHistory, error) {
	player, err := s.players.GetPlayer(playerID)
	if err != nil {
		return domain.PlayerHistory{}, err
	}
	ratings, err := s.ratings.ListEventRatings(player.ID, uuid.Nil)
	if err != nil {
		return domain.PlayerHistory{}, err
	}
	events, err := s.events.ListEvents(0)
	if err != nil {
		return domain.PlayerHistory{}, err
	}
	rated := make(map[uuid.UUID]bool, len(ratings))
	for _, r := range ratings {
		rated[r.EventID] = true
	}

	var history domain.PlayerHistory
	for _, event := range events {
		if !rated[event.ID] {
			continue
		}
		changes, err := s.ratings.ListHistory(player.ID, event.ID)
		if err != nil {
			return domain.PlayerHistory{}, err
		}
		history.Events = append(history.Events, domain.EventHistory{
			Event:   event,
			Points:  collapseDaily(changes),
			Changes: len(changes),
		})
		history.VoteCount += len(changes)
	}

	series := make([][]domain.RatingPoint, 0, len(history.Events))
	eventsWithData := 0
	for _, eh := range history.Events {
		if len(eh.Points) == 0 {
			continue
		}
		series = append(series, eh.Points)
		eventsWithData++
	}
	history.Overall = overallSeries(series)
	if len(history.Overall) == 1 && eventsWithData > 1 {
		history.Overall = bracketLonePoint(history.Overall[0])
	}
	return history, nil
}

// collapseDaily reduces an ascending change log to day granularity; the
// last change of a calendar day (UTC) wins.
func collapseDaily(changes []domain.RatingChange) []domain.RatingPoint {
	var points []domain.RatingPoint
	for _, change := range changes {
		day := change.Date.UTC().Truncate(24 * time.Hour)
		if n := len(points); n > 0 && points[n-1].Date.Equal(day) {
			points[n-1].Rating = change.NewRating
			continue
		}
		points = append(points, domain.RatingPoint{Date: day, Rating: change.NewRating})
	}
	return points
}

// overallSeries averages per-event series day by day. For every day seen
// in any series, each series contributes its most recent rating at or
// before that day, so an event keeps counting between its own updates.
func overallSeries(series [][]domain.RatingPoint) []domain.RatingPoint {
	daySet := make(map[time.Time]struct{})
	for _, s := range series {
		for _, p := range s {
			daySet[p.Date] = struct{}{}
		}
	}
	days := make([]time.Time, 0, len(daySet))
	for day := range daySet {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	var out []domain.RatingPoint
	for _, day := range days {
		sum, n := 0, 0
		for _, s := range series {
			rating, ok := latestAtOrBefore(s, day)
			if !ok {
				continue
			}
			sum += rating
			n++
		}
		if n == 0 {
			continue
		}
		out = append(out, domain.RatingPoint{
			Date:   day,
			Rating: int(math.Round(float64(sum) / float64(n))),
		})
	}
	return out
}

func latestAtOrBefore(points []domain.RatingPoint, day time.Time) (int, bool) {
	for i := len(points) - 1; i >= 0; i-- {
		if !points[i].Date.After(day) {
			return points[i].Rating, true
		}
	}
	return 0, false
}

// bracketLonePoint pads a single-point overall series with one synthetic
// point on each side so a trend line can be drawn. The padding reuses
// the real value clamped to the displayable range and is marked so it
// can never be mistaken for data.
func bracketLonePoint(point domain.RatingPoint) []domain.RatingPoint {
	rating := point.Rating
	if rating < domain.DefaultRating {
		rating = domain.DefaultRating
	}
	if rating > maxChartRating {
		rating = maxChartRating
	}
	return []domain.RatingPoint{
		{Date: point.Date.AddDate(0, 0, -1), Rating: rating, Synthetic: true},
		point,
		{Date: point.Date.AddDate(0, 0, 1), Rating: rating, Synthetic: true},
	}
}
