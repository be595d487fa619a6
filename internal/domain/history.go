package domain

import "time"

// RatingPoint is one day-granular point of a rating chart. Synthetic
// points are display padding around a lone real point and carry no
// statistical meaning.
type RatingPoint struct {
	Date      time.Time
	Rating    int
	Synthetic bool
}

// EventHistory is a player's day-collapsed rating series for one event.
type EventHistory struct {
	Event  Event
	Points []RatingPoint
	// Changes counts the raw history entries behind Points, before
	// same-day collapsing.
	Changes int
}

// PlayerHistory is the assembled chart data for one player.
type PlayerHistory struct {
	Overall []RatingPoint
	Events  []EventHistory
	// VoteCount is the total number of rating changes across all event
	// histories, a proxy for how many votes touched the player.
	VoteCount int
}
