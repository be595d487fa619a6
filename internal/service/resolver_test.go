package service

import (
	"errors"
	"testing"

	"github.com/goserg/standingsserver/internal/domain"
	"github.com/goserg/standingsserver/internal/storage"

	"github.com/google/uuid"
)

func TestOverallRating(t *testing.T) {
	eventA := uuid.New()
	eventB := uuid.New()
	eventC := uuid.New()
	tests := []struct {
		name    string
		player  domain.Player
		ratings []domain.EventRating
		want    int
	}{
		{
			name:   "no ratings falls back to base",
			player: domain.Player{BaseRating: 5000},
			want:   5000,
		},
		{
			name:   "no ratings and no base falls back to default",
			player: domain.Player{},
			want:   5000,
		},
		{
			name:   "no ratings custom base",
			player: domain.Player{BaseRating: 4200},
			want:   4200,
		},
		{
			name:   "single rating",
			player: domain.Player{BaseRating: 5000},
			ratings: []domain.EventRating{
				{EventID: eventA, Rating: 5600},
			},
			want: 5600,
		},
		{
			name:   "mean of two",
			player: domain.Player{BaseRating: 5000},
			ratings: []domain.EventRating{
				{EventID: eventA, Rating: 5200},
				{EventID: eventB, Rating: 4800},
			},
			want: 5000,
		},
		{
			name:   "mean rounds half up",
			player: domain.Player{BaseRating: 5000},
			ratings: []domain.EventRating{
				{EventID: eventA, Rating: 5000},
				{EventID: eventB, Rating: 5001},
			},
			want: 5001,
		},
		{
			name:   "mean of three rounds to nearest",
			player: domain.Player{BaseRating: 5000},
			ratings: []domain.EventRating{
				{EventID: eventA, Rating: 5000},
				{EventID: eventB, Rating: 5000},
				{EventID: eventC, Rating: 5001},
			},
			want: 5000,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := overallRating(tt.player, tt.ratings); got != tt.want {
				t.Errorf("overallRating() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlayerRatingEventScope(t *testing.T) {
	playerID := uuid.New()
	eventA := uuid.New()
	eventB := uuid.New()
	eventC := uuid.New()
	store := &memStorage{
		players: []domain.Player{{ID: playerID, Name: "P", BaseRating: 5000}},
		ratings: []domain.EventRating{
			{PlayerID: playerID, EventID: eventA, Rating: 5200},
			{PlayerID: playerID, EventID: eventB, Rating: 4800},
		},
	}
	s := newTestService(store)

	tests := []struct {
		name    string
		eventID uuid.UUID
		want    int
	}{
		{name: "overall is mean", eventID: uuid.Nil, want: 5000},
		{name: "rated event", eventID: eventA, want: 5200},
		{name: "other rated event", eventID: eventB, want: 4800},
		{name: "unrated event falls back to overall", eventID: eventC, want: 5000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.PlayerRating(playerID, tt.eventID)
			if err != nil {
				t.Fatalf("PlayerRating() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("PlayerRating() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlayerRatingNotFound(t *testing.T) {
	s := newTestService(&memStorage{})
	_, err := s.PlayerRating(uuid.New(), uuid.Nil)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("PlayerRating() error = %v, want ErrNotFound", err)
	}
}

func TestPlayerRatingDeterminism(t *testing.T) {
	playerID := uuid.New()
	store := &memStorage{
		players: []domain.Player{{ID: playerID, Name: "P"}},
	}
	s := newTestService(store)
	for i := 0; i < 10; i++ {
		got, err := s.PlayerRating(playerID, uuid.Nil)
		if err != nil {
			t.Fatalf("PlayerRating() error = %v", err)
		}
		if got != domain.DefaultRating {
			t.Fatalf("PlayerRating() = %v, want %v", got, domain.DefaultRating)
		}
	}
}
