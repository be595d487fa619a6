package elo

import (
	"math"
	"testing"
)

func TestExpectedScore(t *testing.T) {
	type args struct {
		Ra float64
		Rb float64
	}
	tests := []struct {
		name string
		args args
		want float64
	}{
		{
			name: "equal ratings",
			args: args{
				Ra: 5000,
				Rb: 5000,
			},
			want: 0.5,
		},
		{
			name: "400 points ahead",
			args: args{
				Ra: 5400,
				Rb: 5000,
			},
			want: 10.0 / 11.0,
		},
		{
			name: "400 points behind",
			args: args{
				Ra: 5000,
				Rb: 5400,
			},
			want: 1.0 / 11.0,
		},
		{
			name: "200 points ahead",
			args: args{
				Ra: 5200,
				Rb: 5000,
			},
			want: 0.7597469266479578,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpectedScore(tt.args.Ra, tt.args.Rb); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ExpectedScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpectedScoreSymmetry(t *testing.T) {
	ratings := []float64{0, 1000, 4800, 5000, 5200, 9999, 12000}
	for _, a := range ratings {
		for _, b := range ratings {
			sum := ExpectedScore(a, b) + ExpectedScore(b, a)
			if math.Abs(sum-1.0) > 1e-9 {
				t.Errorf("ExpectedScore(%v, %v) + ExpectedScore(%v, %v) = %v, want 1", a, b, b, a, sum)
			}
		}
	}
}
