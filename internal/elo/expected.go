package elo

import "math"

// ExpectedScore returns the probability that a player rated Ra wins
// against a player rated Rb.
// Ra - player A rating.
// Rb - player B rating.
// Standard logistic curve with a 400-point scale: a 400 point gap means
// roughly 10:1 odds. ExpectedScore(a, b) + ExpectedScore(b, a) == 1.
func ExpectedScore(Ra float64, Rb float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (Rb-Ra)/400.0))
}
