// Package placeholder supplies the demo rating, review and listing figures
// shown on agent cards until the API serves real ones.
package placeholder

import (
	"math"
	"math/rand/v2"
	"sync"
)

const (
	MinRating  = 4.5
	MaxRating  = 5.0 // exclusive
	MinReviews = 50
	MaxReviews = 350 // exclusive
)

// Values is one agent's worth of placeholder figures.
type Values struct {
	Rating     float64
	Reviews    int
	Properties int
}

// Source yields placeholder figures, one call per agent.
type Source interface {
	Next() Values
}

// Random draws a fresh rating in [MinRating, MaxRating) at one decimal and
// a review count in [MinReviews, MaxReviews). Properties is always 0.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandom() *Random {
	return NewSeeded(rand.Uint64(), rand.Uint64())
}

// NewSeeded gives a reproducible sequence.
func NewSeeded(seed1, seed2 uint64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

func (r *Random) Next() Values {
	r.mu.Lock()
	defer r.mu.Unlock()

	rating := MinRating + r.rng.Float64()*(MaxRating-MinRating)
	return Values{
		Rating:     math.Floor(rating*10) / 10,
		Reviews:    MinReviews + r.rng.IntN(MaxReviews-MinReviews),
		Properties: 0,
	}
}

// Fixed returns the same figures every time.
type Fixed Values

func (f Fixed) Next() Values {
	return Values(f)
}
