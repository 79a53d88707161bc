package random

import (
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// ErrNoItems is returned when a weighted choice is asked to pick from an
// empty table.
var ErrNoItems = errors.New("weighted choice requires at least one item")

// ErrZeroTotalWeight is returned when every weight in a table is zero. A
// zero-total table is a configuration bug, so it fails loudly instead of
// falling back to an arbitrary item.
var ErrZeroTotalWeight = errors.New("weighted choice total weight is zero")

// Source is a pseudo-random stream passed explicitly through every sampling
// call. A seed of 0 derives one from the wall clock; any other value gives
// reproducible sequences.
type Source struct {
	rng *rand.Rand
}

// New creates a Source from a seed.
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// IntBetween returns a uniform integer in [min, max] inclusive.
func (s *Source) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return s.rng.Intn(max-min+1) + min
}

// Float64Between returns a uniform float in [min, max).
func (s *Source) Float64Between(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.rng.Float64()*(max-min)
}

// Bool returns true with the given probability.
func (s *Source) Bool(probability float64) bool {
	return s.rng.Float64() < probability
}

// Perm returns a random permutation of [0, n).
func (s *Source) Perm(n int) []int {
	return s.rng.Perm(n)
}

// DateBetween returns a uniform instant in [start, end). If the range is
// empty it returns start.
func (s *Source) DateBetween(start, end time.Time) time.Time {
	span := end.Sub(start)
	if span <= 0 {
		return start
	}
	return start.Add(time.Duration(s.rng.Int63n(int64(span))))
}

// SeasonalDate samples an instant in [start, end) biased by a 12-entry
// monthly weight table, using rejection sampling with a bounded number of
// attempts. When every attempt is rejected it falls back to an unweighted
// draw so the caller always gets a date.
func (s *Source) SeasonalDate(start, end time.Time, monthWeights [12]float64, attempts int) time.Time {
	maxWeight := 0.0
	for _, w := range monthWeights {
		if w > maxWeight {
			maxWeight = w
		}
	}
	if maxWeight <= 0 {
		return s.DateBetween(start, end)
	}
	for i := 0; i < attempts; i++ {
		candidate := s.DateBetween(start, end)
		w := monthWeights[int(candidate.Month())-1]
		if s.rng.Float64() < w/maxWeight {
			return candidate
		}
	}
	return s.DateBetween(start, end)
}

// HourOfDay picks an hour in [0, 23] by cumulative scan over a 24-bucket
// weight table. A zero-total table degrades to a uniform hour.
func (s *Source) HourOfDay(weights [24]float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return s.IntBetween(0, 23)
	}
	target := s.rng.Float64() * total
	cumulative := 0.0
	for hour, w := range weights {
		cumulative += w
		if target < cumulative {
			return hour
		}
	}
	return 23
}

// UUID returns a version 4 UUID drawn from this source instead of
// crypto/rand, so a fixed seed reproduces identifiers too.
func (s *Source) UUID() string {
	id, err := uuid.NewRandomFromReader(s.rng)
	if err != nil {
		// rand.Rand.Read never fails.
		panic(err)
	}
	return id.String()
}

const tokenAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Token returns an opaque identifier of n random alphanumeric characters
// with the given prefix. Collisions are only probabilistically avoided.
func (s *Source) Token(prefix string, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = tokenAlphabet[s.rng.Intn(len(tokenAlphabet))]
	}
	return prefix + string(buf)
}

// Weighted pairs an item with its relative, non-negative weight.
type Weighted[T any] struct {
	Item   T
	Weight float64
}

// Choice picks one item with probability proportional to its weight.
func Choice[T any](s *Source, items []Weighted[T]) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrNoItems
	}
	total := 0.0
	for _, it := range items {
		if it.Weight > 0 {
			total += it.Weight
		}
	}
	if total <= 0 {
		return zero, ErrZeroTotalWeight
	}
	target := s.rng.Float64() * total
	cumulative := 0.0
	for _, it := range items {
		if it.Weight <= 0 {
			continue
		}
		cumulative += it.Weight
		if target < cumulative {
			return it.Item, nil
		}
	}
	return items[len(items)-1].Item, nil
}

// Pick returns a uniform element of a non-empty slice.
func Pick[T any](s *Source, items []T) T {
	return items[s.rng.Intn(len(items))]
}
