package utils

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrEmptyTable is returned when a picker is built without items
	ErrEmptyTable = errors.New("weighted table is empty")
	// ErrNonPositiveWeight is returned for weights <= 0
	ErrNonPositiveWeight = errors.New("weight must be positive")
	// ErrLengthMismatch is returned when items and weights differ in length
	ErrLengthMismatch = errors.New("items and weights length mismatch")
)

// WeightedPicker selects items with probability proportional to their weight.
// It keeps a cumulative-weight table so each pick is one uniform draw plus a
// binary search. A picker is immutable and safe for concurrent use as long as
// the rng passed to Pick is.
type WeightedPicker[T any] struct {
	items      []T
	weights    []int
	cumulative []int
	total      int
}

// NewWeightedPicker builds a picker from parallel item and weight slices.
func NewWeightedPicker[T any](items []T, weights []int) (*WeightedPicker[T], error) {
	if len(items) == 0 {
		return nil, ErrEmptyTable
	}
	if len(items) != len(weights) {
		return nil, fmt.Errorf("%w: %d items, %d weights", ErrLengthMismatch, len(items), len(weights))
	}

	cumulative := make([]int, len(weights))
	total := 0
	for i, w := range weights {
		if w <= 0 {
			return nil, fmt.Errorf("%w: index %d has weight %d", ErrNonPositiveWeight, i, w)
		}
		total += w
		cumulative[i] = total
	}

	return &WeightedPicker[T]{
		items:      append([]T(nil), items...),
		weights:    append([]int(nil), weights...),
		cumulative: cumulative,
		total:      total,
	}, nil
}

// MustWeightedPicker is NewWeightedPicker for static tables known to be valid.
func MustWeightedPicker[T any](items []T, weights []int) *WeightedPicker[T] {
	p, err := NewWeightedPicker(items, weights)
	if err != nil {
		panic(err)
	}
	return p
}

// Pick draws one item. rng must return a value in [0, n).
func (p *WeightedPicker[T]) Pick(rng func(int) int) T {
	return p.items[p.Index(rng(p.total))]
}

// Index maps a roll in [0, total) to the index of the item that owns it.
// Rolls outside the range are clamped.
func (p *WeightedPicker[T]) Index(roll int) int {
	if roll < 0 {
		return 0
	}
	// first cumulative bound strictly greater than roll
	i := sort.SearchInts(p.cumulative, roll+1)
	if i >= len(p.items) {
		return len(p.items) - 1
	}
	return i
}

// Total returns the sum of all weights.
func (p *WeightedPicker[T]) Total() int {
	return p.total
}

// Len returns the number of items.
func (p *WeightedPicker[T]) Len() int {
	return len(p.items)
}

// Items returns a copy of the items in table order.
func (p *WeightedPicker[T]) Items() []T {
	return append([]T(nil), p.items...)
}

// Weights returns a copy of the weights in table order.
func (p *WeightedPicker[T]) Weights() []int {
	return append([]int(nil), p.weights...)
}

// Probability returns the chance of drawing the item at index i.
func (p *WeightedPicker[T]) Probability(i int) float64 {
	if i < 0 || i >= len(p.weights) {
		return 0
	}
	return float64(p.weights[i]) / float64(p.total)
}
