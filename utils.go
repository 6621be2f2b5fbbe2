package chartmark

import (
	"math"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Float | constraints.Integer
}

func Filter[T any](slice []T, predicate func(T) bool) []T {
	filtered := make([]T, 0, len(slice))
	for _, elem := range slice {
		if predicate(elem) {
			filtered = append(filtered, elem)
		}
	}
	return filtered
}

func Min[T Number](a T, b T) T {
	if a > b {
		return b
	}

	return a
}

func Max[T Number](a T, b T) T {
	if a < b {
		return b
	}

	return a
}

// Clamp limits v to [lo, hi]. If lo > hi, lo wins.
func Clamp[T Number](v, lo, hi T) T {
	return Max(lo, Min(v, hi))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// A fixed capacity ring that keeps the most recent values. Once full, every
// push overwrites the oldest entry.
//
// Unlike container/ring this does not allocate per element and treats zero
// values as real data, which matters for charts where 0 is a normal sample.
type ring[T any] struct {
	buf   []T
	start int
	size  int
}

func newRing[T any](capacity int) *ring[T] {
	if capacity <= 0 {
		panic("ring capacity must be positive")
	}

	return &ring[T]{buf: make([]T, capacity)}
}

func (r *ring[T]) Push(v T) {
	if r.size < len(r.buf) {
		r.buf[(r.start+r.size)%len(r.buf)] = v
		r.size++
		return
	}

	r.buf[r.start] = v
	r.start = (r.start + 1) % len(r.buf)
}

func (r *ring[T]) Len() int {
	return r.size
}

func (r *ring[T]) Cap() int {
	return len(r.buf)
}

// Returns a copy of the contents, oldest first.
func (r *ring[T]) ReadAllOrdered() []T {
	arr := make([]T, 0, r.size)
	for i := 0; i < r.size; i++ {
		arr = append(arr, r.buf[(r.start+i)%len(r.buf)])
	}
	return arr
}
