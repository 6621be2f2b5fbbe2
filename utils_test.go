package chartmark

import (
	"math"
	"reflect"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

func pointsEqual(a, b Point2D) bool {
	return approxEqual(a.X, b.X) && approxEqual(a.Y, b.Y)
}

func segmentsEqual(a, b LineSegment) bool {
	return pointsEqual(a.From, b.From) && pointsEqual(a.To, b.To)
}

func rectsEqual(a, b Rect) bool {
	return approxEqual(a.X, b.X) && approxEqual(a.Y, b.Y) && approxEqual(a.Width, b.Width) && approxEqual(a.Height, b.Height)
}

func mustSeries[T Number](t *testing.T, values ...T) ValueSeries {
	t.Helper()
	s, err := NewValueSeries(values)
	if err != nil {
		t.Fatalf("NewValueSeries(%v) failed: %v", values, err)
	}
	return s
}

func TestFilter(t *testing.T) {
	t.Run("empty slice", func(t *testing.T) {
		var input []int = nil
		pred := func(int) bool { return true }
		got := Filter(input, pred)
		want := []int{}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Filter(%v) = %v, want %v", input, got, want)
		}
	})

	t.Run("no matches", func(t *testing.T) {
		input := []int{1, 2, 3}
		got := Filter(input, func(x int) bool { return x > 10 })
		want := []int{}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Filter(%v) = %v, want %v", input, got, want)
		}
	})

	t.Run("partial match", func(t *testing.T) {
		input := []int{1, 2, 3}
		got := Filter(input, func(x int) bool { return x%2 == 1 })
		want := []int{1, 3}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Filter(%v) = %v, want %v", input, got, want)
		}
	})
}

func TestMinMaxClamp(t *testing.T) {
	if got := Min(5, 3); got != 3 {
		t.Fatalf("Min(5,3) = %v, want 3", got)
	}

	if got := Max(5, 3); got != 5 {
		t.Fatalf("Max(5,3) = %v, want 5", got)
	}

	if got := Max(-2.5, -1.0); got != -1.0 {
		t.Fatalf("Max(-2.5,-1.0) = %v, want -1.0", got)
	}

	cases := []struct {
		v, lo, hi, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-3, 0, 1, 0},
		{7, 0, 1, 1},
		{5, 4, 2, 4}, // inverted bounds: lo wins
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
		}
	}

	if got := Clamp(12, 0, 9); got != 9 {
		t.Fatalf("Clamp(12, 0, 9) = %v, want 9", got)
	}
}

func TestRing(t *testing.T) {
	t.Run("capacity 1 overwrite", func(t *testing.T) {
		r := newRing[int](1)
		r.Push(1)
		r.Push(2)
		got := r.ReadAllOrdered()
		want := []int{2}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("got %v want %v", got, want)
		}
	})

	t.Run("partial fill preserved order", func(t *testing.T) {
		r := newRing[int](3)
		r.Push(10)
		r.Push(20)
		got := r.ReadAllOrdered()
		want := []int{10, 20}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("got %v want %v", got, want)
		}
		if r.Len() != 2 || r.Cap() != 3 {
			t.Fatalf("Len/Cap = %d/%d, want 2/3", r.Len(), r.Cap())
		}
	})

	t.Run("zero values are kept", func(t *testing.T) {
		r := newRing[float64](3)
		r.Push(0)
		r.Push(0)
		got := r.ReadAllOrdered()
		want := []float64{0, 0}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("got %v want %v", got, want)
		}
	})

	t.Run("multiple wraparound overflow", func(t *testing.T) {
		r := newRing[int](3)
		for i := 1; i <= 7; i++ {
			r.Push(i)
		}
		got := r.ReadAllOrdered()
		want := []int{5, 6, 7}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("got %v want %v", got, want)
		}
	})

	t.Run("read on empty returns empty", func(t *testing.T) {
		r := newRing[int](3)
		if got := r.ReadAllOrdered(); len(got) != 0 {
			t.Fatalf("expected empty slice, got %v", got)
		}
	})

	t.Run("zero capacity panics", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Fatalf("expected panic for zero capacity ring")
			}
		}()
		newRing[int](0)
	})
}
