package chartmark

import (
	"testing"
)

func TestBarPOIMarks(t *testing.T) {
	s := mustSeries(t, 0, 10, 20)

	t.Run("half way through the animation", func(t *testing.T) {
		marks := BarPOIMarks(s, square, []int{1}, DefaultChartStyle(), 0.5)
		if len(marks) != 1 {
			t.Fatalf("got %d marks, want 1", len(marks))
		}

		m := marks[0]
		wantLine := LineSegment{From: Point2D{X: 50, Y: 99}, To: Point2D{X: 50, Y: 74.5}}
		if !segmentsEqual(m.Line, wantLine) {
			t.Fatalf("line: got %v want %v", m.Line, wantLine)
		}

		wantPoint := Rect{X: 45.5, Y: 45.5, Width: 9, Height: 9}
		if !rectsEqual(m.Point, wantPoint) {
			t.Fatalf("point: got %v want %v", m.Point, wantPoint)
		}

		if m.Opacity != 0.5 {
			t.Fatalf("opacity: got %v want 0.5", m.Opacity)
		}
	})

	t.Run("keeps order and skips unknown indices", func(t *testing.T) {
		marks := BarPOIMarks(s, square, []int{2, 7, -1, 0}, DefaultChartStyle(), 1)
		if len(marks) != 2 || marks[0].Index != 2 || marks[1].Index != 0 {
			t.Fatalf("got %+v", marks)
		}
	})

	t.Run("animation disabled", func(t *testing.T) {
		style := DefaultChartStyle()
		style.DisableAnimation = true

		marks := BarPOIMarks(s, square, []int{2}, style, 0)
		if len(marks) != 1 || marks[0].Opacity != 1 {
			t.Fatalf("got %+v", marks)
		}
		if !approxEqual(marks[0].Line.To.Y, 0) {
			t.Fatalf("line should be fully drawn, got %v", marks[0].Line)
		}
	})

	t.Run("progress is clamped", func(t *testing.T) {
		marks := BarPOIMarks(s, square, []int{2}, DefaultChartStyle(), -4)
		if marks[0].Opacity != 0 || marks[0].Line.To != marks[0].Line.From {
			t.Fatalf("got %+v", marks[0])
		}
	})

	t.Run("style range override", func(t *testing.T) {
		style := DefaultChartStyle()
		hi := 40.0
		style.YMax = &hi

		marks := BarPOIMarks(s, square, []int{2}, style, 1)
		if !approxEqual(marks[0].Line.To.Y, 50) {
			t.Fatalf("got %v", marks[0].Line)
		}
	})

	t.Run("nothing for small charts", func(t *testing.T) {
		if marks := BarPOIMarks(mustSeries(t, 1, 2), square, []int{0}, DefaultChartStyle(), 1); marks != nil {
			t.Fatalf("got %+v", marks)
		}
	})
}
