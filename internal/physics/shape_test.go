package physics

import "testing"

// Compile-time checks that the shape kinds land in the intended interfaces.
var (
	_ FiniteShape   = Circle{}
	_ InfiniteShape = Line{}
)

// recordingCanvas captures draw calls for inspection.
type recordingCanvas struct {
	w, h    float32
	lines   [][2]Vec2
	circles []Circle
}

func (cv *recordingCanvas) Size() (float32, float32) { return cv.w, cv.h }

func (cv *recordingCanvas) Line(a, b Vec2) {
	cv.lines = append(cv.lines, [2]Vec2{a, b})
}

func (cv *recordingCanvas) CircleOutline(pos Vec2, r float32) {
	cv.circles = append(cv.circles, Circle{Pos: pos, R: r})
}

func TestNewLineRejectsDegenerateCoefficients(t *testing.T) {
	if _, err := NewLine(0, 0, 5); err == nil {
		t.Fatal("NewLine(0, 0, 5) accepted a degenerate line")
	}
	if _, err := NewLine(0, 0, 0); err == nil {
		t.Fatal("NewLine(0, 0, 0) accepted a degenerate line")
	}
	if _, err := NewLine(0, -1, 500); err != nil {
		t.Fatalf("NewLine(0, -1, 500): %v", err)
	}
}

func TestLineDrawSpansCanvas(t *testing.T) {
	floor := mustLine(t, 0, -1, 500)
	cv := &recordingCanvas{w: 800, h: 600}

	floor.Draw(cv)

	if len(cv.lines) != 1 {
		t.Fatalf("drew %d segments, want 1", len(cv.lines))
	}
	seg := cv.lines[0]
	if want := (Vec2{X: -10, Y: 500}); !vecAlmostEqual(seg[0], want) {
		t.Errorf("segment start = %v, want %v", seg[0], want)
	}
	if want := (Vec2{X: 810, Y: 500}); !vecAlmostEqual(seg[1], want) {
		t.Errorf("segment end = %v, want %v", seg[1], want)
	}
}

func TestLineDrawVerticalSpecialCase(t *testing.T) {
	wall := mustLine(t, 2, 0, -600) // x = 300
	cv := &recordingCanvas{w: 800, h: 600}

	wall.Draw(cv)

	if len(cv.lines) != 1 {
		t.Fatalf("drew %d segments, want 1", len(cv.lines))
	}
	seg := cv.lines[0]
	if want := (Vec2{X: 300, Y: -10}); !vecAlmostEqual(seg[0], want) {
		t.Errorf("segment start = %v, want %v", seg[0], want)
	}
	if want := (Vec2{X: 300, Y: 610}); !vecAlmostEqual(seg[1], want) {
		t.Errorf("segment end = %v, want %v", seg[1], want)
	}
}

func TestLineDrawEndpointsLieOnLine(t *testing.T) {
	l := mustLine(t, 1, 2, -500)
	cv := &recordingCanvas{w: 640, h: 480}

	l.Draw(cv)

	if len(cv.lines) != 1 {
		t.Fatalf("drew %d segments, want 1", len(cv.lines))
	}
	for i, p := range cv.lines[0] {
		if v := l.A*p.X + l.B*p.Y + l.C; !almostEqual(v, 0) {
			t.Errorf("endpoint %d = %v is off the line: a·x+b·y+c = %g", i, p, v)
		}
	}
}

func TestCircleDrawOutlineOnly(t *testing.T) {
	c := Circle{Pos: Vec2{X: 600, Y: 400}, R: 150}
	cv := &recordingCanvas{w: 1024, h: 768}

	c.Draw(cv)

	if len(cv.circles) != 1 {
		t.Fatalf("drew %d circles, want 1", len(cv.circles))
	}
	if cv.circles[0] != c {
		t.Errorf("drew %+v, want %+v", cv.circles[0], c)
	}
	if len(cv.lines) != 0 {
		t.Errorf("static circle drew %d line segments, want none", len(cv.lines))
	}
}
