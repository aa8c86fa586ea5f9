package region

import (
	"image"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestFloodCross(t *testing.T) {
	got := Flood(cross(), Point(26, 2), 2, Diamond)
	want := Points(
		image.Pt(25, 2), image.Pt(26, 2), image.Pt(27, 2), image.Pt(28, 2),
		image.Pt(25, 3), image.Pt(26, 3), image.Pt(27, 3), image.Pt(26, 4),
	)
	if !slices.Equal(got, want) {
		t.Fatalf("Flood = %v, want %v", got.Points(), want.Points())
	}
}

func TestFloodMatchesBFS(t *testing.T) {
	board := Rectangle(0, 0, 8, 8)
	got := Flood(board, Point(0, 0), 3, Diamond)
	var want []image.Point
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if x+y <= 3 {
				want = append(want, image.Pt(x, y))
			}
		}
	}
	if !slices.Equal(got, Points(want...)) {
		t.Fatalf("Flood = %v", got.Points())
	}
}

func TestFloodDetoursAroundWalls(t *testing.T) {
	// A wall at x=3 with a gap at y=5.
	board := Difference(Rectangle(0, 0, 7, 7), Rectangle(3, 0, 1, 5))
	board = Difference(board, Rectangle(3, 6, 1, 1))
	reached := Flood(board, Point(1, 1), 100, Diamond)
	if !slices.Equal(reached, board) {
		t.Fatalf("flood did not fill the board: %v", reached.Points())
	}
	short := Flood(board, Point(2, 1), 3, Diamond)
	if short.Contains(4, 1) {
		t.Fatal("flood crossed the wall")
	}
	eight := Flood(board, Point(2, 4), 1, Square)
	if !eight.Contains(3, 5) || eight.Contains(3, 4) {
		t.Fatalf("eight-way flood = %v", eight.Points())
	}
}

func TestFloodIgnoresStartsOutsideBounds(t *testing.T) {
	board := Rectangle(0, 0, 5, 5)
	if got := Flood(board, Point(7, 7), 10, Square); !got.IsEmpty() {
		t.Fatalf("flood from outside = %v", got.Points())
	}
	if got := Flood(board, Union(Point(7, 7), Point(0, 0)), 0, Square); !slices.Equal(got, Point(0, 0)) {
		t.Fatalf("zero-step flood = %v", got.Points())
	}
}

func TestSpill(t *testing.T) {
	c := cross()
	rng := rand.New(rand.NewPCG(0xAAAA, 0x2D2))
	got := Spill(c, Point(27, 4), 30, Diamond, rng)
	if got.Count() != 30 {
		t.Fatalf("spill count = %d, want 30", got.Count())
	}
	if !got.Contains(27, 4) {
		t.Fatal("spill lost its start")
	}
	if !Equal(Intersect(got, c), got) {
		t.Fatal("spill escaped its bounds")
	}
	if !slices.Equal(Flood(got, Point(27, 4), 1000, Diamond), got) {
		t.Fatal("spill is not connected")
	}
	all := Spill(c, Point(27, 4), c.Count()+10, Diamond, rng)
	if !slices.Equal(all, c) {
		t.Fatalf("unbounded spill covered %d of %d cells", all.Count(), c.Count())
	}
}

func TestSpillIsDeterministic(t *testing.T) {
	c := cross()
	a := Spill(c, Point(30, 30), 50, Square, rand.New(rand.NewPCG(5, 6)))
	b := Spill(c, Point(30, 30), 50, Square, rand.New(rand.NewPCG(5, 6)))
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different spills")
	}
	if got := Spill(c, Point(30, 30), 50, Square, nil); got.Count() != 50 {
		t.Fatalf("spill with default rng = %d cells", got.Count())
	}
}

func TestSplit(t *testing.T) {
	a := Rectangle(0, 0, 3, 3)
	b := Rectangle(10, 10, 2, 4)
	diag := Point(3, 3)
	parts := Split(UnionAll(a, b, diag), Diamond)
	if len(parts) != 3 {
		t.Fatalf("four-way split found %d parts", len(parts))
	}
	if !slices.Equal(parts[0], a) {
		t.Fatalf("first part = %v", parts[0].Points())
	}
	parts = Split(UnionAll(a, b, diag), Square)
	if len(parts) != 2 {
		t.Fatalf("eight-way split found %d parts", len(parts))
	}
	if !slices.Equal(parts[0], Union(a, diag)) || !slices.Equal(parts[1], b) {
		t.Fatal("eight-way parts differ from the inputs")
	}
	if Split(Empty, Square) != nil {
		t.Fatal("split of empty region produced parts")
	}
}
