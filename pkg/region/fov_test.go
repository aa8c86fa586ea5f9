package region

import (
	"testing"
)

func TestRadiateOpenBoard(t *testing.T) {
	board := Rectangle(0, 0, 20, 20)
	cases := []struct {
		metric Metric
		want   int
	}{
		{Chebyshev, 49},
		{Manhattan, 25},
		{Euclidean, 29},
	}
	for _, tc := range cases {
		got := Radiate(board, Point(10, 10), 3, tc.metric)
		if got.Count() != tc.want {
			t.Fatalf("%v: count = %d, want %d", tc.metric, got.Count(), tc.want)
		}
	}
	if got := Radiate(board, Point(0, 0), 3, Chebyshev).Count(); got != 16 {
		t.Fatalf("corner radiate = %d, want 16", got)
	}
	if !Radiate(board, Point(10, 10), 3, Euclidean).Contains(10, 10) {
		t.Fatal("origin is not lit")
	}
}

func TestRadiateBlockedByWall(t *testing.T) {
	board := Difference(Rectangle(0, 0, 20, 20), Rectangle(12, 0, 1, 20))
	got := Radiate(board, Point(10, 10), 5, Chebyshev)
	if got.Count() != 77 {
		t.Fatalf("count = %d, want 77", got.Count())
	}
	for _, p := range got.Points() {
		if p.X >= 12 {
			t.Fatalf("saw through the wall to %v", p)
		}
	}
}

func TestRadiateShadow(t *testing.T) {
	board := Difference(Rectangle(0, 0, 20, 20), Point(12, 10))
	got := Radiate(board, Point(10, 10), 5, Chebyshev)
	if got.Count() != 117 {
		t.Fatalf("count = %d, want 117", got.Count())
	}
	for _, x := range []int{12, 13, 14, 15} {
		if got.Contains(x, 10) {
			t.Fatalf("cell (%d,10) should be hidden", x)
		}
	}
	if !got.Contains(14, 12) {
		t.Fatal("cell (14,12) should be visible")
	}
}

func TestReachableFree(t *testing.T) {
	board := Rectangle(0, 0, 20, 20)
	ring := Reachable(board, Point(10, 10), Reach{Min: 2, Max: 3, Metric: Chebyshev})
	if ring.Count() != 40 {
		t.Fatalf("ring count = %d, want 40", ring.Count())
	}
	if ring.Contains(10, 10) || ring.Contains(11, 11) {
		t.Fatal("ring includes cells closer than the minimum")
	}
	if !Reachable(board, Point(10, 10), Reach{Min: 3, Max: 2}).IsEmpty() {
		t.Fatal("inverted range should be empty")
	}
}

func TestReachableRays(t *testing.T) {
	board := Rectangle(0, 0, 20, 20)
	cases := []struct {
		name string
		aim  Aim
		want int
	}{
		{"orthogonal", AimOrthogonal, 12},
		{"diagonal", AimDiagonal, 12},
		{"eight way", AimEightWay, 24},
	}
	for _, tc := range cases {
		got := Reachable(board, Point(10, 10), Reach{Min: 1, Max: 3, Metric: Chebyshev, Aim: tc.aim})
		if got.Count() != tc.want {
			t.Fatalf("%s: count = %d, want %d", tc.name, got.Count(), tc.want)
		}
		if got.Contains(10, 10) {
			t.Fatalf("%s: includes the origin below the minimum", tc.name)
		}
	}

	blocked := Difference(board, Point(12, 10))
	got := Reachable(blocked, Point(10, 10), Reach{Max: 5, Metric: Chebyshev, Aim: AimOrthogonal})
	if got.Count() != 17 {
		t.Fatalf("blocked rays count = %d, want 17", got.Count())
	}
	if !got.Contains(11, 10) || got.Contains(13, 10) {
		t.Fatal("east ray should stop before the blocker")
	}

	edge := Reachable(board, Point(1, 1), Reach{Min: 1, Max: 4, Metric: Chebyshev, Aim: AimOrthogonal})
	if edge.Count() != 10 {
		t.Fatalf("rays near the edge = %d, want 10", edge.Count())
	}

	manhattan := Reachable(board, Point(10, 10), Reach{Min: 1, Max: 3, Metric: Manhattan, Aim: AimDiagonal})
	if manhattan.Count() != 4 {
		t.Fatalf("manhattan diagonals = %d, want 4", manhattan.Count())
	}
}

func TestMetricDistance(t *testing.T) {
	if Chebyshev.Distance(-3, 2) != 3 || Manhattan.Distance(-3, 2) != 5 || Euclidean.Distance(3, 4) != 5 {
		t.Fatal("unexpected metric distances")
	}
	if Euclidean.String() != "euclidean" {
		t.Fatalf("String = %q", Euclidean.String())
	}
}
