package sight

import (
	"testing"

	"regionpack/pkg/region"
)

func TestViewerStaysOnFloor(t *testing.T) {
	s := New(DefaultConfig())
	for i := 0; i < 20; i++ {
		if s.Viewer().Count() != 1 {
			t.Fatalf("step %d: viewer covers %d cells", i, s.Viewer().Count())
		}
		if !region.Intersects(s.Viewer(), s.Board()) {
			t.Fatalf("step %d: viewer left the cavern", i)
		}
		if !region.Intersects(s.Visible(), s.Viewer()) {
			t.Fatalf("step %d: viewer cell is not lit", i)
		}
		s.Step()
	}
}

func TestSeenAccumulates(t *testing.T) {
	s := New(DefaultConfig())
	prev := s.Seen()
	for i := 0; i < 10; i++ {
		s.Step()
		if region.Difference(prev, s.Seen()).Count() != 0 {
			t.Fatalf("step %d forgot cells", i)
		}
		if region.Difference(s.Visible(), s.Seen()).Count() != 0 {
			t.Fatalf("step %d: visible cells are not remembered", i)
		}
		if region.Difference(s.Seen(), s.Board()).Count() != 0 {
			t.Fatalf("step %d: saw past the walls", i)
		}
		prev = s.Seen()
	}
}

func TestRadiusZeroSeesOnlyViewer(t *testing.T) {
	s := New(FromMap(map[string]string{"radius": "0", "metric": "manhattan"}))
	if s.cfg.Metric != region.Manhattan {
		t.Fatalf("metric = %v", s.cfg.Metric)
	}
	if !region.Equal(s.Visible(), s.Viewer()) {
		t.Fatalf("visible = %v", s.Visible().Points())
	}
}

func TestParseMetric(t *testing.T) {
	for _, name := range []string{"chebyshev", "manhattan", "euclidean"} {
		m, ok := ParseMetric(name)
		if !ok || m.String() != name {
			t.Fatalf("ParseMetric(%q) = %v, %v", name, m, ok)
		}
	}
	if _, ok := ParseMetric("taxicab"); ok {
		t.Fatal("accepted an unknown metric")
	}
}
