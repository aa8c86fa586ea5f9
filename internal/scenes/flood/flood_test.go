package flood

import (
	"testing"

	"regionpack/pkg/region"
)

func TestFloodFillsCavern(t *testing.T) {
	s := New(DefaultConfig())
	if s.Filled().Count() != 1 {
		t.Fatalf("initial fill = %d cells", s.Filled().Count())
	}
	prev := s.Filled().Count()
	for i := 0; i < 4096 && !s.Done(); i++ {
		s.Step()
		cur := s.Filled().Count()
		if cur <= prev {
			t.Fatalf("step %d did not grow the fill (%d -> %d)", i, prev, cur)
		}
		if region.Difference(s.Filled(), s.Board()).Count() != 0 {
			t.Fatalf("step %d escaped the cavern", i)
		}
		prev = cur
	}
	if !region.Equal(s.Filled(), s.Board()) {
		t.Fatal("flood stopped before covering the cavern")
	}
}

func TestSpillAddsVolumeStep(t *testing.T) {
	cfg := FromMap(map[string]string{"mode": "spill", "volume_step": "10"})
	if cfg.Mode != ModeSpill || cfg.VolumeStep != 10 {
		t.Fatalf("config = %+v", cfg)
	}
	s := New(cfg)
	s.Step()
	s.Step()
	if got := s.Filled().Count(); got != 21 {
		t.Fatalf("spill filled %d cells, want 21", got)
	}
	parts := region.Split(s.Filled(), region.Diamond)
	if len(parts) != 1 {
		t.Fatalf("spill is in %d parts", len(parts))
	}
}

func TestSpillIsReproducible(t *testing.T) {
	cfg := FromMap(map[string]string{"mode": "spill", "seed": "7"})
	a, b := New(cfg), New(cfg)
	for i := 0; i < 5; i++ {
		a.Step()
		b.Step()
	}
	if !region.Equal(a.Filled(), b.Filled()) {
		t.Fatal("same seed produced different spills")
	}
}

func TestLayers(t *testing.T) {
	s := New(DefaultConfig())
	s.Step()
	layers := s.Layers()
	if len(layers) != 4 || layers[2].Name != "front" {
		t.Fatalf("layers = %+v", layers)
	}
	if region.Intersects(layers[2].Region, s.Filled()) {
		t.Fatal("front overlaps the fill")
	}
}
