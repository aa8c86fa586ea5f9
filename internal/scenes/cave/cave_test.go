package cave

import (
	"testing"

	"regionpack/pkg/region"
)

func TestGenerateIsDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	a, b := Generate(cfg), Generate(cfg)
	if !region.Equal(a, b) {
		t.Fatal("same seed produced different caves")
	}
	if a.IsEmpty() {
		t.Fatal("cave has no floor")
	}
}

func TestGenerateKeepsOneCavern(t *testing.T) {
	cfg := DefaultConfig()
	floors := Generate(cfg)
	if parts := region.Split(floors, region.Diamond); len(parts) != 1 {
		t.Fatalf("largest cavern split into %d parts", len(parts))
	}
	for x := 0; x < cfg.Width; x++ {
		if floors.Contains(x, 0) || floors.Contains(x, cfg.Height-1) {
			t.Fatalf("floor on the frame at x=%d", x)
		}
	}
	for y := 0; y < cfg.Height; y++ {
		if floors.Contains(0, y) || floors.Contains(cfg.Width-1, y) {
			t.Fatalf("floor on the frame at y=%d", y)
		}
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "40", "h": "300", "wall_chance": "bad", "smoothing": "2", "keep_largest": "false"})
	def := DefaultConfig()
	if c.Width != 40 || c.Height != def.Height || c.WallChance != def.WallChance || c.Smoothing != 2 || c.KeepLargest {
		t.Fatalf("FromMap = %+v", c)
	}
}

func TestSceneSmoothsUntilLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Smoothing = 2
	s := NewScene(cfg)
	before := s.Floors()
	s.Step()
	s.Step()
	settled := s.Floors()
	s.Step()
	if !region.Equal(settled, s.Floors()) {
		t.Fatal("scene kept smoothing past its limit")
	}
	if region.Equal(before, settled) {
		t.Fatal("smoothing did not change the noise")
	}
	if len(s.Layers()) != 3 {
		t.Fatalf("layers = %d", len(s.Layers()))
	}
	cfg.KeepLargest = false
	if !region.Equal(Generate(cfg), settled) {
		t.Fatal("scene and generator disagree")
	}
}
