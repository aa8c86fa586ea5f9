package cave

import (
	"regionpack/internal/core"
	"regionpack/pkg/region"
)

// Scene shows a cave settling one smoothing pass per step.
type Scene struct {
	cfg    Config
	board  *Board
	passes int
	floors region.Region
}

// NewScene creates a cave scene with the provided configuration.
func NewScene(cfg Config) *Scene {
	s := &Scene{cfg: cfg}
	s.Reset(cfg.Seed)
	return s
}

// Name identifies the scene.
func (s *Scene) Name() string { return "cave" }

// Size returns the grid dimensions.
func (s *Scene) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Reset regenerates the noise with the provided seed.
func (s *Scene) Reset(seed int64) {
	s.cfg.Seed = seed
	s.board = NewBoard(s.cfg.Width, s.cfg.Height, seed, s.cfg.WallChance)
	s.passes = 0
	s.floors = s.board.Floors()
}

// Step runs one smoothing pass until the configured count is reached.
func (s *Scene) Step() {
	if s.passes >= s.cfg.Smoothing {
		return
	}
	s.board.Smooth()
	s.passes++
	s.floors = s.board.Floors()
}

// Floors returns the current floor region.
func (s *Scene) Floors() region.Region { return s.floors }

// Layers returns the floor, largest cavern and cavern outline.
func (s *Scene) Layers() []core.Layer {
	largest := Largest(s.floors)
	return []core.Layer{
		{Name: "floor", Region: s.floors},
		{Name: "cavern", Region: largest},
		{Name: "outline", Region: region.Surface(largest, 1, s.cfg.Width, s.cfg.Height, region.Square, region.Drop)},
	}
}

// Parameters exposes the scene's tunables.
func (s *Scene) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Cave",
			Params: []core.Parameter{
				core.IntParam("w", "Width", s.cfg.Width),
				core.IntParam("h", "Height", s.cfg.Height),
				core.Int64Param("seed", "Seed", s.cfg.Seed),
				core.FloatParam("wall_chance", "Wall chance", s.cfg.WallChance),
				core.IntParam("smoothing", "Smoothing passes", s.cfg.Smoothing),
				core.IntParam("pass", "Current pass", s.passes),
				core.IntParam("floor_cells", "Floor cells", s.floors.Count()),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable values.
func (s *Scene) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "smoothing", Label: "Smoothing passes", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 12, HasMin: true, HasMax: true},
		{Key: "wall_chance", Label: "Wall chance", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer tunable.
func (s *Scene) SetIntParameter(key string, value int) bool {
	switch key {
	case "smoothing":
		if value < 0 {
			return false
		}
		s.cfg.Smoothing = value
		return true
	}
	return false
}

// SetFloatParameter updates a floating-point tunable and regenerates the noise.
func (s *Scene) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "wall_chance":
		if value < 0 || value > 1 {
			return false
		}
		s.cfg.WallChance = value
		s.Reset(s.cfg.Seed)
		return true
	}
	return false
}

func init() {
	core.Register("cave", func(cfg map[string]string) core.Scene {
		return NewScene(FromMap(cfg))
	})
}
