// Package flood grows a region through a generated cave, either as a
// breadth-first flood or as a random spill.
package flood

import (
	"strconv"

	"regionpack/internal/core"
	"regionpack/internal/scenes/cave"
	rng "regionpack/pkg/core"
	"regionpack/pkg/region"
)

// Mode selects how the filled area grows.
type Mode string

const (
	ModeFlood Mode = "flood"
	ModeSpill Mode = "spill"
)

// Config controls the flood scene.
type Config struct {
	Cave cave.Config
	Mode Mode
	// VolumeStep is the number of cells a spill adds per step.
	VolumeStep int
	// Eight selects eight-way growth instead of four-way.
	Eight bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Cave: cave.DefaultConfig(), Mode: ModeFlood, VolumeStep: 24}
}

// FromMap populates the config from a string map. Cave keys are shared with
// the cave scene.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Cave = cave.FromMap(cfg)
	if cfg == nil {
		return c
	}
	if v, ok := cfg["mode"]; ok {
		switch Mode(v) {
		case ModeFlood, ModeSpill:
			c.Mode = Mode(v)
		}
	}
	if v, ok := cfg["volume_step"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.VolumeStep = parsed
		}
	}
	if v, ok := cfg["eight"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Eight = parsed
		}
	}
	return c
}

// Scene fills the largest cavern from its first cell.
type Scene struct {
	cfg    Config
	rng    *rng.RNG
	board  region.Region
	start  region.Region
	filled region.Region
	steps  int
}

// New creates a flood scene.
func New(cfg Config) *Scene {
	cfg.Cave.KeepLargest = true
	s := &Scene{cfg: cfg}
	s.Reset(cfg.Cave.Seed)
	return s
}

// Name identifies the scene.
func (s *Scene) Name() string { return "flood" }

// Size returns the grid dimensions.
func (s *Scene) Size() core.Size { return core.Size{W: s.cfg.Cave.Width, H: s.cfg.Cave.Height} }

// Reset generates a new cave and empties the fill.
func (s *Scene) Reset(seed int64) {
	s.cfg.Cave.Seed = seed
	s.rng = rng.NewRNG(seed)
	s.board = cave.Generate(s.cfg.Cave)
	s.start = region.Empty
	if h, ok := s.board.First(); ok {
		s.start = region.FromIndices([]uint16{h})
	}
	s.filled = s.start
	s.steps = 0
}

func (s *Scene) shape() region.Shape {
	if s.cfg.Eight {
		return region.Square
	}
	return region.Diamond
}

// Step grows the fill by one flood step or one spill volume.
func (s *Scene) Step() {
	if s.Done() {
		return
	}
	switch s.cfg.Mode {
	case ModeSpill:
		s.filled = region.Spill(s.board, s.filled, s.filled.Count()+s.cfg.VolumeStep, s.shape(), s.rng)
	default:
		s.filled = region.Flood(s.board, s.filled, 1, s.shape())
	}
	s.steps++
}

// Done reports whether the fill covers the whole cavern.
func (s *Scene) Done() bool { return s.filled.Count() >= s.board.Count() }

// Filled returns the current fill.
func (s *Scene) Filled() region.Region { return s.filled }

// Board returns the cavern being filled.
func (s *Scene) Board() region.Region { return s.board }

// Layers returns the cavern, the fill, its growth front and the start cell.
func (s *Scene) Layers() []core.Layer {
	w, h := s.cfg.Cave.Width, s.cfg.Cave.Height
	front := region.Intersect(region.Fringe(s.filled, 1, w, h, s.shape(), region.Drop), s.board)
	return []core.Layer{
		{Name: "cavern", Region: s.board},
		{Name: "filled", Region: s.filled},
		{Name: "front", Region: front},
		{Name: "start", Region: s.start},
	}
}

// Parameters exposes the scene's tunables and progress.
func (s *Scene) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Fill",
			Params: []core.Parameter{
				core.StringParam("mode", "Mode", string(s.cfg.Mode)),
				core.IntParam("volume_step", "Spill per step", s.cfg.VolumeStep),
				core.BoolParam("eight", "Eight-way", s.cfg.Eight),
				core.IntParam("step", "Step", s.steps),
				core.IntParam("filled", "Filled cells", s.filled.Count()),
				core.IntParam("cavern", "Cavern cells", s.board.Count()),
			},
		},
		{
			Name: "Cave",
			Params: []core.Parameter{
				core.Int64Param("seed", "Seed", s.cfg.Cave.Seed),
				core.FloatParam("wall_chance", "Wall chance", s.cfg.Cave.WallChance),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable values.
func (s *Scene) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "volume_step", Label: "Spill per step", Type: core.ParamTypeInt, Step: 4, Min: 1, Max: 512, HasMin: true, HasMax: true},
		{Key: "wall_chance", Label: "Wall chance", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer tunable.
func (s *Scene) SetIntParameter(key string, value int) bool {
	if key != "volume_step" || value <= 0 {
		return false
	}
	s.cfg.VolumeStep = value
	return true
}

// SetFloatParameter updates the cave's wall chance and regenerates it.
func (s *Scene) SetFloatParameter(key string, value float64) bool {
	if key != "wall_chance" || value < 0 || value > 1 {
		return false
	}
	s.cfg.Cave.WallChance = value
	s.Reset(s.cfg.Cave.Seed)
	return true
}

func init() {
	core.Register("flood", func(cfg map[string]string) core.Scene {
		return New(FromMap(cfg))
	})
}
