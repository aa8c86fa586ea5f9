// Package morph peels a shape into surface layers and grows fringe rings
// around it, one more layer per step.
package morph

import (
	"strconv"

	"regionpack/internal/core"
	"regionpack/internal/scenes/cave"
	"regionpack/pkg/region"
)

// Config controls the morph scene.
type Config struct {
	Width    int
	Height   int
	Seed     int64
	DepthMax int
	// Eight selects the square neighbourhood instead of the diamond.
	Eight bool
	// Cave morphs a generated cavern instead of the built-in blob.
	Cave bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 64, Height: 64, Seed: 1337, DepthMax: 6}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= region.MaxSide {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= region.MaxSide {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["depth_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.DepthMax = parsed
		}
	}
	if v, ok := cfg["eight"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Eight = parsed
		}
	}
	if v, ok := cfg["cave"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Cave = parsed
		}
	}
	return c
}

// Blob returns the built-in shape: a disc with a bar through it.
func Blob(w, h int) region.Region {
	r := min(w, h) / 4
	return region.Union(
		region.Circle(w/2, h/2, r, w, h),
		region.Rectangle(w/8, h/2-2, w-w/4, 5),
	)
}

// Scene shows the base shape with depth surface and fringe layers.
type Scene struct {
	cfg   Config
	base  region.Region
	depth int
}

// New creates a morph scene.
func New(cfg Config) *Scene {
	s := &Scene{cfg: cfg}
	s.Reset(cfg.Seed)
	return s
}

// Name identifies the scene.
func (s *Scene) Name() string { return "morph" }

// Size returns the grid dimensions.
func (s *Scene) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Reset rebuilds the base shape and clears the layers.
func (s *Scene) Reset(seed int64) {
	s.cfg.Seed = seed
	s.depth = 0
	if !s.cfg.Cave {
		s.base = Blob(s.cfg.Width, s.cfg.Height)
		return
	}
	cc := cave.DefaultConfig()
	cc.Width, cc.Height, cc.Seed = s.cfg.Width, s.cfg.Height, seed
	s.base = cave.Generate(cc)
}

// Step adds one layer, wrapping back to none after DepthMax.
func (s *Scene) Step() {
	s.depth++
	if s.depth > s.cfg.DepthMax {
		s.depth = 0
	}
}

// Depth returns the number of layers shown.
func (s *Scene) Depth() int { return s.depth }

// Base returns the shape being morphed.
func (s *Scene) Base() region.Region { return s.base }

func (s *Scene) shape() region.Shape {
	if s.cfg.Eight {
		return region.Square
	}
	return region.Diamond
}

// Fringes returns the rings grown around the base, nearest first.
func (s *Scene) Fringes() []region.Region {
	return region.Fringes(s.base, s.depth, s.cfg.Width, s.cfg.Height, s.shape(), region.Drop)
}

// Surfaces returns the layers peeled off the base, outermost first.
func (s *Scene) Surfaces() []region.Region {
	return region.Surfaces(s.base, s.depth, s.cfg.Width, s.cfg.Height, s.shape(), region.Drop)
}

// Layers returns the base followed by alternating fringe and surface layers.
func (s *Scene) Layers() []core.Layer {
	layers := []core.Layer{{Name: "base", Region: s.base}}
	for i, f := range s.Fringes() {
		layers = append(layers, core.Layer{Name: "fringe" + strconv.Itoa(i+1), Region: f})
	}
	for i, sf := range s.Surfaces() {
		layers = append(layers, core.Layer{Name: "surface" + strconv.Itoa(i+1), Region: sf})
	}
	return layers
}

// Parameters exposes the scene's tunables.
func (s *Scene) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Morph",
			Params: []core.Parameter{
				core.IntParam("depth", "Depth", s.depth),
				core.IntParam("depth_max", "Max depth", s.cfg.DepthMax),
				core.BoolParam("eight", "Eight-way", s.cfg.Eight),
				core.BoolParam("cave", "Cave", s.cfg.Cave),
				core.IntParam("base_cells", "Base cells", s.base.Count()),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable values.
func (s *Scene) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "depth_max", Label: "Max depth", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 32, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer tunable.
func (s *Scene) SetIntParameter(key string, value int) bool {
	if key != "depth_max" || value < 0 {
		return false
	}
	s.cfg.DepthMax = value
	s.depth = min(s.depth, value)
	return true
}

func init() {
	core.Register("morph", func(cfg map[string]string) core.Scene {
		return New(FromMap(cfg))
	})
}
