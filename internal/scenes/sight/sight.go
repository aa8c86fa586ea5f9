// Package sight walks a viewer through a cave and shows what it can see.
package sight

import (
	"strconv"

	"regionpack/internal/core"
	"regionpack/internal/scenes/cave"
	rng "regionpack/pkg/core"
	"regionpack/pkg/region"
)

// Config controls the sight scene.
type Config struct {
	Cave   cave.Config
	Radius int
	Metric region.Metric
	// Stride is the farthest the viewer moves in one step.
	Stride int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Cave: cave.DefaultConfig(), Radius: 8, Metric: region.Euclidean, Stride: 4}
}

// ParseMetric maps a metric name to its value.
func ParseMetric(name string) (region.Metric, bool) {
	for _, m := range []region.Metric{region.Chebyshev, region.Manhattan, region.Euclidean} {
		if m.String() == name {
			return m, true
		}
	}
	return 0, false
}

// FromMap populates the config from a string map. Cave keys are shared with
// the cave scene.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Cave = cave.FromMap(cfg)
	if cfg == nil {
		return c
	}
	if v, ok := cfg["radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Radius = parsed
		}
	}
	if v, ok := cfg["metric"]; ok {
		if m, ok := ParseMetric(v); ok {
			c.Metric = m
		}
	}
	if v, ok := cfg["stride"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Stride = parsed
		}
	}
	return c
}

// Scene moves a viewer between floor cells it can see and remembers every
// cell it has seen.
type Scene struct {
	cfg     Config
	rng     *rng.RNG
	board   region.Region
	viewer  region.Region
	visible region.Region
	seen    region.Region
}

// New creates a sight scene.
func New(cfg Config) *Scene {
	cfg.Cave.KeepLargest = true
	s := &Scene{cfg: cfg}
	s.Reset(cfg.Cave.Seed)
	return s
}

// Name identifies the scene.
func (s *Scene) Name() string { return "sight" }

// Size returns the grid dimensions.
func (s *Scene) Size() core.Size { return core.Size{W: s.cfg.Cave.Width, H: s.cfg.Cave.Height} }

// Reset generates a new cave and places the viewer on a random floor cell.
func (s *Scene) Reset(seed int64) {
	s.cfg.Cave.Seed = seed
	s.rng = rng.NewRNG(seed)
	s.board = cave.Generate(s.cfg.Cave)
	s.viewer = region.Empty
	if p, ok := s.board.Random(s.rng); ok {
		s.viewer = region.Point(p.X, p.Y)
	}
	s.seen = region.Empty
	s.look()
}

func (s *Scene) look() {
	s.visible = region.Radiate(s.board, s.viewer, s.cfg.Radius, s.cfg.Metric)
	s.seen = region.Union(s.seen, s.visible)
}

// Reach returns the cells the viewer may move to next.
func (s *Scene) Reach() region.Region {
	return region.Reachable(s.board, s.viewer, region.Reach{Min: 1, Max: s.cfg.Stride, Metric: s.cfg.Metric})
}

// Step moves the viewer to a random reachable cell and looks again. A
// viewer with nowhere to go stays put.
func (s *Scene) Step() {
	if p, ok := s.Reach().Random(s.rng); ok {
		s.viewer = region.Point(p.X, p.Y)
	}
	s.look()
}

// Board returns the cavern.
func (s *Scene) Board() region.Region { return s.board }

// Viewer returns the viewer's cell.
func (s *Scene) Viewer() region.Region { return s.viewer }

// Visible returns the cells lit from the viewer.
func (s *Scene) Visible() region.Region { return s.visible }

// Seen returns every cell lit since the last reset.
func (s *Scene) Seen() region.Region { return s.seen }

// Layers returns the cavern, remembered cells, lit cells, the cardinal
// rays and the viewer.
func (s *Scene) Layers() []core.Layer {
	rays := region.Reachable(s.board, s.viewer, region.Reach{Min: 1, Max: s.cfg.Radius, Metric: s.cfg.Metric, Aim: region.AimEightWay})
	return []core.Layer{
		{Name: "cavern", Region: s.board},
		{Name: "seen", Region: s.seen},
		{Name: "visible", Region: s.visible},
		{Name: "rays", Region: rays},
		{Name: "viewer", Region: s.viewer},
	}
}

// Parameters exposes the scene's tunables and coverage.
func (s *Scene) Parameters() core.ParameterSnapshot {
	explored := 0.0
	if n := s.board.Count(); n > 0 {
		explored = float64(s.seen.Count()) / float64(n)
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Sight",
			Params: []core.Parameter{
				core.IntParam("radius", "Radius", s.cfg.Radius),
				core.StringParam("metric", "Metric", s.cfg.Metric.String()),
				core.IntParam("stride", "Stride", s.cfg.Stride),
				core.IntParam("visible", "Visible cells", s.visible.Count()),
				core.FloatParam("explored", "Explored", explored),
			},
		},
		{
			Name: "Cave",
			Params: []core.Parameter{
				core.Int64Param("seed", "Seed", s.cfg.Cave.Seed),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable values.
func (s *Scene) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "radius", Label: "Radius", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 64, HasMin: true, HasMax: true},
		{Key: "stride", Label: "Stride", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 32, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer tunable and relights the view.
func (s *Scene) SetIntParameter(key string, value int) bool {
	switch key {
	case "radius":
		if value < 0 {
			return false
		}
		s.cfg.Radius = value
	case "stride":
		if value <= 0 {
			return false
		}
		s.cfg.Stride = value
	default:
		return false
	}
	s.look()
	return true
}

func init() {
	core.Register("sight", func(cfg map[string]string) core.Scene {
		return New(FromMap(cfg))
	})
}
