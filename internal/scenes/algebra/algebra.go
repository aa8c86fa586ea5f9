// Package algebra demonstrates the set operations on two overlapping shapes.
package algebra

import (
	"strconv"

	"regionpack/internal/core"
	rng "regionpack/pkg/core"
	"regionpack/pkg/region"
)

// Op names one set operation shown by the scene.
type Op int

const (
	OpUnion Op = iota
	OpIntersect
	OpDifference
	OpXor
	OpNegate
	opCount
)

func (o Op) String() string {
	switch o {
	case OpUnion:
		return "union"
	case OpIntersect:
		return "intersect"
	case OpDifference:
		return "difference"
	case OpXor:
		return "xor"
	case OpNegate:
		return "negate"
	}
	return "op(" + strconv.Itoa(int(o)) + ")"
}

// Config controls the algebra scene.
type Config struct {
	Width  int
	Height int
	Seed   int64
	// Arm is the thickness of each bar of the cross.
	Arm int
	// Jitter moves the bars by up to this many cells on reset.
	Jitter int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 64, Height: 64, Seed: 1337, Arm: 14, Jitter: 6}
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
	if v, ok := cfg["arm"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Arm = parsed
		}
	}
	if v, ok := cfg["jitter"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Jitter = parsed
		}
	}
	return c
}

// Scene shows a vertical bar A, a horizontal bar B and the result of one
// operation on them, cycling through the operations on each step.
type Scene struct {
	cfg  Config
	a, b region.Region
	op   Op
}

// New creates an algebra scene.
func New(cfg Config) *Scene {
	s := &Scene{cfg: cfg}
	s.Reset(cfg.Seed)
	return s
}

// Name identifies the scene.
func (s *Scene) Name() string { return "algebra" }

// Size returns the grid dimensions.
func (s *Scene) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Reset places the bars, offset by a seeded jitter.
func (s *Scene) Reset(seed int64) {
	s.cfg.Seed = seed
	r := rng.NewRNG(seed)
	w, h, arm := s.cfg.Width, s.cfg.Height, s.cfg.Arm
	jitter := func() int { return r.IntN(2*s.cfg.Jitter+1) - s.cfg.Jitter }
	s.a = region.Rectangle((w-arm)/2+jitter(), 2, arm, h-4)
	s.b = region.Rectangle(2, (h-arm)/2+jitter(), w-4, arm)
	s.op = OpUnion
}

// Step advances to the next operation.
func (s *Scene) Step() { s.op = (s.op + 1) % opCount }

// Op returns the operation currently shown.
func (s *Scene) Op() Op { return s.op }

// Operands returns the two input regions.
func (s *Scene) Operands() (region.Region, region.Region) { return s.a, s.b }

// Result applies the current operation to the operands. Negation is
// limited to the board.
func (s *Scene) Result() region.Region {
	switch s.op {
	case OpIntersect:
		return region.Intersect(s.a, s.b)
	case OpDifference:
		return region.Difference(s.a, s.b)
	case OpXor:
		return region.Xor(s.a, s.b)
	case OpNegate:
		return region.Intersect(region.Negate(region.Union(s.a, s.b)), region.Rectangle(0, 0, s.cfg.Width, s.cfg.Height))
	}
	return region.Union(s.a, s.b)
}

// Layers returns the operands, the result and the fringe of the result.
func (s *Scene) Layers() []core.Layer {
	res := s.Result()
	return []core.Layer{
		{Name: "a", Region: s.a},
		{Name: "b", Region: s.b},
		{Name: s.op.String(), Region: res},
		{Name: "fringe", Region: region.Fringe(res, 1, s.cfg.Width, s.cfg.Height, region.Square, region.Drop)},
	}
}

// Parameters exposes the scene's tunables and live counts.
func (s *Scene) Parameters() core.ParameterSnapshot {
	res := s.Result()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				core.IntParam("w", "Width", s.cfg.Width),
				core.IntParam("h", "Height", s.cfg.Height),
				core.Int64Param("seed", "Seed", s.cfg.Seed),
				core.IntParam("arm", "Arm", s.cfg.Arm),
				core.IntParam("jitter", "Jitter", s.cfg.Jitter),
			},
		},
		{
			Name: "Result",
			Params: []core.Parameter{
				core.StringParam("op", "Operation", s.op.String()),
				core.IntParam("count", "Cells", res.Count()),
				core.IntParam("runs", "Runs", len(res)),
				core.BoolParam("overlap", "A meets B", region.Intersects(s.a, s.b)),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable values.
func (s *Scene) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "arm", Label: "Arm", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: float64(min(s.cfg.Width, s.cfg.Height)), HasMin: true, HasMax: true},
		{Key: "jitter", Label: "Jitter", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 32, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer tunable and rebuilds the operands.
func (s *Scene) SetIntParameter(key string, value int) bool {
	switch key {
	case "arm":
		if value <= 0 {
			return false
		}
		s.cfg.Arm = value
	case "jitter":
		if value < 0 {
			return false
		}
		s.cfg.Jitter = value
	default:
		return false
	}
	op := s.op
	s.Reset(s.cfg.Seed)
	s.op = op
	return true
}

func init() {
	core.Register("algebra", func(cfg map[string]string) core.Scene {
		return New(FromMap(cfg))
	})
}
