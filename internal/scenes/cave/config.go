package cave

import (
	"strconv"

	"regionpack/pkg/region"
)

// Config controls cave board generation.
type Config struct {
	Width  int
	Height int

	Seed int64

	// WallChance is the probability that a cell starts as wall.
	WallChance float64
	// Smoothing is the number of neighbour-majority passes.
	Smoothing int
	// KeepLargest discards every floor pocket except the biggest one.
	KeepLargest bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:       64,
		Height:      64,
		Seed:        1337,
		WallChance:  0.45,
		Smoothing:   4,
		KeepLargest: true,
	}
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
	if v, ok := cfg["wall_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.WallChance = parsed
		}
	}
	if v, ok := cfg["smoothing"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Smoothing = parsed
		}
	}
	if v, ok := cfg["keep_largest"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.KeepLargest = parsed
		}
	}
	return c
}
