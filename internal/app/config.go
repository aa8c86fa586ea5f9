package app

import (
	"flag"
	"fmt"
	"strings"

	"regionpack/internal/core"
)

// KV collects repeatable -set key=value flags into a scene configuration map.
type KV map[string]string

func (kv KV) String() string {
	parts := make([]string, 0, len(kv))
	for k, v := range kv {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

// Set parses one key=value pair.
func (kv KV) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	kv[key] = strings.TrimSpace(val)
	return nil
}

// Config holds the options shared by the viewers.
type Config struct {
	Scene    string
	Seed     int64
	Scale    int
	TPS      int
	HUDWidth int
	Paused   bool
	Verbose  bool
	Set      KV
}

// NewConfig returns the default viewer options.
func NewConfig() Config {
	return Config{Scene: "cave", Seed: 1337, Scale: 8, TPS: 4, HUDWidth: 240, Set: KV{}}
}

// Bind registers the options on fs.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Scene, "scene", c.Scene, "scene to run: "+strings.Join(core.Names(), ", "))
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "scene steps per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log region diagnostics to stderr")
	fs.Var(c.Set, "set", "scene parameter as key=value (repeatable)")
}

// NewScene looks up the configured scene and builds it. The seed flag
// overrides any seed given with -set.
func (c Config) NewScene() (core.Scene, error) {
	factory, ok := core.Scenes()[c.Scene]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (have %s)", c.Scene, strings.Join(core.Names(), ", "))
	}
	scene := factory(c.Set)
	scene.Reset(c.Seed)
	return scene, nil
}
