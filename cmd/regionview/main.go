//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"regionpack/internal/app"
	_ "regionpack/internal/scenes/algebra"
	_ "regionpack/internal/scenes/cave"
	_ "regionpack/internal/scenes/flood"
	_ "regionpack/internal/scenes/morph"
	_ "regionpack/internal/scenes/sight"
	"regionpack/pkg/region"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.Verbose {
		region.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}
	scene, err := cfg.NewScene()
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(scene, cfg)
	size := scene.Size()

	ebiten.SetWindowTitle("regionview: " + scene.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
