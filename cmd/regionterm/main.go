// Command regionterm runs a scene in the terminal.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"regionpack/internal/app"
	_ "regionpack/internal/scenes/algebra"
	_ "regionpack/internal/scenes/cave"
	_ "regionpack/internal/scenes/flood"
	_ "regionpack/internal/scenes/morph"
	_ "regionpack/internal/scenes/sight"
	"regionpack/internal/term"
	"regionpack/pkg/region"

	"github.com/gdamore/tcell/v2"
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	v := term.New(screen, scene, cfg.Seed)
	if cfg.Paused {
		v.HandleKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	}
	err = v.Run(ctx, cfg.TPS)
	stop()
	screen.Fini()
	if err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
}
