// Command regiontool runs a scene headlessly and exports its layers as PNG,
// text serializations or a region archive.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"regionpack/internal/app"
	"regionpack/internal/archive"
	"regionpack/internal/core"
	"regionpack/internal/render"
	_ "regionpack/internal/scenes/algebra"
	_ "regionpack/internal/scenes/cave"
	_ "regionpack/internal/scenes/flood"
	_ "regionpack/internal/scenes/morph"
	_ "regionpack/internal/scenes/sight"
	"regionpack/pkg/region"
)

type options struct {
	app.Config
	steps   int
	width   int
	height  int
	png     string
	text    string
	archive string
	load    string
	print   bool
}

func parse(args []string, stderr io.Writer) (options, error) {
	opts := options{Config: app.NewConfig()}
	fs := flag.NewFlagSet("regiontool", flag.ContinueOnError)
	fs.SetOutput(stderr)
	opts.Bind(fs)
	fs.IntVar(&opts.steps, "steps", 0, "scene steps to run before exporting")
	fs.IntVar(&opts.width, "w", 0, "grid width (shorthand for -set w=N)")
	fs.IntVar(&opts.height, "h", 0, "grid height (shorthand for -set h=N)")
	fs.StringVar(&opts.png, "png", "", "write a PNG snapshot to this path")
	fs.StringVar(&opts.text, "text", "", "print each layer serialized as format a (ascii) or b (braille)")
	fs.StringVar(&opts.archive, "archive", "", "write the layers to this region archive")
	fs.StringVar(&opts.load, "load", "", "read a region archive instead of running a scene")
	fs.BoolVar(&opts.print, "print", false, "print the layers as a character map")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.width > 0 {
		opts.Set["w"] = strconv.Itoa(opts.width)
	}
	if opts.height > 0 {
		opts.Set["h"] = strconv.Itoa(opts.height)
	}
	switch opts.text {
	case "", "a", "b":
	default:
		return opts, fmt.Errorf("-text must be a or b, got %q", opts.text)
	}
	return opts, nil
}

func serialize(format string, r region.Region) string {
	if format == "b" {
		return region.EncodeBraille(r)
	}
	return region.EncodeASCII(r)
}

// charMap draws later layers over earlier ones using the layer numbers.
func charMap(entries []archive.Entry, w, h int) string {
	grid := core.NewByteGrid(w, h)
	layers := make([]core.Layer, len(entries))
	for i, e := range entries {
		layers[i] = core.Layer{Name: e.Name, Region: e.Region}
	}
	grid.Paint(layers, nil)
	const glyphs = ".123456789abcdefghijklmnopqrstuvwxyz"
	var b strings.Builder
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			b.WriteByte(glyphs[min(int(grid.At(x, y)), len(glyphs)-1)])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func report(stdout io.Writer, opts options, entries []archive.Entry) {
	for i, e := range entries {
		b := e.Region.Bounds()
		fmt.Fprintf(stdout, "%d %s %dx%d cells=%d runs=%d bounds=%v\n", i+1, e.Name, e.Width, e.Height, e.Region.Count(), len(e.Region), b)
		if opts.text != "" {
			fmt.Fprintln(stdout, serialize(opts.text, e.Region))
		}
	}
	if opts.print && len(entries) > 0 {
		fmt.Fprint(stdout, charMap(entries, entries[0].Width, entries[0].Height))
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parse(args, stderr)
	if err != nil {
		return err
	}
	if opts.Verbose {
		region.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer region.SetLogger(nil)
	}

	if opts.load != "" {
		entries, err := archive.Read(opts.load)
		if err != nil {
			return err
		}
		report(stdout, opts, entries)
		return nil
	}

	scene, err := opts.NewScene()
	if err != nil {
		return err
	}
	for i := 0; i < opts.steps; i++ {
		scene.Step()
	}
	size := scene.Size()
	layers := scene.Layers()
	entries := make([]archive.Entry, len(layers))
	for i, l := range layers {
		entries[i] = archive.Entry{Name: l.Name, Width: size.W, Height: size.H, Region: l.Region}
	}
	report(stdout, opts, entries)

	if opts.png != "" {
		f, err := os.Create(opts.png)
		if err != nil {
			return err
		}
		caption := fmt.Sprintf("%s seed %d step %d", scene.Name(), opts.Seed, opts.steps)
		if err := render.WritePNG(f, scene, opts.Scale, caption); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	if opts.archive != "" {
		if err := archive.Write(opts.archive, entries); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("regiontool: %v", err)
	}
}
