// Package term draws scenes in a terminal with one character per cell.
package term

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"regionpack/internal/core"
	"regionpack/internal/render"

	"github.com/gdamore/tcell/v2"
)

const block = '█'

// Viewer runs a scene on a tcell screen.
type Viewer struct {
	screen tcell.Screen
	scene  core.Scene
	grid   *core.ByteGrid
	seed   int64
	paused bool
	once   bool
	hidden core.LayerMask
	steps  int
}

// New creates a viewer for scene on screen. The screen must already be
// initialised.
func New(screen tcell.Screen, scene core.Scene, seed int64) *Viewer {
	size := scene.Size()
	return &Viewer{screen: screen, scene: scene, grid: core.NewByteGrid(size.W, size.H), seed: seed}
}

// Paused reports whether the scene is paused.
func (v *Viewer) Paused() bool { return v.paused }

// Steps returns the number of steps taken since the last reset.
func (v *Viewer) Steps() int { return v.steps }

// Hidden returns the current layer visibility mask.
func (v *Viewer) Hidden() core.LayerMask { return v.hidden }

// HandleKey applies a key press and reports whether the viewer should keep running.
func (v *Viewer) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		v.paused = false
		return true
	case tcell.KeyRune:
	default:
		return true
	}
	switch r := ev.Rune(); {
	case r == 'q':
		return false
	case r == ' ':
		v.paused = !v.paused
	case r == 'n':
		v.once = true
	case r == 'r':
		v.reset(v.seed)
	case r == 's':
		v.reset(time.Now().UnixNano())
	case r >= '1' && r <= '9':
		v.hidden.Toggle(int(r - '1'))
	}
	return true
}

func (v *Viewer) reset(seed int64) {
	v.seed = seed
	v.scene.Reset(seed)
	v.steps = 0
	v.once = false
}

// Tick advances the scene unless it is paused and no single step is pending.
func (v *Viewer) Tick() {
	if v.paused && !v.once {
		return
	}
	v.scene.Step()
	v.steps++
	v.once = false
}

func style(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// Draw paints the visible layers followed by a legend and status line.
func (v *Viewer) Draw() {
	v.screen.Clear()
	layers := v.scene.Layers()
	v.grid.Paint(layers, v.hidden.Visible)
	palette := render.LayerPalette(len(layers))
	cells := v.grid.Cells()
	for y := 0; y < v.grid.H; y++ {
		for x := 0; x < v.grid.W; x++ {
			c := cells[v.grid.Index(x, y)]
			if c == 0 {
				continue
			}
			v.screen.SetContent(x, y, block, nil, style(palette[c]))
		}
	}
	row := v.grid.H
	for i, l := range layers {
		if i >= 9 {
			break
		}
		mark := block
		if !v.hidden.Visible(i) {
			mark = '·'
		}
		v.screen.SetContent(0, row, mark, nil, style(palette[i+1]))
		v.print(2, row, fmt.Sprintf("%d %s (%d)", i+1, l.Name, l.Region.Count()))
		row++
	}
	state := "running"
	if v.paused {
		state = "paused"
	}
	v.print(0, row, fmt.Sprintf("%s  step %d  seed %d  %s", v.scene.Name(), v.steps, v.seed, state))
	v.screen.Show()
}

func (v *Viewer) print(x, y int, s string) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		x++
	}
}

// Run draws and steps the scene at tps until ctx is done or a quit key is
// pressed.
func (v *Viewer) Run(ctx context.Context, tps int) error {
	timer := core.NewFixedStep(tps)
	ticker := time.NewTicker(timer.Interval())
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !v.HandleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				v.screen.Sync()
			}
			v.Draw()
		case <-ticker.C:
			if timer.ShouldStep() {
				v.Tick()
				v.Draw()
			}
		}
	}
}
