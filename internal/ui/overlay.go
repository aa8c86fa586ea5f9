//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"math"

	"regionpack/internal/core"
	"regionpack/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Overlay toggles layers and draws debugging visuals over the scene: a
// tinted highlight of the selected layer, layer bounding boxes and a legend.
type Overlay struct {
	scene      core.Scene
	scale      int
	hidden     core.LayerMask
	selected   int
	showBounds bool
	showLegend bool
	frame      int

	maskImg *ebiten.Image
	maskBuf []byte
	cells   []uint8
	pixel   *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(scene core.Scene, scale int) *Overlay {
	o := &Overlay{scene: scene, scale: max(scale, 1), selected: -1, showLegend: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Visible reports whether layer i should be painted.
func (o *Overlay) Visible(i int) bool { return o.hidden.Visible(i) }

// Update handles the overlay's keys: 1-9 toggle layers, Tab selects the
// next layer to highlight, B shows bounds and L the legend.
func (o *Overlay) Update() {
	o.frame++
	for i, k := range digitKeys {
		if inpututil.IsKeyJustPressed(k) {
			o.hidden.Toggle(i)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		n := len(o.scene.Layers())
		o.selected++
		if o.selected >= n {
			o.selected = -1
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		o.showBounds = !o.showBounds
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		o.showLegend = !o.showLegend
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.scene.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	layers := o.scene.Layers()
	palette := render.LayerPalette(len(layers))
	if o.selected >= 0 && o.selected < len(layers) {
		pulse := 0.5 + 0.5*math.Sin(float64(o.frame)/8)
		o.drawMask(screen, layers[o.selected], color.RGBA{R: 255, G: 255, B: 255}, pulse)
	}
	if o.showBounds {
		for i, l := range layers {
			if !o.Visible(i) || l.Region.IsEmpty() {
				continue
			}
			o.drawBounds(screen, l, palette[i+1])
		}
	}
	if o.showLegend {
		o.drawLegend(screen, layers, palette)
	}
}

func (o *Overlay) drawBounds(screen *ebiten.Image, l core.Layer, col color.RGBA) {
	b := l.Region.Bounds()
	s := float64(o.scale)
	x0, y0 := float64(b.Min.X)*s, float64(b.Min.Y)*s
	x1, y1 := float64(b.Max.X)*s, float64(b.Max.Y)*s
	o.drawLine(screen, x0, y0, x1, y0, 1, col)
	o.drawLine(screen, x1, y0, x1, y1, 1, col)
	o.drawLine(screen, x1, y1, x0, y1, 1, col)
	o.drawLine(screen, x0, y1, x0, y0, 1, col)
}

func (o *Overlay) drawLegend(screen *ebiten.Image, layers []core.Layer, palette render.Palette) {
	face := basicfont.Face7x13
	for i, l := range layers {
		if i >= len(digitKeys) {
			break
		}
		col := palette[i+1]
		if !o.Visible(i) {
			col = lerpRGBA(col, render.Background, 0.7)
		}
		y := 14 + i*14
		o.drawPoint(screen, 9, float64(y-4), 8, col)
		label := fmt.Sprintf("%d %s %d", i+1, l.Name, l.Region.Count())
		if i == o.selected {
			label += " *"
		}
		text.Draw(screen, label, face, 18, y, col)
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

// drawMask tints the cells of l with intensity in [0, 1].
func (o *Overlay) drawMask(screen *ebiten.Image, l core.Layer, tint color.RGBA, intensity float64) {
	size := o.scene.Size()
	total := size.W * size.H
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
		o.cells = make([]uint8, total)
	}
	const maxAlpha = 140.0
	clear(o.cells)
	l.Region.Paint(o.cells, size.W, size.H, 1)
	alpha := uint8(math.Round(maxAlpha * clamp01(intensity)))
	for i, c := range o.cells {
		base := i * 4
		if c == 0 {
			o.maskBuf[base+0] = 0
			o.maskBuf[base+1] = 0
			o.maskBuf[base+2] = 0
			o.maskBuf[base+3] = 0
			continue
		}
		// Premultiplied alpha.
		o.maskBuf[base+0] = scaleColorComponent(tint.R, float64(alpha)/255)
		o.maskBuf[base+1] = scaleColorComponent(tint.G, float64(alpha)/255)
		o.maskBuf[base+2] = scaleColorComponent(tint.B, float64(alpha)/255)
		o.maskBuf[base+3] = alpha
	}
	o.maskImg.WritePixels(o.maskBuf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.maskImg, op)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func scaleColorComponent(value uint8, factor float64) uint8 {
	scaled := math.Round(float64(value) * factor)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
