//go:build ebiten

package render

import (
	"regionpack/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads painted layers into an ebiten image and draws it scaled.
type GridPainter struct {
	grid *core.ByteGrid
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a w by h grid.
func NewGridPainter(w, h int) *GridPainter {
	g := core.NewByteGrid(w, h)
	return &GridPainter{grid: g, img: ebiten.NewImage(g.W, g.H)}
}

// Blit paints the visible layers onto screen at the given scale.
func (p *GridPainter) Blit(screen *ebiten.Image, layers []core.Layer, visible func(int) bool, scale int) {
	p.buf = Pixels(p.buf, p.grid, layers, visible)
	p.img.WritePixels(p.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(p.img, op)
}
