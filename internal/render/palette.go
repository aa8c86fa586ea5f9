package render

import (
	"image/color"

	"regionpack/internal/core"
)

// Palette maps painted cell values to colours. Index 0 is the background and
// index i+1 colours layer i.
type Palette []color.RGBA

// layerColors cycles for scenes with more layers than entries.
var layerColors = []color.RGBA{
	{R: 70, G: 70, B: 82, A: 255},
	{R: 64, G: 164, B: 223, A: 255},
	{R: 240, G: 196, B: 64, A: 255},
	{R: 96, G: 200, B: 120, A: 255},
	{R: 230, G: 90, B: 80, A: 255},
	{R: 170, G: 120, B: 220, A: 255},
	{R: 240, G: 240, B: 245, A: 255},
}

// Background is the colour of cells no layer covers.
var Background = color.RGBA{R: 16, G: 16, B: 20, A: 255}

// LayerPalette returns a palette for n layers.
func LayerPalette(n int) Palette {
	p := make(Palette, n+1)
	p[0] = Background
	for i := 0; i < n; i++ {
		p[i+1] = layerColors[i%len(layerColors)]
	}
	return p
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette Palette) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}
	last := len(palette) - 1
	for i, c := range cells {
		col := palette[min(int(c), last)]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Pixels paints the visible layers onto grid and returns its RGBA bytes.
// buf is reused when it is large enough.
func Pixels(buf []byte, grid *core.ByteGrid, layers []core.Layer, visible func(int) bool) []byte {
	grid.Paint(layers, visible)
	n := 4 * len(grid.Cells())
	if cap(buf) < n {
		buf = make([]byte, n)
	}
	buf = buf[:n]
	fillPaletteRGBA(buf, grid.Cells(), LayerPalette(len(layers)))
	return buf
}
