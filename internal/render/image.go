package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"regionpack/internal/core"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const captionHeight = 16

// Snapshot renders the scene's layers at scale with an optional caption
// strip along the bottom.
func Snapshot(s core.Scene, scale int, caption string) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	size := s.Size()
	grid := core.NewByteGrid(size.W, size.H)
	src := &image.RGBA{
		Pix:    Pixels(nil, grid, s.Layers(), nil),
		Stride: 4 * grid.W,
		Rect:   image.Rect(0, 0, grid.W, grid.H),
	}
	h := grid.H * scale
	if caption != "" {
		h += captionHeight
	}
	dst := image.NewRGBA(image.Rect(0, 0, grid.W*scale, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
	draw.NearestNeighbor.Scale(dst, image.Rect(0, 0, grid.W*scale, grid.H*scale), src, src.Bounds(), draw.Src, nil)
	if caption != "" {
		d := font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(color.RGBA{R: 220, G: 220, B: 230, A: 255}),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(4, h-4),
		}
		d.DrawString(caption)
	}
	return dst
}

// WritePNG encodes a snapshot of the scene as PNG.
func WritePNG(w io.Writer, s core.Scene, scale int, caption string) error {
	return png.Encode(w, Snapshot(s, scale, caption))
}
