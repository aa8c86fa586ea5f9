package curve

import (
	"image"
	"sync"
)

const (
	// Side is the width and height of the 2D traversal.
	Side = 256
	// Cells is the number of positions along the 2D traversal.
	Cells = Side * Side

	// Side3 is the edge length of the 3D traversal.
	Side3 = 8
	// Cells3 is the number of positions along the 3D traversal.
	Cells3 = Side3 * Side3 * Side3

	// MooreSide is the edge length of the closed Moore traversal.
	MooreSide = 16
	// MooreCells is the number of positions along the Moore traversal.
	MooreCells = MooreSide * MooreSide
)

// Tables holds bidirectional lookup tables for the 256x256 Hilbert curve and
// the two auxiliary traversals. A Tables value is immutable once built.
type Tables struct {
	hx, hy [Cells]uint8
	dist   [Cells]uint16

	h3x, h3y, h3z [Cells3]uint8
	dist3         [Cells3]uint16

	mx, my [MooreCells]uint8
	mdist  [MooreCells]uint8
}

// Default returns the process-wide tables, building them on first use.
var Default = sync.OnceValue(New)

// New builds a fresh set of tables.
func New() *Tables {
	t := &Tables{}
	t.build2D()
	t.build3D()
	t.buildMoore()
	return t
}

func (t *Tables) build2D() {
	for y := 0; y < Side; y++ {
		for x := 0; x < Side; x++ {
			h := Encode(x, y)
			t.hx[h] = uint8(x)
			t.hy[h] = uint8(y)
			t.dist[x|y<<8] = h
		}
	}
}

func (t *Tables) build3D() {
	for z := 0; z < Side3; z++ {
		for y := 0; y < Side3; y++ {
			for x := 0; x < Side3; x++ {
				h := mortonToHilbert3(MortonEncode3(x, y, z))
				t.h3x[h] = uint8(x)
				t.h3y[h] = uint8(y)
				t.h3z[h] = uint8(z)
				t.dist3[x|y<<3|z<<6] = uint16(h)
			}
		}
	}
}

// mooreQuadrants lists, in traversal order, where each copy of the 8x8
// Hilbert block lands and which axes it is mirrored on.
var mooreQuadrants = [4]struct {
	ox, oy           int
	mirrorX, mirrorY bool
}{
	{0, 0, false, true},
	{8, 0, false, true},
	{8, 8, true, false},
	{0, 8, true, false},
}

func (t *Tables) buildMoore() {
	const block = 64
	i := 0
	for _, q := range mooreQuadrants {
		for h := 0; h < block; h++ {
			x, y := int(t.hx[h]), int(t.hy[h])
			if q.mirrorX {
				x = 7 - x
			}
			if q.mirrorY {
				y = 7 - y
			}
			x += q.ox
			y += q.oy
			t.mx[i] = uint8(x)
			t.my[i] = uint8(y)
			t.mdist[x|y<<4] = uint8(i)
			i++
		}
	}
}

// Index returns the curve index of (x, y). Coordinates must lie in [0, 255].
func (t *Tables) Index(x, y int) uint16 { return t.dist[(x&0xff)|(y&0xff)<<8] }

// IndexOK is Index with a bounds check.
func (t *Tables) IndexOK(x, y int) (uint16, bool) {
	if x < 0 || y < 0 || x >= Side || y >= Side {
		return 0, false
	}
	return t.dist[x|y<<8], true
}

// X returns the x coordinate of curve index h.
func (t *Tables) X(h uint16) int { return int(t.hx[h]) }

// Y returns the y coordinate of curve index h.
func (t *Tables) Y(h uint16) int { return int(t.hy[h]) }

// XY returns both coordinates of curve index h.
func (t *Tables) XY(h uint16) (int, int) { return int(t.hx[h]), int(t.hy[h]) }

// Point returns the cell at curve index h.
func (t *Tables) Point(h uint16) image.Point { return image.Pt(int(t.hx[h]), int(t.hy[h])) }

// Index3 returns the 3D curve index of (x, y, z), each in [0, 7].
func (t *Tables) Index3(x, y, z int) uint16 { return t.dist3[(x&7)|(y&7)<<3|(z&7)<<6] }

// Point3 returns the coordinates of 3D curve index h in [0, 511].
func (t *Tables) Point3(h uint16) (int, int, int) {
	h &= Cells3 - 1
	return int(t.h3x[h]), int(t.h3y[h]), int(t.h3z[h])
}

// MooreIndex returns the position of (x, y), each in [0, 15], along the Moore loop.
func (t *Tables) MooreIndex(x, y int) int { return int(t.mdist[(x&15)|(y&15)<<4]) }

// MoorePoint returns the cell at Moore position i in [0, 255].
func (t *Tables) MoorePoint(i int) image.Point {
	i &= MooreCells - 1
	return image.Pt(int(t.mx[i]), int(t.my[i]))
}
