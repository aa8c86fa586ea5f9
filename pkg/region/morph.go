package region

import (
	"image"

	"regionpack/pkg/curve"
)

type shapeKind uint8

const (
	kindSquare shapeKind = iota
	kindDiamond
	kindCustom
)

// Shape describes the neighbourhood used by Expand, Flood and friends.
type Shape struct {
	kind    shapeKind
	offsets []image.Point
}

var (
	// Square grows in all eight directions; radius r covers a box of side 1+2r.
	Square = Shape{kind: kindSquare}
	// Diamond grows in the four cardinal directions; radius r covers the
	// cells within Manhattan distance r.
	Diamond = Shape{kind: kindDiamond}
)

var (
	fourWay  = []image.Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	eightWay = []image.Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Offsets returns a custom shape that applies the given steps once per unit of radius.
func Offsets(steps ...image.Point) Shape {
	return Shape{kind: kindCustom, offsets: append([]image.Point(nil), steps...)}
}

// steps returns the single-step neighbourhood of s.
func (s Shape) steps() []image.Point {
	switch s.kind {
	case kindDiamond:
		return fourWay
	case kindCustom:
		return s.offsets
	default:
		return eightWay
	}
}

// Edge selects what happens to neighbours that fall outside the grid.
type Edge uint8

const (
	// Drop discards out-of-grid neighbours.
	Drop Edge = iota
	// Clamp moves out-of-grid neighbours onto the nearest edge cell.
	Clamp
)

// place maps v into [0, limit) per e, reporting false when it is dropped.
func (e Edge) place(v, limit int) (int, bool) {
	if v >= 0 && v < limit {
		return v, true
	}
	if e == Drop {
		return 0, false
	}
	return min(max(v, 0), limit-1), true
}

// indexSet collects curve indices and collapses them into a region.
type indexSet struct {
	t     *curve.Tables
	marks []bool
	n     int
}

func newIndexSet() *indexSet {
	return &indexSet{t: tables(), marks: make([]bool, curve.Cells)}
}

func (s *indexSet) add(x, y int) {
	h := s.t.Index(x, y)
	if !s.marks[h] {
		s.marks[h] = true
		s.n++
	}
}

func (s *indexSet) has(x, y int) bool { return s.marks[s.t.Index(x, y)] }

func (s *indexSet) addRegion(r Region) {
	r.each(func(h uint16) bool {
		if !s.marks[h] {
			s.marks[h] = true
			s.n++
		}
		return true
	})
}

func (s *indexSet) region() Region {
	if s.n == 0 {
		return Empty
	}
	out := make(Region, 0, 16)
	run, state := 0, false
	for _, m := range s.marks {
		if m != state {
			out = append(out, clampRun(run))
			state, run = m, 0
		}
		run++
	}
	if state {
		out = append(out, clampRun(run))
	}
	return out
}

func clampSide(width, height int) (int, int) {
	return min(max(width, 1), MaxSide), min(max(height, 1), MaxSide)
}

// Expand grows r by radius cells using shape, keeping the result inside a
// width x height grid.
func Expand(r Region, radius, width, height int, shape Shape, edge Edge) Region {
	if r.IsEmpty() || radius <= 0 {
		return r.Clone()
	}
	width, height = clampSide(width, height)
	t := tables()
	set := newIndexSet()
	switch shape.kind {
	case kindSquare:
		r.each(func(h uint16) bool {
			x, y := t.XY(h)
			x0, x1, okx := edge.span(x-radius, x+radius, width)
			y0, y1, oky := edge.span(y-radius, y+radius, height)
			if !okx || !oky {
				return true
			}
			for j := y0; j <= y1; j++ {
				for i := x0; i <= x1; i++ {
					set.add(i, j)
				}
			}
			return true
		})
	case kindDiamond:
		r.each(func(h uint16) bool {
			x, y := t.XY(h)
			for dy := -radius; dy <= radius; dy++ {
				reach := radius - abs(dy)
				ny, ok := edge.place(y+dy, height)
				if !ok {
					continue
				}
				for dx := -reach; dx <= reach; dx++ {
					if nx, ok := edge.place(x+dx, width); ok {
						set.add(nx, ny)
					}
				}
			}
			return true
		})
	default:
		// Steps may leave the grid and come back within radius, so cells
		// beyond the edge stay in the frontier while they can still return.
		pad := shape.pad()
		beyond := make(map[image.Point]bool)
		frontier := r.Points()
		for _, p := range frontier {
			if p.X < width && p.Y < height {
				set.add(p.X, p.Y)
			} else {
				beyond[p] = true
			}
		}
		for step := 0; step < radius && len(frontier) > 0; step++ {
			slack := (radius - step - 1) * pad
			var grown []image.Point
			for _, p := range frontier {
				for _, o := range shape.offsets {
					q := p.Add(o)
					nx, okx := edge.place(q.X, width)
					ny, oky := edge.place(q.Y, height)
					switch {
					case okx && oky:
						if !set.has(nx, ny) {
							set.add(nx, ny)
							grown = append(grown, image.Pt(nx, ny))
						}
					case distance(q, width, height) <= slack && !beyond[q]:
						beyond[q] = true
						grown = append(grown, q)
					}
				}
			}
			frontier = grown
		}
	}
	return set.region()
}

// span clips or clamps the closed interval [lo, hi] to [0, limit).
func (e Edge) span(lo, hi, limit int) (int, int, bool) {
	if e == Clamp {
		return min(max(lo, 0), limit-1), min(max(hi, 0), limit-1), true
	}
	lo, hi = max(lo, 0), min(hi, limit-1)
	return lo, hi, lo <= hi
}

// Translate shifts every on cell by (dx, dy), clamping into a width x height grid.
func Translate(r Region, dx, dy, width, height int) Region {
	if r.IsEmpty() {
		return Empty
	}
	width, height = clampSide(width, height)
	t := tables()
	set := newIndexSet()
	r.each(func(h uint16) bool {
		x, y := t.XY(h)
		nx, _ := Clamp.place(x+dx, width)
		ny, _ := Clamp.place(y+dy, height)
		set.add(nx, ny)
		return true
	})
	return set.region()
}

// reach returns the most negative and most positive offsets covered by
// radius steps of s on each axis.
func (s Shape) reach(radius int) (lo, hi image.Point) {
	for _, o := range s.steps() {
		lo.X, lo.Y = min(lo.X, o.X), min(lo.Y, o.Y)
		hi.X, hi.Y = max(hi.X, o.X), max(hi.Y, o.Y)
	}
	return lo.Mul(radius), hi.Mul(radius)
}

// pad is the longest single-axis move of any step in s.
func (s Shape) pad() int {
	lo, hi := s.reach(1)
	return max(-lo.X, -lo.Y, hi.X, hi.Y)
}

// distance is how many cells p sits beyond a width x height grid, or 0 inside it.
func distance(p image.Point, width, height int) int {
	return max(0, -p.X, p.X-width+1, -p.Y, p.Y-height+1)
}

// eroding returns the cells within radius of an off cell of r or of the
// area beyond the grid. Every edge of the grid counts alike.
func eroding(r Region, radius, width, height int, shape Shape, edge Edge) Region {
	width, height = clampSide(width, height)
	area := Rectangle(0, 0, width, height)
	lo, hi := shape.reach(radius)
	band := Difference(area, Rectangle(hi.X, hi.Y, width-hi.X+lo.X, height-hi.Y+lo.Y))
	return Union(band, Expand(Difference(area, r), radius, width, height, shape, edge))
}

// Retract shrinks r by radius cells using shape. Cells beyond the grid
// count as off, so r erodes away from all four grid edges.
func Retract(r Region, radius, width, height int, shape Shape, edge Edge) Region {
	if r.IsEmpty() || radius <= 0 {
		return r.Clone()
	}
	return Difference(r, eroding(r, radius, width, height, shape, edge))
}

// Fringe returns the cells added by expanding r by radius.
func Fringe(r Region, radius, width, height int, shape Shape, edge Edge) Region {
	if r.IsEmpty() || radius <= 0 {
		return Empty
	}
	return Difference(Expand(r, radius, width, height, shape, edge), r)
}

// Surface returns the cells of r within radius of an off cell or the grid edge.
func Surface(r Region, radius, width, height int, shape Shape, edge Edge) Region {
	if r.IsEmpty() || radius <= 0 {
		return Empty
	}
	return Intersect(r, eroding(r, radius, width, height, shape, edge))
}

// Fringes returns the one-cell rings around r, nearest first.
func Fringes(r Region, n, width, height int, shape Shape, edge Edge) []Region {
	if n <= 0 {
		return nil
	}
	out := make([]Region, 0, n)
	cur := r
	for i := 0; i < n; i++ {
		next := Expand(cur, 1, width, height, shape, edge)
		out = append(out, Difference(next, cur))
		cur = next
	}
	return out
}

// Surfaces returns the one-cell layers of r, outermost first.
func Surfaces(r Region, n, width, height int, shape Shape, edge Edge) []Region {
	if n <= 0 {
		return nil
	}
	out := make([]Region, 0, n)
	cur := r
	for i := 0; i < n; i++ {
		next := Retract(cur, 1, width, height, shape, edge)
		out = append(out, Difference(cur, next))
		cur = next
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
