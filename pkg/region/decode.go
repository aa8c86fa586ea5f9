package region

import (
	"fmt"
	"image"
	"strings"
)

// each calls fn with every on curve index in ascending order until fn returns false.
func (r Region) each(fn func(h uint16) bool) {
	pos := 0
	for i, v := range r {
		n := int(v)
		if i%2 == 1 {
			for h := pos; h < pos+n && h < 1<<16; h++ {
				if !fn(uint16(h)) {
					return
				}
			}
		}
		pos += n
	}
}

// eachIn calls fn with the coordinates of every on cell inside width x height.
func (r Region) eachIn(width, height int, fn func(x, y int)) {
	t := tables()
	r.each(func(h uint16) bool {
		x, y := t.XY(h)
		if x < width && y < height {
			fn(x, y)
		}
		return true
	})
}

// Bools decodes r into a width x height grid indexed grid[y][x].
func (r Region) Bools(width, height int) [][]bool {
	if width <= 0 || height <= 0 {
		return nil
	}
	grid := make([][]bool, height)
	for y := range grid {
		grid[y] = make([]bool, width)
	}
	r.eachIn(width, height, func(x, y int) { grid[y][x] = true })
	return grid
}

// Floats decodes r into a grid holding 1 for on cells and 0 elsewhere.
func (r Region) Floats(width, height int) [][]float64 {
	if width <= 0 || height <= 0 {
		return nil
	}
	grid := make([][]float64, height)
	for y := range grid {
		grid[y] = make([]float64, width)
	}
	r.eachIn(width, height, func(x, y int) { grid[y][x] = 1 })
	return grid
}

// Runes decodes r into a symbol grid using on and off glyphs.
func (r Region) Runes(width, height int, on, off rune) [][]rune {
	if width <= 0 || height <= 0 {
		return nil
	}
	grid := make([][]rune, height)
	for y := range grid {
		row := make([]rune, width)
		for x := range row {
			row[x] = off
		}
		grid[y] = row
	}
	r.eachIn(width, height, func(x, y int) { grid[y][x] = on })
	return grid
}

// Paint writes v into every on cell of a row-major width x height buffer.
func (r Region) Paint(buf []uint8, width, height int, v uint8) {
	if len(buf) < width*height {
		return
	}
	r.eachIn(width, height, func(x, y int) { buf[y*width+x] = v })
}

// Format renders r as width x height text, '#' for on and '.' for off.
func (r Region) Format(width, height int) string {
	var b strings.Builder
	for _, row := range r.Runes(width, height, '#', '.') {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// Mask returns a copy of grid with every cell outside r replaced by filler.
func (r Region) Mask(grid [][]rune, filler rune) [][]rune {
	out := make([][]rune, len(grid))
	for y, row := range grid {
		out[y] = make([]rune, len(row))
		for x := range row {
			out[y][x] = filler
		}
	}
	t := tables()
	r.each(func(h uint16) bool {
		x, y := t.XY(h)
		if y < len(grid) && x < len(grid[y]) {
			out[y][x] = grid[y][x]
		}
		return true
	})
	return out
}

// Indices returns the on curve indices in ascending order.
func (r Region) Indices() []uint16 {
	out := make([]uint16, 0, r.Count())
	r.each(func(h uint16) bool {
		out = append(out, h)
		return true
	})
	return out
}

// Points returns the on cells in curve order.
func (r Region) Points() []image.Point {
	t := tables()
	out := make([]image.Point, 0, r.Count())
	r.each(func(h uint16) bool {
		out = append(out, t.Point(h))
		return true
	})
	return out
}

// ContainsIndex reports whether curve index h is on.
func (r Region) ContainsIndex(h uint16) bool {
	target := int(h)
	pos := 0
	for i, v := range r {
		pos += int(v)
		if target < pos {
			return i%2 == 1
		}
	}
	return false
}

// Contains reports whether cell (x, y) is on.
func (r Region) Contains(x, y int) bool {
	h, ok := tables().IndexOK(x, y)
	return ok && r.ContainsIndex(h)
}

// First returns the lowest on curve index.
func (r Region) First() (uint16, bool) {
	return r.Nth(0)
}

// Last returns the highest on curve index.
func (r Region) Last() (uint16, bool) {
	pos, last, found := 0, 0, false
	for i, v := range r {
		pos += int(v)
		if i%2 == 1 && v > 0 {
			last, found = pos-1, true
		}
	}
	if !found {
		return 0, false
	}
	return uint16(last), true
}

// Nth returns the n-th on curve index, counting from zero.
func (r Region) Nth(n int) (uint16, bool) {
	if n < 0 {
		return 0, false
	}
	pos := 0
	for i, v := range r {
		run := int(v)
		if i%2 == 1 {
			if n < run {
				return uint16(pos + n), true
			}
			n -= run
		}
		pos += run
	}
	return 0, false
}

// Bounds returns the smallest rectangle holding every on cell.
func (r Region) Bounds() image.Rectangle {
	t := tables()
	var b image.Rectangle
	first := true
	r.each(func(h uint16) bool {
		p := t.Point(h)
		cell := image.Rect(p.X, p.Y, p.X+1, p.Y+1)
		if first {
			b, first = cell, false
		} else {
			b = b.Union(cell)
		}
		return true
	})
	return b
}

// Fraction keeps every step-th on cell in curve order, starting with the first.
func (r Region) Fraction(step int) Region {
	if step <= 1 {
		return r.Clone()
	}
	idx := make([]uint16, 0, r.Count()/step+1)
	i := 0
	r.each(func(h uint16) bool {
		if i%step == 0 {
			idx = append(idx, h)
		}
		i++
		return true
	})
	return fromIndices(idx)
}

// Rand is the source of randomness used by sampling and spill operations.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// Random returns a uniformly chosen on cell.
func (r Region) Random(rng Rand) (image.Point, bool) {
	n := r.Count()
	if n == 0 || rng == nil {
		return image.Point{}, false
	}
	h, _ := r.Nth(rng.IntN(n))
	return tables().Point(h), true
}

// Sample keeps a random subset of about fraction of the on cells.
func (r Region) Sample(rng Rand, fraction float64) Region {
	if rng == nil || fraction <= 0 {
		return Empty
	}
	if fraction >= 1 {
		return r.Clone()
	}
	const scale = 1 << 20
	cut := int(fraction * scale)
	idx := make([]uint16, 0, int(float64(r.Count())*fraction)+1)
	r.each(func(h uint16) bool {
		if rng.IntN(scale) < cut {
			idx = append(idx, h)
		}
		return true
	})
	return fromIndices(idx)
}

// DecodeLevels decodes several regions into one numeric grid. Each on cell
// of regions[i] receives values[i]; later regions overwrite earlier ones.
func DecodeLevels(regions []Region, width, height int, values []float64) ([][]float64, error) {
	if len(regions) != len(values) {
		return nil, fmt.Errorf("region: decode levels: %d regions for %d values: %w", len(regions), len(values), ErrInvalidInput)
	}
	if len(regions) > MaxLevels {
		return nil, fmt.Errorf("region: decode levels: %d levels: %w", len(regions), ErrUnsupportedSize)
	}
	if err := checkSize("decode levels", width, height); err != nil {
		return nil, err
	}
	grid := make([][]float64, height)
	for y := range grid {
		grid[y] = make([]float64, width)
	}
	for i, reg := range regions {
		v := values[i]
		reg.eachIn(width, height, func(x, y int) { grid[y][x] = v })
	}
	return grid, nil
}

// DecodeLevelBytes decodes several regions into a row-major buffer where each
// cell holds one plus the index of the last region containing it, or 0.
func DecodeLevelBytes(regions []Region, width, height int) ([]uint8, error) {
	if len(regions) > MaxLevels {
		return nil, fmt.Errorf("region: decode levels: %d levels: %w", len(regions), ErrUnsupportedSize)
	}
	if err := checkSize("decode levels", width, height); err != nil {
		return nil, err
	}
	buf := make([]uint8, width*height)
	for i, reg := range regions {
		reg.Paint(buf, width, height, uint8(i+1))
	}
	return buf, nil
}
