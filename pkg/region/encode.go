package region

import (
	"fmt"
	"image"
	"slices"

	"regionpack/pkg/curve"
)

// walkLimit returns how many curve positions must be visited to cover a
// width x height rectangle anchored at the origin.
func walkLimit(width, height int) int {
	limit := curve.Cells
	if height <= 128 {
		limit = 32768
		if width <= 128 {
			limit = 16384
			if width <= 64 {
				limit = 8192
				if height <= 64 {
					limit = 4096
					if height <= 32 {
						limit = 2048
						if width <= 32 {
							limit = 1024
						}
					}
				}
			}
		}
	}
	return limit
}

func checkSize(op string, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("region: %s %dx%d: %w", op, width, height, ErrInvalidInput)
	}
	if width > MaxSide || height > MaxSide {
		return fmt.Errorf("region: %s %dx%d: %w", op, width, height, ErrUnsupportedSize)
	}
	return nil
}

func clampRun(n int) uint16 {
	if n > maxRun {
		return maxRun
	}
	return uint16(n)
}

// Encode packs the cells of a width x height grid for which on reports true.
func Encode(width, height int, on func(x, y int) bool) (Region, error) {
	if on == nil {
		return Empty, fmt.Errorf("region: encode: nil predicate: %w", ErrInvalidInput)
	}
	if err := checkSize("encode", width, height); err != nil {
		return Empty, err
	}
	r := encode(width, height, on)
	Logger().Debug("region: encoded", "width", width, "height", height, "walk", walkLimit(width, height), "runs", len(r))
	return r, nil
}

func encode(width, height int, on func(x, y int) bool) Region {
	t := tables()
	limit := walkLimit(width, height)
	total := width * height
	out := make(Region, 0, 16)
	state := false
	run, seen := 0, 0
	for i := 0; i < limit && seen < total; i++ {
		x, y := t.XY(uint16(i))
		cell := false
		if x < width && y < height {
			seen++
			cell = on(x, y)
		}
		if cell != state {
			out = append(out, clampRun(run))
			state = cell
			run = 0
		}
		run++
	}
	if state {
		out = append(out, clampRun(run))
	}
	if len(out) == 0 {
		return Empty
	}
	return out
}

func dims[T any](grid [][]T) (int, int, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return 0, 0, fmt.Errorf("region: empty grid: %w", ErrInvalidInput)
	}
	w := len(grid[0])
	for y, row := range grid {
		if len(row) != w {
			return 0, 0, fmt.Errorf("region: row %d has %d cells, want %d: %w", y, len(row), w, ErrInvalidInput)
		}
	}
	h := len(grid)
	if err := checkSize("grid", w, h); err != nil {
		return 0, 0, err
	}
	return w, h, nil
}

func encodeGrid[T any](grid [][]T, on func(T) bool) (Region, error) {
	w, h, err := dims(grid)
	if err != nil {
		return Empty, err
	}
	return encode(w, h, func(x, y int) bool { return on(grid[y][x]) }), nil
}

// EncodeBools packs a row-major boolean grid indexed grid[y][x].
// A fully on 256x256 grid packs to All(), which leaves out cell (0, 255).
func EncodeBools(grid [][]bool) (Region, error) {
	return encodeGrid(grid, func(v bool) bool { return v })
}

// EncodeFloats packs the cells of grid holding a value greater than zero,
// such as an illumination field.
func EncodeFloats(grid [][]float64) (Region, error) {
	return encodeGrid(grid, func(v float64) bool { return v > 0 })
}

// EncodeAbove packs the cells of grid greater than threshold.
func EncodeAbove(grid [][]float64, threshold float64) (Region, error) {
	return encodeGrid(grid, func(v float64) bool { return v > threshold })
}

// EncodeBelow packs the cells of grid at most maximum, such as the reachable
// part of a cost field.
func EncodeBelow(grid [][]float64, maximum float64) (Region, error) {
	return encodeGrid(grid, func(v float64) bool { return v <= maximum })
}

// EncodeRunes packs the cells of a symbol map that hold one of using.
func EncodeRunes(grid [][]rune, using ...rune) (Region, error) {
	if len(using) == 0 {
		return Empty, fmt.Errorf("region: encode runes: no symbols: %w", ErrInvalidInput)
	}
	return encodeGrid(grid, func(v rune) bool { return slices.Contains(using, v) })
}

// EncodeBytes packs a row-major buffer of width*height cells using pred.
func EncodeBytes(cells []uint8, width, height int, pred func(uint8) bool) (Region, error) {
	if pred == nil {
		return Empty, fmt.Errorf("region: encode bytes: nil predicate: %w", ErrInvalidInput)
	}
	if err := checkSize("encode bytes", width, height); err != nil {
		return Empty, err
	}
	if len(cells) != width*height {
		return Empty, fmt.Errorf("region: encode bytes: %d cells for %dx%d: %w", len(cells), width, height, ErrInvalidInput)
	}
	return encode(width, height, func(x, y int) bool { return pred(cells[y*width+x]) }), nil
}

// EncodeLevels returns one region per level, each holding the cells of grid
// greater than that level.
func EncodeLevels(grid [][]float64, levels []float64) ([]Region, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("region: encode levels: no levels: %w", ErrInvalidInput)
	}
	if len(levels) > MaxLevels {
		return nil, fmt.Errorf("region: encode levels: %d levels: %w", len(levels), ErrUnsupportedSize)
	}
	w, h, err := dims(grid)
	if err != nil {
		return nil, err
	}
	out := make([]Region, len(levels))
	for i, level := range levels {
		out[i] = encode(w, h, func(x, y int) bool { return grid[y][x] > level })
	}
	return out, nil
}

// Point returns the region holding only (x, y), or Empty when the cell lies
// outside the curve.
func Point(x, y int) Region {
	h, ok := tables().IndexOK(x, y)
	if !ok {
		return Empty
	}
	return Region{h, 1}
}

// Points returns the region holding every in-range point of pts.
func Points(pts ...image.Point) Region {
	t := tables()
	idx := make([]uint16, 0, len(pts))
	for _, p := range pts {
		if h, ok := t.IndexOK(p.X, p.Y); ok {
			idx = append(idx, h)
		}
	}
	return FromIndices(idx)
}

// Rectangle returns the cells of the width x height rectangle with its
// top-left corner at (x, y), clipped to the curve.
func Rectangle(x, y, width, height int) Region {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+width, MaxSide), min(y+height, MaxSide)
	if x0 >= x1 || y0 >= y1 {
		return Empty
	}
	return encode(x1, y1, func(cx, cy int) bool { return cx >= x0 && cy >= y0 })
}

// Circle returns the cells within radius of (cx, cy), clipped to a
// width x height grid.
func Circle(cx, cy, radius, width, height int) Region {
	if radius < 0 || checkSize("circle", width, height) != nil {
		return Empty
	}
	r2 := radius * radius
	return encode(width, height, func(x, y int) bool {
		dx, dy := x-cx, y-cy
		return dx*dx+dy*dy <= r2
	})
}
