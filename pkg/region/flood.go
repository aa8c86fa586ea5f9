package region

import (
	"image"
	"math/rand/v2"

	"regionpack/pkg/curve"
)

func inCurve(x, y int) bool { return x >= 0 && y >= 0 && x < curve.Side && y < curve.Side }

// seeds returns the cells of start that lie inside bounds.
func seeds(bounds, start Region) []image.Point {
	return Intersect(bounds, start).Points()
}

// Flood spreads start through bounds for up to steps rounds, one shape step
// per round. Cells of start outside bounds are ignored.
func Flood(bounds, start Region, steps int, shape Shape) Region {
	if bounds.IsEmpty() || start.IsEmpty() {
		return Empty
	}
	open := newIndexSet()
	open.addRegion(bounds)
	seen := newIndexSet()
	frontier := seeds(bounds, start)
	for _, p := range frontier {
		seen.add(p.X, p.Y)
	}
	dirs := shape.steps()
	for round := 0; round < steps && len(frontier) > 0; round++ {
		var grown []image.Point
		for _, p := range frontier {
			for _, d := range dirs {
				nx, ny := p.X+d.X, p.Y+d.Y
				if !inCurve(nx, ny) || !open.has(nx, ny) || seen.has(nx, ny) {
					continue
				}
				seen.add(nx, ny)
				grown = append(grown, image.Pt(nx, ny))
			}
		}
		frontier = grown
	}
	return seen.region()
}

// Spill grows start through bounds one randomly chosen frontier cell at a
// time until volume cells are filled or nothing is left to fill. A nil rng
// uses a fixed seed.
func Spill(bounds, start Region, volume int, shape Shape, rng Rand) Region {
	if bounds.IsEmpty() || start.IsEmpty() {
		return Empty
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 2))
	}
	open := newIndexSet()
	open.addRegion(bounds)
	filled := newIndexSet()
	queued := newIndexSet()
	var frontier []image.Point
	dirs := shape.steps()
	enqueue := func(p image.Point) {
		for _, d := range dirs {
			nx, ny := p.X+d.X, p.Y+d.Y
			if !inCurve(nx, ny) || !open.has(nx, ny) || filled.has(nx, ny) || queued.has(nx, ny) {
				continue
			}
			queued.add(nx, ny)
			frontier = append(frontier, image.Pt(nx, ny))
		}
	}
	initial := seeds(bounds, start)
	for _, p := range initial {
		filled.add(p.X, p.Y)
	}
	for _, p := range initial {
		enqueue(p)
	}
	for filled.n < volume && len(frontier) > 0 {
		i := rng.IntN(len(frontier))
		p := frontier[i]
		last := len(frontier) - 1
		frontier[i] = frontier[last]
		frontier = frontier[:last]
		if filled.has(p.X, p.Y) {
			continue
		}
		filled.add(p.X, p.Y)
		enqueue(p)
	}
	return filled.region()
}

// Split breaks r into its connected parts under shape, ordered by the curve
// index of each part's first cell.
func Split(r Region, shape Shape) []Region {
	if r.IsEmpty() {
		return nil
	}
	t := tables()
	open := newIndexSet()
	open.addRegion(r)
	seen := newIndexSet()
	dirs := shape.steps()
	var parts []Region
	r.each(func(h uint16) bool {
		p := t.Point(h)
		if seen.has(p.X, p.Y) {
			return true
		}
		seen.add(p.X, p.Y)
		part := []uint16{h}
		queue := []image.Point{p}
		for len(queue) > 0 {
			c := queue[0]
			queue = queue[1:]
			for _, d := range dirs {
				nx, ny := c.X+d.X, c.Y+d.Y
				if !inCurve(nx, ny) || !open.has(nx, ny) || seen.has(nx, ny) {
					continue
				}
				seen.add(nx, ny)
				part = append(part, t.Index(nx, ny))
				queue = append(queue, image.Pt(nx, ny))
			}
		}
		parts = append(parts, FromIndices(part))
		return true
	})
	return parts
}
