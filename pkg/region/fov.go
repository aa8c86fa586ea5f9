package region

import (
	"image"
	"math"
)

// Metric measures distance for visibility limits.
type Metric uint8

const (
	// Chebyshev limits sight to a square.
	Chebyshev Metric = iota
	// Manhattan limits sight to a diamond.
	Manhattan
	// Euclidean limits sight to a circle.
	Euclidean
)

// Distance returns the length of the offset (dx, dy) under m.
func (m Metric) Distance(dx, dy int) float64 {
	dx, dy = abs(dx), abs(dy)
	switch m {
	case Manhattan:
		return float64(dx + dy)
	case Euclidean:
		return math.Sqrt(float64(dx*dx + dy*dy))
	default:
		return float64(max(dx, dy))
	}
}

func (m Metric) String() string {
	switch m {
	case Manhattan:
		return "manhattan"
	case Euclidean:
		return "euclidean"
	default:
		return "chebyshev"
	}
}

// diagonals seeds the two octants that share each diagonal.
var diagonals = [4]image.Point{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// caster runs recursive shadowcasting from one origin. Cells of open pass
// light; everything else blocks it.
type caster struct {
	open       *indexSet
	lit        *indexSet
	ox, oy     int
	minD, maxD float64
	radius     int
	metric     Metric
}

func (c *caster) light(x, y int) {
	d := c.metric.Distance(x-c.ox, y-c.oy)
	if d >= c.minD && d <= c.maxD {
		c.lit.add(x, y)
	}
}

func (c *caster) isOpen(x, y int) bool { return c.open.has(x, y) }

func (c *caster) run() {
	if c.minD <= 0 {
		c.lit.add(c.ox, c.oy)
	}
	for _, d := range diagonals {
		c.cast(1, 1, 0, 0, d.X, d.Y, 0)
		c.cast(1, 1, 0, d.X, 0, 0, d.Y)
	}
}

func (c *caster) cast(row int, start, end float64, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	newStart := 0.0
	blocked := false
	for distance := row; distance <= c.radius && !blocked; distance++ {
		deltaY := -distance
		for deltaX := -distance; deltaX <= 0; deltaX++ {
			x := c.ox + deltaX*xx + deltaY*xy
			y := c.oy + deltaX*yx + deltaY*yy
			leftSlope := (float64(deltaX) - 0.5) / (float64(deltaY) + 0.5)
			rightSlope := (float64(deltaX) + 0.5) / (float64(deltaY) - 0.5)
			if !inCurve(x, y) || start < rightSlope {
				continue
			}
			if end > leftSlope {
				break
			}
			c.light(x, y)
			open := c.isOpen(x, y)
			if blocked {
				if !open {
					newStart = rightSlope
					continue
				}
				blocked = false
				start = newStart
			} else if !open && distance < c.radius {
				blocked = true
				c.cast(distance+1, start, leftSlope, xx, xy, yx, yy)
				newStart = rightSlope
			}
		}
	}
}

// sight lights every cell visible from the on cells of origins within
// [minD, maxD] under metric, keeping only cells of bounds.
func sight(bounds, origins Region, minD, maxD float64, metric Metric) Region {
	if bounds.IsEmpty() || origins.IsEmpty() || maxD < 0 {
		return Empty
	}
	open := newIndexSet()
	open.addRegion(bounds)
	lit := newIndexSet()
	// Manhattan and Euclidean distances never exceed Chebyshev ones, so a
	// Chebyshev sweep of this many rows reaches every candidate.
	rows := int(math.Ceil(maxD))
	for _, p := range origins.Points() {
		c := caster{open: open, lit: lit, ox: p.X, oy: p.Y, minD: minD, maxD: maxD, radius: rows, metric: metric}
		c.run()
	}
	return Intersect(lit.region(), bounds)
}

// Radiate returns the cells of bounds visible from any cell of center within
// radius under metric. Off cells of bounds block sight and are never included.
func Radiate(bounds, center Region, radius int, metric Metric) Region {
	return sight(bounds, center, 0, float64(radius), metric)
}

// Aim restricts the directions Reachable may travel.
type Aim uint8

const (
	// AimFree reaches any visible cell.
	AimFree Aim = iota
	// AimOrthogonal follows the four cardinal rays.
	AimOrthogonal
	// AimDiagonal follows the four diagonal rays.
	AimDiagonal
	// AimEightWay follows both cardinal and diagonal rays.
	AimEightWay
)

// Reach bounds a Reachable query.
type Reach struct {
	Min, Max int
	Metric   Metric
	Aim      Aim
}

var (
	orthogonalRays = []image.Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	diagonalRays   = []image.Point{{1, -1}, {1, 1}, {-1, 1}, {-1, -1}}
)

// Reachable returns the cells of bounds within [reach.Min, reach.Max] of a
// cell of start. AimFree uses shadowcasting; the ray modes walk straight
// lines and stop each ray at the first off or out-of-grid cell.
func Reachable(bounds, start Region, reach Reach) Region {
	if reach.Max < reach.Min || reach.Max < 0 {
		return Empty
	}
	if reach.Aim == AimFree {
		return sight(bounds, start, float64(reach.Min), float64(reach.Max), reach.Metric)
	}
	if bounds.IsEmpty() || start.IsEmpty() {
		return Empty
	}
	var dirs []image.Point
	switch reach.Aim {
	case AimOrthogonal:
		dirs = orthogonalRays
	case AimDiagonal:
		dirs = diagonalRays
	default:
		dirs = append(append(dirs, orthogonalRays...), diagonalRays...)
	}
	open := newIndexSet()
	open.addRegion(bounds)
	out := newIndexSet()
	minD, maxD := float64(reach.Min), float64(reach.Max)
	for _, p := range seeds(bounds, start) {
		if reach.Min <= 0 {
			out.add(p.X, p.Y)
		}
		for _, d := range dirs {
			for step := 1; ; step++ {
				x, y := p.X+d.X*step, p.Y+d.Y*step
				dist := reach.Metric.Distance(d.X*step, d.Y*step)
				if dist > maxD || !inCurve(x, y) || !open.has(x, y) {
					break
				}
				if dist >= minD {
					out.add(x, y)
				}
			}
		}
	}
	return out.region()
}
