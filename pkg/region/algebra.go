package region

import "image"

// exhausted marks a cursor past its last run; it lies beyond every curve position.
const exhausted = 1 << 17

// cursor walks the run boundaries of one operand.
type cursor struct {
	r   Region
	i   int
	end int
	on  bool
}

func newCursor(r Region) cursor {
	c := cursor{r: r, i: -1}
	c.next()
	return c
}

func (c *cursor) next() {
	c.i++
	if c.i >= len(c.r) {
		c.end = exhausted
		c.on = false
		return
	}
	c.end += int(c.r[c.i])
	c.on = c.i%2 == 1
}

// seek moves past every run ending at or before pos.
func (c *cursor) seek(pos int) {
	for c.end <= pos && c.end < exhausted {
		c.next()
	}
}

// merge streams a and b into a new region holding the positions where op
// reports true. op(false, false) must be false.
func merge(a, b Region, op func(a, b bool) bool) Region {
	ca, cb := newCursor(a), newCursor(b)
	out := make(Region, 0, len(a)+len(b))
	pos, flushed := 0, 0
	state := false
	for {
		ca.seek(pos)
		cb.seek(pos)
		if combined := op(ca.on, cb.on); combined != state {
			out = append(out, clampRun(pos-flushed))
			flushed = pos
			state = combined
		}
		next := min(ca.end, cb.end)
		if next >= exhausted {
			break
		}
		pos = next
	}
	if len(out) == 0 {
		return Empty
	}
	return out
}

// Union returns the cells on in a or b.
func Union(a, b Region) Region {
	if a.IsEmpty() {
		return b.Clone()
	}
	if b.IsEmpty() {
		return a.Clone()
	}
	return merge(a, b, func(x, y bool) bool { return x || y })
}

// UnionAll folds Union over rs.
func UnionAll(rs ...Region) Region {
	out := Empty
	for _, r := range rs {
		out = Union(out, r)
	}
	return out
}

// Intersect returns the cells on in both a and b.
func Intersect(a, b Region) Region {
	if a.IsEmpty() || b.IsEmpty() {
		return Empty
	}
	return merge(a, b, func(x, y bool) bool { return x && y })
}

// Difference returns the cells on in a but not in b.
func Difference(a, b Region) Region {
	if a.IsEmpty() {
		return Empty
	}
	if b.IsEmpty() {
		return a.Clone()
	}
	return merge(a, b, func(x, y bool) bool { return x && !y })
}

// Xor returns the cells on in exactly one of a and b.
func Xor(a, b Region) Region {
	if a.IsEmpty() {
		return b.Clone()
	}
	if b.IsEmpty() {
		return a.Clone()
	}
	return merge(a, b, func(x, y bool) bool { return x != y })
}

// Negate returns the complement of r over the whole curve. Negate(Empty) is
// All() and Negate(All()) is Empty. All() stops short of cell (0, 255), so
// Negate(Negate(r)) drops that cell from r.
func Negate(r Region) Region {
	if r.IsEmpty() {
		return All()
	}
	if r.IsAll() {
		return Empty
	}
	out := make(Region, 0, len(r)+2)
	out = append(out, 0)
	out = append(out, r...)
	if len(r)%2 == 1 {
		// A stray trailing off run; pad so the tail lands on an on run.
		out = append(out, 0)
	}
	out = append(out, clampRun(1<<16-r.span()))
	return normalize(out)
}

// Intersects reports whether a and b share at least one on cell.
func Intersects(a, b Region) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return false
	}
	ca, cb := newCursor(a), newCursor(b)
	pos := 0
	for {
		ca.seek(pos)
		cb.seek(pos)
		next := min(ca.end, cb.end)
		if ca.on && cb.on && next > pos {
			return true
		}
		if next >= exhausted {
			return false
		}
		pos = next
	}
}

// Insert returns r with pts switched on.
func Insert(r Region, pts ...image.Point) Region {
	return Union(r, Points(pts...))
}

// Remove returns r with pts switched off.
func Remove(r Region, pts ...image.Point) Region {
	return Difference(r, Points(pts...))
}
