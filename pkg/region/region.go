// Package region stores on/off partitions of a 256x256 grid as run lengths
// along a Hilbert curve and operates on them without materializing the grid.
//
// A Region alternates off and on runs, starting with an off run that may be
// empty, and ends with the last on run. Regions are values: every operation
// returns a fresh slice and never modifies its inputs.
package region

import (
	"errors"
	"slices"

	"regionpack/pkg/curve"
)

// MaxSide is the largest supported width or height.
const MaxSide = curve.Side

// MaxLevels caps the number of regions in a multi-level encode or decode.
const MaxLevels = 63

// maxRun is the longest run a single element can hold.
const maxRun = 0xffff

var (
	// ErrInvalidInput reports a missing or malformed source.
	ErrInvalidInput = errors.New("region: invalid input")
	// ErrUnsupportedSize reports dimensions or level counts beyond the supported range.
	ErrUnsupportedSize = errors.New("region: unsupported size")
)

// Region is an RLE-packed on/off partition of curve positions.
type Region []uint16

// Empty is the all-off region.
var Empty Region

// All returns the all-on region. It covers the first 65535 curve positions,
// which is every cell of a grid smaller than 256x256.
func All() Region { return Region{0, maxRun} }

func tables() *curve.Tables { return curve.Default() }

// IsEmpty reports whether r has no on cells.
func (r Region) IsEmpty() bool {
	for i := 1; i < len(r); i += 2 {
		if r[i] > 0 {
			return false
		}
	}
	return true
}

// IsAll reports whether r is the all-on constant.
func (r Region) IsAll() bool { return len(r) == 2 && r[0] == 0 && r[1] == maxRun }

// Equal reports whether a and b encode the same cells.
func Equal(a, b Region) bool {
	return slices.Equal(normalize(a), normalize(b))
}

// Clone returns an independent copy of r.
func (r Region) Clone() Region {
	if len(r) == 0 {
		return Empty
	}
	return slices.Clone(r)
}

// Count returns the number of on cells.
func (r Region) Count() int {
	n := 0
	for i := 1; i < len(r); i += 2 {
		n += int(r[i])
	}
	return n
}

// span returns the number of curve positions covered by the runs.
func (r Region) span() int {
	n := 0
	for _, v := range r {
		n += int(v)
	}
	return n
}

// normalize merges runs separated by zero-length runs and drops trailing off
// runs. The leading off run is kept even when empty.
func normalize(r Region) Region {
	if len(r) == 0 {
		return Empty
	}
	out := make(Region, 0, len(r))
	on := false
	acc := 0
	flush := func() {
		// Only the final on run of a full-curve result can overflow.
		if acc > maxRun {
			acc = maxRun
		}
		out = append(out, uint16(acc))
	}
	for i, v := range r {
		runOn := i%2 == 1
		if v == 0 {
			continue
		}
		if runOn != on {
			flush()
			on = runOn
			acc = 0
		}
		acc += int(v)
	}
	if on {
		flush()
	}
	if len(out) < 2 {
		return Empty
	}
	return out
}

// fromIndices collapses sorted, unique curve indices into runs.
func fromIndices(idx []uint16) Region {
	if len(idx) == 0 {
		return Empty
	}
	out := make(Region, 0, 8)
	pos := 0
	i := 0
	for i < len(idx) {
		start := int(idx[i])
		j := i + 1
		for j < len(idx) && int(idx[j]) == int(idx[j-1])+1 {
			j++
		}
		out = append(out, uint16(start-pos))
		length := j - i
		if length > maxRun {
			length = maxRun
		}
		out = append(out, uint16(length))
		pos = start + (j - i)
		i = j
	}
	return out
}

// FromIndices builds a region from curve indices in any order. Duplicates are ignored.
func FromIndices(idx []uint16) Region {
	if len(idx) == 0 {
		return Empty
	}
	sorted := slices.Clone(idx)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	return fromIndices(sorted)
}
