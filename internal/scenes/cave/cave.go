// Package cave grows cave-like floor regions by smoothing random noise.
package cave

import (
	"regionpack/internal/core"
	rng "regionpack/pkg/core"
	"regionpack/pkg/region"
)

const (
	floor = 0
	wall  = 1
)

// Board holds the raw wall/floor cells of a cave under construction.
type Board struct {
	cur *core.ByteGrid
	nxt *core.ByteGrid
}

// NewBoard fills a board with random walls. The outer ring is always wall.
func NewBoard(w, h int, seed int64, wallChance float64) *Board {
	b := &Board{cur: core.NewByteGrid(w, h), nxt: core.NewByteGrid(w, h)}
	rng.FillChance(rng.NewRNG(seed).Source(), b.cur.Cells(), wallChance)
	b.frame()
	return b
}

func (b *Board) frame() {
	g := b.cur
	cells := g.Cells()
	for x := 0; x < g.W; x++ {
		cells[g.Index(x, 0)] = wall
		cells[g.Index(x, g.H-1)] = wall
	}
	for y := 0; y < g.H; y++ {
		cells[g.Index(0, y)] = wall
		cells[g.Index(g.W-1, y)] = wall
	}
}

func (b *Board) walls(x, y int) int {
	g := b.cur
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || ny < 0 || nx >= g.W || ny >= g.H || g.At(nx, ny) == wall {
				n++
			}
		}
	}
	return n
}

// Smooth runs one majority pass: a cell becomes wall with five or more wall
// neighbours, floor with three or fewer, and keeps its state otherwise.
func (b *Board) Smooth() {
	g := b.cur
	out := b.nxt.Cells()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			idx := g.Index(x, y)
			switch n := b.walls(x, y); {
			case n >= 5:
				out[idx] = wall
			case n <= 3:
				out[idx] = floor
			default:
				out[idx] = g.Cells()[idx]
			}
		}
	}
	b.cur, b.nxt = b.nxt, b.cur
	b.frame()
}

// Floors packs the floor cells of the board.
func (b *Board) Floors() region.Region {
	r, err := region.EncodeBytes(b.cur.Cells(), b.cur.W, b.cur.H, func(v uint8) bool { return v == floor })
	if err != nil {
		return region.Empty
	}
	return r
}

// Largest returns the biggest four-way connected part of r.
func Largest(r region.Region) region.Region {
	best := region.Empty
	for _, part := range region.Split(r, region.Diamond) {
		if part.Count() > best.Count() {
			best = part
		}
	}
	return best
}

// Generate builds a cave and returns its floor region.
func Generate(cfg Config) region.Region {
	b := NewBoard(cfg.Width, cfg.Height, cfg.Seed, cfg.WallChance)
	for i := 0; i < cfg.Smoothing; i++ {
		b.Smooth()
	}
	floors := b.Floors()
	if cfg.KeepLargest {
		floors = Largest(floors)
	}
	return floors
}
