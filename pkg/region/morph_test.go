package region

import (
	"image"
	"math/rand/v2"
	"slices"
	"testing"
)

// naiveErode keeps the on cells whose whole neighbourhood is inside the grid and on.
func naiveErode(grid [][]bool, radius int, diamond bool) [][]bool {
	h, w := len(grid), len(grid[0])
	out := make([][]bool, h)
	for y := range out {
		out[y] = make([]bool, w)
		for x := range out[y] {
			keep := grid[y][x]
			for dy := -radius; dy <= radius && keep; dy++ {
				for dx := -radius; dx <= radius && keep; dx++ {
					if diamond && abs(dx)+abs(dy) > radius {
						continue
					}
					nx, ny := x+dx, y+dy
					keep = nx >= 0 && nx < w && ny >= 0 && ny < h && grid[ny][nx]
				}
			}
			out[y][x] = keep
		}
	}
	return out
}

// naiveExpand adds every sum of up to radius steps to each on cell, then clips.
func naiveExpand(grid [][]bool, radius int, steps []image.Point) [][]bool {
	h, w := len(grid), len(grid[0])
	reach := map[image.Point]bool{{}: true}
	frontier := []image.Point{{}}
	for i := 0; i < radius; i++ {
		var next []image.Point
		for _, p := range frontier {
			for _, o := range steps {
				if q := p.Add(o); !reach[q] {
					reach[q] = true
					next = append(next, q)
				}
			}
		}
		frontier = next
	}
	out := make([][]bool, h)
	for y := range out {
		out[y] = make([]bool, w)
	}
	for y := range grid {
		for x, on := range grid[y] {
			if !on {
				continue
			}
			for d := range reach {
				nx, ny := x+d.X, y+d.Y
				if nx >= 0 && nx < w && ny >= 0 && ny < h {
					out[ny][nx] = true
				}
			}
		}
	}
	return out
}

func mirror(grid [][]bool) [][]bool {
	h, w := len(grid), len(grid[0])
	out := make([][]bool, h)
	for y := range out {
		out[y] = make([]bool, w)
		for x := range out[y] {
			out[y][x] = grid[h-1-y][w-1-x]
		}
	}
	return out
}

func TestTranslateClamps(t *testing.T) {
	got := Translate(Region{0, 4}, -2, -2, 60, 60)
	if !slices.Equal(got, Region{0, 1}) {
		t.Fatalf("Translate = %v, want [0 1]", got)
	}

	grid := [][]bool{
		{false, true},
		{true, false},
	}
	shifted := [][]bool{
		{false, true},
		{false, true},
	}
	moved := Translate(mustEncode(t, grid), 1, 0, 2, 2)
	if !slices.Equal(moved, mustEncode(t, shifted)) {
		t.Fatalf("Translate on 2x2 = %v", moved.Points())
	}

	c := cross()
	if !slices.Equal(Translate(c, 0, 0, 64, 64), c) {
		t.Fatal("zero translation changed the cross")
	}
	if !slices.Equal(Translate(Translate(c, 1, 1, 64, 64), -1, -1, 64, 64), c) {
		t.Fatal("translating there and back changed the cross")
	}
	box := Translate(Translate(c, 25, 25, 64, 64), -50, -50, 64, 64)
	if !slices.Equal(box, Rectangle(0, 0, 14, 14)) {
		t.Fatalf("squashed cross = %v", box)
	}
}

func TestExpandShapes(t *testing.T) {
	p := Point(5, 5)
	cases := []struct {
		name  string
		shape Shape
		r     int
		want  int
	}{
		{"square 1", Square, 1, 9},
		{"square 2", Square, 2, 25},
		{"diamond 1", Diamond, 1, 5},
		{"diamond 2", Diamond, 2, 13},
		{"ray", Offsets(image.Pt(1, 0)), 3, 4},
		{"knight", Offsets(image.Pt(1, 2), image.Pt(2, 1), image.Pt(-1, 2), image.Pt(-2, 1),
			image.Pt(1, -2), image.Pt(2, -1), image.Pt(-1, -2), image.Pt(-2, -1)), 1, 9},
	}
	for _, tc := range cases {
		got := Expand(p, tc.r, 20, 20, tc.shape, Drop)
		if got.Count() != tc.want {
			t.Fatalf("%s: count = %d, want %d", tc.name, got.Count(), tc.want)
		}
		if !got.Contains(5, 5) {
			t.Fatalf("%s: lost the source cell", tc.name)
		}
	}
}

func TestExpandEdges(t *testing.T) {
	corner := Point(0, 0)
	if got := Expand(corner, 1, 10, 10, Square, Drop).Count(); got != 4 {
		t.Fatalf("square at corner = %d, want 4", got)
	}
	far := Point(9, 9)
	if got := Expand(far, 2, 10, 10, Diamond, Drop).Count(); got != 6 {
		t.Fatalf("dropped diamond at far corner = %d, want 6", got)
	}
	if got := Expand(far, 2, 10, 10, Diamond, Clamp).Count(); got != 6 {
		t.Fatalf("clamped diamond at far corner = %d, want 6", got)
	}
	ray := Expand(Point(8, 3), 4, 10, 10, Offsets(image.Pt(1, 0)), Clamp)
	if ray.Count() != 2 || !ray.Contains(9, 3) {
		t.Fatalf("clamped ray = %v", ray.Points())
	}
	outside := Expand(Point(11, 3), 2, 10, 10, Square, Drop)
	if outside.Count() != 5 || !outside.Contains(9, 1) || outside.Contains(11, 3) {
		t.Fatalf("expansion from outside = %v", outside.Points())
	}
}

func TestRetractFringeSurface(t *testing.T) {
	r := Rectangle(2, 2, 5, 5)
	if got := Retract(r, 1, 20, 20, Square, Drop); !slices.Equal(got, Rectangle(3, 3, 3, 3)) {
		t.Fatalf("Retract = %v", got.Points())
	}
	if got := Fringe(r, 1, 20, 20, Square, Drop).Count(); got != 24 {
		t.Fatalf("square fringe = %d, want 24", got)
	}
	if got := Fringe(r, 1, 20, 20, Diamond, Drop).Count(); got != 20 {
		t.Fatalf("diamond fringe = %d, want 20", got)
	}
	if got := Surface(r, 1, 20, 20, Square, Drop).Count(); got != 16 {
		t.Fatalf("surface = %d, want 16", got)
	}
	edge := Rectangle(15, 15, 5, 5)
	if got := Retract(edge, 1, 20, 20, Square, Drop); !slices.Equal(got, Rectangle(16, 16, 3, 3)) {
		t.Fatalf("Retract at grid edge = %v", got.Points())
	}
	corner := Rectangle(0, 0, 5, 5)
	if got := Retract(corner, 1, 20, 20, Square, Drop); !slices.Equal(got, Rectangle(1, 1, 3, 3)) {
		t.Fatalf("Retract at the top left = %v", got.Points())
	}
}

func TestRetractWholeGrid(t *testing.T) {
	full := Rectangle(0, 0, 5, 5)
	for _, shape := range []Shape{Square, Diamond} {
		if got := Retract(full, 1, 5, 5, shape, Drop); !slices.Equal(got, Rectangle(1, 1, 3, 3)) {
			t.Fatalf("Retract of the whole grid = %v", got.Points())
		}
		surface := Surface(full, 1, 5, 5, shape, Drop)
		if surface.Count() != 16 || !Equal(surface, Difference(full, Rectangle(1, 1, 3, 3))) {
			t.Fatalf("Surface of the whole grid = %v", surface.Points())
		}
		if got := Retract(full, 2, 5, 5, shape, Clamp); !slices.Equal(got, Point(2, 2)) {
			t.Fatalf("clamped Retract by 2 = %v", got.Points())
		}
		if got := Retract(full, 3, 5, 5, shape, Drop); !got.IsEmpty() {
			t.Fatalf("Retract past the middle = %v", got.Points())
		}
	}
	rings := Surfaces(full, 3, 5, 5, Square, Drop)
	counts := []int{rings[0].Count(), rings[1].Count(), rings[2].Count()}
	if !slices.Equal(counts, []int{16, 8, 1}) {
		t.Fatalf("surfaces of the whole grid = %v", counts)
	}
}

func TestRetractMatchesNaiveErosion(t *testing.T) {
	rng := rand.New(rand.NewPCG(17, 23))
	for _, sz := range [][2]int{{35, 42}, {8, 8}, {1, 6}, {64, 3}} {
		grid := randomGrid(rng, sz[0], sz[1], 0.8)
		flipped := mirror(grid)
		r := mustEncode(t, grid)
		for radius := 1; radius <= 2; radius++ {
			for _, diamond := range []bool{false, true} {
				shape := Square
				if diamond {
					shape = Diamond
				}
				got := Retract(r, radius, sz[0], sz[1], shape, Drop)
				if want := naiveErode(grid, radius, diamond); !equalGrids(got.Bools(sz[0], sz[1]), want) {
					t.Fatalf("%dx%d radius %d diamond %v: Retract kept %d cells, want %d",
						sz[0], sz[1], radius, diamond, got.Count(), mustEncode(t, want).Count())
				}
				rev := Retract(mustEncode(t, flipped), radius, sz[0], sz[1], shape, Drop)
				if !equalGrids(rev.Bools(sz[0], sz[1]), mirror(got.Bools(sz[0], sz[1]))) {
					t.Fatalf("%dx%d radius %d: erosion of the mirrored grid is not mirrored", sz[0], sz[1], radius)
				}
				if !Equal(Union(got, Surface(r, radius, sz[0], sz[1], shape, Drop)), r) {
					t.Fatalf("%dx%d radius %d: retract plus surface differs from the input", sz[0], sz[1], radius)
				}
			}
		}
	}
}

func TestCustomShapeCrossesTheEdge(t *testing.T) {
	knight := Offsets(image.Pt(1, 2), image.Pt(2, 1), image.Pt(-1, 2), image.Pt(-2, 1),
		image.Pt(1, -2), image.Pt(2, -1), image.Pt(-1, -2), image.Pt(-2, -1))
	if got := Expand(Point(0, 0), 2, 10, 10, knight, Drop); !got.Contains(1, 1) {
		t.Fatalf("two knight moves from the corner missed (1,1): %v", got.Points())
	}

	rng := rand.New(rand.NewPCG(29, 31))
	steps := []image.Point{{2, 1}, {-1, 2}, {0, -3}}
	for trial := 0; trial < 4; trial++ {
		grid := randomGrid(rng, 12, 9, 0.1)
		r := mustEncode(t, grid)
		got := Expand(r, 3, 12, 9, Offsets(steps...), Drop)
		if want := naiveExpand(grid, 3, steps); !equalGrids(got.Bools(12, 9), want) {
			t.Fatalf("trial %d: custom Expand = %d cells, want %d", trial, got.Count(), mustEncode(t, want).Count())
		}
	}

	four := Offsets(image.Pt(1, 0), image.Pt(-1, 0), image.Pt(0, 1), image.Pt(0, -1))
	eight := Offsets(eightWay...)
	for trial := 0; trial < 4; trial++ {
		r := mustEncode(t, randomGrid(rng, 20, 14, 0.85))
		for radius := 1; radius <= 3; radius++ {
			if !Equal(Retract(r, radius, 20, 14, four, Drop), Retract(r, radius, 20, 14, Diamond, Drop)) {
				t.Fatalf("radius %d: four-step Retract differs from Diamond", radius)
			}
			if !Equal(Retract(r, radius, 20, 14, eight, Drop), Retract(r, radius, 20, 14, Square, Drop)) {
				t.Fatalf("radius %d: eight-step Retract differs from Square", radius)
			}
			if !Equal(Expand(r, radius, 20, 14, four, Drop), Expand(r, radius, 20, 14, Diamond, Drop)) {
				t.Fatalf("radius %d: four-step Expand differs from Diamond", radius)
			}
		}
	}
}

func TestMorphologyIdentities(t *testing.T) {
	c := cross()
	grown := Expand(c, 1, 64, 64, Square, Drop)
	if !slices.Equal(Difference(grown, Fringe(c, 1, 64, 64, Square, Drop)), c) {
		t.Fatal("expand minus fringe differs from the cross")
	}
	shrunk := Retract(c, 1, 64, 64, Square, Drop)
	if !slices.Equal(Union(shrunk, Surface(c, 1, 64, 64, Square, Drop)), c) {
		t.Fatal("retract plus surface differs from the cross")
	}
	if !Equal(Retract(c, 2, 64, 64, Diamond, Drop), Difference(c, Expand(Negate(c), 2, 64, 64, Diamond, Drop))) {
		t.Fatal("retract differs from the complement of the expanded complement")
	}
}

func TestLayers(t *testing.T) {
	r := Rectangle(6, 6, 5, 5)
	rings := Fringes(r, 3, 20, 20, Square, Drop)
	counts := []int{rings[0].Count(), rings[1].Count(), rings[2].Count()}
	if !slices.Equal(counts, []int{24, 32, 40}) {
		t.Fatalf("fringe layer counts = %v", counts)
	}
	if !Equal(UnionAll(append(rings, r)...), Rectangle(3, 3, 11, 11)) {
		t.Fatal("fringes do not tile the grown box")
	}
	layers := Surfaces(r, 3, 20, 20, Square, Drop)
	counts = []int{layers[0].Count(), layers[1].Count(), layers[2].Count()}
	if !slices.Equal(counts, []int{16, 8, 1}) {
		t.Fatalf("surface layer counts = %v", counts)
	}
	if !Equal(UnionAll(layers...), r) {
		t.Fatal("surfaces do not tile the box")
	}
	if Fringes(r, 0, 20, 20, Square, Drop) != nil {
		t.Fatal("zero layers requested")
	}
}
