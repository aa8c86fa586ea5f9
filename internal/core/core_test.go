package core

import (
	"slices"
	"strconv"
	"testing"
	"time"

	"regionpack/pkg/region"
)

func TestPaintLayers(t *testing.T) {
	g := NewByteGrid(3, 2)
	layers := []Layer{
		{Name: "base", Region: region.Rectangle(0, 0, 3, 2)},
		{Name: "dot", Region: region.Point(1, 1)},
	}
	g.Paint(layers, nil)
	if !slices.Equal(g.Cells(), []uint8{1, 1, 1, 1, 2, 1}) {
		t.Fatalf("cells = %v", g.Cells())
	}
	g.Paint(layers, func(i int) bool { return i != 0 })
	if !slices.Equal(g.Cells(), []uint8{0, 0, 0, 0, 2, 0}) {
		t.Fatalf("cells with base hidden = %v", g.Cells())
	}
	if g.At(1, 1) != 2 || g.At(5, 5) != 0 {
		t.Fatal("At returned unexpected values")
	}
}

func TestFixedStep(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }
	if !fs.ShouldStep() {
		t.Fatal("first call should step")
	}
	if fs.ShouldStep() {
		t.Fatal("stepped without time passing")
	}
	clock = clock.Add(100 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("did not step after one interval")
	}
	clock = clock.Add(10 * time.Second)
	steps := 0
	for fs.ShouldStep() {
		steps++
	}
	if steps != 1 {
		t.Fatalf("stall replayed %d ticks", steps)
	}
	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("interval = %v", fs.Interval())
	}
}

type knobScene struct {
	value int
}

func (k *knobScene) Name() string    { return "knob" }
func (k *knobScene) Size() Size      { return Size{W: 1, H: 1} }
func (k *knobScene) Reset(int64)     {}
func (k *knobScene) Step()           {}
func (k *knobScene) Layers() []Layer { return nil }
func (k *knobScene) Parameters() ParameterSnapshot {
	return ParameterSnapshot{Groups: []ParameterGroup{{Name: "Knob", Params: []Parameter{IntParam("v", "Value", k.value)}}}}
}
func (k *knobScene) SetIntParameter(key string, v int) bool {
	if key != "v" {
		return false
	}
	k.value = v
	return true
}

func TestNudge(t *testing.T) {
	k := &knobScene{value: 3}
	ctrl := ParameterControl{Key: "v", Type: ParamTypeInt, Step: 2, Min: 0, Max: 6, HasMin: true, HasMax: true}
	if !Nudge(k, ctrl, 1) || k.value != 5 {
		t.Fatalf("value after nudge up = %d", k.value)
	}
	Nudge(k, ctrl, 1)
	if k.value != 6 {
		t.Fatalf("value should clamp at max, got %d", k.value)
	}
	for i := 0; i < 5; i++ {
		Nudge(k, ctrl, -1)
	}
	if k.value != 0 {
		t.Fatalf("value should clamp at min, got %d", k.value)
	}
	if Nudge(k, ParameterControl{Key: "missing", Type: ParamTypeInt}, 1) {
		t.Fatal("nudged an unknown key")
	}
	p, ok := k.Parameters().Lookup("v")
	if !ok || p.Value != strconv.Itoa(k.value) {
		t.Fatalf("Lookup = %+v, %v", p, ok)
	}
}

func TestRegistry(t *testing.T) {
	Register("", func(map[string]string) Scene { return &knobScene{} })
	Register("knob-test", nil)
	if _, ok := Scenes()["knob-test"]; ok {
		t.Fatal("registered a nil factory")
	}
	Register("knob-test", func(map[string]string) Scene { return &knobScene{} })
	if !slices.Contains(Names(), "knob-test") {
		t.Fatalf("Names = %v", Names())
	}
	if _, ok := Scenes()[""]; ok {
		t.Fatal("registered an empty name")
	}
}

func TestLayerMask(t *testing.T) {
	var m LayerMask
	if !m.Visible(0) || !m.Visible(5) {
		t.Fatal("zero mask hides layers")
	}
	m.Toggle(2)
	if m.Visible(2) || !m.Visible(1) {
		t.Fatal("toggle hit the wrong layer")
	}
	m.Toggle(2)
	m.Toggle(100)
	if m != 0 || !m.Visible(100) {
		t.Fatalf("mask = %b", m)
	}
}
