package core

import (
	"slices"

	"regionpack/pkg/region"
)

// Size describes the dimensions of a scene grid.
type Size struct {
	W int
	H int
}

// Layer is one named region drawn by a scene. Later layers paint over earlier ones.
type Layer struct {
	Name   string
	Region region.Region
}

// Scene defines the minimal contract a region demo must implement.
type Scene interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Layers() []Layer
}

// Factory constructs a Scene using an optional configuration map.
type Factory func(cfg map[string]string) Scene

var scenes = map[string]Factory{}

// Register adds a scene factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	scenes[name] = f
}

// Scenes exposes the registry of available scene factories.
func Scenes() map[string]Factory {
	return scenes
}

// Names returns the registered scene names in sorted order.
func Names() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// LayerMask tracks which layers a viewer hides. The zero value shows all.
type LayerMask uint64

// Toggle flips the visibility of layer i. Layers past 63 are always shown.
func (m *LayerMask) Toggle(i int) {
	if i >= 0 && i < 64 {
		*m ^= 1 << uint(i)
	}
}

// Visible reports whether layer i is shown.
func (m LayerMask) Visible(i int) bool {
	return i < 0 || i >= 64 || m&(1<<uint(i)) == 0
}
