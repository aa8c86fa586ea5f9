//go:build !ebiten

package ui

import "regionpack/internal/core"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(core.Scene, int) *Overlay { return &Overlay{} }

// Visible reports every layer as shown in headless builds.
func (o *Overlay) Visible(int) bool { return true }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
