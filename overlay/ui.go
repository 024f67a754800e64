// Copyright (c) 2026, Sphereview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package overlay is a small immediate-mode GUI, painted into a
// software canvas each frame and composited onto the render surface
// after the 3D scene. Widgets are declared between Begin and End;
// state lives in the caller's variables, which widgets mutate
// directly.
package overlay

import (
	"image"

	"cogentcore.org/core/math32"
	"github.com/go-fonts/latin-modern/lmsans10regular"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Canvas and row geometry, in pixels on the overlay canvas.
const (
	Width  = 280
	Height = 420

	pad       = 8
	rowHeight = 22
	rowGap    = 4
	fontSize  = 13
	corner    = 4
)

// Pointer is the per-frame mouse snapshot, in overlay canvas
// coordinates. It is consumed once by Begin.
type Pointer struct {
	// Pos is the pointer position.
	Pos math32.Vector2

	// Down reports whether the primary button is held.
	Down bool
}

// UI is the immediate-mode widget context. One UI persists across
// frames, carrying only the pointer edge state, the active drag, and
// which headers are collapsed; everything else is rebuilt per frame.
type UI struct {
	dc   *gg.Context
	face text.Face

	ptr     Pointer
	wasDown bool
	pressed bool

	// active is the id of the widget owning the current drag.
	active   string
	pressPos math32.Vector2
	pressVal float32

	// open records header collapse state; missing means open.
	open map[string]bool

	section string
	y       float32
}

// NewUI returns a UI painting into a fixed-size transparent canvas.
func NewUI() (*UI, error) {
	src, err := text.NewFontSource(lmsans10regular.TTF)
	if err != nil {
		return nil, err
	}
	ui := &UI{
		dc:   gg.NewContext(Width, Height),
		face: src.Face(fontSize),
		open: make(map[string]bool),
	}
	return ui, nil
}

// Begin starts a frame: consumes the pointer snapshot, clears the
// canvas, and paints the window panel and title.
func (ui *UI) Begin(title string, ptr Pointer) {
	ui.pressed = ptr.Down && !ui.wasDown
	ui.ptr = ptr
	ui.section = ""
	ui.y = pad

	dc := ui.dc
	dc.ClearWithColor(gg.RGBA{})
	dc.SetFont(ui.face)

	dc.SetRGBA(0.06, 0.06, 0.06, 0.9)
	dc.DrawRoundedRectangle(0, 0, Width, Height, corner)
	dc.Fill()

	dc.SetRGBA(0.16, 0.29, 0.48, 1)
	dc.DrawRoundedRectangle(0, 0, Width, rowHeight+2, corner)
	dc.Fill()
	dc.SetRGBA(1, 1, 1, 1)
	dc.DrawStringAnchored(title, pad, float64(rowHeight+2)/2, 0, 0.35)
	ui.y = rowHeight + 2 + rowGap
}

// End finishes the frame and returns the painted canvas image.
func (ui *UI) End() image.Image {
	if !ui.ptr.Down {
		ui.active = ""
	}
	ui.wasDown = ui.ptr.Down
	return ui.dc.Image()
}

// row reserves one widget row and returns its bounds.
func (ui *UI) row() math32.Box2 {
	b := math32.B2(pad, ui.y, Width-pad, ui.y+rowHeight)
	ui.y += rowHeight + rowGap
	return b
}

// clicked reports a press that started inside b this frame.
func (ui *UI) clicked(b math32.Box2) bool {
	return ui.pressed && b.ContainsPoint(ui.ptr.Pos)
}

// CollapsingHeader draws a section header and returns whether its
// contents should be drawn. Headers start open; clicking toggles.
// Widget ids of contained widgets are namespaced by the label.
func (ui *UI) CollapsingHeader(label string) bool {
	ui.section = label
	b := ui.row()
	if ui.clicked(b) {
		ui.open[label] = !ui.isOpen(label)
	}
	open := ui.isOpen(label)

	dc := ui.dc
	dc.SetRGBA(0.26, 0.26, 0.26, 1)
	dc.DrawRoundedRectangle(float64(b.Min.X), float64(b.Min.Y), float64(b.Size().X), float64(b.Size().Y), corner)
	dc.Fill()

	mark := "+"
	if open {
		mark = "-"
	}
	dc.SetRGBA(1, 1, 1, 1)
	dc.DrawStringAnchored(mark, float64(b.Min.X)+6, mid(b), 0, 0.35)
	dc.DrawStringAnchored(label, float64(b.Min.X)+18, mid(b), 0, 0.35)
	return open
}

func (ui *UI) isOpen(label string) bool {
	open, ok := ui.open[label]
	return !ok || open
}

func mid(b math32.Box2) float64 {
	return float64(b.Min.Y+b.Max.Y) / 2
}
