// Copyright (c) 2026, Sphereview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package overlay

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// labelWidth is the fraction of a row reserved for the widget label;
// the rest is split between the value cells.
const labelWidth = 0.38

// dragCell is the shared drag behavior: pressing inside the cell
// captures the drag, and horizontal pointer motion from the press
// point scales by speed onto the captured value. The drag keeps the
// value pinned to the press origin, so there is no accumulation error
// across frames.
func (ui *UI) dragCell(id string, b math32.Box2, v *float32, speed, min, max float32) {
	if ui.active == "" && ui.clicked(b) {
		ui.active = id
		ui.pressPos = ui.ptr.Pos
		ui.pressVal = *v
	}
	if ui.active == id {
		*v = ui.pressVal + (ui.ptr.Pos.X-ui.pressPos.X)*speed
		if min < max {
			*v = math32.Clamp(*v, min, max)
		}
	}

	dc := ui.dc
	if ui.active == id {
		dc.SetRGBA(0.26, 0.59, 0.98, 1)
	} else if b.ContainsPoint(ui.ptr.Pos) {
		dc.SetRGBA(0.35, 0.4, 0.5, 1)
	} else {
		dc.SetRGBA(0.2, 0.22, 0.27, 1)
	}
	dc.DrawRoundedRectangle(float64(b.Min.X), float64(b.Min.Y), float64(b.Size().X), float64(b.Size().Y), corner)
	dc.Fill()

	dc.SetRGBA(1, 1, 1, 1)
	dc.DrawStringAnchored(fmt.Sprintf("%.2f", *v), float64(b.Center().X), mid(b), 0.5, 0.35)
}

// label paints the row label in the reserved left region.
func (ui *UI) label(b math32.Box2, s string) {
	dc := ui.dc
	dc.SetRGBA(0.9, 0.9, 0.9, 1)
	dc.DrawStringAnchored(s, float64(b.Min.X), mid(b), 0, 0.35)
}

// cells splits the value region of a row into n equal cells with a
// small gutter between them.
func cells(b math32.Box2, n int) []math32.Box2 {
	x0 := b.Min.X + b.Size().X*labelWidth
	w := (b.Max.X - x0 - float32(n-1)*2) / float32(n)
	cs := make([]math32.Box2, n)
	for i := range cs {
		x := x0 + float32(i)*(w+2)
		cs[i] = math32.B2(x, b.Min.Y, x+w, b.Max.Y)
	}
	return cs
}

// DragVector3 draws one row of three draggable cells bound to the
// components of v. speed is value change per pixel of drag.
func (ui *UI) DragVector3(label string, v *math32.Vector3, speed float32) {
	b := ui.row()
	ui.label(b, label)
	cs := cells(b, 3)
	id := ui.section + ":" + label
	ui.dragCell(id+":x", cs[0], &v.X, speed, 0, 0)
	ui.dragCell(id+":y", cs[1], &v.Y, speed, 0, 0)
	ui.dragCell(id+":z", cs[2], &v.Z, speed, 0, 0)
}

// DragValue draws one row with a single draggable cell bound to v,
// clamped to [min, max] when min < max.
func (ui *UI) DragValue(label string, v *float32, speed, min, max float32) {
	b := ui.row()
	ui.label(b, label)
	cs := cells(b, 1)
	ui.dragCell(ui.section+":"+label, cs[0], v, speed, min, max)
}

// ColorEdit3 draws a color swatch and three draggable RGB channel
// cells bound to v, each clamped to [0,1].
func (ui *UI) ColorEdit3(label string, v *math32.Vector3) {
	b := ui.row()
	ui.label(b, label)
	cs := cells(b, 4)

	dc := ui.dc
	sw := cs[0]
	dc.SetRGBA(float64(v.X), float64(v.Y), float64(v.Z), 1)
	dc.DrawRoundedRectangle(float64(sw.Min.X), float64(sw.Min.Y), float64(sw.Size().X), float64(sw.Size().Y), corner)
	dc.Fill()

	id := ui.section + ":" + label
	ui.dragCell(id+":r", cs[1], &v.X, 0.005, 0, 1)
	ui.dragCell(id+":g", cs[2], &v.Y, 0.005, 0, 1)
	ui.dragCell(id+":b", cs[3], &v.Z, 0.005, 0, 1)
}
