// Copyright (c) 2026, Sphereview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"

	"cogentcore.org/core/gpu"
	"cogentcore.org/core/math32"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"

	"sphereview/overlay"
)

// minWindowDim guards against degenerate swap chain sizes during
// interactive resizing.
const minWindowDim = 8

// window owns the glfw window and its wgpu surface, records input
// snapshots from the event callbacks, and holds at most one pending
// resize request, consumed by the render loop.
type window struct {
	win     *glfw.Window
	surface *wgpu.Surface

	size   image.Point
	resize *image.Point

	cursor math32.Vector2
	down   bool
}

// newWindow opens a glfw window without a client graphics API and
// creates the wgpu surface for it.
// IMPORTANT: must be called on the main initial thread!
func newWindow(size image.Point, title string) (*window, error) {
	if err := glfw.Init(); err != nil {
		return nil, err
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	win, err := glfw.CreateWindow(size.X, size.Y, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}

	w := &window{win: win, size: size}
	w.surface = gpu.Instance().CreateSurface(wgpuglfw.GetSurfaceDescriptor(win))

	win.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		sz := sanitizeSize(image.Point{X: width, Y: height})
		w.resize = &sz
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.cursor = math32.Vec2(float32(x), float32(y))
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button == glfw.MouseButtonLeft {
			w.down = action != glfw.Release
		}
	})
	return w, nil
}

// sanitizeSize clamps degenerate window sizes; a zero-sized swap
// chain is invalid.
func sanitizeSize(sz image.Point) image.Point {
	return image.Point{X: max(sz.X, minWindowDim), Y: max(sz.Y, minWindowDim)}
}

// takeResize returns the pending resize request and clears it, so
// each request is acted on exactly once.
func (w *window) takeResize() (image.Point, bool) {
	if w.resize == nil {
		return image.Point{}, false
	}
	sz := *w.resize
	w.resize = nil
	w.size = sz
	return sz, true
}

// pointer returns the input snapshot in overlay canvas coordinates,
// for an overlay placed at origin.
func (w *window) pointer(origin image.Point) overlay.Pointer {
	return overlay.Pointer{
		Pos:  math32.Vec2(w.cursor.X-float32(origin.X), w.cursor.Y-float32(origin.Y)),
		Down: w.down,
	}
}

// pollEvents pumps the event loop; false means the window is closing.
// IMPORTANT: must be called on the main initial thread!
func (w *window) pollEvents() bool {
	if w.win.ShouldClose() {
		return false
	}
	glfw.PollEvents()
	return true
}

func (w *window) destroy() {
	w.win.Destroy()
	glfw.Terminate()
}
