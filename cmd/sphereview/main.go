// Copyright (c) 2026, Sphereview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command sphereview is a real-time viewer for analytic spheres,
// ray-marched in the fragment shader against a proxy cube, with an
// immediate-mode GUI overlay for the camera, sphere, and light
// parameters.
package main

import (
	"fmt"
	"image"
	"os"
	"runtime"
	"runtime/debug"
	"time"

	"cogentcore.org/core/gpu"

	"sphereview/overlay"
	"sphereview/scene"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

// overlayPos is where the overlay panel sits on the frame.
var overlayPos = image.Point{X: 10, Y: 10}

// must panics on any error; failures here are fatal and run's caller
// turns the panic into an exit with a stack trace.
func must(err error) {
	if err != nil {
		panic(err)
	}
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "fatal: %v\n%s", r, debug.Stack())
			os.Exit(1)
		}
	}()
	run()
}

func run() {
	gp := gpu.NewGPU(nil)

	size := image.Point{X: 1024, Y: 768}
	w, err := newWindow(size, "sphereview")
	must(err)

	sf := gpu.NewSurface(gp, w.surface, size, 1, gpu.Depth32)
	rn := scene.NewRenderer(gp, sf, 4)
	cp := overlay.NewCompositor(gp, sf)
	ui, err := overlay.NewUI()
	must(err)

	destroy := func() {
		rn.Release()
		cp.Release()
		sf.Release()
		gp.Release()
		w.destroy()
	}

	st := scene.NewState()

	renderFrame := func() {
		// consume at most one resize request per frame, before any
		// render pass touches the swap chain
		if sz, ok := w.takeResize(); ok {
			sf.SetSize(sz)
		}

		aspect := float32(sf.Format.Size.X) / float32(sf.Format.Size.Y)
		sc := st.Camera.SceneUniform(aspect)
		must(rn.RenderFrame(&sc, st.Records()))

		ui.Begin("sphereview", w.pointer(overlayPos))
		if ui.CollapsingHeader("Camera") {
			ui.DragVector3("Position", &st.Camera.Pos, 0.01)
			ui.DragVector3("Target", &st.Camera.Target, 0.01)
			ui.DragValue("FOV", &st.Camera.FOV, 0.1, 10, 120)
		}
		if ui.CollapsingHeader("Sphere") {
			ui.DragVector3("Position", &st.Sphere.Pos, 0.01)
			ui.ColorEdit3("Color", &st.Sphere.Color)
		}
		if ui.CollapsingHeader("Light") {
			ui.DragVector3("Position", &st.Light.Pos, 0.01)
			ui.ColorEdit3("Color", &st.Light.Color)
		}
		must(cp.Compose(ui.End(), overlayPos))
	}

	exitC := make(chan struct{}, 2)

	fpsDelay := time.Second / 60
	fpsTicker := time.NewTicker(fpsDelay)
	for {
		select {
		case <-exitC:
			fpsTicker.Stop()
			destroy()
			return
		case <-fpsTicker.C:
			if !w.pollEvents() {
				exitC <- struct{}{}
				continue
			}
			renderFrame()
		}
	}
}
