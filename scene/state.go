// Copyright (c) 2026, Sphereview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene holds the interactive scene state and renders it as
// analytic spheres, ray-marched in the fragment shader against a unit
// proxy cube.
package scene

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// Radius is the analytic sphere radius, fixed by the proxy cube
// geometry: the unit cube scaled by the diameter bounds the sphere.
const Radius = 0.5

// Body is a positioned, colored sphere.
type Body struct {
	// Pos is the world-space sphere center.
	Pos math32.Vector3

	// Color is the flat RGB color, each channel in [0,1].
	Color math32.Vector3
}

// State is the complete interactive parameter set, shared between the
// renderer and the GUI overlay. All fields are plain values; the
// overlay mutates them directly and the renderer derives fresh uniform
// blocks from them each frame.
type State struct {
	Camera Camera
	Sphere Body
	Light  Body
}

// NewState returns the startup scene: camera at (2,2,5) looking at the
// origin, a red sphere at the origin, and a white light marker.
func NewState() *State {
	st := &State{}
	st.Camera = Camera{
		Pos:    math32.Vec3(2, 2, 5),
		Target: math32.Vec3(0, 0, 0),
		FOV:    45,
		Near:   0.1,
		Far:    100,
	}
	st.Sphere = Body{
		Pos:   math32.Vec3(0, 0, 0),
		Color: math32.Vec3(1, 0, 0),
	}
	st.Light = Body{
		Pos:   math32.Vec3(2, 1, 2),
		Color: math32.Vec3(1, 1, 1),
	}
	return st
}

// ClearColor is the background color the 3D pass clears to.
func ClearColor() color.RGBA {
	return color.RGBA{R: 51, G: 77, B: 77, A: 255}
}

// DrawRecord pairs one object uniform block with the pipeline variant
// that draws it. Each record gets its own indexed uniform value, so
// all records are uploaded before any draws are encoded.
type DrawRecord struct {
	Object ObjectUniform

	// DepthCorrect selects the fragment variant that writes the
	// analytic hit depth, so spheres interpenetrate correctly.
	// Without it the proxy cube's depth is kept.
	DepthCorrect bool
}

// Records returns the draw records for the current state: the sphere,
// depth corrected, and the light marker on the plain variant.
func (st *State) Records() []DrawRecord {
	return []DrawRecord{
		{Object: NewObjectUniform(st.Sphere.Pos, st.Sphere.Color, Radius), DepthCorrect: true},
		{Object: NewObjectUniform(st.Light.Pos, st.Light.Color, Radius)},
	}
}
