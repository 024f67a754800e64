// Copyright (c) 2026, Sphereview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "cogentcore.org/core/math32"

// SceneUniform is the per-frame camera block shared by every draw,
// matching the Scene struct in sphere.wgsl. It is rewritten in full
// each frame.
type SceneUniform struct {
	// View transforms world into camera-centered coordinates.
	View math32.Matrix4

	// Projection transforms camera coordinates into clip space,
	// with z in [0,1].
	Projection math32.Matrix4

	// Eye is the world-space camera position; rays originate here.
	// W is unused padding for uniform alignment.
	Eye math32.Vector4
}

// ObjectUniform is the per-draw block, matching the Object struct in
// sphere.wgsl. One value per draw record, rewritten in full each frame.
type ObjectUniform struct {
	// Model transforms the unit proxy cube into world space.
	Model math32.Matrix4

	// Color is the flat shading color; W is unused padding.
	Color math32.Vector4

	// Center holds the world-space sphere center in XYZ and the
	// radius in W.
	Center math32.Vector4
}

// NewObjectUniform returns the uniform block for an analytic sphere at
// the given center, with the proxy cube scaled by the diameter.
func NewObjectUniform(pos, color math32.Vector3, radius float32) ObjectUniform {
	d := 2 * radius
	var model math32.Matrix4
	model.SetTransform(pos, math32.Quat{W: 1}, math32.Vec3(d, d, d))
	return ObjectUniform{
		Model:  model,
		Color:  math32.Vector4FromVector3(color, 1),
		Center: math32.Vector4FromVector3(pos, radius),
	}
}
