// Copyright (c) 2026, Sphereview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "cogentcore.org/core/math32"

// Camera holds the interactive camera parameters. The view and
// projection matrices are derived fresh each frame.
type Camera struct {
	// Pos is the world-space camera position.
	Pos math32.Vector3

	// Target is the world-space point the camera looks at.
	Target math32.Vector3

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Near and Far are the clip plane distances.
	Near float32
	Far  float32
}

// View returns the camera view matrix, facing at Target from Pos
// with the Y axis up.
func (cm *Camera) View() *math32.Matrix4 {
	var lookq math32.Quat
	lookq.SetFromRotationMatrix(math32.NewLookAt(cm.Pos, cm.Target, math32.Vec3(0, 1, 0)))
	scale := math32.Vec3(1, 1, 1)
	var cview math32.Matrix4
	cview.SetTransform(cm.Pos, lookq, scale)
	view, _ := cview.Inverse()
	return view
}

// Projection returns the perspective projection for the given aspect
// ratio, remapped from GL clip z in [-1,1] to the [0,1] range that
// WebGPU and the depth buffer use.
func (cm *Camera) Projection(aspect float32) *math32.Matrix4 {
	var persp math32.Matrix4
	persp.SetPerspective(cm.FOV, aspect, cm.Near, cm.Far)
	remap := math32.Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0.5, 0,
		0, 0, 0.5, 1,
	}
	var proj math32.Matrix4
	proj.MulMatrices(&remap, &persp)
	return &proj
}

// SceneUniform returns the uniform block for the current camera state
// at the given aspect ratio.
func (cm *Camera) SceneUniform(aspect float32) SceneUniform {
	return SceneUniform{
		View:       *cm.View(),
		Projection: *cm.Projection(aspect),
		Eye:        math32.Vector4FromVector3(cm.Pos, 1),
	}
}
