// Copyright (c) 2026, Sphereview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"

	"sphereview/sphere"
)

const tol = 1.0e-5

func TestCameraView(t *testing.T) {
	st := NewState()
	view := st.Camera.View()

	// the camera position maps to the view-space origin
	eye := math32.Vector4FromVector3(st.Camera.Pos, 1).MulMatrix4(view)
	assert.InDelta(t, 0, eye.X, tol)
	assert.InDelta(t, 0, eye.Y, tol)
	assert.InDelta(t, 0, eye.Z, tol)

	// the target lies on the negative z axis in view space
	tgt := math32.Vector4FromVector3(st.Camera.Target, 1).MulMatrix4(view)
	assert.InDelta(t, 0, tgt.X, tol)
	assert.InDelta(t, 0, tgt.Y, tol)
	assert.Less(t, tgt.Z, float32(0))
}

func TestCameraProjectionDepthRange(t *testing.T) {
	cm := Camera{
		Pos:    math32.Vec3(0, 0, 5),
		Target: math32.Vec3(0, 0, 0),
		FOV:    45,
		Near:   0.1,
		Far:    100,
	}
	view := cm.View()
	proj := cm.Projection(4.0 / 3.0)

	// points spanning the frustum depth land in [0,1], ordered near to far
	last := float32(-1)
	for _, z := range []float32{4.5, 0, -20, -90} {
		d := sphere.Depth(math32.Vec3(0, 0, z), view, proj)
		assert.GreaterOrEqual(t, d, float32(0))
		assert.LessOrEqual(t, d, float32(1))
		assert.Greater(t, d, last)
		last = d
	}
}

func TestCameraProjectionMatchesIntersection(t *testing.T) {
	cm := Camera{
		Pos:    math32.Vec3(0, 0, 5),
		Target: math32.Vec3(0, 0, 0),
		FOV:    45,
		Near:   0.1,
		Far:    100,
	}
	view := cm.View()
	proj := cm.Projection(1)

	// the analytic hit point on the near side of the sphere must be
	// nearer in depth than its center
	r := sphere.Ray{Origin: cm.Pos, Dir: math32.Vec3(0, 0, -1)}
	s := sphere.Sphere{Center: math32.Vec3(0, 0, 0), Radius: Radius}
	tv, ok := sphere.Intersect(r, s)
	assert.True(t, ok)
	assert.InDelta(t, 4.5, tv, tol)

	dhit := sphere.Depth(r.At(tv), view, proj)
	dcen := sphere.Depth(s.Center, view, proj)
	assert.Less(t, dhit, dcen)
}

func TestStateRecords(t *testing.T) {
	st := NewState()
	recs := st.Records()
	assert.Equal(t, 2, len(recs))

	// the sphere record is depth corrected, the light marker is not
	assert.True(t, recs[0].DepthCorrect)
	assert.False(t, recs[1].DepthCorrect)

	// center carries the position and the radius
	assert.Equal(t, float32(0), recs[0].Object.Center.X)
	assert.Equal(t, float32(Radius), recs[0].Object.Center.W)
	assert.Equal(t, float32(2), recs[1].Object.Center.X)
	assert.Equal(t, float32(1), recs[1].Object.Center.Y)
	assert.Equal(t, float32(2), recs[1].Object.Center.Z)
}

func TestObjectUniformModel(t *testing.T) {
	ob := NewObjectUniform(math32.Vec3(1, 2, 3), math32.Vec3(1, 0, 0), Radius)

	// a cube corner at 0.5 scales to the radius and translates to the center
	corner := math32.Vector4FromVector3(math32.Vec3(0.5, 0.5, 0.5), 1).MulMatrix4(&ob.Model)
	assert.InDelta(t, 1.5, corner.X, tol)
	assert.InDelta(t, 2.5, corner.Y, tol)
	assert.InDelta(t, 3.5, corner.Z, tol)

	assert.Equal(t, float32(1), ob.Color.X)
	assert.Equal(t, float32(0), ob.Color.Y)
}

func TestCubeMesh(t *testing.T) {
	pos := CubePositions()
	idx := CubeIndexes()
	assert.Equal(t, 24*3, len(pos))
	assert.Equal(t, 36, len(idx))
	for _, p := range pos {
		assert.LessOrEqual(t, math32.Abs(p), float32(0.5))
	}
	for _, i := range idx {
		assert.Less(t, int(i), 24)
	}
}
