// Copyright (c) 2026, Sphereview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image"
	"testing"

	"cogentcore.org/core/gpu"
	"github.com/stretchr/testify/assert"
)

func TestRenderFrame(t *testing.T) {
	t.Skip("Need software GPU on CI")
	gp, dev, err := gpu.NoDisplayGPU()
	assert.NoError(t, err)
	sz := image.Point{X: 480, Y: 320}
	rt := gpu.NewRenderTexture(gp, dev, sz, 1, gpu.Depth32)

	rn := NewRenderer(gp, rt, 4)
	defer rn.Release()

	st := NewState()
	aspect := float32(sz.X) / float32(sz.Y)
	sc := st.Camera.SceneUniform(aspect)
	assert.NoError(t, rn.RenderFrame(&sc, st.Records()))

	// a second frame with moved state reuploads everything
	st.Sphere.Pos.X = 1
	sc = st.Camera.SceneUniform(aspect)
	assert.NoError(t, rn.RenderFrame(&sc, st.Records()))
}

func TestRenderFrameRecordOverflow(t *testing.T) {
	t.Skip("Need software GPU on CI")
	gp, dev, err := gpu.NoDisplayGPU()
	assert.NoError(t, err)
	sz := image.Point{X: 64, Y: 64}
	rt := gpu.NewRenderTexture(gp, dev, sz, 1, gpu.Depth32)

	rn := NewRenderer(gp, rt, 1)
	defer rn.Release()

	st := NewState()
	sc := st.Camera.SceneUniform(1)
	// two records against one allocated value: extras are dropped
	assert.NoError(t, rn.RenderFrame(&sc, st.Records()))
}
