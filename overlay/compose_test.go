// Copyright (c) 2026, Sphereview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package overlay

import (
	"image"
	"testing"

	"cogentcore.org/core/gpu"
	"github.com/stretchr/testify/assert"
)

func TestCompose(t *testing.T) {
	t.Skip("Need software GPU on CI")
	gp, dev, err := gpu.NoDisplayGPU()
	assert.NoError(t, err)
	sz := image.Point{X: 640, Y: 480}
	rt := gpu.NewRenderTexture(gp, dev, sz, 1, gpu.Depth32)

	cp := NewCompositor(gp, rt)
	defer cp.Release()

	ui, err := NewUI()
	assert.NoError(t, err)
	ui.Begin("sphereview", Pointer{})
	ui.CollapsingHeader("Camera")
	img := ui.End()

	assert.NoError(t, cp.Compose(img, image.Point{X: 10, Y: 10}))
}
