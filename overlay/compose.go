// Copyright (c) 2026, Sphereview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package overlay

import (
	_ "embed"
	"image"
	"unsafe"

	"cogentcore.org/core/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed shaders/overlay.wgsl
var overlayShader string

// rectUniform places the overlay quad on the render target, all in
// pixels. Padded to uniform alignment.
type rectUniform struct {
	Pos    [2]float32
	Size   [2]float32
	Screen [2]float32
	pad    [2]float32
}

// Compositor draws the painted overlay image onto the render target
// as one alpha-blended textured quad, in a pass that does not clear
// the 3D scene underneath. Its EndRenderPass presents the frame, so
// the scene pass must submit without presenting.
type Compositor struct {
	// System is the underlying rendering system.
	System *gpu.GraphicsSystem

	pipeline *gpu.GraphicsPipeline
	rectVal  *gpu.Value
	texVal   *gpu.Value
}

// NewCompositor returns a Compositor configured on the given render
// target.
func NewCompositor(gp *gpu.GPU, rd gpu.Renderer) *Compositor {
	cp := &Compositor{}
	cp.configSystem(gp, rd)
	return cp
}

func (cp *Compositor) configSystem(gp *gpu.GPU, rd gpu.Renderer) {
	sy := gpu.NewGraphicsSystem(gp, "overlay", rd)
	cp.System = sy

	pl := sy.AddGraphicsPipeline("overlay")
	pl.SetCullMode(wgpu.CullModeBack)
	pl.SetFrontFace(wgpu.FrontFaceCCW)
	pl.SetAlphaBlend(true)
	cp.pipeline = pl

	sh := pl.AddShader("overlay")
	sh.OpenCode(overlayShader)
	pl.AddEntry(sh, gpu.VertexShader, "vs_main")
	pl.AddEntry(sh, gpu.FragmentShader, "fs_main")

	vgp := sy.Vars().AddVertexGroup()
	rgp := sy.Vars().AddGroup(gpu.Uniform, "Rect")           // 0
	tgp := sy.Vars().AddGroup(gpu.SampledTexture, "Texture") // 1

	posv := vgp.Add("Pos", gpu.Float32Vector2, 0, gpu.VertexShader)
	idxv := vgp.Add("Index", gpu.Uint16, 0, gpu.VertexShader)
	idxv.Role = gpu.Index

	rectv := rgp.AddStruct("Rect", int(unsafe.Sizeof(rectUniform{})), 1, gpu.VertexShader)
	texv := tgp.Add("TexSampler", gpu.TextureRGBA32, 1, gpu.FragmentShader)

	vgp.SetNValues(1)
	rgp.SetNValues(1)
	tgp.SetNValues(1)
	sy.Config()

	gpu.SetValueFrom(posv.Values.Values[0], []float32{
		0.0, 0.0,
		0.0, 1.0,
		1.0, 0.0,
		1.0, 1.0})
	gpu.SetValueFrom(idxv.Values.Values[0], []uint16{0, 1, 2, 2, 1, 3})

	cp.rectVal = rectv.Values.Values[0]
	cp.texVal = texv.Values.Values[0]
}

func (cp *Compositor) Release() {
	if cp.System == nil {
		return
	}
	cp.System.Release()
	cp.System = nil
}

// Compose uploads the overlay image, draws it at the given target
// position over the existing frame contents, and presents.
func (cp *Compositor) Compose(img image.Image, at image.Point) error {
	sy := cp.System
	cp.texVal.SetFromGoImage(img, 0)

	sz := img.Bounds().Size()
	screen := sy.Renderer.Render().Format.Size
	rect := rectUniform{
		Pos:    [2]float32{float32(at.X), float32(at.Y)},
		Size:   [2]float32{float32(sz.X), float32(sz.Y)},
		Screen: [2]float32{float32(screen.X), float32(screen.Y)},
	}
	if err := gpu.SetValueFrom(cp.rectVal, []rectUniform{rect}); err != nil {
		return err
	}

	rp, err := sy.BeginRenderPassNoClear()
	if err != nil {
		return err
	}
	cp.pipeline.BindPipeline(rp)
	cp.pipeline.BindDrawIndexed(rp)
	rp.End()
	sy.EndRenderPass(rp)
	return nil
}
