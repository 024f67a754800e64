// Copyright (c) 2026, Sphereview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	_ "embed"
	"unsafe"

	"cogentcore.org/core/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed shaders/sphere.wgsl
var sphereShader string

// Renderer draws the scene's analytic spheres into a gpu render
// target. It owns a GraphicsSystem with two pipelines over the same
// shader module: "sphere" (silhouette only) and "spheredepth" (also
// writes the analytic hit depth). The system submits without
// presenting, so an overlay pass can composite onto the same target
// before the frame is shown.
type Renderer struct {
	// System is the underlying rendering system.
	System *gpu.GraphicsSystem

	// MaxRecords is the number of preallocated object uniform values;
	// draw records beyond this are dropped.
	MaxRecords int

	plain    *gpu.GraphicsPipeline
	depth    *gpu.GraphicsPipeline
	sceneVal *gpu.Value
	objVar   *gpu.Var
}

// NewRenderer returns a Renderer configured on the given render
// target, with maxRecords preallocated object uniform values.
func NewRenderer(gp *gpu.GPU, rd gpu.Renderer, maxRecords int) *Renderer {
	rn := &Renderer{MaxRecords: maxRecords}
	rn.configSystem(gp, rd)
	return rn
}

func (rn *Renderer) configSystem(gp *gpu.GPU, rd gpu.Renderer) {
	sy := gpu.NewGraphicsSystem(gp, "scene", rd)
	rn.System = sy
	sy.SetClearColor(ClearColor())

	rn.plain = sy.AddGraphicsPipeline("sphere")
	rn.plain.SetCullMode(wgpu.CullModeNone)
	rn.depth = sy.AddGraphicsPipeline("spheredepth")
	rn.depth.SetCullMode(wgpu.CullModeNone)

	sh := rn.plain.AddShader("sphere")
	sh.OpenCode(sphereShader)
	rn.plain.AddEntry(sh, gpu.VertexShader, "vs_main")
	rn.plain.AddEntry(sh, gpu.FragmentShader, "fs_main")

	sh = rn.depth.AddShader("sphere")
	sh.OpenCode(sphereShader)
	rn.depth.AddEntry(sh, gpu.VertexShader, "vs_main")
	rn.depth.AddEntry(sh, gpu.FragmentShader, "fs_depth")

	vgp := sy.Vars().AddVertexGroup()
	sgp := sy.Vars().AddGroup(gpu.Uniform, "Scene")  // group 0
	ogp := sy.Vars().AddGroup(gpu.Uniform, "Object") // group 1

	posv := vgp.Add("Pos", gpu.Float32Vector3, 0, gpu.VertexShader)
	idxv := vgp.Add("Index", gpu.Uint16, 0, gpu.VertexShader)
	idxv.Role = gpu.Index

	scenev := sgp.AddStruct("Scene", int(unsafe.Sizeof(SceneUniform{})), 1, gpu.VertexShader, gpu.FragmentShader)
	rn.objVar = ogp.AddStruct("Object", int(unsafe.Sizeof(ObjectUniform{})), 1, gpu.VertexShader, gpu.FragmentShader)

	vgp.SetNValues(1)
	sgp.SetNValues(1)
	ogp.SetNValues(rn.MaxRecords)
	sy.Config()

	gpu.SetValueFrom(posv.Values.Values[0], CubePositions())
	gpu.SetValueFrom(idxv.Values.Values[0], CubeIndexes())
	rn.sceneVal = scenev.Values.Values[0]
}

func (rn *Renderer) Release() {
	if rn.System == nil {
		return
	}
	rn.System.Release()
	rn.System = nil
}

// RenderFrame clears the target and draws the given records with the
// given camera block. All uniform values are rewritten in full before
// any draw is encoded; each record binds its own value by index.
// The commands are submitted but the frame is not presented.
func (rn *Renderer) RenderFrame(sc *SceneUniform, recs []DrawRecord) error {
	if len(recs) > rn.MaxRecords {
		recs = recs[:rn.MaxRecords]
	}
	if err := gpu.SetValueFrom(rn.sceneVal, []SceneUniform{*sc}); err != nil {
		return err
	}
	for i := range recs {
		if err := gpu.SetValueFrom(rn.objVar.Values.Values[i], []ObjectUniform{recs[i].Object}); err != nil {
			return err
		}
	}
	rp, err := rn.System.BeginRenderPass()
	if err != nil {
		return err
	}
	for i := range recs {
		rn.objVar.Values.SetCurrentValue(i)
		pl := rn.plain
		if recs[i].DepthCorrect {
			pl = rn.depth
		}
		pl.BindPipeline(rp)
		pl.BindDrawIndexed(rp)
	}
	rp.End()
	return rn.System.SubmitRender(rp)
}
