// Copyright (c) 2026, Sphereview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sphere

import "cogentcore.org/core/math32"

// Depth projects a world-space point through the given view and
// projection matrices and returns its normalized depth after the
// perspective divide. With a projection whose clip z range is [0,1]
// (see scene.Camera.Projection), points inside the frustum land in
// [0,1]. This is what the depth-correcting fragment entry writes to
// frag_depth for the analytic hit point.
func Depth(p math32.Vector3, view, proj *math32.Matrix4) float32 {
	v := math32.Vector4FromVector3(p, 1)
	clip := v.MulMatrix4(view).MulMatrix4(proj)
	ndc := clip.PerspDiv()
	return ndc.Z
}
