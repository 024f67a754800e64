// Copyright (c) 2026, Sphereview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sphere implements analytic ray / sphere intersection.
// It is the CPU mirror of the fragment shader math, so the two can be
// tested against the same scenarios.
package sphere

import "cogentcore.org/core/math32"

// Ray is a ray in world coordinates. Dir should be normalized;
// the intersection t values are only distances when it is.
type Ray struct {
	Origin math32.Vector3
	Dir    math32.Vector3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) math32.Vector3 {
	return r.Origin.Add(r.Dir.MulScalar(t))
}

// Sphere is an analytic sphere, defined by center and radius only.
// There is no mesh; rendering rays are tested against this equation.
type Sphere struct {
	Center math32.Vector3
	Radius float32
}

// Intersect solves the quadratic t^2 + b*t + c = 0 for a unit-length ray
// direction, returning the near intersection parameter and whether the
// ray hits the sphere. A negative discriminant is a miss. The near root
// is rejected when negative, so a ray starting inside the sphere reports
// no hit: the surface behind the origin is not considered.
func Intersect(r Ray, s Sphere) (t float32, ok bool) {
	oc := r.Origin.Sub(s.Center)
	b := 2 * r.Dir.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius
	disc := b*b - 4*c
	if disc < 0 {
		return 0, false
	}
	t = (-b - math32.Sqrt(disc)) / 2
	if t < 0 {
		return 0, false
	}
	return t, true
}
