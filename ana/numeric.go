// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"github.com/pisethTang/Capstone-Project-III/inp"
	"github.com/pisethTang/Capstone-Project-III/out"

	"github.com/cpmech/gosl/io"
)

// NpNumeric is the sampling density of the numerically integrated curves
const NpNumeric = 160

// fallback surface parameters for degenerate fits
const (
	FitR = 1.0  // torus major radius
	Fitr = 0.25 // torus minor radius
	FitA = 0.5  // saddle curvature coefficient
)

// numericCurve solves the geodesic boundary-value problem on sfc between
// the parameter pairs (u0,v0) and (u1,v1) and maps the trajectory back into
// the original coordinate space of the mesh. When shooting fails the
// trajectory falls back to the parameter-space straight line.
func numericCurve(name string, sfc Surface, t *inp.Transform, p1, p2 []float64, u0, v0, u1, v1 float64) (c *out.Curve) {
	gdc := NewGeodesic(sfc)
	path, ok := gdc.Shoot(u0, v0, u1, v1, NpNumeric-1)
	if !ok {
		io.Pfred("shooting did not converge for %q; sampling the parameter-space line\n", name)
		path = ParamLine(u0, v0, u1, v1, NpNumeric-1)
	}
	points := make([][]float64, len(path))
	x := make([]float64, 3)
	for n, y := range path {
		sfc.Point(x, y[0], y[1])
		points[n] = t.Undo(x)
	}
	pinEndpoints(points, p1, p2)
	return out.NewCurve(name, points)
}

// bboxMidpoint returns the axis-aligned bounding box midpoint of a cloud
func bboxMidpoint(X [][]float64) (c []float64) {
	c = make([]float64, 3)
	lo := []float64{X[0][0], X[0][1], X[0][2]}
	hi := []float64{X[0][0], X[0][1], X[0][2]}
	for _, p := range X {
		for d := 0; d < 3; d++ {
			if p[d] < lo[d] {
				lo[d] = p[d]
			}
			if p[d] > hi[d] {
				hi[d] = p[d]
			}
		}
	}
	for d := 0; d < 3; d++ {
		c[d] = (lo[d] + hi[d]) / 2.0
	}
	return
}
