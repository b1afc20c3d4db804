// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/pisethTang/Capstone-Project-III/geo"
	"github.com/pisethTang/Capstone-Project-III/inp"
	"github.com/pisethTang/Capstone-Project-III/out"
)

// register solver
func init() {
	geo.SetAllocator(geo.KindSaddle, func(msh *inp.Mesh) geo.Solver {
		return &Saddle{msh: msh}
	})
}

// SaddleSurf is the hyperbolic paraboloid
//
//   r(u,v) = (centre.x + u, centre.y + v, centre.z + a·(u² - v²))
type SaddleSurf struct {
	C []float64 // centre
	A float64   // curvature coefficient
}

// Point computes x := r(u,v)
func (o *SaddleSurf) Point(x []float64, u, v float64) {
	x[0] = o.C[0] + u
	x[1] = o.C[1] + v
	x[2] = o.C[2] + o.A*(u*u-v*v)
}

// Saddle computes geodesics on a saddle fitted to the normalised vertex cloud
type Saddle struct {
	msh *inp.Mesh
}

// FitSaddle fits z = a·(x² - y²) in closed form over the centred cloud:
//
//   a = Σ (x²-y²)·z / Σ (x²-y²)²
//
// Degenerate fits fall back to a = 0.5.
func FitSaddle(X [][]float64) (sfc *SaddleSurf) {
	sfc = &SaddleSurf{C: bboxMidpoint(X)}
	num, den := 0.0, 0.0
	for _, p := range X {
		q := (p[0]-sfc.C[0])*(p[0]-sfc.C[0]) - (p[1]-sfc.C[1])*(p[1]-sfc.C[1])
		num += q * (p[2] - sfc.C[2])
		den += q * q
	}
	sfc.A = num / den
	if den < DetTolMet || math.IsNaN(sfc.A) || math.IsInf(sfc.A, 0) {
		sfc.A = FitA
	}
	return
}

// Run computes the geodesic curve from startId to endId
func (o *Saddle) Run(startId, endId int) (curves []*out.Curve, err error) {

	// fit surface in normalised space
	t := o.msh.CalcTransform()
	X := o.msh.NormalisedVerts(t)
	sfc := FitSaddle(X)

	// endpoint parameters
	u0 := X[startId][0] - sfc.C[0]
	v0 := X[startId][1] - sfc.C[1]
	u1 := X[endId][0] - sfc.C[0]
	v1 := X[endId][1] - sfc.C[1]

	p1 := o.msh.Verts[startId].C
	p2 := o.msh.Verts[endId].C
	curves = append(curves, numericCurve("saddle_geodesic", sfc, t, p1, p2, u0, v0, u1, v1))
	return
}
