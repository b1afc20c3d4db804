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
	geo.SetAllocator(geo.KindTorus, func(msh *inp.Mesh) geo.Solver {
		return &Torus{msh: msh}
	})
}

// TorusSurf is the torus of revolution about the z-axis:
//
//   r(u,v) = centre + ((R + r·cos v)·cos u, (R + r·cos v)·sin u, r·sin v)
type TorusSurf struct {
	C []float64 // centre
	R float64   // major radius (distance from axis to tube centre)
	r float64   // minor (tube) radius
}

// Point computes x := r(u,v)
func (o *TorusSurf) Point(x []float64, u, v float64) {
	ρ := o.R + o.r*math.Cos(v)
	x[0] = o.C[0] + ρ*math.Cos(u)
	x[1] = o.C[1] + ρ*math.Sin(u)
	x[2] = o.C[2] + o.r*math.Sin(v)
}

// Torus computes geodesics on a torus fitted to the normalised vertex cloud
type Torus struct {
	msh *inp.Mesh
}

// FitTorus infers the torus parameters from a normalised vertex cloud:
// centre from the bounding box, R as the mean axial distance and r as the
// mean tube distance. Degenerate fits fall back to R=1, r=0.25.
func FitTorus(X [][]float64) (sfc *TorusSurf) {
	sfc = &TorusSurf{C: bboxMidpoint(X)}
	n := float64(len(X))
	for _, p := range X {
		dx, dy := p[0]-sfc.C[0], p[1]-sfc.C[1]
		sfc.R += math.Sqrt(dx*dx+dy*dy) / n
	}
	for _, p := range X {
		dx, dy, dz := p[0]-sfc.C[0], p[1]-sfc.C[1], p[2]-sfc.C[2]
		dρ := math.Sqrt(dx*dx+dy*dy) - sfc.R
		sfc.r += math.Sqrt(dρ*dρ+dz*dz) / n
	}
	if !(sfc.R > DetTolMet) || !(sfc.r > DetTolMet) || math.IsNaN(sfc.R) || math.IsNaN(sfc.r) {
		sfc.R, sfc.r = FitR, Fitr
	}
	return
}

// params extracts the torus parameters of a normalised point
func (o *TorusSurf) params(p []float64) (u, v float64) {
	dx, dy, dz := p[0]-o.C[0], p[1]-o.C[1], p[2]-o.C[2]
	ρ := math.Sqrt(dx*dx + dy*dy)
	u = math.Atan2(dy, dx)
	v = math.Atan2(dz, ρ-o.R)
	return
}

// Run computes the geodesic curve from startId to endId
func (o *Torus) Run(startId, endId int) (curves []*out.Curve, err error) {

	// fit surface in normalised space
	t := o.msh.CalcTransform()
	X := o.msh.NormalisedVerts(t)
	sfc := FitTorus(X)

	// endpoint parameters; wrap the target onto the shortest branch
	u0, v0 := sfc.params(X[startId])
	u1, v1 := sfc.params(X[endId])
	u1 = u0 + math.Remainder(u1-u0, 2.0*math.Pi)
	v1 = v0 + math.Remainder(v1-v0, 2.0*math.Pi)

	p1 := o.msh.Verts[startId].C
	p2 := o.msh.Verts[endId].C
	curves = append(curves, numericCurve("torus_geodesic", sfc, t, p1, p2, u0, v0, u1, v1))
	return
}
