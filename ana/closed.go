// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/pisethTang/Capstone-Project-III/geo"
	"github.com/pisethTang/Capstone-Project-III/inp"
	"github.com/pisethTang/Capstone-Project-III/out"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// sampling densities of the closed-form curves
const (
	NpPlane  = 64  // straight segment samples
	NpSphere = 128 // great-circle arc samples
)

// sphere angle tolerances
const (
	θzeroTol = 1e-8 // below this the endpoints coincide
	θantiTol = 1e-5 // |π-θ| below this means antipodal endpoints
)

// register solvers
func init() {
	geo.SetAllocator(geo.KindPlane, func(msh *inp.Mesh) geo.Solver {
		return &Plane{msh: msh}
	})
	geo.SetAllocator(geo.KindSphere, func(msh *inp.Mesh) geo.Solver {
		return &Sphere{msh: msh}
	})
}

// Plane is the closed-form geodesic on planar models: the straight segment
// between the two endpoints, in the original coordinate space
type Plane struct {
	msh *inp.Mesh
}

// Run returns the straight line segment from startId to endId
func (o *Plane) Run(startId, endId int) (curves []*out.Curve, err error) {
	p1 := o.msh.Verts[startId].C
	p2 := o.msh.Verts[endId].C
	points := make([][]float64, NpPlane)
	for n, t := range utl.LinSpace(0, 1, NpPlane) {
		points[n] = []float64{
			p1[0] + t*(p2[0]-p1[0]),
			p1[1] + t*(p2[1]-p1[1]),
			p1[2] + t*(p2[2]-p1[2]),
		}
	}
	pinEndpoints(points, p1, p2)
	curves = append(curves, out.NewCurve("plane_straight_line", points))
	return
}

// Sphere is the closed-form geodesic on spherical models: the great-circle
// arc through the two endpoints, on the sphere centred at the origin with
// the mean radius of the endpoints
type Sphere struct {
	msh *inp.Mesh
}

// Run returns the great-circle arc from startId to endId
func (o *Sphere) Run(startId, endId int) (curves []*out.Curve, err error) {

	// unit directions and mean radius
	p1 := o.msh.Verts[startId].C
	p2 := o.msh.Verts[endId].C
	n1 := norm3(p1)
	n2 := norm3(p2)
	if n1 <= θzeroTol || n2 <= θzeroTol {
		err = chk.Err("degenerate sphere endpoints: radii %g and %g from the origin", n1, n2)
		return
	}
	r := (n1 + n2) / 2.0
	a := []float64{p1[0] / n1, p1[1] / n1, p1[2] / n1}
	b := []float64{p2[0] / n2, p2[1] / n2, p2[2] / n2}
	cosθ := a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
	θ := math.Acos(utl.Max(-1, utl.Min(1, cosθ)))

	// coincident endpoints: a single repeated point
	points := make([][]float64, NpSphere)
	switch {
	case θ <= θzeroTol:
		for n := range points {
			points[n] = []float64{r * a[0], r * a[1], r * a[2]}
		}

	// antipodal endpoints: any half great circle; take the one through a
	// reference axis orthogonal to a
	case math.Abs(math.Pi-θ) <= θantiTol:
		u := orthonormalTo(a)
		for n, t := range utl.LinSpace(0, 1, NpSphere) {
			c := math.Cos(math.Pi * t)
			s := math.Sin(math.Pi * t)
			points[n] = []float64{
				r * (c*a[0] + s*u[0]),
				r * (c*a[1] + s*u[1]),
				r * (c*a[2] + s*u[2]),
			}
		}

	// general case: spherical linear interpolation
	default:
		sinθ := math.Sin(θ)
		for n, t := range utl.LinSpace(0, 1, NpSphere) {
			w1 := math.Sin((1.0-t)*θ) / sinθ
			w2 := math.Sin(t*θ) / sinθ
			points[n] = []float64{
				r * (w1*a[0] + w2*b[0]),
				r * (w1*a[1] + w2*b[1]),
				r * (w1*a[2] + w2*b[2]),
			}
		}
	}
	pinEndpoints(points, p1, p2)
	curves = append(curves, out.NewCurve("sphere_great_circle", points))
	return
}

// orthonormalTo returns a unit vector orthogonal to the unit vector a,
// preferring the reference axes (1,0,0), (0,1,0), (0,0,1) in that order
func orthonormalTo(a []float64) (u []float64) {
	for _, ref := range [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} {
		d := ref[0]*a[0] + ref[1]*a[1] + ref[2]*a[2]
		u = []float64{ref[0] - d*a[0], ref[1] - d*a[1], ref[2] - d*a[2]}
		if n := norm3(u); n > θzeroTol {
			u[0] /= n
			u[1] /= n
			u[2] /= n
			return
		}
	}
	chk.Panic("cannot find axis orthogonal to (%g,%g,%g)", a[0], a[1], a[2])
	return
}

// pinEndpoints overwrites the first and last samples with copies of the
// original endpoints
func pinEndpoints(points [][]float64, p1, p2 []float64) {
	points[0] = append([]float64{}, p1...)
	points[len(points)-1] = append([]float64{}, p2...)
}

// norm3 returns the Euclidean norm of a 3-vector
func norm3(v []float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}
