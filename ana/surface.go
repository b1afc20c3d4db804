// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytic geodesic curves on recognised parametric
// surfaces: closed-form solutions for the plane and the sphere, and
// numerically integrated solutions on fitted tori and saddles
package ana

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// numerical parameters
const (
	HmetDiff   = 1e-4  // step for forward differencing of the metric
	HjacDiff   = 1e-3  // perturbation for the shooting Jacobian columns
	DetTolMet  = 1e-12 // below this |det g| the identity inverse is used
	DetTolJac  = 1e-10 // below this |det J| the Newton iteration aborts
	ShootTol   = 1e-3  // accept when ‖end - target‖ < ShootTol
	ShootMaxIt = 8     // max Newton iterations
)

// Surface is a parametric mapping r(u,v) into Cartesian 3-space with
// continuous first derivatives
type Surface interface {
	Point(x []float64, u, v float64) // x := r(u,v)
}

// Geodesic integrates the geodesic equation on a parametric surface.
// The metric tensor and the Christoffel symbols are obtained by forward
// differencing of the surface mapping; the integrator is classical RK4 with
// fixed step, parameterised so that one unit of integration time spans the
// whole trajectory.
type Geodesic struct {

	// input
	sfc Surface

	// scratchpad
	p0, pu, pv []float64   // surface points for differencing
	Γu, Γv     [][]float64 // Christoffel symbols of the first and second coordinate
	k1         []float64   // RK4 stages
	k2         []float64
	k3         []float64
	k4         []float64
	ytmp       []float64
}

// NewGeodesic returns a new geodesic integrator on sfc
func NewGeodesic(sfc Surface) (o *Geodesic) {
	o = new(Geodesic)
	o.sfc = sfc
	o.p0 = make([]float64, 3)
	o.pu = make([]float64, 3)
	o.pv = make([]float64, 3)
	o.Γu = la.MatAlloc(2, 2)
	o.Γv = la.MatAlloc(2, 2)
	o.k1 = make([]float64, 4)
	o.k2 = make([]float64, 4)
	o.k3 = make([]float64, 4)
	o.k4 = make([]float64, 4)
	o.ytmp = make([]float64, 4)
	return
}

// Metric computes the covariant metric components g = {g00, g01, g11} at
// (u,v) by forward differencing of the surface mapping
func (o *Geodesic) Metric(u, v float64, g []float64) {
	o.sfc.Point(o.p0, u, v)
	o.sfc.Point(o.pu, u+HmetDiff, v)
	o.sfc.Point(o.pv, u, v+HmetDiff)
	for c := 0; c < 3; c++ {
		o.pu[c] = (o.pu[c] - o.p0[c]) / HmetDiff
		o.pv[c] = (o.pv[c] - o.p0[c]) / HmetDiff
	}
	g[0] = o.pu[0]*o.pu[0] + o.pu[1]*o.pu[1] + o.pu[2]*o.pu[2]
	g[1] = o.pu[0]*o.pv[0] + o.pu[1]*o.pv[1] + o.pu[2]*o.pv[2]
	g[2] = o.pv[0]*o.pv[0] + o.pv[1]*o.pv[1] + o.pv[2]*o.pv[2]
}

// InvMetric computes the contravariant components gi = {g⁰⁰, g⁰¹, g¹¹} from
// g. Near-singular metrics yield the identity so integration can continue.
func InvMetric(g, gi []float64) {
	det := g[0]*g[2] - g[1]*g[1]
	if math.Abs(det) < DetTolMet {
		gi[0], gi[1], gi[2] = 1, 0, 1
		return
	}
	gi[0] = g[2] / det
	gi[1] = -g[1] / det
	gi[2] = g[0] / det
}

// Christoffel computes the symbols Γᵘij and Γᵛij at (u,v) from first
// differences of the metric:
//
//   Γᵏij = ½ gᵏˡ (∂i gjl + ∂j gil - ∂l gij)
func (o *Geodesic) Christoffel(u, v float64, Γu, Γv [][]float64) {

	// metric, inverse and coordinate derivatives
	var g0, gU, gV, gi [3]float64
	o.Metric(u, v, g0[:])
	o.Metric(u+HmetDiff, v, gU[:])
	o.Metric(u, v+HmetDiff, gV[:])
	for c := 0; c < 3; c++ {
		gU[c] = (gU[c] - g0[c]) / HmetDiff
		gV[c] = (gV[c] - g0[c]) / HmetDiff
	}
	InvMetric(g0[:], gi[:])

	// dg(d,i,j) = ∂d gij with the packed {00,01,11} layout
	dg := func(d, i, j int) float64 {
		c := i + j // 00→0, 01/10→1, 11→2
		if d == 0 {
			return gU[c]
		}
		return gV[c]
	}
	ginv := func(k, l int) float64 { return gi[k+l] }

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			su, sv := 0.0, 0.0
			for l := 0; l < 2; l++ {
				t := dg(i, j, l) + dg(j, i, l) - dg(l, i, j)
				su += 0.5 * ginv(0, l) * t
				sv += 0.5 * ginv(1, l) * t
			}
			Γu[i][j] = su
			Γv[i][j] = sv
		}
	}
}

// Rates computes the geodesic right-hand side f given the state
// y = {u, v, u̇, v̇}:
//
//   f = {u̇, v̇, -Γᵘij ẋi ẋj, -Γᵛij ẋi ẋj}
func (o *Geodesic) Rates(f, y []float64) {
	o.Christoffel(y[0], y[1], o.Γu, o.Γv)
	du, dv := y[2], y[3]
	f[0] = du
	f[1] = dv
	f[2] = -(o.Γu[0][0]*du*du + 2.0*o.Γu[0][1]*du*dv + o.Γu[1][1]*dv*dv)
	f[3] = -(o.Γv[0][0]*du*du + 2.0*o.Γv[0][1]*du*dv + o.Γv[1][1]*dv*dv)
}

// Integrate runs nsteps RK4 steps with step 1/nsteps from state y0 and
// returns all nsteps+1 states
func (o *Geodesic) Integrate(y0 []float64, nsteps int) (path [][]float64) {
	h := 1.0 / float64(nsteps)
	y := make([]float64, 4)
	copy(y, y0)
	path = make([][]float64, 0, nsteps+1)
	path = append(path, append([]float64{}, y...))
	for n := 0; n < nsteps; n++ {
		o.Rates(o.k1, y)
		for c := 0; c < 4; c++ {
			o.ytmp[c] = y[c] + 0.5*h*o.k1[c]
		}
		o.Rates(o.k2, o.ytmp)
		for c := 0; c < 4; c++ {
			o.ytmp[c] = y[c] + 0.5*h*o.k2[c]
		}
		o.Rates(o.k3, o.ytmp)
		for c := 0; c < 4; c++ {
			o.ytmp[c] = y[c] + h*o.k3[c]
		}
		o.Rates(o.k4, o.ytmp)
		for c := 0; c < 4; c++ {
			y[c] += h * (o.k1[c] + 2.0*o.k2[c] + 2.0*o.k3[c] + o.k4[c]) / 6.0
		}
		path = append(path, append([]float64{}, y...))
	}
	return
}

// Shoot solves the geodesic boundary-value problem from (u0,v0) to (u1,v1)
// with the shooting method: Newton iteration on the initial velocity, with
// the 2×2 Jacobian of end position obtained by finite differences. The
// initial velocity is seeded with the parameter difference. Returns the last
// integrated trajectory and whether the end point landed within ShootTol of
// the target.
func (o *Geodesic) Shoot(u0, v0, u1, v1 float64, nsteps int) (path [][]float64, ok bool) {
	w := []float64{u1 - u0, v1 - v0}
	for it := 0; it < ShootMaxIt; it++ {

		// integrate and check
		path = o.Integrate([]float64{u0, v0, w[0], w[1]}, nsteps)
		end := path[len(path)-1]
		fu := end[0] - u1
		fv := end[1] - v1
		if math.Sqrt(fu*fu+fv*fv) < ShootTol {
			return path, true
		}

		// Jacobian columns by perturbing each velocity component
		pa := o.Integrate([]float64{u0, v0, w[0] + HjacDiff, w[1]}, nsteps)
		pb := o.Integrate([]float64{u0, v0, w[0], w[1] + HjacDiff}, nsteps)
		ea := pa[len(pa)-1]
		eb := pb[len(pb)-1]
		j00 := (ea[0] - end[0]) / HjacDiff
		j10 := (ea[1] - end[1]) / HjacDiff
		j01 := (eb[0] - end[0]) / HjacDiff
		j11 := (eb[1] - end[1]) / HjacDiff

		// Newton update
		det := j00*j11 - j01*j10
		if math.Abs(det) < DetTolJac {
			return path, false
		}
		w[0] -= (j11*fu - j01*fv) / det
		w[1] -= (-j10*fu + j00*fv) / det
	}
	return path, false
}

// ParamLine returns nsteps+1 states linearly interpolating the parameters;
// the fallback trajectory when shooting fails
func ParamLine(u0, v0, u1, v1 float64, nsteps int) (path [][]float64) {
	path = make([][]float64, nsteps+1)
	du := u1 - u0
	dv := v1 - v0
	for n := 0; n <= nsteps; n++ {
		t := float64(n) / float64(nsteps)
		path[n] = []float64{u0 + t*du, v0 + t*dv, du, dv}
	}
	return
}
