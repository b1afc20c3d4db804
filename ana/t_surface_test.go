// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/num"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// sphereSurf is the unit sphere with longitude u and latitude v; the test
// surface because its metric and Christoffel symbols are known in closed
// form: g00 = cos²v, g01 = 0, g11 = 1, Γᵘ01 = -tan v, Γᵛ00 = sin v cos v
type sphereSurf struct{}

func (o sphereSurf) Point(x []float64, u, v float64) {
	x[0] = math.Cos(v) * math.Cos(u)
	x[1] = math.Cos(v) * math.Sin(u)
	x[2] = math.Sin(v)
}

// flatSurf is the trivial plane z = 0
type flatSurf struct{}

func (o flatSurf) Point(x []float64, u, v float64) {
	x[0], x[1], x[2] = u, v, 0
}

func Test_surface01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("surface01. metric of the unit sphere")

	gdc := NewGeodesic(sphereSurf{})
	g := make([]float64, 3)
	for _, v := range []float64{-0.9, -0.2, 0, 0.3, 1.1} {
		gdc.Metric(0.7, v, g)
		chk.Scalar(tst, io.Sf("g00(v=%g)", v), 1e-3, g[0], math.Cos(v)*math.Cos(v))
		chk.Scalar(tst, io.Sf("g01(v=%g)", v), 1e-3, g[1], 0)
		chk.Scalar(tst, io.Sf("g11(v=%g)", v), 1e-3, g[2], 1)
	}

	// cross-check the forward differencing against a central derivative
	dnum, _ := num.DerivCentral(func(x float64, args ...interface{}) (res float64) {
		gdc.Metric(0.7, x, g)
		return g[0]
	}, 0.3, 1e-3)
	chk.AnaNum(tst, "dg00/dv", 1e-3, -math.Sin(2*0.3), dnum, chk.Verbose)
}

func Test_surface02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("surface02. inverse metric degeneracy")

	gi := make([]float64, 3)
	InvMetric([]float64{2, 1, 1}, gi)
	chk.Vector(tst, "inv", 1e-15, gi, []float64{1, -1, 2})

	// singular metric falls back to the identity
	InvMetric([]float64{1, 1, 1}, gi)
	chk.Vector(tst, "identity", 1e-17, gi, []float64{1, 0, 1})
}

func Test_surface03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("surface03. Christoffel symbols of the unit sphere")

	gdc := NewGeodesic(sphereSurf{})
	Γu := la.MatAlloc(2, 2)
	Γv := la.MatAlloc(2, 2)
	v := 0.3
	gdc.Christoffel(0.7, v, Γu, Γv)
	verb := chk.Verbose
	chk.AnaNum(tst, "Γu01", 5e-3, -math.Tan(v), Γu[0][1], verb)
	chk.AnaNum(tst, "Γu10", 5e-3, -math.Tan(v), Γu[1][0], verb)
	chk.AnaNum(tst, "Γu00", 5e-3, 0, Γu[0][0], verb)
	chk.AnaNum(tst, "Γv00", 5e-3, math.Sin(v)*math.Cos(v), Γv[0][0], verb)
	chk.AnaNum(tst, "Γv01", 5e-3, 0, Γv[0][1], verb)
	chk.AnaNum(tst, "Γv11", 5e-3, 0, Γv[1][1], verb)
}

func Test_surface04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("surface04. RK4 on the plane is the straight line")

	gdc := NewGeodesic(flatSurf{})
	path := gdc.Integrate([]float64{0, 0, 1, 2}, 50)
	chk.IntAssert(len(path), 51)
	end := path[len(path)-1]
	chk.Scalar(tst, "u(1)", 1e-12, end[0], 1)
	chk.Scalar(tst, "v(1)", 1e-12, end[1], 2)

	// intermediate states stay on the line v = 2u
	for _, y := range path {
		chk.Scalar(tst, "v-2u", 1e-12, y[1]-2*y[0], 0)
	}
}

func Test_surface05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("surface05. shooting on the saddle")

	sfc := &SaddleSurf{C: []float64{0, 0, 0}, A: 0.5}
	gdc := NewGeodesic(sfc)
	u0, v0 := -0.5, -0.3
	u1, v1 := 0.4, 0.35
	path, ok := gdc.Shoot(u0, v0, u1, v1, 80)
	if !ok {
		tst.Errorf("shooting did not converge\n")
		return
	}
	chk.IntAssert(len(path), 81)
	chk.Scalar(tst, "u start", 1e-15, path[0][0], u0)
	chk.Scalar(tst, "v start", 1e-15, path[0][1], v0)
	end := path[len(path)-1]
	if math.Sqrt((end[0]-u1)*(end[0]-u1)+(end[1]-v1)*(end[1]-v1)) >= ShootTol {
		tst.Errorf("end point (%g,%g) misses the target (%g,%g)\n", end[0], end[1], u1, v1)
		return
	}
}

func Test_surface06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("surface06. parameter-space fallback line")

	path := ParamLine(0, 1, 2, 0, 4)
	chk.IntAssert(len(path), 5)
	chk.Vector(tst, "mid state", 1e-15, path[2], []float64{1, 0.5, 2, -1})
}
