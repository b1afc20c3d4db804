// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"strings"
	"testing"

	"github.com/pisethTang/Capstone-Project-III/inp"
	"github.com/pisethTang/Capstone-Project-III/out"

	"github.com/cpmech/gosl/chk"
)

func Test_cg01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cg01. conjugate gradients on a small SPD system")

	// A = [[4,1,0],[1,3,1],[0,1,2]], x_ref = [1,2,3]
	A := [][]float64{{4, 1, 0}, {1, 3, 1}, {0, 1, 2}}
	apply := func(x, res []float64) {
		for i := 0; i < 3; i++ {
			res[i] = A[i][0]*x[0] + A[i][1]*x[1] + A[i][2]*x[2]
		}
	}
	b := []float64{6, 10, 8}
	x := make([]float64, 3)
	converged, nit := CGSolve(apply, b, x, 100, 1e-10)
	if !converged {
		tst.Errorf("CG did not converge after %d iterations\n", nit)
		return
	}
	chk.Vector(tst, "x", 1e-8, x, []float64{1, 2, 3})
}

func Test_heat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("heat01. unit tetrahedron 0 -> 2")

	msh := tetrahedron()
	solver := &HeatSolver{msh: msh}
	curves, err := solver.Run(0, 2)
	if err != nil {
		tst.Errorf("heat solver failed:\n%v", err)
		return
	}
	chk.IntAssert(len(curves), 1)
	c := curves[0]
	chk.StrAssert(c.Name, "heat_geodesic")

	// first point is the source, last point is the target
	np := len(c.Points)
	chk.Vector(tst, "first", 1e-15, c.Points[0], msh.Verts[0].C)
	chk.Vector(tst, "last", 1e-15, c.Points[np-1], msh.Verts[2].C)

	// consecutive points are graph-adjacent vertex positions
	for i := 1; i < np; i++ {
		found := false
		for v := 0; v < msh.Nverts(); v++ {
			if dist3(msh.Verts[v].C, c.Points[i]) < 1e-14 {
				for _, ng := range msh.Neighbours(v) {
					if dist3(msh.Verts[ng.Vid].C, c.Points[i-1]) < 1e-14 {
						found = true
					}
				}
			}
		}
		if !found {
			tst.Errorf("points %d and %d are not graph-adjacent\n", i-1, i)
			return
		}
	}

	// no longer than 110% of the shortest path
	res, err := ShortestPath(msh, 0, 2)
	if err != nil {
		tst.Errorf("ShortestPath failed:\n%v", err)
		return
	}
	if c.Length > (*res.TotalDistance)*1.10+1e-12 {
		tst.Errorf("heat curve too long: %g > 1.10 * %g\n", c.Length, *res.TotalDistance)
		return
	}
}

func Test_heat02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("heat02. degenerate inputs")

	// no faces
	msh := inp.NewMesh()
	msh.AddVert(0, 0, 0)
	msh.AddVert(1, 0, 0)
	solver := &HeatSolver{msh: msh}
	_, err := solver.Run(0, 1)
	if err == nil || !strings.Contains(err.Error(), "degenerate topology") {
		tst.Errorf("mesh without faces must fail with degenerate topology, got: %v\n", err)
		return
	}

	// source vertex with zero lumped mass: vertex 4 belongs to no face
	msh = tetrahedron()
	msh.AddVert(9, 9, 9)
	solver = &HeatSolver{msh: msh}
	_, err = solver.Run(4, 0)
	if err == nil || !strings.Contains(err.Error(), "degenerate source") {
		tst.Errorf("zero lumped mass must fail with degenerate source, got: %v\n", err)
		return
	}

	// zero-area faces only
	msh = inp.NewMesh()
	msh.AddVert(0, 0, 0)
	msh.AddVert(1, 0, 0)
	msh.AddVert(2, 0, 0)
	msh.AddCell(0, 1, 2)
	solver = &HeatSolver{msh: msh}
	_, err = solver.Run(0, 2)
	if err == nil {
		tst.Errorf("collinear mesh must fail\n")
		return
	}
}

func Test_heat03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("heat03. longer strip: curve length bounded by the graph path")

	// strip of unit squares split into triangles, 0..n along x
	msh := inp.NewMesh()
	n := 8
	for i := 0; i <= n; i++ {
		msh.AddVert(float64(i), 0, 0)
		msh.AddVert(float64(i), 1, 0)
	}
	for i := 0; i < n; i++ {
		a, b := 2*i, 2*i+1
		c, d := 2*i+2, 2*i+3
		msh.AddCell(a, c, b)
		msh.AddCell(b, c, d)
	}

	solver := &HeatSolver{msh: msh}
	curves, err := solver.Run(0, 2*n)
	if err != nil {
		tst.Errorf("heat solver failed:\n%v", err)
		return
	}
	c := curves[0]
	chk.Vector(tst, "first", 1e-15, c.Points[0], msh.Verts[0].C)
	chk.Vector(tst, "last", 1e-15, c.Points[len(c.Points)-1], msh.Verts[2*n].C)

	// compare against the graph shortest path
	res, err := ShortestPath(msh, 0, 2*n)
	if err != nil {
		tst.Errorf("ShortestPath failed:\n%v", err)
		return
	}
	if c.Length > (*res.TotalDistance)*1.10+1e-12 {
		tst.Errorf("heat curve too long: %g > 1.10 * %g\n", c.Length, *res.TotalDistance)
		return
	}
	if c.Length < float64(n)-1e-12 {
		tst.Errorf("heat curve shorter than the straight distance: %g < %d\n", c.Length, n)
		return
	}

	if chk.Verbose {
		plot := out.NewAnalyticsResult("strip.obj", 0, 2*n, KindMesh)
		plot.Curves = append(plot.Curves, c)
		out.PlotCurves(plot, nil)
		out.SaveCurvesPlot("/tmp/geodesic", "heat_strip")
	}
}

func Test_dispatch01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dispatch01. surface kind heuristic")

	chk.StrAssert(SurfaceKind("models/MyPlane.obj", false), KindPlane)
	chk.StrAssert(SurfaceKind("models/unit_SPHERE.obj", true), KindSphere)
	chk.StrAssert(SurfaceKind("torus4.obj", true), KindTorus)
	chk.StrAssert(SurfaceKind("the-donut.obj", false), KindTorus)
	chk.StrAssert(SurfaceKind("saddle_fine.obj", true), KindSaddle)
	chk.StrAssert(SurfaceKind("bunny.obj", true), KindMesh)
	chk.StrAssert(SurfaceKind("bunny.obj", false), KindUnsupported)
}

func Test_dispatch02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dispatch02. heat mode and failure records")

	// heat mode ignores the surface name
	msh := tetrahedron()
	res := Solve("heat", "models/sphere.obj", msh, 0, 2)
	chk.StrAssert(res.SurfaceType, KindMesh)
	chk.StrAssert(res.Error, "")
	chk.IntAssert(len(res.Curves), 1)

	// unsupported: unknown name without faces
	nofaces := inp.NewMesh()
	nofaces.AddVert(0, 0, 0)
	nofaces.AddVert(1, 0, 0)
	res = Solve("analytics", "bunny.obj", nofaces, 0, 1)
	chk.StrAssert(res.SurfaceType, KindUnsupported)
	chk.IntAssert(len(res.Curves), 0)
	if res.Error == "" {
		tst.Errorf("unsupported surface must set the error field\n")
		return
	}

	// invalid indices land in the error field, not in panics
	res = Solve("heat", "bunny.obj", msh, 0, 99)
	if res.Error == "" {
		tst.Errorf("invalid index must set the error field\n")
		return
	}

	// empty mesh
	res = Solve("heat", "bunny.obj", inp.NewMesh(), 0, 0)
	if res.Error == "" {
		tst.Errorf("empty mesh must set the error field\n")
		return
	}
}
