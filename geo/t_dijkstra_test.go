// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"
	"testing"

	"github.com/pisethTang/Capstone-Project-III/inp"
	"github.com/pisethTang/Capstone-Project-III/out"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// tetrahedron returns the unit tetrahedron mesh
func tetrahedron() (msh *inp.Mesh) {
	msh = inp.NewMesh()
	msh.AddVert(0, 0, 0)
	msh.AddVert(1, 0, 0)
	msh.AddVert(0, 1, 0)
	msh.AddVert(0, 0, 1)
	msh.AddCell(0, 1, 2)
	msh.AddCell(0, 1, 3)
	msh.AddCell(0, 2, 3)
	msh.AddCell(1, 2, 3)
	return
}

// twoTriangles returns two disjoint triangles
func twoTriangles() (msh *inp.Mesh) {
	msh = inp.NewMesh()
	msh.AddVert(0, 0, 0)
	msh.AddVert(1, 0, 0)
	msh.AddVert(0, 1, 0)
	msh.AddVert(5, 0, 0)
	msh.AddVert(6, 0, 0)
	msh.AddVert(5, 1, 0)
	msh.AddCell(0, 1, 2)
	msh.AddCell(3, 4, 5)
	return
}

// pathLength sums the chord lengths along a vertex path
func pathLength(msh *inp.Mesh, path []int) (l float64) {
	for i := 1; i < len(path); i++ {
		a := msh.Verts[path[i-1]].C
		b := msh.Verts[path[i]].C
		dx, dy, dz := b[0]-a[0], b[1]-a[1], b[2]-a[2]
		l += math.Sqrt(dx*dx + dy*dy + dz*dz)
	}
	return
}

func Test_dijkstra01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dijkstra01. unit tetrahedron")

	msh := tetrahedron()

	// direct edge 0-3
	res, err := ShortestPath(msh, 0, 3)
	if err != nil {
		tst.Errorf("ShortestPath failed:\n%v", err)
		return
	}
	if !res.Reachable {
		tst.Errorf("vertex 3 should be reachable\n")
		return
	}
	chk.Ints(tst, "path", res.Path, []int{0, 3})
	chk.Scalar(tst, "totalDistance", 1e-15, *res.TotalDistance, 1)

	// diagonal edge 1-2
	res, err = ShortestPath(msh, 1, 2)
	if err != nil {
		tst.Errorf("ShortestPath failed:\n%v", err)
		return
	}
	chk.Ints(tst, "path", res.Path, []int{1, 2})
	chk.Scalar(tst, "totalDistance", 1e-15, *res.TotalDistance, math.Sqrt2)

	// totalDistance matches the chord sum along the path
	chk.Scalar(tst, "chord sum", 1e-9, *res.TotalDistance, pathLength(msh, res.Path))

	// allDistances invariants: zero at the source and the triangle
	// inequality over every edge
	chk.Scalar(tst, "allDistances[start]", 1e-17, res.AllDistances[1], 0)
	for v := 0; v < msh.Nverts(); v++ {
		for _, ng := range msh.Neighbours(v) {
			if res.AllDistances[ng.Vid] > res.AllDistances[v]+ng.Dist+1e-12 {
				tst.Errorf("triangle inequality violated on edge (%d,%d)\n", v, ng.Vid)
				return
			}
		}
	}
}

func Test_dijkstra02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dijkstra02. start == end")

	msh := tetrahedron()
	res, err := ShortestPath(msh, 2, 2)
	if err != nil {
		tst.Errorf("ShortestPath failed:\n%v", err)
		return
	}
	if !res.Reachable {
		tst.Errorf("start == end must be reachable\n")
		return
	}
	chk.Ints(tst, "path", res.Path, []int{2})
	chk.Scalar(tst, "totalDistance", 1e-17, *res.TotalDistance, 0)
}

func Test_dijkstra03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dijkstra03. disconnected mesh")

	msh := twoTriangles()
	res, err := ShortestPath(msh, 0, 4)
	if err != nil {
		tst.Errorf("ShortestPath failed:\n%v", err)
		return
	}
	if res.Reachable {
		tst.Errorf("vertex 4 must not be reachable from 0\n")
		return
	}
	if res.TotalDistance != nil {
		tst.Errorf("totalDistance must be absent when unreachable\n")
		return
	}
	chk.IntAssert(len(res.Path), 0)
	chk.Scalar(tst, "sentinel", 0, res.AllDistances[4], out.DistMax)
	chk.Scalar(tst, "reached side", 1e-15, res.AllDistances[1], 1)
}

func Test_dijkstra04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dijkstra04. invalid input")

	msh := tetrahedron()
	if _, err := ShortestPath(msh, -1, 2); err == nil {
		tst.Errorf("negative start index must fail\n")
		return
	}
	if _, err := ShortestPath(msh, 0, 4); err == nil {
		tst.Errorf("end index out of range must fail\n")
		return
	}
	if _, err := ShortestPath(inp.NewMesh(), 0, 0); err == nil {
		tst.Errorf("empty mesh must fail\n")
		return
	}
}
