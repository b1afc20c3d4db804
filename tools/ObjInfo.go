// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"flag"

	"github.com/pisethTang/Capstone-Project-III/geo"
	"github.com/pisethTang/Capstone-Project-III/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// ObjInfo prints a summary of an OBJ model: counts, coordinate limits, the
// normalisation transform and the surface kind the dispatcher would pick.
//
//   usage: go run ObjInfo.go model.obj [start end]
//
// With two vertex ids, it also runs the edge-graph shortest path and prints
// the outcome.
func main() {

	// input
	flag.Parse()
	if len(flag.Args()) < 1 {
		chk.Panic("usage: ObjInfo model.obj [start end]")
	}
	fnamepath := flag.Arg(0)

	// load and summarise
	msh, err := inp.ReadObj(fnamepath)
	if err != nil {
		chk.Panic("%v", err)
	}
	msh.Stat()
	io.Pf("limits: x=[%g,%g] y=[%g,%g] z=[%g,%g]\n", msh.Xmin, msh.Xmax, msh.Ymin, msh.Ymax, msh.Zmin, msh.Zmax)
	t := msh.CalcTransform()
	io.Pf("transform: centre=(%g,%g,%g) scale=%g\n", t.Centre[0], t.Centre[1], t.Centre[2], t.Scale)
	io.Pf("surface kind: %q\n", geo.SurfaceKind(fnamepath, msh.Ncells() > 0))

	// optional shortest path
	if len(flag.Args()) > 2 {
		start := io.Atoi(flag.Arg(1))
		end := io.Atoi(flag.Arg(2))
		res, err := geo.ShortestPath(msh, start, end)
		if err != nil {
			chk.Panic("%v", err)
		}
		io.Pf("%v\n", res)
	}
}
