// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Geodesic engine: computes curves approximating the shortest path between
// two mesh vertices with one of three solvers (edge-graph Dijkstra, analytic
// parametric surfaces, heat-method distance) and writes the result file
// consumed by the browser visualiser.
//
//   usage: engine <start_id> <end_id> <model_path> [mode]
//
// mode is "" (Dijkstra, the default), "analytics" or "heat". Exit codes:
// 0 on success, 1 on argument or load failure, 2 when the chosen
// analytics/heat solver produced a non-empty error.
package main

import (
	"flag"
	"os"

	_ "github.com/pisethTang/Capstone-Project-III/ana" // register analytic solvers
	"github.com/pisethTang/Capstone-Project-III/geo"
	"github.com/pisethTang/Capstone-Project-III/inp"

	"github.com/cpmech/gosl/io"
)

// DirOut is where result files are written for the visualiser; the engine
// always runs with the working directory at project root
const DirOut = "frontend/public"

func main() {
	os.Exit(run())
}

func run() (code int) {

	// catch argument and write failures
	defer func() {
		if r := recover(); r != nil {
			io.PfRed("ERROR: %v\n", r)
			code = 1
		}
	}()

	// message
	io.PfWhite("\nGeodesic engine -- shortest paths on triangle meshes\n\n")

	// arguments
	flag.Parse()
	if len(flag.Args()) < 3 {
		io.PfRed("usage: engine <start_id> <end_id> <model_path> [mode]\n")
		return 1
	}
	startId := io.Atoi(flag.Arg(0))
	endId := io.Atoi(flag.Arg(1))
	model := flag.Arg(2)
	mode := ""
	if len(flag.Args()) > 3 {
		mode = flag.Arg(3)
	}
	if mode != "" && mode != "analytics" && mode != "heat" {
		io.PfRed("unknown mode %q; must be \"\", \"analytics\" or \"heat\"\n", mode)
		return 1
	}

	// load mesh
	msh, err := inp.ReadObj(model)
	if err != nil {
		io.PfRed("%v\n", err)
		return 1
	}
	msh.Stat()

	// edge-graph shortest path
	if mode == "" {
		res, err := geo.ShortestPath(msh, startId, endId)
		if err != nil {
			io.PfRed("%v\n", err)
			return 1
		}
		if err = res.Save(DirOut, "result.json"); err != nil {
			io.PfRed("%v\n", err)
			return 1
		}
		io.Pf("%v\n", res)
		io.Pf("> %s/result.json written\n", DirOut)
		return 0
	}

	// analytics or heat; the result file carries the error field through to
	// the visualiser either way
	fname := "analytics.json"
	if mode == "heat" {
		fname = "heat_result.json"
	}
	res := geo.Solve(mode, model, msh, startId, endId)
	if err = res.Save(DirOut, fname); err != nil {
		io.PfRed("%v\n", err)
		return 1
	}
	io.Pf("%v\n", res)
	io.Pf("> %s/%s written\n", DirOut, fname)
	if res.Error != "" {
		io.PfRed("solver error: %s\n", res.Error)
		return 2
	}
	return 0
}
