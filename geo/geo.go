// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geo implements geodesic solvers on triangle meshes: the
// edge-graph shortest path, the heat-method distance solver, and the
// dispatcher binding one solver to a mesh per request
package geo

import (
	"path/filepath"
	"strings"

	"github.com/pisethTang/Capstone-Project-III/inp"
	"github.com/pisethTang/Capstone-Project-III/out"

	"github.com/cpmech/gosl/chk"
)

// surface kinds
const (
	KindPlane       = "plane"
	KindSphere      = "sphere"
	KindTorus       = "torus"
	KindSaddle      = "saddle"
	KindMesh        = "mesh"
	KindUnsupported = "unsupported"
)

// Solver computes geodesic curves between two mesh vertices
type Solver interface {
	Run(startId, endId int) (curves []*out.Curve, err error)
}

// allocators holds all available solvers
var allocators = make(map[string]func(msh *inp.Mesh) Solver)

// SetAllocator registers a solver allocator for a surface kind
func SetAllocator(kind string, alloc func(msh *inp.Mesh) Solver) {
	if _, ok := allocators[kind]; ok {
		chk.Panic("cannot register solver %q twice", kind)
	}
	allocators[kind] = alloc
}

// SurfaceKind chooses the surface kind from the model basename by
// case-insensitive substring match. Names matching no known surface fall
// back to the heat method when faces are present.
func SurfaceKind(modelPath string, hasFaces bool) string {
	name := strings.ToLower(filepath.Base(modelPath))
	switch {
	case strings.Contains(name, KindPlane):
		return KindPlane
	case strings.Contains(name, KindSphere):
		return KindSphere
	case strings.Contains(name, KindTorus) || strings.Contains(name, "donut"):
		return KindTorus
	case strings.Contains(name, KindSaddle):
		return KindSaddle
	}
	if hasFaces {
		return KindMesh
	}
	return KindUnsupported
}

// Solve dispatches one analytics or heat request and assembles the result
// record. Numerical failures are reported in the record's Error field and
// never panic; the Error field is empty if and only if at least one curve
// was produced.
func Solve(mode, modelPath string, msh *inp.Mesh, startId, endId int) (res *out.AnalyticsResult) {

	// choose surface kind
	kind := KindMesh
	if mode != "heat" {
		kind = SurfaceKind(modelPath, msh.Ncells() > 0)
	}
	res = out.NewAnalyticsResult(filepath.Base(modelPath), startId, endId, kind)

	// check input
	if msh.Nverts() < 1 {
		res.Error = "empty mesh: no vertices"
		return
	}
	if startId < 0 || startId >= msh.Nverts() || endId < 0 || endId >= msh.Nverts() {
		res.Error = chk.Err("invalid vertex index: start=%d end=%d nverts=%d", startId, endId, msh.Nverts()).Error()
		return
	}
	if kind == KindUnsupported {
		res.Error = chk.Err("unsupported surface %q: no faces to run the heat method on", filepath.Base(modelPath)).Error()
		return
	}

	// allocate and run solver
	alloc, ok := allocators[kind]
	if !ok {
		chk.Panic("cannot find solver for surface kind %q", kind)
	}
	curves, err := alloc(msh).Run(startId, endId)
	if err != nil {
		res.Error = err.Error()
		return
	}
	res.Curves = append(res.Curves, curves...)
	return
}
