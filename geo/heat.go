// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"

	"github.com/pisethTang/Capstone-Project-III/inp"
	"github.com/pisethTang/Capstone-Project-III/out"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// heat solver parameters
const (
	AreaTol    = 1e-12 // triangle area and lumped mass degeneracy tolerance
	GradTol    = 1e-12 // per-triangle gradient norm cutoff
	CgTol      = 1e-6  // conjugate gradient tolerance on ‖r‖
	HeatMaxIt  = 600   // max CG iterations for the diffusion system
	PoisMaxIt  = 1000  // max CG iterations for the Poisson system
	DescentTol = 1e-9  // strict descent margin during path extraction
	PlateauTol = 1e-6  // plateau escape tolerance during path extraction
)

// HeatSolver computes geodesic distance on a general triangle mesh with the
// heat method: one backward-Euler diffusion step from the source, a
// normalised negative gradient field, and a Poisson solve whose solution
// approximates geodesic distance. A greedy descent walk recovers the
// polyline; Dijkstra over the same edge graph is the fallback when the walk
// fails to reach the source.
type HeatSolver struct {

	// input
	msh *inp.Mesh

	// assembly
	X    [][]float64       // normalised vertex buffer
	tris []*inp.Cell       // triangles that passed the area cutoff
	mass []float64         // lumped mass per vertex
	w    []map[int]float64 // half-cotangent weights per vertex
	tt   float64           // diffusion time = h² with h = mean edge length

	// diagnostics
	Diverged bool // one of the CG solves did not reach tolerance
}

// register solver
func init() {
	SetAllocator(KindMesh, func(msh *inp.Mesh) Solver {
		return &HeatSolver{msh: msh}
	})
}

// Run computes the geodesic curve from startId to endId
func (o *HeatSolver) Run(startId, endId int) (curves []*out.Curve, err error) {

	// assemble operators
	if o.msh.Ncells() < 1 {
		err = chk.Err("degenerate topology: mesh has no faces to run the heat method on")
		return
	}
	o.assemble()
	if len(o.tris) < 1 {
		err = chk.Err("degenerate topology: all faces have near-zero area")
		return
	}
	if o.mass[startId] <= AreaTol {
		err = chk.Err("degenerate source: vertex %d has zero lumped mass", startId)
		return
	}

	// heat diffusion step: (M + t·L) u = b with b = m[start]·δ_start
	nv := o.msh.Nverts()
	u := make([]float64, nv)
	b := make([]float64, nv)
	b[startId] = o.mass[startId]
	ok, nit := CGSolve(o.heatOp, b, u, HeatMaxIt, CgTol)
	if !ok {
		o.Diverged = true
		io.Pfred("heat diffusion CG did not converge after %d iterations\n", nit)
	}

	// Poisson step: L φ = rhs with the row of the source pinned to identity
	φ := make([]float64, nv)
	rhs := o.divergence(u)
	rhs[startId] = 0
	ok, nit = CGSolve(func(x, res []float64) { o.poissonOp(startId, x, res) }, rhs, φ, PoisMaxIt, CgTol)
	if !ok {
		o.Diverged = true
		io.Pfred("poisson CG did not converge after %d iterations\n", nit)
	}

	// shift so that min φ = 0
	φmin := φ[0]
	for _, v := range φ {
		φmin = utl.Min(φmin, v)
	}
	for i := range φ {
		φ[i] -= φmin
	}

	// extract path and emit curve over the original vertex positions
	vids, err := o.extractPath(φ, startId, endId)
	if err != nil {
		return
	}
	points := make([][]float64, len(vids))
	for i, v := range vids {
		points[i] = o.msh.Verts[v].C
	}
	curves = append(curves, out.NewCurve("heat_geodesic", points))
	return
}

// assemble builds the lumped mass vector, the half-cotangent weight map and
// the diffusion time step. Triangles with near-zero or non-finite area are
// skipped; flipped windings are tolerated through the area magnitude.
func (o *HeatSolver) assemble() {
	nv := o.msh.Nverts()
	t := o.msh.CalcTransform()
	o.X = o.msh.NormalisedVerts(t)
	o.mass = make([]float64, nv)
	o.w = make([]map[int]float64, nv)
	for i := 0; i < nv; i++ {
		o.w[i] = make(map[int]float64)
	}

	hsum, hcnt := 0.0, 0
	e1 := make([]float64, 3)
	e2 := make([]float64, 3)
	n := make([]float64, 3)
	for _, cell := range o.msh.Cells {
		i, j, k := cell.Verts[0], cell.Verts[1], cell.Verts[2]
		pi, pj, pk := o.X[i], o.X[j], o.X[k]

		// area with signed magnitude
		sub3d(e1, pj, pi)
		sub3d(e2, pk, pi)
		utl.Cross3d(n, e1, e2)
		area := 0.5 * math.Sqrt(utl.Dot3d(n, n))
		if !(area > AreaTol) || math.IsInf(area, 0) {
			continue
		}
		o.tris = append(o.tris, cell)

		// lumped mass
		o.mass[i] += area / 3.0
		o.mass[j] += area / 3.0
		o.mass[k] += area / 3.0

		// half-cotangents: the weight of an edge takes the cotangent of the
		// opposite angle
		ci := cotAt(pi, pj, pk)
		cj := cotAt(pj, pk, pi)
		ck := cotAt(pk, pi, pj)
		o.w[i][j] += 0.5 * ck
		o.w[j][i] += 0.5 * ck
		o.w[j][k] += 0.5 * ci
		o.w[k][j] += 0.5 * ci
		o.w[k][i] += 0.5 * cj
		o.w[i][k] += 0.5 * cj

		// edge lengths for the time step
		hsum += norm3d(e1) + norm3d(e2) + dist3(pj, pk)
		hcnt += 3
	}
	h := hsum / float64(hcnt)
	o.tt = h * h
}

// heatOp applies res := (M + t·L)·x where (L·x)i = Σj wij(xi - xj).
// L assembled from positive cotangent weights is the negative of the
// Laplace-Beltrami operator, hence the plus sign for backward Euler.
func (o *HeatSolver) heatOp(x, res []float64) {
	for i := range res {
		s := 0.0
		for j, wij := range o.w[i] {
			s += wij * (x[i] - x[j])
		}
		res[i] = o.mass[i]*x[i] + o.tt*s
	}
}

// poissonOp applies the row-pinned Laplacian: the row of vertex pin returns
// x[pin], every other row returns Σj wij(xi - xj)
func (o *HeatSolver) poissonOp(pin int, x, res []float64) {
	for i := range res {
		if i == pin {
			res[i] = x[i]
			continue
		}
		s := 0.0
		for j, wij := range o.w[i] {
			s += wij * (x[i] - x[j])
		}
		res[i] = s
	}
}

// divergence computes the integrated divergence of the normalised negative
// gradient field of u, scattered per vertex. The result is returned negated
// so that solving with the positive-weight operator yields a φ that grows
// away from the source.
func (o *HeatSolver) divergence(u []float64) (div []float64) {
	div = make([]float64, o.msh.Nverts())
	e1 := make([]float64, 3)
	e2 := make([]float64, 3)
	n := make([]float64, 3)
	g := make([]float64, 3)
	s := make([]float64, 3)
	eji := make([]float64, 3)
	eki := make([]float64, 3)
	for _, cell := range o.tris {
		i, j, k := cell.Verts[0], cell.Verts[1], cell.Verts[2]
		pi, pj, pk := o.X[i], o.X[j], o.X[k]

		// gradient of the piecewise-linear interpolant:
		//   ∇u = n × (ui·ejk + uj·eki + uk·eij) / (2A)
		sub3d(e1, pj, pi)
		sub3d(e2, pk, pi)
		utl.Cross3d(n, e1, e2)
		twoA := norm3d(n)
		for c := 0; c < 3; c++ {
			n[c] /= twoA
			s[c] = (u[i]*(pk[c]-pj[c]) + u[j]*(pi[c]-pk[c]) + u[k]*(pj[c]-pi[c])) / twoA
		}
		utl.Cross3d(g, n, s)
		gnorm := norm3d(g)
		if gnorm <= GradTol || math.IsNaN(gnorm) {
			continue
		}

		// X = -∇u/‖∇u‖
		for c := 0; c < 3; c++ {
			g[c] = -g[c] / gnorm
		}

		// scatter: divi = ½ Σ cotθ1·⟨e1,X⟩ + cotθ2·⟨e2,X⟩ over the two
		// edges leaving each vertex, with θ the opposite angle
		ci := cotAt(pi, pj, pk)
		cj := cotAt(pj, pk, pi)
		ck := cotAt(pk, pi, pj)
		sub3d(eji, pj, pi)
		sub3d(eki, pk, pi)
		div[i] += 0.5 * (ck*utl.Dot3d(eji, g) + cj*utl.Dot3d(eki, g))
		sub3d(eji, pk, pj)
		sub3d(eki, pi, pj)
		div[j] += 0.5 * (ci*utl.Dot3d(eji, g) + ck*utl.Dot3d(eki, g))
		sub3d(eji, pi, pk)
		sub3d(eki, pj, pk)
		div[k] += 0.5 * (cj*utl.Dot3d(eji, g) + ci*utl.Dot3d(eki, g))
	}
	for i := range div {
		div[i] = -div[i]
	}
	return
}

// extractPath walks from endId towards startId, always stepping to the
// neighbour with smallest φ among those strictly below the current value.
// A single step onto an unvisited neighbour within PlateauTol escapes
// plateaus. The walk is capped at 3·nverts steps; if it fails, Dijkstra on
// the same edge graph recovers the path instead.
func (o *HeatSolver) extractPath(φ []float64, startId, endId int) (vids []int, err error) {
	nv := o.msh.Nverts()
	visited := make(map[int]bool)
	cur := endId
	vids = []int{cur}
	visited[cur] = true
	for nstep := 0; nstep < 3*nv && cur != startId; nstep++ {

		// strictly descending neighbour with smallest φ
		next := -1
		for _, ng := range o.msh.Neighbours(cur) {
			if φ[ng.Vid] < φ[cur]-DescentTol {
				if next < 0 || φ[ng.Vid] < φ[next] {
					next = ng.Vid
				}
			}
		}

		// plateau escape
		if next < 0 {
			for _, ng := range o.msh.Neighbours(cur) {
				if !visited[ng.Vid] && math.Abs(φ[ng.Vid]-φ[cur]) <= PlateauTol {
					next = ng.Vid
					break
				}
			}
		}
		if next < 0 {
			break
		}
		cur = next
		visited[cur] = true
		vids = append(vids, cur)
	}

	// fallback to Dijkstra from the end so the recovered path only needs
	// reversing
	if cur != startId {
		io.Pfred("descent walk did not reach the source; falling back to shortest path\n")
		res, e := ShortestPath(o.msh, endId, startId)
		if e != nil {
			return nil, e
		}
		if !res.Reachable {
			return nil, chk.Err("cannot extract path: vertices %d and %d are not connected", startId, endId)
		}
		vids = res.Path
	}

	// reverse: the walk goes end → start, the curve goes start → end
	for i, j := 0, len(vids)-1; i < j; i, j = i+1, j-1 {
		vids[i], vids[j] = vids[j], vids[i]
	}
	return
}

// small 3-vector helpers ////////////////////////////////////////////////////////////////////////

// cotAt returns the cotangent of the interior angle at vertex a
func cotAt(a, b, c []float64) float64 {
	e1 := []float64{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
	e2 := []float64{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
	n := make([]float64, 3)
	utl.Cross3d(n, e1, e2)
	return utl.Dot3d(e1, e2) / norm3d(n)
}

// sub3d computes res := a - b
func sub3d(res, a, b []float64) {
	res[0] = a[0] - b[0]
	res[1] = a[1] - b[1]
	res[2] = a[2] - b[2]
}

// norm3d returns the Euclidean norm of a 3-vector
func norm3d(v []float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// dist3 returns the distance between two points
func dist3(a, b []float64) float64 {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	dz := b[2] - a[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
