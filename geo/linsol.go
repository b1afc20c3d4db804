// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"github.com/cpmech/gosl/la"
)

// CGSolve runs an unpreconditioned conjugate-gradient iteration on the
// matrix-free operator apply: out := A*x. A must be symmetric positive
// (semi-)definite on the subspace of interest. x holds the initial guess on
// entry and the solution on exit. Iteration stops when the residual norm
// drops below tol or after maxIt iterations; the caller decides whether a
// non-converged solution is still usable.
func CGSolve(apply func(x, out []float64), b, x []float64, maxIt int, tol float64) (converged bool, nIt int) {

	// r := b - A*x
	n := len(b)
	r := make([]float64, n)
	p := make([]float64, n)
	ap := make([]float64, n)
	apply(x, r)
	for i := 0; i < n; i++ {
		r[i] = b[i] - r[i]
	}
	la.VecCopy(p, 1, r)
	rr := la.VecDot(r, r)

	// iterations
	for nIt = 0; nIt < maxIt; nIt++ {
		if la.VecNorm(r) < tol {
			return true, nIt
		}
		apply(p, ap)
		pap := la.VecDot(p, ap)
		if pap == 0 { // breakdown: p is in the null space
			return false, nIt
		}
		α := rr / pap
		la.VecAdd(x, α, p)
		la.VecAdd(r, -α, ap)
		rrNew := la.VecDot(r, r)
		β := rrNew / rr
		rr = rrNew
		for i := 0; i < n; i++ {
			p[i] = r[i] + β*p[i]
		}
	}
	return la.VecNorm(r) < tol, nIt
}
