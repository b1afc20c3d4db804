// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// PlotCurves plots the XY projection of all curves in a result.
//  Input:
//   res    -- analytics/heat result holding the curves
//   fms    -- formatting codes per curve; e.g. plt.Fmt{C:"blue", L:"label"};
//             may be nil or shorter than the curve list
func PlotCurves(res *AnalyticsResult, fms []plt.Fmt) {
	for i, c := range res.Curves {
		np := len(c.Points)
		x := make([]float64, np)
		y := make([]float64, np)
		for j, p := range c.Points {
			x[j] = p[0]
			y[j] = p[1]
		}
		var fm plt.Fmt
		if i < len(fms) {
			fm = fms[i]
		}
		if fm.L == "" {
			fm.L = c.Name
		}
		plt.Plot(x, y, fm.GetArgs("clip_on=0"))
	}
	plt.Gll("$x$", "$y$", "")
	plt.Equal()
}

// PlotEndpoints marks the two endpoints of a curve
func PlotEndpoints(c *Curve) {
	if len(c.Points) < 1 {
		return
	}
	a := c.Points[0]
	b := c.Points[len(c.Points)-1]
	plt.PlotOne(a[0], a[1], "'ks', ms=6, clip_on=0")
	plt.PlotOne(b[0], b[1], "'k^', ms=6, clip_on=0")
}

// SaveCurvesPlot saves the current figure to dirout/fnkey.png
func SaveCurvesPlot(dirout, fnkey string) {
	plt.SaveD(dirout, io.Sf("%s.png", fnkey))
}
