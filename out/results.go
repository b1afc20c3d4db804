// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the result records written for the visualiser and
// plotting helpers for inspecting geodesic curves
package out

import (
	"encoding/json"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// DistMax is the sentinel distance carried by unreachable vertices.
// Consumers treat any value beyond half of the double-precision maximum as
// unreachable.
const DistMax = math.MaxFloat64

// Curve holds one polyline approximating a geodesic.
// Length is the sum of chord lengths between consecutive points, reported in
// the original (un-normalised) units of the mesh.
type Curve struct {
	Name   string      `json:"name"`
	Length float64     `json:"length"`
	Points [][]float64 `json:"points"`
}

// NewCurve returns a curve with its length computed from the chords
func NewCurve(name string, points [][]float64) (o *Curve) {
	o = &Curve{Name: name, Points: points}
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		dx := b[0] - a[0]
		dy := b[1] - a[1]
		dz := b[2] - a[2]
		o.Length += math.Sqrt(dx*dx + dy*dy + dz*dz)
	}
	return
}

// AnalyticsResult is the record written by the analytics and heat solvers.
// Error is the empty string if and only if at least one curve is present.
type AnalyticsResult struct {
	InputFileName string   `json:"inputFileName"`
	StartId       int      `json:"startId"`
	EndId         int      `json:"endId"`
	SurfaceType   string   `json:"surfaceType"`
	Error         string   `json:"error"`
	Curves        []*Curve `json:"curves"`
}

// NewAnalyticsResult returns an empty result with the given identification
func NewAnalyticsResult(fname string, startId, endId int, surfaceType string) *AnalyticsResult {
	return &AnalyticsResult{
		InputFileName: fname,
		StartId:       startId,
		EndId:         endId,
		SurfaceType:   surfaceType,
		Curves:        make([]*Curve, 0),
	}
}

// DijkstraResult is the record written by the edge-graph shortest path
// solver. TotalDistance is null when End is unreachable; AllDistances
// carries DistMax for unreachable vertices.
type DijkstraResult struct {
	InputFileName string    `json:"inputFileName"`
	Reachable     bool      `json:"reachable"`
	TotalDistance *float64  `json:"totalDistance"`
	Path          []int     `json:"path"`
	AllDistances  []float64 `json:"allDistances"`
}

// Save writes the result as compact JSON to dirout/fname
func (o *AnalyticsResult) Save(dirout, fname string) (err error) {
	return save(o, dirout, fname)
}

// Save writes the result as compact JSON to dirout/fname
func (o *DijkstraResult) Save(dirout, fname string) (err error) {
	return save(o, dirout, fname)
}

// save marshals res and writes it, creating dirout if necessary
func save(res interface{}, dirout, fname string) (err error) {
	b, err := json.Marshal(res)
	if err != nil {
		return chk.Err("cannot encode result file %q:\n%v", fname, err)
	}
	io.WriteStringToFileD(dirout, fname, string(b))
	return
}
