// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the reading of triangle meshes from Wavefront OBJ
// files and the mesh model shared by all geodesic solvers
package inp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Vert holds vertex data
type Vert struct {
	Id int       // id; coincides with the position in the OBJ "v" list
	C  []float64 // Cartesian coordinates (size==3)
}

// Cell holds one triangle
type Cell struct {
	Id    int   // id
	Verts []int // vertices (size==3)
}

// Neigh is one entry of the edge graph: a neighbour vertex and the Euclidean
// length of the connecting edge, measured in the original coordinate space
type Neigh struct {
	Vid  int     // neighbour vertex id
	Dist float64 // edge length
}

// Mesh holds a triangle mesh and the edge graph derived from it.
// An edge shared by two triangles appears twice in the neighbour lists;
// solvers treat the duplicates as parallel edges with identical weight.
type Mesh struct {

	// data
	FnamePath string  // complete filename path
	Verts     []*Vert // vertices
	Cells     []*Cell // triangles

	// derived
	Edges      [][]Neigh // [nverts] neighbour lists
	NedgeItems int       // total number of undirected entries inserted
	Xmin, Xmax float64   // x-coordinate limits
	Ymin, Ymax float64   // y-coordinate limits
	Zmin, Zmax float64   // z-coordinate limits
}

// NewMesh returns a new empty mesh
func NewMesh() (o *Mesh) {
	o = new(Mesh)
	o.Xmin, o.Ymin, o.Zmin = math.Inf(1), math.Inf(1), math.Inf(1)
	o.Xmax, o.Ymax, o.Zmax = math.Inf(-1), math.Inf(-1), math.Inf(-1)
	return
}

// Nverts returns the number of vertices
func (o *Mesh) Nverts() int { return len(o.Verts) }

// Ncells returns the number of triangles
func (o *Mesh) Ncells() int { return len(o.Cells) }

// Neighbours returns the neighbour list of vertex v
func (o *Mesh) Neighbours(v int) []Neigh { return o.Edges[v] }

// AddVert appends one vertex, updating the coordinate limits.
// Non-finite coordinates are kept in the vertex but ignored in the limits.
func (o *Mesh) AddVert(x, y, z float64) {
	v := &Vert{Id: len(o.Verts), C: []float64{x, y, z}}
	o.Verts = append(o.Verts, v)
	o.Edges = append(o.Edges, nil)
	if !math.IsNaN(x) && !math.IsInf(x, 0) {
		o.Xmin = utl.Min(o.Xmin, x)
		o.Xmax = utl.Max(o.Xmax, x)
	}
	if !math.IsNaN(y) && !math.IsInf(y, 0) {
		o.Ymin = utl.Min(o.Ymin, y)
		o.Ymax = utl.Max(o.Ymax, y)
	}
	if !math.IsNaN(z) && !math.IsInf(z, 0) {
		o.Zmin = utl.Min(o.Zmin, z)
		o.Zmax = utl.Max(o.Zmax, z)
	}
}

// AddCell appends one triangle and inserts its three undirected edges into
// the edge graph. Triangles with a repeated vertex are skipped silently.
func (o *Mesh) AddCell(i, j, k int) {
	if i == j || j == k || k == i {
		return
	}
	nv := len(o.Verts)
	if i < 0 || i >= nv || j < 0 || j >= nv || k < 0 || k >= nv {
		chk.Panic("cell (%d,%d,%d) has vertex ids outside [0,%d)", i, j, k, nv)
	}
	o.Cells = append(o.Cells, &Cell{Id: len(o.Cells), Verts: []int{i, j, k}})
	o.addEdge(i, j)
	o.addEdge(j, k)
	o.addEdge(k, i)
}

// addEdge inserts one undirected edge with its Euclidean weight
func (o *Mesh) addEdge(a, b int) {
	d := dist3d(o.Verts[a].C, o.Verts[b].C)
	o.Edges[a] = append(o.Edges[a], Neigh{b, d})
	o.Edges[b] = append(o.Edges[b], Neigh{a, d})
	o.NedgeItems++
}

// dist3d returns the Euclidean distance between two points
func dist3d(a, b []float64) float64 {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	dz := b[2] - a[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// transform /////////////////////////////////////////////////////////////////////////////////////

// Transform holds the centre/scale normalisation mapping p' = (p - centre)*scale
type Transform struct {
	Centre []float64 // bounding box midpoint
	Scale  float64   // 2 / max(extents); 1 for degenerate meshes
}

// CalcTransform computes the normalisation transform from the vertex limits
func (o *Mesh) CalcTransform() (t *Transform) {
	t = &Transform{Centre: []float64{0, 0, 0}, Scale: 1}
	if len(o.Verts) < 1 {
		return
	}
	dx := o.Xmax - o.Xmin
	dy := o.Ymax - o.Ymin
	dz := o.Zmax - o.Zmin
	if math.IsInf(dx, 0) || math.IsNaN(dx) { // all coordinates non-finite
		return
	}
	t.Centre[0] = (o.Xmin + o.Xmax) / 2.0
	t.Centre[1] = (o.Ymin + o.Ymax) / 2.0
	t.Centre[2] = (o.Zmin + o.Zmax) / 2.0
	ext := utl.Max(dx, utl.Max(dy, dz))
	if ext > 0 && !math.IsInf(ext, 0) {
		t.Scale = 2.0 / ext
	}
	return
}

// Apply maps one point into normalised space
func (o *Transform) Apply(p []float64) []float64 {
	return []float64{
		(p[0] - o.Centre[0]) * o.Scale,
		(p[1] - o.Centre[1]) * o.Scale,
		(p[2] - o.Centre[2]) * o.Scale,
	}
}

// Undo maps one normalised point back into the original space
func (o *Transform) Undo(p []float64) []float64 {
	return []float64{
		p[0]/o.Scale + o.Centre[0],
		p[1]/o.Scale + o.Centre[1],
		p[2]/o.Scale + o.Centre[2],
	}
}

// NormalisedVerts returns a fresh buffer with all vertices mapped through t
func (o *Mesh) NormalisedVerts(t *Transform) (X [][]float64) {
	X = make([][]float64, len(o.Verts))
	for i, v := range o.Verts {
		X[i] = t.Apply(v.C)
	}
	return
}

// printing //////////////////////////////////////////////////////////////////////////////////////

// Stat prints a one-line summary of the mesh
func (o *Mesh) Stat() {
	io.Pf("mesh %q: %d verts, %d cells, %d edge entries\n", o.FnamePath, len(o.Verts), len(o.Cells), o.NedgeItems)
}

// String returns a JSON representation of *Vert
func (o *Vert) String() string {
	l := io.Sf("{\"id\":%4d, \"c\":[", o.Id)
	for i, x := range o.C {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%23.15e", x)
	}
	l += "] }"
	return l
}

// String returns a JSON representation of *Mesh
func (o *Mesh) String() string {
	l := "{\n  \"verts\" : [\n"
	for i, v := range o.Verts {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    %v", v)
	}
	l += "\n  ],\n  \"cells\" : [\n"
	for i, c := range o.Cells {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    {\"id\":%d, \"verts\":[%d, %d, %d] }", c.Id, c.Verts[0], c.Verts[1], c.Verts[2])
	}
	l += "\n  ]\n}"
	return l
}

// ObjString returns the "v" and "f" lines corresponding to this mesh.
// Re-reading the returned text yields identical vertex and cell arrays.
func (o *Mesh) ObjString() string {
	l := ""
	for _, v := range o.Verts {
		l += io.Sf("v %.17g %.17g %.17g\n", v.C[0], v.C[1], v.C[2])
	}
	for _, c := range o.Cells {
		l += io.Sf("f %d %d %d\n", c.Verts[0]+1, c.Verts[1]+1, c.Verts[2]+1)
	}
	return l
}
