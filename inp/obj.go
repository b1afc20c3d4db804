// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// ReadObj reads a triangle mesh from a Wavefront OBJ file.
//
// Only "v" and "f" directives are recognised; blank lines, "#" comments and
// every other directive are ignored. Vertices are numbered by encounter
// order. Face tokens may be "n", "n/vt", "n//vn" or "n/vt/vn"; only the
// first field is used. Positive indices are 1-based; negative indices count
// back from the current number of vertices. Polygons with more than three
// vertices are fan-triangulated. Faces with a zero, non-numeric or
// unresolvable index are dropped whole.
//
// A file with no recognised lines yields an empty mesh; returns nil and an
// error when the file cannot be read.
func ReadObj(fnamepath string) (o *Mesh, err error) {

	// read file
	b, err := os.ReadFile(fnamepath)
	if err != nil {
		err = chk.Err("cannot open OBJ file %q:\n%v", fnamepath, err)
		return nil, err
	}

	// new mesh
	o = NewMesh()
	o.FnamePath = fnamepath

	// parse lines
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			x, y, z, ok := parseVert(fields[1:])
			if ok {
				o.AddVert(x, y, z)
			}
		case "f":
			verts, ok := parseFace(fields[1:], len(o.Verts))
			if ok {
				// fan triangulation
				for i := 1; i < len(verts)-1; i++ {
					o.AddCell(verts[0], verts[i], verts[i+1])
				}
			}
		}
	}
	return
}

// parseVert extracts three decimal numbers; lines with fewer than three
// numeric fields are skipped
func parseVert(fields []string) (x, y, z float64, ok bool) {
	if len(fields) < 3 {
		return
	}
	x, e1 := strconv.ParseFloat(fields[0], 64)
	y, e2 := strconv.ParseFloat(fields[1], 64)
	z, e3 := strconv.ParseFloat(fields[2], 64)
	if e1 != nil || e2 != nil || e3 != nil {
		return 0, 0, 0, false
	}
	return x, y, z, true
}

// parseFace resolves all face tokens against the current vertex count.
// Any invalid token invalidates the whole face.
func parseFace(tokens []string, nverts int) (verts []int, ok bool) {
	if len(tokens) < 3 {
		return
	}
	verts = make([]int, len(tokens))
	for i, t := range tokens {
		head := t
		if idx := strings.IndexByte(t, '/'); idx >= 0 {
			head = t[:idx]
		}
		n, err := strconv.Atoi(head)
		if err != nil || n == 0 {
			return nil, false
		}
		v := n - 1
		if n < 0 {
			v = nverts + n
		}
		if v < 0 || v >= nverts {
			return nil, false
		}
		verts[i] = v
	}
	return verts, true
}
