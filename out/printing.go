// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import "github.com/cpmech/gosl/io"

func (o *Curve) String() string {
	l := io.Sf("{\"name\":%q, \"length\":%g, \"npoints\":%d", o.Name, o.Length, len(o.Points))
	if len(o.Points) > 0 {
		a := o.Points[0]
		b := o.Points[len(o.Points)-1]
		l += io.Sf(", \"first\":[%g,%g,%g], \"last\":[%g,%g,%g]", a[0], a[1], a[2], b[0], b[1], b[2])
	}
	l += "}"
	return l
}

func (o *AnalyticsResult) String() string {
	l := io.Sf("{\"inputFileName\":%q, \"startId\":%d, \"endId\":%d, \"surfaceType\":%q, \"error\":%q, \"curves\":[",
		o.InputFileName, o.StartId, o.EndId, o.SurfaceType, o.Error)
	for i, c := range o.Curves {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    %v", c)
	}
	l += "]}"
	return l
}

func (o *DijkstraResult) String() string {
	l := io.Sf("{\"inputFileName\":%q, \"reachable\":%v, \"totalDistance\":", o.InputFileName, o.Reachable)
	if o.TotalDistance == nil {
		l += "null"
	} else {
		l += io.Sf("%g", *o.TotalDistance)
	}
	l += io.Sf(", \"npath\":%d, \"nverts\":%d}", len(o.Path), len(o.AllDistances))
	return l
}
