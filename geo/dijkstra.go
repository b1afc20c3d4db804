// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"container/heap"
	"path/filepath"

	"github.com/pisethTang/Capstone-Project-III/inp"
	"github.com/pisethTang/Capstone-Project-III/out"

	"github.com/cpmech/gosl/chk"
)

// ShortestPath runs Dijkstra's algorithm over the mesh edge graph, from
// startId to endId, with Euclidean edge weights in the original coordinate
// space. It stops as soon as endId is finalised. AllDistances carries the
// distance of every vertex reached so far (final for the vertices already
// popped, tentative for the others) and out.DistMax for the vertices never
// reached. Ties between equal distances are broken by pop order.
func ShortestPath(msh *inp.Mesh, startId, endId int) (res *out.DijkstraResult, err error) {

	// check input
	nv := msh.Nverts()
	if nv < 1 {
		err = chk.Err("empty mesh: no vertices to run shortest path on")
		return
	}
	if startId < 0 || startId >= nv || endId < 0 || endId >= nv {
		err = chk.Err("invalid vertex index: start=%d end=%d nverts=%d", startId, endId, nv)
		return
	}

	// initialise
	dist := make([]float64, nv)
	pred := make([]int, nv)
	done := make([]bool, nv)
	for i := 0; i < nv; i++ {
		dist[i] = out.DistMax
		pred[i] = -1
	}
	dist[startId] = 0

	// main loop with lazy decrease-key: stale entries are skipped on pop
	pq := &distQueue{{startId, 0}}
	for pq.Len() > 0 {
		item := heap.Pop(pq).(distItem)
		if done[item.vid] {
			continue
		}
		done[item.vid] = true
		if item.vid == endId {
			break
		}
		for _, ng := range msh.Neighbours(item.vid) {
			if done[ng.Vid] {
				continue
			}
			d := item.dist + ng.Dist
			if d < dist[ng.Vid] {
				dist[ng.Vid] = d
				pred[ng.Vid] = item.vid
				heap.Push(pq, distItem{ng.Vid, d})
			}
		}
	}

	// assemble result
	res = &out.DijkstraResult{
		InputFileName: filepath.Base(msh.FnamePath),
		Path:          make([]int, 0),
		AllDistances:  dist,
	}
	res.Reachable = startId == endId || pred[endId] >= 0
	if !res.Reachable {
		return
	}
	total := dist[endId]
	res.TotalDistance = &total
	for v := endId; v >= 0; v = pred[v] {
		res.Path = append(res.Path, v)
	}
	for i, j := 0, len(res.Path)-1; i < j; i, j = i+1, j-1 {
		res.Path[i], res.Path[j] = res.Path[j], res.Path[i]
	}
	return
}

// distItem is one (vertex, tentative distance) pair in the priority queue
type distItem struct {
	vid  int
	dist float64
}

// distQueue is a min-heap of distItems keyed on distance
type distQueue []distItem

func (o distQueue) Len() int            { return len(o) }
func (o distQueue) Less(i, j int) bool  { return o[i].dist < o[j].dist }
func (o distQueue) Swap(i, j int)       { o[i], o[j] = o[j], o[i] }
func (o *distQueue) Push(x interface{}) { *o = append(*o, x.(distItem)) }
func (o *distQueue) Pop() (x interface{}) {
	old := *o
	n := len(old)
	x = old[n-1]
	*o = old[:n-1]
	return
}
