package pathengine

import (
	"container/heap"

	"github.com/PradoMara/Proyecto1-PrograIII-sub000/graph"
)

// Shortest computes the minimum-distance path from start to end using
// classical uniform-cost search (Mode A). Ties among equal-distance
// candidates are broken by FIFO insertion order via a monotonic sequence
// counter, so repeated calls on the same graph return the same path.
//
// Returns ok=false if end is unreachable from start. Returns
// ErrUnknownLocation if either endpoint is absent from g.
func Shortest(g *graph.Graph, start, end int) (PathResult, bool, error) {
	if _, ok := g.Vertex(start); !ok {
		return PathResult{}, false, ErrUnknownLocation
	}
	if _, ok := g.Vertex(end); !ok {
		return PathResult{}, false, ErrUnknownLocation
	}

	dist, prev := runDijkstra(g, start)

	d, reachable := dist[end]
	if !reachable {
		return PathResult{}, false, nil
	}

	return PathResult{Path: reconstruct(prev, start, end), Distance: d}, true, nil
}

// AllShortest computes the minimum-distance path from start to every
// reachable vertex. Unreachable vertices are absent from the result map.
func AllShortest(g *graph.Graph, start int) (map[int]PathResult, error) {
	if _, ok := g.Vertex(start); !ok {
		return nil, ErrUnknownLocation
	}

	dist, prev := runDijkstra(g, start)

	out := make(map[int]PathResult, len(dist))
	for v, d := range dist {
		out[v] = PathResult{Path: reconstruct(prev, start, v), Distance: d}
	}
	return out, nil
}

// runDijkstra runs the shared priority-queue search from start, returning
// final distances and a predecessor map covering every reachable vertex.
func runDijkstra(g *graph.Graph, start int) (map[int]float64, map[int]int) {
	dist := map[int]float64{start: 0}
	prev := map[int]int{}
	visited := map[int]bool{}

	pq := &itemPQ{}
	heap.Init(pq)
	seq := 0
	heap.Push(pq, &item{vertex: start, dist: 0, seq: seq})
	seq++

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*item)
		u := cur.vertex

		if visited[u] {
			continue
		}
		visited[u] = true

		for _, e := range g.IncidentEdges(u) {
			v := e.Opposite(u)
			if visited[v] {
				continue
			}

			nd := dist[u] + e.Weight
			d, known := dist[v]
			if !known || nd < d {
				dist[v] = nd
				prev[v] = u
				heap.Push(pq, &item{vertex: v, dist: nd, seq: seq})
				seq++
			}
		}
	}

	return dist, prev
}

func reconstruct(prev map[int]int, start, end int) []int {
	if start == end {
		return []int{start}
	}

	path := []int{end}
	cur := end
	for cur != start {
		p, ok := prev[cur]
		if !ok {
			return nil
		}
		path = append(path, p)
		cur = p
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
