package pathengine

import (
	"container/heap"
	"math"

	"github.com/PradoMara/Proyecto1-PrograIII-sub000/graph"
)

// DefaultSafetyMargin is the fraction of BMax below which Mode B refuses a
// starting battery outright. Distinct from the validator's default 15%
// margin (C7) per the specification's explicit split between the two.
const DefaultSafetyMargin = 0.10

// ChargingStop records a refuel encountered while deriving path info.
type ChargingStop struct {
	Index    int
	VertexID int
	Name     string
}

// BatteryResult is the outcome of a Mode B search.
type BatteryResult struct {
	Path          []int
	Distance      float64
	FinalBattery  float64
	PeakDraw      float64
	ChargingStops []ChargingStop
	Valid         bool
}

// batteryState is a dedup key: a vertex and its quantized battery bucket
// (1% of BMax per bucket).
type batteryState struct {
	vertex int
	bucket int
}

type batteryItem struct {
	state   batteryState
	battery float64
	dist    float64
	seq     int
	index   int
}

type batteryPQ []*batteryItem

func (pq batteryPQ) Len() int { return len(pq) }
func (pq batteryPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}
func (pq batteryPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}
func (pq *batteryPQ) Push(x interface{}) {
	it := x.(*batteryItem)
	it.index = len(*pq)
	*pq = append(*pq, it)
}
func (pq *batteryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return it
}

func bucketOf(battery, bMax float64) int {
	step := bMax / 100
	if step <= 0 {
		return 0
	}
	return int(math.Floor(battery / step))
}

// BatteryShortest finds the minimum-distance path from start to end
// subject to a battery constraint (Mode B). chargingVertices identifies
// which vertex IDs fully restore battery to bMax on arrival. consumption
// is the drone's battery units drawn per unit of edge weight (weight is
// treated as abstract distance; consumption converts it to battery draw,
// per the specification's distance-vs-battery-units distinction).
//
// The state space is (vertex, battery-bucket); two states dedup when they
// agree on both. Because battery can increase at charging vertices, this
// is not classical Dijkstra — the priority key (distance) stays monotone,
// but the resource key does not, so pruning only happens within a bucket.
//
// Returns ErrUnknownLocation if start or end is absent. Returns
// ErrInsufficientInitialBattery if initialBattery is already below
// DefaultSafetyMargin * bMax.
func BatteryShortest(g *graph.Graph, start, end int, initialBattery, bMax, consumption float64, chargingVertices map[int]bool) (BatteryResult, bool, error) {
	if _, ok := g.Vertex(start); !ok {
		return BatteryResult{}, false, ErrUnknownLocation
	}
	if _, ok := g.Vertex(end); !ok {
		return BatteryResult{}, false, ErrUnknownLocation
	}
	if initialBattery < DefaultSafetyMargin*bMax {
		return BatteryResult{}, false, ErrInsufficientInitialBattery
	}

	if start == end {
		return BatteryResult{Path: []int{start}, FinalBattery: initialBattery, Valid: true}, true, nil
	}

	type predEntry struct {
		from    batteryState
		fromSet bool
	}

	startState := batteryState{vertex: start, bucket: bucketOf(initialBattery, bMax)}
	dist := map[batteryState]float64{startState: 0}
	battery := map[batteryState]float64{startState: initialBattery}
	visited := map[batteryState]bool{}
	pred := map[batteryState]predEntry{}

	pq := &batteryPQ{}
	heap.Init(pq)
	seq := 0
	heap.Push(pq, &batteryItem{state: startState, battery: initialBattery, dist: 0, seq: seq})
	seq++

	var goalState batteryState
	found := false

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*batteryItem)
		st := cur.state

		if visited[st] {
			continue
		}
		visited[st] = true

		if st.vertex == end {
			goalState = st
			found = true
			break
		}

		for _, e := range g.IncidentEdges(st.vertex) {
			u := e.Opposite(st.vertex)
			bRemaining := battery[st] - e.Weight*consumption

			if bRemaining < 0 && !chargingVertices[u] {
				continue
			}
			if chargingVertices[u] {
				bRemaining = bMax
			}

			nextState := batteryState{vertex: u, bucket: bucketOf(bRemaining, bMax)}
			if visited[nextState] {
				continue
			}

			nd := cur.dist + e.Weight
			if d, known := dist[nextState]; known && nd >= d {
				continue
			}

			dist[nextState] = nd
			battery[nextState] = bRemaining
			pred[nextState] = predEntry{from: st, fromSet: true}
			heap.Push(pq, &batteryItem{state: nextState, battery: bRemaining, dist: nd, seq: seq})
			seq++
		}
	}

	if !found {
		return BatteryResult{}, false, nil
	}

	var states []batteryState
	cur := goalState
	for {
		states = append([]batteryState{cur}, states...)
		p, ok := pred[cur]
		if !ok {
			break
		}
		cur = p.from
	}

	path := make([]int, len(states))
	for i, s := range states {
		path[i] = s.vertex
	}

	return derivePathInfo(g, path, initialBattery, bMax, consumption, chargingVertices, dist[goalState]), true, nil
}

// derivePathInfo recomputes battery draw along an already-chosen path,
// resetting to bMax at each charging vertex, and reports the peak draw
// between refuels plus the list of charging stops encountered.
func derivePathInfo(g *graph.Graph, path []int, initialBattery, bMax, consumption float64, chargingVertices map[int]bool, distance float64) BatteryResult {
	result := BatteryResult{Path: path, Distance: distance}

	battery := initialBattery
	peakDraw := 0.0
	drawSinceRefuel := 0.0

	for i := 0; i < len(path)-1; i++ {
		u, v := path[i], path[i+1]
		e, ok := g.EdgeBetween(u, v)
		if !ok {
			continue
		}

		draw := e.Weight * consumption
		battery -= draw
		drawSinceRefuel += draw
		if drawSinceRefuel > peakDraw {
			peakDraw = drawSinceRefuel
		}

		if chargingVertices[v] {
			battery = bMax
			drawSinceRefuel = 0
			if vtx, ok := g.Vertex(v); ok {
				result.ChargingStops = append(result.ChargingStops, ChargingStop{Index: i + 1, VertexID: v, Name: vtx.Name})
			}
		}
	}

	result.FinalBattery = battery
	result.PeakDraw = peakDraw
	result.Valid = peakDraw <= bMax || len(result.ChargingStops) > 0

	return result
}
