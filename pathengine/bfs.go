package pathengine

import (
	"github.com/PradoMara/Proyecto1-PrograIII-sub000/graph"
)

// Strategy selects which candidate solution wins among those found by a
// multi-strategy BFS run.
type Strategy int

const (
	StrategyShortestDistance Strategy = iota
	StrategyMinConsumption
	StrategyFewestRefuels
	StrategyMinTime
)

const (
	// DefaultExploredNodeCap bounds the total number of states expanded
	// before giving up with NotReachable.
	DefaultExploredNodeCap = 10000

	// DefaultPathVertexCap bounds the length of any single candidate path,
	// guarding against loop-induced blow-up.
	DefaultPathVertexCap = 20

	// preemptiveRefuelMargin is the safety margin at which Mode C takes a
	// virtual refuel before a step would cross it, distinct from C7's
	// default validation margin.
	preemptiveRefuelMargin = 0.10

	refuelTimeUnits = 0.5

	// speedUnitsPerTime approximates a drone's average time per unit
	// distance when no explicit speed is supplied; callers needing exact
	// timing should derive time_est from their own drone speed instead.
	speedUnitsPerTime = 1.0
)

// BFSResult is the outcome of a Mode C multi-strategy search.
type BFSResult struct {
	Success       bool
	Path          []int
	Refuels       []ChargingStop
	TotalDistance float64
	TotalBattery  float64
	TimeEstimate  float64
	RefuelCount   int
	Message       string
	NodesExplored int
}

type bfsCandidate struct {
	path          []int
	distance      float64
	batteryDrawn  float64
	timeEstimate  float64
	refuels       []ChargingStop
	battery       float64
}

// MultiStrategyBFS explores the battery-aware state space breadth-first,
// collecting every candidate path reaching end within the node and
// per-path vertex caps, then picks the winner per strategy (secondary key:
// distance, on ties for the dominant key).
//
// Preemptive refuel: before a step that would bring battery below
// preemptiveRefuelMargin * bMax, if the current vertex is itself a
// registered charging vertex, a virtual refuel is taken first (counted in
// refuels, adds refuelTimeUnits to the time estimate). Charging vertices
// adjacent to the current vertex are not considered for this refuel.
func MultiStrategyBFS(g *graph.Graph, start, end int, initialBattery, bMax, consumption float64, chargingVertices map[int]bool, strategy Strategy, exploredNodeCap, pathVertexCap int) BFSResult {
	if _, ok := g.Vertex(start); !ok {
		return BFSResult{Message: "unknown location"}
	}
	if _, ok := g.Vertex(end); !ok {
		return BFSResult{Message: "unknown location"}
	}
	if initialBattery < preemptiveRefuelMargin*bMax {
		return BFSResult{Message: "insufficient initial battery"}
	}
	if exploredNodeCap <= 0 {
		exploredNodeCap = DefaultExploredNodeCap
	}
	if pathVertexCap <= 0 {
		pathVertexCap = DefaultPathVertexCap
	}

	if start == end {
		return BFSResult{Success: true, Path: []int{start}, TotalBattery: initialBattery}
	}

	type queued struct {
		vertex  int
		path    []int
		battery float64
		dist    float64
		drawn   float64
		time    float64
		refuels []ChargingStop
	}

	visited := map[batteryState]bool{}
	queue := []queued{{vertex: start, path: []int{start}, battery: initialBattery}}

	var candidates []bfsCandidate
	explored := 0

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		explored++

		if explored > exploredNodeCap {
			break
		}
		if len(cur.path) > pathVertexCap {
			continue
		}

		st := batteryState{vertex: cur.vertex, bucket: bucketOf(cur.battery, bMax)}
		if visited[st] {
			continue
		}
		visited[st] = true

		if cur.vertex == end {
			candidates = append(candidates, bfsCandidate{
				path: append([]int{}, cur.path...), distance: cur.dist,
				batteryDrawn: cur.drawn, timeEstimate: cur.time,
				refuels: cur.refuels, battery: cur.battery,
			})
			continue
		}

		for _, e := range g.IncidentEdges(cur.vertex) {
			next := e.Opposite(cur.vertex)
			battery := cur.battery
			refuels := cur.refuels
			timeEst := cur.time + e.Weight*speedUnitsPerTime
			draw := e.Weight * consumption

			// Preemptive refuel: take a virtual charge before departing if
			// this step would cross the safety margin and the current
			// vertex is itself a charging station.
			if battery-draw < preemptiveRefuelMargin*bMax && chargingVertices[cur.vertex] {
				battery = bMax
				timeEst += refuelTimeUnits
				refuels = appendStop(g, refuels, cur.vertex, len(cur.path)-1)
			}

			battery -= draw
			if battery < 0 {
				if !chargingVertices[next] {
					continue
				}
			}
			if chargingVertices[next] {
				battery = bMax
				refuels = appendStop(g, refuels, next, len(cur.path))
			}

			nextPath := append(append([]int{}, cur.path...), next)
			queue = append(queue, queued{
				vertex: next, path: nextPath, battery: battery,
				dist: cur.dist + e.Weight, drawn: cur.drawn + draw,
				time: timeEst, refuels: refuels,
			})
		}
	}

	if len(candidates) == 0 {
		return BFSResult{Message: reasonNotReachable, NodesExplored: explored}
	}

	winner := selectWinner(candidates, strategy)
	return BFSResult{
		Success:       true,
		Path:          winner.path,
		Refuels:       winner.refuels,
		TotalDistance: winner.distance,
		TotalBattery:  winner.battery,
		TimeEstimate:  winner.timeEstimate,
		RefuelCount:   len(winner.refuels),
		NodesExplored: explored,
	}
}

func appendStop(g *graph.Graph, refuels []ChargingStop, vertexID, index int) []ChargingStop {
	name := ""
	if vtx, ok := g.Vertex(vertexID); ok {
		name = vtx.Name
	}
	return append(append([]ChargingStop{}, refuels...), ChargingStop{Index: index, VertexID: vertexID, Name: name})
}

func selectWinner(candidates []bfsCandidate, strategy Strategy) bfsCandidate {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if better(c, best, strategy) {
			best = c
		}
	}
	return best
}

func better(a, b bfsCandidate, strategy Strategy) bool {
	var av, bv float64
	switch strategy {
	case StrategyMinConsumption:
		av, bv = a.batteryDrawn, b.batteryDrawn
	case StrategyFewestRefuels:
		av, bv = float64(len(a.refuels)), float64(len(b.refuels))
	case StrategyMinTime:
		av, bv = a.timeEstimate, b.timeEstimate
	default:
		av, bv = a.distance, b.distance
	}

	if av != bv {
		return av < bv
	}
	return a.distance < b.distance
}
