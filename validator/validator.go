package validator

import (
	"fmt"
	"sort"

	"github.com/PradoMara/Proyecto1-PrograIII-sub000/graph"
)

// Options parameterizes a single route validation.
type Options struct {
	BMax         float64
	AutonomyKm   float64
	SafetyMargin float64
	SearchRadius float64
	AllowRefuels bool
}

func (o Options) withDefaults() Options {
	if o.SafetyMargin <= 0 {
		o.SafetyMargin = DefaultSafetyMargin
	}
	if o.SearchRadius <= 0 {
		o.SearchRadius = DefaultSearchRadius
	}
	return o
}

// Validate simulates a drone flying path with starting battery
// currentBattery, segment by segment, against chargingVertices.
//
// Consumption per segment is distance * (BMax / AutonomyKm), per the
// specification's C7 formula. When a segment would leave the battery
// below SafetyMargin*BMax, and AllowRefuels is true, the nearest
// registered charging vertex directly connected to the segment's origin
// and within SearchRadius is used for an emergency full refuel before
// retrying the segment; otherwise the route is not feasible at that
// segment.
func Validate(g *graph.Graph, path []int, currentBattery float64, chargingVertices map[int]bool, opts Options) Result {
	opts = opts.withDefaults()

	if len(path) < 2 {
		return Result{Feasible: false, FinalBattery: currentBattery, Message: "route must have at least 2 vertices"}
	}

	segments, ok := buildSegments(g, path, opts, chargingVertices)
	if !ok {
		return Result{Feasible: false, FinalBattery: currentBattery, Message: "could not resolve segment distances"}
	}

	return simulate(g, segments, currentBattery, chargingVertices, opts)
}

func buildSegments(g *graph.Graph, path []int, opts Options, chargingVertices map[int]bool) ([]Segment, bool) {
	segments := make([]Segment, 0, len(path)-1)
	for i := 0; i < len(path)-1; i++ {
		u, v := path[i], path[i+1]
		e, ok := g.EdgeBetween(u, v)
		if !ok {
			return nil, false
		}

		segments = append(segments, Segment{
			Origin:      u,
			Destination: v,
			Distance:    e.Weight,
			Consumption: e.Weight * (opts.BMax / opts.AutonomyKm),
			IsCharging:  chargingVertices[v],
		})
	}
	return segments, true
}

type nearbyStation struct {
	vertexID int
	distance float64
}

func nearestStation(g *graph.Graph, origin int, chargingVertices map[int]bool, radius float64) (int, bool) {
	var candidates []nearbyStation
	for id := range chargingVertices {
		if id == origin {
			continue
		}
		e, ok := g.EdgeBetween(origin, id)
		if !ok || e.Weight > radius {
			continue
		}
		candidates = append(candidates, nearbyStation{vertexID: id, distance: e.Weight})
	}
	if len(candidates) == 0 {
		return 0, false
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].distance < candidates[j].distance })
	return candidates[0].vertexID, true
}

func simulate(g *graph.Graph, segments []Segment, startBattery float64, chargingVertices map[int]bool, opts Options) Result {
	battery := startBattery
	minRequired := opts.SafetyMargin * opts.BMax

	var critical []Segment
	var refuels []int
	totalConsumption := 0.0
	totalDistance := 0.0
	timeEst := 0.0

	for _, seg := range segments {
		totalDistance += seg.Distance

		if battery-seg.Consumption < minRequired {
			if !opts.AllowRefuels {
				return Result{
					Feasible: false, FinalBattery: battery,
					CriticalSegments: append(critical, seg), RequiredRefuels: refuels,
					TotalConsumption: totalConsumption, TotalDistance: totalDistance, TimeEstimate: timeEst,
					Message: fmt.Sprintf("insufficient battery for segment %d -> %d", seg.Origin, seg.Destination),
				}
			}

			station, found := nearestStation(g, seg.Origin, chargingVertices, opts.SearchRadius)
			if !found {
				return Result{
					Feasible: false, FinalBattery: battery,
					CriticalSegments: append(critical, seg), RequiredRefuels: refuels,
					TotalConsumption: totalConsumption, TotalDistance: totalDistance, TimeEstimate: timeEst,
					Message: fmt.Sprintf("no charging station within range of %d", seg.Origin),
				}
			}

			refuels = append(refuels, station)
			battery = opts.BMax
			timeEst += refuelRetryTimeUnits

			if battery-seg.Consumption < minRequired {
				return Result{
					Feasible: false, FinalBattery: battery,
					CriticalSegments: append(critical, seg), RequiredRefuels: refuels,
					TotalConsumption: totalConsumption, TotalDistance: totalDistance, TimeEstimate: timeEst,
					Message: fmt.Sprintf("segment %d -> %d infeasible even at full battery", seg.Origin, seg.Destination),
				}
			}
		}

		battery -= seg.Consumption
		totalConsumption += seg.Consumption

		if battery < minRequired+criticalSlack*opts.BMax {
			critical = append(critical, seg)
		}

		if seg.IsCharging && battery < 0.80*opts.BMax {
			refuels = append(refuels, seg.Destination)
			battery = opts.BMax
		}
	}

	feasible := battery >= minRequired
	message := "route feasible"
	switch {
	case !feasible:
		message = fmt.Sprintf("final battery (%.1f) below safety margin", battery)
	case len(critical) > 0:
		message = fmt.Sprintf("route feasible with %d critical segment(s)", len(critical))
	}

	return Result{
		Feasible:         feasible,
		FinalBattery:     battery,
		CriticalSegments: critical,
		RequiredRefuels:  refuels,
		TotalConsumption: totalConsumption,
		TotalDistance:    totalDistance,
		TimeEstimate:     timeEst,
		Message:          message,
	}
}
