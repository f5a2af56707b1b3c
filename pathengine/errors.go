package pathengine

import "errors"

var (
	// ErrUnknownLocation indicates start or end is absent from the graph.
	ErrUnknownLocation = errors.New("pathengine: unknown location")

	// ErrInsufficientInitialBattery indicates the drone's starting battery
	// is already below the applicable safety margin.
	ErrInsufficientInitialBattery = errors.New("pathengine: insufficient initial battery")
)

const (
	// reasonNotReachable labels a failed search result that exhausted its
	// explored-node cap or found no viable refuel chain. Spec classifies
	// this the same as other non-success outcomes but distinguishes the
	// message; it is not a Go error since Mode C reports engine failures
	// via BFSResult.Success and BFSResult.Message rather than raising them.
	reasonNotReachable = "not reachable within explored-node cap"
)
