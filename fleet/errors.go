package fleet

import "errors"

var (
	// ErrIllegalTransition is returned when a requested state change is
	// not reachable from the current state.
	ErrIllegalTransition = errors.New("fleet: illegal state transition")
	// ErrAlreadyCharging is returned by Station.StartCharge when the
	// drone is already registered at that station.
	ErrAlreadyCharging = errors.New("fleet: drone is already charging at this station")
	// ErrStationUnavailable is returned by Station.StartCharge when the
	// station has no free slot or is not operational.
	ErrStationUnavailable = errors.New("fleet: station is not available")
	// ErrDroneNotCharging is returned by Station.FinishCharge when the
	// drone id is not currently registered at the station.
	ErrDroneNotCharging = errors.New("fleet: drone is not charging at this station")
	// ErrCannotFly is returned by Drone.Fly when the drone lacks enough
	// battery (including safety margin) or is not available to depart.
	ErrCannotFly = errors.New("fleet: drone cannot fly the requested distance")
)
