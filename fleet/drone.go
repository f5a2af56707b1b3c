package fleet

import (
	"math"
	"time"
)

// DroneState is the operational state of a drone.
type DroneState int

const (
	DroneAvailable DroneState = iota
	DroneFlying
	DroneCharging
	DroneMaintenance
	DroneOutOfService
)

func (s DroneState) String() string {
	switch s {
	case DroneAvailable:
		return "available"
	case DroneFlying:
		return "flying"
	case DroneCharging:
		return "charging"
	case DroneMaintenance:
		return "maintenance"
	case DroneOutOfService:
		return "out_of_service"
	default:
		return "unknown"
	}
}

// droneTransitions enumerates, for each state, the states directly
// reachable from it.
var droneTransitions = map[DroneState][]DroneState{
	DroneAvailable:    {DroneFlying, DroneCharging, DroneMaintenance},
	DroneFlying:       {DroneAvailable, DroneCharging},
	DroneCharging:     {DroneAvailable},
	DroneMaintenance:  {DroneAvailable, DroneOutOfService},
	DroneOutOfService: {DroneMaintenance},
}

// Drone is a single delivery drone: its static profile plus the mutable
// battery, position, and lifetime-usage counters.
type Drone struct {
	ID                string
	Model             string
	BatteryMax        float64
	ConsumptionPerKm  float64
	AvgSpeedKmH       float64
	CargoCapacityKg   float64
	FullChargeMinutes float64

	BatteryCurrent      float64
	Position            string
	state               DroneState
	DistanceFlownKm     float64
	DeliveriesCompleted int
	FlightMinutesTotal  float64
	ChargeCycles        int
	LastUpdated         time.Time
}

// NewDrone constructs a Drone at DroneAvailable with a full battery,
// mirroring Dron.__init__'s default of bateria_actual = bateria_maxima.
func NewDrone(id, model string, batteryMax, consumptionPerKm float64) *Drone {
	return &Drone{
		ID:                id,
		Model:             model,
		BatteryMax:        batteryMax,
		ConsumptionPerKm:  consumptionPerKm,
		AvgSpeedKmH:       30.0,
		CargoCapacityKg:   5.0,
		FullChargeMinutes: 60.0,
		BatteryCurrent:    batteryMax,
		state:             DroneAvailable,
	}
}

// State returns the drone's current operational state.
func (d *Drone) State() DroneState { return d.state }

// CurrentRangeKm is the distance the drone can still fly on its present
// charge.
func (d *Drone) CurrentRangeKm() float64 {
	if d.ConsumptionPerKm <= 0 {
		return math.Inf(1)
	}
	return d.BatteryCurrent / d.ConsumptionPerKm
}

// MaxRangeKm is the distance the drone can fly on a full charge.
func (d *Drone) MaxRangeKm() float64 {
	if d.ConsumptionPerKm <= 0 {
		return math.Inf(1)
	}
	return d.BatteryMax / d.ConsumptionPerKm
}

// ConsumptionForFlight returns the battery that a flight of distanceKm
// would draw.
func (d *Drone) ConsumptionForFlight(distanceKm float64) float64 {
	return distanceKm * d.ConsumptionPerKm
}

// CanFly reports whether the drone is available and holds enough battery
// to cover distanceKm plus a safetyMargin fraction of headroom.
func (d *Drone) CanFly(distanceKm, safetyMargin float64) bool {
	if d.state != DroneAvailable {
		return false
	}
	required := d.ConsumptionForFlight(distanceKm) * (1 + safetyMargin)
	return d.BatteryCurrent >= required
}

// Fly executes a flight of distanceKm to destination (if non-empty),
// drawing battery and accumulating usage metrics. A fixed 10% safety
// margin gates feasibility, matching puede_volar_distancia's default margin.
func (d *Drone) Fly(distanceKm float64, destination string) error {
	const defaultSafetyMargin = 0.1
	if !d.CanFly(distanceKm, defaultSafetyMargin) {
		return ErrCannotFly
	}

	consumption := d.ConsumptionForFlight(distanceKm)
	flightMinutes := (distanceKm / d.AvgSpeedKmH) * 60

	d.state = DroneFlying
	d.BatteryCurrent -= consumption
	d.DistanceFlownKm += distanceKm
	d.FlightMinutesTotal += flightMinutes
	if destination != "" {
		d.Position = destination
	}
	d.state = DroneAvailable
	d.LastUpdated = time.Now()
	return nil
}

// BatteryPercent returns the current battery as a percentage of max.
func (d *Drone) BatteryPercent() float64 {
	if d.BatteryMax <= 0 {
		return 0
	}
	return (d.BatteryCurrent / d.BatteryMax) * 100
}

// NeedsRecharge reports whether the battery percentage is at or below
// thresholdPct (default 20 in the source).
func (d *Drone) NeedsRecharge(thresholdPct float64) bool {
	return d.BatteryPercent() <= thresholdPct
}

// Charge adds amount of battery (or charges to full when fullCharge is
// true or amount is zero) and returns the amount actually added.
func (d *Drone) Charge(amount float64, fullCharge bool) float64 {
	initial := d.BatteryCurrent
	if fullCharge || amount == 0 {
		d.BatteryCurrent = d.BatteryMax
		if initial < d.BatteryMax {
			d.ChargeCycles++
		}
	} else {
		d.BatteryCurrent = min(d.BatteryCurrent+amount, d.BatteryMax)
		if amount > 0 {
			d.ChargeCycles++
		}
	}
	d.LastUpdated = time.Now()
	return d.BatteryCurrent - initial
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// TimeToChargeMinutes is the time needed to reach targetPct given the
// drone's FullChargeMinutes rating, prorated linearly.
func (d *Drone) TimeToChargeMinutes(targetPct float64) float64 {
	current := d.BatteryPercent()
	if current >= targetPct {
		return 0
	}
	return ((targetPct - current) / 100.0) * d.FullChargeMinutes
}

// ChangeState attempts to transition the drone to next. Returns
// ErrIllegalTransition if next is not reachable from the current state.
func (d *Drone) ChangeState(next DroneState) error {
	for _, candidate := range droneTransitions[d.state] {
		if candidate == next {
			d.state = next
			d.LastUpdated = time.Now()
			return nil
		}
	}
	return ErrIllegalTransition
}

// RecordDelivery increments the completed-delivery counter.
func (d *Drone) RecordDelivery() {
	d.DeliveriesCompleted++
	d.LastUpdated = time.Now()
}
