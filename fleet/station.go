package fleet

import (
	"strconv"
	"time"
)

// StationState is the operational state of a charging station.
type StationState int

const (
	StationAvailable StationState = iota
	StationOccupied
	StationMaintenance
	StationOutOfService
)

func (s StationState) String() string {
	switch s {
	case StationAvailable:
		return "available"
	case StationOccupied:
		return "occupied"
	case StationMaintenance:
		return "maintenance"
	case StationOutOfService:
		return "out_of_service"
	default:
		return "unknown"
	}
}

var stationTransitions = map[StationState][]StationState{
	StationAvailable:    {StationOccupied, StationMaintenance},
	StationOccupied:     {StationAvailable, StationMaintenance},
	StationMaintenance:  {StationAvailable, StationOutOfService},
	StationOutOfService: {StationMaintenance},
}

// RechargeKind is a charging profile trading off time, cost, and
// efficiency, mirroring TipoRecarga.
type RechargeKind int

const (
	RechargeFast RechargeKind = iota
	RechargeNormal
	RechargeSlow
)

func (k RechargeKind) String() string {
	switch k {
	case RechargeFast:
		return "fast"
	case RechargeNormal:
		return "normal"
	case RechargeSlow:
		return "slow"
	default:
		return "unknown"
	}
}

type rechargeProfile struct {
	timeMultiplier float64
	costMultiplier float64
	efficiency     float64
}

// rechargeProfiles mirrors configuracion_recarga's per-kind multipliers.
var rechargeProfiles = map[RechargeKind]rechargeProfile{
	RechargeFast:   {timeMultiplier: 0.5, costMultiplier: 1.5, efficiency: 0.85},
	RechargeNormal: {timeMultiplier: 1.0, costMultiplier: 1.0, efficiency: 0.95},
	RechargeSlow:   {timeMultiplier: 2.0, costMultiplier: 0.8, efficiency: 0.98},
}

type chargeSession struct {
	droneID          string
	kind             RechargeKind
	targetPct        float64
	initialPct       float64
	estimatedMinutes float64
	estimatedCost    float64
	started          time.Time
	estimatedFinish  time.Time
}

// ChargeResult is the outcome of a completed charging session, mirroring
// finalizar_carga's return dictionary.
type ChargeResult struct {
	DroneID             string
	ActualMinutes       float64
	EstimatedMinutes    float64
	InitialPercent      float64
	FinalPercent        float64
	AmountCharged       float64
	EnergySuppliedKWh   float64
	Cost                float64
	ActualEfficiencyPct float64
	Kind                RechargeKind
}

// Station is a charging station bound to a graph vertex (NodeID), with a
// bounded number of concurrent charging slots.
type Station struct {
	ID                string
	NodeID            int
	Capacity          int
	Kinds             []RechargeKind
	EnergyEfficiency  float64
	CostPerKWh        float64
	BaseChargeMinutes float64
	state             StationState

	charging map[string]*chargeSession
	waiting  []string

	TotalChargesCompleted int
	EnergySuppliedTotal   float64
	OperatingMinutesTotal float64
	RevenueGenerated      float64
	LastUpdated           time.Time
}

// NewStation constructs a Station at StationAvailable with a default
// normal-speed recharge profile, mirroring EstacionRecarga's defaults.
func NewStation(id string, nodeID int, capacity int) *Station {
	if capacity < 1 {
		capacity = 1
	}
	return &Station{
		ID:                id,
		NodeID:            nodeID,
		Capacity:          capacity,
		Kinds:             []RechargeKind{RechargeNormal},
		EnergyEfficiency:  0.95,
		CostPerKWh:        0.15,
		BaseChargeMinutes: 60.0,
		state:             StationAvailable,
		charging:          make(map[string]*chargeSession),
	}
}

// State returns the station's current operational state.
func (s *Station) State() StationState { return s.state }

// IsAvailable reports whether the station can accept a new drone right
// now: operational, with a free slot.
func (s *Station) IsAvailable() bool {
	return s.state == StationAvailable && len(s.charging) < s.Capacity
}

// HasSpace reports whether a charging slot is free, regardless of
// operational state (used to decide whether to queue).
func (s *Station) HasSpace() bool {
	return len(s.charging) < s.Capacity
}

// resolveKind returns kind if it is one of the station's configured
// recharge kinds, falling back to its first configured kind otherwise —
// mirroring calcular_tiempo_carga's silent fallback.
func (s *Station) resolveKind(kind RechargeKind) RechargeKind {
	for _, k := range s.Kinds {
		if k == kind {
			return kind
		}
	}
	return s.Kinds[0]
}

// estimateChargeMinutes projects the wall-clock time to charge d from its
// current level to targetPct under kind, adjusted by the station's own
// energy efficiency.
func (s *Station) estimateChargeMinutes(d *Drone, kind RechargeKind, targetPct float64) float64 {
	profile := rechargeProfiles[s.resolveKind(kind)]
	base := d.TimeToChargeMinutes(targetPct)
	adjusted := base * profile.timeMultiplier
	return adjusted / s.EnergyEfficiency
}

// estimateChargeCost projects the monetary cost of charging d to
// targetPct under kind, assuming BatteryMax is expressed in Wh.
func (s *Station) estimateChargeCost(d *Drone, kind RechargeKind, targetPct float64) float64 {
	profile := rechargeProfiles[s.resolveKind(kind)]
	currentPct := d.BatteryPercent()
	energyNeededKWh := (targetPct - currentPct) / 100.0 * (d.BatteryMax / 1000.0)
	cost := energyNeededKWh * s.CostPerKWh * profile.costMultiplier
	if cost < 0 {
		return 0
	}
	return cost
}

// StartCharge registers d for charging at this station, transitioning d
// to DroneCharging and the station to StationOccupied once its capacity
// is saturated.
func (s *Station) StartCharge(d *Drone, kind RechargeKind, targetPct float64, now time.Time) error {
	if !s.IsAvailable() {
		return ErrStationUnavailable
	}
	if _, already := s.charging[d.ID]; already {
		return ErrAlreadyCharging
	}

	kind = s.resolveKind(kind)
	if err := d.ChangeState(DroneCharging); err != nil {
		return err
	}

	estimatedMinutes := s.estimateChargeMinutes(d, kind, targetPct)
	session := &chargeSession{
		droneID:          d.ID,
		kind:             kind,
		targetPct:        targetPct,
		initialPct:       d.BatteryPercent(),
		estimatedMinutes: estimatedMinutes,
		estimatedCost:    s.estimateChargeCost(d, kind, targetPct),
		started:          now,
		estimatedFinish:  now.Add(time.Duration(estimatedMinutes * float64(time.Minute))),
	}
	s.charging[d.ID] = session
	d.Position = strconv.Itoa(s.NodeID)

	if len(s.charging) >= s.Capacity {
		s.state = StationOccupied
	}
	s.LastUpdated = now
	return nil
}

// FinishCharge completes droneID's charging session, applying the
// resulting battery gain to d and returning the session's settlement.
// The caller supplies d (the station does not track drone references
// directly) and now (the completion time).
func (s *Station) FinishCharge(d *Drone, now time.Time) (ChargeResult, error) {
	session, ok := s.charging[d.ID]
	if !ok {
		return ChargeResult{}, ErrDroneNotCharging
	}

	actualMinutes := now.Sub(session.started).Minutes()

	profile := rechargeProfiles[session.kind]
	actualEfficiency := profile.efficiency * s.EnergyEfficiency

	theoreticalPct := session.targetPct - session.initialPct
	actualPct := theoreticalPct * actualEfficiency
	amountToCharge := (actualPct / 100.0) * d.BatteryMax
	amountCharged := d.Charge(amountToCharge, false)

	_ = d.ChangeState(DroneAvailable)

	energySuppliedKWh := amountCharged / 1000.0
	theoreticalEnergyKWh := theoreticalPct / 100.0 * (d.BatteryMax / 1000.0)
	cost := theoreticalEnergyKWh * s.CostPerKWh * profile.costMultiplier

	s.TotalChargesCompleted++
	s.EnergySuppliedTotal += energySuppliedKWh
	s.OperatingMinutesTotal += actualMinutes
	s.RevenueGenerated += cost

	delete(s.charging, d.ID)
	if s.state == StationOccupied && len(s.charging) < s.Capacity {
		s.state = StationAvailable
	}
	s.LastUpdated = now
	s.drainQueue()

	return ChargeResult{
		DroneID:             d.ID,
		ActualMinutes:       actualMinutes,
		EstimatedMinutes:    session.estimatedMinutes,
		InitialPercent:      session.initialPct,
		FinalPercent:        d.BatteryPercent(),
		AmountCharged:       amountCharged,
		EnergySuppliedKWh:   energySuppliedKWh,
		Cost:                cost,
		ActualEfficiencyPct: actualEfficiency * 100,
		Kind:                session.kind,
	}, nil
}

// Enqueue adds droneID to the waiting list if it is neither already
// charging nor already queued.
func (s *Station) Enqueue(droneID string) bool {
	if _, charging := s.charging[droneID]; charging {
		return false
	}
	for _, id := range s.waiting {
		if id == droneID {
			return false
		}
	}
	s.waiting = append(s.waiting, droneID)
	return true
}

// drainQueue removes waiting drone ids from the front of the queue while
// the station has a free slot. Popping does not occupy a slot, so a single
// free slot empties the whole queue; the popped ids are discarded and no
// charging session is started for them. Mirrors _procesar_cola_espera,
// which likewise only dequeues, having no drone registry to act on.
func (s *Station) drainQueue() {
	for s.HasSpace() && len(s.waiting) > 0 {
		s.waiting = s.waiting[1:]
	}
}

// ChangeState attempts to transition the station to next.
func (s *Station) ChangeState(next StationState) error {
	for _, candidate := range stationTransitions[s.state] {
		if candidate == next {
			s.state = next
			s.LastUpdated = time.Now()
			return nil
		}
	}
	return ErrIllegalTransition
}

// OccupancyCount returns the number of drones currently charging.
func (s *Station) OccupancyCount() int {
	return len(s.charging)
}

// QueueLength returns the number of drones waiting for a slot.
func (s *Station) QueueLength() int {
	return len(s.waiting)
}
