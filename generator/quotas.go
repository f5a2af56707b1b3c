package generator

import "math"

// Percentages expresses role quotas as percentages of the vertex count,
// each in [0, 100], summing to 100 (checked by the configuration
// validator, C8 — the generator itself only rejects negative values or an
// all-zero split).
type Percentages struct {
	Storage  float64
	Charging float64
	Client   float64
}

// Quotas is the resolved integer vertex count per role.
type Quotas struct {
	Storage  int
	Charging int
	Client   int
}

// Total returns Storage + Charging + Client.
func (q Quotas) Total() int {
	return q.Storage + q.Charging + q.Client
}

// ComputeQuotas resolves integer role quotas for n vertices from
// percentages, following the spec's rounding and minimum-quota rules:
//
//  1. round each percentage's share of n to the nearest integer;
//  2. if n >= 2, force storage >= 1 and charging >= 1, absorbing the
//     deficit from whichever of the other two quotas is currently largest;
//  3. client receives whatever remains so the three quotas sum to n
//     exactly;
//  4. n == 1 is a special case: the single vertex takes the role with the
//     highest percentage.
//
// Returns ErrInvalidQuotas if any percentage is negative or all three are
// zero.
func ComputeQuotas(n int, pct Percentages) (Quotas, error) {
	if pct.Storage < 0 || pct.Charging < 0 || pct.Client < 0 {
		return Quotas{}, ErrInvalidQuotas
	}
	if pct.Storage == 0 && pct.Charging == 0 && pct.Client == 0 {
		return Quotas{}, ErrInvalidQuotas
	}

	if n == 1 {
		return singleVertexQuota(pct), nil
	}

	storage := int(math.Round(pct.Storage / 100 * float64(n)))
	charging := int(math.Round(pct.Charging / 100 * float64(n)))
	client := n - storage - charging

	q := Quotas{Storage: storage, Charging: charging, Client: client}
	if n >= 2 {
		q = enforceMinimum(q, roleStorage)
		q = enforceMinimum(q, roleCharging)
	}

	return q, nil
}

type role int

const (
	roleStorage role = iota
	roleCharging
	roleClient
)

func singleVertexQuota(pct Percentages) Quotas {
	switch {
	case pct.Storage >= pct.Charging && pct.Storage >= pct.Client:
		return Quotas{Storage: 1}
	case pct.Charging >= pct.Client:
		return Quotas{Charging: 1}
	default:
		return Quotas{Client: 1}
	}
}

// enforceMinimum ensures q's given role has at least 1 vertex, absorbing
// the deficit from whichever of the other two roles currently holds the
// largest quota.
func enforceMinimum(q Quotas, r role) Quotas {
	get := func(r role) int {
		switch r {
		case roleStorage:
			return q.Storage
		case roleCharging:
			return q.Charging
		default:
			return q.Client
		}
	}
	set := func(r role, v int) {
		switch r {
		case roleStorage:
			q.Storage = v
		case roleCharging:
			q.Charging = v
		default:
			q.Client = v
		}
	}

	if get(r) >= 1 {
		return q
	}

	var others []role
	for _, other := range []role{roleStorage, roleCharging, roleClient} {
		if other != r {
			others = append(others, other)
		}
	}

	donor := others[0]
	if get(others[1]) > get(donor) {
		donor = others[1]
	}

	set(donor, get(donor)-1)
	set(r, 1)

	return q
}
