package config

import (
	"fmt"
	"math"
)

const percentageTolerance = 0.1

// Validate checks every recognized key present in cfg against its range
// from §4.9 and returns the accumulated findings. Unrecognized or absent
// keys are not validated.
func Validate(cfg Config) Report {
	var r Report

	checkRange(cfg, &r, "num_nodes", 1, 1000, "NUM_NODES_RANGE")
	if v, ok := cfg["num_nodes"]; ok && v > 500 {
		warn(&r, "num_nodes", "NUM_NODES_PERFORMANCE", fmt.Sprintf("%.0f nodes may simulate slowly", v))
	}

	checkRange(cfg, &r, "prob_edge", 0, 1, "PROB_EDGE_RANGE")
	if v, ok := cfg["prob_edge"]; ok && (v < 0.1 || v > 0.8) && v >= 0 && v <= 1 {
		warn(&r, "prob_edge", "PROB_EDGE_DENSITY", fmt.Sprintf("edge probability %.2f is outside the recommended density band", v))
	}

	checkRange(cfg, &r, "seed", 1, 999999, "SEED_RANGE")

	checkRange(cfg, &r, "pct_storage", 0, 100, "PCT_STORAGE_RANGE")
	checkRange(cfg, &r, "pct_charging", 0, 100, "PCT_CHARGING_RANGE")
	checkRange(cfg, &r, "pct_client", 0, 100, "PCT_CLIENT_RANGE")

	checkPercentageSum(cfg, &r)

	checkRange(cfg, &r, "clients_per_node", 1, 10, "CLIENTS_PER_NODE_RANGE")
	checkRange(cfg, &r, "orders_per_client", 1, 50, "ORDERS_PER_CLIENT_RANGE")
	checkRange(cfg, &r, "drone_battery", 100, 10000, "DRONE_BATTERY_RANGE")
	checkRange(cfg, &r, "drone_consumption", 0.1, 10.0, "DRONE_CONSUMPTION_RANGE")
	checkRange(cfg, &r, "station_capacity", 1, 20, "STATION_CAPACITY_RANGE")
	checkRange(cfg, &r, "recharge_cost", 0.1, 100, "RECHARGE_COST_RANGE")

	if v, ok := cfg["max_route_distance"]; ok && v > 1000 {
		warn(&r, "max_route_distance", "MAX_ROUTE_DISTANCE_HIGH", fmt.Sprintf("max route distance %.0f may exceed drone autonomy", v))
	}
	if v, ok := cfg["battery_margin"]; ok && v < 5 {
		warn(&r, "battery_margin", "BATTERY_MARGIN_LOW", fmt.Sprintf("battery margin %.1f%% is below the recommended 5%%", v))
	}

	addInfos(cfg, &r)

	r.Valid = len(r.Errors) == 0
	return r
}

func checkRange(cfg Config, r *Report, key string, min, max float64, code string) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if v < min || v > max {
		critical(r, key, code, fmt.Sprintf("%s = %v is outside the allowed range [%v, %v]", key, v, min, max))
	}
}

func checkPercentageSum(cfg Config, r *Report) {
	storage, hasStorage := cfg["pct_storage"]
	charging, hasCharging := cfg["pct_charging"]
	client, hasClient := cfg["pct_client"]
	if !hasStorage || !hasCharging || !hasClient {
		return
	}

	sum := storage + charging + client
	if math.Abs(sum-100) > percentageTolerance {
		critical(r, "pct_storage,pct_charging,pct_client", "PCT_SUM_RANGE",
			fmt.Sprintf("role percentages must sum to 100%% (got %.2f%%)", sum))
	}

	n, hasN := cfg["num_nodes"]
	if hasN && n >= 2 {
		if storage == 0 {
			warn(r, "pct_storage", "PCT_STORAGE_ZERO", "no storage vertices requested")
		}
		if charging == 0 {
			warn(r, "pct_charging", "PCT_CHARGING_ZERO", "no charging vertices requested")
		}
	}
}

func addInfos(cfg Config, r *Report) {
	n, hasN := cfg["num_nodes"]
	p, hasP := cfg["prob_edge"]

	if hasN && hasP && n > 1 {
		minEdges := n - 1
		maxEdges := n * (n - 1) / 2
		estimated := minEdges + p*(maxEdges-minEdges)
		density := 0.0
		if maxEdges > 0 {
			density = estimated / maxEdges
		}
		info(r, "edges", "ESTIMATED_EDGES", fmt.Sprintf("estimated edges: %.0f (density %.3f)", estimated, density))

		if scenario, ok := matchScenario(int(n), p); ok {
			info(r, "scenario", "SCENARIO_MATCH", fmt.Sprintf("configuration resembles scenario: %s", scenario))
		}
	}

	if hasN {
		info(r, "num_nodes", "RUNTIME_ESTIMATE", fmt.Sprintf("estimated runtime bucket: %s", runtimeBucket(n)))
	}
}

func runtimeBucket(n float64) string {
	switch {
	case n > 500:
		return "slow"
	case n > 200:
		return "normal"
	default:
		return "fast"
	}
}

func critical(r *Report, param, code, msg string) {
	r.Errors = append(r.Errors, Finding{Code: code, Parameter: param, Message: msg, Severity: SeverityCritical})
}

func warn(r *Report, param, code, msg string) {
	r.Warnings = append(r.Warnings, Finding{Code: code, Parameter: param, Message: msg, Severity: SeverityWarning})
}

func info(r *Report, param, code, msg string) {
	r.Infos = append(r.Infos, Finding{Code: code, Parameter: param, Message: msg, Severity: SeverityInfo})
}
