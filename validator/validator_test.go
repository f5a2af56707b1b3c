package validator

import (
	"testing"

	"github.com/PradoMara/Proyecto1-PrograIII-sub000/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildLine(t *testing.T) (*graph.Graph, map[string]int) {
	t.Helper()
	g := graph.New()
	ids := map[string]int{"A": 0, "B": 1, "C": 2, "D": 3}
	for name, id := range ids {
		_, err := g.AddVertex(id, graph.RoleClient, name)
		require.NoError(t, err)
	}
	edges := []struct {
		u, v string
		w    float64
	}{
		{"A", "B", 30}, {"B", "C", 40}, {"C", "D", 35},
	}
	for _, e := range edges {
		_, err := g.AddEdge(ids[e.u], ids[e.v], e.w, graph.TagExtra)
		require.NoError(t, err)
	}
	return g, ids
}

func TestValidateFeasibleRoute(t *testing.T) {
	g, ids := buildLine(t)
	path := []int{ids["A"], ids["B"], ids["C"], ids["D"]}

	res := Validate(g, path, 1000, map[int]bool{}, Options{BMax: 1000, AutonomyKm: 500})

	assert.True(t, res.Feasible)
	assert.Equal(t, 105.0, res.TotalDistance)
	assert.Empty(t, res.RequiredRefuels)
}

func TestValidateInfeasibleWithoutRefuel(t *testing.T) {
	g, ids := buildLine(t)
	path := []int{ids["A"], ids["B"], ids["C"], ids["D"]}

	res := Validate(g, path, 100, map[int]bool{}, Options{BMax: 1000, AutonomyKm: 500, AllowRefuels: false})

	assert.False(t, res.Feasible)
	assert.NotEmpty(t, res.CriticalSegments)
}

func TestValidateRefuelsAtRegisteredStation(t *testing.T) {
	g, ids := buildLine(t)
	path := []int{ids["A"], ids["B"], ids["C"], ids["D"]}
	charging := map[int]bool{ids["B"]: true}

	res := Validate(g, path, 100, charging, Options{BMax: 1000, AutonomyKm: 500, AllowRefuels: true})

	assert.True(t, res.Feasible)
	assert.NotEmpty(t, res.RequiredRefuels)
}

func TestValidateShortRouteIsRejected(t *testing.T) {
	g, ids := buildLine(t)

	res := Validate(g, []int{ids["A"]}, 1000, map[int]bool{}, Options{BMax: 1000, AutonomyKm: 500})

	assert.False(t, res.Feasible)
}

func TestValidateUnknownEdgeIsRejected(t *testing.T) {
	g, ids := buildLine(t)

	res := Validate(g, []int{ids["A"], ids["D"]}, 1000, map[int]bool{}, Options{BMax: 1000, AutonomyKm: 500})

	assert.False(t, res.Feasible)
}

func TestValidateMarksCriticalSegments(t *testing.T) {
	g, ids := buildLine(t)
	path := []int{ids["A"], ids["B"], ids["C"], ids["D"]}

	// Tuned so the route lands exactly at 200 battery remaining (margin
	// 150 + slack 100 = 250 window), marking the final segment critical
	// while the route as a whole stays feasible.
	res := Validate(g, path, 1000, map[int]bool{}, Options{BMax: 1000, AutonomyKm: 131.25, AllowRefuels: false})

	require.True(t, res.Feasible)
	assert.NotEmpty(t, res.CriticalSegments)
}
