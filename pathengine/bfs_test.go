package pathengine

import (
	"testing"

	"github.com/PradoMara/Proyecto1-PrograIII-sub000/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildLinearABCD is a path graph A-B-C-D with no shortcut, so every
// A->D route must pass through B and C.
func buildLinearABCD(t *testing.T) (*graph.Graph, map[string]int) {
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

func TestMultiStrategyBFSNoRefuelNeeded(t *testing.T) {
	g, ids := buildABCD(t)

	res := MultiStrategyBFS(g, ids["A"], ids["D"], 1000, 1000, 2.0, map[int]bool{}, StrategyShortestDistance, 0, 0)

	require.True(t, res.Success)
	assert.Equal(t, 95.0, res.TotalDistance)
	assert.Equal(t, 0, res.RefuelCount)
}

func TestMultiStrategyBFSRefuelsAtChargingVertex(t *testing.T) {
	g, ids := buildLinearABCD(t)
	charging := map[int]bool{ids["B"]: true}

	// 150 covers A->B (60 drawn) but not B->C->D (150) without a refuel.
	res := MultiStrategyBFS(g, ids["A"], ids["D"], 150, 1000, 2.0, charging, StrategyFewestRefuels, 0, 0)

	require.True(t, res.Success)
	assert.Contains(t, res.Path, ids["B"])
	assert.GreaterOrEqual(t, res.RefuelCount, 1)
}

func TestMultiStrategyBFSInsufficientInitialBattery(t *testing.T) {
	g, ids := buildABCD(t)

	res := MultiStrategyBFS(g, ids["A"], ids["D"], 50, 1000, 2.0, map[int]bool{}, StrategyShortestDistance, 0, 0)

	assert.False(t, res.Success)
	assert.Equal(t, "insufficient initial battery", res.Message)
}

func TestMultiStrategyBFSStartEqualsEnd(t *testing.T) {
	g, ids := buildABCD(t)

	res := MultiStrategyBFS(g, ids["A"], ids["A"], 1000, 1000, 2.0, map[int]bool{}, StrategyShortestDistance, 0, 0)

	require.True(t, res.Success)
	assert.Equal(t, []int{ids["A"]}, res.Path)
}

func TestMultiStrategyBFSUnreachableReportsMessage(t *testing.T) {
	g, ids := buildABCD(t)

	res := MultiStrategyBFS(g, ids["A"], ids["D"], 100, 1000, 2.0, map[int]bool{}, StrategyShortestDistance, 0, 0)

	assert.False(t, res.Success)
	assert.Equal(t, reasonNotReachable, res.Message)
}

func TestMultiStrategyBFSStrategySelection(t *testing.T) {
	g, ids := buildABCD(t)

	// Both the A-C-D shortcut (distance 95) and A-B-C-D (distance 105)
	// reach D with ample battery; the shortcut wins on both distance and
	// consumption since it is strictly better on both dimensions.
	byDistance := MultiStrategyBFS(g, ids["A"], ids["D"], 1000, 1000, 2.0, map[int]bool{}, StrategyShortestDistance, 0, 0)
	require.True(t, byDistance.Success)
	assert.Equal(t, 95.0, byDistance.TotalDistance)

	byConsumption := MultiStrategyBFS(g, ids["A"], ids["D"], 1000, 1000, 2.0, map[int]bool{}, StrategyMinConsumption, 0, 0)
	require.True(t, byConsumption.Success)
	assert.Equal(t, 95.0, byConsumption.TotalDistance)
}
