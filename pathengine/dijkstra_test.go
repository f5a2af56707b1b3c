package pathengine

import (
	"testing"

	"github.com/PradoMara/Proyecto1-PrograIII-sub000/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildScenario2(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	for i := 0; i < 5; i++ {
		_, err := g.AddVertex(i, graph.RoleClient, "")
		require.NoError(t, err)
	}
	edges := []struct {
		u, v int
		w    float64
	}{
		{0, 1, 4}, {0, 2, 8}, {0, 3, 1}, {1, 2, 2}, {2, 3, 3},
	}
	for _, e := range edges {
		_, err := g.AddEdge(e.u, e.v, e.w, graph.TagExtra)
		require.NoError(t, err)
	}
	return g
}

func TestShortestScenario2(t *testing.T) {
	g := buildScenario2(t)

	res, ok, err := Shortest(g, 0, 2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int{0, 3, 2}, res.Path)
	assert.Equal(t, 4.0, res.Distance)

	res, ok, err = Shortest(g, 0, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1}, res.Path)
	assert.Equal(t, 4.0, res.Distance)

	res, ok, err = Shortest(g, 0, 3)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int{0, 3}, res.Path)
	assert.Equal(t, 1.0, res.Distance)
}

func TestAllShortestSkipsDisconnectedVertex(t *testing.T) {
	g := buildScenario2(t)

	all, err := AllShortest(g, 0)
	require.NoError(t, err)

	_, reachable := all[4]
	assert.False(t, reachable)
	assert.Len(t, all, 4)
}

func TestShortestUnknownLocation(t *testing.T) {
	g := buildScenario2(t)

	_, _, err := Shortest(g, 0, 99)
	assert.ErrorIs(t, err, ErrUnknownLocation)

	_, _, err = Shortest(g, 99, 0)
	assert.ErrorIs(t, err, ErrUnknownLocation)
}

func TestShortestStartEqualsEnd(t *testing.T) {
	g := buildScenario2(t)

	res, ok, err := Shortest(g, 2, 2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int{2}, res.Path)
	assert.Equal(t, 0.0, res.Distance)
}

func TestShortestIsSymmetricUnderUndirectedGraph(t *testing.T) {
	g := buildScenario2(t)

	fwd, ok, err := Shortest(g, 0, 2)
	require.NoError(t, err)
	require.True(t, ok)

	rev, ok, err := Shortest(g, 2, 0)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, fwd.Distance, rev.Distance)
}
