package generator

import (
	"testing"

	"github.com/PradoMara/Proyecto1-PrograIII-sub000/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTinyTreeScenario(t *testing.T) {
	// spec.md Scenario 1: n=4, p=0, seed=303, quotas (1,1,2) -> exactly a
	// spanning tree (3 edges), connected, one storage, one charging, two
	// client vertices.
	g, err := Generate(Config{
		N:           4,
		P:           0,
		Percentages: Percentages{Storage: 25, Charging: 25, Client: 50},
		Seed:        303,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.IsConnected())

	assert.Len(t, g.VerticesByRole(graph.RoleStorage), 1)
	assert.Len(t, g.VerticesByRole(graph.RoleCharging), 1)
	assert.Len(t, g.VerticesByRole(graph.RoleClient), 2)

	for _, e := range g.Edges() {
		assert.Equal(t, graph.TagSpanning, e.Tag)
	}
}

func TestGenerateIsDeterministicForSameSeed(t *testing.T) {
	cfg := Config{N: 12, P: 0.3, Percentages: Percentages{Storage: 20, Charging: 20, Client: 60}, Seed: 99}

	g1, err := Generate(cfg)
	require.NoError(t, err)
	g2, err := Generate(cfg)
	require.NoError(t, err)

	assert.Equal(t, g1.EdgeCount(), g2.EdgeCount())
	for _, e1 := range g1.Edges() {
		e2, ok := g2.EdgeBetween(e1.U, e1.V)
		require.True(t, ok)
		assert.Equal(t, e1.Weight, e2.Weight)
		assert.Equal(t, e1.Tag, e2.Tag)
	}
}

func TestGenerateZeroProbabilityYieldsExactlySpanningTree(t *testing.T) {
	g, err := Generate(Config{
		N:           20,
		P:           0,
		Percentages: Percentages{Storage: 10, Charging: 10, Client: 80},
		Seed:        7,
	})
	require.NoError(t, err)

	assert.Equal(t, 19, g.EdgeCount())
	assert.True(t, g.IsConnected())
}

func TestGenerateFullProbabilityYieldsCompleteGraph(t *testing.T) {
	n := 8
	g, err := Generate(Config{
		N:           n,
		P:           1,
		Percentages: Percentages{Storage: 25, Charging: 25, Client: 50},
		Seed:        42,
	})
	require.NoError(t, err)

	assert.Equal(t, n*(n-1)/2, g.EdgeCount())
	assert.True(t, g.IsConnected())
}

func TestGenerateSingleVertexHasNoEdges(t *testing.T) {
	g, err := Generate(Config{
		N:           1,
		P:           0.5,
		Percentages: Percentages{Storage: 10, Charging: 80, Client: 10},
		Seed:        1,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Len(t, g.VerticesByRole(graph.RoleCharging), 1)
}

func TestGenerateRejectsOutOfRangeN(t *testing.T) {
	_, err := Generate(Config{N: 0, P: 0.1, Percentages: Percentages{Storage: 50, Client: 50}, Seed: 1})
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Generate(Config{N: 1001, P: 0.1, Percentages: Percentages{Storage: 50, Client: 50}, Seed: 1})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestGenerateRejectsOutOfRangeP(t *testing.T) {
	_, err := Generate(Config{N: 5, P: -0.1, Percentages: Percentages{Storage: 50, Client: 50}, Seed: 1})
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Generate(Config{N: 5, P: 1.1, Percentages: Percentages{Storage: 50, Client: 50}, Seed: 1})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestGenerateRejectsInvalidQuotas(t *testing.T) {
	_, err := Generate(Config{N: 5, P: 0.1, Percentages: Percentages{}, Seed: 1})
	assert.ErrorIs(t, err, ErrInvalidQuotas)
}

func TestComputeQuotasEnforcesMinimums(t *testing.T) {
	q, err := ComputeQuotas(10, Percentages{Storage: 0, Charging: 0, Client: 100})
	require.NoError(t, err)

	assert.Equal(t, 1, q.Storage)
	assert.Equal(t, 1, q.Charging)
	assert.Equal(t, 8, q.Client)
	assert.Equal(t, 10, q.Total())
}

func TestComputeQuotasSingleVertexPicksHighestPercentage(t *testing.T) {
	q, err := ComputeQuotas(1, Percentages{Storage: 10, Charging: 70, Client: 20})
	require.NoError(t, err)
	assert.Equal(t, Quotas{Charging: 1}, q)
}
