package routeindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterFirstTraversalCreatesBaseID(t *testing.T) {
	idx := New()
	rec := idx.Register([]int{0, 1, 2}, 12.5, 3.0)

	assert.Equal(t, "ruta_0_2", rec.ID)
	assert.Equal(t, 1, rec.Frequency)
	assert.Equal(t, 12.5, rec.TotalDistance)
	assert.Equal(t, 3.0, rec.AvgTime)
}

func TestRegisterSamePathIncrementsFrequency(t *testing.T) {
	idx := New()
	idx.Register([]int{0, 1, 2}, 12.5, 4.0)
	rec := idx.Register([]int{0, 1, 2}, 12.5, 6.0)

	assert.Equal(t, "ruta_0_2", rec.ID)
	assert.Equal(t, 2, rec.Frequency)
	assert.Equal(t, 5.0, rec.AvgTime) // average of 4.0 and 6.0
}

func TestRegisterDistinctPathSameEndpointsGetsSuffixedID(t *testing.T) {
	idx := New()
	first := idx.Register([]int{0, 1, 2}, 12.5, 3.0)
	second := idx.Register([]int{0, 3, 2}, 20.0, 5.0)

	assert.Equal(t, "ruta_0_2", first.ID)
	assert.Equal(t, "ruta_0_2_1", second.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestRegisterThirdVariantGetsNextSuffixIndex(t *testing.T) {
	idx := New()
	idx.Register([]int{0, 1, 2}, 12.5, 3.0) // ruta_0_2
	idx.Register([]int{0, 3, 2}, 20.0, 5.0) // ruta_0_2_1

	third := idx.Register([]int{0, 4, 2}, 30.0, 7.0)
	assert.Equal(t, "ruta_0_2_2", third.ID)
}

func TestByEndpointsReturnsAllVariants(t *testing.T) {
	idx := New()
	idx.Register([]int{0, 1, 2}, 12.5, 3.0)
	idx.Register([]int{0, 3, 2}, 20.0, 5.0)

	routes := idx.ByEndpoints(0, 2)
	assert.Len(t, routes, 2)
}

func TestTopKOrdersByFrequencyDescending(t *testing.T) {
	idx := New()
	idx.Register([]int{0, 1}, 5.0, 1.0)
	idx.Register([]int{0, 1}, 5.0, 1.0)
	idx.Register([]int{0, 1}, 5.0, 1.0)
	idx.Register([]int{2, 3}, 8.0, 2.0)

	top := idx.TopK(1)
	require.Len(t, top, 1)
	assert.Equal(t, "ruta_0_1", top[0].ID)
	assert.Equal(t, 3, top[0].Frequency)
}

func TestStatsReflectsRegisteredRoutes(t *testing.T) {
	idx := New()
	idx.Register([]int{0, 1}, 5.0, 1.0)
	idx.Register([]int{0, 1}, 5.0, 1.0)
	idx.Register([]int{2, 3}, 8.0, 2.0)

	stats := idx.Stats()
	assert.Equal(t, 2, stats.TotalRoutes)
	assert.Equal(t, 3, stats.TotalUses)
}

func TestIncrementFrequencyOnKnownAndUnknownID(t *testing.T) {
	idx := New()
	idx.Register([]int{0, 1}, 5.0, 1.0)

	assert.True(t, idx.IncrementFrequency("ruta_0_1", 4))
	rec := idx.ByEndpoints(0, 1)[0]
	assert.Equal(t, 5, rec.Frequency)

	assert.False(t, idx.IncrementFrequency("ruta_9_9", 1))
}

func TestNewRouteIDFormat(t *testing.T) {
	assert.Equal(t, "ruta_1_9", NewRouteID(1, 9, 0))
	assert.Equal(t, "ruta_1_9_3", NewRouteID(1, 9, 3))
}
