package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrorede/facility-locator/geo"
)

func lineGraph(t *testing.T) *Graph {
	t.Helper()
	g, err := Build([]geo.RoadSegment{{
		Points:  []geo.Point{{X: 0, Y: 0}, {X: 2000, Y: 0}},
		Surface: "paved",
	}}, testModel())
	require.NoError(t, err)
	return g
}

func TestAttachPointNearestNode(t *testing.T) {
	g := lineGraph(t).Clone()
	nearest, err := g.AttachPoint("supply-0", geo.Point{X: 1800, Y: 100}, testModel())
	require.NoError(t, err)
	assert.Equal(t, RoadVertex(geo.Point{X: 2000, Y: 0}), nearest)
	require.True(t, g.HasVertex(PointVertex("supply-0")))
	require.Len(t, g.Neighbors(PointVertex("supply-0")), 1)
}

func TestAttachPointDeterministicTieBreak(t *testing.T) {
	// Equidistant from both endpoints: the first road node in enumeration
	// order wins, on every clone.
	for i := 0; i < 5; i++ {
		g := lineGraph(t).Clone()
		nearest, err := g.AttachPoint("demand-0", geo.Point{X: 1000, Y: 0}, testModel())
		require.NoError(t, err)
		assert.Equal(t, RoadVertex(geo.Point{X: 0, Y: 0}), nearest)
	}
}

func TestAttachPointAtExistingNodeCostsFixedOnly(t *testing.T) {
	g := lineGraph(t).Clone()
	_, err := g.AttachPoint("supply-0", geo.Point{X: 0, Y: 0}, testModel())
	require.NoError(t, err)
	edges := g.Neighbors(PointVertex("supply-0"))
	require.Len(t, edges, 1)
	// Zero distance component leaves only the fixed connection cost.
	assert.InDelta(t, testModel().FixedConnectionCost, edges[0].Weight, 1e-9)
	assert.Zero(t, edges[0].LengthKM)
}

func TestAttachPointConnectionCost(t *testing.T) {
	g := lineGraph(t).Clone()
	_, err := g.AttachPoint("supply-0", geo.Point{X: 0, Y: 500}, testModel())
	require.NoError(t, err)
	edges := g.Neighbors(PointVertex("supply-0"))
	require.Len(t, edges, 1)
	// weight = lengthKM * price + fixed = 0.5*1.0 + 10.0
	assert.InDelta(t, 10.5, edges[0].Weight, 1e-9)
}

func TestAttachPointIsNotIdempotent(t *testing.T) {
	// The contract is exactly-once per id per copy; a second call adds a
	// duplicate edge rather than replacing the first.
	g := lineGraph(t).Clone()
	_, err := g.AttachPoint("supply-0", geo.Point{X: 100, Y: 0}, testModel())
	require.NoError(t, err)
	_, err = g.AttachPoint("supply-0", geo.Point{X: 100, Y: 0}, testModel())
	require.NoError(t, err)
	assert.Len(t, g.Neighbors(PointVertex("supply-0")), 2)
}

func TestAttachPointEmptyGraph(t *testing.T) {
	g := NewGraph()
	_, err := g.AttachPoint("supply-0", geo.Point{}, testModel())
	assert.ErrorIs(t, err, ErrEmptyNetwork)
}
