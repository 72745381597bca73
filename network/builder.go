package network

import "github.com/agrorede/facility-locator/geo"

// CostModel prices network edges.
//
// Road edges: weight = lengthKM * PricePerKM * surface multiplier.
// Attachment and bridge edges: weight = lengthKM * PricePerKM + FixedConnectionCost.
type CostModel struct {
	PricePerKM          float64
	FixedConnectionCost float64
	SurfaceMultipliers  map[string]float64
	// DefaultMultiplier applies to surface types not present in
	// SurfaceMultipliers. It is distinct from every named multiplier so an
	// unknown surface is never priced as a known one.
	DefaultMultiplier float64
}

func (m CostModel) multiplier(surface string) float64 {
	if mult, ok := m.SurfaceMultipliers[surface]; ok {
		return mult
	}
	return m.DefaultMultiplier
}

// RoadEdge prices the road edge between two consecutive polyline coordinates.
func (m CostModel) RoadEdge(a, b geo.Point, surface string) Edge {
	lengthKM := geo.Distance(a, b) / 1000.0
	return Edge{
		From:     RoadVertex(a),
		To:       RoadVertex(b),
		Weight:   lengthKM * m.PricePerKM * m.multiplier(surface),
		LengthKM: lengthKM,
	}
}

// ConnectionEdge prices a synthetic edge: a point attachment or a component
// bridge.
func (m CostModel) ConnectionEdge(from, to Vertex, lengthKM float64) Edge {
	return Edge{
		From:      from,
		To:        to,
		Weight:    lengthKM*m.PricePerKM + m.FixedConnectionCost,
		LengthKM:  lengthKM,
		FixedCost: m.FixedConnectionCost,
	}
}

// Build constructs the base road graph from road segments, adding one edge
// per consecutive coordinate pair. Node identity is exact coordinate
// equality. It fails with ErrEmptyNetwork when the dataset yields no nodes.
func Build(segments []geo.RoadSegment, model CostModel) (*Graph, error) {
	g := NewGraph()
	for _, seg := range segments {
		for i := 0; i+1 < len(seg.Points); i++ {
			g.AddEdge(model.RoadEdge(seg.Points[i], seg.Points[i+1], seg.Surface))
		}
	}
	if len(g.roadOrder) == 0 {
		return nil, ErrEmptyNetwork
	}
	return g, nil
}
