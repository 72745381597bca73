package network

import "github.com/agrorede/facility-locator/geo"

// AttachPoint adds the point id to the graph and connects it to the nearest
// road node with a single synthetic edge priced by the connection formula.
// The nearest node is found by an exhaustive Euclidean scan over all road
// nodes; ties resolve to the first minimal-distance node in enumeration
// order, so the same coordinate always attaches to the same node on the same
// base graph.
//
// AttachPoint must be called exactly once per point id per graph copy. It is
// not idempotent: calling it again for the same id adds a duplicate edge.
func (g *Graph) AttachPoint(id string, coord geo.Point, model CostModel) (Vertex, error) {
	if len(g.roadOrder) == 0 {
		return Vertex{}, ErrEmptyNetwork
	}
	nearest := g.roadOrder[0]
	best := geo.Distance(coord, nearest.Point)
	for _, v := range g.roadOrder[1:] {
		if d := geo.Distance(coord, v.Point); d < best {
			best = d
			nearest = v
		}
	}
	g.AddEdge(model.ConnectionEdge(PointVertex(id), nearest, best/1000.0))
	return nearest, nil
}
