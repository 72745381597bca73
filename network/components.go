package network

import "github.com/agrorede/facility-locator/geo"

// Component is a maximal set of mutually reachable vertices.
type Component struct {
	members   map[Vertex]bool
	RoadNodes []Vertex // road nodes of the component, in graph enumeration order
	SupplyIDs []string
	DemandIDs []string
}

// Contains reports whether v belongs to the component.
func (c *Component) Contains(v Vertex) bool { return c.members[v] }

// Viable reports whether the component holds at least one supply point and
// at least one demand point.
func (c *Component) Viable() bool {
	return len(c.SupplyIDs) > 0 && len(c.DemandIDs) > 0
}

// Components partitions the graph into connected components with BFS over
// the vertex enumeration order, so the component list and each component's
// road-node list are deterministic. Attached points are classified into
// SupplyIDs/DemandIDs using the given id sets.
func (g *Graph) Components(supplyIDs, demandIDs map[string]bool) []*Component {
	seen := make(map[Vertex]bool, len(g.order))
	var comps []*Component
	for _, start := range g.order {
		if seen[start] {
			continue
		}
		comp := &Component{members: make(map[Vertex]bool)}
		queue := []Vertex{start}
		seen[start] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp.members[u] = true
			switch {
			case u.IsRoad():
				comp.RoadNodes = append(comp.RoadNodes, u)
			case supplyIDs[u.ID]:
				comp.SupplyIDs = append(comp.SupplyIDs, u.ID)
			case demandIDs[u.ID]:
				comp.DemandIDs = append(comp.DemandIDs, u.ID)
			}
			for _, e := range g.adj[u] {
				if !seen[e.To] {
					seen[e.To] = true
					queue = append(queue, e.To)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// Viable filters comps down to the viable ones, preserving order.
func Viable(comps []*Component) []*Component {
	var out []*Component
	for _, c := range comps {
		if c.Viable() {
			out = append(out, c)
		}
	}
	return out
}

// BridgeViable chain-connects the given components in order: for each
// adjacent pair it finds the minimum-distance pair of road nodes by an
// exhaustive all-pairs scan and adds one synthetic bridge edge priced by the
// connection formula. The result is a connected chain, not a cost-minimal
// interconnection of all components. Returns the number of bridges added.
//
// Callers should recompute Components afterwards: bridging merges components
// and changes every candidate node set.
func (g *Graph) BridgeViable(comps []*Component, model CostModel) int {
	bridges := 0
	for i := 0; i+1 < len(comps); i++ {
		a, b := comps[i], comps[i+1]
		if len(a.RoadNodes) == 0 || len(b.RoadNodes) == 0 {
			continue
		}
		var bestA, bestB Vertex
		bestDist := -1.0
		for _, u := range a.RoadNodes {
			for _, v := range b.RoadNodes {
				if d := geo.Distance(u.Point, v.Point); bestDist < 0 || d < bestDist {
					bestDist = d
					bestA = u
					bestB = v
				}
			}
		}
		g.AddEdge(model.ConnectionEdge(bestA, bestB, bestDist/1000.0))
		bridges++
	}
	return bridges
}
