/*
Package network models the weighted transport network the locator searches.

The graph is undirected; a vertex is either a road node, identified by its
exact projected coordinate (no spatial snapping or tolerance is applied), or
an attached supply/demand point, identified by an externally assigned string
id. Edge weights are monetary costs and are always >= 0.

The base graph is built once at startup from the road dataset and is
immutable after construction. Each request takes a private Clone and mutates
only that copy: attaching its supply/demand points, bridging disconnected
viable components, and running shortest-path queries against the result.

# Typical request flow

	g := base.Clone()
	g.AttachPoint("supply-0", coord, model)
	comps := g.Components(supplyIDs, demandIDs)
	g.BridgeViable(viable, model)
	dist := g.DistanceMaps(ids, comp.RoadNodes)

Road-node enumeration order is insertion order and is preserved by Clone, so
nearest-node ties and component ordering resolve the same way on every copy.
*/
package network
