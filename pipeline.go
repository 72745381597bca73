package facilitylocator

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/agrorede/facility-locator/genetic"
	"github.com/agrorede/facility-locator/geo"
	"github.com/agrorede/facility-locator/network"
)

// Locator runs the facility-location pipeline against an immutable base road
// network. The base graph is built once at startup and never mutated; every
// request works on a private clone, so concurrent requests cannot interfere
// through graph state.
type Locator struct {
	base   *network.Graph
	model  network.CostModel
	search genetic.Params
	cache  *ResultCache
	seed   int64
}

// NewLocator wires the pipeline. seed fixes the search RNG for reproducible
// runs; 0 seeds from the clock per request.
func NewLocator(base *network.Graph, model network.CostModel, search genetic.Params, seed int64) *Locator {
	return &Locator{
		base:   base,
		model:  model,
		search: search,
		cache:  NewResultCache(),
		seed:   seed,
	}
}

// Cache exposes the result cache (read side is used by tests and metrics).
func (l *Locator) Cache() *ResultCache { return l.cache }

// Solve runs the full pipeline for an ordered marker list and returns the
// serialized response payload.
//
// Steps: fingerprint and cache lookup; marker validation; graph clone and
// point attachment; component resolution and chain bridging; per-component
// distance maps and genetic search; global best selection; route
// reconstruction; cache store. Search failures are caught per component and
// the pipeline moves on; only if every viable component fails does the
// request fail with ErrNoFeasibleOptimum.
func (l *Locator) Solve(markers []Marker) ([]byte, error) {
	key := Fingerprint(markers)
	if buf, ok := l.cache.Get(key); ok {
		return buf, nil
	}

	supplies, demands, err := parseMarkers(markers)
	if err != nil {
		return nil, err
	}

	g := l.base.Clone()
	supplyIDs := make(map[string]bool, len(supplies))
	demandIDs := make(map[string]bool, len(demands))
	for _, p := range supplies {
		supplyIDs[p.ID] = true
		if _, err := g.AttachPoint(p.ID, p.Coord, l.model); err != nil {
			return nil, err
		}
	}
	for _, d := range demands {
		demandIDs[d.ID] = true
		if _, err := g.AttachPoint(d.ID, d.Coord, l.model); err != nil {
			return nil, err
		}
	}

	comps := g.Components(supplyIDs, demandIDs)
	viable := network.Viable(comps)
	if len(viable) > 1 {
		log.Printf("bridging %d viable components", len(viable))
		g.BridgeViable(viable, l.model)
		comps = g.Components(supplyIDs, demandIDs)
		viable = network.Viable(comps)
	}
	if len(viable) == 0 {
		return nil, ErrNoViableComponent
	}

	rng := rand.New(rand.NewSource(l.rngSeed()))
	var bestNode network.Vertex
	bestCost := math.Inf(1)
	found := false
	for _, comp := range viable {
		node, cost, err := l.searchComponent(g, comp, supplies, demands, rng)
		if err != nil {
			log.Printf("component search failed: %v", err)
			continue
		}
		if cost < bestCost {
			bestNode = node
			bestCost = cost
			found = true
		}
	}
	if !found {
		return nil, ErrNoFeasibleOptimum
	}

	routes := l.routes(g, supplies, demands, bestNode)
	payload := buildResponse(bestNode, bestCost, routes)
	l.cache.Put(key, payload)
	return payload, nil
}

// searchComponent runs the genetic search for one viable component over the
// terminals attached inside it.
func (l *Locator) searchComponent(g *network.Graph, comp *network.Component, supplies []SupplyPoint, demands []DemandPoint, rng *rand.Rand) (network.Vertex, float64, error) {
	var supplyTerms, demandTerms []genetic.Terminal
	var ids []string
	for _, p := range supplies {
		if comp.Contains(network.PointVertex(p.ID)) {
			supplyTerms = append(supplyTerms, genetic.Terminal{ID: p.ID, Quantity: float64(p.Quantity)})
			ids = append(ids, p.ID)
		}
	}
	for _, d := range demands {
		if comp.Contains(network.PointVertex(d.ID)) {
			demandTerms = append(demandTerms, genetic.Terminal{ID: d.ID, Quantity: float64(d.Demand)})
			ids = append(ids, d.ID)
		}
	}

	dist := g.DistanceMaps(ids, comp.RoadNodes)
	engine, err := genetic.New(comp.RoadNodes, supplyTerms, demandTerms, dist, l.search, rng)
	if err != nil {
		return network.Vertex{}, 0, err
	}
	return engine.Run()
}

// routes reconstructs the shortest route from every supply and demand point
// to the chosen site, as geodetic coordinate sequences over the road nodes
// of each path. Points that cannot reach the site are omitted silently.
func (l *Locator) routes(g *network.Graph, supplies []SupplyPoint, demands []DemandPoint, site network.Vertex) [][]geo.LatLng {
	ids := make([]string, 0, len(supplies)+len(demands))
	for _, p := range supplies {
		ids = append(ids, p.ID)
	}
	for _, d := range demands {
		ids = append(ids, d.ID)
	}

	var routes [][]geo.LatLng
	for _, id := range ids {
		source := network.PointVertex(id)
		_, prev := g.ShortestFrom(source)
		path := network.PathTo(prev, source, site)
		if path == nil {
			continue
		}
		route := make([]geo.LatLng, 0, len(path))
		for _, v := range path {
			if v.IsRoad() {
				route = append(route, geo.Unproject(v.Point))
			}
		}
		routes = append(routes, route)
	}
	return routes
}

func (l *Locator) rngSeed() int64 {
	if l.seed != 0 {
		return l.seed
	}
	return time.Now().UnixNano()
}
