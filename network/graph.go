package network

import (
	"errors"

	"github.com/agrorede/facility-locator/geo"
)

// ErrEmptyNetwork is returned when the road dataset yields no nodes at all.
// A network with no nodes cannot serve any request, so construction treats
// this as fatal.
var ErrEmptyNetwork = errors.New("network: road graph has no nodes")

// Vertex identifies a graph vertex. Road nodes are keyed by their exact
// projected coordinate and have an empty ID; attached supply/demand points
// are keyed by their id and have a zero Point. Vertex is comparable and used
// directly as a map key.
type Vertex struct {
	Point geo.Point
	ID    string
}

// RoadVertex returns the vertex for a road node at p.
func RoadVertex(p geo.Point) Vertex { return Vertex{Point: p} }

// PointVertex returns the vertex for an attached point.
func PointVertex(id string) Vertex { return Vertex{ID: id} }

// IsRoad reports whether v is a road node rather than an attached point.
func (v Vertex) IsRoad() bool { return v.ID == "" }

// Edge connects two vertices. Weight is the monetary transport cost along
// the edge; FixedCost is non-zero only for synthetic attachment and bridge
// edges.
type Edge struct {
	From      Vertex
	To        Vertex
	Weight    float64
	LengthKM  float64
	FixedCost float64
}

// Graph is an undirected weighted transport network.
type Graph struct {
	adj       map[Vertex][]Edge
	order     []Vertex // all vertices in insertion order
	roadOrder []Vertex // road nodes in insertion order
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{adj: make(map[Vertex][]Edge)}
}

func (g *Graph) ensureVertex(v Vertex) {
	if _, ok := g.adj[v]; ok {
		return
	}
	g.adj[v] = nil
	g.order = append(g.order, v)
	if v.IsRoad() {
		g.roadOrder = append(g.roadOrder, v)
	}
}

// AddEdge inserts e in both directions. Vertices are created on first use.
func (g *Graph) AddEdge(e Edge) {
	g.ensureVertex(e.From)
	g.ensureVertex(e.To)
	g.adj[e.From] = append(g.adj[e.From], e)
	g.adj[e.To] = append(g.adj[e.To], Edge{
		From:      e.To,
		To:        e.From,
		Weight:    e.Weight,
		LengthKM:  e.LengthKM,
		FixedCost: e.FixedCost,
	})
}

// HasVertex reports whether v exists in the graph.
func (g *Graph) HasVertex(v Vertex) bool {
	_, ok := g.adj[v]
	return ok
}

// Neighbors returns the outgoing edges of v.
func (g *Graph) Neighbors(v Vertex) []Edge { return g.adj[v] }

// Vertices returns all vertices in insertion order.
func (g *Graph) Vertices() []Vertex { return g.order }

// RoadNodes returns the road nodes in insertion order. The slice is shared;
// callers must not modify it.
func (g *Graph) RoadNodes() []Vertex { return g.roadOrder }

// NumVertices returns the vertex count.
func (g *Graph) NumVertices() int { return len(g.order) }

// NumEdges returns the undirected edge count.
func (g *Graph) NumEdges() int {
	n := 0
	for _, edges := range g.adj {
		n += len(edges)
	}
	return n / 2
}

// Clone returns an independent deep copy of the graph. The copy preserves
// vertex enumeration order, so attachment tie-breaks and component ordering
// behave identically on every clone.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		adj:       make(map[Vertex][]Edge, len(g.adj)),
		order:     append([]Vertex(nil), g.order...),
		roadOrder: append([]Vertex(nil), g.roadOrder...),
	}
	for v, edges := range g.adj {
		c.adj[v] = append([]Edge(nil), edges...)
	}
	return c
}
