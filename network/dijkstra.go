package network

import "container/heap"

// ShortestFrom computes single-source shortest-path costs from source over
// the whole graph, using edge weights as distances. It returns the cost map
// and a predecessor map for path reconstruction; vertices absent from the
// cost map are unreachable. Edge weights are non-negative by construction.
//
// The heap uses the lazy decrease-key strategy: improved distances push a
// duplicate entry and stale entries are skipped when popped.
func (g *Graph) ShortestFrom(source Vertex) (map[Vertex]float64, map[Vertex]Vertex) {
	dist := make(map[Vertex]float64)
	prev := make(map[Vertex]Vertex)
	done := make(map[Vertex]bool)
	if !g.HasVertex(source) {
		return dist, prev
	}

	pq := &vertexPQ{{vertex: source, dist: 0}}
	heap.Init(pq)
	dist[source] = 0

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem)
		u := item.vertex
		if done[u] {
			continue
		}
		done[u] = true
		for _, e := range g.adj[u] {
			next := item.dist + e.Weight
			if cur, ok := dist[e.To]; ok && next >= cur {
				continue
			}
			dist[e.To] = next
			prev[e.To] = u
			heap.Push(pq, &pqItem{vertex: e.To, dist: next})
		}
	}
	return dist, prev
}

// DistanceMaps computes, for each point id, the shortest-path cost from that
// point to every candidate node, sequentially per point. Candidates missing
// from a point's map are unreachable from it and must be treated as such by
// the search engine.
func (g *Graph) DistanceMaps(ids []string, candidates []Vertex) map[string]map[Vertex]float64 {
	out := make(map[string]map[Vertex]float64, len(ids))
	for _, id := range ids {
		dist, _ := g.ShortestFrom(PointVertex(id))
		filtered := make(map[Vertex]float64, len(candidates))
		for _, c := range candidates {
			if d, ok := dist[c]; ok {
				filtered[c] = d
			}
		}
		out[id] = filtered
	}
	return out
}

// PathTo reconstructs the vertex path from source to target out of a
// predecessor map produced by ShortestFrom. It returns nil when target is
// unreachable.
func PathTo(prev map[Vertex]Vertex, source, target Vertex) []Vertex {
	if source == target {
		return []Vertex{source}
	}
	var rev []Vertex
	cur := target
	for cur != source {
		rev = append(rev, cur)
		p, ok := prev[cur]
		if !ok {
			return nil
		}
		cur = p
	}
	rev = append(rev, source)
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

type pqItem struct {
	vertex Vertex
	dist   float64
}

type vertexPQ []*pqItem

func (pq vertexPQ) Len() int            { return len(pq) }
func (pq vertexPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq vertexPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *vertexPQ) Push(x interface{}) { *pq = append(*pq, x.(*pqItem)) }
func (pq *vertexPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
