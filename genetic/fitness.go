package genetic

import "github.com/agrorede/facility-locator/network"

// fitness scores a candidate as 1/(1+cost), where cost accumulates
// shortest-path distance times quantity over every terminal. A candidate
// absent from any terminal's distance map is unreachable and scores 0.
//
// A total cost of exactly 0 (the candidate sits at zero distance from every
// terminal) also scores 0: such candidates are excluded from selection
// rather than treated as infinitely good.
//
// fitness only reads shared state and must stay side-effect-free: it runs
// concurrently for all candidates of a generation.
func (e *Engine) fitness(c network.Vertex) float64 {
	total := 0.0
	for _, t := range e.terminals {
		d, ok := e.dist[t.ID][c]
		if !ok {
			return 0
		}
		total += d * t.Quantity
	}
	if total <= 0 {
		return 0
	}
	return 1.0 / (1.0 + total)
}
