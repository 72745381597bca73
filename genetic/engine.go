package genetic

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/agrorede/facility-locator/network"
)

var (
	// ErrEmptyUniverse means the component has no candidate nodes.
	ErrEmptyUniverse = errors.New("genetic: candidate universe is empty")
	// ErrExhausted means a generation produced no valid individuals; the
	// search for this component cannot continue.
	ErrExhausted = errors.New("genetic: no valid individuals in generation")
)

// Terminal is a supply or demand point with its shipped or absorbed quantity.
type Terminal struct {
	ID       string
	Quantity float64
}

// Params tunes the search.
type Params struct {
	Generations    int
	PopulationSize int
	MutationRate   float64
	// Workers bounds the fitness evaluation pool; 0 means one per CPU.
	Workers int
}

// Engine evolves a population of candidate facility nodes for one network
// component. The distance maps are shared read-only state; terminals and the
// universe are fixed for the engine's lifetime.
type Engine struct {
	params    Params
	rng       *rand.Rand
	universe  []network.Vertex
	terminals []Terminal
	dist      map[string]map[network.Vertex]float64
}

// New builds an engine over the component's candidate universe. dist maps
// every terminal id to its shortest-path costs; candidates missing from a
// terminal's map are unreachable from that terminal.
func New(universe []network.Vertex, supplies, demands []Terminal, dist map[string]map[network.Vertex]float64, params Params, rng *rand.Rand) (*Engine, error) {
	if len(universe) == 0 {
		return nil, ErrEmptyUniverse
	}
	terminals := make([]Terminal, 0, len(supplies)+len(demands))
	terminals = append(terminals, supplies...)
	terminals = append(terminals, demands...)
	return &Engine{
		params:    params,
		rng:       rng,
		universe:  universe,
		terminals: terminals,
		dist:      dist,
	}, nil
}

// Run evolves the population for the configured number of generations and
// returns the best candidate of the final evaluation together with its total
// transport cost (1/fitness - 1).
func (e *Engine) Run() (network.Vertex, float64, error) {
	popSize := e.params.PopulationSize
	if popSize > len(e.universe) {
		popSize = len(e.universe)
	}
	population := e.sample(popSize)

	for gen := 0; gen < e.params.Generations; gen++ {
		evaluated := e.evaluate(population)
		if len(evaluated) == 0 {
			return network.Vertex{}, 0, fmt.Errorf("%w %d", ErrExhausted, gen)
		}
		sort.SliceStable(evaluated, func(i, j int) bool {
			return evaluated[i].fitness > evaluated[j].fitness
		})
		pool := breedingPool(evaluated)
		population = e.reproduce(pool, popSize)

		best := evaluated[0]
		log.Printf("generation %d: best candidate (%.1f, %.1f) cost %.2f",
			gen, best.candidate.Point.X, best.candidate.Point.Y, best.cost())
	}

	final := e.evaluate(population)
	if len(final) == 0 {
		return network.Vertex{}, 0, fmt.Errorf("%w %d", ErrExhausted, e.params.Generations)
	}
	best := final[0]
	for _, ev := range final[1:] {
		if ev.fitness > best.fitness {
			best = ev
		}
	}
	return best.candidate, best.cost(), nil
}

// sample draws popSize candidates from the universe without replacement.
func (e *Engine) sample(popSize int) []network.Vertex {
	perm := e.rng.Perm(len(e.universe))
	population := make([]network.Vertex, popSize)
	for i := 0; i < popSize; i++ {
		population[i] = e.universe[perm[i]]
	}
	return population
}

type evaluation struct {
	candidate network.Vertex
	fitness   float64
}

func (ev evaluation) cost() float64 { return 1.0/ev.fitness - 1.0 }

// evaluate computes every candidate's fitness concurrently on a bounded
// worker pool and returns the valid (fitness > 0) individuals. Outcomes are
// collected per candidate by index, so the result is deterministic for a
// given population regardless of worker scheduling.
func (e *Engine) evaluate(population []network.Vertex) []evaluation {
	fitnesses := make([]float64, len(population))
	grp := new(errgroup.Group)
	grp.SetLimit(e.workers())
	for i, c := range population {
		i, c := i, c
		grp.Go(func() error {
			fitnesses[i] = e.fitness(c)
			return nil
		})
	}
	_ = grp.Wait()

	valid := make([]evaluation, 0, len(population))
	for i, f := range fitnesses {
		if f > 0 {
			valid = append(valid, evaluation{candidate: population[i], fitness: f})
		}
	}
	return valid
}

func (e *Engine) workers() int {
	if e.params.Workers > 0 {
		return e.params.Workers
	}
	return runtime.NumCPU()
}

// breedingPool keeps the top half of the ranked generation, at minimum 2
// individuals (or the whole generation when it is smaller than that).
func breedingPool(ranked []evaluation) []network.Vertex {
	keep := len(ranked) / 2
	if keep < 2 {
		keep = 2
	}
	if keep > len(ranked) {
		keep = len(ranked)
	}
	pool := make([]network.Vertex, keep)
	for i := 0; i < keep; i++ {
		pool[i] = ranked[i].candidate
	}
	return pool
}

// reproduce fills a new population of size popSize. Each child is a copy of
// one of two parents drawn uniformly from the pool (a single-member pool
// serves as both parents); with probability MutationRate the child is
// replaced by a uniform draw from the full universe.
func (e *Engine) reproduce(pool []network.Vertex, popSize int) []network.Vertex {
	next := make([]network.Vertex, 0, popSize)
	for len(next) < popSize {
		var p1, p2 network.Vertex
		if len(pool) >= 2 {
			i := e.rng.Intn(len(pool))
			j := e.rng.Intn(len(pool) - 1)
			if j >= i {
				j++
			}
			p1, p2 = pool[i], pool[j]
		} else {
			p1, p2 = pool[0], pool[0]
		}
		child := p1
		if e.rng.Intn(2) == 1 {
			child = p2
		}
		if e.rng.Float64() < e.params.MutationRate {
			child = e.universe[e.rng.Intn(len(e.universe))]
		}
		next = append(next, child)
	}
	return next
}
