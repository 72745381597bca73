/*
Package genetic searches a network component for the cost-minimizing
facility node with a genetic algorithm.

The candidate universe is the component's road-node set. Fitness for a
candidate is 1/(1+cost), where cost is the sum over all supply and demand
terminals of shortest-path distance times quantity; a candidate any terminal
cannot reach has fitness 0 and is excluded from selection. Fitness is
computed concurrently across a bounded worker pool over read-only distance
maps, so it must stay side-effect-free.

The engine runs a fixed number of generations with no convergence check.
There is no structural crossover: a child is a copy of one of two randomly
drawn parents, occasionally replaced by a uniform draw from the full
universe (mutation), which reintroduces diversity from outside the current
breeding pool.
*/
package genetic
