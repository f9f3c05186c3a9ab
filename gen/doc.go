// Package gen builds the classic named graphs: paths, cycles, stars,
// wheels, complete graphs and circular ladders.
//
// Every generator returns an undirected *core.AdjacencyList with
// vertices numbered 0..n-1 (0..2n-1 for the circular ladder) and every
// edge weighted Finite(1). The fixed shapes make them convenient
// fixtures for tests and benchmarks, and quick scaffolding for
// algorithm experiments.
//
// Generators whose shape needs a minimum size (Cycle, Wheel,
// CircularLadder) reject smaller inputs with ErrTooFewVertices; the
// unconstrained ones treat a negative n as zero.
package gen
