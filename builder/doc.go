// Package builder generates deterministic core.Graph fixtures: classic
// topologies (path, cycle, star, wheel, complete, grid, ladder) and seeded
// random sparse graphs, with pluggable edge-weight policies.
//
// Every generator is a Constructor. BuildGraph resolves the options into a
// builderConfig, runs the constructors in order against one edge sink and
// seals the result into an immutable core.Graph. Constructors may be
// composed: the node count of the result is the largest count any of them
// requested, and their edges are overlaid on the shared IDs 0..n-1.
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.IntUniformWeightFn(1, 3))},
//	    builder.Grid(4, 4),
//	)
//
// Node numbering:
//
//	Path/Cycle/Complete/RandomSparse: 0..n-1 in order.
//	Star/Wheel:                       hub 0, leaves / rim 1..n-1.
//	Grid(r, c):                       node r*cols + c (row-major).
//	Ladder(n):                        rail A = 0..n-1, rail B = n..2n-1.
//
// Determinism: identical options, seed and constructor order produce
// identical graphs, including weights.
//
// Errors are sentinels (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrConstructFailed) wrapped with the constructor name.
// Option constructors panic on meaningless arguments.
package builder
