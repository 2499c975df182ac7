// Package builder generates deterministic fixture graphs for tests,
// benchmarks and examples.
//
// A Constructor adds one topology to a core.Builder; BuildGraph resolves
// BuilderOptions into a config, applies constructors in order and freezes
// the result:
//
//	g, err := builder.BuildGraph(nil, builder.Star(5))
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithSeed(7)},
//	    builder.RandomSparse(1000, 0.01),
//	)
//
// Topologies:
//
//	Path(n), Cycle(n), Star(n), Wheel(n), Complete(n)
//	CompleteBipartite(n1, n2), Grid(rows, cols)
//	RandomSparse(n, p), RandomRegular(n, d)  (need WithSeed/WithRand)
//	Isolated(n), Scoped(prefix, cons...), Disjoint(parts...)
//
// Vertex IDs come from the IDFn scheme (decimal by default); Star and
// Wheel hubs are CenterVertexID; Grid cells are "r,c". Scoped prefixes
// every ID a constructor emits, which is how Disjoint keeps components
// apart.
//
// Guarantees:
//
//   - Same options, seed and constructor order give the same graph,
//     including node index order.
//   - Invalid parameters surface as errors matching the package sentinels;
//     option constructors panic on meaningless values (nil functions).
package builder
