// Package netrank computes node centrality for large undirected networks:
// degree, eigenvector, Katz, PageRank, closeness, betweenness and the
// local clustering coefficient, all over one immutable index-backed graph.
//
// What is netrank?
//
//	A library plus a CLI that brings together:
//		• Core graph: labels mapped to dense indices, sorted adjacency
//		• Traversals: BFS shortest-path records, DFS and components
//		• Spectral tools: dense adjacency, Jacobi, spectral radius
//		• Centrality: power-iteration solvers and Brandes betweenness
//		• Clustering: per-node triangle counts and coefficients
//		• I/O: edge-list loading, JSON/YAML/TOML export, SQLite run history
//
// Guarantees
//
//   - Deterministic: scores never depend on worker count or scheduling.
//   - Immutable input: solvers share one Graph without locks.
//   - Failures are per metric: one diverging solver does not lose the
//     results of the others.
//
// Layout:
//
//	core/        Graph, Builder, ScoreMap and edge validation errors
//	bfs/         single-source shortest paths (Dist, Sigma, Pred)
//	dfs/         depth-first traversal and connected components
//	spectral/    dense adjacency, Jacobi eigensolver, spectral radius
//	centrality/  degree, eigenvector, Katz, PageRank, closeness, betweenness
//	clustering/  triangles and local clustering coefficients
//	builder/     deterministic generators (path, star, grid, random, …)
//	analysis/    runs a set of metrics concurrently and collects a report
//	edgelist/    whitespace edge-list reader and metadata.json sidecar
//	export/      per-metric score files
//	store/       SQLite history of runs and scores
//	config/, logging/, watch/, cmd/netrank: the command-line tool
//
// Quick example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	g, _ := core.NewGraph([]core.Edge{{"A", "B"}, {"B", "D"}, {"D", "C"}, {"C", "A"}})
//	pr, _ := centrality.PageRank(g, centrality.DefaultPageRankOptions())
//	// every node scores 0.25 on the symmetric square
//
// From the shell:
//
//	netrank run network.txt --metrics pagerank,betweenness --format yaml
//	netrank watch network.txt --db runs.db
package netrank
