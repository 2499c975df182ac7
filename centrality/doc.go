// Package centrality computes node-importance scores over a core.Graph.
//
// Metrics:
//
//	Degree       deg(v)/(n−1)
//	Eigenvector  leading eigenvector of A, unit L2 norm (power iteration)
//	Katz         x = αAx + β, unit L2 norm by default
//	PageRank     random surfer with damping and dangling redistribution
//	Closeness    Wasserman–Faust closeness from per-node BFS
//	Betweenness  Brandes shortest-path betweenness
//
// Every function returns a core.ScoreMap holding exactly one finite score
// per node, or an error; partial results are never returned.
//
// Options:
//
// Each metric takes a value struct; start from the Default…Options
// constructor and override fields:
//
//	opts := centrality.DefaultPageRankOptions()
//	opts.Damping = 0.9
//	pr, err := centrality.PageRank(g, opts)
//
// Workers selects the goroutine count (0 = GOMAXPROCS, 1 = sequential).
// Results are identical for every Workers value.
//
// Errors:
//
//	ErrGraphNil, core.ErrEmptyGraph  – no graph to rank
//	ErrOptionViolation               – out-of-domain parameter
//	*ConvergenceError                – errors.Is(err, ErrConvergence)
//	*NumericalInstabilityError       – errors.Is(err, ErrNumericalInstability)
package centrality
