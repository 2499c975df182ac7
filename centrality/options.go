package centrality

import (
	"fmt"
	"math"
)

// Metric names used in errors and by callers that label results.
const (
	MetricDegree      = "degree"
	MetricEigenvector = "eigenvector"
	MetricKatz        = "katz"
	MetricPageRank    = "pagerank"
	MetricCloseness   = "closeness"
	MetricBetweenness = "betweenness"
)

// Default solver parameters.
const (
	DefaultTolerance      = 1e-6
	DefaultEigenMaxIter   = 1000
	DefaultKatzMaxIter    = 1000
	DefaultPageRankIter   = 100
	DefaultDamping        = 0.85
	DefaultKatzBeta       = 1.0
	defaultKatzAlphaScale = 0.1 // α = 0.1/ρ(A) when Alpha is left at 0
)

// EigenvectorOptions configures Eigenvector.
type EigenvectorOptions struct {
	Tolerance float64 // L1 distance between iterates; > 0
	MaxIter   int     // iteration cap; > 0
	Workers   int     // 0 = GOMAXPROCS, 1 = sequential
}

// DefaultEigenvectorOptions returns tolerance 1e-6 and 1000 iterations.
func DefaultEigenvectorOptions() EigenvectorOptions {
	return EigenvectorOptions{Tolerance: DefaultTolerance, MaxIter: DefaultEigenMaxIter}
}

func (o EigenvectorOptions) validate() error {
	return validateSolver(o.Tolerance, o.MaxIter, o.Workers)
}

// KatzOptions configures Katz.
type KatzOptions struct {
	// Alpha is the attenuation factor; it must stay below 1/ρ(A) for the
	// iteration to converge. 0 selects 0.1/ρ(A).
	Alpha float64
	// Beta is the bias added to every node at each step.
	Beta       float64
	Tolerance  float64
	MaxIter    int
	Normalized bool // rescale to unit Euclidean norm
	Workers    int
}

// DefaultKatzOptions returns automatic α, β = 1, tolerance 1e-6,
// 1000 iterations and unit-norm output.
func DefaultKatzOptions() KatzOptions {
	return KatzOptions{
		Beta:       DefaultKatzBeta,
		Tolerance:  DefaultTolerance,
		MaxIter:    DefaultKatzMaxIter,
		Normalized: true,
	}
}

func (o KatzOptions) validate() error {
	if o.Alpha < 0 || math.IsNaN(o.Alpha) || math.IsInf(o.Alpha, 0) {
		return fmt.Errorf("%w: Alpha must be a finite value >= 0 (got %g)", ErrOptionViolation, o.Alpha)
	}
	if math.IsNaN(o.Beta) || math.IsInf(o.Beta, 0) {
		return fmt.Errorf("%w: Beta must be finite (got %g)", ErrOptionViolation, o.Beta)
	}

	return validateSolver(o.Tolerance, o.MaxIter, o.Workers)
}

// PageRankOptions configures PageRank.
type PageRankOptions struct {
	Damping   float64 // probability of following an edge; in [0, 1)
	Tolerance float64
	MaxIter   int
	Workers   int
}

// DefaultPageRankOptions returns damping 0.85, tolerance 1e-6 and
// 100 iterations.
func DefaultPageRankOptions() PageRankOptions {
	return PageRankOptions{
		Damping:   DefaultDamping,
		Tolerance: DefaultTolerance,
		MaxIter:   DefaultPageRankIter,
	}
}

func (o PageRankOptions) validate() error {
	if !(o.Damping >= 0 && o.Damping < 1) {
		return fmt.Errorf("%w: Damping must be in [0,1) (got %g)", ErrOptionViolation, o.Damping)
	}

	return validateSolver(o.Tolerance, o.MaxIter, o.Workers)
}

// ClosenessOptions configures Closeness.
type ClosenessOptions struct {
	// WFImproved applies the Wasserman–Faust scaling |R|/(n−1), which
	// penalizes nodes in small components.
	WFImproved bool
	Workers    int
}

// DefaultClosenessOptions enables the Wasserman–Faust correction.
func DefaultClosenessOptions() ClosenessOptions {
	return ClosenessOptions{WFImproved: true}
}

// BetweennessOptions configures Betweenness.
type BetweennessOptions struct {
	// Normalized divides by (n−1)(n−2)/2, bounding scores to [0, 1].
	Normalized bool
	Workers    int
}

// DefaultBetweennessOptions enables normalization.
func DefaultBetweennessOptions() BetweennessOptions {
	return BetweennessOptions{Normalized: true}
}

func validateWorkers(w int) error {
	if w < 0 {
		return fmt.Errorf("%w: Workers must be >= 0 (got %d)", ErrOptionViolation, w)
	}
	return nil
}

func validateSolver(tol float64, maxIter, workers int) error {
	if !(tol > 0) || math.IsInf(tol, 0) {
		return fmt.Errorf("%w: Tolerance must be > 0 (got %g)", ErrOptionViolation, tol)
	}
	if maxIter <= 0 {
		return fmt.Errorf("%w: MaxIter must be > 0 (got %d)", ErrOptionViolation, maxIter)
	}

	return validateWorkers(workers)
}
