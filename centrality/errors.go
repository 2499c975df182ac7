package centrality

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/netrank/core"
)

// Sentinel errors shared by all centrality metrics.
var (
	// ErrGraphNil indicates a nil *core.Graph was passed to a metric.
	ErrGraphNil = errors.New("centrality: graph is nil")

	// ErrOptionViolation indicates an out-of-domain numeric parameter.
	ErrOptionViolation = errors.New("centrality: invalid option")

	// ErrConvergence is matched by every *ConvergenceError.
	ErrConvergence = errors.New("centrality: solver did not converge")

	// ErrNumericalInstability is matched by every *NumericalInstabilityError.
	ErrNumericalInstability = errors.New("centrality: non-finite score")
)

// ConvergenceError reports an iterative solver that exhausted its
// iteration cap before the L1 distance between iterates fell below the
// tolerance. Residual is that distance after the last iteration.
type ConvergenceError struct {
	Metric     string
	Iterations int
	Residual   float64
}

// Error implements error.
func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("centrality: %s did not converge in %d iterations (residual %.3g)",
		e.Metric, e.Iterations, e.Residual)
}

// Is makes errors.Is(err, ErrConvergence) hold.
func (e *ConvergenceError) Is(target error) bool { return target == ErrConvergence }

// NumericalInstabilityError reports a NaN or ±Inf score.
type NumericalInstabilityError struct {
	Metric string
	Node   string
	Value  float64
}

// Error implements error.
func (e *NumericalInstabilityError) Error() string {
	return fmt.Sprintf("centrality: %s produced %v for node %q", e.Metric, e.Value, e.Node)
}

// Is makes errors.Is(err, ErrNumericalInstability) hold.
func (e *NumericalInstabilityError) Is(target error) bool { return target == ErrNumericalInstability }

// checkGraph rejects nil and node-less graphs.
func checkGraph(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	if g.NodeCount() == 0 {
		return core.ErrEmptyGraph
	}

	return nil
}

// checkFinite returns a *NumericalInstabilityError for the first NaN/Inf in x.
func checkFinite(metric string, g *core.Graph, x []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &NumericalInstabilityError{Metric: metric, Node: g.Label(i), Value: v}
		}
	}

	return nil
}
