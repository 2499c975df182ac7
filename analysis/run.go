// Package analysis runs a selection of metrics over one graph
// concurrently and collects per-metric results.
//
// A failing metric (for example a *centrality.ConvergenceError) is recorded
// in its Result and never cancels the others.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/netrank/centrality"
	"github.com/katalvlaran/netrank/clustering"
	"github.com/katalvlaran/netrank/core"
)

// ErrGraphNil indicates a nil *core.Graph.
var ErrGraphNil = errors.New("analysis: graph is nil")

// Options carries the per-metric solver options and runner knobs.
type Options struct {
	Eigenvector centrality.EigenvectorOptions
	Katz        centrality.KatzOptions
	PageRank    centrality.PageRankOptions
	Closeness   centrality.ClosenessOptions
	Betweenness centrality.BetweennessOptions

	// Parallel caps how many metrics run at once; 0 means all.
	Parallel int
	// OnDone, if set, is called once per metric as it finishes. Calls are
	// serialized.
	OnDone func(Result)
	// Logger receives one entry per metric; nil uses the standard logger.
	Logger *log.Entry
}

// DefaultOptions returns the default options of every metric.
func DefaultOptions() Options {
	return Options{
		Eigenvector: centrality.DefaultEigenvectorOptions(),
		Katz:        centrality.DefaultKatzOptions(),
		PageRank:    centrality.DefaultPageRankOptions(),
		Closeness:   centrality.DefaultClosenessOptions(),
		Betweenness: centrality.DefaultBetweennessOptions(),
	}
}

// Result is the outcome of one metric.
type Result struct {
	Metric   Metric
	Scores   core.ScoreMap // nil when Err != nil
	Err      error
	Duration time.Duration
}

// Report holds results in the order the metrics were requested.
type Report struct {
	Results []Result
}

// Get returns the result for m.
func (r *Report) Get(m Metric) (Result, bool) {
	for _, res := range r.Results {
		if res.Metric == m {
			return res, true
		}
	}
	return Result{}, false
}

// Failed returns the results that carry an error.
func (r *Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}

// Err joins every per-metric error, or returns nil.
func (r *Report) Err() error {
	var errs []error
	for _, res := range r.Failed() {
		errs = append(errs, fmt.Errorf("%s: %w", res.Metric, res.Err))
	}
	return errors.Join(errs...)
}

// Run computes metrics over g. It fails only for a nil graph, an unknown
// metric, or a context cancelled before the run; metric errors land in
// the Report. Metrics not yet started when ctx is cancelled record
// ctx.Err().
func Run(ctx context.Context, g *core.Graph, metrics []Metric, opts Options) (*Report, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	for _, m := range metrics {
		if !m.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, m)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}

	report := &Report{Results: make([]Result, len(metrics))}
	done := make(chan Result)
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		for res := range done {
			if opts.OnDone != nil {
				opts.OnDone(res)
			}
		}
	}()

	var eg errgroup.Group
	if opts.Parallel > 0 {
		eg.SetLimit(opts.Parallel)
	}
	for i, m := range metrics {
		i, m := i, m
		eg.Go(func() error {
			res := Result{Metric: m}
			if err := ctx.Err(); err != nil {
				res.Err = err
			} else {
				start := time.Now()
				res.Scores, res.Err = compute(g, m, opts)
				res.Duration = time.Since(start)
			}

			entry := logger.WithFields(log.Fields{"metric": string(m), "duration": res.Duration})
			if res.Err != nil {
				entry.WithError(res.Err).Warn("metric failed")
			} else {
				entry.Debug("metric done")
			}
			report.Results[i] = res
			done <- res
			return nil
		})
	}
	_ = eg.Wait()
	close(done)
	<-finished

	return report, nil
}

// compute dispatches one metric.
func compute(g *core.Graph, m Metric, opts Options) (core.ScoreMap, error) {
	switch m {
	case Degree:
		return centrality.Degree(g)
	case Eigenvector:
		return centrality.Eigenvector(g, opts.Eigenvector)
	case Katz:
		return centrality.Katz(g, opts.Katz)
	case PageRank:
		return centrality.PageRank(g, opts.PageRank)
	case Betweenness:
		return centrality.Betweenness(g, opts.Betweenness)
	case Closeness:
		return centrality.Closeness(g, opts.Closeness)
	case Clustering:
		return clustering.Local(g)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, m)
}
