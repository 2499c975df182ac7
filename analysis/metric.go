package analysis

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/netrank/centrality"
	"github.com/katalvlaran/netrank/clustering"
)

// ErrUnknownMetric is returned for a metric name outside AllMetrics.
var ErrUnknownMetric = errors.New("analysis: unknown metric")

// Metric names one node-level measure.
type Metric string

// Supported metrics.
const (
	Degree      Metric = centrality.MetricDegree
	Eigenvector Metric = centrality.MetricEigenvector
	Katz        Metric = centrality.MetricKatz
	PageRank    Metric = centrality.MetricPageRank
	Betweenness Metric = centrality.MetricBetweenness
	Closeness   Metric = centrality.MetricCloseness
	Clustering  Metric = clustering.MetricClustering
)

// AllMetrics lists every metric in report order.
var AllMetrics = []Metric{Degree, Eigenvector, Katz, PageRank, Betweenness, Closeness, Clustering}

// FileName is the base name results are exported under.
func (m Metric) FileName() string {
	if m == Eigenvector {
		return "eigen"
	}
	return string(m)
}

// Title is the capitalized short name used in console reports.
func (m Metric) Title() string {
	name := m.FileName()
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// Valid reports whether m is one of AllMetrics.
func (m Metric) Valid() bool {
	for _, known := range AllMetrics {
		if m == known {
			return true
		}
	}
	return false
}

// ParseMetrics maps names (case-insensitive, "eigen" accepted) to metrics.
// An empty list, or the single name "all", selects AllMetrics. Duplicates
// are dropped; order is preserved.
func ParseMetrics(names []string) ([]Metric, error) {
	if len(names) == 0 || (len(names) == 1 && strings.EqualFold(strings.TrimSpace(names[0]), "all")) {
		return append([]Metric(nil), AllMetrics...), nil
	}

	seen := make(map[Metric]bool, len(names))
	out := make([]Metric, 0, len(names))
	for _, name := range names {
		m := Metric(strings.ToLower(strings.TrimSpace(name)))
		if m == "eigen" {
			m = Eigenvector
		}
		if !m.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
		}
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}

	return out, nil
}
