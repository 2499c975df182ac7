// Package config loads netrank settings from .netrank.yaml, NETRANK_*
// environment variables and CLI flags through viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/katalvlaran/netrank/analysis"
	"github.com/katalvlaran/netrank/centrality"
	"github.com/katalvlaran/netrank/export"
)

// EigenvectorConfig mirrors centrality.EigenvectorOptions.
type EigenvectorConfig struct {
	Tolerance float64 `mapstructure:"tolerance"`
	MaxIter   int     `mapstructure:"max_iter"`
}

// KatzConfig mirrors centrality.KatzOptions; alpha 0 selects 0.1/ρ(A).
type KatzConfig struct {
	Alpha      float64 `mapstructure:"alpha"`
	Beta       float64 `mapstructure:"beta"`
	Tolerance  float64 `mapstructure:"tolerance"`
	MaxIter    int     `mapstructure:"max_iter"`
	Normalized bool    `mapstructure:"normalized"`
}

// PageRankConfig mirrors centrality.PageRankOptions.
type PageRankConfig struct {
	Damping   float64 `mapstructure:"damping"`
	Tolerance float64 `mapstructure:"tolerance"`
	MaxIter   int     `mapstructure:"max_iter"`
}

// Config holds all runtime configuration.
type Config struct {
	Metrics     []string          `mapstructure:"metrics"`
	Output      string            `mapstructure:"output"`
	Format      string            `mapstructure:"format"`
	DB          string            `mapstructure:"db"`
	Metadata    string            `mapstructure:"metadata"`
	Top         int               `mapstructure:"top"`
	Workers     int               `mapstructure:"workers"`
	Parallel    int               `mapstructure:"parallel"`
	Verbose     bool              `mapstructure:"verbose"`
	LogFormat   string            `mapstructure:"log_format"`
	Eigenvector EigenvectorConfig `mapstructure:"eigenvector"`
	Katz        KatzConfig        `mapstructure:"katz"`
	PageRank    PageRankConfig    `mapstructure:"pagerank"`
	WFImproved  bool              `mapstructure:"wf_improved"`
	Normalized  bool              `mapstructure:"normalized"`
}

// SetDefaults registers built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("metrics", []string{"all"})
	v.SetDefault("output", "results")
	v.SetDefault("format", string(export.JSON))
	v.SetDefault("db", "")
	v.SetDefault("metadata", "")
	v.SetDefault("top", 10)
	v.SetDefault("workers", 0)
	v.SetDefault("parallel", 0)
	v.SetDefault("verbose", false)
	v.SetDefault("log_format", "auto")
	v.SetDefault("eigenvector.tolerance", centrality.DefaultTolerance)
	v.SetDefault("eigenvector.max_iter", centrality.DefaultEigenMaxIter)
	v.SetDefault("katz.alpha", 0.0)
	v.SetDefault("katz.beta", centrality.DefaultKatzBeta)
	v.SetDefault("katz.tolerance", centrality.DefaultTolerance)
	v.SetDefault("katz.max_iter", centrality.DefaultKatzMaxIter)
	v.SetDefault("katz.normalized", true)
	v.SetDefault("pagerank.damping", centrality.DefaultDamping)
	v.SetDefault("pagerank.tolerance", centrality.DefaultTolerance)
	v.SetDefault("pagerank.max_iter", centrality.DefaultPageRankIter)
	v.SetDefault("wf_improved", true)
	v.SetDefault("normalized", true)
}

// Load reads configuration from v, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

// AnalysisOptions maps the solver sections onto analysis.Options.
func (c Config) AnalysisOptions() analysis.Options {
	opts := analysis.DefaultOptions()
	opts.Parallel = c.Parallel

	opts.Eigenvector = centrality.EigenvectorOptions{
		Tolerance: c.Eigenvector.Tolerance,
		MaxIter:   c.Eigenvector.MaxIter,
		Workers:   c.Workers,
	}
	opts.Katz = centrality.KatzOptions{
		Alpha:      c.Katz.Alpha,
		Beta:       c.Katz.Beta,
		Tolerance:  c.Katz.Tolerance,
		MaxIter:    c.Katz.MaxIter,
		Normalized: c.Katz.Normalized,
		Workers:    c.Workers,
	}
	opts.PageRank = centrality.PageRankOptions{
		Damping:   c.PageRank.Damping,
		Tolerance: c.PageRank.Tolerance,
		MaxIter:   c.PageRank.MaxIter,
		Workers:   c.Workers,
	}
	opts.Closeness = centrality.ClosenessOptions{WFImproved: c.WFImproved, Workers: c.Workers}
	opts.Betweenness = centrality.BetweennessOptions{Normalized: c.Normalized, Workers: c.Workers}

	return opts
}

// Validate checks the fields that are not solver options.
func (c Config) Validate() error {
	if _, err := analysis.ParseMetrics(c.Metrics); err != nil {
		return fmt.Errorf("config: metrics: %w", err)
	}
	if _, err := export.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("config: format: %w", err)
	}
	if c.Top < 0 {
		return fmt.Errorf("config: top must be >= 0, got %d", c.Top)
	}
	if c.Parallel < 0 {
		return fmt.Errorf("config: parallel must be >= 0, got %d", c.Parallel)
	}
	switch c.LogFormat {
	case "auto", "text", "json":
	default:
		return fmt.Errorf("config: log_format must be auto, text or json, got %q", c.LogFormat)
	}
	return nil
}
