package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/netrank/config"
	"github.com/katalvlaran/netrank/logging"
)

// flagKeys maps analysis flags onto config keys.
var flagKeys = map[string]string{
	"metrics":     "metrics",
	"output":      "output",
	"format":      "format",
	"db":          "db",
	"metadata":    "metadata",
	"top":         "top",
	"workers":     "workers",
	"parallel":    "parallel",
	"damping":     "pagerank.damping",
	"katz-alpha":  "katz.alpha",
	"wf-improved": "wf_improved",
	"normalized":  "normalized",
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "netrank",
		Short: "Centrality analysis for undirected networks",
		Long: "netrank reads an edge list and computes degree, eigenvector, Katz, PageRank,\n" +
			"betweenness, closeness and clustering scores for every node.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, v)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default .netrank.yaml)")
	pf.BoolP("verbose", "v", false, "verbose output")
	pf.String("log-format", "auto", "log format: auto, text or json")
	_ = v.BindPFlag("verbose", pf.Lookup("verbose"))
	_ = v.BindPFlag("log_format", pf.Lookup("log-format"))

	root.AddCommand(newRunCmd(v), newWatchCmd(v), newVersionCmd())
	return root
}

func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		if _, err := os.Stat(cfgFile); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".netrank")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix("NETRANK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// A missing default config file is fine; an explicit one must exist.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

// addAnalysisFlags registers the flags shared by run and watch.
func addAnalysisFlags(fs *pflag.FlagSet) {
	fs.StringSlice("metrics", []string{"all"}, "metrics to compute (degree,eigenvector,katz,pagerank,betweenness,closeness,clustering or all)")
	fs.StringP("output", "o", "results", "output directory")
	fs.StringP("format", "f", "json", "output format: json, yaml or toml")
	fs.String("db", "", "SQLite database to record the run in")
	fs.String("metadata", "", "metadata.json whose num_nodes bounds the node range")
	fs.Int("top", 10, "rows per metric in the console report (0 disables it)")
	fs.Int("workers", 0, "goroutines per metric (0 = GOMAXPROCS)")
	fs.Int("parallel", 0, "metrics computed at once (0 = all)")
	fs.Float64("damping", 0.85, "PageRank damping factor")
	fs.Float64("katz-alpha", 0, "Katz attenuation (0 = 0.1/spectral radius)")
	fs.Bool("wf-improved", true, "scale closeness by reachable fraction")
	fs.Bool("normalized", true, "normalize betweenness by (n-1)(n-2)/2")
}

// bindFlags binds the analysis flags of cmd. Binding happens at execution
// time because run and watch register flags under the same keys.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}

// loadConfig resolves and validates configuration, then configures logging.
func loadConfig(v *viper.Viper) (config.Config, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	logging.Setup(os.Stderr, cfg.LogFormat, cfg.Verbose)
	return cfg, nil
}
