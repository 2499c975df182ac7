package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/netrank/analysis"
	"github.com/katalvlaran/netrank/config"
	"github.com/katalvlaran/netrank/core"
	"github.com/katalvlaran/netrank/dfs"
	"github.com/katalvlaran/netrank/edgelist"
	"github.com/katalvlaran/netrank/export"
	"github.com/katalvlaran/netrank/store"
)

func newRunCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <edges>",
		Short: "Compute centrality metrics for an edge list",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(cmd, v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			_, err = analyze(cmd.Context(), cfg, args[0], cmd.OutOrStdout())
			return err
		},
	}
	addAnalysisFlags(cmd.Flags())
	return cmd
}

// summary describes one completed analysis.
type summary struct {
	Report *analysis.Report
	Files  []string
	RunID  string
}

// analyze loads the edge list at path, computes the configured metrics,
// and writes one file per metric plus metadata.json. Metric failures do
// not stop the others; they are joined into the returned error after
// every successful result has been written.
func analyze(ctx context.Context, cfg config.Config, path string, out io.Writer) (*summary, error) {
	logger := log.WithField("source", path)

	var opts []edgelist.Option
	if cfg.Metadata != "" {
		md, err := edgelist.ReadMetadata(cfg.Metadata)
		if err != nil {
			return nil, err
		}
		if md.NumNodes > 0 {
			opts = append(opts, edgelist.WithNodeRange(md.NumNodes))
		}
	}

	g, stats, err := edgelist.Load(path, opts...)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "Number of nodes: %s\n", humanize.Comma(int64(g.NodeCount())))
	fmt.Fprintf(out, "Number of edges: %s\n", humanize.Comma(int64(g.EdgeCount())))

	comps, err := dfs.ConnectedComponents(g)
	if err != nil {
		return nil, err
	}
	_, largest := comps.Largest()
	fmt.Fprintf(out, "Connected components: %s (largest: %s nodes)\n",
		humanize.Comma(int64(comps.Count())), humanize.Comma(int64(largest)))
	logger.WithFields(log.Fields{
		"nodes":      g.NodeCount(),
		"edges":      g.EdgeCount(),
		"components": comps.Count(),
		"lines":      stats.Lines,
		"dropped":    stats.Dropped,
	}).Info("graph loaded")

	metrics, err := analysis.ParseMetrics(cfg.Metrics)
	if err != nil {
		return nil, err
	}
	format, err := export.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	w, err := export.NewWriter(cfg.Output, format)
	if err != nil {
		return nil, err
	}

	sum := &summary{}
	var writeErrs []error
	aopts := cfg.AnalysisOptions()
	aopts.Logger = logger
	aopts.OnDone = func(res analysis.Result) {
		if res.Err != nil {
			fmt.Fprintf(out, "%s failed: %v\n", res.Metric.Title(), res.Err)
			return
		}
		file, err := w.WriteScores(res.Metric.FileName(), res.Scores)
		if err != nil {
			writeErrs = append(writeErrs, err)
			return
		}
		sum.Files = append(sum.Files, file)
		fmt.Fprintf(out, "%s done\n", res.Metric.Title())
	}

	report, err := analysis.Run(ctx, g, metrics, aopts)
	if err != nil {
		return nil, err
	}
	sum.Report = report

	file, err := w.WriteMetadata(g)
	if err != nil {
		writeErrs = append(writeErrs, err)
	} else {
		sum.Files = append(sum.Files, file)
	}

	if cfg.DB != "" {
		id, err := saveRun(ctx, cfg.DB, path, g, report)
		if err != nil {
			writeErrs = append(writeErrs, err)
		} else {
			sum.RunID = id
			fmt.Fprintf(out, "Run %s saved to %s\n", id, cfg.DB)
		}
	}

	printTop(out, g, report, cfg.Top)
	fmt.Fprintf(out, "Wrote %d files to %s (%s)\n", len(sum.Files), cfg.Output, humanize.Bytes(totalSize(sum.Files)))

	return sum, errors.Join(report.Err(), errors.Join(writeErrs...))
}

// saveRun records the successful metrics of report in the database at dbPath.
func saveRun(ctx context.Context, dbPath, source string, g *core.Graph, report *analysis.Report) (string, error) {
	db, err := store.Open(ctx, dbPath)
	if err != nil {
		return "", err
	}
	defer db.Close()

	metrics := make(map[string]map[string]float64, len(report.Results))
	for _, res := range report.Results {
		if res.Err == nil {
			metrics[string(res.Metric)] = res.Scores
		}
	}
	return db.SaveRun(ctx, source, g.NodeCount(), g.EdgeCount(), metrics)
}

// printTop writes the k highest-scoring nodes of every successful metric.
func printTop(out io.Writer, g *core.Graph, report *analysis.Report, k int) {
	if k <= 0 {
		return
	}
	for _, res := range report.Results {
		if res.Err != nil {
			continue
		}
		ranked := res.Scores.Ranked(g)
		if len(ranked) > k {
			ranked = ranked[:k]
		}

		fmt.Fprintf(out, "\n%s (%s)\n", res.Metric.Title(), res.Duration.Round(time.Microsecond))
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "RANK\tNODE\tSCORE")
		for i, r := range ranked {
			fmt.Fprintf(tw, "%d\t%s\t%.6f\n", i+1, r.Node, r.Score)
		}
		tw.Flush()
	}
	fmt.Fprintln(out)
}

func totalSize(files []string) uint64 {
	var total uint64
	for _, f := range files {
		if fi, err := os.Stat(f); err == nil {
			total += uint64(fi.Size())
		}
	}
	return total
}
