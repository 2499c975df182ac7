package main

import (
	"context"
	"io"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/netrank/config"
	"github.com/katalvlaran/netrank/watch"
)

func newWatchCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <edges>",
		Short: "Recompute metrics whenever the edge list changes",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(cmd, v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			debounce, _ := cmd.Flags().GetDuration("debounce")
			return watchLoop(cmd.Context(), cfg, args[0], debounce, cmd.OutOrStdout())
		},
	}
	addAnalysisFlags(cmd.Flags())
	cmd.Flags().Duration("debounce", watch.DefaultDebounce, "quiet period after a change before recomputing")
	return cmd
}

// watchLoop analyzes path once, then again after every debounced change,
// until ctx is cancelled. Failed runs are logged and the loop keeps going.
func watchLoop(ctx context.Context, cfg config.Config, path string, debounce time.Duration, out io.Writer) error {
	w, err := watch.New(path, debounce)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	logger := log.WithField("source", path)
	rerun := func() {
		if _, err := analyze(ctx, cfg, path, out); err != nil {
			logger.WithError(err).Warn("analysis failed")
		}
	}

	rerun()
	logger.Info("watching for changes")
	for {
		select {
		case <-ctx.Done():
			return nil
		case c, ok := <-w.Changes:
			if !ok {
				return nil
			}
			if c.Removed {
				logger.Warn("edge list removed; waiting for it to reappear")
				continue
			}
			logger.Info("edge list changed")
			rerun()
		}
	}
}
