// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/phylotree/config"
	"github.com/katalvlaran/phylotree/fasta"
	"github.com/katalvlaran/phylotree/metrics"
	"github.com/katalvlaran/phylotree/tree"
	"github.com/katalvlaran/phylotree/upgma"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	configFile string
	cfg        config.Config
	logger     *slog.Logger
	recorder   *metrics.Recorder
}

// newRootCmd builds the command tree. Each call returns independent state.
func newRootCmd() *cobra.Command {
	a := &app{recorder: metrics.NewRecorder()}

	root := &cobra.Command{
		Use:   "phylotree",
		Short: "Infer phylogenetic trees from aligned sequences with UPGMA clustering",
		Long: `phylotree reads aligned sequences from a FASTA file, clusters them by
weighted-average linkage and prints or queries the resulting tree.

Settings come from flags, PHYLOTREE_* environment variables and an optional
config file (--config), in that order of precedence.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.flushMetrics()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (yaml, toml or json)")
	flags.Int("width", 80, "fill characters for the deepest node of the indented view")
	flags.String("fill", ".", "indentation character of the indented view")
	flags.String("format", config.FormatBoth, "output of the tree command: indented, newick or both")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	flags.String("metrics-file", "", "write Prometheus metrics to this textfile after the run")

	root.AddCommand(
		newTreeCmd(a),
		newInfoCmd(a),
		newLCACmd(a),
		newDistanceCmd(a),
	)

	return root
}

// flagKeys maps persistent flag names to config keys.
var flagKeys = map[string]string{
	"width":        config.KeyPrintWidth,
	"fill":         config.KeyPrintFill,
	"format":       config.KeyPrintFormat,
	"log-level":    config.KeyLogLevel,
	"metrics-file": config.KeyMetricsFile,
}

// init resolves the configuration and logger.
func (a *app) init(cmd *cobra.Command) error {
	v, err := config.NewViper(a.configFile)
	if err != nil {
		return err
	}
	if err := bindFlags(v, cmd); err != nil {
		return err
	}
	if a.cfg, err = config.Load(v); err != nil {
		return err
	}

	level, _ := a.cfg.Log.SlogLevel()
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return nil
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	return nil
}

// build loads path and clusters its species.
func (a *app) build(path string) (*tree.Tree, error) {
	species, err := fasta.LoadFile(path)
	if err != nil {
		return nil, err
	}
	a.logger.Info("loaded species", slog.String("file", path), slog.Int("count", len(species)))

	t, err := a.recorder.Build(species, upgma.WithLogger(a.logger))
	if err != nil {
		return nil, fmt.Errorf("build tree from %s: %w", path, err)
	}

	return t, nil
}

func (a *app) flushMetrics() error {
	if a.cfg.Metrics.File == "" {
		return nil
	}
	if err := a.recorder.WriteTextfile(a.cfg.Metrics.File); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	a.logger.Debug("metrics written", slog.String("file", a.cfg.Metrics.File))

	return nil
}
