// SPDX-License-Identifier: MIT

package upgma

import (
	"io"
	"log/slog"
)

// LabelSeparator joins the left and right labels of a merged cluster.
const LabelSeparator = "+"

// Merge describes one agglomeration step, reported to WithOnMerge hooks.
type Merge struct {
	// Step is the 1-based merge index; a build of n species has n-1 steps.
	Step int
	// Left and Right are the joined labels; Left < Right.
	Left, Right string
	// Label is the composite label Left+LabelSeparator+Right.
	Label string
	// Distance is the matrix distance between Left and Right.
	Distance float64
	// EdgeWeight is Distance/2, the weight of both child edges.
	EdgeWeight float64
	// Remaining is the number of active clusters after the merge.
	Remaining int
}

// Option customizes Build.
type Option func(*buildConfig)

type buildConfig struct {
	logger  *slog.Logger
	onMerge []func(Merge)
}

// WithLogger sets the logger used for per-merge debug records.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("upgma: WithLogger(nil)")
	}

	return func(c *buildConfig) { c.logger = l }
}

// WithOnMerge registers fn to be called after every merge, in order.
// Multiple hooks may be registered. Panics on nil.
func WithOnMerge(fn func(Merge)) Option {
	if fn == nil {
		panic("upgma: WithOnMerge(nil)")
	}

	return func(c *buildConfig) { c.onMerge = append(c.onMerge, fn) }
}

func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
