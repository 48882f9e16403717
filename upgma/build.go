// SPDX-License-Identifier: MIT

package upgma

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/phylotree/distmatrix"
	"github.com/katalvlaran/phylotree/seqdist"
	"github.com/katalvlaran/phylotree/tree"
)

// Build clusters species into a tree. See the package documentation for the
// algorithm and error order. species itself is not modified.
func Build(species []*seqdist.Species, opts ...Option) (*tree.Tree, error) {
	cfg := newBuildConfig(opts...)

	// Stage 1 (Validate): labels before any distance is computed.
	if len(species) == 0 {
		return nil, ErrEmptyInput
	}
	active := make(map[string]*tree.Node, len(species))
	for i, s := range species {
		if s == nil {
			return nil, fmt.Errorf("Build: species[%d]: %w", i, seqdist.ErrNilSpecies)
		}
		if s.Name == "" {
			return nil, fmt.Errorf("Build: species[%d]: %w", i, ErrEmptyLabel)
		}
		if _, dup := active[s.Name]; dup {
			return nil, fmt.Errorf("Build: %q: %w", s.Name, ErrDuplicateLabel)
		}
		active[s.Name] = tree.NewLeaf(s)
	}

	// Stage 2 (Prepare): pairwise base distances.
	dm, err := distmatrix.New(species)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	cfg.logger.Debug("distance matrix ready", slog.Int("species", len(species)), slog.Int("pairs", dm.Pairs()))

	// Stage 3 (Execute): n-1 merges.
	c := &clusterer{dm: dm, active: active, used: make(map[string]struct{}, 2*len(species))}
	for label := range active {
		c.used[label] = struct{}{}
	}
	var last *tree.Node
	for step := 1; len(active) > 1; step++ {
		m, node, err := c.mergeClosest()
		if err != nil {
			return nil, err
		}
		m.Step = step
		last = node

		cfg.logger.Debug("merged clusters",
			slog.Int("step", m.Step),
			slog.String("left", m.Left),
			slog.String("right", m.Right),
			slog.Float64("distance", m.Distance),
			slog.Int("remaining", m.Remaining),
		)
		for _, fn := range cfg.onMerge {
			fn(m)
		}
	}

	// Stage 4 (Finalize): the survivor is the root.
	root := last
	if root == nil {
		for _, n := range active {
			root = n
		}
	}

	return tree.New(root, species)
}

// clusterer holds the mutable state of one Build call.
type clusterer struct {
	dm     *distmatrix.Matrix
	active map[string]*tree.Node // label → cluster root
	used   map[string]struct{}   // every label created so far
}

// mergeClosest performs one agglomeration step.
func (c *clusterer) mergeClosest() (Merge, *tree.Node, error) {
	dm, active := c.dm, c.active
	leftLabel, rightLabel, d, ok := dm.Closest()
	if !ok {
		// unreachable while the matrix mirrors the active set
		return Merge{}, nil, fmt.Errorf("upgma: no pair among %d active clusters", len(active))
	}
	left, right := active[leftLabel], active[rightLabel]

	label := leftLabel + LabelSeparator + rightLabel
	if _, taken := c.used[label]; taken {
		return Merge{}, nil, fmt.Errorf("Build: composite %q: %w", label, ErrDuplicateLabel)
	}

	// Weighted average over the clusters that stay active.
	nl, nr := float64(left.LeafCount()), float64(right.LeafCount())
	rows := make(map[string]float64, len(active)-2)
	for x := range active {
		if x == leftLabel || x == rightLabel {
			continue
		}
		dl, _ := dm.Get(leftLabel, x)
		dr, _ := dm.Get(rightLabel, x)
		rows[x] = (nl*dl + nr*dr) / (nl + nr)
	}

	delete(active, leftLabel)
	delete(active, rightLabel)
	dm.RemoveLabel(leftLabel)
	dm.RemoveLabel(rightLabel)

	node, err := tree.NewInternal(label, left, right, d/2)
	if err != nil {
		return Merge{}, nil, fmt.Errorf("Build: %w", err)
	}
	for x, v := range rows {
		if err := dm.Set(label, x, v); err != nil {
			return Merge{}, nil, fmt.Errorf("Build: %w", err)
		}
	}
	active[label] = node
	c.used[label] = struct{}{}

	return Merge{
		Left:       leftLabel,
		Right:      rightLabel,
		Label:      label,
		Distance:   d,
		EdgeWeight: d / 2,
		Remaining:  len(active),
	}, node, nil
}
