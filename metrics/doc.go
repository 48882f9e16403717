// SPDX-License-Identifier: MIT

// Package metrics exposes clustering statistics as Prometheus collectors.
//
// A Recorder owns a private registry so several recorders (e.g. one per test)
// never collide on the default registerer. Build wraps upgma.Build, wiring
// the per-merge hook and timing the whole construction. Batch runs export the
// registry with WriteTextfile, in the node_exporter textfile format.
//
// Collected series:
//
//	phylotree_builds_total{result}           builds by result ("ok", "error")
//	phylotree_build_duration_seconds         histogram of Build wall time
//	phylotree_merges_total                   agglomeration steps performed
//	phylotree_merge_distance                 histogram of merged pair distances
//	phylotree_tree_leaves                    leaves of the last successful tree
package metrics
