// SPDX-License-Identifier: MIT

// Package distmatrix provides the mutable pairwise distance store used during
// agglomerative clustering.
//
// A Matrix maps unordered pairs of active cluster labels to a finite,
// non-negative distance. Storage mirrors core.Graph's adjacency layout:
//
//	dist[a][b] = dist[b][a] = d
//
// so Get is O(1) in either argument order and RemoveLabel is O(deg(label)).
//
// Invariants:
//   - entries exist only between labels that are currently active;
//   - no self pairs (a, a);
//   - every stored value is finite and ≥ 0.
//
// Labels() returns labels in ascending order so callers can scan pairs in a
// deterministic order regardless of map iteration.
//
// Errors:
//
//	ErrEmptyLabel     - a label is the empty string.
//	ErrSelfPair       - Set(a, a, v).
//	ErrBadDistance    - v is NaN, ±Inf or negative.
//	ErrDuplicateLabel - New received two species with the same name.
package distmatrix
