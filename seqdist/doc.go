// SPDX-License-Identifier: MIT

// Package seqdist defines the Species record and the base dissimilarity
// between two aligned sequences.
//
// Distance is the fraction of positions at which two equal-length sequences
// carry different symbols:
//
//	d(a, b) = |{ i : a[i] != b[i] }| / L,   L = len(a) = len(b)
//
// The result always lies in [0, 1]. Sequences of different lengths are a
// precondition violation (the input was not aligned) and are reported as
// ErrAlignmentMismatch; they are never truncated or padded.
//
// Complexity: O(L) time, O(1) extra memory.
//
// Example:
//
//	a := seqdist.NewSpecies("A", "AAAA")
//	b := seqdist.NewSpecies("B", "AAAT")
//	d, err := seqdist.Distance(a, b) // d == 0.25
package seqdist
