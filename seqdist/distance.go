// SPDX-License-Identifier: MIT

package seqdist

import (
	"errors"
	"fmt"
)

// ErrAlignmentMismatch indicates two sequences of different lengths reached
// the distance function. Input must be aligned before clustering.
var ErrAlignmentMismatch = errors.New("seqdist: sequences are not aligned")

// ErrNilSpecies indicates a nil *Species was passed to Distance.
var ErrNilSpecies = errors.New("seqdist: species is nil")

// Hamming returns the number of positions where a and b differ.
// Returns ErrAlignmentMismatch if len(a) != len(b).
// Complexity: O(len(a)).
func Hamming(a, b []byte) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("Hamming: lengths %d and %d: %w", len(a), len(b), ErrAlignmentMismatch)
	}

	diffs := 0
	for i := range a {
		if a[i] != b[i] {
			diffs++
		}
	}

	return diffs, nil
}

// Distance returns the fraction of aligned positions where a and b differ.
//
// Stage 1 (Validate): both records non-nil and of equal length.
// Stage 2 (Execute): count differing positions.
// Stage 3 (Finalize): divide by the shared length; two empty sequences
// are at distance 0.
//
// Errors:
//   - ErrNilSpecies        if either argument is nil.
//   - ErrAlignmentMismatch if the lengths differ (wrapped with both names).
func Distance(a, b *Species) (float64, error) {
	if a == nil || b == nil {
		return 0, ErrNilSpecies
	}

	diffs, err := Hamming(a.Sequence, b.Sequence)
	if err != nil {
		return 0, fmt.Errorf("Distance(%q,%q): %w", a.Name, b.Name, err)
	}
	if len(a.Sequence) == 0 {
		return 0, nil
	}

	return float64(diffs) / float64(len(a.Sequence)), nil
}
