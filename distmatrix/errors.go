// SPDX-License-Identifier: MIT

package distmatrix

import "errors"

// Sentinel errors for distance matrix operations.
var (
	// ErrEmptyLabel indicates a label is the empty string.
	ErrEmptyLabel = errors.New("distmatrix: label is empty")

	// ErrSelfPair indicates an attempt to store a distance from a label to itself.
	ErrSelfPair = errors.New("distmatrix: self pair not allowed")

	// ErrBadDistance indicates a NaN, infinite or negative distance value.
	ErrBadDistance = errors.New("distmatrix: distance must be finite and non-negative")

	// ErrDuplicateLabel indicates two input records share a name.
	ErrDuplicateLabel = errors.New("distmatrix: duplicate label")
)
