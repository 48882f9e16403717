// SPDX-License-Identifier: MIT

package upgma

import "errors"

// Sentinel errors returned by Build. Match with errors.Is.
var (
	// ErrEmptyInput indicates Build received no species.
	ErrEmptyInput = errors.New("upgma: no species to cluster")

	// ErrEmptyLabel indicates a species with an empty name.
	ErrEmptyLabel = errors.New("upgma: species name is empty")

	// ErrDuplicateLabel indicates two clusters would share a label.
	ErrDuplicateLabel = errors.New("upgma: duplicate label")
)
