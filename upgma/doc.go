// SPDX-License-Identifier: MIT

// Package upgma builds a phylogenetic tree by weighted-average-linkage
// agglomerative clustering (UPGMA).
//
// Algorithm Outline:
//  1. One leaf per species, registered under its name as an active cluster.
//  2. distmatrix.New computes every pairwise seqdist.Distance.
//  3. While more than one cluster is active:
//     a. pick the pair with the strictly smallest distance, scanning labels
//     in ascending order (ties go to the lexicographically smallest pair);
//     b. deactivate both and evict them from the matrix;
//     c. the lexicographically smaller label becomes the left child;
//     d. join them under "left+right" with edge weight d/2;
//     e. for every other active x store
//     d(new, x) = (nL·d(L, x) + nR·d(R, x)) / (nL + nR),
//     where nL, nR are leaf counts;
//     f. activate the new node.
//  4. The last active cluster is the root.
//
// A single species yields a one-leaf tree.
//
// Complexity:
//
//	Time   = O(n²·L) for the matrix + O(n³) for n−1 merges
//	         (each merge: O(n log n) label sort + O(n²) pair scan)
//	Memory = O(n²)
//
// Errors (in check order):
//   - ErrEmptyInput                 no species given.
//   - ErrEmptyLabel                 a species has an empty name.
//   - ErrDuplicateLabel             two species share a name, or a composite
//     label collides with an active one.
//   - seqdist.ErrAlignmentMismatch  sequences of different lengths.
//
// Example:
//
//	t, err := upgma.Build(species, upgma.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(t.FindEvolutionaryDistance("Human", "Chimp"))
package upgma
