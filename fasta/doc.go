// SPDX-License-Identifier: MIT

// Package fasta reads species records from FASTA input.
//
// Each entry starts with a '>' header line followed by one or more sequence
// lines, which are concatenated. Headers may carry several '|'-separated
// fields (e.g. ">gi|5524211|gb|AAD44166.1|Homo_sapiens"); the species name
// is the last non-empty field. Entries whose header yields no name are
// skipped, matching how curated alignment files mark unnamed sequences.
//
// Blank lines and surrounding whitespace are ignored everywhere. Symbols are
// kept as-is (no case folding), because distances compare them byte for byte.
//
// Example:
//
//	species, err := fasta.LoadFile("primates.fasta")
//	if err != nil {
//	    return err
//	}
//	t, err := upgma.Build(species)
package fasta
