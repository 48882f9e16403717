// SPDX-License-Identifier: MIT

// Command phylotree infers a phylogenetic tree from an aligned FASTA file
// and prints or queries it.
//
//	phylotree tree primates.fasta --width 60 --format both
//	phylotree info primates.fasta
//	phylotree lca primates.fasta Human Gorilla
//	phylotree distance primates.fasta Human Gorilla
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
