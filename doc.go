// Package phylotree infers phylogenetic trees from aligned sequences and
// answers structural queries over them.
//
// What is phylotree?
//
//	A small, deterministic toolkit that brings together:
//		• Sequence distance: fraction of differing aligned positions
//		• Distance matrix: label-pair store mutated as clusters merge
//		• UPGMA clustering: weighted-average linkage, lexicographic tie-break
//		• Tree queries: depth, height, weighted height, LCA, evolutionary distance
//		• Renderings: indented view and Newick-like text (with a reader)
//
// Everything is organized under small subpackages:
//
//	seqdist/    - Species record and Distance
//	fasta/      - FASTA reader producing Species
//	distmatrix/ - symmetric label-pair distance store
//	upgma/      - Build: the agglomerative clustering engine
//	tree/       - Node, Tree and the query functions
//	render/     - indented view
//	newick/     - Newick-like writer and reader
//	metrics/    - Prometheus collectors for builds
//	config/     - viper-backed settings for the CLI
//	cmd/phylotree - command line front-end
//
// Quick example:
//
//	species, _ := fasta.LoadFile("primates.fasta")
//	t, err := upgma.Build(species)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(newick.String(t))
//	fmt.Println(t.FindEvolutionaryDistance("Human", "Gorilla"))
//
//	go install github.com/katalvlaran/phylotree/cmd/phylotree@latest
package phylotree
