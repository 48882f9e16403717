// SPDX-License-Identifier: MIT

package seqdist

// Species is one named, aligned sequence.
//
// Name uniquely identifies the record within one input set.
// Sequence holds one byte per aligned symbol; all records clustered
// together must share the same length.
type Species struct {
	// Name is the label used for leaves of the inferred tree.
	Name string

	// Sequence is the aligned symbol string.
	Sequence []byte
}

// NewSpecies returns a Species with the given name and sequence.
// The sequence string is copied.
func NewSpecies(name, sequence string) *Species {
	return &Species{Name: name, Sequence: []byte(sequence)}
}

// Len returns the number of aligned symbols.
func (s *Species) Len() int {
	return len(s.Sequence)
}

// String returns the species name.
func (s *Species) String() string {
	return s.Name
}
