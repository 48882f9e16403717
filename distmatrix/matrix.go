// SPDX-License-Identifier: MIT

package distmatrix

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/katalvlaran/phylotree/seqdist"
)

// Matrix is a symmetric label-pair distance store.
// The zero value is not usable; construct with New or NewEmpty.
type Matrix struct {
	// dist[a][b] == dist[b][a]; an active label always has an inner map.
	dist map[string]map[string]float64
}

// NewEmpty returns a Matrix with no labels.
func NewEmpty() *Matrix {
	return &Matrix{dist: make(map[string]map[string]float64)}
}

// New registers every species name and stores seqdist.Distance for every
// unordered pair of distinct records.
//
// Stage 1 (Validate): names non-empty and unique.
// Stage 2 (Execute): n(n-1)/2 distance computations.
//
// Errors: ErrEmptyLabel, ErrDuplicateLabel, seqdist.ErrAlignmentMismatch.
// Complexity: O(n²·L) time, O(n²) memory.
func New(species []*seqdist.Species) (*Matrix, error) {
	m := NewEmpty()
	for _, s := range species {
		if s == nil {
			return nil, seqdist.ErrNilSpecies
		}
		if s.Name == "" {
			return nil, ErrEmptyLabel
		}
		if m.Has(s.Name) {
			return nil, fmt.Errorf("New: %q: %w", s.Name, ErrDuplicateLabel)
		}
		m.addLabel(s.Name)
	}

	for i := 0; i < len(species); i++ {
		for j := i + 1; j < len(species); j++ {
			d, err := seqdist.Distance(species[i], species[j])
			if err != nil {
				return nil, err
			}
			m.set(species[i].Name, species[j].Name, d)
		}
	}

	return m, nil
}

// addLabel registers label with no distances.
func (m *Matrix) addLabel(label string) {
	if _, ok := m.dist[label]; !ok {
		m.dist[label] = make(map[string]float64)
	}
}

// set writes both mirror entries without validation.
func (m *Matrix) set(a, b string, v float64) {
	m.addLabel(a)
	m.addLabel(b)
	m.dist[a][b] = v
	m.dist[b][a] = v
}

// Get returns the distance between a and b in either order.
// ok is false when the pair is not stored.
// Complexity: O(1) average.
func (m *Matrix) Get(a, b string) (d float64, ok bool) {
	row, found := m.dist[a]
	if !found {
		return 0, false
	}
	d, ok = row[b]

	return d, ok
}

// Set inserts or overwrites the distance for the unordered pair (a, b),
// registering both labels as active.
// Complexity: O(1) average.
func (m *Matrix) Set(a, b string, v float64) error {
	if a == "" || b == "" {
		return ErrEmptyLabel
	}
	if a == b {
		return fmt.Errorf("Set(%q,%q): %w", a, b, ErrSelfPair)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("Set(%q,%q,%v): %w", a, b, v, ErrBadDistance)
	}
	m.set(a, b, v)

	return nil
}

// RemoveLabel evicts label and every entry involving it.
// Removing an unknown label is a no-op.
// Complexity: O(deg(label)).
func (m *Matrix) RemoveLabel(label string) {
	row, ok := m.dist[label]
	if !ok {
		return
	}
	for other := range row {
		delete(m.dist[other], label)
	}
	delete(m.dist, label)
}

// Has reports whether label is active.
func (m *Matrix) Has(label string) bool {
	_, ok := m.dist[label]

	return ok
}

// Len returns the number of active labels.
func (m *Matrix) Len() int {
	return len(m.dist)
}

// Pairs returns the number of stored unordered pairs.
func (m *Matrix) Pairs() int {
	n := 0
	for _, row := range m.dist {
		n += len(row)
	}

	return n / 2
}

// Labels returns the active labels in ascending order.
// Complexity: O(n log n).
func (m *Matrix) Labels() []string {
	labels := make([]string, 0, len(m.dist))
	for l := range m.dist {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	return labels
}

// Closest scans every unordered pair of active labels in ascending label
// order and returns the pair with the strictly smallest distance, a < b.
// On ties the first pair met wins, i.e. the lexicographically smallest
// (a, b). ok is false when fewer than two labels hold a stored pair.
// Complexity: O(n²).
func (m *Matrix) Closest() (a, b string, d float64, ok bool) {
	labels := m.Labels()
	d = math.Inf(1)
	for i, x := range labels {
		row := m.dist[x]
		for _, y := range labels[i+1:] {
			v, found := row[y]
			if found && v < d {
				a, b, d, ok = x, y, v, true
			}
		}
	}

	return a, b, d, ok
}

// Row returns a copy of the distances from label to every other active label,
// sorted by label. Returns nil for an unknown label.
func (m *Matrix) Row(label string) []Entry {
	row, ok := m.dist[label]
	if !ok {
		return nil
	}
	out := make([]Entry, 0, len(row))
	for other, d := range row {
		out = append(out, Entry{Label: other, Distance: d})
	}
	slices.SortFunc(out, func(x, y Entry) int { return strings.Compare(x.Label, y.Label) })

	return out
}

// Entry is one (label, distance) cell of a Row.
type Entry struct {
	Label    string
	Distance float64
}
