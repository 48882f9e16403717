// SPDX-License-Identifier: MIT

package fasta_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phylotree/fasta"
)

const sample = `>gi|1|gb|X1|Human
ACGT
ACGT

>gi|2|gb|X2|Chimp
ACGA ACGT
>
TTTT
TTTT
>Gorilla
ACTTACGT`

func TestNameFromHeader(t *testing.T) {
	cases := map[string]string{
		">gi|5524211|gb|AAD44166.1|Homo_sapiens": "Homo_sapiens",
		"Pan":                                   "Pan",
		">a|b|":                                 "b",
		">":                                     "",
		"  >x | y  ":                            "y",
	}
	for in, want := range cases {
		assert.Equal(t, want, fasta.NameFromHeader(in), "header %q", in)
	}
}

func TestReader_ReadAll(t *testing.T) {
	species, err := fasta.Load(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, species, 3, "unnamed entry is skipped")

	assert.Equal(t, "Human", species[0].Name)
	assert.Equal(t, "ACGTACGT", string(species[0].Sequence))
	assert.Equal(t, "Chimp", species[1].Name)
	assert.Equal(t, "ACGAACGT", string(species[1].Sequence))
	assert.Equal(t, "Gorilla", species[2].Name)
	assert.Equal(t, "ACTTACGT", string(species[2].Sequence))
}

func TestReader_MissingHeader(t *testing.T) {
	_, err := fasta.Load(strings.NewReader("\nACGT\n>A\nAC\n"))
	assert.ErrorIs(t, err, fasta.ErrMissingHeader)
	assert.Contains(t, err.Error(), "line 2")
}

func TestReader_Empty(t *testing.T) {
	species, err := fasta.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, species)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.fasta")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	species, err := fasta.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, species, 3)

	_, err = fasta.LoadFile(filepath.Join(t.TempDir(), "missing.fasta"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
