// SPDX-License-Identifier: MIT

package fasta

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/phylotree/seqdist"
)

// ErrMissingHeader indicates sequence data appeared before any '>' header.
var ErrMissingHeader = errors.New("fasta: sequence data before header")

// headerFieldSep separates fields inside a header line.
const headerFieldSep = "|"

// Reader reads species from FASTA encoded input.
// It is NOT safe for concurrent use.
type Reader struct {
	buf        *bufio.Reader
	line       int    // 1-based line number of the next line to read
	nextHeader []byte // header already consumed while finishing the previous entry
}

// NewReader returns a Reader ready to read entries from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{buf: bufio.NewReader(r), line: 1}
}

// NameFromHeader extracts the species name from a header line.
// The leading '>' is optional. Returns "" when no field carries a name.
func NameFromHeader(header string) string {
	header = strings.TrimPrefix(strings.TrimSpace(header), ">")
	fields := strings.Split(header, headerFieldSep)
	for i := len(fields) - 1; i >= 0; i-- {
		if name := strings.TrimSpace(fields[i]); name != "" {
			return name
		}
	}

	return ""
}

// Read returns the next named species. Unnamed entries are skipped.
// At the end of input it returns (nil, io.EOF).
func (r *Reader) Read() (*seqdist.Species, error) {
	for {
		header, seq, err := r.readEntry()
		if err != nil {
			return nil, err
		}
		if name := NameFromHeader(header); name != "" {
			return &seqdist.Species{Name: name, Sequence: seq}, nil
		}
	}
}

// ReadAll reads every remaining species. The error is never io.EOF.
func (r *Reader) ReadAll() ([]*seqdist.Species, error) {
	var out []*seqdist.Species
	for {
		s, err := r.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
}

// readEntry consumes one header and its sequence lines.
func (r *Reader) readEntry() (string, []byte, error) {
	var (
		header     string
		seenHeader bool
		seq        []byte
	)
	if r.nextHeader != nil {
		header, seenHeader = string(r.nextHeader), true
		r.nextHeader = nil
	}

	for {
		line, err := r.buf.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", nil, err
		}
		atEOF := err != nil
		if atEOF && len(line) == 0 {
			if !seenHeader {
				return "", nil, io.EOF
			}

			return header, seq, nil
		}
		trimmed := bytes.TrimSpace(line)
		r.line++

		switch {
		case len(trimmed) == 0:
			// blank
		case trimmed[0] == '>':
			if seenHeader {
				r.nextHeader = append([]byte(nil), trimmed...)

				return header, seq, nil
			}
			header, seenHeader = string(trimmed), true
		case !seenHeader:
			return "", nil, fmt.Errorf("line %d: %w", r.line-1, ErrMissingHeader)
		default:
			// inner whitespace is not part of an aligned sequence
			seq = append(seq, bytes.Join(bytes.Fields(trimmed), nil)...)
		}

		if atEOF {
			return header, seq, nil
		}
	}
}

// Load reads all species from r.
func Load(r io.Reader) ([]*seqdist.Species, error) {
	return NewReader(r).ReadAll()
}

// LoadFile opens path and reads all species from it.
func LoadFile(path string) ([]*seqdist.Species, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fasta: unable to open file %s: %w", path, err)
	}
	defer f.Close()

	species, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("fasta: %s: %w", path, err)
	}

	return species, nil
}
