// 12 Aug 2026
// Package atomline knows which columns of a PDB atom record mean
// what. The magic offsets live here and nowhere else. We only care
// about the record name, the chain id, the sequence id and the
// b-factor field. Everything else in a line is opaque.

package atomline

import (
	"fmt"
	"strings"
)

// A RecType says what kind of line we are looking at.
type RecType byte

const (
	Atom   RecType = iota // an "ATOM  " record
	Hetatm                // a "HETATM" record
	Other                 // anything else, left alone
)

// Column ranges, half open, counting bytes from zero.
const (
	recNameEnd = 6
	chainBeg   = 20
	chainEnd   = 22
	seqBeg     = 23
	seqEnd     = 26
	bfacBeg    = 60
	bfacEnd    = 66
)

const (
	atomName   = "ATOM  "
	hetatmName = "HETATM"
)

// Classify looks at the first six bytes of a line. Lines shorter
// than six bytes cannot be atom records.
func Classify(line string) RecType {
	if len(line) < recNameEnd {
		return Other
	}
	switch line[:recNameEnd] {
	case atomName:
		return Atom
	case hetatmName:
		return Hetatm
	}
	return Other
}

// field picks a column range out of a line. Ranges are clipped to
// the line length, so a short line gives a short (maybe empty)
// field rather than an explosion.
func field(line string, beg, end int) string {
	if end > len(line) {
		end = len(line)
	}
	if beg > end {
		beg = end
	}
	return line[beg:end]
}

// ChainID returns the chain identifier with surrounding white
// space removed.
func ChainID(line string) string {
	return strings.TrimSpace(field(line, chainBeg, chainEnd))
}

// SeqID returns the sequence identifier with surrounding white
// space removed. It stays a string. We never do arithmetic with it.
func SeqID(line string) string {
	return strings.TrimSpace(field(line, seqBeg, seqEnd))
}

// SpliceBfac writes bfac into the b-factor columns of a line and
// returns the result. Bytes outside the b-factor field are
// untouched. The value is right justified, six wide, two decimals.
// A value which does not fit in six characters widens the field.
func SpliceBfac(line string, bfac float64) string {
	return fmt.Sprintf("%s%6.2f%s",
		field(line, 0, bfacBeg), bfac, field(line, bfacEnd, len(line)))
}
