// 13 Aug 2026
// Read a file of b-factor values, one residue per line.

package bfac

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A ResKey names one residue. Both parts are kept exactly as they
// appear in the input files. They are labels, not numbers.
type ResKey struct {
	Chain string
	Seq   string
}

// A BfacTable maps residues to b-factor values. It is built once by
// ReadBfacs and only read afterwards.
type BfacTable map[ResKey]float64

// ReadBfacs reads lines of
//     chain_id seq_id value
// separated by white space. Blank lines are skipped. Fields after
// the third are ignored. A line with fewer than three fields, or a
// value that is not a number, kills the whole read. If a residue
// turns up twice, the later line wins without comment.
func ReadBfacs(rdr io.Reader) (BfacTable, error) {
	table := make(BfacTable)
	scnnr := bufio.NewScanner(rdr)
	for nline := 1; scnnr.Scan(); nline++ {
		fields := strings.Fields(scnnr.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 3 {
			return nil, fmt.Errorf(
				"line %d: want chain, seq and value, got %d field(s)",
				nline, len(fields))
		}
		bfac, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf(
				"line %d: bad b-factor value %q", nline, fields[2])
		}
		table[ResKey{Chain: fields[0], Seq: fields[1]}] = bfac
	}
	if err := scnnr.Err(); err != nil {
		return nil, err
	}
	return table, nil
}
