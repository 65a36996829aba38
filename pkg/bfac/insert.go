// 13 Aug 2026

package bfac

import (
	"github.com/andrew-torda/pdb_bfac/pkg/atomline"
)

// Insert rewrites the b-factor field of every atom record in lines
// and returns the new lines plus a count of what happened. For an
// "ATOM  " record the value comes from the table, or dflt if the
// residue is not there. A "HETATM" record always gets dflt, even if
// its residue is in the table. Other lines come back untouched.
// Order and number of lines are preserved. No I/O happens here.
func Insert(lines []string, table BfacTable, dflt float64) ([]string, *Stats) {
	out := make([]string, len(lines))
	stats := newStats(lines)
	for i, line := range lines {
		switch atomline.Classify(line) {
		case atomline.Atom:
			key := ResKey{
				Chain: atomline.ChainID(line),
				Seq:   atomline.SeqID(line),
			}
			bfac, ok := table[key]
			if !ok {
				bfac = dflt
			}
			out[i] = atomline.SpliceBfac(line, bfac)
			stats.count(key.Chain, ok, false)
		case atomline.Hetatm:
			out[i] = atomline.SpliceBfac(line, dflt)
			stats.count(atomline.ChainID(line), false, true)
		default:
			out[i] = line
		}
	}
	return out, stats
}
