// 13 Aug 2026
// Count what happened to the atom records, per chain. The counts sit
// in a little matrix with one row per outcome and one column per
// chain, with a mapping and reverse map tying chain ids to columns.

package bfac

import (
	"fmt"
	"strings"

	"github.com/andrew-torda/matrix"
	"github.com/andrew-torda/pdb_bfac/pkg/atomline"
)

// Rows in the counts matrix.
const (
	iGiven   = iota // value came from the b-factor table
	iDflt           // residue was not in the table
	iHetatm         // hetero atom, table never consulted
	nOutcome
)

// Stats holds per-chain counts of where each atom record's b-factor
// came from.
type Stats struct {
	counts  *matrix.FMatrix2d
	mapping map[string]int // chain id to column
	revmap  []string       // column to chain id
}

// newStats walks the lines once to find the chain ids, so the
// matrix can be sized before any counting starts.
func newStats(lines []string) *Stats {
	stats := &Stats{mapping: make(map[string]int)}
	for _, line := range lines {
		if atomline.Classify(line) == atomline.Other {
			continue
		}
		chain := atomline.ChainID(line)
		if _, ok := stats.mapping[chain]; !ok {
			stats.mapping[chain] = len(stats.revmap)
			stats.revmap = append(stats.revmap, chain)
		}
	}
	stats.counts = matrix.NewFMatrix2d(nOutcome, len(stats.revmap))
	return stats
}

func (stats *Stats) count(chain string, given, het bool) {
	ndx := stats.mapping[chain]
	switch {
	case het:
		stats.counts.Mat[iHetatm][ndx]++
	case given:
		stats.counts.Mat[iGiven][ndx]++
	default:
		stats.counts.Mat[iDflt][ndx]++
	}
}

// NGiven says how many atom records got a value from the table.
func (stats *Stats) NGiven() int {
	var n float32
	for _, v := range stats.counts.Mat[iGiven] {
		n += v
	}
	return int(n)
}

// String renders one row per chain. A chain id can be empty in
// broken files, so it is quoted.
func (stats *Stats) String() string {
	var bld strings.Builder
	fmt.Fprintf(&bld, "%-8s %8s %8s %8s\n", "chain", "given", "default", "hetatm")
	for ndx, chain := range stats.revmap {
		fmt.Fprintf(&bld, "%-8s %8.0f %8.0f %8.0f\n", "\""+chain+"\"",
			stats.counts.Mat[iGiven][ndx],
			stats.counts.Mat[iDflt][ndx],
			stats.counts.Mat[iHetatm][ndx])
	}
	return bld.String()
}
