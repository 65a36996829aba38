// 14 Aug 2026
// The top level of insertbfac, after the command line has been
// parsed.

package bfac

import (
	"bufio"
	"bytes"
	"fmt"
	"os"

	"github.com/andrew-torda/pdb_bfac/pkg/bigread"
	"github.com/andrew-torda/pdb_bfac/pkg/common"
)

// Opts is literally the command line options after parsing.
type Opts struct {
	PdbFname  string  // the structure file, never altered
	BfacFname string  // chain, seq, value lines
	OutFname  string  // "" means stdout
	Dflt      float64 // for residues with no value. NaN if not set.
	Verbose   bool    // print the per-chain summary
}

// MyMain reads the b-factor table and the PDB file, rewrites the
// atom records and writes the copy out. It returns an exit code for
// the caller to pass to os.Exit. The output goes straight to the
// destination, so a failure partway through can leave a short file
// behind, just as the output of os.Create would anywhere else.
func MyMain(opts *Opts) int {
	buf, err := bigread.ReadWhole(opts.BfacFname)
	if err != nil {
		fmt.Fprintln(os.Stderr, err, "(the b-factor file)")
		return common.ExitFailure
	}
	table, err := ReadBfacs(bytes.NewReader(buf))
	if err != nil {
		fmt.Fprintln(os.Stderr, opts.BfacFname+":", err)
		return common.ExitFailure
	}

	if buf, err = bigread.ReadWhole(opts.PdbFname); err != nil {
		fmt.Fprintln(os.Stderr, err, "(the pdb file)")
		return common.ExitFailure
	}
	lines, stats := Insert(bigread.Lines(buf), table, opts.Dflt)

	if err := writeLines(opts.OutFname, lines); err != nil {
		fmt.Fprintln(os.Stderr, "writing output:", err)
		return common.ExitFailure
	}
	if opts.Verbose {
		fmt.Print(stats)
	}
	return common.ExitSuccess
}

// writeLines concatenates the lines to fname, or to stdout if
// fname is empty.
func writeLines(fname string, lines []string) error {
	fpOut := os.Stdout
	if fname != "" {
		var err error
		if fpOut, err = os.Create(fname); err != nil {
			return err
		}
		defer fpOut.Close()
	}
	wrtr := bufio.NewWriter(fpOut)
	for _, line := range lines {
		if _, err := wrtr.WriteString(line); err != nil {
			return err
		}
	}
	return wrtr.Flush()
}
