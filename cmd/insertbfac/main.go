// 14 Aug 2026

// insertbfac writes a copy of a PDB file with the b-factor columns
// filled from a separate file of "chain_id seq_id value" lines.
// Residues with no value get a default, as do all hetero atoms.
// The input PDB file is not touched.

package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path"

	"github.com/andrew-torda/pdb_bfac/pkg/bfac"
	"github.com/andrew-torda/pdb_bfac/pkg/common"
)

func usage() {
	name := path.Base(os.Args[0])
	fmt.Fprintln(os.Stderr,
		"usage:", name, "-p pdbfile -b bfacfile [-o outfile] [-d default] [-v]")
	flag.PrintDefaults()
}

func doFlags(opts *bfac.Opts) {
	flag.StringVar(&opts.PdbFname, "p", "", "pdb file to copy (required)")
	flag.StringVar(&opts.BfacFname, "b", "", "file of chain_id seq_id value lines (required)")
	flag.StringVar(&opts.OutFname, "o", "", "output pdb file, stdout if not given")
	flag.Float64Var(&opts.Dflt, "d", math.NaN(), "b-factor for residues not in the b-factor file")
	flag.BoolVar(&opts.Verbose, "v", false, "print a per-chain summary")
	flag.Parse()
}

func main() {
	opts := bfac.Opts{}
	doFlags(&opts)
	if opts.PdbFname == "" || opts.BfacFname == "" {
		usage()
		os.Exit(common.ExitUsageError)
	}
	os.Exit(bfac.MyMain(&opts))
}
