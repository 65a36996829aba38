// 13 Aug 2026

package bfac_test

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/andrew-torda/pdb_bfac/pkg/bfac"
)

// Lines as they come from a file, terminators and all.
var (
	atomA5  = "ATOM      1  N   ALA A   5      11.104  12.345  13.678  1.00  0.00           N\n"
	atomB17 = "ATOM     12  CA  GLY B  17      15.000  16.000  17.000  1.00  0.00           C\n"
	hetA5   = "HETATM 1201  O   HOH A   5      10.000  11.000  12.000  1.00 99.99           O\n"
	remark  = "REMARK    nothing to see here\n"
	endln   = "END\n"
)

func testTable() BfacTable {
	return BfacTable{
		ResKey{Chain: "A", Seq: "5"}: 42.10,
	}
}

func TestInsert(t *testing.T) {
	in := []string{remark, atomA5, atomB17, hetA5, endln}
	got, stats := Insert(in, testTable(), 7.5)
	want := []string{
		remark,
		"ATOM      1  N   ALA A   5      11.104  12.345  13.678  1.00 42.10           N\n",
		"ATOM     12  CA  GLY B  17      15.000  16.000  17.000  1.00  7.50           C\n",
		"HETATM 1201  O   HOH A   5      10.000  11.000  12.000  1.00  7.50           O\n",
		endln,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error("rewritten lines differ (-want +got):\n" + diff)
	}
	if stats.NGiven() != 1 {
		t.Error("one atom got a table value, stats say", stats.NGiven())
	}
}

// A hetero atom never gets a table value, even when its residue is
// in the table. atomA5 and hetA5 share chain A, residue 5.
func TestInsertHetatmIgnoresTable(t *testing.T) {
	got, _ := Insert([]string{hetA5}, testTable(), 0)
	if strings.Contains(got[0], "42.10") {
		t.Error("hetatm looked up the table, should not")
	}
	if got[0][60:66] != "  0.00" {
		t.Error("hetatm b-factor field is", got[0][60:66], "want the default")
	}
}

func TestInsertDefaultNaN(t *testing.T) {
	got, _ := Insert([]string{atomB17}, testTable(), math.NaN())
	if got[0][60:66] != "   NaN" {
		t.Error("missing residue with NaN default gave", got[0][60:66])
	}
}

func TestInsertLeavesOthersAlone(t *testing.T) {
	in := []string{remark, "TER\n", "", "\n", endln}
	got, _ := Insert(in, testTable(), 0)
	if diff := cmp.Diff(in, got); diff != "" {
		t.Error("non-atom lines changed (-want +got):\n" + diff)
	}
}

// Rewriting is a pure overwrite, so running it on its own output
// changes nothing more.
func TestInsertIdempotent(t *testing.T) {
	in := []string{remark, atomA5, atomB17, hetA5, endln}
	once, _ := Insert(in, testTable(), 7.5)
	twice, _ := Insert(once, testTable(), 7.5)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Error("second run changed the output (-once +twice):\n" + diff)
	}
}

func TestStats(t *testing.T) {
	in := []string{atomA5, atomB17, atomB17, hetA5, remark}
	_, stats := Insert(in, testTable(), 0)
	s := stats.String()
	wantRows := []string{
		`"A"`, `"B"`,
	}
	for _, w := range wantRows {
		if !strings.Contains(s, w) {
			t.Error("summary is missing a row for", w, "\n"+s)
		}
	}
	// chain A: one given, one hetatm. chain B: two defaulted.
	for _, line := range strings.Split(s, "\n") {
		fields := strings.Fields(line)
		if len(fields) != 4 {
			continue
		}
		switch fields[0] {
		case `"A"`:
			if fields[1] != "1" || fields[2] != "0" || fields[3] != "1" {
				t.Error("counts for chain A wrong:", line)
			}
		case `"B"`:
			if fields[1] != "0" || fields[2] != "2" || fields[3] != "0" {
				t.Error("counts for chain B wrong:", line)
			}
		}
	}
}
