// 12 Aug 2026
// Package bigread slurps whole files. The files we meet are small
// enough that one big read is the simplest thing that works. We mmap
// when we can and copy the bytes out, so the caller never holds a
// mapping. If the contents look gzipped, they are decompressed, so
// a .pdb and a .pdb.gz are the same to our callers.

package bigread

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// slurp gets the raw bytes of a file. Mapping fails on things like
// empty files and pipes, so we fall back to an ordinary read.
func slurp(fname string) ([]byte, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	var mm mmap.MMap
	if mm, err = mmap.Map(fp, mmap.RDONLY, 0); err != nil {
		return os.ReadFile(fname)
	}
	defer mm.Unmap()
	buf := make([]byte, len(mm))
	copy(buf, mm)
	return buf, nil
}

// isGzipped looks for the two gzip magic bytes. We check the
// contents, not the file name, since people rename files.
func isGzipped(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0x1f && buf[1] == 0x8b
}

// ReadWhole returns the contents of fname, decompressed if they
// were gzipped.
func ReadWhole(fname string) ([]byte, error) {
	buf, err := slurp(fname)
	if err != nil {
		return nil, err
	}
	if !isGzipped(buf) {
		return buf, nil
	}
	zrdr, err := gzip.NewReader(bytes.NewReader(buf))
	if err != nil {
		return nil, errors.New("reading " + fname + " " + err.Error())
	}
	defer zrdr.Close()
	if buf, err = io.ReadAll(zrdr); err != nil {
		return nil, errors.New("decompressing " + fname + " " + err.Error())
	}
	return buf, nil
}

// Lines splits buf after each newline. The newlines stay on the
// ends of the lines, so joining the pieces gives back the original
// bytes. A last line without a newline is kept as it is.
func Lines(buf []byte) []string {
	var lines []string
	for len(buf) > 0 {
		n := bytes.IndexByte(buf, '\n')
		if n == -1 {
			lines = append(lines, string(buf))
			break
		}
		lines = append(lines, string(buf[:n+1]))
		buf = buf[n+1:]
	}
	return lines
}
