// core/transition/loader.go
package transition

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadTSV reads a transition table from a whitespace-delimited file with
// one context per line:
//
//	context  pA  pC  pG  pT
//
// Blank lines and '#' comments are skipped. The context column is either
// the Start sentinel or an ACGT k-mer (lower case accepted). The resulting
// model is validated by New, so malformed distributions fail here.
func LoadTSV(path string, opts ...Option) (*Model, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	table := map[string]Dist{}
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) != 5 {
			return nil, fmt.Errorf("%s:%d bad field count %d, want 5", path, ln, len(f))
		}
		ctx := f[0]
		if ctx != Start {
			ctx = strings.ToUpper(ctx)
		}
		if _, dup := table[ctx]; dup {
			return nil, fmt.Errorf("%s:%d duplicate context %q", path, ln, ctx)
		}
		var d Dist
		for i := 0; i < 4; i++ {
			if _, err := fmt.Sscan(f[i+1], &d[i]); err != nil {
				return nil, fmt.Errorf("%s:%d bad probability %q: %v", path, ln, f[i+1], err)
			}
		}
		table[ctx] = d
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	m, err := New(table, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
