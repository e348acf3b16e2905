// core/fasta/reader.go
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Read parses FASTA records from r. Header lines keep only the first
// whitespace-delimited token as the ID; sequence lines are concatenated
// unchanged.
func Read(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 16 * 1024 * 1024
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		recs []Record
		id   string
		seq  strings.Builder
		open bool
	)
	flush := func() {
		if open {
			recs = append(recs, Record{ID: id, Seq: seq.String()})
			seq.Reset()
		}
	}
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			flush()
			fields := strings.Fields(line[1:])
			if len(fields) == 0 {
				return nil, fmt.Errorf("line %d: empty FASTA header", ln)
			}
			id = fields[0]
			open = true
			continue
		}
		if !open {
			return nil, fmt.Errorf("line %d: sequence before first header", ln)
		}
		seq.WriteString(line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()
	return recs, nil
}
