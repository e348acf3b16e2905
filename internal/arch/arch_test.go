// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

// Layering: output/writers must not reach up into app/cli, and the
// pipeline must not know about presentation.
func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		"genomesim/internal/pipeline": {
			"genomesim/internal/app", "genomesim/internal/cli",
			"genomesim/internal/output", "genomesim/internal/writers",
			"genomesim/cmd/",
		},
		"genomesim/internal/output": {
			"genomesim/internal/app", "genomesim/internal/cli",
			"genomesim/internal/writers", "genomesim/cmd/",
		},
		"genomesim/internal/writers": {
			"genomesim/internal/app", "genomesim/internal/cli",
			"genomesim/cmd/",
		},
		"genomesim/internal/cli": {
			"genomesim/internal/app", "genomesim/internal/pipeline",
			"genomesim/internal/output", "genomesim/internal/writers",
			"genomesim/cmd/",
		},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "genomesim/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "genomesim/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
