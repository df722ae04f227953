package lower

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bel-learning/mila-compiler/internal/lexer"
	"github.com/bel-learning/mila-compiler/internal/parser"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestFixtures lowers every program under testdata/fixtures and snapshots
// its printed IR, covering the five successful scenarios of spec.md §8 end
// to end; the failing unknown-name scenario is TestLowerUnknownNameFails.
func TestFixtures(t *testing.T) {
	paths, err := filepath.Glob("../../testdata/fixtures/*.mila")
	if err != nil {
		t.Fatalf("failed to list fixtures: %v", err)
	}
	if len(paths) == 0 {
		t.Fatal("no fixtures found under testdata/fixtures")
	}

	for _, path := range paths {
		name := filepath.Base(path)
		t.Run(name, func(t *testing.T) {
			content, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("failed to read %s: %v", path, err)
			}
			source := string(content)

			l := lexer.New(source)
			p := parser.New(l, source, name)
			program, err := p.ParseProgram()
			if err != nil {
				t.Fatalf("unexpected parse error in %s: %v", name, err)
			}

			lw := New(source, name)
			module, err := lw.Lower(program)
			if err != nil {
				t.Fatalf("unexpected lowering error in %s: %v", name, err)
			}

			snaps.MatchSnapshot(t, module.String())
		})
	}
}
