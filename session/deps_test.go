package session

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modulePath = "github.com/lixenwraith/elf-bizniz"

// importClosure collects every import reachable from dir through module-local packages, tests excluded
func importClosure(t *testing.T, root, dir string, seen map[string]bool) {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(root, dir))
	require.NoError(t, err)

	fset := token.NewFileSet()
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(root, dir, name), nil, parser.ImportsOnly)
		require.NoError(t, err)
		for _, imp := range f.Imports {
			path, err := strconv.Unquote(imp.Path.Value)
			require.NoError(t, err)
			if seen[path] {
				continue
			}
			seen[path] = true
			if rel, ok := strings.CutPrefix(path, modulePath+"/"); ok {
				importClosure(t, root, rel, seen)
			}
		}
	}
}

// The simulation core builds without the audio device stack, which needs cgo
func TestSessionDoesNotDependOnAudio(t *testing.T) {
	seen := map[string]bool{}
	importClosure(t, "..", "session", seen)

	require.True(t, seen[modulePath+"/config"])
	for path := range seen {
		assert.False(t, strings.HasPrefix(path, "github.com/gopxl/beep"), "session reaches %s", path)
		assert.NotEqual(t, modulePath+"/audio", path)
	}
}
