package anim

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// TestDisplayIndependentPackagesAvoidRaylib keeps the engine and the terminal
// host buildable without cgo.
func TestDisplayIndependentPackagesAvoidRaylib(t *testing.T) {
	for _, dir := range []string{".", "../terminal", "../systems", "../telemetry", "../theme", "../camera"} {
		t.Run(dir, func(t *testing.T) {
			entries, err := os.ReadDir(dir)
			if err != nil {
				t.Fatal(err)
			}
			fset := token.NewFileSet()
			for _, e := range entries {
				if e.IsDir() || !strings.HasSuffix(e.Name(), ".go") {
					continue
				}
				path := filepath.Join(dir, e.Name())
				f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
				if err != nil {
					t.Fatalf("parsing %s: %v", path, err)
				}
				for _, imp := range f.Imports {
					p, _ := strconv.Unquote(imp.Path.Value)
					if strings.HasPrefix(p, "github.com/gen2brain/raylib-go") {
						t.Errorf("%s imports %s", path, p)
					}
				}
			}
		})
	}
}
