package register_test

import (
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// The register package is the hot path: it must depend on nothing but the
// standard library so that no import can drag locks, allocation, or I/O
// into channel operations.
func TestRegisterImportsOnlyStandardLibrary(t *testing.T) {
	cfg := &packages.Config{
		Mode:  packages.NeedName | packages.NeedImports,
		Tests: false,
	}
	pkgs, err := packages.Load(cfg, "github.com/Mrunmoy/regbus/internal/register")
	if err != nil {
		t.Fatalf("load package: %v", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		t.Fatal("package load errors")
	}
	if len(pkgs) != 1 {
		t.Fatalf("expected 1 package, got %d", len(pkgs))
	}

	for path := range pkgs[0].Imports {
		// Standard library paths have no dot in their first element.
		first := path
		if i := strings.Index(path, "/"); i >= 0 {
			first = path[:i]
		}
		if strings.Contains(first, ".") {
			t.Errorf("register imports non-stdlib package %q", path)
		}
	}
}
