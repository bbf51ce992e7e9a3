package ids

import (
	"sort"
	"testing"
)

func TestCreateULIDShape(t *testing.T) {
	id := CreateULID()
	if len(id) != 26 {
		t.Fatalf("expected 26-character ULID, got %d (%q)", len(id), id)
	}
}

func TestCreateULIDUniqueAndSorted(t *testing.T) {
	const n = 1000
	ids := make([]string, 0, n)
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := CreateULID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate ULID %q", id)
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if !sort.StringsAreSorted(ids) {
		t.Fatal("monotonic ULIDs are not lexicographically sorted")
	}
}
