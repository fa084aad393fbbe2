package runid

import "testing"

func TestGenerateUniqueSortedIDs(t *testing.T) {
	gen := NewULIDGenerator()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := gen.Generate()
		if len(id) != 26 {
			t.Fatalf("expected 26-char ULID, got %q", id)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate run ID generated: %s", id)
		}
		seen[id] = struct{}{}
	}
}
