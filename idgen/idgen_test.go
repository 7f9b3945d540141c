package idgen

import (
	"strings"
	"testing"
)

func TestNanoID_Length(t *testing.T) {
	for _, length := range []int{8, 12, 16, 24} {
		gen := NanoID(length)
		id := gen()
		if len(id) != length {
			t.Fatalf("NanoID(%d): got length %d", length, len(id))
		}
	}
}

func TestNanoID_Unique(t *testing.T) {
	gen := NanoID(16)
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := gen()
		if seen[id] {
			t.Fatalf("duplicate ID after %d draws: %q", i, id)
		}
		seen[id] = true
	}
}

func TestUUIDv7_Format(t *testing.T) {
	id := UUIDv7()()
	if len(id) != 36 {
		t.Fatalf("UUID length: got %d, want 36", len(id))
	}
	if strings.Count(id, "-") != 4 {
		t.Fatalf("UUID dashes: got %d, want 4 in %q", strings.Count(id, "-"), id)
	}
}

func TestPrefixed(t *testing.T) {
	gen := Prefixed("evt_", NanoID(8))
	id := gen()
	if !strings.HasPrefix(id, "evt_") {
		t.Fatalf("prefix missing: %q", id)
	}
	if len(id) != 4+8 {
		t.Fatalf("prefixed length: got %d", len(id))
	}
}

func TestDefault(t *testing.T) {
	if New() == New() {
		t.Fatal("Default generator returned the same ID twice")
	}
}
