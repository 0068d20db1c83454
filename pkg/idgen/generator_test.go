package idgen

import "testing"

func TestSnowflakeGenerator_Unique(t *testing.T) {
	gen, err := NewSnowflakeGenerator(1)
	if err != nil {
		t.Fatalf("NewSnowflakeGenerator: %v", err)
	}

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		ref := gen.Reference()
		if ref == "" {
			t.Fatal("empty reference")
		}
		if seen[ref] {
			t.Fatalf("duplicate reference: %s", ref)
		}
		seen[ref] = true
	}
}

func TestSnowflakeGenerator_BadNode(t *testing.T) {
	if _, err := NewSnowflakeGenerator(9999); err == nil {
		t.Error("expected error for out-of-range node id")
	}
}
