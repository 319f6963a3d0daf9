package configs

import "testing"

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)

	if model := First[string](loader, "model"); model != "sketch-1" {
		t.Fatalf("got %v", model)
	}

	// missing paths yield the zero value
	if gap := First[int](loader, "gap"); gap != 0 {
		t.Fatalf("got %v", gap)
	}
}
