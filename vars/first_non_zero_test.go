package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if got := FirstNonZero("", "a", "b"); got != "a" {
		t.Fatalf("got %q", got)
	}
	if got := FirstNonZero(0, 0); got != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestDerefOrZero(t *testing.T) {
	if got := DerefOrZero[int](nil); got != 0 {
		t.Fatalf("got %v", got)
	}
	if got := DerefOrZero(PtrTo(42)); got != 42 {
		t.Fatalf("got %v", got)
	}
}
