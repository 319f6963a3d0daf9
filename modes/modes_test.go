package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestForProduction(t *testing.T) {
	dscope.New(ForProduction()).Call(func(
		mode Mode,
		testingT *testing.T,
	) {
		if mode != ModeProduction {
			t.Fatalf("got %v", mode)
		}
		if testingT != nil {
			t.Fatal("production scope carries no testing.T")
		}
	})
}

func TestForTest(t *testing.T) {
	dscope.New(ForTest(t)).Call(func(
		mode Mode,
		testingT *testing.T,
	) {
		if mode != ModeDevelopment {
			t.Fatalf("got %v", mode)
		}
		if testingT != t {
			t.Fatal("scope must carry the caller's testing.T")
		}
	})
}
