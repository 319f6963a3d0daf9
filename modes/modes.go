package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// Mode distinguishes a production scope from one running under a
// test. Providers fork on it to pick safe defaults, like skipping the
// proxy when developing.
type Mode uint8

const (
	ModeProduction Mode = iota
	ModeDevelopment
)

// ModuleForProduction is the root module of a real run. It carries no
// *testing.T, and providers asking for one get nil.
type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) Mode() Mode {
	return ModeProduction
}

func (ModuleForProduction) T() *testing.T {
	return nil
}

// ModuleForTest is the root module of a test scope: development mode
// plus the running test's *testing.T for providers that want it.
type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

func (ModuleForTest) Mode() Mode {
	return ModeDevelopment
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}
