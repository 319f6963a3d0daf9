package phases

import (
	"context"

	"github.com/reusee/pane/generators"
)

// Phase is one step of a session: it consumes the current state and
// returns the next phase to run, or nil to stop.
type Phase func(ctx context.Context, prev generators.State) (Phase, generators.State, error)

// PhaseBuilder prepends a phase to a continuation.
type PhaseBuilder func(cont Phase) Phase
