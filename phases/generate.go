package phases

import (
	"context"
	"errors"

	"github.com/reusee/pane/generators"
)

// BuildGenerate makes a phase running one generation round. The phase
// leaves a RedoCheckpoint behind so a later /regen can rewind to the
// state the round started from.
type BuildGenerate func(generator generators.Generator) PhaseBuilder

func (Module) BuildGenerate() BuildGenerate {
	return func(generator generators.Generator) PhaseBuilder {
		return func(cont Phase) Phase {
			return func(ctx context.Context, state generators.State) (Phase, generators.State, error) {
				before := state

				for {
					next, err := generator.Generate(ctx, state)
					if errors.Is(err, generators.ErrRetryable) {
						continue
					}
					if err != nil {
						return nil, nil, err
					}
					state = next
					break
				}

				return cont, RedoCheckpoint{
					upstream:  state,
					state0:    before,
					generator: generator,
				}, nil
			}
		}
	}
}
