package phases

import "github.com/reusee/pane/generators"

// RedoCheckpoint decorates the state after a generation round with the
// state it started from, so the round can be rerun.
type RedoCheckpoint struct {
	upstream  generators.State
	state0    generators.State
	generator generators.Generator
}

var _ generators.State = RedoCheckpoint{}

// with swaps the upstream, keeping the rewind point and generator.
func (r RedoCheckpoint) with(upstream generators.State) RedoCheckpoint {
	r.upstream = upstream
	return r
}

func (r RedoCheckpoint) AppendContent(content *generators.Content) (generators.State, error) {
	upstream, err := r.upstream.AppendContent(content)
	if err != nil {
		return nil, err
	}
	return r.with(upstream), nil
}

func (r RedoCheckpoint) Flush() (generators.State, error) {
	upstream, err := r.upstream.Flush()
	if err != nil {
		return nil, err
	}
	return r.with(upstream), nil
}

func (r RedoCheckpoint) Contents() []*generators.Content {
	return r.upstream.Contents()
}

func (r RedoCheckpoint) SystemPrompt() string {
	return r.upstream.SystemPrompt()
}

func (r RedoCheckpoint) Unwrap() generators.State {
	return r.upstream
}
