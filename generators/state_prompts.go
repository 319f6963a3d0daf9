package generators

import (
	"fmt"
	"slices"
)

// Prompts is the root of every state stack: the system prompt plus
// the accumulated turns. It terminates Unwrap with nil.
type Prompts struct {
	system string
	turns  []*Content
}

func NewPrompts(system string, turns []*Content) Prompts {
	return Prompts{
		system: system,
		turns:  turns,
	}
}

var _ State = Prompts{}

func (p Prompts) SystemPrompt() string {
	return p.system
}

func (p Prompts) Contents() []*Content {
	return p.turns
}

func (p Prompts) AppendContent(content *Content) (State, error) {
	if content.Role == "" {
		panic(fmt.Errorf("content with no role: %+v", content))
	}
	turns := slices.Clone(p.turns)
	if n := len(turns); n > 0 {
		if merged, ok := turns[n-1].Merge(content); ok {
			turns[n-1] = merged
			p.turns = turns
			return p, nil
		}
	}
	p.turns = append(turns, content)
	return p, nil
}

func (p Prompts) Flush() (State, error) {
	return p, nil
}

func (p Prompts) Unwrap() State {
	return nil
}
