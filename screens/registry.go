package screens

import (
	"slices"

	"github.com/reusee/pane/protocols"
)

// Registry is the ordered, id-keyed store of the project's screens.
// It does no locking: each session has a single writer, and readers
// go through the session.
type Registry struct {
	screens []*Screen
	index   map[string]*Screen
}

func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]*Screen),
	}
}

// Upsert folds one parsed screen into the registry. A new id appends
// with the next order, a known id is updated in place keeping its
// order. Flagging a screen root clears the flag everywhere else.
func (r *Registry) Upsert(s protocols.Screen) *Screen {
	screen, ok := r.index[s.ID]
	if !ok {
		screen = &Screen{
			ID:    s.ID,
			Order: len(r.screens),
		}
		r.screens = append(r.screens, screen)
		r.index[s.ID] = screen
	}
	screen.Name = s.Name
	screen.Markup = s.Markup
	screen.GridColumn = s.Cell.Column
	screen.GridRow = s.Cell.Row
	screen.Root = s.Root
	if screen.Root {
		for _, other := range r.screens {
			if other != screen {
				other.Root = false
			}
		}
	}
	return screen
}

// Rebuild replaces the whole registry with a parser snapshot. The
// parser re-reads the full buffer on every pass, so the registry
// follows wholesale instead of tracking increments.
func (r *Registry) Rebuild(result *protocols.Result) {
	r.screens = r.screens[:0]
	clear(r.index)
	for _, screen := range result.Screens {
		r.Upsert(screen)
	}
}

// All returns the screens in creation order.
func (r *Registry) All() []*Screen {
	return slices.Clone(r.screens)
}

// Root returns the screen to show first: the explicitly root-flagged
// one, else the first created, else nil.
func (r *Registry) Root() *Screen {
	for _, screen := range r.screens {
		if screen.Root {
			return screen
		}
	}
	if len(r.screens) > 0 {
		return r.screens[0]
	}
	return nil
}

func (r *Registry) ByID(id string) *Screen {
	return r.index[id]
}

func (r *Registry) Len() int {
	return len(r.screens)
}
