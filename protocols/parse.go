package protocols

import (
	"slices"

	"github.com/reusee/pane/grids"
)

const Theory = `
# Replay Instead of Increments

Every parser invocation receives the full buffer accumulated so far and recomputes the result from scratch in one linear pass. No state survives between invocations, so chunk boundaries are invisible: the result is a pure function of the bytes, never of their arrival pattern. Re-scanning a chat-sized buffer is cheap next to the token stream producing it.

1. **Delimiters**: a comment is a delimiter only when both markers are present and its body matches the uppercase keyword shape. A trailing open marker without its close marker is withheld as unconsumed tail, never mis-read as content.

2. **Provisional content**: while a screen is open, everything after its opening delimiter belongs to its markup, including the growing buffer tail. A live preview can render a screen long before it closes.

3. **Identity**: screens are identified by the id derived from their display name. Re-declaring a name replaces the markup but keeps the insertion order, so iterating on a screen never reorders the canvas.
`

// Screen is the parsed state of one declared screen.
type Screen struct {
	Name   string
	ID     string
	Markup string
	Cell   grids.Cell
	Root   bool
	// Open reports that the closing delimiter has not arrived yet and
	// Markup is still provisional.
	Open bool
}

// Result is the project state reduced from a buffer. Screens is in
// creation order.
type Result struct {
	Name      string
	Icon      string
	Messages  []string
	Screens   []Screen
	Anomalies []Anomaly
	Tail      string
}

// ByID returns the screen with the given derived id, or nil.
func (r *Result) ByID(id string) *Screen {
	i := slices.IndexFunc(r.Screens, func(s Screen) bool {
		return s.ID == id
	})
	if i < 0 {
		return nil
	}
	return &r.Screens[i]
}

// Parse reduces the whole buffer to the current project state. It
// never fails: protocol violations degrade into Anomalies.
func Parse(buffer string) *Result {
	events, tail := Tokenize(buffer)

	ret := &Result{
		Tail: tail,
	}

	// index of the open screen, -1 when none
	open := -1

	for _, event := range events {
		switch event := event.(type) {

		case ProjectName:
			ret.Name = event.Name

		case ProjectIcon:
			ret.Icon = event.Icon

		case Message:
			ret.Messages = append(ret.Messages, event.Text)

		case ScreenOpened:
			if open >= 0 {
				ret.Anomalies = append(ret.Anomalies, Anomaly{
					Kind:   AnomalyUnterminatedScreen,
					Screen: ret.Screens[open].Name,
				})
				ret.Screens[open].Open = false
				open = -1
			}

			id := DeriveID(event.Name)
			idx := slices.IndexFunc(ret.Screens, func(s Screen) bool {
				return s.ID == id
			})

			switch event.Mode {

			case ScreenEdit:
				if event.HasCell {
					ret.Anomalies = append(ret.Anomalies, Anomaly{
						Kind:   AnomalyEditWithPosition,
						Screen: event.Name,
					})
				}
				if idx < 0 {
					ret.Anomalies = append(ret.Anomalies, Anomaly{
						Kind:   AnomalyEditUnknownScreen,
						Screen: event.Name,
					})
					ret.Screens = append(ret.Screens, Screen{
						Name: event.Name,
						ID:   id,
						Open: true,
					})
					open = len(ret.Screens) - 1
				} else {
					ret.Screens[idx].Markup = ""
					ret.Screens[idx].Open = true
					open = idx
				}

			case ScreenCreate:
				if idx >= 0 {
					// re-declared id, edit semantics
					if ret.Screens[idx].Name != event.Name {
						ret.Anomalies = append(ret.Anomalies, Anomaly{
							Kind:   AnomalyIDCollision,
							Screen: event.Name,
						})
					}
					screen := &ret.Screens[idx]
					screen.Name = event.Name
					screen.Markup = ""
					screen.Open = true
					if event.HasCell {
						screen.Cell = event.Cell
					}
					open = idx
				} else {
					ret.Screens = append(ret.Screens, Screen{
						Name: event.Name,
						ID:   id,
						Cell: event.Cell,
						Open: true,
					})
					open = len(ret.Screens) - 1
					idx = open
				}
				if event.Root {
					for i := range ret.Screens {
						ret.Screens[i].Root = false
					}
					ret.Screens[idx].Root = true
				}

			}

		case ScreenContent:
			if open >= 0 {
				ret.Screens[open].Markup += event.Chunk
			}
			// content outside any screen is narration, dropped

		case ScreenClosed:
			if open >= 0 {
				ret.Screens[open].Open = false
				open = -1
			}

		}
	}

	return ret
}
