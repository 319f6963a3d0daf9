package protocols

import "github.com/reusee/pane/grids"

// Event is a single protocol occurrence recognized in the stream.
type Event interface {
	isEvent()
}

// ProjectName renames the project.
type ProjectName struct {
	Name string
}

func (ProjectName) isEvent() {}

// ProjectIcon sets the project icon, usually a single emoji.
type ProjectIcon struct {
	Icon string
}

func (ProjectIcon) isEvent() {}

// Message is a chat message addressed to the user. It is not part of
// any screen.
type Message struct {
	Text string
}

func (Message) isEvent() {}

type ScreenMode uint8

const (
	ScreenCreate ScreenMode = iota
	ScreenEdit
)

// ScreenOpened begins a screen block. Everything until the matching
// ScreenClosed is the screen's markup.
type ScreenOpened struct {
	Name    string
	Mode    ScreenMode
	Cell    grids.Cell
	HasCell bool
	Root    bool
}

func (ScreenOpened) isEvent() {}

// ScreenContent is a run of markup bytes inside a screen block.
type ScreenContent struct {
	Chunk string
}

func (ScreenContent) isEvent() {}

// ScreenClosed ends the open screen block.
type ScreenClosed struct{}

func (ScreenClosed) isEvent() {}
