package generators

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const Theory = `
# Live Output

Output mirrors the conversation to a writer while the stream is still
in flight. The screen registry receives the same bytes through the
state stack, so what the terminal shows is exactly what gets
re-parsed into screens.

Chunking is arbitrary. A turn may arrive split across many appends, a
reasoning span may open in one chunk and close ten chunks later, and a
markup delimiter may straddle two writes. Output therefore keeps only
two pieces of memory between appends: the last role written, to insert
a blank line when the speaker changes, and whether a <think> block is
open, to balance the tags no matter where the stream was cut.

Styling is terminal-only. When the writer is not a TTY the stream
stays clean of escape codes, so transcripts piped to files or into the
preview server carry markup and nothing else.
`

// Output mirrors every appended turn to a writer as the stream
// arrives. See Theory.
type Output struct {
	upstream State
	w        io.Writer
	tty      bool
	thoughts bool

	lastRole Role
	thinking bool
}

func NewOutput(upstream State, w io.Writer, showThoughts bool) Output {
	tty := false
	if f, ok := w.(*os.File); ok {
		tty = term.IsTerminal(int(f.Fd()))
	}
	return Output{
		upstream: upstream,
		w:        w,
		tty:      tty,
		thoughts: showThoughts,
	}
}

var _ State = Output{}

// ANSI styles per role, applied only when writing to a terminal.
const (
	styleReset   = "\033[0m"
	styleUser    = "\033[32m"
	styleSystem  = "\033[33m"
	styleLog     = "\033[90m"
	styleThought = "\033[2m"
)

func (s Output) style(role Role, thought bool) string {
	if !s.tty {
		return ""
	}
	if thought {
		return styleThought
	}
	switch role {
	case RoleUser:
		return styleUser
	case RoleSystem:
		return styleSystem
	case RoleLog:
		return styleLog
	case RoleModel, RoleAssistant:
		return styleReset
	}
	return ""
}

// setThinking writes the <think> tag transition, if any.
func (s *Output) setThinking(on bool) error {
	if s.thinking == on {
		return nil
	}
	tag := "<think>\n"
	if !on {
		tag = "\n</think>\n"
	}
	if _, err := io.WriteString(s.w, tag); err != nil {
		return err
	}
	s.thinking = on
	return nil
}

func (s *Output) write(role Role, thought bool, text string) error {
	if err := s.setThinking(thought); err != nil {
		return err
	}
	style := s.style(role, thought)
	if style != "" {
		if _, err := io.WriteString(s.w, style); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(s.w, text); err != nil {
		return err
	}
	if style != "" {
		if _, err := io.WriteString(s.w, styleReset); err != nil {
			return err
		}
	}
	return nil
}

func (s *Output) writePart(role Role, part Part) error {
	switch part := part.(type) {

	case Text:
		return s.write(role, false, string(part))

	case Thought:
		if !s.thoughts {
			return nil
		}
		return s.write(role, true, string(part))

	case FileURL:
		return s.write(role, false, fmt.Sprintf("[file %s]", part))

	case FileContent:
		return s.write(role, false, fmt.Sprintf("[%s, %d bytes]", part.MimeType, len(part.Content)))

	case FinishReason:
		return s.write(role, false, fmt.Sprintf("[finish: %s]", part))

	case Error:
		return s.write(role, false, fmt.Sprintf("[error: %v]", part.Error))

	}
	// usage and unknown parts stay silent
	return nil
}

func (s Output) AppendContent(content *Content) (State, error) {
	next := s

	if next.lastRole != "" && next.lastRole != content.Role {
		if err := next.setThinking(false); err != nil {
			return nil, err
		}
		if _, err := io.WriteString(next.w, "\n\n"); err != nil {
			return nil, err
		}
	}

	for _, part := range content.Parts {
		if err := next.writePart(content.Role, part); err != nil {
			return nil, err
		}
	}
	next.lastRole = content.Role

	upstream, err := next.upstream.AppendContent(content)
	if err != nil {
		return nil, err
	}
	next.upstream = upstream
	return next, nil
}

func (s Output) Flush() (State, error) {
	next := s
	if err := next.setThinking(false); err != nil {
		return nil, err
	}
	if _, err := io.WriteString(next.w, "\n\n"); err != nil {
		return nil, err
	}
	next.lastRole = ""

	upstream, err := next.upstream.Flush()
	if err != nil {
		return nil, err
	}
	next.upstream = upstream
	return next, nil
}

func (s Output) SystemPrompt() string {
	return s.upstream.SystemPrompt()
}

func (s Output) Contents() []*Content {
	return s.upstream.Contents()
}

func (s Output) Unwrap() State {
	return s.upstream
}
