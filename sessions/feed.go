package sessions

import (
	"github.com/reusee/pane/generators"
)

// Feed is a state decorator that copies the model's own text into the
// session transcript as it streams in. Thoughts, user turns, and log
// entries never reach the protocol buffer.
type Feed struct {
	upstream generators.State
	session  *Session
}

func NewFeed(upstream generators.State, session *Session) Feed {
	return Feed{
		upstream: upstream,
		session:  session,
	}
}

var _ generators.State = Feed{}

func (f Feed) AppendContent(content *generators.Content) (generators.State, error) {
	switch content.Role {
	case generators.RoleModel, generators.RoleAssistant:
		for _, part := range content.Parts {
			text, ok := part.(generators.Text)
			if !ok {
				continue
			}
			if _, err := f.session.Write([]byte(text)); err != nil {
				return nil, err
			}
		}
	}
	upstream, err := f.upstream.AppendContent(content)
	if err != nil {
		return nil, err
	}
	return Feed{
		upstream: upstream,
		session:  f.session,
	}, nil
}

func (f Feed) Contents() []*generators.Content {
	return f.upstream.Contents()
}

func (f Feed) SystemPrompt() string {
	return f.upstream.SystemPrompt()
}

func (f Feed) Flush() (generators.State, error) {
	upstream, err := f.upstream.Flush()
	if err != nil {
		return nil, err
	}
	return Feed{
		upstream: upstream,
		session:  f.session,
	}, nil
}

func (f Feed) Unwrap() generators.State {
	return f.upstream
}
