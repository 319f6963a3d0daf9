package generators

// deltaFlushBytes bounds how much text a DeltaParser buffers before
// handing a content downstream, keeping terminal echo and screen
// re-parsing responsive on slow streams.
const deltaFlushBytes = 64

// DeltaParser folds chat completion deltas into Contents. Deltas
// arrive fragmented: the role may come alone, text and reasoning
// interleave, and a token may span chunks. The parser merges
// fragments of a kind, cuts a content on role change, and flushes
// whenever the buffered run grows past deltaFlushBytes.
type DeltaParser struct {
	current *Content
}

func (p *DeltaParser) Input(delta streamDelta) ([]*Content, error) {
	if delta.Role == "" && delta.Content == "" && delta.ReasoningContent == "" {
		return nil, nil
	}

	var ret []*Content
	if p.current == nil {
		p.current = &Content{Role: Role(delta.Role)}
	} else if delta.Role != "" && Role(delta.Role) != p.current.Role {
		ret = append(ret, p.cut(Role(delta.Role)))
	}

	if delta.Content != "" {
		p.current.Parts = appendPart(p.current.Parts, Text(delta.Content))
		if text := p.current.Parts[len(p.current.Parts)-1].(Text); len(text) > deltaFlushBytes {
			ret = append(ret, p.cut(p.current.Role))
		}
	}
	if delta.ReasoningContent != "" {
		p.current.Parts = appendPart(p.current.Parts, Thought(delta.ReasoningContent))
		if thought := p.current.Parts[len(p.current.Parts)-1].(Thought); len(thought) > deltaFlushBytes {
			ret = append(ret, p.cut(p.current.Role))
		}
	}

	return ret, nil
}

// cut closes the current content and starts a fresh one with the
// given role.
func (p *DeltaParser) cut(role Role) *Content {
	done := p.current
	p.current = &Content{Role: role}
	return done
}

// End flushes whatever remains buffered.
func (p *DeltaParser) End() ([]*Content, error) {
	if p.current == nil {
		return nil, nil
	}
	done := p.current
	p.current = nil
	return []*Content{done}, nil
}
