package generators

// Content is one turn of the conversation: a role plus its parts.
type Content struct {
	Role  Role
	Parts []Part
}

// appendPart appends part to parts, coalescing consecutive Text parts
// and consecutive Thought parts so streamed fragments read as one run.
func appendPart(parts []Part, part Part) []Part {
	if n := len(parts); n > 0 {
		switch prev := parts[n-1].(type) {
		case Text:
			if text, ok := part.(Text); ok {
				parts[n-1] = prev + text
				return parts
			}
		case Thought:
			if thought, ok := part.(Thought); ok {
				parts[n-1] = prev + thought
				return parts
			}
		}
	}
	return append(parts, part)
}

// Merge combines two turns of the same role into one, coalescing
// adjacent text and thought runs. Reports false when the roles differ.
func (c Content) Merge(c2 *Content) (*Content, bool) {
	if c.Role != c2.Role {
		return nil, false
	}
	var parts []Part
	for _, part := range c.Parts {
		parts = appendPart(parts, part)
	}
	for _, part := range c2.Parts {
		parts = appendPart(parts, part)
	}
	return &Content{
		Role:  c.Role,
		Parts: parts,
	}, true
}
