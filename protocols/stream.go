package protocols

import "strings"

// Stream accumulates model output across chunks. It holds nothing but
// the raw bytes: every Feed re-parses the whole buffer, so results
// never depend on how the stream was fragmented.
type Stream struct {
	buffer strings.Builder
}

// Feed appends a chunk and returns the state of the whole buffer.
func (s *Stream) Feed(chunk string) *Result {
	s.buffer.WriteString(chunk)
	return Parse(s.buffer.String())
}

// Buffer returns everything fed so far.
func (s *Stream) Buffer() string {
	return s.buffer.String()
}

func (s *Stream) Len() int {
	return s.buffer.Len()
}
