package logs

import (
	"io"
	"os"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// Writer is where the text handler prints. Tests fork it to a buffer.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}

type Span string

type spanKeyType struct{}

var SpanKey spanKeyType
