package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan attaches the span on ctx to err, so the error text names
// the span to search the logs for.
func WrapSpan(ctx context.Context, err error) error {
	span, ok := ctx.Value(SpanKey).(Span)
	if !ok {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", span))
}
