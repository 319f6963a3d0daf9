package logs

import (
	"context"
	"log/slog"
)

// Handler decorates another handler, stamping every record with the
// span carried by the context.
type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if span, ok := ctx.Value(SpanKey).(Span); ok {
		record.Add("logs.span", span)
	}
	return h.Handler.Handle(ctx, record)
}
