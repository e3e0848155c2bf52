package parser

import (
	"context"
	"log/slog"
)

// Tracer receives diagnostic events from the parser as it works. It is a
// pure side channel: installing a Tracer never changes the returned AST or
// error, and implementations must not block.
//
// depth is the number of currently open tags when the event fires; offset
// is the byte position of the node or tag the event describes.
type Tracer interface {
	// TextFlushed fires when a literal text run is emitted as a Text node.
	TextFlushed(depth, offset int, text string)
	// EnterVariable fires after the parser commits to a `{{` open.
	EnterVariable(depth, offset int)
	// ExitVariable fires once the matching `}}` has been consumed.
	ExitVariable(depth, offset int)
}

// NopTracer discards all events. It is the default for every Parser.
type NopTracer struct{}

func (NopTracer) TextFlushed(depth, offset int, text string) {}
func (NopTracer) EnterVariable(depth, offset int)            {}
func (NopTracer) ExitVariable(depth, offset int)             {}

// SlogTracer emits parse events to a slog.Logger at debug level.
type SlogTracer struct {
	Logger *slog.Logger
}

// NewSlogTracer returns a tracer writing to logger, or to slog.Default()
// when logger is nil.
func NewSlogTracer(logger *slog.Logger) *SlogTracer {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogTracer{Logger: logger}
}

func (t *SlogTracer) TextFlushed(depth, offset int, text string) {
	t.Logger.LogAttrs(context.Background(), slog.LevelDebug, "parsed text node",
		slog.Int("depth", depth),
		slog.Int("offset", offset),
		slog.String("text", text),
	)
}

func (t *SlogTracer) EnterVariable(depth, offset int) {
	t.Logger.LogAttrs(context.Background(), slog.LevelDebug, "entering variable",
		slog.Int("depth", depth),
		slog.Int("offset", offset),
	)
}

func (t *SlogTracer) ExitVariable(depth, offset int) {
	t.Logger.LogAttrs(context.Background(), slog.LevelDebug, "exiting variable",
		slog.Int("depth", depth),
		slog.Int("offset", offset),
	)
}
