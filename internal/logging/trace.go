package logging

import (
	"context"

	"github.com/conneroisu/mstparse/pkg/parser"
)

// TraceSink forwards parser trace events to a Logger at debug level. It
// implements parser.Tracer and is a pure side channel: it never influences
// parse results.
type TraceSink struct {
	logger Logger
}

var _ parser.Tracer = (*TraceSink)(nil)

// NewTraceSink returns a trace sink writing to logger.
func NewTraceSink(logger Logger) *TraceSink {
	return &TraceSink{logger: logger.WithComponent("parser")}
}

func (t *TraceSink) TextFlushed(depth, offset int, text string) {
	t.logger.Debug(context.Background(), "parsed text node",
		"depth", depth, "offset", offset, "text", text)
}

func (t *TraceSink) EnterVariable(depth, offset int) {
	t.logger.Debug(context.Background(), "entering variable",
		"depth", depth, "offset", offset)
}

func (t *TraceSink) ExitVariable(depth, offset int) {
	t.logger.Debug(context.Background(), "exiting variable",
		"depth", depth, "offset", offset)
}
