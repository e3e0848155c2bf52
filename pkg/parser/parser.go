package parser

// Parser parses template text under a fixed Limits configuration. A Parser
// is immutable after construction and safe for concurrent use: every Parse
// call allocates its own bookkeeping state and shares nothing across calls.
type Parser struct {
	limits Limits
	tracer Tracer
}

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithTracer installs a diagnostic event sink on the parser. The tracer is
// a side channel only; it has no effect on parse results.
func WithTracer(t Tracer) Option {
	return func(p *Parser) {
		if t != nil {
			p.tracer = t
		}
	}
}

// New returns a Parser bound to the given limits.
func New(limits Limits, opts ...Option) *Parser {
	p := &Parser{limits: limits, tracer: NopTracer{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses input into its ordered top-level nodes under limits. It is a
// stateless convenience wrapper around New(limits).Parse(input).
func Parse(input string, limits Limits) ([]Node, error) {
	return New(limits).Parse(input)
}

// Parse scans input once, left to right, and returns its ordered top-level
// nodes. On the first limit violation or malformed tag it aborts and
// returns an error implementing ParseError; no partial result is returned.
//
// An unmatched `}}` at the top level is ordinary text, not an error; only
// inside an open tag does `}}` act as a delimiter.
func (p *Parser) Parse(input string) ([]Node, error) {
	tracer := p.tracer
	if tracer == nil {
		tracer = NopTracer{}
	}
	s := &scanner{
		input: input,
		state: parserState{
			maxDepth: p.limits.MaxDepth,
			maxNodes: p.limits.MaxNodes,
		},
		tracer: tracer,
	}
	return s.parseLevel(topLevel)
}

// parserState carries the limit bookkeeping shared by every recursion level
// of a single parse. It never escapes the call that created it.
type parserState struct {
	nodeCount int
	depth     int
	maxDepth  int
	maxNodes  int
}

func (st *parserState) countNode(offset int) error {
	if st.nodeCount >= st.maxNodes {
		return &NodeLimitExceededError{Limit: st.maxNodes, Pos: offset}
	}
	st.nodeCount++
	return nil
}

func (st *parserState) enterDepth(offset int) error {
	if st.depth >= st.maxDepth {
		return &DepthExceededError{Limit: st.maxDepth, Pos: offset}
	}
	st.depth++
	return nil
}

func (st *parserState) exitDepth(offset int) error {
	if st.depth == 0 {
		return &UnbalancedTagError{Pos: offset}
	}
	st.depth--
	return nil
}

// topLevel marks a parseLevel call that is not inside any tag.
const topLevel = -1

// scanner walks the input bytewise with one byte of lookahead. Both
// delimiters are ASCII, so multibyte UTF-8 sequences pass through text
// spans untouched and all offsets are exact byte positions.
type scanner struct {
	input  string
	pos    int
	state  parserState
	tracer Tracer
}

func (s *scanner) peek() byte {
	if s.pos+1 < len(s.input) {
		return s.input[s.pos+1]
	}
	return 0
}

// parseLevel consumes input until end of input (top level only) or the `}}`
// closing the tag opened at openOffset, returning the nodes found at this
// level. openOffset is topLevel when not inside a tag.
func (s *scanner) parseLevel(openOffset int) ([]Node, error) {
	var nodes []Node

	// Start offset of the in-progress literal text run, -1 when none. The
	// run ends wherever it is flushed; no per-byte work happens in between.
	textStart := -1

	flush := func(end int) error {
		if textStart < 0 {
			return nil
		}
		content := s.input[textStart:end]
		if err := s.state.countNode(textStart); err != nil {
			return err
		}
		s.tracer.TextFlushed(s.state.depth, textStart, content)
		nodes = append(nodes, &Text{Content: content})
		textStart = -1
		return nil
	}

	for s.pos < len(s.input) {
		switch {
		case s.input[s.pos] == '{' && s.peek() == '{':
			open := s.pos
			if err := flush(open); err != nil {
				return nil, err
			}
			s.pos += 2
			// The Variable node itself counts before its children do.
			if err := s.state.countNode(open); err != nil {
				return nil, err
			}
			if err := s.state.enterDepth(open); err != nil {
				return nil, err
			}
			s.tracer.EnterVariable(s.state.depth, open)
			parts, err := s.parseLevel(open)
			if err != nil {
				return nil, err
			}
			s.tracer.ExitVariable(s.state.depth, open)
			if err := s.state.exitDepth(open); err != nil {
				return nil, err
			}
			nodes = append(nodes, &Variable{Parts: parts})

		case openOffset != topLevel && s.input[s.pos] == '}' && s.peek() == '}':
			if err := flush(s.pos); err != nil {
				return nil, err
			}
			s.pos += 2
			if len(nodes) == 0 {
				return nil, &EmptyVariableError{Pos: openOffset}
			}
			return nodes, nil

		default:
			if textStart < 0 {
				textStart = s.pos
			}
			s.pos++
		}
	}

	if openOffset != topLevel {
		return nil, &UnclosedVariableError{Pos: openOffset}
	}
	if err := flush(len(s.input)); err != nil {
		return nil, err
	}
	return nodes, nil
}
