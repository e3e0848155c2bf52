package parser

import "fmt"

// ParseError is implemented by every error returned from a parse. Offset
// reports the zero-based byte position in the original input where the
// problem was detected. Errors hold no reference into the input beyond
// that integer.
type ParseError interface {
	error
	Offset() int
}

// DepthExceededError reports a tag open that would nest deeper than
// Limits.MaxDepth. Pos is the offset of the opening '{' of the tag that
// would have over-nested.
type DepthExceededError struct {
	Limit int
	Pos   int
}

func (e *DepthExceededError) Error() string {
	return fmt.Sprintf("recursion depth exceeded (limit %d) at offset %d", e.Limit, e.Pos)
}

// Offset returns the byte offset of the violating tag open.
func (e *DepthExceededError) Offset() int { return e.Pos }

// NodeLimitExceededError reports a node whose construction would exceed
// Limits.MaxNodes. Pos is the start offset of that node.
type NodeLimitExceededError struct {
	Limit int
	Pos   int
}

func (e *NodeLimitExceededError) Error() string {
	return fmt.Sprintf("node limit exceeded (limit %d) at offset %d", e.Limit, e.Pos)
}

// Offset returns the start offset of the node that crossed the limit.
func (e *NodeLimitExceededError) Offset() int { return e.Pos }

// UnclosedVariableError reports end of input reached while inside a tag.
// Pos is the open position of the unterminated tag.
type UnclosedVariableError struct {
	Pos int
}

func (e *UnclosedVariableError) Error() string {
	return fmt.Sprintf("unclosed variable tag at offset %d", e.Pos)
}

// Offset returns the open position of the unterminated tag.
func (e *UnclosedVariableError) Offset() int { return e.Pos }

// EmptyVariableError reports a tag that closed with no content, i.e. `{{}}`.
// Pos is the open position of the empty tag.
type EmptyVariableError struct {
	Pos int
}

func (e *EmptyVariableError) Error() string {
	return fmt.Sprintf("empty variable tag at offset %d", e.Pos)
}

// Offset returns the open position of the empty tag.
func (e *EmptyVariableError) Offset() int { return e.Pos }

// UnbalancedTagError signals that the engine's depth bookkeeping underflowed
// on exit from a tag. It indicates an internal invariant violation rather
// than a defect in the input. Pos is the tag's open position.
type UnbalancedTagError struct {
	Pos int
}

func (e *UnbalancedTagError) Error() string {
	return fmt.Sprintf("unbalanced variable tag at offset %d", e.Pos)
}

// Offset returns the open position of the tag whose exit underflowed.
func (e *UnbalancedTagError) Offset() int { return e.Pos }
