// Package parser implements a recursive descent parser for mustache-style
// `{{variable}}` template syntax, including nested variables such as
// `{{key.{{sub}}}}`. It tokenizes input into an AST of Text and Variable
// nodes and performs no rendering or substitution.
//
// Parsing is bounded by a Limits value: MaxDepth caps how deeply variables
// may nest and MaxNodes caps the total number of AST nodes produced, so
// adversarial input cannot drive the parser into unbounded recursion or
// memory growth. Every parse error carries the byte offset in the original
// input where the problem was detected.
//
// Basic usage:
//
//	nodes, err := parser.Parse("Hello {{user.{{attr}}}}!", parser.DefaultLimits())
//	if err != nil {
//		// err implements parser.ParseError and reports a byte offset
//	}
//
// A Parser value binds a Limits configuration for reuse across many inputs.
// Parsers are immutable and safe for concurrent use; each Parse call keeps
// its bookkeeping state private to that call.
package parser
