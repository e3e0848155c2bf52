package parser

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Node is a single element of a parsed template: either a literal Text
// segment or a Variable tag. Nodes compare equal by value and print a
// debug representation via String.
type Node interface {
	fmt.Stringer

	// writeSource appends the node's original template source to b.
	writeSource(b *strings.Builder)
}

// Text is a literal text segment between or around variable tags.
type Text struct {
	Content string
}

// Variable is a `{{...}}` tag. Parts holds the parsed content between the
// delimiters in document order and may itself contain Variable nodes.
// A Variable produced by a successful parse always has at least one part.
type Variable struct {
	Parts []Node
}

func (t *Text) String() string {
	return fmt.Sprintf("Text(%q)", t.Content)
}

func (v *Variable) String() string {
	parts := make([]string, len(v.Parts))
	for i, p := range v.Parts {
		parts[i] = p.String()
	}
	return fmt.Sprintf("Variable(%s)", strings.Join(parts, ", "))
}

func (t *Text) writeSource(b *strings.Builder) {
	b.WriteString(t.Content)
}

func (v *Variable) writeSource(b *strings.Builder) {
	b.WriteString("{{")
	for _, p := range v.Parts {
		p.writeSource(b)
	}
	b.WriteString("}}")
}

// Reconstruct renders nodes back into template source. For the result of a
// successful parse it reproduces the original input exactly.
func Reconstruct(nodes []Node) string {
	var b strings.Builder
	for _, n := range nodes {
		n.writeSource(&b)
	}
	return b.String()
}

// encodedNode is the wire shape shared by the JSON and YAML encodings.
type encodedNode struct {
	Type    string `json:"type"              yaml:"type"`
	Content string `json:"content,omitempty" yaml:"content,omitempty"`
	Parts   []Node `json:"parts,omitempty"   yaml:"parts,omitempty"`
}

// MarshalJSON encodes the node as {"type":"text","content":...}.
func (t *Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(encodedNode{Type: "text", Content: t.Content})
}

// MarshalJSON encodes the node as {"type":"variable","parts":[...]}.
func (v *Variable) MarshalJSON() ([]byte, error) {
	return json.Marshal(encodedNode{Type: "variable", Parts: v.Parts})
}

// MarshalYAML encodes the node for gopkg.in/yaml.v3.
func (t *Text) MarshalYAML() (interface{}, error) {
	return encodedNode{Type: "text", Content: t.Content}, nil
}

// MarshalYAML encodes the node for gopkg.in/yaml.v3.
func (v *Variable) MarshalYAML() (interface{}, error) {
	return encodedNode{Type: "variable", Parts: v.Parts}, nil
}

// Limits bounds the resources a single parse may consume. Both values are
// checked at the moment a node would be created or a tag entered, so a
// violating parse fails at the exact input position that crossed the limit.
//
// A zero value is legal: MaxNodes of 0 means the first node construction
// fails, MaxDepth of 0 means the first tag open fails.
type Limits struct {
	// MaxDepth is the maximum allowed nesting depth of variables.
	MaxDepth int `json:"max_depth" yaml:"max_depth"`
	// MaxNodes is the maximum allowed total node count across the parse.
	MaxNodes int `json:"max_nodes" yaml:"max_nodes"`
}

// DefaultLimits returns the default resource limits: depth 5, nodes 50.
func DefaultLimits() Limits {
	return Limits{MaxDepth: 5, MaxNodes: 50}
}
