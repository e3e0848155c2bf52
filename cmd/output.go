package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/conneroisu/mstparse/pkg/parser"
)

// printNodes writes the AST to w in the requested format.
func printNodes(w io.Writer, nodes []parser.Node, format string) error {
	if nodes == nil {
		nodes = []parser.Node{}
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(nodes, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode AST as JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case "yaml":
		data, err := yaml.Marshal(nodes)
		if err != nil {
			return fmt.Errorf("failed to encode AST as YAML: %w", err)
		}
		_, err = fmt.Fprint(w, string(data))
		return err

	default:
		writeTree(w, nodes, 0)
		return nil
	}
}

// writeTree prints one node per line, indenting variable children.
func writeTree(w io.Writer, nodes []parser.Node, depth int) {
	prefix := strings.Repeat("  ", depth)
	for _, n := range nodes {
		switch n := n.(type) {
		case *parser.Text:
			fmt.Fprintf(w, "%sText %q\n", prefix, n.Content)
		case *parser.Variable:
			fmt.Fprintf(w, "%sVariable\n", prefix)
			writeTree(w, n.Parts, depth+1)
		}
	}
}

// describeParseError renders a parse failure with its byte offset and a
// caret marker into the offending input line.
func describeParseError(input string, err error) string {
	perr, ok := err.(parser.ParseError)
	if !ok {
		return err.Error()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "parse error: %s\n", perr.Error())

	// Show the input with a caret under the reported offset. Inputs are
	// typically short templates; truncate long ones around the offset.
	display := input
	offset := perr.Offset()
	const window = 60
	start := 0
	if offset > window {
		start = offset - window
		display = "..." + input[start:]
		offset = offset - start + 3
	}
	if len(display) > offset+window {
		display = display[:offset+window] + "..."
	}
	display = strings.ReplaceAll(display, "\n", " ")
	display = strings.ReplaceAll(display, "\t", " ")

	fmt.Fprintf(&b, "  %s\n", display)
	fmt.Fprintf(&b, "  %s^", strings.Repeat(" ", offset))
	return b.String()
}
