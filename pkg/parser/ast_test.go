package parser

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultLimits(t *testing.T) {
	limits := DefaultLimits()
	assert.Equal(t, 5, limits.MaxDepth)
	assert.Equal(t, 50, limits.MaxNodes)
}

func TestNodeString(t *testing.T) {
	node := &Variable{Parts: []Node{
		&Text{Content: "key."},
		&Variable{Parts: []Node{&Text{Content: "sub"}}},
	}}

	assert.Equal(t, `Variable(Text("key."), Variable(Text("sub")))`, node.String())
	assert.Equal(t, `Text("a\"b")`, (&Text{Content: `a"b`}).String())
}

func TestReconstruct(t *testing.T) {
	inputs := []string{
		"",
		"Hello World",
		"Hello {{name}}!",
		"{{key.{{sub}}}}",
		"Config: {{service.{{env}}.port}}",
		"hello}}world",
		"{{a}}}}",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			nodes, err := Parse(input, DefaultLimits())
			require.NoError(t, err)
			assert.Equal(t, input, Reconstruct(nodes))
		})
	}
}

func TestNodeMarshalJSON(t *testing.T) {
	nodes, err := Parse("Hi {{name}}", DefaultLimits())
	require.NoError(t, err)

	data, err := json.Marshal(nodes)
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"type":"text","content":"Hi "},{"type":"variable","parts":[{"type":"text","content":"name"}]}]`,
		string(data))
}

func TestNodeMarshalYAML(t *testing.T) {
	nodes, err := Parse("Hi {{name}}", DefaultLimits())
	require.NoError(t, err)

	data, err := yaml.Marshal(nodes)
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "text", decoded[0]["type"])
	assert.Equal(t, "Hi ", decoded[0]["content"])
	assert.Equal(t, "variable", decoded[1]["type"])
}
