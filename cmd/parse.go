package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/conneroisu/mstparse/internal/config"
	"github.com/conneroisu/mstparse/internal/logging"
	"github.com/conneroisu/mstparse/pkg/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse [template]",
	Short: "Parse a template into its AST",
	Long: `Parse tokenizes a mustache-style template into text and variable nodes
and prints the resulting AST, or a located error when the input is malformed
or exceeds the configured limits.

The template comes from the first argument, from --file, or from stdin when
either is '-'.

Examples:
  mstparse parse 'Hello {{name}}!'
  mstparse parse '{{key.{{sub}}}}' --output json
  mstparse parse --file template.mst --max-depth 2
  echo 'Hi {{who}}' | mstparse parse -`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: bindConfigFlags,
	RunE:    runParse,
}

var parseFile string

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseFile, "file", "f", "", "read the template from a file ('-' for stdin)")
	addLimitFlags(parseCmd.Flags())
	addOutputFlags(parseCmd.Flags())
	addTraceFlag(parseCmd.Flags())
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger(cfg).WithComponent("cli")

	input, err := readTemplate(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	p := parser.New(cfg.ParserLimits(), parserOptions(cfg, logger)...)

	nodes, err := p.Parse(input)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), describeParseError(input, err))
		return err
	}

	logger.Debug(cmd.Context(), "parse succeeded",
		"input_bytes", len(input), "top_level_nodes", len(nodes))

	return printNodes(cmd.OutOrStdout(), nodes, cfg.Output.Format)
}

// parserOptions assembles parser options from the configuration; currently
// just the optional trace sink.
func parserOptions(cfg *config.Config, logger logging.Logger) []parser.Option {
	if !cfg.Log.Trace {
		return nil
	}
	return []parser.Option{parser.WithTracer(logging.NewTraceSink(logger))}
}

// readTemplate resolves the template text from --file, the positional
// argument, or stdin.
func readTemplate(stdin io.Reader, args []string) (string, error) {
	if parseFile != "" {
		if parseFile == "-" {
			return readAll(stdin)
		}
		data, err := os.ReadFile(parseFile)
		if err != nil {
			return "", fmt.Errorf("failed to read template file: %w", err)
		}
		return string(data), nil
	}

	if len(args) == 0 {
		return "", fmt.Errorf("no template given: pass one as an argument, via --file, or '-' for stdin")
	}
	if args[0] == "-" {
		return readAll(stdin)
	}
	return args[0], nil
}

func readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
