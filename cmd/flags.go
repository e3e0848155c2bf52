package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/conneroisu/mstparse/pkg/parser"
)

// addLimitFlags registers the parser limit flags on fs.
func addLimitFlags(fs *pflag.FlagSet) {
	defaults := parser.DefaultLimits()
	fs.Int("max-depth", defaults.MaxDepth, "maximum variable nesting depth (0 forbids any tag)")
	fs.Int("max-nodes", defaults.MaxNodes, "maximum total AST nodes (0 forbids any node)")
}

// addOutputFlags registers the result formatting flags on fs.
func addOutputFlags(fs *pflag.FlagSet) {
	fs.StringP("output", "o", "text", "output format (text|json|yaml)")
}

// addTraceFlag registers the parser trace toggle on fs.
func addTraceFlag(fs *pflag.FlagSet) {
	fs.Bool("trace", false, "log parser trace events (requires --log-level debug)")
}

// bindConfigFlags binds the executed command's flags to their viper keys.
// Binding at run time rather than in init keeps sibling commands that share
// flag names from clobbering each other's bindings.
func bindConfigFlags(cmd *cobra.Command, _ []string) error {
	bindings := map[string]string{
		"limits.max_depth": "max-depth",
		"limits.max_nodes": "max-nodes",
		"output.format":    "output",
		"log.trace":        "trace",
	}
	for key, name := range bindings {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if err := viper.BindPFlag(key, flag); err != nil {
			return err
		}
	}
	return nil
}
