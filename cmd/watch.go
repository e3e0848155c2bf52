package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/conneroisu/mstparse/internal/config"
	"github.com/conneroisu/mstparse/internal/watcher"
	"github.com/conneroisu/mstparse/pkg/parser"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-parse a template file whenever it changes",
	Long: `Watch parses the given template file immediately and again after every
save, printing the AST or a located parse error each time. Parse failures
are reported but do not stop the watch; interrupt with Ctrl-C.

Examples:
  mstparse watch template.mst
  mstparse watch template.mst --output json --max-nodes 20`,
	Args:    cobra.ExactArgs(1),
	PreRunE: bindConfigFlags,
	RunE:    runWatch,
}

var watchDebounce time.Duration

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond, "delay before re-parsing after a change")
	addLimitFlags(watchCmd.Flags())
	addOutputFlags(watchCmd.Flags())
	addTraceFlag(watchCmd.Flags())
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger(cfg).WithComponent("watch")

	p := parser.New(cfg.ParserLimits(), parserOptions(cfg, logger)...)

	parseOnce := func(path string) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %q: %w", path, err)
		}
		input := string(data)

		nodes, err := p.Parse(input)
		if err != nil {
			// Report and keep watching; the next save may fix it.
			fmt.Fprintln(cmd.ErrOrStderr(), describeParseError(input, err))
			return nil
		}
		return printNodes(cmd.OutOrStdout(), nodes, cfg.Output.Format)
	}

	if err := parseOnce(args[0]); err != nil {
		return err
	}

	fw, err := watcher.New(args[0], watchDebounce)
	if err != nil {
		return err
	}
	defer fw.Stop()
	fw.AddHandler(parseOnce)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "watching template", "path", args[0], "debounce", watchDebounce.String())

	if err := fw.Start(ctx); err != nil && !errors.Is(err, ctx.Err()) {
		return err
	}
	return nil
}
