package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"depscope/internal/traverse"
)

var (
	contextTopic bool
	contextDepth int
	contextCap   int
)

var contextCmd = &cobra.Command{
	Use:   "context <file|topic>",
	Short: "Find the files most related to a file or topic",
	Long: `Resolve the input, then collect files within --depth hops in either
direction. Results are ranked nearest first, then by number of connections,
and cut to --cap entries.

Examples:
  depscope context --topic "payment webhook"
  depscope context src/api/orders.ts --depth 2 --cap 10 --format human`,
	Args: cobra.ExactArgs(1),
	RunE: runContext,
}

func init() {
	contextCmd.Flags().BoolVar(&contextTopic, "topic", false, "Treat the input as a free-text topic")
	contextCmd.Flags().IntVar(&contextDepth, "depth", 0, "Hop bound, at least 1 (default: traversal.contextDepth)")
	contextCmd.Flags().IntVar(&contextCap, "cap", 0, "Maximum results, at least 1 (default: traversal.contextResultCap)")
	rootCmd.AddCommand(contextCmd)
}

func runContext(cmd *cobra.Command, args []string) error {
	opts, err := contextOptions(cmd.Flags().Changed("depth"), cmd.Flags().Changed("cap"))
	if err != nil {
		return err
	}

	s, err := loadSession(false)
	if err != nil {
		return err
	}

	out, err := s.Context(args[0], contextTopic, opts)
	if err != nil {
		return err
	}
	return printResponse(newResponse(s, out))
}

// contextOptions starts from the configured traversal settings and applies
// the flags the user set explicitly.
func contextOptions(depthSet, capSet bool) (traverse.ContextOptions, error) {
	opts := traverse.ContextOptions{
		Depth:     cfg.Traversal.ContextDepth,
		ResultCap: cfg.Traversal.ContextResultCap,
	}
	if depthSet {
		if contextDepth < 1 {
			return opts, fmt.Errorf("--depth must be at least 1, got %d", contextDepth)
		}
		opts.Depth = contextDepth
	}
	if capSet {
		if contextCap < 1 {
			return opts, fmt.Errorf("--cap must be at least 1, got %d", contextCap)
		}
		opts.ResultCap = contextCap
	}
	return opts, nil
}
