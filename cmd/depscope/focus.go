package main

import (
	"time"

	"github.com/spf13/cobra"

	"depscope/internal/traverse"
)

var (
	focusLens      string
	focusDepth     int
	focusMaxFanout int
	focusFull      bool
)

var focusCmd = &cobra.Command{
	Use:   "focus <node>",
	Short: "Show the bounded neighborhood of a node",
	Long: `Explore from a node of the rendering graph, following dependencies
(--lens children) or dependents (--lens parents), up to --depth hops and
--max-fanout neighbors per node. Edges are reported by id in their
source->target direction.

Examples:
  depscope focus src/app.ts
  depscope focus src/lib/util.ts --lens parents --depth 3`,
	Args: cobra.ExactArgs(1),
	RunE: runFocus,
}

func init() {
	focusCmd.Flags().StringVar(&focusLens, "lens", string(traverse.LensChildren), "Direction: children or parents")
	focusCmd.Flags().IntVar(&focusDepth, "depth", -1, "Hop bound (default: traversal.focusDepth)")
	focusCmd.Flags().IntVar(&focusMaxFanout, "max-fanout", 0, "Neighbors per node (default: traversal.focusMaxFanout)")
	focusCmd.Flags().BoolVar(&focusFull, "full", false, "Focus within the full graph instead of the rendering graph")
	rootCmd.AddCommand(focusCmd)
}

func runFocus(cmd *cobra.Command, args []string) error {
	s, err := loadSession(!focusFull)
	if err != nil {
		return err
	}

	opts := traverse.FocusOptions{
		Depth:         cfg.Traversal.FocusDepth,
		Lens:          traverse.ParseLens(focusLens),
		MaxFanout:     cfg.Traversal.FocusMaxFanout,
		SlowThreshold: time.Duration(cfg.Traversal.SlowFocusMs) * time.Millisecond,
		Logger:        logger,
	}
	if cmd.Flags().Changed("depth") {
		opts.Depth = focusDepth
	}
	if cmd.Flags().Changed("max-fanout") {
		opts.MaxFanout = focusMaxFanout
	}

	result, err := s.Focus(args[0], opts)
	if err != nil {
		return err
	}
	resp := newResponse(s, result)
	resp.Warnings = append(resp.Warnings, result.Warnings...)
	return printResponse(resp)
}
