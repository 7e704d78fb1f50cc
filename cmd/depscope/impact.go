package main

import (
	"time"

	"github.com/spf13/cobra"

	deperrors "depscope/internal/errors"
	"depscope/internal/impact"
)

var impactTopic bool

var impactCmd = &cobra.Command{
	Use:   "impact <file|topic>",
	Short: "List the files reachable from a file's dependencies",
	Long: `Analyze the impact of changing a file.

The input is resolved to a node of the full graph, then every file reachable
through its declared dependencies is listed, the seed first. The walk follows
forward edges only: it answers "what does this file pull in", not "who
imports this file". Use 'depscope focus --lens parents' for dependents.

A file that exists on disk but is missing from the graph is reported alone.

Examples:
  depscope impact src/app.ts
  depscope impact App.js --format human
  depscope impact --topic checkout`,
	Args: cobra.ExactArgs(1),
	RunE: runImpact,
}

func init() {
	impactCmd.Flags().BoolVar(&impactTopic, "topic", false, "Treat the input as a free-text topic")
	rootCmd.AddCommand(impactCmd)
}

func runImpact(cmd *cobra.Command, args []string) error {
	start := time.Now()
	s, err := loadSession(false)
	if err != nil {
		return err
	}

	result := s.Impact(args[0], impactTopic)
	resp := newResponse(s, result)
	resp.Warnings = append(resp.Warnings, impactWarnings(result)...)
	if err := printResponse(resp); err != nil {
		return err
	}

	logger.Debug("Impact analysis completed",
		"input", args[0],
		"seed", result.Seed,
		"affected", len(result.Affected),
		"duration", time.Since(start).Milliseconds(),
	)

	if result.Status == impact.SeedMissing {
		return deperrors.Newf(deperrors.UnresolvedSeed, "%q is neither a graph node nor a file on disk", args[0])
	}
	return nil
}

// impactWarnings flags a seed that exists on disk but has no graph node: its
// dependencies are unknown until the next scan.
func impactWarnings(result *impact.Result) []string {
	if result.Status != impact.SeedOnDisk {
		return nil
	}
	err := deperrors.Newf(deperrors.UnknownNode, "%s is not in the graph; rescan to see its dependencies", result.Seed)
	logger.Warn("Impact seed missing from graph", "code", err.Code, "seed", result.Seed)
	return []string{err.Error()}
}
