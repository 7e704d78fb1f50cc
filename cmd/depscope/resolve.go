package main

import (
	"github.com/spf13/cobra"

	deperrors "depscope/internal/errors"
)

var resolveTopic bool

var resolveCmd = &cobra.Command{
	Use:   "resolve <input>...",
	Short: "Resolve fuzzy inputs to graph node ids",
	Long: `Resolve each input to one node id of the full graph.

Path inputs try, in order: exact id, case-insensitive id, .js/.ts and
.jsx/.tsx extension swap, basename with closest directory, and finally topic
scoring. With --topic only topic scoring is used.

Exits with status 2 when any input stays unresolved.

Examples:
  depscope resolve src/Foo.js
  depscope resolve --topic "auth middleware" billing`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveTopic, "topic", false, "Treat inputs as free-text topics")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	s, err := loadSession(false)
	if err != nil {
		return err
	}

	results, err := s.ResolveAll(cmd.Context(), args, resolveTopic)
	if err != nil {
		return err
	}
	if err := printResponse(newResponse(s, &ResolveResponseCLI{Topic: resolveTopic, Results: results})); err != nil {
		return err
	}

	unresolved := 0
	for _, r := range results {
		if !r.Resolved {
			unresolved++
		}
	}
	if unresolved > 0 {
		return deperrors.Newf(deperrors.UnresolvedSeed, "%d of %d inputs did not resolve", unresolved, len(results))
	}
	return nil
}
