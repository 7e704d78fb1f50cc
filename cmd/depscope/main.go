package main

import (
	"fmt"
	"os"

	deperrors "depscope/internal/errors"
)

func main() {
	err := rootCmd.Execute()
	closeLogFile()
	if err != nil {
		printError(err)
		os.Exit(exitCode(err))
	}
}

// exitCode is 2 when a seed could not be resolved, 1 for every other failure.
func exitCode(err error) int {
	if deperrors.Is(err, deperrors.UnresolvedSeed) {
		return 2
	}
	return 1
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	fixes := deperrors.GetSuggestedFixes(deperrors.CodeOf(err))
	if len(fixes) == 0 {
		return
	}
	fmt.Fprintln(os.Stderr, "Suggested fixes:")
	for _, fix := range fixes {
		fmt.Fprintf(os.Stderr, "  - %s\n", fix.Description)
		if fix.Command != "" {
			fmt.Fprintf(os.Stderr, "    $ %s\n", fix.Command)
		}
		if fix.URL != "" {
			fmt.Fprintf(os.Stderr, "    see %s\n", fix.URL)
		}
	}
}
