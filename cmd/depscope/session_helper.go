package main

import (
	"fmt"
	"os"

	"depscope/internal/graph"
	"depscope/internal/session"
)

// loadSession builds a session from the scanner output. aggregate selects
// the capped rendering graph configured under graph.*.
func loadSession(aggregate bool) (*session.Session, error) {
	path := scannerOutputPath()
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("scanner output not found at %s (use --input or scanner.outputPath): %w", path, err)
	}
	return session.Load(path, sessionOptions(aggregate))
}

func sessionOptions(aggregate bool) session.Options {
	return session.Options{
		WorkspaceRoot: rootFlag,
		Aggregate:     aggregate,
		AggregateOptions: graph.AggregateOptions{
			NodeCap:       cfg.Graph.NodeCap,
			KeepSelfEdges: cfg.Graph.KeepSelfEdges,
		},
		Logger: logger,
	}
}

// printResponse writes resp in the selected --format to stdout.
func printResponse(resp *Response) error {
	out, err := FormatResponse(resp, OutputFormat(formatFlag))
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
