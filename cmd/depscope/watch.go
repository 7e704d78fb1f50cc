package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"depscope/internal/session"
	"depscope/internal/watcher"
)

var watchAggregate bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the graph whenever the scanner output changes",
	Long: `Watch the scanner output file and rebuild the graph session after each
change, once writes have been quiet for watch.debounceMs. Every rebuild
prints the new graph statistics. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&watchAggregate, "aggregate", false, "Build the capped rendering graph")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := scannerOutputPath()
	opts := sessionOptions(watchAggregate)

	w := watcher.New(watcher.Config{Path: path, DebounceMs: cfg.Watch.DebounceMs},
		func() (*session.Session, error) { return session.Load(path, opts) },
		func(s *session.Session, _ []watcher.Event) {
			if err := printResponse(newResponse(s, &GraphResponseCLI{Meta: s.Graph.Meta, Stats: s.Stats()})); err != nil {
				logger.Warn("Failed to print graph stats", "error", err)
			}
		},
		logger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return w.Run(ctx)
}
