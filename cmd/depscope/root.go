package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"depscope/internal/config"
	"depscope/internal/slogutil"
	"depscope/internal/version"
)

var (
	rootFlag    string
	inputFlag   string
	formatFlag  string
	logFileFlag string
	verbosity   int
	quietFlag   bool

	cfg     *config.Config
	logger  = slogutil.NewDiscardLogger()
	logFile *os.File
)

var rootCmd = &cobra.Command{
	Use:   "depscope",
	Short: "depscope - file-level dependency graph explorer",
	Long: `depscope loads the module list produced by a dependency scanner and answers
questions about it: which files does a change reach, what sits around a node
in a bounded view, and which files relate to a topic.

Inputs may be exact node ids, guessed paths ("Foo.js" for "src/Foo.ts"),
or free-text topics.`,
	Version:           version.Info(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.SetVersionTemplate("depscope version {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlag, "root", "", "Workspace root (default: current directory)")
	pf.StringVarP(&inputFlag, "input", "i", "", "Scanner output file (default: scanner.outputPath from config)")
	pf.StringVar(&formatFlag, "format", string(FormatJSON), "Output format (json, human, yaml, toml)")
	pf.StringVar(&logFileFlag, "log-file", "", "Also append logs to this file")
	pf.CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	pf.BoolVarP(&quietFlag, "quiet", "q", false, "Suppress all logs")
}

// setup resolves the workspace root, loads configuration and builds the
// logger shared by every command.
func setup(cmd *cobra.Command, _ []string) error {
	root, err := workspaceRoot()
	if err != nil {
		return err
	}
	rootFlag = root

	cfg, err = config.LoadConfig(root)
	if err != nil {
		return err
	}

	if err := ParseFormat(formatFlag); err != nil {
		return err
	}

	level := slogutil.LevelFromVerbosity(verbosity, quietFlag, slogutil.LevelFromString(cfg.Logging.Level))
	logger, err = newLogger(os.Stderr, level)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	logger.Debug("Configuration loaded", "root", root, "command", cmd.Name())
	return nil
}

func newLogger(w io.Writer, level slog.Level) (*slog.Logger, error) {
	console := slogutil.NewFormatLogger(w, cfg.Logging.Format, level)
	if logFileFlag == "" {
		return console, nil
	}

	fileLogger, f, err := slogutil.NewFileLogger(logFileFlag, level)
	if err != nil {
		return nil, err
	}
	logFile = f
	return slog.New(slogutil.NewTeeHandler(console.Handler(), fileLogger.Handler())), nil
}

func closeLogFile() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

func workspaceRoot() (string, error) {
	if rootFlag != "" {
		return filepath.Abs(rootFlag)
	}
	return os.Getwd()
}

// scannerOutputPath is --input when given, otherwise the configured path.
func scannerOutputPath() string {
	if inputFlag != "" {
		if abs, err := filepath.Abs(inputFlag); err == nil {
			return abs
		}
		return inputFlag
	}
	return cfg.ScannerOutputPath(rootFlag)
}
