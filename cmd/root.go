// Package cmd contains the docrag CLI commands.
package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sollearn/docrag/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "docrag",
	Short: "Documentation ingestion and retrieval for the learning platform",
	Long: `docrag turns a directory of Markdown/MDX course content into a
searchable vector store. "ingest" rebuilds the store from the content
tree; "search" runs a similarity query against it.`,
	SilenceUsage: true,
}

// Execute runs the root command with signal-aware context. Ctrl-C cancels
// in-flight ingestion or search cleanly.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// newLogger builds the process logger. DEBUG=1 in the environment lowers
// the level to debug.
func newLogger() log.Logger {
	level := slog.LevelInfo
	if os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}
	return log.New(log.Config{Level: level})
}
