package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sollearn/docrag/db"
	"github.com/sollearn/docrag/internal/config"
	"github.com/sollearn/docrag/internal/embed"
	"github.com/sollearn/docrag/internal/ingest"
	"github.com/sollearn/docrag/internal/store"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Rebuild the vector store from the content directory",
	Long: `Deletes every stored resource and embedding, then re-ingests the
content tree: each Markdown/MDX file is split into sections, normalized,
chunked, embedded, and persisted.

Configuration and credentials are validated before anything is deleted;
a misconfigured run never leaves the store empty.`,
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := newLogger()

	// Fail-fast preconditions: config, schema, store, embedder. All of
	// this happens before the destructive delete inside Run.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	if err := db.Migrate(cfg.PostgresURL()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	st, err := store.Open(ctx, cfg.PostgresConnectionString(), logger.With("component", "store"))
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer st.Close()

	embedder, err := embed.New(cfg)
	if err != nil {
		return fmt.Errorf("creating embedding client: %w", err)
	}

	orch := ingest.New(st, embedder, logger.With("component", "ingest"), ingest.Config{
		ContentRoot: cfg.ContentDir,
		PagePrefix:  cfg.PagePrefix,
	})

	result, err := orch.Run(ctx)
	if err != nil {
		return fmt.Errorf("ingestion: %w", err)
	}

	fmt.Printf("Ingestion complete in %s\n", result.Duration.Round(time.Millisecond))
	fmt.Printf("  Files processed: %d\n", result.FilesProcessed)
	fmt.Printf("  Files skipped:   %d\n", result.FilesSkipped)
	fmt.Printf("  Files failed:    %d\n", result.FilesFailed)
	fmt.Printf("  Chunks embedded: %d\n", result.ChunksEmbedded)

	if result.FilesFailed > 0 {
		return fmt.Errorf("%d file(s) failed during ingestion, see log for details", result.FilesFailed)
	}
	return nil
}
