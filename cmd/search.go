package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sollearn/docrag/internal/config"
	"github.com/sollearn/docrag/internal/embed"
	"github.com/sollearn/docrag/internal/retrieve"
	"github.com/sollearn/docrag/internal/store"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Run a similarity query against the vector store",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
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

	retriever := retrieve.New(st, embedder, logger.With("component", "retrieve"))

	query := strings.Join(args, " ")
	matches := retriever.Retrieve(ctx, query)
	if len(matches) == 0 {
		fmt.Println("No relevant content found.")
		if n, err := st.CountEmbeddings(ctx); err == nil && n == 0 {
			fmt.Println("The store is empty; run `docrag ingest` first.")
		}
		return nil
	}

	for i, m := range matches {
		fmt.Printf("%d. [%.3f] %s", i+1, m.Similarity, m.PageTitle)
		if m.SectionTitle != nil {
			fmt.Printf(" › %s", *m.SectionTitle)
		}
		fmt.Println()

		url := m.PageURL
		if m.HeadingID != nil {
			url += "#" + *m.HeadingID
		}
		fmt.Printf("   %s\n", url)
		fmt.Printf("   %s\n\n", excerpt(m.Content, 200))
	}
	return nil
}

// excerpt truncates s to at most n characters on a word boundary.
func excerpt(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) <= n {
		return s
	}
	cut := strings.LastIndex(s[:n], " ")
	if cut <= 0 {
		cut = n
	}
	return s[:cut] + "…"
}
