// Package retrieve answers free-text queries with the most similar stored
// chunks. It is the read path of the pipeline and is deliberately
// forgiving: callers embedding it in a request path get an empty result,
// never an error, when something downstream misbehaves.
package retrieve

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/sollearn/docrag/internal/embed"
	"github.com/sollearn/docrag/internal/store"
)

const (
	// TopK caps how many matches a query returns.
	TopK = 5

	// SimilarityFloor excludes matches at or below this cosine similarity.
	// The comparison is strict: a score of exactly 0.7 is not relevant.
	SimilarityFloor = 0.7

	embedTimeout  = 10 * time.Second
	searchTimeout = 5 * time.Second
)

// SearchStore is the similarity search surface retrieval needs.
// *store.Store satisfies it.
type SearchStore interface {
	Search(ctx context.Context, vector []float32, floor float64, limit int) ([]store.Match, error)
}

// Retriever embeds queries and searches the store.
type Retriever struct {
	store    SearchStore
	embedder embed.Client
	logger   *slog.Logger
}

// New creates a Retriever.
func New(s SearchStore, embedder embed.Client, logger *slog.Logger) *Retriever {
	if logger == nil {
		logger = slog.Default()
	}
	return &Retriever{store: s, embedder: embedder, logger: logger}
}

// Retrieve returns at most TopK matches with similarity strictly above
// SimilarityFloor, ordered by descending similarity. A blank query yields
// an empty result. Embedding or store errors are logged and also yield an
// empty result; retrieval never propagates a failure to the caller.
func (r *Retriever) Retrieve(ctx context.Context, query string) []store.Match {
	matches, err := r.retrieve(ctx, query)
	if err != nil {
		r.logger.Error("retrieval failed", "error", err)
		return nil
	}
	return matches
}

func (r *Retriever) retrieve(ctx context.Context, query string) ([]store.Match, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	embedCtx, cancel := context.WithTimeout(ctx, embedTimeout)
	defer cancel()
	vector, err := r.embedder.Embed(embedCtx, query)
	if err != nil {
		return nil, err
	}

	searchCtx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()
	return r.store.Search(searchCtx, vector, SimilarityFloor, TopK)
}
