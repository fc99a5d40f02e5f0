// Package embed abstracts the external embedding model behind a narrow
// client interface so providers can be swapped without touching ingestion
// or retrieval.
package embed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sollearn/docrag/internal/config"
)

// Dimension is the vector length every client must produce. The store's
// vector column is fixed to this width; mixing dimensions breaks search.
const Dimension = 1536

var (
	// ErrEmptyText is returned when the input has no content to embed.
	ErrEmptyText = errors.New("empty text")

	// ErrMissingAPIKey is returned when the provider's credential is absent.
	ErrMissingAPIKey = errors.New("missing embedding API key")
)

// Client converts text into fixed-dimension vectors.
type Client interface {
	// Embed returns the vector for a single text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch returns one vector per input text, in input order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions reports the vector length this client produces.
	Dimensions() int
}

// New builds the embedding client for the configured provider, reading the
// credential from the environment.
func New(cfg *config.Config) (Client, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			return nil, fmt.Errorf("%w: OPENAI_API_KEY", ErrMissingAPIKey)
		}
		return NewOpenAIClient(key, cfg.Model()), nil
	case config.ProviderGoogle:
		key := os.Getenv("GEMINI_API_KEY")
		if key == "" {
			return nil, fmt.Errorf("%w: GEMINI_API_KEY", ErrMissingAPIKey)
		}
		return NewGoogleClient(key, cfg.Model())
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", cfg.Provider)
	}
}

// normalizeText prepares text for the provider boundary: literal \n escape
// sequences become real newlines and surrounding whitespace is trimmed.
func normalizeText(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, `\n`, "\n"))
}
