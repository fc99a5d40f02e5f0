package testutil

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"sync"

	"github.com/sollearn/docrag/internal/embed"
)

// FakeEmbedder is a deterministic in-memory embed.Client. Each distinct
// text maps to a unit vector along one axis chosen by hashing the text, so
// identical texts have cosine similarity 1 and distinct texts are almost
// always orthogonal. That makes similarity assertions exact without any
// network dependency.
type FakeEmbedder struct {
	mu    sync.Mutex
	calls []string

	// Err, when set, is returned by every Embed call. Used to exercise
	// failure paths.
	Err error
}

func (f *FakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	f.mu.Lock()
	f.calls = append(f.calls, text)
	f.mu.Unlock()

	return Vector(text), nil
}

func (f *FakeEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, t := range texts {
		v, err := f.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		vectors[i] = v
	}
	return vectors, nil
}

func (f *FakeEmbedder) Dimensions() int {
	return embed.Dimension
}

// Calls returns the texts embedded so far, in call order.
func (f *FakeEmbedder) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// Vector is the deterministic embedding FakeEmbedder produces for text.
// Exposed so tests can compute the expected vector for a query.
func Vector(text string) []float32 {
	v := make([]float32, embed.Dimension)
	sum := sha256.Sum256([]byte(text))
	idx := int(binary.BigEndian.Uint32(sum[:4]) % uint32(embed.Dimension))
	v[idx] = 1
	return v
}
