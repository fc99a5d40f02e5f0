package embed

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type embeddingsRequest struct {
	Input      []string `json:"input"`
	Model      string   `json:"model"`
	Dimensions int      `json:"dimensions"`
}

// newEmbeddingsServer returns a test server that validates the request and
// responds with deterministic vectors, deliberately out of input order to
// exercise index-based reassembly.
func newEmbeddingsServer(t *testing.T, gotReq *embeddingsRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/embeddings" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}

		type datum struct {
			Embedding []float32 `json:"embedding"`
			Index     int       `json:"index"`
		}
		data := make([]datum, len(gotReq.Input))
		for i := range gotReq.Input {
			v := make([]float32, Dimension)
			v[0] = float32(i + 1)
			// Reverse order in the response payload.
			data[len(data)-1-i] = datum{Embedding: v, Index: i}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"data": data})
	}))
}

func TestOpenAIEmbedBatch(t *testing.T) {
	var gotReq embeddingsRequest
	srv := newEmbeddingsServer(t, &gotReq)
	defer srv.Close()

	client := NewOpenAIClient("test-key", "text-embedding-3-small").WithBaseURL(srv.URL)

	vectors, err := client.EmbedBatch(context.Background(), []string{"first text", `second\nwith escape`})
	if err != nil {
		t.Fatalf("EmbedBatch() error: %v", err)
	}

	if gotReq.Model != "text-embedding-3-small" {
		t.Errorf("request model = %q", gotReq.Model)
	}
	if gotReq.Dimensions != Dimension {
		t.Errorf("request dimensions = %d, want %d", gotReq.Dimensions, Dimension)
	}
	// Literal \n escapes are converted before the provider sees the text.
	if want := "second\nwith escape"; len(gotReq.Input) != 2 || gotReq.Input[1] != want {
		t.Errorf("request input = %q, want second element %q", gotReq.Input, want)
	}

	if len(vectors) != 2 {
		t.Fatalf("got %d vectors, want 2", len(vectors))
	}
	for i, v := range vectors {
		if len(v) != Dimension {
			t.Errorf("vector %d has dimension %d", i, len(v))
		}
		// Reassembled into input order despite the reversed payload.
		if v[0] != float32(i+1) {
			t.Errorf("vector %d out of order: v[0] = %v", i, v[0])
		}
	}
}

func TestOpenAIEmbedSingle(t *testing.T) {
	var gotReq embeddingsRequest
	srv := newEmbeddingsServer(t, &gotReq)
	defer srv.Close()

	client := NewOpenAIClient("test-key", "text-embedding-3-small").WithBaseURL(srv.URL)

	vector, err := client.Embed(context.Background(), "some text")
	if err != nil {
		t.Fatalf("Embed() error: %v", err)
	}
	if len(vector) != Dimension {
		t.Errorf("vector dimension = %d, want %d", len(vector), Dimension)
	}
}

func TestOpenAIEmbedEmptyText(t *testing.T) {
	client := NewOpenAIClient("test-key", "text-embedding-3-small")
	if _, err := client.Embed(context.Background(), "   "); !errors.Is(err, ErrEmptyText) {
		t.Errorf("Embed(blank) error = %v, want ErrEmptyText", err)
	}
}

func TestOpenAIEmbedBatchEmptyInput(t *testing.T) {
	client := NewOpenAIClient("test-key", "text-embedding-3-small")
	vectors, err := client.EmbedBatch(context.Background(), nil)
	if err != nil || vectors != nil {
		t.Errorf("EmbedBatch(nil) = (%v, %v), want (nil, nil)", vectors, err)
	}
}

func TestOpenAIEmbedServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewOpenAIClient("test-key", "text-embedding-3-small").WithBaseURL(srv.URL)
	if _, err := client.Embed(context.Background(), "text"); err == nil {
		t.Error("Embed() returned nil error on 429 response")
	}
}

func TestOpenAIEmbedWrongCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	}))
	defer srv.Close()

	client := NewOpenAIClient("test-key", "text-embedding-3-small").WithBaseURL(srv.URL)
	if _, err := client.Embed(context.Background(), "text"); err == nil {
		t.Error("Embed() returned nil error on mismatched embedding count")
	}
}

func TestDimensions(t *testing.T) {
	if got := NewOpenAIClient("k", "m").Dimensions(); got != Dimension {
		t.Errorf("Dimensions() = %d, want %d", got, Dimension)
	}
}
