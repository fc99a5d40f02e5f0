package embed

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GoogleClient implements Client against the Gemini embedding API.
type GoogleClient struct {
	client *genai.Client
	model  string
}

// NewGoogleClient creates a Gemini embedding client.
func NewGoogleClient(apiKey, model string) (*GoogleClient, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GoogleClient{client: client, model: model}, nil
}

func (c *GoogleClient) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := c.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("no embedding returned")
	}
	return vectors[0], nil
}

func (c *GoogleClient) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	contents := make([]*genai.Content, 0, len(texts))
	for i, t := range texts {
		normalized := normalizeText(t)
		if normalized == "" {
			return nil, fmt.Errorf("input %d: %w", i, ErrEmptyText)
		}
		contents = append(contents, genai.NewContentFromText(normalized, genai.RoleUser))
	}

	dim := int32(Dimension)
	resp, err := c.client.Models.EmbedContent(ctx, c.model, contents,
		&genai.EmbedContentConfig{OutputDimensionality: &dim})
	if err != nil {
		return nil, fmt.Errorf("embed content: %w", err)
	}
	if len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(texts), len(resp.Embeddings))
	}

	vectors := make([][]float32, len(texts))
	for i, e := range resp.Embeddings {
		if e == nil || len(e.Values) != Dimension {
			return nil, fmt.Errorf("embedding %d has wrong dimension", i)
		}
		vectors[i] = e.Values
	}
	return vectors, nil
}

func (c *GoogleClient) Dimensions() int {
	return Dimension
}
