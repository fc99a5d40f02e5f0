package store

import "time"

// Resource is one source document of the content tree. Embeddings derived
// from the document all reference its id; deleting a resource cascades to
// its embeddings.
type Resource struct {
	ID        string
	Content   string
	FilePath  string
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Embedding is one stored chunk: the exact text that was embedded, its
// vector, and the citation metadata needed to point back to the source.
// SectionTitle, HeadingID and HeadingLevel are nil when the chunk came from
// the whole-file fallback path with no heading context.
type Embedding struct {
	ID           string
	ResourceID   string
	Content      string
	Vector       []float32
	PageURL      string
	PageTitle    string
	SectionTitle *string
	HeadingID    *string
	HeadingLevel *int
	ChunkIndex   int
}

// Match is one similarity search hit with its full citation metadata.
type Match struct {
	ResourceID   string
	Content      string
	Similarity   float64
	PageURL      string
	PageTitle    string
	SectionTitle *string
	HeadingID    *string
	HeadingLevel *int
	ChunkIndex   int
}
