// Package docs turns a directory of Markdown/MDX documentation into
// embedding-ready chunks.
//
// The pipeline, leaf to root:
//   - Load:     walk the content root, read .md/.mdx files, parse front matter
//   - Extract:  split a document body into heading-delimited sections
//   - Normalize: strip MDX/markdown syntax down to plain prose
//   - Chunk:    subdivide long sections into overlapping windows
//
// The package is pure computation; persistence and embedding live in
// internal/store and internal/embed.
package docs

const (
	// MinSectionLength is the minimum normalized section length worth
	// embedding. Shorter sections carry too little signal and pollute
	// similarity search, so they are dropped before chunking.
	MinSectionLength = 100

	// MinChunkLength is the minimum chunk length kept after splitting.
	MinChunkLength = 50

	// MaxChunkSize is the character threshold above which a section is
	// split into multiple chunks.
	MaxChunkSize = 1000

	// ChunkOverlap is the approximate number of characters carried from
	// the end of one chunk into the start of the next.
	ChunkOverlap = 100
)
