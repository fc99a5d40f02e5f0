// Package ingest coordinates the full corpus rebuild: walk the content
// tree, extract and normalize sections, chunk, embed, and persist.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/sollearn/docrag/internal/docs"
	"github.com/sollearn/docrag/internal/embed"
	"github.com/sollearn/docrag/internal/store"
)

// defaultEmbedRate caps embedding API calls per second during a rebuild.
const defaultEmbedRate = 5

// Store is the persistence surface ingestion needs. *store.Store satisfies
// it; tests substitute a mock.
type Store interface {
	DeleteAll(ctx context.Context) error
	CreateResource(ctx context.Context, r store.Resource) error
	InsertEmbedding(ctx context.Context, e store.Embedding) error
}

// Config holds the corpus location and pacing for one ingestion run.
type Config struct {
	ContentRoot string
	PagePrefix  string
	EmbedRate   float64 // embedding requests per second, 0 = default
}

// Result summarizes one ingestion run. Per-file failures are counted, not
// fatal; the rebuild continues past them.
type Result struct {
	FilesProcessed int
	FilesSkipped   int
	FilesFailed    int
	ChunksEmbedded int
	Duration       time.Duration
}

// Orchestrator rebuilds the store from the content tree.
type Orchestrator struct {
	store    Store
	embedder embed.Client
	logger   *slog.Logger
	limiter  *rate.Limiter
	cfg      Config
}

// New creates an Orchestrator. The store and embedder must already be
// validated and connected; construction performs no I/O.
func New(s Store, embedder embed.Client, logger *slog.Logger, cfg Config) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	rps := cfg.EmbedRate
	if rps <= 0 {
		rps = defaultEmbedRate
	}
	return &Orchestrator{
		store:    s,
		embedder: embedder,
		logger:   logger,
		limiter:  rate.NewLimiter(rate.Limit(rps), 1),
		cfg:      cfg,
	}
}

// Run performs a full rebuild: every existing row is deleted, then the
// current corpus is re-ingested. Listing the corpus happens before the
// delete so an unreadable content root aborts without destroying data.
// A failure on one file is logged and counted; the run continues.
func (o *Orchestrator) Run(ctx context.Context) (Result, error) {
	start := time.Now()

	files, err := docs.ListFiles(o.cfg.ContentRoot)
	if err != nil {
		return Result{}, err
	}
	if len(files) == 0 {
		return Result{}, fmt.Errorf("no markdown files under %s", o.cfg.ContentRoot)
	}
	o.logger.Info("ingestion started", "files", len(files), "content_root", o.cfg.ContentRoot)

	if err := o.store.DeleteAll(ctx); err != nil {
		return Result{}, fmt.Errorf("clear store: %w", err)
	}

	var res Result
	for _, rel := range files {
		embedded, err := o.ingestFile(ctx, rel)
		switch {
		case err != nil:
			res.FilesFailed++
			o.logger.Error("file ingestion failed", "file", rel, "error", err)
		case embedded == 0:
			res.FilesSkipped++
			o.logger.Debug("file skipped, nothing to embed", "file", rel)
		default:
			res.FilesProcessed++
			res.ChunksEmbedded += embedded
		}
	}

	res.Duration = time.Since(start)
	o.logger.Info("ingestion finished",
		"processed", res.FilesProcessed,
		"skipped", res.FilesSkipped,
		"failed", res.FilesFailed,
		"chunks", res.ChunksEmbedded,
		"duration", res.Duration)
	return res, nil
}

// candidate is one chunk ready to embed, with its citation metadata.
type candidate struct {
	content      string
	sectionTitle *string
	headingID    *string
	headingLevel *int
}

// ingestFile processes one content file and reports how many chunks it
// embedded. Zero with a nil error means the file had nothing worth
// embedding and no resource row is created for it.
func (o *Orchestrator) ingestFile(ctx context.Context, rel string) (int, error) {
	doc, err := docs.LoadFile(o.cfg.ContentRoot, rel, o.cfg.PagePrefix)
	if err != nil {
		return 0, err
	}

	candidates := collectCandidates(doc.Body)
	if len(candidates) == 0 {
		return 0, nil
	}

	resourceID := uuid.NewString()
	if err := o.store.CreateResource(ctx, store.Resource{
		ID:       resourceID,
		Content:  doc.Raw,
		FilePath: doc.Path,
		Title:    doc.Title,
	}); err != nil {
		return 0, err
	}

	embedded := 0
	for i, c := range candidates {
		if err := o.limiter.Wait(ctx); err != nil {
			return embedded, err
		}
		vector, err := o.embedder.Embed(ctx, c.content)
		if err != nil {
			return embedded, fmt.Errorf("embed chunk %d: %w", i, err)
		}
		if err := o.store.InsertEmbedding(ctx, store.Embedding{
			ID:           uuid.NewString(),
			ResourceID:   resourceID,
			Content:      c.content,
			Vector:       vector,
			PageURL:      doc.PageURL,
			PageTitle:    doc.Title,
			SectionTitle: c.sectionTitle,
			HeadingID:    c.headingID,
			HeadingLevel: c.headingLevel,
			ChunkIndex:   i,
		}); err != nil {
			return embedded, fmt.Errorf("store chunk %d: %w", i, err)
		}
		embedded++
	}
	return embedded, nil
}

// collectCandidates turns a document body into embeddable chunks. Documents
// with headings yield per-section chunks carrying heading metadata; a
// document with no headings falls back to one implicit section covering the
// whole body, with nil heading fields. Sections whose normalized text is
// shorter than the section minimum are dropped before chunking.
func collectCandidates(body string) []candidate {
	sections := docs.ExtractSections(body)

	if len(sections) == 0 {
		normalized := docs.Normalize(body)
		if len(normalized) < docs.MinSectionLength {
			return nil
		}
		var out []candidate
		for _, chunk := range docs.Chunk(normalized) {
			out = append(out, candidate{content: chunk})
		}
		return out
	}

	var out []candidate
	for _, sec := range sections {
		normalized := docs.Normalize(sec.Content)
		if len(normalized) < docs.MinSectionLength {
			continue
		}
		title, headingID, level := sec.Title, sec.HeadingID, sec.Level
		for _, chunk := range docs.Chunk(normalized) {
			out = append(out, candidate{
				content:      chunk,
				sectionTitle: &title,
				headingID:    &headingID,
				headingLevel: &level,
			})
		}
	}
	return out
}
