// Package store persists resources and embeddings in PostgreSQL with
// pgvector, and serves cosine similarity search over the embedding column.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
	pgxvector "github.com/pgvector/pgvector-go/pgx"
)

// queryTimeout bounds every single statement so a stuck database cannot
// hang ingestion or retrieval indefinitely.
const queryTimeout = 10 * time.Second

// Store is a PostgreSQL-backed resource and embedding store.
//
// Store is safe for concurrent use by multiple goroutines.
type Store struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// Open connects a pgx pool to connString and registers pgvector types on
// every connection. The caller owns the store's lifecycle and must Close it.
func Open(ctx context.Context, connString string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}
	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return pgxvector.RegisterTypes(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Store{pool: pool, logger: logger}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// CreateResource inserts one resource row.
func (s *Store) CreateResource(ctx context.Context, r Resource) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := s.pool.Exec(ctx,
		`INSERT INTO resources (id, content, file_path, title)
		 VALUES ($1, $2, $3, $4)`,
		r.ID, r.Content, r.FilePath, r.Title)
	if err != nil {
		return fmt.Errorf("insert resource %s: %w", r.FilePath, err)
	}

	s.logger.Debug("resource created", "id", r.ID, "file_path", r.FilePath)
	return nil
}

// InsertEmbedding inserts one embedding row. The vector must be the store's
// fixed dimension; the column type rejects anything else.
func (s *Store) InsertEmbedding(ctx context.Context, e Embedding) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	vec := pgvector.NewVector(e.Vector)
	_, err := s.pool.Exec(ctx,
		`INSERT INTO embeddings
		   (id, resource_id, content, embedding, page_url, page_title,
		    section_title, heading_id, heading_level, chunk_index)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		e.ID, e.ResourceID, e.Content, vec, e.PageURL, e.PageTitle,
		e.SectionTitle, e.HeadingID, e.HeadingLevel, e.ChunkIndex)
	if err != nil {
		return fmt.Errorf("insert embedding for resource %s: %w", e.ResourceID, err)
	}

	s.logger.Debug("embedding inserted",
		"resource_id", e.ResourceID, "chunk_index", e.ChunkIndex)
	return nil
}

// DeleteAll removes every resource and, via cascade, every embedding. Called
// at the start of a full rebuild.
func (s *Store) DeleteAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tag, err := s.pool.Exec(ctx, `DELETE FROM resources`)
	if err != nil {
		return fmt.Errorf("delete resources: %w", err)
	}

	s.logger.Debug("store cleared", "resources_deleted", tag.RowsAffected())
	return nil
}

// Search returns embeddings whose cosine similarity to vector is strictly
// greater than floor, ordered by descending similarity, at most limit rows.
func (s *Store) Search(ctx context.Context, vector []float32, floor float64, limit int) ([]Match, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	vec := pgvector.NewVector(vector)
	rows, err := s.pool.Query(ctx,
		`SELECT resource_id, content, 1 - (embedding <=> $1) AS similarity,
		        page_url, page_title, section_title, heading_id,
		        heading_level, chunk_index
		 FROM embeddings
		 WHERE 1 - (embedding <=> $1) > $2
		 ORDER BY embedding <=> $1
		 LIMIT $3`,
		vec, floor, limit)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		if err := rows.Scan(&m.ResourceID, &m.Content, &m.Similarity,
			&m.PageURL, &m.PageTitle, &m.SectionTitle, &m.HeadingID,
			&m.HeadingLevel, &m.ChunkIndex); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate matches: %w", err)
	}
	return matches, nil
}

// CountResources reports the number of resource rows.
func (s *Store) CountResources(ctx context.Context) (int64, error) {
	return s.count(ctx, `SELECT count(*) FROM resources`)
}

// CountEmbeddings reports the number of embedding rows.
func (s *Store) CountEmbeddings(ctx context.Context) (int64, error) {
	return s.count(ctx, `SELECT count(*) FROM embeddings`)
}

func (s *Store) count(ctx context.Context, sql string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var n int64
	if err := s.pool.QueryRow(ctx, sql).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}
