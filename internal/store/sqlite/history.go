package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/forgeline/content-studio/internal/domain"
	"github.com/forgeline/content-studio/internal/store"
	"github.com/google/uuid"
)

// HistoryStore is the persistent variant of store.HistoryStore. It keeps
// the same bounded-FIFO contract as the in-memory store: insertion order is
// chronological and appends past the limit evict the oldest rows.
type HistoryStore struct {
	db    *DB
	limit int
}

// NewHistoryStore creates a sqlite-backed history store
func NewHistoryStore(db *DB, limit int) *HistoryStore {
	if limit <= 0 {
		limit = store.DefaultHistoryLimit
	}
	return &HistoryStore{db: db, limit: limit}
}

// Append inserts a result and trims rows beyond the capacity
func (s *HistoryStore) Append(ctx context.Context, result *domain.GenerationResult) error {
	keywords, err := json.Marshal(result.Keywords)
	if err != nil {
		return fmt.Errorf("failed to marshal keywords: %w", err)
	}

	var imageData sql.NullString
	if result.ImageData != nil {
		data, err := json.Marshal(result.ImageData)
		if err != nil {
			return fmt.Errorf("failed to marshal image data: %w", err)
		}
		imageData = sql.NullString{String: string(data), Valid: true}
	}

	tx, err := s.db.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO history (id, topic, tone, content_type, keywords, content, timestamp, image_data)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, result.ID.String(), result.Topic, result.Tone, string(result.ContentType),
		string(keywords), result.Content, result.Timestamp.Format(time.RFC3339Nano), imageData)
	if err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		DELETE FROM history
		WHERE seq NOT IN (SELECT seq FROM history ORDER BY seq DESC LIMIT ?)
	`, s.limit)
	if err != nil {
		return fmt.Errorf("failed to trim history: %w", err)
	}

	return tx.Commit()
}

// List returns all retained results in insertion order
func (s *HistoryStore) List(ctx context.Context) ([]*domain.GenerationResult, error) {
	rows, err := s.db.db.QueryContext(ctx, `
		SELECT id, topic, tone, content_type, keywords, content, timestamp, image_data
		FROM history
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var results []*domain.GenerationResult
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, rows.Err()
}

// Get returns the result with the given id, or store.ErrNotFound
func (s *HistoryStore) Get(ctx context.Context, id uuid.UUID) (*domain.GenerationResult, error) {
	rows, err := s.db.db.QueryContext(ctx, `
		SELECT id, topic, tone, content_type, keywords, content, timestamp, image_data
		FROM history
		WHERE id = ?
	`, id.String())
	if err != nil {
		return nil, fmt.Errorf("failed to get history entry: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, store.ErrNotFound
	}
	return scanResult(rows)
}

func scanResult(rows *sql.Rows) (*domain.GenerationResult, error) {
	var (
		idStr, topic, tone, contentType string
		keywords, content, timestamp    string
		imageData                       sql.NullString
	)
	if err := rows.Scan(&idStr, &topic, &tone, &contentType, &keywords, &content, &timestamp, &imageData); err != nil {
		return nil, fmt.Errorf("failed to scan history entry: %w", err)
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("invalid id in history: %w", err)
	}

	ts, err := time.Parse(time.RFC3339Nano, timestamp)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp in history: %w", err)
	}

	result := &domain.GenerationResult{
		ID:          id,
		Topic:       topic,
		Tone:        tone,
		ContentType: domain.ContentType(contentType),
		Content:     content,
		Timestamp:   ts,
	}

	if err := json.Unmarshal([]byte(keywords), &result.Keywords); err != nil {
		return nil, fmt.Errorf("invalid keywords in history: %w", err)
	}

	if imageData.Valid {
		var img domain.ImageDescriptor
		if err := json.Unmarshal([]byte(imageData.String), &img); err != nil {
			return nil, fmt.Errorf("invalid image data in history: %w", err)
		}
		result.ImageData = &img
	}

	return result, nil
}
