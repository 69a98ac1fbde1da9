package sqlite_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/forgeline/content-studio/internal/domain"
	"github.com/forgeline/content-studio/internal/store"
	"github.com/forgeline/content-studio/internal/store/sqlite"
)

func openTestDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestHistoryStore_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	s := sqlite.NewHistoryStore(db, 50)
	ctx := context.Background()

	result := &domain.GenerationResult{
		ID:          uuid.New(),
		Topic:       "remote work",
		Tone:        "professional",
		ContentType: domain.ContentTypeBlog,
		Keywords:    []string{"productivity", "flexibility"},
		Content:     "# Remote Work",
		Timestamp:   time.Now().UTC(),
		ImageData:   &domain.ImageDescriptor{URL: "https://example.com/pic.png"},
	}

	if err := s.Append(ctx, result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.Get(ctx, result.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Topic != "remote work" || got.Content != "# Remote Work" {
		t.Error("stored fields should round-trip")
	}
	if len(got.Keywords) != 2 || got.Keywords[0] != "productivity" {
		t.Errorf("keywords should round-trip, got %v", got.Keywords)
	}
	if got.ImageData == nil || got.ImageData.URL != "https://example.com/pic.png" {
		t.Error("image data should round-trip")
	}
	if !got.Timestamp.Equal(result.Timestamp) {
		t.Errorf("timestamp should round-trip, got %v want %v", got.Timestamp, result.Timestamp)
	}
}

func TestHistoryStore_EvictsOldest(t *testing.T) {
	db := openTestDB(t)
	s := sqlite.NewHistoryStore(db, 5)
	ctx := context.Background()

	ids := make([]uuid.UUID, 7)
	for i := range ids {
		ids[i] = uuid.New()
		err := s.Append(ctx, &domain.GenerationResult{
			ID:        ids[i],
			Topic:     fmt.Sprintf("topic %d", i),
			Content:   "content",
			Timestamp: time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	entries, err := s.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("history should be capped at 5, got %d", len(entries))
	}
	if entries[0].Topic != "topic 2" || entries[4].Topic != "topic 6" {
		t.Errorf("oldest rows should be evicted, got head %q tail %q", entries[0].Topic, entries[4].Topic)
	}

	if _, err := s.Get(ctx, ids[0]); err != store.ErrNotFound {
		t.Errorf("evicted entry should be gone, got %v", err)
	}
}

func TestUserStore(t *testing.T) {
	db := openTestDB(t)
	s := sqlite.NewUserStore(db)
	ctx := context.Background()

	user := &domain.User{
		Email:        "a@example.com",
		PasswordHash: "hash",
		FullName:     "Alice",
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Create(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Create(ctx, user); err != store.ErrDuplicateEmail {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}

	got, err := s.GetByEmail(ctx, "a@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FullName != "Alice" || got.PasswordHash != "hash" {
		t.Error("stored fields should round-trip")
	}

	if _, err := s.GetByEmail(ctx, "missing@example.com"); err != store.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
