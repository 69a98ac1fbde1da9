package store_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/forgeline/content-studio/internal/domain"
	"github.com/forgeline/content-studio/internal/store"
)

func newResult(topic string) *domain.GenerationResult {
	return &domain.GenerationResult{
		ID:      uuid.New(),
		Topic:   topic,
		Content: "content about " + topic,
	}
}

func TestMemoryHistory_AppendAndList(t *testing.T) {
	s := store.NewMemoryHistory(50)
	ctx := context.Background()

	first := newResult("first")
	second := newResult("second")

	if err := s.Append(ctx, first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Append(ctx, second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := s.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Topic != "first" || entries[1].Topic != "second" {
		t.Error("entries should be in insertion order")
	}
}

func TestMemoryHistory_EvictsOldest(t *testing.T) {
	s := store.NewMemoryHistory(50)
	ctx := context.Background()

	oldest := newResult("topic 0")
	if err := s.Append(ctx, oldest); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i <= 50; i++ {
		if err := s.Append(ctx, newResult(fmt.Sprintf("topic %d", i))); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	entries, err := s.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 50 {
		t.Fatalf("history should be capped at 50, got %d", len(entries))
	}
	if entries[0].Topic != "topic 1" {
		t.Errorf("oldest entry should be evicted first, head is %q", entries[0].Topic)
	}
	if entries[49].Topic != "topic 50" {
		t.Errorf("newest entry should be retained, tail is %q", entries[49].Topic)
	}

	if _, err := s.Get(ctx, oldest.ID); err != store.ErrNotFound {
		t.Errorf("evicted entry should be gone, got %v", err)
	}
}

func TestMemoryHistory_Get(t *testing.T) {
	s := store.NewMemoryHistory(50)
	ctx := context.Background()

	result := newResult("lookup")
	if err := s.Append(ctx, result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.Get(ctx, result.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Topic != "lookup" {
		t.Errorf("unexpected topic: %s", got.Topic)
	}

	if _, err := s.Get(ctx, uuid.New()); err != store.ErrNotFound {
		t.Errorf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestMemoryHistory_ListReturnsSnapshot(t *testing.T) {
	s := store.NewMemoryHistory(50)
	ctx := context.Background()

	if err := s.Append(ctx, newResult("original")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, _ := s.List(ctx)
	entries[0] = newResult("mutated")

	again, _ := s.List(ctx)
	if again[0].Topic != "original" {
		t.Error("mutating a returned slice should not affect the store")
	}
}

func TestMemoryUsers_CreateAndGet(t *testing.T) {
	s := store.NewMemoryUsers()
	ctx := context.Background()

	user := &domain.User{Email: "a@example.com", FullName: "Alice", PasswordHash: "hash"}
	if err := s.Create(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.GetByEmail(ctx, "a@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FullName != "Alice" {
		t.Errorf("unexpected full name: %s", got.FullName)
	}

	if _, err := s.GetByEmail(ctx, "missing@example.com"); err != store.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryUsers_DuplicateEmail(t *testing.T) {
	s := store.NewMemoryUsers()
	ctx := context.Background()

	user := &domain.User{Email: "a@example.com", FullName: "Alice"}
	if err := s.Create(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Create(ctx, &domain.User{Email: "a@example.com", FullName: "Bob"}); err != store.ErrDuplicateEmail {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}
