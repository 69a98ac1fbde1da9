package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func readEntries(t *testing.T, data []byte) map[string][]byte {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("invalid archive: %v", err)
	}

	entries := make(map[string][]byte)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening %s: %v", f.Name, err)
		}
		body, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("reading %s: %v", f.Name, err)
		}
		entries[f.Name] = body
	}
	return entries
}

func TestBuild_ContentOnly(t *testing.T) {
	b := NewBundler(5 * time.Second)

	data, err := b.Build(context.Background(), "# My Post\n\nbody", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := readEntries(t, data)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if string(entries["content.md"]) != "# My Post\n\nbody" {
		t.Error("content.md should hold the markdown verbatim")
	}
}

func TestBuild_WithImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("png bytes"))
	}))
	defer server.Close()

	b := NewBundler(5 * time.Second)

	data, err := b.Build(context.Background(), "content", server.URL+"/pic.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := readEntries(t, data)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if string(entries["image.png"]) != "png bytes" {
		t.Error("image.png should hold the fetched bytes")
	}
}

func TestBuild_UnreachableImageSkipped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	b := NewBundler(5 * time.Second)

	data, err := b.Build(context.Background(), "content", server.URL+"/missing.png")
	if err != nil {
		t.Fatalf("image failure should not fail the build: %v", err)
	}

	entries := readEntries(t, data)
	if len(entries) != 1 {
		t.Fatalf("expected only content.md, got %d entries", len(entries))
	}
	if _, ok := entries["content.md"]; !ok {
		t.Error("content.md should be present")
	}
}
