package stock

import (
	"context"
	"strings"
	"testing"
)

func TestProvide_BuildsURL(t *testing.T) {
	p := NewProvider()

	img, err := p.Provide(context.Background(), "mountain sunrise", "realistic", "medium")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(img.URL, "https://source.unsplash.com/800x450/?") {
		t.Errorf("unexpected URL prefix: %s", img.URL)
	}
	if !strings.Contains(img.URL, "mountain+sunrise") {
		t.Errorf("spaces should become plus signs: %s", img.URL)
	}
	if img.Prompt != "mountain sunrise" {
		t.Errorf("unexpected prompt: %s", img.Prompt)
	}
}

func TestProvide_StyleSuffix(t *testing.T) {
	p := NewProvider()

	img, err := p.Provide(context.Background(), "city skyline", "artistic", "medium")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(img.URL, "city+skyline+artistic") {
		t.Errorf("non-realistic style should be appended to the query: %s", img.URL)
	}

	img, err = p.Provide(context.Background(), "city skyline", "realistic", "medium")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(img.URL, "realistic") {
		t.Errorf("realistic style should not appear in the query: %s", img.URL)
	}
}

func TestProvide_EmptyPrompt(t *testing.T) {
	p := NewProvider()

	if _, err := p.Provide(context.Background(), "", "realistic", "medium"); err != ErrEmptyPrompt {
		t.Errorf("expected ErrEmptyPrompt, got %v", err)
	}
}

func TestDimensions(t *testing.T) {
	tests := []struct {
		size string
		want string
	}{
		{"small", "640x360"},
		{"medium", "800x450"},
		{"large", "1280x720"},
		{"", "800x450"},
		{"enormous", "800x450"},
	}

	for _, tt := range tests {
		if got := dimensions(tt.size); got != tt.want {
			t.Errorf("dimensions(%q) = %s, want %s", tt.size, got, tt.want)
		}
	}
}
