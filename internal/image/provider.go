package image

import (
	"context"
	"strings"

	"github.com/forgeline/content-studio/internal/domain"
)

// Provider defines the interface for image generation strategies
type Provider interface {
	// Name returns the strategy identifier
	Name() string

	// Provide returns an image descriptor for the prompt. Strategies
	// degrade to placeholder descriptors rather than failing; an error is
	// returned only for unusable input.
	Provide(ctx context.Context, prompt, style, size string) (*domain.ImageDescriptor, error)
}

// EmbedReference appends a markdown image link to content when the image has
// a usable URL, the content does not already embed an image, and the content
// does not end in a code fence. The original text is otherwise unmodified.
func EmbedReference(content, topic string, img *domain.ImageDescriptor) string {
	if img == nil || img.URL == "" {
		return content
	}
	if strings.Contains(content, "![") {
		return content
	}
	if strings.HasSuffix(strings.TrimSpace(content), "```") {
		return content
	}
	return content + "\n\n![Generated Image for " + topic + "](" + img.URL + ")"
}
