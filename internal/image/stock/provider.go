package stock

import (
	"context"
	"errors"
	"strings"

	"github.com/forgeline/content-studio/internal/domain"
	"github.com/forgeline/content-studio/internal/image"
)

// ErrEmptyPrompt is returned when no prompt is provided
var ErrEmptyPrompt = errors.New("no prompt provided for image generation")

const baseURL = "https://source.unsplash.com"

// Provider implements image.Provider by constructing stock photo search
// URLs. No network call happens at generation time.
type Provider struct{}

// NewProvider creates a new stock photo provider
func NewProvider() image.Provider {
	return &Provider{}
}

// Name returns the strategy identifier
func (p *Provider) Name() string {
	return "stock"
}

// Provide builds a stock photo URL for the prompt
func (p *Provider) Provide(_ context.Context, prompt, style, size string) (*domain.ImageDescriptor, error) {
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}

	query := strings.ReplaceAll(prompt, " ", "+")
	if style != "" && style != "realistic" {
		query += "+" + style
	}

	return &domain.ImageDescriptor{
		URL:    baseURL + "/" + dimensions(size) + "/?" + query,
		Prompt: prompt,
		Style:  style,
		Size:   size,
	}, nil
}

// dimensions maps a size keyword to pixel dimensions; unrecognized keywords
// get the medium default.
func dimensions(size string) string {
	switch size {
	case domain.ImageSizeSmall:
		return "640x360"
	case domain.ImageSizeLarge:
		return "1280x720"
	case domain.ImageSizeMedium:
		return "800x450"
	default:
		return "800x450"
	}
}
