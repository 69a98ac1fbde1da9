package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContentType selects the structural template family for generated text
type ContentType string

const (
	ContentTypeBlog    ContentType = "blog"
	ContentTypeArticle ContentType = "article"
	ContentTypeSocial  ContentType = "social"
	ContentTypeYouTube ContentType = "youtube"
	ContentTypeEmail   ContentType = "email"
)

// Content length keywords
const (
	LengthShort  = "short"
	LengthMedium = "medium"
	LengthLong   = "long"
)

// Image size keywords
const (
	ImageSizeSmall  = "small"
	ImageSizeMedium = "medium"
	ImageSizeLarge  = "large"
)

// GenerationRequest represents a content generation request
type GenerationRequest struct {
	Topic       string             `json:"topic" validate:"required,max=500"`
	Tone        string             `json:"tone" validate:"omitempty,max=100"`
	ContentType ContentType        `json:"content_type" validate:"omitempty,oneof=blog article social youtube email"`
	Keywords    []string           `json:"keywords" validate:"omitempty,dive,max=100"`
	Options     *GenerationOptions `json:"options,omitempty"`
}

// GenerationOptions represents optional generation parameters.
// GenerateImage defaults to true, so it is a pointer to distinguish
// "omitted" from an explicit false.
type GenerationOptions struct {
	GenerateImage *bool  `json:"generate_image,omitempty"`
	ImageStyle    string `json:"image_style,omitempty" validate:"omitempty,max=100"`
	ImageSize     string `json:"image_size,omitempty" validate:"omitempty,oneof=small medium large"`
	Length        string `json:"length,omitempty" validate:"omitempty,oneof=short medium long"`
	Platform      string `json:"platform,omitempty" validate:"omitempty,max=100"`
	PostCount     int    `json:"post_count,omitempty" validate:"omitempty,min=1,max=20"`
	Purpose       string `json:"purpose,omitempty" validate:"omitempty,max=200"`
}

// ApplyDefaults fills unset request fields with their documented defaults
func (r *GenerationRequest) ApplyDefaults() {
	if r.Tone == "" {
		r.Tone = "professional"
	}
	if r.ContentType == "" {
		r.ContentType = ContentTypeBlog
	}
	if r.Options == nil {
		r.Options = &GenerationOptions{}
	}
	if r.Options.GenerateImage == nil {
		enabled := true
		r.Options.GenerateImage = &enabled
	}
	if r.Options.ImageStyle == "" {
		r.Options.ImageStyle = "realistic"
	}
	if r.Options.ImageSize == "" {
		r.Options.ImageSize = ImageSizeMedium
	}
	if r.Options.Length == "" {
		r.Options.Length = LengthMedium
	}
}

// ImageDescriptor describes a generated or stock image. The stock strategy
// fills Prompt/Style/Size; the diffusion strategy fills Format and, on
// degraded output, Error.
type ImageDescriptor struct {
	URL    string `json:"url"`
	Prompt string `json:"prompt,omitempty"`
	Style  string `json:"style,omitempty"`
	Size   string `json:"size,omitempty"`
	Format string `json:"format,omitempty"`
	Error  string `json:"error,omitempty"`
}

// GenerationResult is a single history entry. Immutable after creation.
type GenerationResult struct {
	ID          uuid.UUID        `json:"id"`
	Topic       string           `json:"topic"`
	Tone        string           `json:"tone"`
	ContentType ContentType      `json:"content_type"`
	Keywords    []string         `json:"keywords"`
	Content     string           `json:"content"`
	Timestamp   time.Time        `json:"timestamp"`
	ImageData   *ImageDescriptor `json:"image_data,omitempty"`
}

// ScrapeRequest represents a page scraping request
type ScrapeRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// DownloadRequest represents a content bundle download request
type DownloadRequest struct {
	Content  string `json:"content" validate:"required"`
	ImageURL string `json:"image_url,omitempty"`
}
