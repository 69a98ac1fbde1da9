package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/forgeline/content-studio/internal/domain"
	"github.com/forgeline/content-studio/internal/generator"
	"github.com/forgeline/content-studio/internal/image"
	"github.com/forgeline/content-studio/internal/store"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ContentService orchestrates content generation: remote text attempt with
// offline fallback, optional image attachment, and history recording.
type ContentService struct {
	generators   *generator.Router
	images       image.Provider
	history      store.HistoryStore
	imageEnabled bool
}

// NewContentService creates a new content service
func NewContentService(
	generators *generator.Router,
	images image.Provider,
	history store.HistoryStore,
	imageEnabled bool,
) *ContentService {
	return &ContentService{
		generators:   generators,
		images:       images,
		history:      history,
		imageEnabled: imageEnabled,
	}
}

// Generate produces a content result and records it in history. Remote
// generation failure is not an error: the offline template branch is taken
// explicitly and the request still succeeds.
func (s *ContentService) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	req.ApplyDefaults()

	genReq := generator.Request{
		Topic:       req.Topic,
		Tone:        req.Tone,
		ContentType: string(req.ContentType),
		Keywords:    req.Keywords,
		Length:      req.Options.Length,
		Platform:    req.Options.Platform,
		PostCount:   req.Options.PostCount,
		Purpose:     req.Options.Purpose,
	}

	content, err := s.generateRemote(ctx, genReq)
	if err != nil {
		log.Info().Err(err).Str("topic", req.Topic).Msg("remote generation unavailable, using offline template")
		content = generator.FallbackContent(genReq, time.Now())
	}

	var imageData *domain.ImageDescriptor
	if *req.Options.GenerateImage && s.imageEnabled {
		imageData = s.attachImage(ctx, req)
		content = image.EmbedReference(content, req.Topic, imageData)
	}

	result := &domain.GenerationResult{
		ID:          uuid.New(),
		Topic:       req.Topic,
		Tone:        req.Tone,
		ContentType: req.ContentType,
		Keywords:    req.Keywords,
		Content:     content,
		Timestamp:   time.Now(),
		ImageData:   imageData,
	}

	if err := s.history.Append(ctx, result); err != nil {
		return nil, err
	}

	return result, nil
}

// generateRemote attempts the configured remote provider. Any failure,
// including an unconfigured provider or empty output, is returned for the
// caller to branch on.
func (s *ContentService) generateRemote(ctx context.Context, req generator.Request) (string, error) {
	provider, err := s.generators.GetProvider("")
	if err != nil {
		return "", err
	}

	resp, err := provider.Generate(ctx, req)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(resp.Content) == "" {
		return "", errors.New("empty generation output")
	}

	log.Debug().
		Str("provider", provider.Name()).
		Str("model", resp.Model).
		Int64("latency_ms", resp.LatencyMs).
		Msg("remote generation succeeded")

	return resp.Content, nil
}

// attachImage builds the image prompt from the topic and first keywords and
// asks the configured strategy for a descriptor
func (s *ContentService) attachImage(ctx context.Context, req domain.GenerationRequest) *domain.ImageDescriptor {
	keywords := req.Keywords
	if len(keywords) > 3 {
		keywords = keywords[:3]
	}
	prompt := strings.TrimSpace(req.Topic + " " + strings.Join(keywords, " "))

	img, err := s.images.Provide(ctx, prompt, req.Options.ImageStyle, req.Options.ImageSize)
	if err != nil {
		log.Warn().Err(err).Msg("image generation skipped")
		return nil
	}
	return img
}

// History returns all retained generation results in insertion order
func (s *ContentService) History(ctx context.Context) ([]*domain.GenerationResult, error) {
	return s.history.List(ctx)
}

// HistoryEntry returns a single generation result by id
func (s *ContentService) HistoryEntry(ctx context.Context, id uuid.UUID) (*domain.GenerationResult, error) {
	result, err := s.history.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return result, nil
}
