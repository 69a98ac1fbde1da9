package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/forgeline/content-studio/internal/api/response"
	"github.com/forgeline/content-studio/internal/domain"
	"github.com/forgeline/content-studio/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var validate = validator.New()

// ContentHandler handles generation and history endpoints
type ContentHandler struct {
	contentService *service.ContentService
}

// NewContentHandler creates a new content handler
func NewContentHandler(contentService *service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// Generate handles content generation requests
func (h *ContentHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req domain.GenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if req.Topic == "" {
		response.BadRequest(w, "Topic is required")
		return
	}

	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	result, err := h.contentService.Generate(r.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("topic", req.Topic).Msg("generation failed")
		response.InternalError(w)
		return
	}

	var imageURL *string
	if result.ImageData != nil && result.ImageData.URL != "" {
		imageURL = &result.ImageData.URL
	}

	response.OK(w, map[string]any{
		"content":   result.Content,
		"timestamp": result.Timestamp,
		"id":        result.ID,
		"image":     imageURL,
	})
}

// History returns all retained generation results
func (h *ContentHandler) History(w http.ResponseWriter, r *http.Request) {
	history, err := h.contentService.History(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list history")
		response.InternalError(w)
		return
	}

	if history == nil {
		history = []*domain.GenerationResult{}
	}

	response.OK(w, map[string]any{"history": history})
}

// HistoryEntry returns a single generation result by id
func (h *ContentHandler) HistoryEntry(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "contentID"))
	if err != nil {
		response.NotFound(w, "Content not found")
		return
	}

	result, err := h.contentService.HistoryEntry(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(w, "Content not found")
			return
		}
		log.Error().Err(err).Str("id", id.String()).Msg("failed to get history entry")
		response.InternalError(w)
		return
	}

	response.OK(w, result)
}
