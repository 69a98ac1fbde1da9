package handler

import (
	"encoding/json"
	"net/http"

	"github.com/forgeline/content-studio/internal/api/response"
	"github.com/forgeline/content-studio/internal/domain"
	"github.com/forgeline/content-studio/internal/service"
	"github.com/rs/zerolog/log"
)

// ScrapeHandler exposes the page scraper
type ScrapeHandler struct {
	scraper *service.Scraper
}

// NewScrapeHandler creates a new scrape handler
func NewScrapeHandler(scraper *service.Scraper) *ScrapeHandler {
	return &ScrapeHandler{scraper: scraper}
}

// Scrape fetches a URL and returns its plain text
func (h *ScrapeHandler) Scrape(w http.ResponseWriter, r *http.Request) {
	var req domain.ScrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, "URL is required")
		return
	}

	text, err := h.scraper.Scrape(r.Context(), req.URL)
	if err != nil {
		log.Error().Err(err).Str("url", req.URL).Msg("scrape failed")
		response.BadRequest(w, "failed to fetch page")
		return
	}

	response.OK(w, map[string]string{"text": text})
}
