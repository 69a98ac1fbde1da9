package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/forgeline/content-studio/internal/api/response"
	"github.com/forgeline/content-studio/internal/archive"
	"github.com/forgeline/content-studio/internal/domain"
	"github.com/rs/zerolog/log"
)

// DownloadHandler serves content bundles as ZIP attachments
type DownloadHandler struct {
	bundler *archive.Bundler
}

// NewDownloadHandler creates a new download handler
func NewDownloadHandler(bundler *archive.Bundler) *DownloadHandler {
	return &DownloadHandler{bundler: bundler}
}

// Download packs the posted content (and image, when reachable) into a ZIP
func (h *DownloadHandler) Download(w http.ResponseWriter, r *http.Request) {
	var req domain.DownloadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if req.Content == "" {
		response.BadRequest(w, "Content is required")
		return
	}

	data, err := h.bundler.Build(r.Context(), req.Content, req.ImageURL)
	if err != nil {
		log.Error().Err(err).Msg("failed to build bundle")
		response.InternalError(w)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="generated-content.zip"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
