package diffusion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/forgeline/content-studio/internal/domain"
	"github.com/rs/zerolog/log"
)

const (
	defaultModel   = "stabilityai/stable-diffusion-xl-base-1.0"
	realisticModel = "runwayml/stable-diffusion-v1-5"
	artisticModel  = "CompVis/stable-diffusion-v1-4"

	negativePrompt = "blurry, distorted, low quality, ugly, poorly rendered"
	inferenceSteps = 30
	guidanceScale  = 7.5

	maxDimension     = 512
	defaultDimension = 512
)

// Provider implements image.Provider against a hosted diffusion model.
// Generated images are saved under dir; every failure degrades to a
// placeholder descriptor.
type Provider struct {
	token   string
	dir     string
	format  string
	client  *http.Client
	baseURL string
}

// NewProvider creates a new diffusion provider writing images under dir
func NewProvider(token, dir string, timeout time.Duration) *Provider {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Provider{
		token:   token,
		dir:     dir,
		format:  "png",
		client:  &http.Client{Timeout: timeout},
		baseURL: "https://api-inference.huggingface.co/models",
	}
}

// Name returns the strategy identifier
func (p *Provider) Name() string {
	return "diffusion"
}

type diffusionRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters diffusionParameters `json:"parameters"`
}

type diffusionParameters struct {
	NegativePrompt    string  `json:"negative_prompt"`
	NumInferenceSteps int     `json:"num_inference_steps"`
	GuidanceScale     float64 `json:"guidance_scale"`
	Width             int     `json:"width"`
	Height            int     `json:"height"`
}

// Provide generates an image for the prompt. Without a credential it
// returns a placeholder URL embedding the prompt text; on any remote or
// local failure it returns a placeholder-with-error descriptor.
func (p *Provider) Provide(ctx context.Context, prompt, style, size string) (*domain.ImageDescriptor, error) {
	if p.token == "" {
		return &domain.ImageDescriptor{
			URL:    placeholderURL(strings.ReplaceAll(prompt, " ", "+")),
			Format: p.format,
		}, nil
	}

	width, height := parseSize(size)
	enhanced := fmt.Sprintf("%s. Style: %s. Highly detailed, professional quality.", prompt, style)

	body, err := json.Marshal(diffusionRequest{
		Inputs: enhanced,
		Parameters: diffusionParameters{
			NegativePrompt:    negativePrompt,
			NumInferenceSteps: inferenceSteps,
			GuidanceScale:     guidanceScale,
			Width:             width,
			Height:            height,
		},
	})
	if err != nil {
		return p.errorDescriptor("Error", err), nil
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", p.baseURL+"/"+selectModel(style), bytes.NewReader(body))
	if err != nil {
		return p.errorDescriptor("Error", err), nil
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.token)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		log.Error().Err(err).Msg("diffusion request failed")
		return p.errorDescriptor("Error", err), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return p.errorDescriptor("Generation+Failed", fmt.Errorf("status code: %d", resp.StatusCode)), nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return p.errorDescriptor("Error", err), nil
	}

	path, err := p.save(data)
	if err != nil {
		log.Error().Err(err).Msg("failed to save generated image")
		return p.errorDescriptor("Error", err), nil
	}

	return &domain.ImageDescriptor{
		URL:    path,
		Format: p.format,
	}, nil
}

// save writes image bytes under the generated-content directory with a
// randomized filename and returns the serving path.
func (p *Provider) save(data []byte) (string, error) {
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create image directory: %w", err)
	}

	filename := fmt.Sprintf("generated_%d.%s", 1000+rand.Intn(9000), p.format)
	if err := os.WriteFile(filepath.Join(p.dir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}

	return "/static/generated/" + filename, nil
}

func (p *Provider) errorDescriptor(text string, err error) *domain.ImageDescriptor {
	return &domain.ImageDescriptor{
		URL:    placeholderURL(text),
		Format: p.format,
		Error:  err.Error(),
	}
}

func placeholderURL(text string) string {
	return "https://placehold.co/600x400/4287f5/ffffff?text=" + text
}

// selectModel picks a model by style keyword family
func selectModel(style string) string {
	switch strings.ToLower(style) {
	case "realistic", "photorealistic", "photograph":
		return realisticModel
	case "artistic", "creative", "stylized":
		return artisticModel
	default:
		return defaultModel
	}
}

// parseSize parses a "WxH" size string; invalid or missing input maps to
// the 512x512 default and each dimension is capped at 512.
func parseSize(size string) (int, int) {
	parts := strings.SplitN(strings.ToLower(size), "x", 2)
	if len(parts) != 2 {
		return defaultDimension, defaultDimension
	}

	width, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return defaultDimension, defaultDimension
	}
	height, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return defaultDimension, defaultDimension
	}

	if width > maxDimension {
		width = maxDimension
	}
	if height > maxDimension {
		height = maxDimension
	}
	return width, height
}
