package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/forgeline/content-studio/internal/generator"
)

// Provider implements generator.Provider for the Hugging Face Inference API
type Provider struct {
	token   string
	model   string
	client  *http.Client
	baseURL string
}

// NewProvider creates a new Hugging Face provider
func NewProvider(token, model string, timeout time.Duration) generator.Provider {
	if model == "" {
		model = "mistralai/Mistral-7B-Instruct-v0.2"
	}
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Provider{
		token:   token,
		model:   model,
		client:  &http.Client{Timeout: timeout},
		baseURL: "https://api-inference.huggingface.co/models",
	}
}

// Name returns the provider identifier
func (p *Provider) Name() string {
	return "huggingface"
}

// IsConfigured checks if provider has valid credentials
func (p *Provider) IsConfigured() bool {
	return p.token != ""
}

type inferenceRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters inferenceParameters `json:"parameters"`
}

type inferenceParameters struct {
	MaxLength   int     `json:"max_length"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	DoSample    bool    `json:"do_sample"`
}

type inferenceResult struct {
	GeneratedText string `json:"generated_text"`
}

// Generate produces content via the inference endpoint. The response body
// is either a list of result objects or a single object.
func (p *Provider) Generate(ctx context.Context, req generator.Request) (*generator.Response, error) {
	if !p.IsConfigured() {
		return nil, fmt.Errorf("huggingface provider is not configured (missing token)")
	}

	prompt := generator.BuildPrompt(req)

	body, err := json.Marshal(inferenceRequest{
		Inputs: prompt,
		Parameters: inferenceParameters{
			MaxLength:   generator.MaxOutputLength(req.Length),
			Temperature: 0.7,
			TopP:        0.9,
			DoSample:    true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	start := time.Now()

	httpReq, err := http.NewRequestWithContext(ctx, "POST", p.baseURL+"/"+p.model, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.token)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("huggingface returned status %d", resp.StatusCode)
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	text, err := extractGeneratedText(raw)
	if err != nil {
		return nil, err
	}

	return &generator.Response{
		Content:   generator.StripPromptEcho(text, prompt),
		Model:     p.model,
		LatencyMs: time.Since(start).Milliseconds(),
	}, nil
}

func extractGeneratedText(raw json.RawMessage) (string, error) {
	var list []inferenceResult
	if err := json.Unmarshal(raw, &list); err == nil {
		if len(list) == 0 {
			return "", fmt.Errorf("empty response from huggingface")
		}
		return list[0].GeneratedText, nil
	}

	var single inferenceResult
	if err := json.Unmarshal(raw, &single); err != nil {
		return "", fmt.Errorf("unexpected response shape: %w", err)
	}
	return single.GeneratedText, nil
}
