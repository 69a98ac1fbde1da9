package generator

import "context"

// Request contains text generation parameters
type Request struct {
	Topic       string
	Tone        string
	ContentType string
	Keywords    []string
	Length      string
	Platform    string
	PostCount   int
	Purpose     string
}

// Response contains the generation result
type Response struct {
	Content   string
	Model     string
	LatencyMs int64
}

// Provider defines the interface for remote text generation backends
type Provider interface {
	// Name returns the provider identifier
	Name() string

	// IsConfigured checks if provider has valid credentials
	IsConfigured() bool

	// Generate produces content for the request
	Generate(ctx context.Context, req Request) (*Response, error)
}
