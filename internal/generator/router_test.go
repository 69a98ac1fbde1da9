package generator

import (
	"context"
	"testing"
)

type staticProvider struct {
	name       string
	configured bool
}

func (p *staticProvider) Name() string       { return p.name }
func (p *staticProvider) IsConfigured() bool { return p.configured }
func (p *staticProvider) Generate(context.Context, Request) (*Response, error) {
	return &Response{Content: "out"}, nil
}

func TestRouter_GetProvider(t *testing.T) {
	r := NewRouter("primary")
	r.RegisterProvider(&staticProvider{name: "primary", configured: true})
	r.RegisterProvider(&staticProvider{name: "secondary", configured: false})

	p, err := r.GetProvider("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != "primary" {
		t.Errorf("empty name should resolve the default, got %s", p.Name())
	}

	if _, err := r.GetProvider("secondary"); err == nil {
		t.Error("unconfigured provider should not be returned")
	}
	if _, err := r.GetProvider("missing"); err == nil {
		t.Error("unknown provider should not be returned")
	}
}

func TestRouter_ListProviders(t *testing.T) {
	r := NewRouter("primary")
	r.RegisterProvider(&staticProvider{name: "primary", configured: true})
	r.RegisterProvider(&staticProvider{name: "secondary", configured: false})

	names := r.ListProviders()
	if len(names) != 1 || names[0] != "primary" {
		t.Errorf("only configured providers should be listed, got %v", names)
	}
}

func TestRouter_Empty(t *testing.T) {
	r := NewRouter("huggingface")

	if _, err := r.GetProvider(""); err == nil {
		t.Error("empty router should return an error")
	}
	if names := r.ListProviders(); len(names) != 0 {
		t.Errorf("empty router should list nothing, got %v", names)
	}
}
