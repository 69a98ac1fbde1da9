package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Bundler packs generated content and its image into a downloadable ZIP
type Bundler struct {
	client *http.Client
}

// NewBundler creates a new bundler
func NewBundler(timeout time.Duration) *Bundler {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Bundler{client: &http.Client{Timeout: timeout}}
}

// Build produces a ZIP containing content.md and, when the image URL is
// reachable, image.png. An unreachable image is skipped, not an error.
func (b *Bundler) Build(ctx context.Context, content, imageURL string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	f, err := zw.Create("content.md")
	if err != nil {
		return nil, fmt.Errorf("failed to create content entry: %w", err)
	}
	if _, err := f.Write([]byte(content)); err != nil {
		return nil, fmt.Errorf("failed to write content entry: %w", err)
	}

	if imageURL != "" {
		if data, err := b.fetchImage(ctx, imageURL); err != nil {
			log.Warn().Err(err).Str("url", imageURL).Msg("skipping image in bundle")
		} else {
			f, err := zw.Create("image.png")
			if err != nil {
				return nil, fmt.Errorf("failed to create image entry: %w", err)
			}
			if _, err := f.Write(data); err != nil {
				return nil, fmt.Errorf("failed to write image entry: %w", err)
			}
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}

	return buf.Bytes(), nil
}

func (b *Bundler) fetchImage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
