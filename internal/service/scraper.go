package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// Scraper fetches a URL and extracts its visible text, truncated to a
// fixed length. Stateless; a pure function of the URL.
type Scraper struct {
	client    *http.Client
	maxLength int
}

// NewScraper creates a new scraper
func NewScraper(timeout time.Duration, maxLength int) *Scraper {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	if maxLength <= 0 {
		maxLength = 3000
	}
	return &Scraper{
		client:    &http.Client{Timeout: timeout},
		maxLength: maxLength,
	}
}

// Scrape fetches the page and returns its plain text with script and style
// content removed and whitespace collapsed
func (s *Scraper) Scrape(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("page returned status %d", resp.StatusCode)
	}

	text, err := extractText(resp.Body, s.maxLength)
	if err != nil {
		return "", fmt.Errorf("failed to parse page: %w", err)
	}
	return text, nil
}

// extractText walks the token stream, skipping script and style subtrees
// and joining the remaining text with single spaces
func extractText(r io.Reader, maxLength int) (string, error) {
	tokenizer := html.NewTokenizer(r)

	var (
		chunks  []string
		skipTag string
	)
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			if err := tokenizer.Err(); err != io.EOF {
				return "", err
			}
			text := strings.Join(chunks, " ")
			runes := []rune(text)
			if len(runes) > maxLength {
				text = string(runes[:maxLength])
			}
			return text, nil

		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if tag := string(name); tag == "script" || tag == "style" {
				skipTag = tag
			}

		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if string(name) == skipTag {
				skipTag = ""
			}

		case html.TextToken:
			if skipTag != "" {
				continue
			}
			chunks = append(chunks, strings.Fields(string(tokenizer.Text()))...)
		}
	}
}
