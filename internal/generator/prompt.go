package generator

import (
	"fmt"
	"strings"
)

// BuildPrompt creates a content-type-specific generation prompt
func BuildPrompt(req Request) string {
	keywords := strings.Join(req.Keywords, ", ")
	length := req.Length
	if length == "" {
		length = "medium"
	}

	switch req.ContentType {
	case "article":
		return fmt.Sprintf(`Write a %s article about %s.
Include these keywords: %s.
Format with proper headings and sections.
Length: %s.`, req.Tone, req.Topic, keywords, length)

	case "social":
		platform := req.Platform
		if platform == "" {
			platform = "social media"
		}
		postCount := req.PostCount
		if postCount == 0 {
			postCount = 3
		}
		return fmt.Sprintf(`Create %s posts about %s.
Include these keywords: %s.
Write %d posts with hashtags.
Tone: %s.`, platform, req.Topic, keywords, postCount, req.Tone)

	case "youtube":
		return fmt.Sprintf(`Create a YouTube video script about %s.
Include these keywords: %s.
Format with TITLE, DESCRIPTION, and SCRIPT sections.
Tone: %s.`, req.Topic, keywords, req.Tone)

	case "email":
		purpose := req.Purpose
		if purpose == "" {
			purpose = "informational"
		}
		return fmt.Sprintf(`Write a %s email about %s.
Include these keywords: %s.
Include subject line and body.
Purpose: %s.`, req.Tone, req.Topic, keywords, purpose)

	default: // blog
		return fmt.Sprintf(`Write a %s blog post about %s.
Include these keywords: %s.
Use markdown formatting.
Length: %s.`, req.Tone, req.Topic, keywords, length)
	}
}

// MaxOutputLength maps a length keyword to the maximum output size
func MaxOutputLength(length string) int {
	switch strings.ToLower(length) {
	case "short":
		return 300
	case "long":
		return 800
	case "medium":
		return 500
	default:
		return 500
	}
}

// StripPromptEcho removes the echoed prompt prefix some inference backends
// include in their output
func StripPromptEcho(output, prompt string) string {
	return strings.TrimSpace(strings.Replace(output, prompt, "", 1))
}
