package labelai

import (
	"encoding/base64"
	"strings"
)

// claudeContent is a content block of the Anthropic messages format, used by
// both the Anthropic API and Bedrock.
type claudeContent struct {
	Type   string        `json:"type"`
	Text   string        `json:"text,omitempty"`
	Source *claudeSource `json:"source,omitempty"`
}

type claudeSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type claudeMessage struct {
	Role    string          `json:"role"`
	Content []claudeContent `json:"content"`
}

// ClaudeRequest is the messages request body. Model is empty for Bedrock,
// AnthropicVersion is empty for the Anthropic API.
type ClaudeRequest struct {
	AnthropicVersion string          `json:"anthropic_version,omitempty"`
	Model            string          `json:"model,omitempty"`
	MaxTokens        int             `json:"max_tokens"`
	System           string          `json:"system,omitempty"`
	Messages         []claudeMessage `json:"messages"`
	Temperature      float64         `json:"temperature"`
}

// ClaudeResponse is the subset of the messages response we use.
type ClaudeResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// Text concatenates all text blocks of the response.
func (r ClaudeResponse) Text() string {
	var b strings.Builder
	for _, c := range r.Content {
		if c.Type == "text" {
			b.WriteString(c.Text)
		}
	}

	return b.String()
}

// NewClaudeRequest builds a single-turn request carrying the label image and
// the rendered prompt.
func NewClaudeRequest(in Input, maxTokens int) ClaudeRequest {
	return ClaudeRequest{
		MaxTokens: maxTokens,
		System:    SystemPrompt(),
		Messages: []claudeMessage{{
			Role: "user",
			Content: []claudeContent{
				{
					Type: "image",
					Source: &claudeSource{
						Type:      "base64",
						MediaType: in.ContentType,
						Data:      base64.StdEncoding.EncodeToString(in.Image),
					},
				},
				{Type: "text", Text: BuildPrompt(in)},
			},
		}},
	}
}
