// Package llm implements the translation capability against an
// OpenAI-compatible chat-completions endpoint. The model is asked for a
// single JSON object keyed by locale code; anything that cannot be parsed
// as JSON at all is a fatal capability error, while structurally wrong
// content is left for the orchestrator to repair.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-sections/pkg/interfaces"
)

const (
	defaultTimeout = 30 * time.Second

	requestFailedCode   = "TRANSLATION_REQUEST_FAILED"
	requestRejectedCode = "TRANSLATION_REQUEST_REJECTED"
	responseInvalidCode = "TRANSLATION_RESPONSE_INVALID"
	responseMissingCode = "TRANSLATION_RESPONSE_EMPTY"
	payloadEncodingCode = "TRANSLATION_PAYLOAD_ENCODING"
)

// Config captures the connection settings for the chat-completions endpoint.
type Config struct {
	BaseURL      string
	APIKey       string
	Model        string
	SourceLocale string
	Timeout      time.Duration
}

// Client is a TranslationProvider backed by an LLM HTTP API.
type Client struct {
	cfg  Config
	http *resty.Client
}

var _ interfaces.TranslationProvider = (*Client)(nil)

// New constructs a client. The timeout guards the whole request; callers
// needing tighter control can cancel via context as usual.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		cfg:  cfg,
		http: resty.New().SetTimeout(timeout),
	}
}

// Translate sends the canonical payload to the model and decodes the
// locale-keyed response object.
func (c *Client) Translate(ctx context.Context, payload map[string]any, targetLocales []string) (map[string]any, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryExternal, "translation payload could not be encoded").
			WithTextCode(payloadEncodingCode)
	}

	body := map[string]any{
		"model": c.cfg.Model,
		"messages": []map[string]string{
			{"role": "system", "content": c.systemPrompt(targetLocales)},
			{"role": "user", "content": string(encoded)},
		},
		"temperature":     0.0,
		"response_format": map[string]string{"type": "json_object"},
	}

	r := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if c.cfg.APIKey != "" {
		r.SetHeader("Authorization", "Bearer "+c.cfg.APIKey)
	}

	rr, err := r.Post(c.endpoint())
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryExternal, "translation request failed").
			WithTextCode(requestFailedCode)
	}
	if rr.IsError() {
		return nil, goerrors.Wrap(
			fmt.Errorf("translation endpoint returned %s: %s", rr.Status(), rr.String()),
			goerrors.CategoryExternal, "translation request rejected").
			WithTextCode(requestRejectedCode)
	}

	// Decode the body directly rather than through resty's result
	// binding, which only fires for responses labeled application/json.
	var resp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(rr.Body(), &resp); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryExternal, "translation response envelope is not valid JSON").
			WithTextCode(responseInvalidCode)
	}
	if len(resp.Choices) == 0 {
		return nil, goerrors.Wrap(
			fmt.Errorf("no choices returned"),
			goerrors.CategoryExternal, "translation response empty").
			WithTextCode(responseMissingCode)
	}

	content := stripCodeFence(resp.Choices[0].Message.Content)
	var decoded map[string]any
	if err := json.Unmarshal([]byte(content), &decoded); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryExternal, "translation response is not valid JSON").
			WithTextCode(responseInvalidCode)
	}
	return decoded, nil
}

func (c *Client) endpoint() string {
	base := strings.TrimRight(c.cfg.BaseURL, "/")
	return base + "/chat/completions"
}

func (c *Client) systemPrompt(targetLocales []string) string {
	source := c.cfg.SourceLocale
	if source == "" {
		source = "the source language"
	}
	var b strings.Builder
	b.WriteString("You are a professional website translator. ")
	fmt.Fprintf(&b, "The user message is a JSON object with content authored in %s. ", source)
	fmt.Fprintf(&b, "Translate every string value into the following locales: %s. ", strings.Join(targetLocales, ", "))
	b.WriteString("Respond with a single JSON object keyed by locale code, each value mirroring the input object's structure with translated strings. ")
	b.WriteString("Translate array elements one by one, keeping array lengths and object keys identical. ")
	b.WriteString("Do not translate URLs, email addresses, or proper nouns. Respond with JSON only.")
	return b.String()
}

// stripCodeFence removes a ```json ... ``` wrapper some models insist on.
func stripCodeFence(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
