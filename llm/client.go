package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Message is one chat turn sent to the model
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of a chat-completion call
type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

// ChatResponse holds the subset of the reply Moodify reads
type ChatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// Options configures a Client
type Options struct {
	URL         string
	APIKey      string
	Model       string
	Temperature float64
	Timeout     time.Duration
}

// Client talks to a single chat-completion endpoint. It does not retry;
// the user re-triggers a failed request by hand.
type Client struct {
	url         string
	apiKey      string
	model       string
	temperature float64
	httpClient  *http.Client
}

// NewClient creates a chat-completion client. A zero timeout falls back to 60s.
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		url:         opts.URL,
		apiKey:      opts.APIKey,
		model:       opts.Model,
		temperature: opts.Temperature,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// Model returns the configured model name
func (c *Client) Model() string {
	return c.model
}

// Complete sends prompt as a single user message and returns the content of
// the first choice
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(ChatRequest{
		Model:       c.model,
		Messages:    []Message{{Role: "user", Content: prompt}},
		Temperature: c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", acceptEncoding)

	log.Debug().
		Str("component", "llm").
		Str("url", c.url).
		Str("model", c.model).
		Int("prompt_bytes", len(prompt)).
		Msg("sending chat completion")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	decompressed, wasCompressed, err := DecompressBody(bodyBytes, resp.Header.Get("Content-Encoding"))
	if err != nil {
		return "", fmt.Errorf("failed to decompress response: %w", err)
	}
	if wasCompressed {
		log.Debug().
			Str("component", "llm").
			Int("compressed", len(bodyBytes)).
			Int("decompressed", len(decompressed)).
			Msg("decompressed response")
		bodyBytes = decompressed
	}

	log.Info().
		Str("component", "llm").
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("chat completion returned")

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	var chat ChatResponse
	if err := json.Unmarshal(bodyBytes, &chat); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return "", ErrNoChoices
	}

	return chat.Choices[0].Message.Content, nil
}
