// Package chat is a small client for an OpenAI compatible chat completions
// endpoint used by the study assistant
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ayoisaiah/zenfocus/internal/apperr"
)

const (
	// Greeting opens every conversation.
	Greeting = "Hello! I'm your AI assistant. How can I help you today?"

	// EmptyReply is used when the endpoint answers without any content.
	EmptyReply = "Sorry, I couldn't process that request."

	// FailureReply replaces the answer when the endpoint cannot be reached.
	FailureReply = "Sorry, I'm having trouble connecting right now. Please try again later."
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

var (
	errNoEndpoint = &apperr.Error{
		Message: "no chat endpoint configured (set chat.endpoint)",
	}

	errStatus = &apperr.Error{
		Message: "chat endpoint returned %d: %s",
	}
)

// Message is a single turn of the conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Options configures a Client.
type Options struct {
	Endpoint     string
	APIKey       string
	Bearer       string
	SystemPrompt string
	MaxTokens    int
	Temperature  float64
	Timeout      time.Duration
}

// Client sends transcripts to the completions endpoint.
type Client struct {
	client *http.Client
	opts   Options
}

type completionRequest struct {
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func NewClient(opts Options) (*Client, error) {
	if opts.Endpoint == "" {
		return nil, errNoEndpoint
	}

	return &Client{
		opts:   opts,
		client: &http.Client{Timeout: opts.Timeout},
	}, nil
}

// Complete sends the system prompt followed by transcript and returns the
// assistant's reply.
func (c *Client) Complete(ctx context.Context, transcript []Message) (string, error) {
	messages := make([]Message, 0, len(transcript)+1)
	messages = append(messages, Message{Role: RoleSystem, Content: c.opts.SystemPrompt})
	messages = append(messages, transcript...)

	body, err := json.Marshal(completionRequest{
		Messages:    messages,
		MaxTokens:   c.opts.MaxTokens,
		Temperature: c.opts.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.opts.APIKey)

	if c.opts.Bearer != "" {
		req.Header.Set("Authorization", "Bearer "+c.opts.Bearer)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error.Message != "" {
			return "", errStatus.Fmt(resp.StatusCode, errResp.Error.Message)
		}

		return "", errStatus.Fmt(resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var result completionResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return EmptyReply, nil
	}

	return result.Choices[0].Message.Content, nil
}
