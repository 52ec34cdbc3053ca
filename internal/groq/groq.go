// Package groq calls a chat-completion endpoint that speaks the OpenAI API,
// which Groq does.
package groq

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Temperature is the fixed sampling temperature for all requests.
const Temperature = 0.7

// Client wraps the completion API used to enrich reports and answer chat
// messages. Failures are returned as errors; callers decide how to surface
// them. There is no retry.
type Client struct {
	api   *openai.Client
	model string
}

// New builds a client for an OpenAI-compatible endpoint. baseURL selects the
// provider; model is sent with every request.
func New(apiKey, baseURL, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &Client{api: openai.NewClientWithConfig(cfg), model: model}
}

// Complete sends a single user prompt and returns the completion text with
// surrounding whitespace trimmed.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	text, err := c.create(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: prompt},
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// Chat sends a user message under a system persona and returns the reply
// exactly as the model produced it.
func (c *Client) Chat(ctx context.Context, system, message string) (string, error) {
	return c.create(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: system},
		{Role: openai.ChatMessageRoleUser, Content: message},
	})
}

func (c *Client) create(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: Temperature,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no completion choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
