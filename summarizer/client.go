package summarizer

import (
	"context"
	"fmt"

	"discord-summarizer/models"

	"github.com/sashabaranov/go-openai"
)

// Client generates a natural-language summary of a slice of stored messages.
type Client interface {
	Summarize(ctx context.Context, messages []models.StoredMessage, channelName string, hours int) (string, error)
}

// OpenAIClient talks to any OpenAI-compatible chat completion endpoint. The
// default configuration points it at Gemini's compatibility endpoint.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates a summarization client. baseURL may be empty to use
// the provider's default endpoint.
func NewOpenAIClient(apiKey, baseURL, model string) *OpenAIClient {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAIClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

// Summarize formats the messages into a transcript, builds the prompt and
// requests a completion. An empty window short-circuits with a canned reply
// instead of spending an API call.
func (c *OpenAIClient) Summarize(ctx context.Context, messages []models.StoredMessage, channelName string, hours int) (string, error) {
	if len(messages) == 0 {
		return fmt.Sprintf("Looks like #%s was completely quiet for the past %d hour(s) — not a single message to summarize!", channelName, hours), nil
	}

	transcript := FormatMessages(messages, channelName, hours)
	prompt := BuildPrompt(transcript, channelName, hours)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("summarization service returned an empty response")
	}
	return resp.Choices[0].Message.Content, nil
}
