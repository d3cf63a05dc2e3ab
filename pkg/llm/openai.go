package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const defaultOpenAIEndpoint = "https://api.openai.com/v1/chat/completions"

// OpenAIClient praat met de chat-completions API van OpenAI.
type OpenAIClient struct {
	endpoint string
	model    string
}

var _ Provider = (*OpenAIClient)(nil)

func NewOpenAIClient(endpoint string) *OpenAIClient {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = defaultOpenAIEndpoint
	}
	return &OpenAIClient{
		endpoint: endpoint,
		model:    "gpt-4o",
	}
}

func (c *OpenAIClient) Name() string { return "openai" }

func (c *OpenAIClient) Complete(ctx context.Context, apiKey, title string) (string, error) {
	if apiKey == "" {
		return "", &ProviderError{Provider: c.Name(), Err: fmt.Errorf("missing api key")}
	}

	body, err := json.Marshal(map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": "You are a professional article writer."},
			{"role": "user", "content": articlePrompt(title)},
		},
		"temperature": promptTemperature,
		"max_tokens":  promptMaxTokens,
	})
	if err != nil {
		return "", &ProviderError{Provider: c.Name(), Err: fmt.Errorf("marshal payload: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", &ProviderError{Provider: c.Name(), Err: fmt.Errorf("new request: %w", err)}
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := HTTPClient.Do(req)
	if err != nil {
		return "", &ProviderError{Provider: c.Name(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", &ProviderError{
			Provider: c.Name(),
			Err:      fmt.Errorf("completion request failed: %s: %s", resp.Status, strings.TrimSpace(string(payload))),
		}
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &ProviderError{Provider: c.Name(), Err: fmt.Errorf("decode response: %w", err)}
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", &ProviderError{Provider: c.Name(), Err: fmt.Errorf("empty completion in response")}
	}

	return out.Choices[0].Message.Content, nil
}
