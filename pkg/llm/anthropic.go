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

const defaultAnthropicEndpoint = "https://api.anthropic.com/v1/messages"

// AnthropicClient praat met de messages API van Anthropic.
type AnthropicClient struct {
	endpoint string
	model    string
}

var _ Provider = (*AnthropicClient)(nil)

func NewAnthropicClient(endpoint string) *AnthropicClient {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = defaultAnthropicEndpoint
	}
	return &AnthropicClient{
		endpoint: endpoint,
		model:    "claude-3-5-sonnet-20241022",
	}
}

func (c *AnthropicClient) Name() string { return "anthropic" }

func (c *AnthropicClient) Complete(ctx context.Context, apiKey, title string) (string, error) {
	if apiKey == "" {
		return "", &ProviderError{Provider: c.Name(), Err: fmt.Errorf("missing api key")}
	}

	body, err := json.Marshal(map[string]any{
		"model":       c.model,
		"max_tokens":  promptMaxTokens,
		"temperature": promptTemperature,
		"messages": []map[string]string{
			{"role": "user", "content": articlePrompt(title)},
		},
	})
	if err != nil {
		return "", &ProviderError{Provider: c.Name(), Err: fmt.Errorf("marshal payload: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", &ProviderError{Provider: c.Name(), Err: fmt.Errorf("new request: %w", err)}
	}
	req.Header.Set("x-api-key", apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")
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
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &ProviderError{Provider: c.Name(), Err: fmt.Errorf("decode response: %w", err)}
	}
	if len(out.Content) == 0 || strings.TrimSpace(out.Content[0].Text) == "" {
		return "", &ProviderError{Provider: c.Name(), Err: fmt.Errorf("empty completion in response")}
	}

	return out.Content[0].Text, nil
}
