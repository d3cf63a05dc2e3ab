package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubProvider mocks Provider for orchestrator tests
type stubProvider struct {
	name  string
	text  string
	err   error
	calls int
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Complete(ctx context.Context, apiKey, title string) (string, error) {
	p.calls++
	if p.err != nil {
		return "", &ProviderError{Provider: p.name, Err: p.err}
	}
	return p.text, nil
}

type stubCreds map[string]string

func (c stubCreds) SecretFor(ctx context.Context, provider string) (string, error) {
	secret, ok := c[provider]
	if !ok {
		return "", fmt.Errorf("no API key found for %s", provider)
	}
	return secret, nil
}

func TestGenerate_FirstProviderWins(t *testing.T) {
	first := &stubProvider{name: "openai", text: "generated by openai"}
	second := &stubProvider{name: "anthropic", text: "generated by anthropic"}
	orch := NewOrchestrator(stubCreds{"openai": "sk-1", "anthropic": "sk-2"}, first, second)

	text, err := orch.Generate(context.Background(), "Titel")
	assert.NoError(t, err)
	assert.Equal(t, "generated by openai", text)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls, "second provider must not be tried after a success")
}

func TestGenerate_FallsBackToSecondProvider(t *testing.T) {
	first := &stubProvider{name: "openai", err: errors.New("rate limited")}
	second := &stubProvider{name: "anthropic", text: "generated by anthropic"}
	orch := NewOrchestrator(stubCreds{"openai": "sk-1", "anthropic": "sk-2"}, first, second)

	text, err := orch.Generate(context.Background(), "Titel")
	assert.NoError(t, err)
	assert.Equal(t, "generated by anthropic", text)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
}

func TestGenerate_AllProvidersFailed(t *testing.T) {
	first := &stubProvider{name: "openai", err: errors.New("rate limited")}
	second := &stubProvider{name: "anthropic", err: errors.New("overloaded")}
	orch := NewOrchestrator(stubCreds{"openai": "sk-1", "anthropic": "sk-2"}, first, second)

	_, err := orch.Generate(context.Background(), "Titel")
	assert.Error(t, err)

	var all *AllProvidersFailedError
	assert.True(t, errors.As(err, &all))
	assert.Len(t, all.Causes, 2)
	assert.Contains(t, err.Error(), "openai: rate limited")
	assert.Contains(t, err.Error(), "anthropic: overloaded")
}

func TestGenerate_MissingCredentialIsProviderFailure(t *testing.T) {
	first := &stubProvider{name: "openai", text: "unreachable"}
	second := &stubProvider{name: "anthropic", text: "generated by anthropic"}
	orch := NewOrchestrator(stubCreds{"anthropic": "sk-2"}, first, second)

	text, err := orch.Generate(context.Background(), "Titel")
	assert.NoError(t, err)
	assert.Equal(t, "generated by anthropic", text)
	assert.Equal(t, 0, first.calls, "provider without credential is skipped, not called")
}
