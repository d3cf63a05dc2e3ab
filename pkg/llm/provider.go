package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// HTTPClient is de gedeelde client voor alle uitgaande providercalls.
var HTTPClient = &http.Client{Timeout: 120 * time.Second}

const (
	promptTemperature = 0.7
	promptMaxTokens   = 2000
)

// Provider is één externe completion-dienst. Eén poging per aanroep; retries
// en fallback zijn een zaak van de Orchestrator.
type Provider interface {
	Name() string
	Complete(ctx context.Context, apiKey, title string) (string, error)
}

// ProviderError koppelt een mislukte poging aan de providernaam.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// AllProvidersFailedError aggregeert alle mislukte pogingen, in probeervolgorde.
type AllProvidersFailedError struct {
	Causes []*ProviderError
}

func (e *AllProvidersFailedError) Error() string {
	parts := make([]string, 0, len(e.Causes))
	for _, c := range e.Causes {
		parts = append(parts, c.Error())
	}
	return "all providers failed: " + strings.Join(parts, "; ")
}

// articlePrompt bouwt de vaste prompt rond de titel.
func articlePrompt(title string) string {
	return fmt.Sprintf(`Write a comprehensive article about the following topic:
%s

The article should be well-structured, informative, and engaging.
Include an introduction, main body with key points, and a conclusion.`, title)
}
