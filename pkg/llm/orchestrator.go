package llm

import (
	"context"
	"errors"
)

// CredentialSource levert het actuele geheim voor een provider. Er wordt per
// poging opgehaald, nooit gecachet: een sleutelwijziging geldt vanaf de
// eerstvolgende generatie.
type CredentialSource interface {
	SecretFor(ctx context.Context, provider string) (string, error)
}

// Orchestrator probeert providers in vaste volgorde tot er één slaagt.
type Orchestrator struct {
	creds     CredentialSource
	providers []Provider
}

func NewOrchestrator(creds CredentialSource, providers ...Provider) *Orchestrator {
	return &Orchestrator{creds: creds, providers: providers}
}

// Generate geeft de tekst van de eerste geslaagde provider terug. Een
// ontbrekende sleutel telt als providerfout, niet als fatale fout. Pas als
// alle providers mislukt zijn volgt een AllProvidersFailedError met per
// provider de oorzaak.
func (o *Orchestrator) Generate(ctx context.Context, title string) (string, error) {
	var causes []*ProviderError

	for _, p := range o.providers {
		secret, err := o.creds.SecretFor(ctx, p.Name())
		if err != nil {
			causes = append(causes, &ProviderError{Provider: p.Name(), Err: err})
			continue
		}

		text, err := p.Complete(ctx, secret, title)
		if err != nil {
			var perr *ProviderError
			if !errors.As(err, &perr) {
				perr = &ProviderError{Provider: p.Name(), Err: err}
			}
			causes = append(causes, perr)
			continue
		}
		return text, nil
	}

	return "", &AllProvidersFailedError{Causes: causes}
}
