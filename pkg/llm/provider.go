package llm

import "context"

// Provider abstracts the generative API used for note summarization.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
