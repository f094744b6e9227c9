package ai

import "context"

// Answerer produces a natural-language answer from a fully formatted
// retrieval prompt. Implementations must be thread-safe for concurrent use.
type Answerer interface {
	// Answer sends the prompt to the underlying language model and returns
	// its completion. Returns an error if generation fails.
	Answer(ctx context.Context, prompt string) (string, error)
}
