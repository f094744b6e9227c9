package openai

import (
	"context"
	"log/slog"

	"github.com/poiesic/rowctx/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Answerer implements ai.Answerer using OpenAI-compatible completion APIs.
type Answerer struct {
	llm    llms.Model
	logger *slog.Logger
}

// NewAnswerer creates an answerer backed by an OpenAI-compatible endpoint.
//
// Returns ai.Answerer interface to enforce abstraction.
func NewAnswerer(config *ai.Config) (ai.Answerer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(config.Token),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return &Answerer{
		llm:    client,
		logger: slog.Default().With("component", "openai-answerer"),
	}, nil
}

// Answer sends the prompt to the model and returns its completion.
func (a *Answerer) Answer(ctx context.Context, prompt string) (string, error) {
	a.logger.Debug("generating answer", "promptLength", len(prompt))

	completion, err := llms.GenerateFromSinglePrompt(ctx, a.llm, prompt)
	if err != nil {
		a.logger.Error("failed to generate answer", "err", err)
		return "", err
	}

	return completion, nil
}
