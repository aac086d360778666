// Package simulation produces the student's reaction to a taught concept.
// An LLM provider generates in-character reactions with a comprehension
// judgment; without a provider (or when the call fails) a deterministic
// heuristic stands in, so teaching always works offline.
package simulation

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/marqos/signmentor/internal/llm"
	"github.com/marqos/signmentor/internal/session"
	"github.com/marqos/signmentor/internal/student"
)

// Config tunes the LLM request.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard simulation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.7,
	}
}

// Service implements session.Simulator.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a simulation service. A nil provider selects the
// heuristic fallback for every call.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// reactionPayload mirrors ReactionSchema.
type reactionPayload struct {
	Reaction        string   `json:"reaction"`
	Comprehension   float64  `json:"comprehension"`
	ConfusionPoints []string `json:"confusion_points"`
}

// Simulate produces the student's reaction to one taught concept. LLM
// failures degrade to the heuristic rather than failing the teaching
// interaction; only context cancellation is surfaced.
func (s *Service) Simulate(ctx context.Context, st *student.State, concept, explanation, method string) (session.Reaction, error) {
	if s.provider == nil {
		return heuristicReaction(st, concept, explanation, method), nil
	}

	ctx = llm.WithPurpose(ctx, "simulate-learning")
	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPrompt(st, concept, explanation, method)},
		},
		Schema:      ReactionSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		if ctx.Err() != nil {
			return session.Reaction{}, ctx.Err()
		}
		fmt.Fprintf(os.Stderr, "warning: reaction generation failed, using heuristic: %v\n", err)
		return heuristicReaction(st, concept, explanation, method), nil
	}

	var payload reactionPayload
	if err := json.Unmarshal(resp.Content, &payload); err != nil {
		fmt.Fprintf(os.Stderr, "warning: malformed reaction payload, using heuristic: %v\n", err)
		return heuristicReaction(st, concept, explanation, method), nil
	}

	if payload.Comprehension < 0 {
		payload.Comprehension = 0
	}
	if payload.Comprehension > 1 {
		payload.Comprehension = 1
	}

	return session.Reaction{
		Text:            payload.Reaction,
		Comprehension:   payload.Comprehension,
		ConfusionPoints: payload.ConfusionPoints,
	}, nil
}
