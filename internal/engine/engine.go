// Package engine drives one language-model exchange per incoming utterance,
// keeping the durable history as the single source of conversation context.
package engine

import (
	"context"
	"fmt"
	"log"

	"voicetutor/internal/history"
	"voicetutor/internal/llm"
)

type Engine struct {
	repo      history.Repository
	llmClient llm.Client
}

func New(repo history.Repository, llmClient llm.Client) *Engine {
	return &Engine{repo: repo, llmClient: llmClient}
}

// Converse records the utterance as a user turn, submits the full ordered
// history to the model and returns the reply text.
//
// A failed user-turn write aborts the exchange: calling the model with a
// half-recorded history would silently drop the utterance from every later
// reconstruction. A failed assistant-turn write is only logged — the learner
// still gets the spoken reply, losing its durable record is degraded but
// acceptable. Model errors are not retried here; a retry would append the
// user turn a second time.
func (e *Engine) Converse(ctx context.Context, conversationID, utterance string) (string, error) {
	if err := e.repo.Append(ctx, conversationID, history.RoleUser, utterance); err != nil {
		return "", fmt.Errorf("failed to record user turn: %w", err)
	}

	turns, err := e.repo.Load(ctx, conversationID)
	if err != nil {
		return "", fmt.Errorf("failed to load history: %w", err)
	}

	msgs := make([]llm.Message, 0, len(turns))
	for _, t := range turns {
		msgs = append(msgs, llm.Message{Role: t.Role, Content: t.Content})
	}

	resp, err := e.llmClient.Generate(ctx, msgs)
	if err != nil {
		return "", fmt.Errorf("failed to generate reply: %w", err)
	}
	if resp.Content == "" {
		return "", llm.ErrNoContent
	}

	log.Printf("LLM response [model=%s, tokens: prompt=%d, completion=%d, total=%d]",
		resp.Model, resp.PromptTokens, resp.CompletionTokens, resp.TotalTokens)

	if err := e.repo.Append(ctx, conversationID, history.RoleAssistant, resp.Content); err != nil {
		log.Printf("failed to record assistant turn for %s: %v", conversationID, err)
	}
	return resp.Content, nil
}
