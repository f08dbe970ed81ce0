// Package skill maps voice-platform lifecycle events onto dialogue
// operations and renders the results back into platform responses.
package skill

import (
	"context"
	"log"
)

const (
	greetingText = "Hi, I'm your English teacher. If you want to practice, please say: let's talk."
	goodbyeText  = "Good bye."
	apologyText  = "Sorry, something went wrong. Please try again."
)

// Dialoguer runs one exchange with the language model.
type Dialoguer interface {
	Converse(ctx context.Context, conversationID, utterance string) (string, error)
}

// Exporter delivers a finished conversation's transcript.
type Exporter interface {
	Export(ctx context.Context, conversationID string) error
}

type Handler struct {
	engine     Dialoguer
	exporter   Exporter
	seedPrompt string
}

func New(engine Dialoguer, exporter Exporter, seedPrompt string) *Handler {
	return &Handler{engine: engine, exporter: exporter, seedPrompt: seedPrompt}
}

// Handle decodes the envelope and dispatches it. Dialogue failures produce
// a spoken apology rather than an error: the platform would otherwise play
// its own failure noise at the learner. Only an unhandled request type
// escapes as an error.
func (h *Handler) Handle(ctx context.Context, env RequestEnvelope) (ResponseEnvelope, error) {
	ev, err := Decode(env)
	if err != nil {
		return ResponseEnvelope{}, err
	}

	switch ev := ev.(type) {
	case Launch:
		return speak(greetingText), nil

	case StartConversation:
		return h.converse(ctx, ev.ConversationID, h.seedPrompt), nil

	case Continue:
		return h.converse(ctx, ev.ConversationID, ev.Utterance), nil

	case End:
		// Transcript delivery must never block or fail the goodbye.
		if err := h.exporter.Export(ctx, ev.ConversationID); err != nil {
			log.Printf("failed to export transcript for %s: %v", ev.ConversationID, err)
		}
		if ev.Silent {
			return silent(), nil
		}
		return farewell("Good Bye", goodbyeText), nil
	}

	return ResponseEnvelope{}, ErrUnhandledRequest
}

func (h *Handler) converse(ctx context.Context, conversationID, utterance string) ResponseEnvelope {
	reply, err := h.engine.Converse(ctx, conversationID, utterance)
	if err != nil {
		log.Printf("conversation turn failed for %s: %v", conversationID, err)
		return speak(apologyText)
	}
	return speak(reply)
}
