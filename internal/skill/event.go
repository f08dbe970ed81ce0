package skill

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrUnhandledRequest means the platform sent a request no handler is
// registered for. This is a skill configuration defect, not a runtime
// condition to recover from.
var ErrUnhandledRequest = errors.New("skill: no handler for request")

const (
	requestTypeLaunch       = "LaunchRequest"
	requestTypeIntent       = "IntentRequest"
	requestTypeSessionEnded = "SessionEndedRequest"

	intentStartConversation = "StartConversationIntent"
	intentConversation      = "ConversationIntent"
	intentStop              = "AMAZON.StopIntent"
	intentCancel            = "AMAZON.CancelIntent"

	slotUserReply = "UserReply"
)

// RequestEnvelope mirrors the voice platform's webhook payload; only the
// fields this skill reads are modeled.
type RequestEnvelope struct {
	Session struct {
		SessionID string `json:"sessionId"`
	} `json:"session"`
	Request struct {
		Type   string `json:"type"`
		Intent struct {
			Name  string          `json:"name"`
			Slots map[string]Slot `json:"slots"`
		} `json:"intent"`
	} `json:"request"`
}

type Slot struct {
	Value string `json:"value"`
}

// Event is the decoded platform request. Exactly one variant matches each
// envelope; dispatch is an exhaustive switch over these types rather than a
// first-match scan of handler predicates.
type Event interface {
	isEvent()
}

type Launch struct{}

type StartConversation struct {
	ConversationID string
}

type Continue struct {
	ConversationID string
	Utterance      string
}

type End struct {
	ConversationID string
	// Silent is set for platform-initiated session teardown, which expects
	// no speech in the response.
	Silent bool
}

func (Launch) isEvent()            {}
func (StartConversation) isEvent() {}
func (Continue) isEvent()          {}
func (End) isEvent()               {}

// Decode maps a platform envelope onto exactly one Event variant. The
// session id doubles as the conversation identifier; if the platform sent
// none, a fresh one is generated so the turn is still recorded somewhere.
func Decode(env RequestEnvelope) (Event, error) {
	convID := env.Session.SessionID
	if convID == "" {
		convID = "session-" + uuid.NewString()
	}

	switch env.Request.Type {
	case requestTypeLaunch:
		return Launch{}, nil
	case requestTypeSessionEnded:
		return End{ConversationID: convID, Silent: true}, nil
	case requestTypeIntent:
		switch env.Request.Intent.Name {
		case intentStartConversation:
			return StartConversation{ConversationID: convID}, nil
		case intentConversation:
			return Continue{
				ConversationID: convID,
				Utterance:      env.Request.Intent.Slots[slotUserReply].Value,
			}, nil
		case intentStop, intentCancel:
			return End{ConversationID: convID}, nil
		default:
			return nil, fmt.Errorf("%w: intent %q", ErrUnhandledRequest, env.Request.Intent.Name)
		}
	default:
		return nil, fmt.Errorf("%w: type %q", ErrUnhandledRequest, env.Request.Type)
	}
}
