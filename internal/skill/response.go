package skill

import (
	"fmt"
	"strings"
)

// ResponseEnvelope is the platform response object: speech markup, an
// optional reprompt and the end-of-session flag.
type ResponseEnvelope struct {
	Version  string   `json:"version"`
	Response Response `json:"response"`
}

type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	Card             *Card         `json:"card,omitempty"`
	ShouldEndSession bool          `json:"shouldEndSession"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	SSML string `json:"ssml"`
}

type Reprompt struct {
	OutputSpeech OutputSpeech `json:"outputSpeech"`
}

type Card struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

var ssmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Speech wraps reply text in the skill's fixed voice and locale markup.
func Speech(text string) string {
	return fmt.Sprintf(`<speak><voice name="Joanna"><lang xml:lang="en-US">%s</lang></voice></speak>`, ssmlEscaper.Replace(text))
}

func ssmlSpeech(text string) *OutputSpeech {
	return &OutputSpeech{Type: "SSML", SSML: Speech(text)}
}

// speak builds a response that speaks text and reprompts with the same
// markup, matching the platform's re-listen behavior for open questions.
func speak(text string) ResponseEnvelope {
	os := ssmlSpeech(text)
	return ResponseEnvelope{
		Version: "1.0",
		Response: Response{
			OutputSpeech: os,
			Reprompt:     &Reprompt{OutputSpeech: *os},
		},
	}
}

// farewell speaks text, attaches a simple card and ends the session.
func farewell(title, text string) ResponseEnvelope {
	return ResponseEnvelope{
		Version: "1.0",
		Response: Response{
			OutputSpeech:     ssmlSpeech(text),
			Card:             &Card{Type: "Simple", Title: title, Content: text},
			ShouldEndSession: true,
		},
	}
}

// silent is the empty envelope required by platform-initiated teardown.
func silent() ResponseEnvelope {
	return ResponseEnvelope{Version: "1.0", Response: Response{ShouldEndSession: true}}
}
