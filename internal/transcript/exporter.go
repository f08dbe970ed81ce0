// Package transcript renders a finished conversation as labeled lines and
// delivers it to the messaging channel. Export is best-effort: callers log
// failures and never surface them to the learner.
package transcript

import (
	"context"
	"fmt"
	"log"
	"strings"

	"voicetutor/internal/history"
	"voicetutor/internal/slack"
)

type Exporter struct {
	repo    history.Repository
	poster  slack.Poster
	channel string
}

func New(repo history.Repository, poster slack.Poster, channel string) *Exporter {
	return &Exporter{repo: repo, poster: poster, channel: channel}
}

// Export loads the full ordered history, drops the seed prompt turn and
// posts the remaining turns as alternating labeled lines. A conversation
// with no turns beyond the seed produces no post and no error.
func (e *Exporter) Export(ctx context.Context, conversationID string) error {
	turns, err := e.repo.Load(ctx, conversationID)
	if err != nil {
		return fmt.Errorf("failed to load history for transcript: %w", err)
	}
	text := Render(turns)
	if text == "" {
		log.Printf("no transcript to export for %s", conversationID)
		return nil
	}
	if err := e.poster.Post(ctx, e.channel, text); err != nil {
		return fmt.Errorf("failed to deliver transcript: %w", err)
	}
	return nil
}

// Render formats all turns after the seed prompt, labeling assistant turns
// "Teacher" and user turns "You". Labels follow the stored role, not line
// parity, so a malformed history cannot flip the speakers.
func Render(turns []history.Turn) string {
	if len(turns) <= 1 {
		return ""
	}
	lines := make([]string, 0, len(turns)-1)
	for _, t := range turns[1:] {
		label := "You"
		if t.Role == history.RoleAssistant {
			label = "Teacher"
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", label, t.Content))
	}
	return strings.Join(lines, "\n")
}
