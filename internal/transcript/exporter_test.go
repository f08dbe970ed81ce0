package transcript

import (
	"context"
	"errors"
	"strings"
	"testing"

	"voicetutor/internal/history"
)

type fakeRepo struct {
	turns []history.Turn
	err   error
}

func (r *fakeRepo) Append(ctx context.Context, conversationID, role, content string) error {
	return nil
}

func (r *fakeRepo) Load(ctx context.Context, conversationID string) ([]history.Turn, error) {
	return r.turns, r.err
}

type fakePoster struct {
	channel string
	text    string
	calls   int
	err     error
}

func (p *fakePoster) Post(ctx context.Context, channel, text string) error {
	p.calls++
	p.channel = channel
	p.text = text
	return p.err
}

func conversation(contents ...string) []history.Turn {
	// Seed turn first, then strict user/assistant alternation starting with
	// the assistant greeting, matching how the engine writes them.
	turns := []history.Turn{{Role: history.RoleUser, Content: "seed prompt", Seq: 1}}
	for i, c := range contents {
		role := history.RoleAssistant
		if i%2 == 1 {
			role = history.RoleUser
		}
		turns = append(turns, history.Turn{Role: role, Content: c, Seq: int64(i + 2)})
	}
	return turns
}

func TestExportRendersLabeledLines(t *testing.T) {
	repo := &fakeRepo{turns: conversation("Let's get started.", "My name is Alex", "Great, Alex!")}
	poster := &fakePoster{}
	e := New(repo, poster, "#lessons")

	if err := e.Export(context.Background(), "conv"); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if poster.calls != 1 || poster.channel != "#lessons" {
		t.Fatalf("unexpected delivery: calls=%d channel=%q", poster.calls, poster.channel)
	}

	want := "- Teacher: Let's get started.\n- You: My name is Alex\n- Teacher: Great, Alex!"
	if poster.text != want {
		t.Fatalf("unexpected transcript:\n%s\nwant:\n%s", poster.text, want)
	}
}

func TestRenderLineCountAndAlternation(t *testing.T) {
	turns := conversation("a", "b", "c", "d", "e")
	text := Render(turns)
	lines := strings.Split(text, "\n")

	if len(lines) != len(turns)-1 {
		t.Fatalf("expected %d lines, got %d", len(turns)-1, len(lines))
	}
	for i, line := range lines {
		label := "- Teacher:"
		if i%2 == 1 {
			label = "- You:"
		}
		if !strings.HasPrefix(line, label) {
			t.Fatalf("line %d = %q, want prefix %q", i, line, label)
		}
	}
}

func TestRenderLabelsFollowRolesNotParity(t *testing.T) {
	// Two consecutive user turns, as left behind by a model failure.
	turns := []history.Turn{
		{Role: history.RoleUser, Content: "seed", Seq: 1},
		{Role: history.RoleAssistant, Content: "hello", Seq: 2},
		{Role: history.RoleUser, Content: "first try", Seq: 3},
		{Role: history.RoleUser, Content: "second try", Seq: 4},
	}
	want := "- Teacher: hello\n- You: first try\n- You: second try"
	if got := Render(turns); got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestExportEmptyHistoryIsNotAnError(t *testing.T) {
	poster := &fakePoster{}
	e := New(&fakeRepo{}, poster, "#lessons")

	if err := e.Export(context.Background(), "conv"); err != nil {
		t.Fatalf("empty history must not be an error: %v", err)
	}
	if poster.calls != 0 {
		t.Fatalf("nothing should be posted for an empty history")
	}
}

func TestExportSeedOnlyHistoryIsNotAnError(t *testing.T) {
	poster := &fakePoster{}
	e := New(&fakeRepo{turns: conversation()}, poster, "#lessons")

	if err := e.Export(context.Background(), "conv"); err != nil {
		t.Fatalf("seed-only history must not be an error: %v", err)
	}
	if poster.calls != 0 {
		t.Fatalf("nothing should be posted for a seed-only history")
	}
}

func TestExportLoadFailure(t *testing.T) {
	poster := &fakePoster{}
	e := New(&fakeRepo{err: errors.New("store unavailable")}, poster, "#lessons")

	if err := e.Export(context.Background(), "conv"); err == nil {
		t.Fatalf("expected error when history is unavailable")
	}
	if poster.calls != 0 {
		t.Fatalf("nothing should be posted when history is unavailable")
	}
}

func TestExportDeliveryFailure(t *testing.T) {
	repo := &fakeRepo{turns: conversation("hello")}
	poster := &fakePoster{err: errors.New("channel_not_found")}
	e := New(repo, poster, "#lessons")

	if err := e.Export(context.Background(), "conv"); err == nil {
		t.Fatalf("expected delivery error to be reported")
	}
}
