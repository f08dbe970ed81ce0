package history

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLite(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestAppendLoadPreservesOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// Interleave appends for two conversations.
	steps := []struct{ conv, role, content string }{
		{"conv-a", RoleUser, "hello"},
		{"conv-b", RoleUser, "foo"},
		{"conv-a", RoleAssistant, "hi"},
		{"conv-b", RoleAssistant, "bar"},
		{"conv-a", RoleUser, "how are you"},
	}
	for _, s := range steps {
		if err := repo.Append(ctx, s.conv, s.role, s.content); err != nil {
			t.Fatalf("Append(%s) failed: %v", s.conv, err)
		}
	}

	turnsA, err := repo.Load(ctx, "conv-a")
	if err != nil {
		t.Fatalf("Load(conv-a) failed: %v", err)
	}
	wantA := []string{"hello", "hi", "how are you"}
	if len(turnsA) != len(wantA) {
		t.Fatalf("unexpected conv-a length: %d", len(turnsA))
	}
	for i, w := range wantA {
		if turnsA[i].Content != w {
			t.Fatalf("conv-a[%d] = %q, want %q", i, turnsA[i].Content, w)
		}
	}

	turnsB, err := repo.Load(ctx, "conv-b")
	if err != nil {
		t.Fatalf("Load(conv-b) failed: %v", err)
	}
	if len(turnsB) != 2 || turnsB[0].Content != "foo" || turnsB[1].Content != "bar" {
		t.Fatalf("unexpected conv-b turns: %+v", turnsB)
	}
}

func TestSequenceStrictlyIncreases(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := repo.Append(ctx, "conv", RoleUser, "msg"); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}
	turns, err := repo.Load(ctx, "conv")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	for i := 1; i < len(turns); i++ {
		if turns[i].Seq <= turns[i-1].Seq {
			t.Fatalf("seq not strictly increasing at %d: %d then %d", i, turns[i-1].Seq, turns[i].Seq)
		}
	}
}

func TestLoadUnknownConversationIsEmptyNotError(t *testing.T) {
	repo := newTestRepo(t)

	turns, err := repo.Load(context.Background(), "never-seen")
	if err != nil {
		t.Fatalf("Load returned error for unknown conversation: %v", err)
	}
	if len(turns) != 0 {
		t.Fatalf("expected empty history, got %d turns", len(turns))
	}
}

func TestRolesRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Append(ctx, "conv", RoleUser, "seed"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := repo.Append(ctx, "conv", RoleAssistant, "greeting"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	turns, err := repo.Load(ctx, "conv")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if turns[0].Role != RoleUser || turns[1].Role != RoleAssistant {
		t.Fatalf("unexpected roles: %+v", turns)
	}
}
