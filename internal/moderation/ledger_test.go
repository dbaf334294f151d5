package moderation

import (
	"errors"
	"testing"

	"github.com/StreamBotDev/StreamBotGo/pkg/store"
)

const guildID = "guild-1"

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	return NewLedger(store.New(t.TempDir()))
}

func TestAddWarning(t *testing.T) {
	l := newTestLedger(t)

	count, warning, err := l.AddWarning(guildID, "user-1", "mod-1", "spam")
	if err != nil {
		t.Fatalf("AddWarning() returned error: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	if warning.ID == "" {
		t.Error("warning ID should not be empty")
	}
	if warning.ModeratorID != "mod-1" || warning.Reason != "spam" {
		t.Errorf("warning = %+v, want moderator mod-1 reason spam", warning)
	}

	count, _, err = l.AddWarning(guildID, "user-1", "mod-2", "again")
	if err != nil {
		t.Fatalf("AddWarning() returned error: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestWarningsInsertionOrder(t *testing.T) {
	l := newTestLedger(t)

	reasons := []string{"first", "second", "third"}
	for _, reason := range reasons {
		if _, _, err := l.AddWarning(guildID, "user-1", "mod-1", reason); err != nil {
			t.Fatalf("AddWarning() returned error: %v", err)
		}
	}

	warnings, err := l.Warnings(guildID, "user-1")
	if err != nil {
		t.Fatalf("Warnings() returned error: %v", err)
	}
	if len(warnings) != len(reasons) {
		t.Fatalf("len(warnings) = %d, want %d", len(warnings), len(reasons))
	}
	for i, reason := range reasons {
		if warnings[i].Reason != reason {
			t.Errorf("warnings[%d].Reason = %v, want %v", i, warnings[i].Reason, reason)
		}
	}
}

func TestWarningsEmptyUser(t *testing.T) {
	l := newTestLedger(t)

	warnings, err := l.Warnings(guildID, "nobody")
	if err != nil {
		t.Fatalf("Warnings() returned error: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("Warnings() of unknown user = %v, want empty", warnings)
	}
}

func TestClearWarnings(t *testing.T) {
	l := newTestLedger(t)

	l.AddWarning(guildID, "user-1", "mod-1", "one")
	l.AddWarning(guildID, "user-1", "mod-1", "two")
	l.AddWarning(guildID, "user-2", "mod-1", "unrelated")

	previous, err := l.ClearWarnings(guildID, "user-1")
	if err != nil {
		t.Fatalf("ClearWarnings() returned error: %v", err)
	}
	if previous != 2 {
		t.Errorf("previous = %d, want 2", previous)
	}

	warnings, _ := l.Warnings(guildID, "user-1")
	if len(warnings) != 0 {
		t.Errorf("warnings after clear = %v, want empty", warnings)
	}

	// Other users are untouched
	others, _ := l.Warnings(guildID, "user-2")
	if len(others) != 1 {
		t.Errorf("user-2 warnings = %d, want 1", len(others))
	}

	// Clearing again is a zero-count no-op
	previous, err = l.ClearWarnings(guildID, "user-1")
	if err != nil {
		t.Fatalf("ClearWarnings() returned error: %v", err)
	}
	if previous != 0 {
		t.Errorf("previous = %d, want 0", previous)
	}
}

func TestRemoveWarning(t *testing.T) {
	l := newTestLedger(t)

	_, first, _ := l.AddWarning(guildID, "user-1", "mod-1", "first")
	l.AddWarning(guildID, "user-1", "mod-1", "second")

	removed, err := l.RemoveWarning(guildID, "user-1", first.ID)
	if err != nil {
		t.Fatalf("RemoveWarning() returned error: %v", err)
	}
	if removed.Reason != "first" {
		t.Errorf("removed.Reason = %v, want first", removed.Reason)
	}

	warnings, _ := l.Warnings(guildID, "user-1")
	if len(warnings) != 1 || warnings[0].Reason != "second" {
		t.Errorf("warnings after remove = %+v, want only second", warnings)
	}

	if _, err := l.RemoveWarning(guildID, "user-1", first.ID); !errors.Is(err, ErrWarningNotFound) {
		t.Errorf("RemoveWarning() of missing ID error = %v, want ErrWarningNotFound", err)
	}
}

func TestWarningsAreGuildScoped(t *testing.T) {
	l := newTestLedger(t)

	l.AddWarning("guild-a", "user-1", "mod-1", "here")

	warnings, err := l.Warnings("guild-b", "user-1")
	if err != nil {
		t.Fatalf("Warnings() returned error: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings leaked across guilds: %v", warnings)
	}
}

func TestLogChannel(t *testing.T) {
	l := newTestLedger(t)

	channel, err := l.LogChannel(guildID)
	if err != nil {
		t.Fatalf("LogChannel() returned error: %v", err)
	}
	if channel != "" {
		t.Errorf("LogChannel() = %v, want empty before setup", channel)
	}

	if err := l.SetLogChannel(guildID, "chan-logs"); err != nil {
		t.Fatalf("SetLogChannel() returned error: %v", err)
	}

	channel, err = l.LogChannel(guildID)
	if err != nil {
		t.Fatalf("LogChannel() returned error: %v", err)
	}
	if channel != "chan-logs" {
		t.Errorf("LogChannel() = %v, want chan-logs", channel)
	}
}
