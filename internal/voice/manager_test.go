package voice

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/StreamBotDev/StreamBotGo/pkg/models"
	"github.com/StreamBotDev/StreamBotGo/pkg/store"
)

const guildID = "guild-1"

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(store.New(t.TempDir()))
}

func register(t *testing.T, m *Manager, channelID, ownerID string) models.VoiceChannelEntry {
	t.Helper()
	entry, err := m.Register(guildID, channelID, ownerID, ownerID+"#0", "room")
	if err != nil {
		t.Fatalf("Register() returned error: %v", err)
	}
	return entry
}

func TestConfigRoundtrip(t *testing.T) {
	m := newTestManager(t)

	_, ok, err := m.Config(guildID)
	if err != nil {
		t.Fatalf("Config() returned error: %v", err)
	}
	if ok {
		t.Error("Config() reported configured before setup")
	}

	cfg := models.VoiceConfig{CategoryID: "cat", CreateChannelID: "create"}
	if err := m.SetConfig(guildID, cfg); err != nil {
		t.Fatalf("SetConfig() returned error: %v", err)
	}

	got, ok, err := m.Config(guildID)
	if err != nil {
		t.Fatalf("Config() returned error: %v", err)
	}
	if !ok || got.CreateChannelID != "create" {
		t.Errorf("Config() = %+v ok=%v, want configured with create channel", got, ok)
	}
}

func TestRegisterDefaults(t *testing.T) {
	m := newTestManager(t)
	entry := register(t, m, "chan-1", "owner")

	if entry.Locked {
		t.Error("new channel should be unlocked")
	}
	if entry.UserLimit != 0 {
		t.Errorf("UserLimit = %d, want 0 (unlimited)", entry.UserLimit)
	}

	got, ok, err := m.Entry(guildID, "chan-1")
	if err != nil || !ok {
		t.Fatalf("Entry() = ok=%v err=%v, want tracked", ok, err)
	}
	if got.OwnerID != "owner" {
		t.Errorf("OwnerID = %v, want owner", got.OwnerID)
	}
}

func TestLockUnlockOwnerGate(t *testing.T) {
	m := newTestManager(t)
	register(t, m, "chan-1", "owner")

	if _, err := m.SetLocked(guildID, "chan-1", "intruder", true); !errors.Is(err, ErrNotOwner) {
		t.Errorf("SetLocked() by non-owner error = %v, want ErrNotOwner", err)
	}

	entry, err := m.SetLocked(guildID, "chan-1", "owner", true)
	if err != nil {
		t.Fatalf("SetLocked() returned error: %v", err)
	}
	if !entry.Locked {
		t.Error("channel should be locked")
	}

	entry, err = m.SetLocked(guildID, "chan-1", "owner", false)
	if err != nil {
		t.Fatalf("SetLocked() returned error: %v", err)
	}
	if entry.Locked {
		t.Error("channel should be unlocked")
	}
}

func TestSetUserLimitBounds(t *testing.T) {
	m := newTestManager(t)
	register(t, m, "chan-1", "owner")

	if _, err := m.SetUserLimit(guildID, "chan-1", "owner", -1); !errors.Is(err, ErrInvalidLimit) {
		t.Errorf("SetUserLimit(-1) error = %v, want ErrInvalidLimit", err)
	}
	if _, err := m.SetUserLimit(guildID, "chan-1", "owner", 100); !errors.Is(err, ErrInvalidLimit) {
		t.Errorf("SetUserLimit(100) error = %v, want ErrInvalidLimit", err)
	}

	entry, err := m.SetUserLimit(guildID, "chan-1", "owner", 99)
	if err != nil {
		t.Fatalf("SetUserLimit(99) returned error: %v", err)
	}
	if entry.UserLimit != 99 {
		t.Errorf("UserLimit = %d, want 99", entry.UserLimit)
	}

	entry, err = m.SetUserLimit(guildID, "chan-1", "owner", 0)
	if err != nil {
		t.Fatalf("SetUserLimit(0) returned error: %v", err)
	}
	if entry.UserLimit != 0 {
		t.Errorf("UserLimit = %d, want 0", entry.UserLimit)
	}
}

func TestRenameBounds(t *testing.T) {
	m := newTestManager(t)
	register(t, m, "chan-1", "owner")

	if _, err := m.Rename(guildID, "chan-1", "owner", ""); !errors.Is(err, ErrInvalidName) {
		t.Errorf("Rename(empty) error = %v, want ErrInvalidName", err)
	}
	if _, err := m.Rename(guildID, "chan-1", "owner", strings.Repeat("x", 101)); !errors.Is(err, ErrInvalidName) {
		t.Errorf("Rename(101 chars) error = %v, want ErrInvalidName", err)
	}

	entry, err := m.Rename(guildID, "chan-1", "owner", strings.Repeat("x", 100))
	if err != nil {
		t.Fatalf("Rename(100 chars) returned error: %v", err)
	}
	if len(entry.Name) != 100 {
		t.Errorf("Name length = %d, want 100", len(entry.Name))
	}
}

func TestTransfer(t *testing.T) {
	m := newTestManager(t)
	register(t, m, "chan-1", "owner")

	if _, err := m.Transfer(guildID, "chan-1", "owner", "target", "target#0", false); !errors.Is(err, ErrTargetNotPresent) {
		t.Errorf("Transfer() with absent target error = %v, want ErrTargetNotPresent", err)
	}

	entry, err := m.Transfer(guildID, "chan-1", "owner", "target", "target#0", true)
	if err != nil {
		t.Fatalf("Transfer() returned error: %v", err)
	}
	if entry.OwnerID != "target" {
		t.Errorf("OwnerID = %v, want target", entry.OwnerID)
	}

	// Previous owner lost the gate
	if _, err := m.SetLocked(guildID, "chan-1", "owner", true); !errors.Is(err, ErrNotOwner) {
		t.Errorf("SetLocked() by previous owner error = %v, want ErrNotOwner", err)
	}
}

func TestKickValidation(t *testing.T) {
	m := newTestManager(t)
	register(t, m, "chan-1", "owner")

	if err := m.Kick(guildID, "chan-2", "owner", true, false); !errors.Is(err, ErrNotTracked) {
		t.Errorf("Kick() on untracked channel error = %v, want ErrNotTracked", err)
	}
	if err := m.Kick(guildID, "chan-1", "intruder", true, false); !errors.Is(err, ErrNotOwner) {
		t.Errorf("Kick() by non-owner error = %v, want ErrNotOwner", err)
	}
	if err := m.Kick(guildID, "chan-1", "owner", false, false); !errors.Is(err, ErrTargetNotPresent) {
		t.Errorf("Kick() with absent target error = %v, want ErrTargetNotPresent", err)
	}
	if err := m.Kick(guildID, "chan-1", "owner", true, true); !errors.Is(err, ErrPrivilegedTarget) {
		t.Errorf("Kick() on privileged target error = %v, want ErrPrivilegedTarget", err)
	}
	if err := m.Kick(guildID, "chan-1", "owner", true, false); err != nil {
		t.Errorf("Kick() returned error: %v, want nil", err)
	}

	// Kick never mutates the record
	entry, ok, _ := m.Entry(guildID, "chan-1")
	if !ok || entry.OwnerID != "owner" {
		t.Errorf("entry after Kick = %+v ok=%v, want unchanged", entry, ok)
	}
}

func TestClaim(t *testing.T) {
	m := newTestManager(t)
	register(t, m, "chan-1", "owner")

	if _, err := m.Claim(guildID, "chan-1", "claimant", "claimant#0", []string{"owner", "claimant"}); !errors.Is(err, ErrOwnerPresent) {
		t.Errorf("Claim() with owner present error = %v, want ErrOwnerPresent", err)
	}

	entry, err := m.Claim(guildID, "chan-1", "claimant", "claimant#0", []string{"claimant", "other"})
	if err != nil {
		t.Fatalf("Claim() returned error: %v", err)
	}
	if entry.OwnerID != "claimant" {
		t.Errorf("OwnerID = %v, want claimant", entry.OwnerID)
	}
}

func TestHandleEmpty(t *testing.T) {
	m := newTestManager(t)
	register(t, m, "chan-1", "owner")

	remove, err := m.HandleEmpty(guildID, "chan-1", 2)
	if err != nil {
		t.Fatalf("HandleEmpty() returned error: %v", err)
	}
	if remove {
		t.Error("HandleEmpty() with members present should not remove")
	}

	remove, err = m.HandleEmpty(guildID, "chan-1", 0)
	if err != nil {
		t.Fatalf("HandleEmpty() returned error: %v", err)
	}
	if !remove {
		t.Error("HandleEmpty() of empty channel should remove")
	}

	if _, ok, _ := m.Entry(guildID, "chan-1"); ok {
		t.Error("entry should be gone after HandleEmpty")
	}

	// Deletion is terminal: owner operations now fail
	if _, err := m.SetLocked(guildID, "chan-1", "owner", true); !errors.Is(err, ErrNotTracked) {
		t.Errorf("SetLocked() after removal error = %v, want ErrNotTracked", err)
	}
}

func TestHandleEmptyUntrackedWritesNothing(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(store.New(dir))

	remove, err := m.HandleEmpty(guildID, "chan-unknown", 0)
	if err != nil {
		t.Fatalf("HandleEmpty() returned error: %v", err)
	}
	if remove {
		t.Error("HandleEmpty() of untracked channel should not remove")
	}

	// Leaves on untracked channels must not materialize a record file
	path := filepath.Join(dir, "guilds", guildID, "voice.json")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("record file should not exist after untracked HandleEmpty: %v", err)
	}

	// Emptiness of an untracked channel is a no-op
	remove, err = m.HandleEmpty(guildID, "chan-9", 0)
	if err != nil {
		t.Fatalf("HandleEmpty() returned error: %v", err)
	}
	if remove {
		t.Error("HandleEmpty() of untracked channel should not remove")
	}
}
