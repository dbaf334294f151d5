package tickets

import (
	"errors"
	"fmt"
	"testing"

	"github.com/StreamBotDev/StreamBotGo/pkg/models"
	"github.com/StreamBotDev/StreamBotGo/pkg/store"
)

const guildID = "guild-1"

func newConfiguredLedger(t *testing.T) *Ledger {
	t.Helper()
	l := NewLedger(store.New(t.TempDir()))
	err := l.SetConfig(guildID, models.TicketConfig{
		PanelChannelID: "panel",
		SupportRoleID:  "support",
		CategoryID:     "category",
	})
	if err != nil {
		t.Fatalf("SetConfig() returned error: %v", err)
	}
	return l
}

func openChannel(id string) OpenChannelFunc {
	return func(ticketID int) (string, error) {
		return id, nil
	}
}

func TestCreateRequiresSetup(t *testing.T) {
	l := NewLedger(store.New(t.TempDir()))

	_, _, err := l.Create(guildID, "creator", openChannel("chan-1"))
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Create() without setup error = %v, want ErrNotConfigured", err)
	}
}

func TestCreateAllocatesMonotonicIDs(t *testing.T) {
	l := newConfiguredLedger(t)

	first, created, err := l.Create(guildID, "alice", openChannel("chan-1"))
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}
	if !created {
		t.Fatal("Create() should report created for a new ticket")
	}
	if first.TicketID != 1 {
		t.Errorf("first TicketID = %d, want 1", first.TicketID)
	}
	if first.Status != models.TicketStatusOpen {
		t.Errorf("Status = %v, want open", first.Status)
	}

	second, created, err := l.Create(guildID, "bob", openChannel("chan-2"))
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}
	if !created || second.TicketID != 2 {
		t.Errorf("second TicketID = %d created=%v, want 2 true", second.TicketID, created)
	}
}

func TestCreateDuplicateReturnsExisting(t *testing.T) {
	l := newConfiguredLedger(t)

	first, _, err := l.Create(guildID, "alice", openChannel("chan-1"))
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}

	callbackRan := false
	dup, created, err := l.Create(guildID, "alice", func(ticketID int) (string, error) {
		callbackRan = true
		return "chan-9", nil
	})
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}
	if created {
		t.Error("duplicate Create() should not report created")
	}
	if callbackRan {
		t.Error("duplicate Create() must not open a channel")
	}
	if dup.ChannelID != first.ChannelID || dup.TicketID != first.TicketID {
		t.Errorf("duplicate entry = %+v, want %+v", dup, first)
	}
}

func TestCreateAbortsOnChannelFailure(t *testing.T) {
	l := newConfiguredLedger(t)

	boom := fmt.Errorf("channel create failed")
	_, _, err := l.Create(guildID, "alice", func(ticketID int) (string, error) {
		return "", boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Create() error = %v, want %v", err, boom)
	}

	// Nothing persisted, counter untouched
	entry, created, err := l.Create(guildID, "alice", openChannel("chan-1"))
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}
	if !created || entry.TicketID != 1 {
		t.Errorf("TicketID after failed attempt = %d created=%v, want 1 true", entry.TicketID, created)
	}
}

func TestCloseIsTerminalAndCounterSurvives(t *testing.T) {
	l := newConfiguredLedger(t)

	first, _, _ := l.Create(guildID, "alice", openChannel("chan-1"))

	closed, err := l.Close(guildID, first.ChannelID)
	if err != nil {
		t.Fatalf("Close() returned error: %v", err)
	}
	if closed.Status != models.TicketStatusClosed {
		t.Errorf("closed Status = %v, want closed", closed.Status)
	}

	if _, ok, _ := l.Get(guildID, first.ChannelID); ok {
		t.Error("entry should be hard-deleted after Close")
	}

	if _, err := l.Close(guildID, first.ChannelID); !errors.Is(err, ErrNotATicket) {
		t.Errorf("Close() twice error = %v, want ErrNotATicket", err)
	}

	// Counter never decreases: the next ticket continues the sequence,
	// and the creator may open a new one after closing
	next, created, err := l.Create(guildID, "alice", openChannel("chan-2"))
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}
	if !created || next.TicketID != 2 {
		t.Errorf("TicketID after close = %d created=%v, want 2 true", next.TicketID, created)
	}
}

func TestGet(t *testing.T) {
	l := newConfiguredLedger(t)

	if _, ok, err := l.Get(guildID, "random-channel"); err != nil || ok {
		t.Errorf("Get() of non-ticket = ok=%v err=%v, want not found", ok, err)
	}

	entry, _, _ := l.Create(guildID, "alice", openChannel("chan-1"))

	got, ok, err := l.Get(guildID, entry.ChannelID)
	if err != nil || !ok {
		t.Fatalf("Get() = ok=%v err=%v, want found", ok, err)
	}
	if got.CreatorID != "alice" {
		t.Errorf("CreatorID = %v, want alice", got.CreatorID)
	}
}

func TestSetConfigPreservesCounter(t *testing.T) {
	l := newConfiguredLedger(t)

	l.Create(guildID, "alice", openChannel("chan-1"))

	err := l.SetConfig(guildID, models.TicketConfig{
		PanelChannelID: "panel-2",
		SupportRoleID:  "support-2",
		CategoryID:     "category-2",
	})
	if err != nil {
		t.Fatalf("SetConfig() returned error: %v", err)
	}

	next, _, err := l.Create(guildID, "bob", openChannel("chan-2"))
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}
	if next.TicketID != 2 {
		t.Errorf("TicketID after reconfigure = %d, want 2", next.TicketID)
	}
}
