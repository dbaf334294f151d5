package stats

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/StreamBotDev/StreamBotGo/pkg/models"
	"github.com/StreamBotDev/StreamBotGo/pkg/store"
)

const guildID = "guild-1"

func newTestAggregator(t *testing.T) *Aggregator {
	t.Helper()
	return NewAggregator(store.New(t.TempDir()))
}

func TestRecordMessage(t *testing.T) {
	a := newTestAggregator(t)

	// Tuesday 14:05
	at := time.Date(2025, 6, 3, 14, 5, 0, 0, time.UTC)
	if err := a.RecordMessage(guildID, "user-1", "alice", "chan-1", at); err != nil {
		t.Fatalf("RecordMessage() returned error: %v", err)
	}
	if err := a.RecordMessage(guildID, "user-1", "alice", "chan-2", at); err != nil {
		t.Fatalf("RecordMessage() returned error: %v", err)
	}

	server, err := a.ServerStats(guildID)
	if err != nil {
		t.Fatalf("ServerStats() returned error: %v", err)
	}
	if server.MessagesTotal != 2 {
		t.Errorf("MessagesTotal = %d, want 2", server.MessagesTotal)
	}
	if server.GuildID != guildID {
		t.Errorf("GuildID = %v, want %v", server.GuildID, guildID)
	}

	user, ok, err := a.User(guildID, "user-1")
	if err != nil || !ok {
		t.Fatalf("User() = ok=%v err=%v, want tracked", ok, err)
	}
	if user.MessagesTotal != 2 {
		t.Errorf("user MessagesTotal = %d, want 2", user.MessagesTotal)
	}
	if user.Username != "alice" {
		t.Errorf("Username = %v, want alice", user.Username)
	}

	messages, err := a.MessageStats(guildID)
	if err != nil {
		t.Fatalf("MessageStats() returned error: %v", err)
	}
	entry := messages["user-1"]
	if entry == nil {
		t.Fatal("message stats entry missing")
	}
	if entry.Total != 2 {
		t.Errorf("Total = %d, want 2", entry.Total)
	}
	if entry.Channels["chan-1"] != 1 || entry.Channels["chan-2"] != 1 {
		t.Errorf("Channels = %v, want one message each", entry.Channels)
	}
	if entry.Hourly[14] != 2 {
		t.Errorf("Hourly[14] = %d, want 2", entry.Hourly[14])
	}
	if entry.Daily[int(time.Tuesday)] != 2 {
		t.Errorf("Daily[Tuesday] = %d, want 2", entry.Daily[int(time.Tuesday)])
	}
}

func TestRecordMemberJoinLeave(t *testing.T) {
	a := newTestAggregator(t)

	a.RecordMemberJoin(guildID)
	a.RecordMemberJoin(guildID)
	a.RecordMemberLeave(guildID)

	server, err := a.ServerStats(guildID)
	if err != nil {
		t.Fatalf("ServerStats() returned error: %v", err)
	}
	if server.MemberJoins != 2 || server.MemberLeaves != 1 {
		t.Errorf("joins=%d leaves=%d, want 2/1", server.MemberJoins, server.MemberLeaves)
	}
}

func TestRecordCommand(t *testing.T) {
	a := newTestAggregator(t)

	if err := a.RecordCommand(guildID, "user-1", "alice"); err != nil {
		t.Fatalf("RecordCommand() returned error: %v", err)
	}

	server, _ := a.ServerStats(guildID)
	if server.CommandsUsed != 1 {
		t.Errorf("CommandsUsed = %d, want 1", server.CommandsUsed)
	}

	user, ok, _ := a.User(guildID, "user-1")
	if !ok || user.CommandsUsed != 1 {
		t.Errorf("user CommandsUsed = %+v ok=%v, want 1", user, ok)
	}
}

func TestVoiceSessionLifecycle(t *testing.T) {
	a := newTestAggregator(t)

	start := time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)
	end := start.Add(7*time.Minute + 30*time.Second)

	if err := a.OpenVoiceSession(guildID, "user-1", "alice", "chan-1", start); err != nil {
		t.Fatalf("OpenVoiceSession() returned error: %v", err)
	}
	if err := a.CloseVoiceSession(guildID, "user-1", "alice", "chan-1", end); err != nil {
		t.Fatalf("CloseVoiceSession() returned error: %v", err)
	}

	voice, err := a.VoiceStats(guildID)
	if err != nil {
		t.Fatalf("VoiceStats() returned error: %v", err)
	}
	entry := voice["user-1"]
	if entry == nil {
		t.Fatal("voice stats entry missing")
	}

	// Durations are floored to whole minutes
	if entry.TotalMinutes != 7 {
		t.Errorf("TotalMinutes = %d, want 7", entry.TotalMinutes)
	}
	if entry.Channels["chan-1"] != 7 {
		t.Errorf("Channels[chan-1] = %d, want 7", entry.Channels["chan-1"])
	}
	if len(entry.Sessions) != 1 {
		t.Fatalf("len(Sessions) = %d, want 1", len(entry.Sessions))
	}
	if entry.Sessions[0].End == nil {
		t.Error("session End should be set after close")
	}

	server, _ := a.ServerStats(guildID)
	if server.VoiceMinutesTotal != 7 {
		t.Errorf("server VoiceMinutesTotal = %d, want 7", server.VoiceMinutesTotal)
	}

	user, ok, _ := a.User(guildID, "user-1")
	if !ok || user.VoiceMinutesTotal != 7 {
		t.Errorf("user VoiceMinutesTotal = %+v ok=%v, want 7", user, ok)
	}
}

func TestCloseWithoutOpenSessionIsIgnored(t *testing.T) {
	a := newTestAggregator(t)

	at := time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)
	if err := a.CloseVoiceSession(guildID, "user-1", "alice", "chan-1", at); err != nil {
		t.Fatalf("CloseVoiceSession() returned error: %v", err)
	}

	server, _ := a.ServerStats(guildID)
	if server.VoiceMinutesTotal != 0 {
		t.Errorf("VoiceMinutesTotal = %d, want 0", server.VoiceMinutesTotal)
	}
}

func TestCloseWithoutOpenSessionWritesNothing(t *testing.T) {
	dir := t.TempDir()
	a := NewAggregator(store.New(dir))

	at := time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)
	if err := a.CloseVoiceSession(guildID, "user-1", "alice", "chan-1", at); err != nil {
		t.Fatalf("CloseVoiceSession() returned error: %v", err)
	}

	// An ignored close must not materialize a record file
	path := filepath.Join(dir, "guilds", guildID, "stats", "voice.json")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("record file should not exist after ignored close: %v", err)
	}
}

func TestShortSessionCreditsZeroMinutes(t *testing.T) {
	a := newTestAggregator(t)

	start := time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)
	a.OpenVoiceSession(guildID, "user-1", "alice", "chan-1", start)
	a.CloseVoiceSession(guildID, "user-1", "alice", "chan-1", start.Add(30*time.Second))

	voice, _ := a.VoiceStats(guildID)
	entry := voice["user-1"]
	if entry == nil {
		t.Fatal("voice stats entry missing")
	}
	if entry.TotalMinutes != 0 {
		t.Errorf("TotalMinutes = %d, want 0 for a sub-minute session", entry.TotalMinutes)
	}
	if entry.Sessions[0].End == nil {
		t.Error("session should still be closed")
	}
}

func TestSessionHistoryCap(t *testing.T) {
	a := newTestAggregator(t)

	start := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	for i := 0; i < models.MaxVoiceSessions+5; i++ {
		channel := fmt.Sprintf("chan-%d", i)
		at := start.Add(time.Duration(i) * time.Hour)
		a.OpenVoiceSession(guildID, "user-1", "alice", channel, at)
		a.CloseVoiceSession(guildID, "user-1", "alice", channel, at.Add(time.Minute))
	}

	voice, _ := a.VoiceStats(guildID)
	entry := voice["user-1"]
	if len(entry.Sessions) != models.MaxVoiceSessions {
		t.Fatalf("len(Sessions) = %d, want %d", len(entry.Sessions), models.MaxVoiceSessions)
	}

	// Oldest sessions were evicted; the newest survive
	if entry.Sessions[0].ChannelID != "chan-5" {
		t.Errorf("oldest kept session = %v, want chan-5", entry.Sessions[0].ChannelID)
	}

	// Minutes still count even for evicted sessions
	if entry.TotalMinutes != models.MaxVoiceSessions+5 {
		t.Errorf("TotalMinutes = %d, want %d", entry.TotalMinutes, models.MaxVoiceSessions+5)
	}
}

func TestChannelSwitchCountsBothChannels(t *testing.T) {
	a := newTestAggregator(t)

	start := time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)
	switchAt := start.Add(5 * time.Minute)
	end := switchAt.Add(3 * time.Minute)

	a.OpenVoiceSession(guildID, "user-1", "alice", "chan-a", start)
	a.CloseVoiceSession(guildID, "user-1", "alice", "chan-a", switchAt)
	a.OpenVoiceSession(guildID, "user-1", "alice", "chan-b", switchAt)
	a.CloseVoiceSession(guildID, "user-1", "alice", "chan-b", end)

	voice, _ := a.VoiceStats(guildID)
	entry := voice["user-1"]
	if entry.Channels["chan-a"] != 5 || entry.Channels["chan-b"] != 3 {
		t.Errorf("Channels = %v, want chan-a:5 chan-b:3", entry.Channels)
	}
	if entry.TotalMinutes != 8 {
		t.Errorf("TotalMinutes = %d, want 8", entry.TotalMinutes)
	}
}
