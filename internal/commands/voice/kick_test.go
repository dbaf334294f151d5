package voice

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
)

type fakeKickSession struct {
	calls []string

	denyChannelID string
	denyTargetID  string
	denyType      discordgo.PermissionOverwriteType
	denyAllow     int64
	denyDeny      int64
	denyErr       error

	moveGuildID   string
	moveUserID    string
	moveChannelID *string
}

func (f *fakeKickSession) ChannelPermissionSet(channelID, targetID string, targetType discordgo.PermissionOverwriteType, allow, deny int64, options ...discordgo.RequestOption) error {
	f.calls = append(f.calls, "permission")
	f.denyChannelID = channelID
	f.denyTargetID = targetID
	f.denyType = targetType
	f.denyAllow = allow
	f.denyDeny = deny
	return f.denyErr
}

func (f *fakeKickSession) GuildMemberMove(guildID, userID string, channelID *string, options ...discordgo.RequestOption) error {
	f.calls = append(f.calls, "move")
	f.moveGuildID = guildID
	f.moveUserID = userID
	f.moveChannelID = channelID
	return nil
}

func TestRemoveFromChannelDeniesConnectBeforeDisconnect(t *testing.T) {
	session := &fakeKickSession{}

	if err := removeFromChannel(session, "guild-1", "chan-1", "target-1"); err != nil {
		t.Fatalf("removeFromChannel() returned error: %v", err)
	}

	// The deny overwrite must land before the disconnect, or the kicked
	// member can rejoin immediately
	if len(session.calls) != 2 || session.calls[0] != "permission" || session.calls[1] != "move" {
		t.Fatalf("calls = %v, want [permission move]", session.calls)
	}

	if session.denyChannelID != "chan-1" || session.denyTargetID != "target-1" {
		t.Errorf("overwrite set on %s/%s, want chan-1/target-1", session.denyChannelID, session.denyTargetID)
	}
	if session.denyType != discordgo.PermissionOverwriteTypeMember {
		t.Errorf("overwrite type = %v, want member", session.denyType)
	}
	if session.denyAllow != 0 || session.denyDeny&discordgo.PermissionVoiceConnect == 0 {
		t.Errorf("overwrite allow=%d deny=%d, want Connect denied", session.denyAllow, session.denyDeny)
	}

	if session.moveGuildID != "guild-1" || session.moveUserID != "target-1" {
		t.Errorf("moved %s/%s, want guild-1/target-1", session.moveGuildID, session.moveUserID)
	}
	if session.moveChannelID != nil {
		t.Errorf("moveChannelID = %v, want nil (disconnect)", session.moveChannelID)
	}
}

func TestRemoveFromChannelAbortsWhenDenyFails(t *testing.T) {
	wantErr := errors.New("missing permissions")
	session := &fakeKickSession{denyErr: wantErr}

	err := removeFromChannel(session, "guild-1", "chan-1", "target-1")
	if !errors.Is(err, wantErr) {
		t.Fatalf("removeFromChannel() error = %v, want %v", err, wantErr)
	}

	for _, call := range session.calls {
		if call == "move" {
			t.Error("member was disconnected even though the deny overwrite failed")
		}
	}
}
