// Package events provides event handlers for voice events
package events

import (
	"fmt"
	"time"

	voicecmd "github.com/StreamBotDev/StreamBotGo/internal/commands/voice"
	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/StreamBotDev/StreamBotGo/pkg/errors"
	"github.com/StreamBotDev/StreamBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterVoiceEvents registers all voice-related event handlers
func RegisterVoiceEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onVoiceStateUpdate)
}

// onVoiceStateUpdate is called when a user's voice state changes
func onVoiceStateUpdate(s *discordgo.Session, v *discordgo.VoiceStateUpdate) {
	defer errors.RecoverMiddleware()()

	oldChannelID := ""
	if v.BeforeUpdate != nil {
		oldChannelID = v.BeforeUpdate.ChannelID
	}
	newChannelID := v.ChannelID
	if oldChannelID == newChannelID {
		return
	}

	username := voiceUsername(s, v)
	now := time.Now()

	if oldChannelID != "" {
		if err := deps.Stats.CloseVoiceSession(v.GuildID, v.UserID, username, oldChannelID, now); err != nil {
			logger.Error(fmt.Sprintf("Error closing voice session: %v", err), "Voice")
		}
		handleChannelLeft(s, v.GuildID, oldChannelID)
	}

	if newChannelID != "" {
		if err := deps.Stats.OpenVoiceSession(v.GuildID, v.UserID, username, newChannelID, now); err != nil {
			logger.Error(fmt.Sprintf("Error opening voice session: %v", err), "Voice")
		}
		handleChannelJoined(s, v, username, newChannelID)
	}
}

// voiceUsername resolves the display username for a voice state update.
func voiceUsername(s *discordgo.Session, v *discordgo.VoiceStateUpdate) string {
	if v.Member != nil && v.Member.User != nil {
		return v.Member.User.Username
	}
	user, err := s.User(v.UserID)
	if err != nil || user == nil {
		return ""
	}
	return user.Username
}

// handleChannelJoined spawns a personal channel when a member enters the
// configured create-channel, and moves them into it.
func handleChannelJoined(s *discordgo.Session, v *discordgo.VoiceStateUpdate, username, channelID string) {
	cfg, configured, err := deps.Voice.Config(v.GuildID)
	if err != nil || !configured || channelID != cfg.CreateChannelID {
		return
	}

	name := fmt.Sprintf("%s's channel", username)
	created, err := s.GuildChannelCreateComplex(v.GuildID, discordgo.GuildChannelCreateData{
		Name:     name,
		Type:     discordgo.ChannelTypeGuildVoice,
		ParentID: cfg.CategoryID,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Error creating voice channel: %v", err), "Voice")
		return
	}

	if err := s.GuildMemberMove(v.GuildID, v.UserID, &created.ID); err != nil {
		logger.Error(fmt.Sprintf("Error moving member into new channel: %v", err), "Voice")
		s.ChannelDelete(created.ID)
		return
	}

	if _, err := deps.Voice.Register(v.GuildID, created.ID, v.UserID, username, name); err != nil {
		logger.Error(fmt.Sprintf("Error tracking voice channel: %v", err), "Voice")
		s.ChannelDelete(created.ID)
		return
	}

	logger.Debug(fmt.Sprintf("🔊 Created voice channel %s for %s", created.ID, username), "Voice")

	deps.Bridge.PublishEvent("voice", map[string]interface{}{
		"action":    "create",
		"guildId":   v.GuildID,
		"channelId": created.ID,
		"userId":    v.UserID,
	})
}

// handleChannelLeft removes a tracked channel once its last member leaves.
func handleChannelLeft(s *discordgo.Session, guildID, channelID string) {
	liveCount := len(voicecmd.ChannelMemberIDs(s, guildID, channelID))

	remove, err := deps.Voice.HandleEmpty(guildID, channelID, liveCount)
	if err != nil {
		logger.Error(fmt.Sprintf("Error handling empty voice channel: %v", err), "Voice")
		return
	}
	if !remove {
		return
	}

	if _, err := s.ChannelDelete(channelID); err != nil {
		logger.Warn(fmt.Sprintf("Error deleting empty voice channel %s: %v", channelID, err), "Voice")
	}

	logger.Debug(fmt.Sprintf("🔇 Removed empty voice channel %s", channelID), "Voice")

	deps.Bridge.PublishEvent("voice", map[string]interface{}{
		"action":    "delete",
		"guildId":   guildID,
		"channelId": channelID,
	})
}
