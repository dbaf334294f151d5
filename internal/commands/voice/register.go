// Package voice provides temporary voice channel commands under /voice
// Each command is in its own file for better organization
package voice

import (
	"errors"

	voicemgr "github.com/StreamBotDev/StreamBotGo/internal/voice"
	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/StreamBotDev/StreamBotGo/pkg/mqtt"
	"github.com/bwmarrin/discordgo"
)

var (
	manager *voicemgr.Manager
	bridge  *mqtt.MqttCommunicator
)

// RegisterVoiceCommands registers all voice commands as /voice subcommands
func RegisterVoiceCommands(client *discord.ExtendedClient, m *voicemgr.Manager, b *mqtt.MqttCommunicator) {
	manager = m
	bridge = b

	setupCmd := createSetupCommand()
	lockCmd := createLockCommand()
	unlockCmd := createUnlockCommand()
	limitCmd := createLimitCommand()
	nameCmd := createNameCommand()
	transferCmd := createTransferCommand()
	kickCmd := createKickCommand()
	claimCmd := createClaimCommand()

	voiceGroup := client.CommandHandler.BuildCommandGroup(
		"voice",
		"Temporary voice channel commands",
		setupCmd,
		lockCmd,
		unlockCmd,
		limitCmd,
		nameCmd,
		transferCmd,
		kickCmd,
		claimCmd,
	)

	client.CommandHandler.AddGlobalCommand(voiceGroup)
}

// MemberChannelID returns the voice channel the user is currently in.
func MemberChannelID(s *discordgo.Session, guildID, userID string) (string, bool) {
	vs, err := s.State.VoiceState(guildID, userID)
	if err != nil || vs == nil || vs.ChannelID == "" {
		return "", false
	}
	return vs.ChannelID, true
}

// ChannelMemberIDs lists the users currently in a voice channel.
func ChannelMemberIDs(s *discordgo.Session, guildID, channelID string) []string {
	guild, err := s.State.Guild(guildID)
	if err != nil || guild == nil {
		return nil
	}

	var ids []string
	for _, vs := range guild.VoiceStates {
		if vs.ChannelID == channelID {
			ids = append(ids, vs.UserID)
		}
	}
	return ids
}

// trackedChannel resolves the managed voice channel the acting user is in.
func trackedChannel(ctx *discord.CommandContext) (string, error) {
	channelID, ok := MemberChannelID(ctx.Session, ctx.Interaction.GuildID, ctx.User().ID)
	if !ok {
		return "", voicemgr.ErrNotInVoice
	}

	_, tracked, err := manager.Entry(ctx.Interaction.GuildID, channelID)
	if err != nil {
		return "", err
	}
	if !tracked {
		return "", voicemgr.ErrNotInVoice
	}
	return channelID, nil
}

// replyVoiceError maps manager errors to user-facing ephemeral replies.
func replyVoiceError(ctx *discord.CommandContext, err error) error {
	switch {
	case errors.Is(err, voicemgr.ErrNotInVoice), errors.Is(err, voicemgr.ErrNotTracked):
		return ctx.ReplyEphemeral("❌ You must be in a temporary voice channel to use this command.")
	case errors.Is(err, voicemgr.ErrNotOwner):
		return ctx.ReplyEphemeral("❌ Only the channel owner can do that.")
	case errors.Is(err, voicemgr.ErrInvalidName):
		return ctx.ReplyEphemeral("❌ The channel name must be between 1 and 100 characters.")
	case errors.Is(err, voicemgr.ErrInvalidLimit):
		return ctx.ReplyEphemeral("❌ The user limit must be between 0 and 99.")
	case errors.Is(err, voicemgr.ErrTargetNotPresent):
		return ctx.ReplyEphemeral("❌ That user is not in your voice channel.")
	case errors.Is(err, voicemgr.ErrPrivilegedTarget):
		return ctx.ReplyEphemeral("❌ You cannot kick a moderator from the channel.")
	case errors.Is(err, voicemgr.ErrOwnerPresent):
		return ctx.ReplyEphemeral("❌ The channel owner is still here.")
	default:
		return ctx.ReplyEphemeral("❌ Something went wrong. Try again later.")
	}
}

// publishVoiceEvent publishes a voice lifecycle event to the MQTT bridge.
func publishVoiceEvent(action, guildID, channelID, userID string) {
	bridge.PublishEvent("voice", map[string]interface{}{
		"action":    action,
		"guildId":   guildID,
		"channelId": channelID,
		"userId":    userID,
	})
}
