// Package voice - /voice setup command
package voice

import (
	"fmt"

	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/StreamBotDev/StreamBotGo/pkg/logger"
	"github.com/StreamBotDev/StreamBotGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// createSetupCommand creates the /voice setup subcommand
func createSetupCommand() *discord.Command {
	return discord.NewCommand(
		"setup",
		"Set up the temporary voice channel system",
		"voice",
		setupHandler,
	).WithUserPermissions(discordgo.PermissionAdministrator)
}

// setupHandler handles the /voice setup command. It creates the category,
// the join-to-create channel and a control panel text channel, then stores
// the configuration.
func setupHandler(ctx *discord.CommandContext) error {
	guildID := ctx.Interaction.GuildID

	category, err := ctx.Session.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
		Name: "Voice Channels",
		Type: discordgo.ChannelTypeGuildCategory,
	})
	if err != nil {
		return ctx.ReplyEphemeral("❌ Could not create the voice category. Check my permissions.")
	}

	createChannel, err := ctx.Session.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
		Name:     "➕ Create Channel",
		Type:     discordgo.ChannelTypeGuildVoice,
		ParentID: category.ID,
	})
	if err != nil {
		return ctx.ReplyEphemeral("❌ Could not create the join-to-create channel. Check my permissions.")
	}

	infoChannel, err := ctx.Session.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
		Name:     "voice-controls",
		Type:     discordgo.ChannelTypeGuildText,
		ParentID: category.ID,
	})
	if err != nil {
		return ctx.ReplyEphemeral("❌ Could not create the controls channel. Check my permissions.")
	}

	cfg := models.VoiceConfig{
		CategoryID:      category.ID,
		CreateChannelID: createChannel.ID,
		InfoChannelID:   infoChannel.ID,
	}
	if err := manager.SetConfig(guildID, cfg); err != nil {
		return ctx.ReplyEphemeral("❌ Could not save the configuration. Try again later.")
	}

	if err := sendControlPanel(ctx.Session, infoChannel.ID); err != nil {
		logger.Warn(fmt.Sprintf("Failed to send voice control panel: %v", err), "Voice")
	}

	return ctx.ReplyEphemeral(fmt.Sprintf("✅ Voice system ready! Join <#%s> to get your own channel.", createChannel.ID))
}

// sendControlPanel posts the embed with channel control buttons.
func sendControlPanel(s *discordgo.Session, channelID string) error {
	embed := &discordgo.MessageEmbed{
		Title: "🔊 Voice Channel Controls",
		Description: "Manage your temporary voice channel with the buttons below.\n\n" +
			"🔒 **Lock** / 🔓 **Unlock** — control who can join\n" +
			"👥 **Limit** — set a user limit\n" +
			"✏️ **Name** — rename your channel\n" +
			"👑 **Claim** — take over an abandoned channel\n" +
			"ℹ️ **Info** — show channel details",
		Color:  0x3498DB,
		Footer: &discordgo.MessageEmbedFooter{Text: "StreamBot Voice System"},
	}

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{CustomID: "voice_lock", Label: "Lock", Style: discordgo.SecondaryButton, Emoji: &discordgo.ComponentEmoji{Name: "🔒"}},
				discordgo.Button{CustomID: "voice_unlock", Label: "Unlock", Style: discordgo.SecondaryButton, Emoji: &discordgo.ComponentEmoji{Name: "🔓"}},
				discordgo.Button{CustomID: "voice_limit", Label: "Limit", Style: discordgo.SecondaryButton, Emoji: &discordgo.ComponentEmoji{Name: "👥"}},
				discordgo.Button{CustomID: "voice_name", Label: "Name", Style: discordgo.SecondaryButton, Emoji: &discordgo.ComponentEmoji{Name: "✏️"}},
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{CustomID: "voice_transfer", Label: "Transfer", Style: discordgo.SecondaryButton, Emoji: &discordgo.ComponentEmoji{Name: "🎁"}},
				discordgo.Button{CustomID: "voice_kick", Label: "Kick", Style: discordgo.SecondaryButton, Emoji: &discordgo.ComponentEmoji{Name: "👢"}},
				discordgo.Button{CustomID: "voice_claim", Label: "Claim", Style: discordgo.SecondaryButton, Emoji: &discordgo.ComponentEmoji{Name: "👑"}},
				discordgo.Button{CustomID: "voice_info", Label: "Info", Style: discordgo.SecondaryButton, Emoji: &discordgo.ComponentEmoji{Name: "ℹ️"}},
			},
		},
	}

	_, err := s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	})
	return err
}
