// Package mod provides moderation commands organized as subcommands under /mod
// Each command is in its own file for better organization
package mod

import (
	"fmt"

	"github.com/StreamBotDev/StreamBotGo/internal/moderation"
	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/StreamBotDev/StreamBotGo/pkg/logger"
	"github.com/StreamBotDev/StreamBotGo/pkg/mqtt"
	"github.com/bwmarrin/discordgo"
)

var (
	ledger *moderation.Ledger
	bridge *mqtt.MqttCommunicator
)

// RegisterModCommands registers all moderation commands as /mod subcommands
func RegisterModCommands(client *discord.ExtendedClient, l *moderation.Ledger, b *mqtt.MqttCommunicator) {
	ledger = l
	bridge = b

	// Create individual subcommands (each can be in its own file)
	warnCmd := createWarnCommand()
	warningsCmd := createWarningsCommand()
	clearWarnsCmd := createClearWarnsCommand()
	removeWarnCmd := createRemoveWarnCommand()
	kickCmd := createKickCommand()
	banCmd := createBanCommand()
	timeoutCmd := createTimeoutCommand()
	setupCmd := createSetupCommand()

	// Build the /mod command group with all subcommands
	modGroup := client.CommandHandler.BuildCommandGroup(
		"mod",
		"Moderation commands",
		warnCmd,
		warningsCmd,
		clearWarnsCmd,
		removeWarnCmd,
		kickCmd,
		banCmd,
		timeoutCmd,
		setupCmd,
	)

	// Register the command group
	client.CommandHandler.AddGlobalCommand(modGroup)
}

// logAction sends an embed to the guild's moderation log channel, if set.
func logAction(ctx *discord.CommandContext, embed *discordgo.MessageEmbed) {
	channelID, err := ledger.LogChannel(ctx.Interaction.GuildID)
	if err != nil || channelID == "" {
		return
	}
	if _, err := ctx.Session.ChannelMessageSendEmbed(channelID, embed); err != nil {
		logger.Warn(fmt.Sprintf("Failed to send moderation log: %v", err), "Mod")
	}
}

// dmUser sends a DM to a user, swallowing failures (closed DMs are common).
func dmUser(ctx *discord.CommandContext, userID, content string) {
	channel, err := ctx.Session.UserChannelCreate(userID)
	if err != nil {
		logger.Debug(fmt.Sprintf("Could not open DM with %s: %v", userID, err), "Mod")
		return
	}
	if _, err := ctx.Session.ChannelMessageSend(channel.ID, content); err != nil {
		logger.Debug(fmt.Sprintf("Could not DM %s: %v", userID, err), "Mod")
	}
}

// publishModEvent publishes a moderation lifecycle event to the MQTT bridge.
func publishModEvent(action, guildID, targetID, moderatorID, reason string) {
	bridge.PublishEvent("moderation", map[string]interface{}{
		"action":    action,
		"guildId":   guildID,
		"userId":    targetID,
		"moderator": moderatorID,
		"reason":    reason,
	})
}
