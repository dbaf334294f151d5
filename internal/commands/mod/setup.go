// Package mod - /mod setup command
package mod

import (
	"fmt"

	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createSetupCommand creates the /mod setup subcommand
func createSetupCommand() *discord.Command {
	return discord.NewCommand(
		"setup",
		"Configure the moderation log channel",
		"mod",
		setupHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:         discordgo.ApplicationCommandOptionChannel,
			Name:         "channel",
			Description:  "Channel for moderation logs",
			Required:     true,
			ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
		},
	).WithUserPermissions(discordgo.PermissionAdministrator)
}

// setupHandler handles the /mod setup command
func setupHandler(ctx *discord.CommandContext) error {
	channel := ctx.GetChannelOption("channel")
	if channel == nil {
		return ctx.ReplyEphemeral("❌ You must specify a channel.")
	}

	if err := ledger.SetLogChannel(ctx.Interaction.GuildID, channel.ID); err != nil {
		return ctx.ReplyEphemeral("❌ Could not save the configuration. Try again later.")
	}

	return ctx.ReplyEphemeral(fmt.Sprintf("✅ Moderation logs will be sent to <#%s>.", channel.ID))
}
