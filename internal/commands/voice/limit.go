// Package voice - /voice limit command
package voice

import (
	"fmt"

	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createLimitCommand creates the /voice limit subcommand
func createLimitCommand() *discord.Command {
	return discord.NewCommand(
		"limit",
		"Set the user limit of your voice channel",
		"voice",
		limitHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "limit",
			Description: "Maximum users (0 = unlimited)",
			Required:    true,
			MinValue:    func() *float64 { v := 0.0; return &v }(),
			MaxValue:    99,
		},
	)
}

// limitHandler handles the /voice limit command
func limitHandler(ctx *discord.CommandContext) error {
	guildID := ctx.Interaction.GuildID
	limit := int(ctx.GetIntOption("limit"))

	channelID, err := trackedChannel(ctx)
	if err != nil {
		return replyVoiceError(ctx, err)
	}

	if _, err := manager.SetUserLimit(guildID, channelID, ctx.User().ID, limit); err != nil {
		return replyVoiceError(ctx, err)
	}

	if _, err := ctx.Session.ChannelEditComplex(channelID, &discordgo.ChannelEdit{UserLimit: limit}); err != nil {
		return ctx.ReplyEphemeral("❌ Saved, but I could not update the channel.")
	}

	publishVoiceEvent("limit", guildID, channelID, ctx.User().ID)

	if limit == 0 {
		return ctx.ReplyEphemeral("👥 User limit removed.")
	}
	return ctx.ReplyEphemeral(fmt.Sprintf("👥 User limit set to **%d**.", limit))
}
