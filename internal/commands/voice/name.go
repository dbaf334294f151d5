// Package voice - /voice name command
package voice

import (
	"fmt"

	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createNameCommand creates the /voice name subcommand
func createNameCommand() *discord.Command {
	return discord.NewCommand(
		"name",
		"Rename your voice channel",
		"voice",
		nameHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "name",
			Description: "New channel name",
			Required:    true,
			MaxLength:   100,
		},
	)
}

// nameHandler handles the /voice name command
func nameHandler(ctx *discord.CommandContext) error {
	guildID := ctx.Interaction.GuildID
	name := ctx.GetStringOption("name")

	channelID, err := trackedChannel(ctx)
	if err != nil {
		return replyVoiceError(ctx, err)
	}

	entry, err := manager.Rename(guildID, channelID, ctx.User().ID, name)
	if err != nil {
		return replyVoiceError(ctx, err)
	}

	if _, err := ctx.Session.ChannelEditComplex(channelID, &discordgo.ChannelEdit{Name: entry.Name}); err != nil {
		return ctx.ReplyEphemeral("❌ Saved, but I could not rename the channel.")
	}

	publishVoiceEvent("rename", guildID, channelID, ctx.User().ID)

	return ctx.ReplyEphemeral(fmt.Sprintf("✏️ Channel renamed to **%s**.", entry.Name))
}
