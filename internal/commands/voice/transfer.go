// Package voice - /voice transfer command
package voice

import (
	"fmt"

	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createTransferCommand creates the /voice transfer subcommand
func createTransferCommand() *discord.Command {
	return discord.NewCommand(
		"transfer",
		"Transfer ownership of your voice channel",
		"voice",
		transferHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "New channel owner",
			Required:    true,
		},
	)
}

// transferHandler handles the /voice transfer command
func transferHandler(ctx *discord.CommandContext) error {
	guildID := ctx.Interaction.GuildID

	target := ctx.GetUserOption("user")
	if target == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	channelID, err := trackedChannel(ctx)
	if err != nil {
		return replyVoiceError(ctx, err)
	}

	targetChannel, _ := MemberChannelID(ctx.Session, guildID, target.ID)
	targetPresent := targetChannel == channelID

	entry, err := manager.Transfer(guildID, channelID, ctx.User().ID, target.ID, target.Username, targetPresent)
	if err != nil {
		return replyVoiceError(ctx, err)
	}

	publishVoiceEvent("transfer", guildID, channelID, target.ID)

	return ctx.Reply(fmt.Sprintf("🎁 <@%s> now owns **%s**.", entry.OwnerID, entry.Name))
}
