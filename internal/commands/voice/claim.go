// Package voice - /voice claim command
package voice

import (
	"fmt"

	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
)

// createClaimCommand creates the /voice claim subcommand
func createClaimCommand() *discord.Command {
	return discord.NewCommand(
		"claim",
		"Claim an abandoned voice channel",
		"voice",
		claimHandler,
	)
}

// claimHandler handles the /voice claim command
func claimHandler(ctx *discord.CommandContext) error {
	guildID := ctx.Interaction.GuildID

	channelID, err := trackedChannel(ctx)
	if err != nil {
		return replyVoiceError(ctx, err)
	}

	present := ChannelMemberIDs(ctx.Session, guildID, channelID)

	entry, err := manager.Claim(guildID, channelID, ctx.User().ID, ctx.User().Username, present)
	if err != nil {
		return replyVoiceError(ctx, err)
	}

	publishVoiceEvent("claim", guildID, channelID, ctx.User().ID)

	return ctx.Reply(fmt.Sprintf("👑 <@%s> claimed **%s**.", entry.OwnerID, entry.Name))
}
