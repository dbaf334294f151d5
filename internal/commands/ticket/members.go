// Package ticket - /ticket add and /ticket remove commands
package ticket

import (
	"fmt"

	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createAddCommand creates the /ticket add subcommand
func createAddCommand() *discord.Command {
	return discord.NewCommand(
		"add",
		"Add a user to this ticket",
		"ticket",
		addHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to add to the ticket",
			Required:    true,
		},
	)
}

// createRemoveCommand creates the /ticket remove subcommand
func createRemoveCommand() *discord.Command {
	return discord.NewCommand(
		"remove",
		"Remove a user from this ticket",
		"ticket",
		removeHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to remove from the ticket",
			Required:    true,
		},
	)
}

// addHandler handles the /ticket add command
func addHandler(ctx *discord.CommandContext) error {
	guildID := ctx.Interaction.GuildID
	channelID := ctx.Interaction.ChannelID

	if _, ok, err := ledger.Get(guildID, channelID); err != nil || !ok {
		return ctx.ReplyEphemeral("❌ This command can only be used in a ticket channel.")
	}

	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	err := ctx.Session.ChannelPermissionSet(channelID, user.ID, discordgo.PermissionOverwriteTypeMember,
		discordgo.PermissionViewChannel|discordgo.PermissionSendMessages|discordgo.PermissionReadMessageHistory, 0)
	if err != nil {
		return ctx.ReplyEphemeral("❌ Could not add that user to the ticket.")
	}

	return ctx.Reply(fmt.Sprintf("✅ **%s** has been added to the ticket.", user.Username))
}

// removeHandler handles the /ticket remove command
func removeHandler(ctx *discord.CommandContext) error {
	guildID := ctx.Interaction.GuildID
	channelID := ctx.Interaction.ChannelID

	entry, ok, err := ledger.Get(guildID, channelID)
	if err != nil || !ok {
		return ctx.ReplyEphemeral("❌ This command can only be used in a ticket channel.")
	}

	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	if entry.CreatorID == user.ID {
		return ctx.ReplyEphemeral("❌ You cannot remove the ticket creator.")
	}

	if err := ctx.Session.ChannelPermissionDelete(channelID, user.ID); err != nil {
		return ctx.ReplyEphemeral("❌ Could not remove that user from the ticket.")
	}

	return ctx.Reply(fmt.Sprintf("✅ **%s** has been removed from the ticket.", user.Username))
}
