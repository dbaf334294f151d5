// Package mod - /mod clearwarns command
package mod

import (
	"fmt"

	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createClearWarnsCommand creates the /mod clearwarns subcommand
func createClearWarnsCommand() *discord.Command {
	return discord.NewCommand(
		"clearwarns",
		"Remove all warnings from a user",
		"mod",
		clearWarnsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to clear",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

// clearWarnsHandler handles the /mod clearwarns command
func clearWarnsHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	guildID := ctx.Interaction.GuildID
	previous, err := ledger.ClearWarnings(guildID, user.ID)
	if err != nil {
		return ctx.ReplyEphemeral("❌ Could not clear warnings. Try again later.")
	}

	if previous == 0 {
		return ctx.ReplyEphemeral(fmt.Sprintf("✅ **%s** had no warnings.", user.Username))
	}

	logAction(ctx, &discordgo.MessageEmbed{
		Title: "🧹 Warnings Cleared",
		Color: 0x00FF00,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "User", Value: fmt.Sprintf("%s (%s)", user.Username, user.ID), Inline: true},
			{Name: "Moderator", Value: ctx.User().Username, Inline: true},
			{Name: "Removed", Value: fmt.Sprintf("%d", previous), Inline: true},
		},
	})

	publishModEvent("clearwarns", guildID, user.ID, ctx.User().ID, "")

	return ctx.Reply(fmt.Sprintf("🧹 Removed **%d** warning(s) from **%s**.", previous, user.Username))
}
