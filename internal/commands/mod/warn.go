// Package mod - /mod warn command
package mod

import (
	"fmt"

	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createWarnCommand creates the /mod warn subcommand
func createWarnCommand() *discord.Command {
	return discord.NewCommand(
		"warn",
		"Warn a user",
		"mod",
		warnHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to warn",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the warning",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

// warnHandler handles the /mod warn command
func warnHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	reason := ctx.GetStringOption("reason")
	if reason == "" {
		return ctx.ReplyEphemeral("❌ You must specify a reason.")
	}

	guildID := ctx.Interaction.GuildID
	count, warning, err := ledger.AddWarning(guildID, user.ID, ctx.User().ID, reason)
	if err != nil {
		return ctx.ReplyEphemeral("❌ Could not save the warning. Try again later.")
	}

	guild := ctx.Guild()
	guildName := guildID
	if guild != nil {
		guildName = guild.Name
	}
	dmUser(ctx, user.ID, fmt.Sprintf("⚠️ You have been warned in **%s**.\n**Reason:** %s", guildName, reason))

	logAction(ctx, &discordgo.MessageEmbed{
		Title: "⚠️ User Warned",
		Color: 0xFFFF00,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "User", Value: fmt.Sprintf("%s (%s)", user.Username, user.ID), Inline: true},
			{Name: "Moderator", Value: ctx.User().Username, Inline: true},
			{Name: "Reason", Value: reason},
			{Name: "Warning ID", Value: warning.ID},
		},
	})

	publishModEvent("warn", guildID, user.ID, ctx.User().ID, reason)

	return ctx.Reply(fmt.Sprintf("⚠️ **%s** has been warned.\n**Reason:** %s\n**Total warnings:** %d",
		user.Username,
		reason,
		count,
	))
}
