// Package mod - /mod kick command
package mod

import (
	"fmt"

	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createKickCommand creates the /mod kick subcommand
func createKickCommand() *discord.Command {
	return discord.NewCommand(
		"kick",
		"Kick a user from the server",
		"mod",
		kickHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to kick",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the kick",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionKickMembers)
}

// kickHandler handles the /mod kick command
func kickHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	reason := ctx.GetStringOption("reason")
	if reason == "" {
		reason = "No reason provided"
	}

	guildID := ctx.Interaction.GuildID

	guild := ctx.Guild()
	guildName := guildID
	if guild != nil {
		guildName = guild.Name
	}
	dmUser(ctx, user.ID, fmt.Sprintf("👢 You have been kicked from **%s**.\n**Reason:** %s", guildName, reason))

	if err := ctx.Session.GuildMemberDeleteWithReason(guildID, user.ID, reason); err != nil {
		return ctx.ReplyEphemeral("❌ Could not kick that user. Check my permissions and role position.")
	}

	logAction(ctx, &discordgo.MessageEmbed{
		Title: "👢 User Kicked",
		Color: 0xFF8C00,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "User", Value: fmt.Sprintf("%s (%s)", user.Username, user.ID), Inline: true},
			{Name: "Moderator", Value: ctx.User().Username, Inline: true},
			{Name: "Reason", Value: reason},
		},
	})

	publishModEvent("kick", guildID, user.ID, ctx.User().ID, reason)

	return ctx.Reply(fmt.Sprintf("👢 **%s** has been kicked.\n**Reason:** %s", user.Username, reason))
}
