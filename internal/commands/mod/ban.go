// Package mod - /mod ban command
package mod

import (
	"fmt"

	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createBanCommand creates the /mod ban subcommand
func createBanCommand() *discord.Command {
	return discord.NewCommand(
		"ban",
		"Ban a user from the server",
		"mod",
		banHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to ban",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the ban",
			Required:    false,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "delete_days",
			Description: "Days of messages to delete (0-7)",
			Required:    false,
			MinValue:    func() *float64 { v := 0.0; return &v }(),
			MaxValue:    7,
		},
	).WithUserPermissions(discordgo.PermissionBanMembers)
}

// banHandler handles the /mod ban command
func banHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	reason := ctx.GetStringOption("reason")
	if reason == "" {
		reason = "No reason provided"
	}
	deleteDays := int(ctx.GetIntOption("delete_days"))

	guildID := ctx.Interaction.GuildID

	guild := ctx.Guild()
	guildName := guildID
	if guild != nil {
		guildName = guild.Name
	}
	dmUser(ctx, user.ID, fmt.Sprintf("🔨 You have been banned from **%s**.\n**Reason:** %s", guildName, reason))

	if err := ctx.Session.GuildBanCreateWithReason(guildID, user.ID, reason, deleteDays); err != nil {
		return ctx.ReplyEphemeral("❌ Could not ban that user. Check my permissions and role position.")
	}

	logAction(ctx, &discordgo.MessageEmbed{
		Title: "🔨 User Banned",
		Color: 0xFF0000,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "User", Value: fmt.Sprintf("%s (%s)", user.Username, user.ID), Inline: true},
			{Name: "Moderator", Value: ctx.User().Username, Inline: true},
			{Name: "Reason", Value: reason},
		},
	})

	publishModEvent("ban", guildID, user.ID, ctx.User().ID, reason)

	return ctx.Reply(fmt.Sprintf("🔨 **%s** has been banned.\n**Reason:** %s", user.Username, reason))
}
