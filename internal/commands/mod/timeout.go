// Package mod - /mod timeout command
package mod

import (
	"fmt"
	"time"

	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createTimeoutCommand creates the /mod timeout subcommand
func createTimeoutCommand() *discord.Command {
	return discord.NewCommand(
		"timeout",
		"Time out a user",
		"mod",
		timeoutHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to time out",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "minutes",
			Description: "Timeout duration in minutes (max 7 days)",
			Required:    true,
			MinValue:    func() *float64 { v := 1.0; return &v }(),
			MaxValue:    10080,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the timeout",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

// timeoutHandler handles the /mod timeout command
func timeoutHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	minutes := ctx.GetIntOption("minutes")
	reason := ctx.GetStringOption("reason")
	if reason == "" {
		reason = "No reason provided"
	}

	guildID := ctx.Interaction.GuildID
	until := time.Now().Add(time.Duration(minutes) * time.Minute)

	if err := ctx.Session.GuildMemberTimeout(guildID, user.ID, &until); err != nil {
		return ctx.ReplyEphemeral("❌ Could not time out that user. Check my permissions and role position.")
	}

	guild := ctx.Guild()
	guildName := guildID
	if guild != nil {
		guildName = guild.Name
	}
	dmUser(ctx, user.ID, fmt.Sprintf("🔇 You have been timed out in **%s** for %d minute(s).\n**Reason:** %s", guildName, minutes, reason))

	logAction(ctx, &discordgo.MessageEmbed{
		Title: "🔇 User Timed Out",
		Color: 0xFF8C00,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "User", Value: fmt.Sprintf("%s (%s)", user.Username, user.ID), Inline: true},
			{Name: "Moderator", Value: ctx.User().Username, Inline: true},
			{Name: "Duration", Value: fmt.Sprintf("%d minute(s)", minutes), Inline: true},
			{Name: "Reason", Value: reason},
		},
	})

	publishModEvent("timeout", guildID, user.ID, ctx.User().ID, reason)

	return ctx.Reply(fmt.Sprintf("🔇 **%s** has been timed out for %d minute(s).\n**Reason:** %s", user.Username, minutes, reason))
}
