// Package stats - /stats user command
package stats

import (
	"fmt"
	"time"

	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createUserCommand creates the /stats user subcommand
func createUserCommand() *discord.Command {
	return discord.NewCommand(
		"user",
		"Show activity statistics for a user",
		"stats",
		userHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to look up (defaults to you)",
			Required:    false,
		},
	)
}

// userHandler handles the /stats user command
func userHandler(ctx *discord.CommandContext) error {
	target := ctx.GetUserOption("user")
	if target == nil {
		target = ctx.User()
	}

	entry, ok, err := aggregator.User(ctx.Interaction.GuildID, target.ID)
	if err != nil {
		return ctx.ReplyEphemeral("❌ Could not load the user statistics. Try again later.")
	}
	if !ok {
		return ctx.ReplyEphemeral(fmt.Sprintf("📭 No activity recorded for **%s** yet.", target.Username))
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📊 Statistics for %s", target.Username),
		Color: 0x3498DB,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: target.AvatarURL("256"),
		},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Messages", Value: fmt.Sprintf("%d", entry.MessagesTotal), Inline: true},
			{Name: "Voice Minutes", Value: fmt.Sprintf("%d", entry.VoiceMinutesTotal), Inline: true},
			{Name: "Commands Used", Value: fmt.Sprintf("%d", entry.CommandsUsed), Inline: true},
		},
		Footer:    &discordgo.MessageEmbedFooter{Text: "StreamBot Statistics"},
		Timestamp: time.Now().Format(time.RFC3339),
	}
	if entry.LastActive > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Last Active", Value: fmt.Sprintf("<t:%d:R>", entry.LastActive), Inline: true,
		})
	}

	return ctx.ReplyEmbed(embed)
}
