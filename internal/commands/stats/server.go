// Package stats - /stats server command
package stats

import (
	"fmt"
	"time"

	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createServerCommand creates the /stats server subcommand
func createServerCommand() *discord.Command {
	return discord.NewCommand(
		"server",
		"Show activity statistics for this server",
		"stats",
		serverHandler,
	)
}

// serverHandler handles the /stats server command
func serverHandler(ctx *discord.CommandContext) error {
	record, err := aggregator.ServerStats(ctx.Interaction.GuildID)
	if err != nil {
		return ctx.ReplyEphemeral("❌ Could not load the server statistics. Try again later.")
	}

	embed := &discordgo.MessageEmbed{
		Title: "📊 Server Statistics",
		Color: 0x3498DB,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Messages", Value: fmt.Sprintf("%d", record.MessagesTotal), Inline: true},
			{Name: "Voice Minutes", Value: fmt.Sprintf("%d", record.VoiceMinutesTotal), Inline: true},
			{Name: "Commands Used", Value: fmt.Sprintf("%d", record.CommandsUsed), Inline: true},
			{Name: "Member Joins", Value: fmt.Sprintf("%d", record.MemberJoins), Inline: true},
			{Name: "Member Leaves", Value: fmt.Sprintf("%d", record.MemberLeaves), Inline: true},
		},
		Footer:    &discordgo.MessageEmbedFooter{Text: "StreamBot Statistics"},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if guild := ctx.Guild(); guild != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Members", Value: fmt.Sprintf("%d", guild.MemberCount), Inline: true,
		})
	}
	if record.LastUpdated > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Last Activity", Value: fmt.Sprintf("<t:%d:R>", record.LastUpdated), Inline: true,
		})
	}

	return ctx.ReplyEmbed(embed)
}
