// Package stats - /stats voice command
package stats

import (
	"fmt"
	"strings"
	"time"

	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/StreamBotDev/StreamBotGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// createVoiceCommand creates the /stats voice subcommand
func createVoiceCommand() *discord.Command {
	return discord.NewCommand(
		"voice",
		"Show voice activity for a user",
		"stats",
		voiceHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to look up (defaults to you)",
			Required:    false,
		},
	)
}

// voiceHandler handles the /stats voice command
func voiceHandler(ctx *discord.CommandContext) error {
	target := ctx.GetUserOption("user")
	if target == nil {
		target = ctx.User()
	}

	record, err := aggregator.VoiceStats(ctx.Interaction.GuildID)
	if err != nil {
		return ctx.ReplyEphemeral("❌ Could not load the voice statistics. Try again later.")
	}
	entry, ok := record[target.ID]
	if !ok {
		return ctx.ReplyEphemeral(fmt.Sprintf("📭 No voice activity recorded for **%s** yet.", target.Username))
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🔊 Voice Statistics for %s", target.Username),
		Color: 0x3498DB,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Total Minutes", Value: fmt.Sprintf("%d", entry.TotalMinutes), Inline: true},
			{Name: "Sessions Tracked", Value: fmt.Sprintf("%d", len(entry.Sessions)), Inline: true},
		},
		Footer:    &discordgo.MessageEmbedFooter{Text: "StreamBot Statistics"},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if top := topChannels(entry.Channels, 5); top != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Top Channels (minutes)", Value: top, Inline: false,
		})
	}

	if recent := recentSessions(entry.Sessions, 5); recent != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Recent Sessions", Value: recent, Inline: false,
		})
	}

	return ctx.ReplyEmbed(embed)
}

// recentSessions renders the newest sessions, newest first.
func recentSessions(sessions []models.VoiceSession, limit int) string {
	var sb strings.Builder
	shown := 0
	for i := len(sessions) - 1; i >= 0 && shown < limit; i-- {
		session := sessions[i]
		if session.End == nil {
			sb.WriteString(fmt.Sprintf("<#%s> — since <t:%d:R>\n", session.ChannelID, session.Start.Unix()))
		} else {
			minutes := int(session.End.Sub(session.Start).Minutes())
			sb.WriteString(fmt.Sprintf("<#%s> — %d min, <t:%d:R>\n", session.ChannelID, minutes, session.End.Unix()))
		}
		shown++
	}
	return strings.TrimRight(sb.String(), "\n")
}
