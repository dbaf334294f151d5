// Package stats - /stats messages command
package stats

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

var weekdays = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// createMessagesCommand creates the /stats messages subcommand
func createMessagesCommand() *discord.Command {
	return discord.NewCommand(
		"messages",
		"Show message activity for a user",
		"stats",
		messagesHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to look up (defaults to you)",
			Required:    false,
		},
	)
}

// messagesHandler handles the /stats messages command
func messagesHandler(ctx *discord.CommandContext) error {
	target := ctx.GetUserOption("user")
	if target == nil {
		target = ctx.User()
	}

	record, err := aggregator.MessageStats(ctx.Interaction.GuildID)
	if err != nil {
		return ctx.ReplyEphemeral("❌ Could not load the message statistics. Try again later.")
	}
	entry, ok := record[target.ID]
	if !ok || entry.Total == 0 {
		return ctx.ReplyEphemeral(fmt.Sprintf("📭 No messages recorded for **%s** yet.", target.Username))
	}

	busiestHour := 0
	for h, count := range entry.Hourly {
		if count > entry.Hourly[busiestHour] {
			busiestHour = h
		}
	}
	busiestDay := 0
	for d, count := range entry.Daily {
		if count > entry.Daily[busiestDay] {
			busiestDay = d
		}
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("💬 Message Statistics for %s", target.Username),
		Color: 0x3498DB,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Total Messages", Value: fmt.Sprintf("%d", entry.Total), Inline: true},
			{Name: "Busiest Hour", Value: fmt.Sprintf("%02d:00 (%d messages)", busiestHour, entry.Hourly[busiestHour]), Inline: true},
			{Name: "Busiest Day", Value: fmt.Sprintf("%s (%d messages)", weekdays[busiestDay], entry.Daily[busiestDay]), Inline: true},
		},
		Footer:    &discordgo.MessageEmbedFooter{Text: "StreamBot Statistics"},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if top := topChannels(entry.Channels, 5); top != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Top Channels", Value: top, Inline: false,
		})
	}

	return ctx.ReplyEmbed(embed)
}

// topChannels renders the highest-count channels as mention lines.
func topChannels(channels map[string]int, limit int) string {
	type channelCount struct {
		id    string
		count int
	}
	ranked := make([]channelCount, 0, len(channels))
	for id, count := range channels {
		ranked = append(ranked, channelCount{id, count})
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].count > ranked[j].count })

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	var sb strings.Builder
	for i, c := range ranked {
		sb.WriteString(fmt.Sprintf("%d. <#%s> — %d\n", i+1, c.id, c.count))
	}
	return strings.TrimRight(sb.String(), "\n")
}
