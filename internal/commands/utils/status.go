// Package utils - /utils status command
package utils

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/StreamBotDev/StreamBotGo/pkg/config"
	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/StreamBotDev/StreamBotGo/pkg/errors"
	"github.com/bwmarrin/discordgo"
)

// createStatusCommand creates the /utils status subcommand
func createStatusCommand() *discord.Command {
	return discord.NewCommand(
		"status",
		"Show the bot's status",
		"utils",
		statusHandler,
	)
}

// statusHandler handles the /utils status command
func statusHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		memberCount := 0
		for _, guild := range ctx.Session.State.Guilds {
			memberCount += guild.MemberCount
		}

		uptime := time.Since(ctx.Client.StartTime)

		embed := &discordgo.MessageEmbed{
			Title: "📊 Bot Status",
			Color: 0x5865F2,
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:   "🤖 Bot Version",
					Value:  config.Version,
					Inline: true,
				},
				{
					Name:   "🐹 Go Version",
					Value:  strings.TrimPrefix(runtime.Version(), "go"),
					Inline: true,
				},
				{
					Name:   "📚 DiscordGo Version",
					Value:  discordgo.VERSION,
					Inline: true,
				},
				{
					Name:   "🖥 RAM Usage",
					Value:  fmt.Sprintf("%.2f MB", float64(m.Alloc)/1024/1024),
					Inline: true,
				},
				{
					Name:   "⚙️ CPU Usage",
					Value:  fmt.Sprintf("%d Goroutines / %d CPUs", runtime.NumGoroutine(), runtime.NumCPU()),
					Inline: true,
				},
				{
					Name:   "⏱ Uptime",
					Value:  formatDuration(uptime),
					Inline: true,
				},
				{
					Name:   "🏠 Guilds",
					Value:  fmt.Sprintf("%d", ctx.Client.GuildCount()),
					Inline: true,
				},
				{
					Name:   "👥 Members",
					Value:  fmt.Sprintf("%d", memberCount),
					Inline: true,
				},
			},
			Footer: &discordgo.MessageEmbedFooter{
				Text:    "💫 - Developed by StreamBotDev",
				IconURL: ctx.Client.Session.State.User.AvatarURL(""),
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}

		ctx.ReplyEmbed(embed)
	}()
	return nil
}

// formatDuration formats a time.Duration into a human-readable string
func formatDuration(dur time.Duration) string {
	days := int(dur.Hours() / 24)
	hours := int(dur.Hours()) % 24
	minutes := int(dur.Minutes()) % 60
	seconds := int(dur.Seconds()) % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	parts = append(parts, fmt.Sprintf("%ds", seconds))

	return strings.Join(parts, " ")
}
