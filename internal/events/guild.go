// Package events provides event handlers for guild (server) events
package events

import (
	"fmt"
	"time"

	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/StreamBotDev/StreamBotGo/pkg/errors"
	"github.com/StreamBotDev/StreamBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterGuildEvents registers all guild-related event handlers
func RegisterGuildEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onGuildCreate)
	client.Session.AddHandler(onGuildDelete)
}

// onGuildCreate is called when the bot joins a server
func onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	defer errors.RecoverMiddleware()()

	// GuildCreate also fires for every guild on startup; only greet new joins
	if g.JoinedAt.Compare(time.Now().Add(-10*time.Second)) < 0 {
		return
	}

	logger.Info(fmt.Sprintf("➕ Bot added to server: %s (ID: %s)", g.Name, g.ID), "Guild")
	logger.Debug(fmt.Sprintf("   Members: %d | Channels: %d", g.MemberCount, len(g.Channels)), "Guild")

	deps.Bridge.PublishEvent("guild", map[string]interface{}{
		"action":  "join",
		"guildId": g.ID,
		"name":    g.Name,
		"members": g.MemberCount,
	})

	if g.SystemChannelID == "" {
		return
	}

	welcomeEmbed := &discordgo.MessageEmbed{
		Title:       "Thanks for adding me! 🎉",
		Description: "Hi, I'm **StreamBot**. Use `/utils help` to see all my commands.",
		Color:       0x00FF00,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "🎫 Tickets",
				Value:  "Set up support tickets with `/ticket setup`",
				Inline: true,
			},
			{
				Name:   "🔊 Voice",
				Value:  "Temporary voice channels with `/voice setup`",
				Inline: true,
			},
			{
				Name:   "🔧 Moderation",
				Value:  "Use `/mod` to moderate",
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Enjoy StreamBot!",
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	_, err := s.ChannelMessageSendEmbed(g.SystemChannelID, welcomeEmbed)
	if err != nil {
		logger.Error(fmt.Sprintf("Error sending welcome message: %v", err), "Guild")
	}
}

// onGuildDelete is called when the bot is removed from a server
func onGuildDelete(s *discordgo.Session, g *discordgo.GuildDelete) {
	logger.Info(fmt.Sprintf("➖ Bot removed from server ID: %s", g.ID), "Guild")

	deps.Bridge.PublishEvent("guild", map[string]interface{}{
		"action":  "leave",
		"guildId": g.ID,
	})
}
