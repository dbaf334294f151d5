// Package events provides event handlers for message events
package events

import (
	"fmt"
	"time"

	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/StreamBotDev/StreamBotGo/pkg/errors"
	"github.com/StreamBotDev/StreamBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterMessageEvents registers all message-related event handlers
func RegisterMessageEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onMessageCreate)
}

// onMessageCreate is called when a new message is created
func onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	defer errors.RecoverMiddleware()()

	// Ignore bots and DMs
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}

	err := deps.Stats.RecordMessage(m.GuildID, m.Author.ID, m.Author.Username, m.ChannelID, time.Now())
	if err != nil {
		logger.Error(fmt.Sprintf("Error recording message: %v", err), "Message")
	}
}
