// Package events provides event handlers for the bot
package events

import (
	"fmt"
	"sync"
	"time"

	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/StreamBotDev/StreamBotGo/pkg/errors"
	"github.com/StreamBotDev/StreamBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// presenceInterval is how often the bot's activity text is rotated.
const presenceInterval = 10 * time.Minute

var presences = []string{
	"/utils help",
	"your support tickets 🎫",
	"your voice channels 🔊",
	"server statistics 📊",
}

var presenceOnce sync.Once

// RegisterReadyEvent registers the ready event handler
func RegisterReadyEvent(client *discord.ExtendedClient) {
	client.Session.AddHandler(onReady)
}

// onReady is called when the bot successfully connects to Discord
func onReady(s *discordgo.Session, r *discordgo.Ready) {
	logger.Success(fmt.Sprintf("✅ Bot connected: %s#%s", r.User.Username, r.User.Discriminator), "Ready")
	logger.Info(fmt.Sprintf("📊 Connected to %d servers", len(r.Guilds)), "Ready")

	if err := s.UpdateGameStatus(0, presences[0]); err != nil {
		logger.Error(fmt.Sprintf("Error setting presence: %v", err), "Ready")
	}

	// Ready can fire again on resume; only one rotation loop
	presenceOnce.Do(func() {
		go rotatePresence(s)
	})
}

// rotatePresence cycles the bot's activity text.
func rotatePresence(s *discordgo.Session) {
	defer errors.RecoverMiddleware()()

	ticker := time.NewTicker(presenceInterval)
	defer ticker.Stop()

	next := 1
	for range ticker.C {
		if err := s.UpdateGameStatus(0, presences[next%len(presences)]); err != nil {
			logger.Debug(fmt.Sprintf("Error rotating presence: %v", err), "Ready")
		}
		next++
	}
}
