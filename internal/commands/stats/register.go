// Package stats provides activity statistics commands under /stats
// Each command is in its own file for better organization
package stats

import (
	statsagg "github.com/StreamBotDev/StreamBotGo/internal/stats"
	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
)

var aggregator *statsagg.Aggregator

// RegisterStatsCommands registers all statistics commands as /stats subcommands
func RegisterStatsCommands(client *discord.ExtendedClient, a *statsagg.Aggregator) {
	aggregator = a

	serverCmd := createServerCommand()
	userCmd := createUserCommand()
	messagesCmd := createMessagesCommand()
	voiceCmd := createVoiceCommand()

	statsGroup := client.CommandHandler.BuildCommandGroup(
		"stats",
		"Server and user activity statistics",
		serverCmd,
		userCmd,
		messagesCmd,
		voiceCmd,
	)

	client.CommandHandler.AddGlobalCommand(statsGroup)
}
