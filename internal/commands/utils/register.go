// Package utils provides utility commands under /utils
// Each command is in its own file for better organization
package utils

import (
	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
)

// RegisterUtilsCommands registers all utility commands as /utils subcommands
func RegisterUtilsCommands(client *discord.ExtendedClient) {
	pingCmd := createPingCommand()
	statusCmd := createStatusCommand()
	helpCmd := createHelpCommand()

	utilsGroup := client.CommandHandler.BuildCommandGroup(
		"utils",
		"Utility commands",
		pingCmd,
		statusCmd,
		helpCmd,
	)

	client.CommandHandler.AddGlobalCommand(utilsGroup)
}
