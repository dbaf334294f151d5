// Package ticket provides support ticket commands under /ticket
// Each command is in its own file for better organization
package ticket

import (
	"github.com/StreamBotDev/StreamBotGo/internal/tickets"
	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/StreamBotDev/StreamBotGo/pkg/mqtt"
)

var (
	ledger *tickets.Ledger
	bridge *mqtt.MqttCommunicator
)

// RegisterTicketCommands registers all ticket commands as /ticket subcommands
func RegisterTicketCommands(client *discord.ExtendedClient, l *tickets.Ledger, b *mqtt.MqttCommunicator) {
	ledger = l
	bridge = b

	setupCmd := createSetupCommand()
	closeCmd := createCloseCommand()
	addCmd := createAddCommand()
	removeCmd := createRemoveCommand()

	ticketGroup := client.CommandHandler.BuildCommandGroup(
		"ticket",
		"Support ticket commands",
		setupCmd,
		closeCmd,
		addCmd,
		removeCmd,
	)

	client.CommandHandler.AddGlobalCommand(ticketGroup)
}

// publishTicketEvent publishes a ticket lifecycle event to the MQTT bridge.
func publishTicketEvent(action, guildID, channelID, userID string, ticketID int) {
	bridge.PublishEvent("ticket", map[string]interface{}{
		"action":    action,
		"guildId":   guildID,
		"channelId": channelID,
		"userId":    userID,
		"ticketId":  ticketID,
	})
}
