// Package commands provides a registry for organizing bot commands.
// Commands are organized in subdirectories by category (mod, ticket, voice, ...)
package commands

import (
	"github.com/StreamBotDev/StreamBotGo/internal/commands/dev"
	"github.com/StreamBotDev/StreamBotGo/internal/commands/mod"
	statscmd "github.com/StreamBotDev/StreamBotGo/internal/commands/stats"
	"github.com/StreamBotDev/StreamBotGo/internal/commands/ticket"
	"github.com/StreamBotDev/StreamBotGo/internal/commands/utils"
	voicecmd "github.com/StreamBotDev/StreamBotGo/internal/commands/voice"
	"github.com/StreamBotDev/StreamBotGo/internal/moderation"
	statsagg "github.com/StreamBotDev/StreamBotGo/internal/stats"
	"github.com/StreamBotDev/StreamBotGo/internal/tickets"
	voicemgr "github.com/StreamBotDev/StreamBotGo/internal/voice"
	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/StreamBotDev/StreamBotGo/pkg/mqtt"
)

// Deps holds the managers shared by the command groups.
type Deps struct {
	Voice      *voicemgr.Manager
	Moderation *moderation.Ledger
	Tickets    *tickets.Ledger
	Stats      *statsagg.Aggregator
	Bridge     *mqtt.MqttCommunicator
}

// RegisterAll registers all commands with the Discord client
func RegisterAll(client *discord.ExtendedClient, deps Deps) {
	// Utility commands (/utils ping, /utils status, /utils help)
	utils.RegisterUtilsCommands(client)

	// Moderation commands (/mod warn, /mod kick, /mod ban, ...)
	mod.RegisterModCommands(client, deps.Moderation, deps.Bridge)

	// Ticket commands (/ticket setup, /ticket close, ...)
	ticket.RegisterTicketCommands(client, deps.Tickets, deps.Bridge)

	// Temporary voice channel commands (/voice lock, /voice claim, ...)
	voicecmd.RegisterVoiceCommands(client, deps.Voice, deps.Bridge)

	// Statistics commands (/stats server, /stats user, ...)
	statscmd.RegisterStatsCommands(client, deps.Stats)

	// User commands (/user profile)
	RegisterUserCommands(client, deps.Stats)

	// Developer commands (/dev eval), dev guild only
	dev.Register(client)
}
