// Package events provides a registry for organizing bot events.
// Events are organized by category (guild, member, message, voice, etc.)
package events

import (
	statsagg "github.com/StreamBotDev/StreamBotGo/internal/stats"
	"github.com/StreamBotDev/StreamBotGo/internal/tickets"
	voicemgr "github.com/StreamBotDev/StreamBotGo/internal/voice"
	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/StreamBotDev/StreamBotGo/pkg/logger"
	"github.com/StreamBotDev/StreamBotGo/pkg/mqtt"
)

// Deps holds the managers shared by the event handlers.
type Deps struct {
	Voice   *voicemgr.Manager
	Tickets *tickets.Ledger
	Stats   *statsagg.Aggregator
	Bridge  *mqtt.MqttCommunicator
}

var deps Deps

// RegisterAll registers all events with the Discord client
func RegisterAll(client *discord.ExtendedClient, d Deps) {
	deps = d

	logger.System("📋 Registering bot events...", "Events")

	// Ready event (bot startup, presence rotation)
	RegisterReadyEvent(client)

	// Guild events (server join/leave)
	RegisterGuildEvents(client)

	// Member events (join/leave)
	RegisterMemberEvents(client)

	// Message events (activity statistics)
	RegisterMessageEvents(client)

	// Voice events (temporary channels, voice sessions)
	RegisterVoiceEvents(client)

	// Interaction events (buttons: tickets, voice controls)
	RegisterInteractionEvents(client)

	logger.Success("✅ All events registered", "Events")
}
