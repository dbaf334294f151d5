// Package main is the entry point for the StreamBot Go application.
// It initializes all systems and starts the Discord bot.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/StreamBotDev/StreamBotGo/internal/commands"
	"github.com/StreamBotDev/StreamBotGo/internal/events"
	"github.com/StreamBotDev/StreamBotGo/internal/moderation"
	statsagg "github.com/StreamBotDev/StreamBotGo/internal/stats"
	"github.com/StreamBotDev/StreamBotGo/internal/tickets"
	voicemgr "github.com/StreamBotDev/StreamBotGo/internal/voice"
	"github.com/StreamBotDev/StreamBotGo/pkg/config"
	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/StreamBotDev/StreamBotGo/pkg/errors"
	"github.com/StreamBotDev/StreamBotGo/pkg/logger"
	"github.com/StreamBotDev/StreamBotGo/pkg/mqtt"
	"github.com/StreamBotDev/StreamBotGo/pkg/store"
	"github.com/StreamBotDev/StreamBotGo/pkg/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logger.System("Starting StreamBot Go...", "Main")
	logger.Info(fmt.Sprintf("Working directory: %s", getCurrentDir()), "Main")

	// Initialize error handler
	var discordClient *discord.ExtendedClient
	errors.Init(cfg.ErrorWebhook, func() {
		if discordClient != nil {
			if err := discordClient.Stop(); err != nil {
				return
			}
		}
	})

	// Initialize the persistence store and managers
	dataStore := store.New(cfg.DataDir)
	voiceManager := voicemgr.NewManager(dataStore)
	moderationLedger := moderation.NewLedger(dataStore)
	ticketLedger := tickets.NewLedger(dataStore)
	statsAggregator := statsagg.NewAggregator(dataStore)

	logger.Info(fmt.Sprintf("Data directory: %s", dataStore.Root()), "Main")

	// Initialize MQTT
	mqttClientID := "streambot"
	if !cfg.IsProd() {
		mqttClientID = "streambot_canary"
	}

	mqttClient := mqtt.Init(
		cfg.MQTTHost,
		cfg.MQTTPort,
		cfg.MQTTUser,
		cfg.MQTTPassword,
		mqttClientID,
	)
	defer mqttClient.Destroy()

	registerMqttHandlers(mqttClient, statsAggregator)

	// Initialize web server
	webServer := web.Init(cfg.LogsWebhook)
	web.SetupAPIRoutes(webServer, statsAggregator)
	webServer.StartAsync(cfg.Port)

	// Initialize Discord client
	discordClient, err = discord.Init(cfg.BotToken)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "Main")
		os.Exit(1)
	}

	// Count slash command usage
	discordClient.OnCommandInvoked = func(ctx *discord.CommandContext, commandName string) {
		if ctx.Interaction.GuildID == "" {
			return
		}
		user := ctx.User()
		if err := statsAggregator.RecordCommand(ctx.Interaction.GuildID, user.ID, user.Username); err != nil {
			logger.Debug(fmt.Sprintf("Error recording command usage: %v", err), "Main")
		}
	}

	// Register commands
	commands.RegisterAll(discordClient, commands.Deps{
		Voice:      voiceManager,
		Moderation: moderationLedger,
		Tickets:    ticketLedger,
		Stats:      statsAggregator,
		Bridge:     mqttClient,
	})

	// Register events
	events.RegisterAll(discordClient, events.Deps{
		Voice:   voiceManager,
		Tickets: ticketLedger,
		Stats:   statsAggregator,
		Bridge:  mqttClient,
	})

	// Start the bot
	if err := discordClient.Start(); err != nil {
		logger.Critical(fmt.Sprintf("Error starting Discord client: %v", err), "Main")
		os.Exit(1)
	}
	defer func(discordClient *discord.ExtendedClient) {
		if err := discordClient.Stop(); err != nil {
			return
		}
	}(discordClient)

	logger.Success("StreamBot Go started successfully!", "Main")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.System("Shutting down StreamBot Go...", "Main")
}

// registerMqttHandlers wires the request topics served over the broker.
func registerMqttHandlers(mc *mqtt.MqttCommunicator, aggregator *statsagg.Aggregator) {
	mc.On("status", func(payload map[string]interface{}) (interface{}, error) {
		client := discord.Get()

		online := false
		guilds := 0
		if client != nil {
			online = client.IsReady()
			guilds = client.GuildCount()
		}

		return map[string]interface{}{
			"isOnline": online,
			"guilds":   guilds,
			"version":  config.Version,
		}, nil
	})

	mc.On("guild-stats", func(payload map[string]interface{}) (interface{}, error) {
		guildID, _ := payload["guildId"].(string)
		if guildID == "" {
			return nil, fmt.Errorf("guildId is required")
		}

		serverStats, err := aggregator.ServerStats(guildID)
		if err != nil {
			return nil, err
		}

		return map[string]interface{}{
			"guildId": guildID,
			"server":  serverStats,
		}, nil
	})
}

// getCurrentDir returns the current working directory
func getCurrentDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "unknown"
	}
	return dir
}
