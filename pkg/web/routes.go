// Package web provides API routes for the web server.
package web

import (
	"net/http"

	"github.com/StreamBotDev/StreamBotGo/pkg/config"
	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/StreamBotDev/StreamBotGo/pkg/models"
	"github.com/gin-gonic/gin"
)

// GuildStatsProvider supplies the per-guild statistics served by the API.
type GuildStatsProvider interface {
	ServerStats(guildID string) (models.ServerStats, error)
	UserStats(guildID string) (models.UserStatsRecord, error)
}

var statsProvider GuildStatsProvider

// SetupAPIRoutes sets up the API routes
func SetupAPIRoutes(s *Server, stats GuildStatsProvider) {
	statsProvider = stats

	api := s.Group("/api")
	{
		api.GET("/status", statusHandler)
		api.GET("/health", healthHandler)
		api.GET("/bot", botInfoHandler)
		api.GET("/guilds/:guildId/stats", guildStatsHandler)
		api.GET("/live", liveLogsHandler)
	}
}

// statusHandler returns the bot status
func statusHandler(c *gin.Context) {
	client := discord.Get()

	botOnline := false
	guilds := 0
	if client != nil {
		botOnline = client.IsReady()
		guilds = client.GuildCount()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": config.Version,
		"bot": gin.H{
			"isOnline": botOnline,
			"guilds":   guilds,
		},
	})
}

// healthHandler returns a simple health check response
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "StreamBot Go is running",
	})
}

// botInfoHandler returns information about the bot
func botInfoHandler(c *gin.Context) {
	client := discord.Get()

	if client == nil || !client.IsReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Bot Offline",
			"message": "The bot is not available right now.",
		})
		return
	}

	user := client.Session.State.User

	c.JSON(http.StatusOK, gin.H{
		"id":            user.ID,
		"username":      user.Username,
		"discriminator": user.Discriminator,
		"avatar":        user.Avatar,
		"guilds":        client.GuildCount(),
		"isReady":       client.IsReady(),
	})
}

// guildStatsHandler returns the aggregated statistics for one guild
func guildStatsHandler(c *gin.Context) {
	if statsProvider == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Stats Unavailable",
			"message": "Statistics are not available right now.",
		})
		return
	}

	guildID := c.Param("guildId")

	serverStats, err := statsProvider.ServerStats(guildID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal Error",
			"message": "Could not load the guild statistics.",
		})
		return
	}

	userStats, err := statsProvider.UserStats(guildID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal Error",
			"message": "Could not load the guild statistics.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"guildId": guildID,
		"server":  serverStats,
		"users":   userStats,
	})
}
