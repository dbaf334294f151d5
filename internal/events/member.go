// Package events provides event handlers for member events
package events

import (
	"fmt"
	"strings"
	"time"

	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/StreamBotDev/StreamBotGo/pkg/errors"
	"github.com/StreamBotDev/StreamBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterMemberEvents registers all member-related event handlers
func RegisterMemberEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onGuildMemberAdd)
	client.Session.AddHandler(onGuildMemberRemove)
}

// namedTextChannel finds a guild text channel by (case-insensitive) name.
func namedTextChannel(s *discordgo.Session, guildID, name string) *discordgo.Channel {
	guild, err := s.State.Guild(guildID)
	if err != nil || guild == nil {
		return nil
	}
	for _, channel := range guild.Channels {
		if channel.Type == discordgo.ChannelTypeGuildText && strings.EqualFold(channel.Name, name) {
			return channel
		}
	}
	return nil
}

// onGuildMemberAdd is called when a new member joins the server
func onGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	defer errors.RecoverMiddleware()()

	logger.Info(fmt.Sprintf("👋 New member: %s in server %s", m.User.Username, m.GuildID), "Member")

	if err := deps.Stats.RecordMemberJoin(m.GuildID); err != nil {
		logger.Error(fmt.Sprintf("Error recording member join: %v", err), "Member")
	}

	guild, err := s.Guild(m.GuildID)
	if err != nil {
		logger.Error(fmt.Sprintf("Error fetching guild: %v", err), "Member")
		return
	}

	channel := namedTextChannel(s, m.GuildID, "welcome")
	if channel == nil {
		return
	}

	welcomeEmbed := &discordgo.MessageEmbed{
		Title:       "Welcome! 🎉",
		Description: fmt.Sprintf("Say hi to <@%s>\nWe are now **%d** members.", m.User.ID, guild.MemberCount),
		Color:       0x00FF00,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: m.User.AvatarURL("128"),
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text:    guild.Name,
			IconURL: guild.IconURL("64"),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if _, err := s.ChannelMessageSendEmbed(channel.ID, welcomeEmbed); err != nil {
		logger.Error(fmt.Sprintf("Error sending welcome message: %v", err), "Member")
	}
}

// onGuildMemberRemove is called when a member leaves the server
func onGuildMemberRemove(s *discordgo.Session, m *discordgo.GuildMemberRemove) {
	defer errors.RecoverMiddleware()()

	logger.Info(fmt.Sprintf("👋 Goodbye: %s left server %s", m.User.Username, m.GuildID), "Member")

	if err := deps.Stats.RecordMemberLeave(m.GuildID); err != nil {
		logger.Error(fmt.Sprintf("Error recording member leave: %v", err), "Member")
	}

	channel := namedTextChannel(s, m.GuildID, "leave")
	if channel == nil {
		return
	}

	farewellEmbed := &discordgo.MessageEmbed{
		Description: fmt.Sprintf("👋 **%s** has left the server.", m.User.Username),
		Color:       0xE74C3C,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: m.User.AvatarURL("64"),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if _, err := s.ChannelMessageSendEmbed(channel.ID, farewellEmbed); err != nil {
		logger.Error(fmt.Sprintf("Error sending farewell message: %v", err), "Member")
	}
}
