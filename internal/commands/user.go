// Package commands - /user profile command
package commands

import (
	"fmt"
	"time"

	statsagg "github.com/StreamBotDev/StreamBotGo/internal/stats"
	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// RegisterUserCommands registers the /user command group
func RegisterUserCommands(client *discord.ExtendedClient, aggregator *statsagg.Aggregator) {
	profileCmd := discord.NewCommand(
		"profile",
		"Show a user's profile",
		"user",
		func(ctx *discord.CommandContext) error {
			return profileHandler(ctx, aggregator)
		},
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to look up (defaults to you)",
			Required:    false,
		},
	)

	userGroup := client.CommandHandler.BuildCommandGroup(
		"user",
		"User commands",
		profileCmd,
	)

	client.CommandHandler.AddGlobalCommand(userGroup)
}

// profileHandler handles the /user profile command
func profileHandler(ctx *discord.CommandContext, aggregator *statsagg.Aggregator) error {
	target := ctx.GetUserOption("user")
	if target == nil {
		target = ctx.User()
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("👤 Profile of %s", target.Username),
		Color: 0x5865F2,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: target.AvatarURL("256"),
		},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "User", Value: fmt.Sprintf("<@%s>", target.ID), Inline: true},
			{Name: "ID", Value: target.ID, Inline: true},
		},
		Footer:    &discordgo.MessageEmbedFooter{Text: "StreamBot"},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if member, err := ctx.Session.GuildMember(ctx.Interaction.GuildID, target.ID); err == nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Joined Server", Value: fmt.Sprintf("<t:%d:R>", member.JoinedAt.Unix()), Inline: true,
		})
	}

	if entry, ok, err := aggregator.User(ctx.Interaction.GuildID, target.ID); err == nil && ok {
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{Name: "Messages", Value: fmt.Sprintf("%d", entry.MessagesTotal), Inline: true},
			&discordgo.MessageEmbedField{Name: "Voice Minutes", Value: fmt.Sprintf("%d", entry.VoiceMinutesTotal), Inline: true},
			&discordgo.MessageEmbedField{Name: "Commands Used", Value: fmt.Sprintf("%d", entry.CommandsUsed), Inline: true},
		)
	}

	return ctx.ReplyEmbed(embed)
}
