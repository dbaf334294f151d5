// Package ticket - /ticket setup command
package ticket

import (
	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/StreamBotDev/StreamBotGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// createSetupCommand creates the /ticket setup subcommand
func createSetupCommand() *discord.Command {
	return discord.NewCommand(
		"setup",
		"Set up the ticket system",
		"ticket",
		setupHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:         discordgo.ApplicationCommandOptionChannel,
			Name:         "channel",
			Description:  "Channel for the ticket panel",
			Required:     true,
			ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "support_role",
			Description: "Role that can see tickets",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:         discordgo.ApplicationCommandOptionChannel,
			Name:         "category",
			Description:  "Category to create tickets in",
			Required:     true,
			ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildCategory},
		},
	).WithUserPermissions(discordgo.PermissionAdministrator)
}

// setupHandler handles the /ticket setup command
func setupHandler(ctx *discord.CommandContext) error {
	channel := ctx.GetChannelOption("channel")
	supportRole := ctx.GetRoleOption("support_role")
	category := ctx.GetChannelOption("category")
	if channel == nil || supportRole == nil || category == nil {
		return ctx.ReplyEphemeral("❌ You must specify a channel, a support role and a category.")
	}

	cfg := models.TicketConfig{
		PanelChannelID: channel.ID,
		SupportRoleID:  supportRole.ID,
		CategoryID:     category.ID,
	}
	if err := ledger.SetConfig(ctx.Interaction.GuildID, cfg); err != nil {
		return ctx.ReplyEphemeral("❌ Could not save the configuration. Try again later.")
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Support Ticket",
		Description: "Click the button below to create a support ticket.",
		Color:       0x3498DB,
		Footer:      &discordgo.MessageEmbedFooter{Text: "StreamBot Support System"},
	}
	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					CustomID: "create_ticket",
					Label:    "Create Ticket",
					Style:    discordgo.PrimaryButton,
					Emoji:    &discordgo.ComponentEmoji{Name: "🎫"},
				},
			},
		},
	}

	_, err := ctx.Session.ChannelMessageSendComplex(channel.ID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	})
	if err != nil {
		return ctx.ReplyEphemeral("❌ Saved, but I could not send the panel. Check my permissions in that channel.")
	}

	return ctx.ReplyEphemeral("✅ Ticket system has been set up successfully!")
}
