// Package mod - /mod warnings command
package mod

import (
	"fmt"
	"strings"

	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createWarningsCommand creates the /mod warnings subcommand
func createWarningsCommand() *discord.Command {
	return discord.NewCommand(
		"warnings",
		"List a user's warnings",
		"mod",
		warningsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to look up",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

// warningsHandler handles the /mod warnings command
func warningsHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	warnings, err := ledger.Warnings(ctx.Interaction.GuildID, user.ID)
	if err != nil {
		return ctx.ReplyEphemeral("❌ Could not load warnings. Try again later.")
	}

	if len(warnings) == 0 {
		return ctx.ReplyEphemeral(fmt.Sprintf("✅ **%s** has no warnings.", user.Username))
	}

	var sb strings.Builder
	for i, w := range warnings {
		sb.WriteString(fmt.Sprintf("**%d.** %s\n└ by <@%s> • <t:%d:R> • `%s`\n", i+1, w.Reason, w.ModeratorID, w.Timestamp, w.ID))
	}

	return ctx.ReplyEphemeralEmbed(&discordgo.MessageEmbed{
		Title:       fmt.Sprintf("⚠️ Warnings for %s (%d)", user.Username, len(warnings)),
		Description: sb.String(),
		Color:       0xFFFF00,
	})
}
