// Package mod - /mod removewarn command
package mod

import (
	"errors"
	"fmt"

	"github.com/StreamBotDev/StreamBotGo/internal/moderation"
	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createRemoveWarnCommand creates the /mod removewarn subcommand
func createRemoveWarnCommand() *discord.Command {
	return discord.NewCommand(
		"removewarn",
		"Remove a single warning from a user",
		"mod",
		removeWarnHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User whose warning to remove",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "warning",
			Description:  "Warning to remove",
			Required:     true,
			Autocomplete: true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		WithAutoComplete(removeWarnAutoComplete)
}

// removeWarnHandler handles the /mod removewarn command
func removeWarnHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	warningID := ctx.GetStringOption("warning")
	if warningID == "" {
		return ctx.ReplyEphemeral("❌ You must specify a warning.")
	}

	removed, err := ledger.RemoveWarning(ctx.Interaction.GuildID, user.ID, warningID)
	if err != nil {
		if errors.Is(err, moderation.ErrWarningNotFound) {
			return ctx.ReplyEphemeral("❌ That warning does not exist.")
		}
		return ctx.ReplyEphemeral("❌ Could not remove the warning. Try again later.")
	}

	logAction(ctx, &discordgo.MessageEmbed{
		Title: "🗑️ Warning Removed",
		Color: 0x00FF00,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "User", Value: fmt.Sprintf("%s (%s)", user.Username, user.ID), Inline: true},
			{Name: "Moderator", Value: ctx.User().Username, Inline: true},
			{Name: "Reason was", Value: removed.Reason},
		},
	})

	return ctx.Reply(fmt.Sprintf("🗑️ Removed warning from **%s** (was: %s).", user.Username, removed.Reason))
}

// removeWarnAutoComplete suggests the target user's warnings
func removeWarnAutoComplete(ctx *discord.CommandContext) {
	user := ctx.GetUserOption("user")
	if user == nil {
		ctx.SendAutoCompleteChoices(nil)
		return
	}

	warnings, err := ledger.Warnings(ctx.Interaction.GuildID, user.ID)
	if err != nil {
		ctx.SendAutoCompleteChoices(nil)
		return
	}

	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(warnings))
	for _, w := range warnings {
		name := w.Reason
		if len(name) > 80 {
			name = name[:80] + "…"
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  name,
			Value: w.ID,
		})
		// Discord caps autocomplete at 25 choices
		if len(choices) == 25 {
			break
		}
	}

	ctx.SendAutoCompleteChoices(choices)
}
