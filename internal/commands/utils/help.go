// Package utils - /utils help command
package utils

import (
	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/StreamBotDev/StreamBotGo/pkg/errors"
)

// createHelpCommand creates the /utils help subcommand
func createHelpCommand() *discord.Command {
	return discord.NewCommand(
		"help",
		"Show help information",
		"utils",
		helpHandler,
	)
}

// helpHandler handles the /utils help command
func helpHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()
		ctx.Reply(
			"📖 **StreamBot Help**\n\n" +
				"**Available commands:**\n" +
				"• `/utils ping` - Check the latency\n" +
				"• `/utils status` - Bot status\n" +
				"• `/mod warn <user> <reason>` - Warn a user\n" +
				"• `/mod warnings <user>` - List a user's warnings\n" +
				"• `/mod removewarn <user> <id>` - Remove a warning\n" +
				"• `/mod clearwarns <user>` - Clear a user's warnings\n" +
				"• `/mod kick <user> [reason]` - Kick a user\n" +
				"• `/mod ban <user> [reason]` - Ban a user\n" +
				"• `/mod timeout <user> <minutes> [reason]` - Time out a user\n" +
				"• `/ticket setup` - Set up the ticket system\n" +
				"• `/ticket close` - Close the current ticket\n" +
				"• `/ticket add/remove <user>` - Manage ticket members\n" +
				"• `/voice lock/unlock` - Lock your voice channel\n" +
				"• `/voice limit <amount>` - Set the user limit\n" +
				"• `/voice name <name>` - Rename your voice channel\n" +
				"• `/voice transfer <user>` - Transfer ownership\n" +
				"• `/voice kick <user>` - Kick a user from your channel\n" +
				"• `/voice claim` - Claim an abandoned channel\n" +
				"• `/stats server|user|messages|voice` - Activity statistics\n" +
				"• `/user profile [user]` - Show a user's profile",
		)
	}()
	return nil
}
