// Package voice - /voice lock and /voice unlock commands
package voice

import (
	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createLockCommand creates the /voice lock subcommand
func createLockCommand() *discord.Command {
	return discord.NewCommand(
		"lock",
		"Lock your voice channel",
		"voice",
		lockHandler,
	)
}

// createUnlockCommand creates the /voice unlock subcommand
func createUnlockCommand() *discord.Command {
	return discord.NewCommand(
		"unlock",
		"Unlock your voice channel",
		"voice",
		unlockHandler,
	)
}

// lockHandler handles the /voice lock command
func lockHandler(ctx *discord.CommandContext) error {
	return setLock(ctx, true)
}

// unlockHandler handles the /voice unlock command
func unlockHandler(ctx *discord.CommandContext) error {
	return setLock(ctx, false)
}

// setLock persists the lock state, then applies the connect overwrite.
func setLock(ctx *discord.CommandContext, locked bool) error {
	guildID := ctx.Interaction.GuildID

	channelID, err := trackedChannel(ctx)
	if err != nil {
		return replyVoiceError(ctx, err)
	}

	if _, err := manager.SetLocked(guildID, channelID, ctx.User().ID, locked); err != nil {
		return replyVoiceError(ctx, err)
	}

	// The @everyone role shares its ID with the guild
	if locked {
		err = ctx.Session.ChannelPermissionSet(channelID, guildID, discordgo.PermissionOverwriteTypeRole, 0, discordgo.PermissionVoiceConnect)
	} else {
		err = ctx.Session.ChannelPermissionDelete(channelID, guildID)
	}
	if err != nil {
		return ctx.ReplyEphemeral("❌ Saved, but I could not update the channel permissions.")
	}

	action := "unlock"
	if locked {
		action = "lock"
	}
	publishVoiceEvent(action, guildID, channelID, ctx.User().ID)

	if locked {
		return ctx.ReplyEphemeral("🔒 Your channel is now locked.")
	}
	return ctx.ReplyEphemeral("🔓 Your channel is now unlocked.")
}
