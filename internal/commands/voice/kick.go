// Package voice - /voice kick command
package voice

import (
	"fmt"

	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createKickCommand creates the /voice kick subcommand
func createKickCommand() *discord.Command {
	return discord.NewCommand(
		"kick",
		"Remove a user from your voice channel",
		"voice",
		voiceKickHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to remove",
			Required:    true,
		},
	)
}

// kickSession is the slice of the session API needed to remove a member from
// a voice channel. Satisfied by *discordgo.Session.
type kickSession interface {
	ChannelPermissionSet(channelID, targetID string, targetType discordgo.PermissionOverwriteType, allow, deny int64, options ...discordgo.RequestOption) error
	GuildMemberMove(guildID, userID string, channelID *string, options ...discordgo.RequestOption) error
}

// removeFromChannel denies the target the Connect permission on the channel
// and then disconnects them. The deny must land before the disconnect, or the
// kicked member can simply rejoin.
func removeFromChannel(s kickSession, guildID, channelID, targetID string) error {
	err := s.ChannelPermissionSet(channelID, targetID, discordgo.PermissionOverwriteTypeMember, 0, discordgo.PermissionVoiceConnect)
	if err != nil {
		return err
	}

	// Moving to an empty channel ID disconnects the member
	return s.GuildMemberMove(guildID, targetID, nil)
}

// voiceKickHandler handles the /voice kick command
func voiceKickHandler(ctx *discord.CommandContext) error {
	guildID := ctx.Interaction.GuildID

	target := ctx.GetUserOption("user")
	if target == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	channelID, err := trackedChannel(ctx)
	if err != nil {
		return replyVoiceError(ctx, err)
	}

	targetChannel, _ := MemberChannelID(ctx.Session, guildID, target.ID)
	targetPresent := targetChannel == channelID

	// Moderators and admins cannot be kicked from voice channels
	perms, err := ctx.Session.State.UserChannelPermissions(target.ID, channelID)
	targetPrivileged := err == nil && (perms&discordgo.PermissionModerateMembers != 0 || perms&discordgo.PermissionAdministrator != 0)

	if err := manager.Kick(guildID, channelID, ctx.User().ID, targetPresent, targetPrivileged); err != nil {
		return replyVoiceError(ctx, err)
	}

	if err := removeFromChannel(ctx.Session, guildID, channelID, target.ID); err != nil {
		return ctx.ReplyEphemeral("❌ I could not disconnect that user.")
	}

	publishVoiceEvent("kick", guildID, channelID, target.ID)

	return ctx.ReplyEphemeral(fmt.Sprintf("👢 **%s** has been removed from your channel.", target.Username))
}
