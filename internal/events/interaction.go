// Package events provides handlers for component interactions (buttons)
package events

import (
	"errors"
	"fmt"
	"time"

	voicecmd "github.com/StreamBotDev/StreamBotGo/internal/commands/voice"
	voicemgr "github.com/StreamBotDev/StreamBotGo/internal/voice"
	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	errorsmw "github.com/StreamBotDev/StreamBotGo/pkg/errors"
	"github.com/StreamBotDev/StreamBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterInteractionEvents registers the message component handler
func RegisterInteractionEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onComponentInteraction)
}

// onComponentInteraction dispatches button presses from the ticket panel and
// the voice control panel.
func onComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	defer errorsmw.RecoverMiddleware()()

	if i.Type != discordgo.InteractionMessageComponent {
		return
	}

	switch i.MessageComponentData().CustomID {
	case "create_ticket":
		handleCreateTicket(s, i)
	case "voice_lock":
		handleVoiceLockButton(s, i, true)
	case "voice_unlock":
		handleVoiceLockButton(s, i, false)
	case "voice_claim":
		handleVoiceClaimButton(s, i)
	case "voice_info":
		handleVoiceInfoButton(s, i)
	case "voice_limit":
		respondEphemeral(s, i, "ℹ️ Use `/voice limit <amount>` to set the user limit.")
	case "voice_name":
		respondEphemeral(s, i, "ℹ️ Use `/voice name <name>` to rename your channel.")
	case "voice_transfer":
		respondEphemeral(s, i, "ℹ️ Use `/voice transfer <user>` to transfer ownership.")
	case "voice_kick":
		respondEphemeral(s, i, "ℹ️ Use `/voice kick <user>` to kick someone from your channel.")
	}
}

// respondEphemeral answers a component interaction with an ephemeral message.
func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		logger.Debug(fmt.Sprintf("Error responding to component: %v", err), "Interaction")
	}
}

// interactionUser resolves the acting user of an interaction.
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}

// handleCreateTicket opens a ticket channel for the pressing user. A creator
// with an open ticket is pointed at it instead of getting a second one.
func handleCreateTicket(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)
	guildID := i.GuildID

	cfg, configured, err := deps.Tickets.Config(guildID)
	if err != nil || !configured {
		respondEphemeral(s, i, "❌ The ticket system is not set up on this server.")
		return
	}

	entry, created, err := deps.Tickets.Create(guildID, user.ID, func(ticketID int) (string, error) {
		overwrites := []*discordgo.PermissionOverwrite{
			{
				ID:   guildID, // @everyone role shares the guild ID
				Type: discordgo.PermissionOverwriteTypeRole,
				Deny: discordgo.PermissionViewChannel,
			},
			{
				ID:    user.ID,
				Type:  discordgo.PermissionOverwriteTypeMember,
				Allow: discordgo.PermissionViewChannel | discordgo.PermissionSendMessages | discordgo.PermissionReadMessageHistory,
			},
			{
				ID:    cfg.SupportRoleID,
				Type:  discordgo.PermissionOverwriteTypeRole,
				Allow: discordgo.PermissionViewChannel | discordgo.PermissionSendMessages | discordgo.PermissionReadMessageHistory,
			},
			{
				ID:    s.State.User.ID,
				Type:  discordgo.PermissionOverwriteTypeMember,
				Allow: discordgo.PermissionViewChannel | discordgo.PermissionSendMessages | discordgo.PermissionReadMessageHistory,
			},
		}

		channel, err := s.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
			Name:                 fmt.Sprintf("ticket-%04d", ticketID),
			Type:                 discordgo.ChannelTypeGuildText,
			ParentID:             cfg.CategoryID,
			PermissionOverwrites: overwrites,
		})
		if err != nil {
			return "", err
		}
		return channel.ID, nil
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Error creating ticket: %v", err), "Ticket")
		respondEphemeral(s, i, "❌ Could not create the ticket. Try again later.")
		return
	}

	if !created {
		respondEphemeral(s, i, fmt.Sprintf("❌ You already have an open ticket: <#%s>", entry.ChannelID))
		return
	}

	welcome := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Ticket #%04d", entry.TicketID),
		Description: fmt.Sprintf("Hi <@%s>! Describe your issue and <@&%s> will be with you shortly.\nUse `/ticket close` to close this ticket.", user.ID, cfg.SupportRoleID),
		Color:       0x3498DB,
		Footer:      &discordgo.MessageEmbedFooter{Text: "StreamBot Support System"},
		Timestamp:   time.Now().Format(time.RFC3339),
	}
	if _, err := s.ChannelMessageSendEmbed(entry.ChannelID, welcome); err != nil {
		logger.Warn(fmt.Sprintf("Error sending ticket welcome: %v", err), "Ticket")
	}

	deps.Bridge.PublishEvent("ticket", map[string]interface{}{
		"action":    "create",
		"guildId":   guildID,
		"channelId": entry.ChannelID,
		"userId":    user.ID,
		"ticketId":  entry.TicketID,
	})

	respondEphemeral(s, i, fmt.Sprintf("🎫 Your ticket has been created: <#%s>", entry.ChannelID))
}

// voiceButtonChannel resolves the tracked channel the pressing user is in.
func voiceButtonChannel(s *discordgo.Session, i *discordgo.InteractionCreate) (string, bool) {
	channelID, ok := voicecmd.MemberChannelID(s, i.GuildID, interactionUser(i).ID)
	if !ok {
		return "", false
	}
	_, tracked, err := deps.Voice.Entry(i.GuildID, channelID)
	if err != nil || !tracked {
		return "", false
	}
	return channelID, true
}

// handleVoiceLockButton locks or unlocks the presser's channel.
func handleVoiceLockButton(s *discordgo.Session, i *discordgo.InteractionCreate, locked bool) {
	user := interactionUser(i)

	channelID, ok := voiceButtonChannel(s, i)
	if !ok {
		respondEphemeral(s, i, "❌ You must be in a temporary voice channel to use this.")
		return
	}

	entry, err := deps.Voice.SetLocked(i.GuildID, channelID, user.ID, locked)
	if err != nil {
		if errors.Is(err, voicemgr.ErrNotOwner) {
			respondEphemeral(s, i, "❌ Only the channel owner can do that.")
			return
		}
		respondEphemeral(s, i, "❌ Something went wrong. Try again later.")
		return
	}

	// @everyone role ID matches the guild ID
	if locked {
		err = s.ChannelPermissionSet(channelID, i.GuildID, discordgo.PermissionOverwriteTypeRole, 0, discordgo.PermissionVoiceConnect)
	} else {
		err = s.ChannelPermissionDelete(channelID, i.GuildID)
	}
	if err != nil {
		logger.Warn(fmt.Sprintf("Error updating channel permissions: %v", err), "Voice")
		respondEphemeral(s, i, "⚠️ Saved, but I could not update the channel permissions.")
		return
	}

	if locked {
		respondEphemeral(s, i, fmt.Sprintf("🔒 **%s** is now locked.", entry.Name))
	} else {
		respondEphemeral(s, i, fmt.Sprintf("🔓 **%s** is now unlocked.", entry.Name))
	}
}

// handleVoiceClaimButton reassigns an abandoned channel to the presser.
func handleVoiceClaimButton(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)

	channelID, ok := voiceButtonChannel(s, i)
	if !ok {
		respondEphemeral(s, i, "❌ You must be in a temporary voice channel to use this.")
		return
	}

	present := voicecmd.ChannelMemberIDs(s, i.GuildID, channelID)
	entry, err := deps.Voice.Claim(i.GuildID, channelID, user.ID, user.Username, present)
	if err != nil {
		if errors.Is(err, voicemgr.ErrOwnerPresent) {
			respondEphemeral(s, i, "❌ The channel owner is still here.")
			return
		}
		respondEphemeral(s, i, "❌ Something went wrong. Try again later.")
		return
	}

	respondEphemeral(s, i, fmt.Sprintf("👑 You are now the owner of **%s**.", entry.Name))
}

// handleVoiceInfoButton shows the tracked state of the presser's channel.
func handleVoiceInfoButton(s *discordgo.Session, i *discordgo.InteractionCreate) {
	channelID, ok := voiceButtonChannel(s, i)
	if !ok {
		respondEphemeral(s, i, "❌ You must be in a temporary voice channel to use this.")
		return
	}

	entry, tracked, err := deps.Voice.Entry(i.GuildID, channelID)
	if err != nil || !tracked {
		respondEphemeral(s, i, "❌ Something went wrong. Try again later.")
		return
	}

	locked := "No"
	if entry.Locked {
		locked = "Yes"
	}
	limit := "Unlimited"
	if entry.UserLimit > 0 {
		limit = fmt.Sprintf("%d", entry.UserLimit)
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🔊 %s", entry.Name),
		Color: 0x5865F2,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Owner", Value: fmt.Sprintf("<@%s>", entry.OwnerID), Inline: true},
			{Name: "Locked", Value: locked, Inline: true},
			{Name: "User Limit", Value: limit, Inline: true},
			{Name: "Created", Value: fmt.Sprintf("<t:%d:R>", entry.CreatedAt), Inline: true},
		},
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		logger.Debug(fmt.Sprintf("Error responding to component: %v", err), "Interaction")
	}
}
