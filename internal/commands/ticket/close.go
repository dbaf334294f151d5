// Package ticket - /ticket close command
package ticket

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/StreamBotDev/StreamBotGo/internal/tickets"
	"github.com/StreamBotDev/StreamBotGo/pkg/discord"
	"github.com/StreamBotDev/StreamBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createCloseCommand creates the /ticket close subcommand
func createCloseCommand() *discord.Command {
	return discord.NewCommand(
		"close",
		"Close this ticket",
		"ticket",
		closeHandler,
	)
}

// closeHandler handles the /ticket close command. The transcript is captured
// before the entry is removed; the channel is deleted a few seconds later.
func closeHandler(ctx *discord.CommandContext) error {
	guildID := ctx.Interaction.GuildID
	channelID := ctx.Interaction.ChannelID

	entry, ok, err := ledger.Get(guildID, channelID)
	if err != nil || !ok {
		return ctx.ReplyEphemeral("❌ This command can only be used in a ticket channel.")
	}

	transcript := buildTranscript(ctx.Session, channelID)
	sendTranscript(ctx.Session, entry.CreatorID, channelID, transcript)

	closed, err := ledger.Close(guildID, channelID)
	if err != nil {
		if errors.Is(err, tickets.ErrNotATicket) {
			return ctx.ReplyEphemeral("❌ This command can only be used in a ticket channel.")
		}
		return ctx.ReplyEphemeral("❌ Could not close the ticket. Try again later.")
	}

	publishTicketEvent("close", guildID, channelID, ctx.User().ID, closed.TicketID)

	if err := ctx.Reply("🔒 Closing ticket in 5 seconds..."); err != nil {
		return err
	}

	session := ctx.Session
	time.AfterFunc(5*time.Second, func() {
		if _, err := session.ChannelDelete(channelID); err != nil {
			logger.Warn(fmt.Sprintf("Error deleting ticket channel %s: %v", channelID, err), "Ticket")
		}
	})
	return nil
}

// buildTranscript renders the channel's last 100 messages oldest-first.
func buildTranscript(s *discordgo.Session, channelID string) string {
	messages, err := s.ChannelMessages(channelID, 100, "", "", "")
	if err != nil {
		logger.Warn(fmt.Sprintf("Could not fetch ticket messages: %v", err), "Ticket")
		return "Ticket Transcript\n\n(no messages available)\n"
	}

	var sb strings.Builder
	sb.WriteString("Ticket Transcript\n\n")
	// ChannelMessages returns newest first
	for i := len(messages) - 1; i >= 0; i-- {
		msg := messages[i]
		sb.WriteString(fmt.Sprintf("%s (%s):\n%s\n\n",
			msg.Author.Username,
			msg.Timestamp.Format(time.RFC1123),
			msg.Content,
		))
	}
	return sb.String()
}

// sendTranscript DMs the transcript to the ticket creator, best-effort.
func sendTranscript(s *discordgo.Session, creatorID, channelID, transcript string) {
	dm, err := s.UserChannelCreate(creatorID)
	if err != nil {
		logger.Warn(fmt.Sprintf("Could not DM ticket creator: %v", err), "Ticket")
		return
	}

	_, err = s.ChannelMessageSendComplex(dm.ID, &discordgo.MessageSend{
		Content: "Your ticket has been closed.",
		Files: []*discordgo.File{
			{
				Name:        fmt.Sprintf("transcript-%s.txt", channelID),
				ContentType: "text/plain",
				Reader:      strings.NewReader(transcript),
			},
		},
	})
	if err != nil {
		logger.Warn(fmt.Sprintf("Could not DM ticket creator: %v", err), "Ticket")
	}
}
