// Package tickets manages the per-guild support ticket ledger.
//
// Ticket numbers come from a monotonic counter that never decreases, even
// when tickets close. A creator can hold at most one open ticket at a time.
package tickets

import (
	"errors"
	"time"

	"github.com/StreamBotDev/StreamBotGo/pkg/models"
	"github.com/StreamBotDev/StreamBotGo/pkg/store"
)

var (
	// ErrNotConfigured is returned when the guild has no ticket setup.
	ErrNotConfigured = errors.New("ticket system is not configured for this guild")
	// ErrNotATicket is returned for channels that are not open tickets.
	ErrNotATicket = errors.New("channel is not a ticket")
)

// OpenChannelFunc creates the platform channel for a new ticket and returns
// its channel ID. It runs under the ticket record's key mutex; if it fails,
// nothing is persisted.
type OpenChannelFunc func(ticketID int) (string, error)

// Ledger owns the per-guild ticket records.
type Ledger struct {
	records *store.Record[models.TicketRecord]
}

// NewLedger creates a Ledger backed by the given store.
func NewLedger(s *store.Store) *Ledger {
	return &Ledger{
		records: store.NewRecord[models.TicketRecord](s, store.CategoryTicket),
	}
}

// Config returns the guild's ticket configuration and whether it exists.
func (l *Ledger) Config(guildID string) (models.TicketConfig, bool, error) {
	record, err := l.records.Read(guildID)
	if err != nil {
		return models.TicketConfig{}, false, err
	}
	return record.Config, record.Configured(), nil
}

// SetConfig stores the guild's ticket configuration. The counter and any
// open tickets are preserved.
func (l *Ledger) SetConfig(guildID string, cfg models.TicketConfig) error {
	_, err := l.records.Update(guildID, func(r *models.TicketRecord) error {
		r.Config = cfg
		return nil
	})
	return err
}

// Create opens a ticket for a creator. If the creator already has an open
// ticket, that entry is returned with created=false and no channel is opened.
// Otherwise the counter is advanced, openChannel creates the platform channel
// and the new entry is persisted; an openChannel failure aborts the whole
// operation.
func (l *Ledger) Create(guildID, creatorID string, openChannel OpenChannelFunc) (models.TicketEntry, bool, error) {
	var entry models.TicketEntry
	created := false

	_, err := l.records.Update(guildID, func(r *models.TicketRecord) error {
		if !r.Configured() {
			return ErrNotConfigured
		}

		for _, existing := range r.Tickets {
			if existing.CreatorID == creatorID && existing.Status == models.TicketStatusOpen {
				entry = existing
				return nil
			}
		}

		ticketID := r.Counter + 1
		channelID, err := openChannel(ticketID)
		if err != nil {
			return err
		}

		r.Counter = ticketID
		entry = models.TicketEntry{
			TicketID:  ticketID,
			ChannelID: channelID,
			CreatorID: creatorID,
			CreatedAt: time.Now().Unix(),
			Status:    models.TicketStatusOpen,
		}
		if r.Tickets == nil {
			r.Tickets = make(map[string]models.TicketEntry)
		}
		r.Tickets[channelID] = entry
		created = true
		return nil
	})
	if err != nil {
		return models.TicketEntry{}, false, err
	}
	return entry, created, nil
}

// Get returns the ticket entry for a channel, if the channel is a ticket.
func (l *Ledger) Get(guildID, channelID string) (models.TicketEntry, bool, error) {
	record, err := l.records.Read(guildID)
	if err != nil {
		return models.TicketEntry{}, false, err
	}
	entry, ok := record.Tickets[channelID]
	return entry, ok, nil
}

// Close removes a ticket from the ledger and returns its final entry.
// Closing is terminal; the entry is hard-deleted, only the counter remembers
// the ticket ever existed.
func (l *Ledger) Close(guildID, channelID string) (models.TicketEntry, error) {
	var entry models.TicketEntry

	_, err := l.records.Update(guildID, func(r *models.TicketRecord) error {
		current, ok := r.Tickets[channelID]
		if !ok {
			return ErrNotATicket
		}
		delete(r.Tickets, channelID)
		current.Status = models.TicketStatusClosed
		entry = current
		return nil
	})
	if err != nil {
		return models.TicketEntry{}, err
	}
	return entry, nil
}

// OpenTickets returns all open tickets for a guild.
func (l *Ledger) OpenTickets(guildID string) (map[string]models.TicketEntry, error) {
	record, err := l.records.Read(guildID)
	if err != nil {
		return nil, err
	}
	return record.Tickets, nil
}
