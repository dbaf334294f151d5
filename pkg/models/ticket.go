package models

// Ticket status values.
const (
	TicketStatusOpen   = "open"
	TicketStatusClosed = "closed"
)

// TicketConfig holds the ticket system setup for a guild.
type TicketConfig struct {
	PanelChannelID string `json:"panelChannelId"`
	SupportRoleID  string `json:"supportRoleId"`
	CategoryID     string `json:"categoryId"`
}

// TicketEntry tracks one open ticket channel.
type TicketEntry struct {
	TicketID  int    `json:"ticketId"`
	ChannelID string `json:"channelId"`
	CreatorID string `json:"creatorId"`
	CreatedAt int64  `json:"createdAt"`
	Status    string `json:"status"`
}

// TicketRecord is the persisted ticket state for a guild. Counter is the
// monotonic ticket number source; it never decreases, even when tickets close.
type TicketRecord struct {
	Config  TicketConfig           `json:"config"`
	Counter int                    `json:"counter"`
	Tickets map[string]TicketEntry `json:"tickets,omitempty"`
}

// Configured reports whether the ticket system has been set up.
func (r *TicketRecord) Configured() bool {
	return r.Config.CategoryID != ""
}
