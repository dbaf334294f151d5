package models

// ModerationRecord holds the moderation setup for a guild.
type ModerationRecord struct {
	LogChannelID string `json:"logChannelId,omitempty"`
}

// Warning is one persisted warning against a user.
type Warning struct {
	ID          string `json:"id"`
	ModeratorID string `json:"moderatorId"`
	Reason      string `json:"reason"`
	Timestamp   int64  `json:"timestamp"`
}

// WarningsRecord maps user IDs to their warnings, in insertion order.
type WarningsRecord map[string][]Warning
