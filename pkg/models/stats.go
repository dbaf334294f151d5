package models

import "time"

// MaxVoiceSessions caps the per-user session history; the oldest session is
// evicted when a new one would exceed it.
const MaxVoiceSessions = 20

// ServerStats is the per-guild aggregate counter record.
type ServerStats struct {
	GuildID           string `json:"guildId"`
	Created           int64  `json:"created,omitempty"`
	MemberJoins       int    `json:"memberJoins"`
	MemberLeaves      int    `json:"memberLeaves"`
	MessagesTotal     int    `json:"messagesTotal"`
	VoiceMinutesTotal int    `json:"voiceMinutesTotal"`
	CommandsUsed      int    `json:"commandsUsed"`
	LastUpdated       int64  `json:"lastUpdated,omitempty"`
}

// UserStats tracks one user's activity totals within a guild.
type UserStats struct {
	UserID            string `json:"userId"`
	Username          string `json:"username"`
	JoinedAt          int64  `json:"joinedAt,omitempty"`
	MessagesTotal     int    `json:"messagesTotal"`
	CommandsUsed      int    `json:"commandsUsed"`
	VoiceMinutesTotal int    `json:"voiceMinutesTotal"`
	LastActive        int64  `json:"lastActive,omitempty"`
}

// UserStatsRecord maps user IDs to their activity totals.
type UserStatsRecord map[string]*UserStats

// MessageStats tracks one user's message activity, including hour-of-day and
// day-of-week distributions.
type MessageStats struct {
	UserID   string         `json:"userId"`
	Username string         `json:"username"`
	Total    int            `json:"total"`
	Channels map[string]int `json:"channels,omitempty"`
	Hourly   [24]int        `json:"hourly"`
	Daily    [7]int         `json:"daily"`
}

// MessageStatsRecord maps user IDs to their message activity.
type MessageStatsRecord map[string]*MessageStats

// VoiceSession is one stay in a voice channel. End is nil while the session
// is still open.
type VoiceSession struct {
	ChannelID string     `json:"channelId"`
	Start     time.Time  `json:"start"`
	End       *time.Time `json:"end,omitempty"`
}

// VoiceStats tracks one user's voice activity within a guild.
type VoiceStats struct {
	UserID       string         `json:"userId"`
	Username     string         `json:"username"`
	TotalMinutes int            `json:"totalMinutes"`
	Channels     map[string]int `json:"channels,omitempty"`
	Sessions     []VoiceSession `json:"sessions,omitempty"`
}

// VoiceStatsRecord maps user IDs to their voice activity.
type VoiceStatsRecord map[string]*VoiceStats
