package models

// VoiceConfig holds the temporary voice channel setup for a guild.
type VoiceConfig struct {
	CategoryID      string `json:"categoryId"`
	CreateChannelID string `json:"createChannelId"`
	InfoChannelID   string `json:"infoChannelId,omitempty"`
}

// VoiceChannelEntry tracks one temporary voice channel and its owner.
type VoiceChannelEntry struct {
	ChannelID string `json:"channelId"`
	OwnerID   string `json:"ownerId"`
	OwnerTag  string `json:"ownerTag"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"createdAt"`
	UserLimit int    `json:"userLimit"`
	Locked    bool   `json:"locked"`
}

// VoiceRecord is the persisted voice state for a guild.
type VoiceRecord struct {
	Config   VoiceConfig                  `json:"config"`
	Channels map[string]VoiceChannelEntry `json:"channels,omitempty"`
}

// Configured reports whether the voice system has been set up.
func (r *VoiceRecord) Configured() bool {
	return r.Config.CreateChannelID != ""
}
