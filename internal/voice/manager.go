// Package voice manages temporary voice channels and their ownership.
//
// Every member joining the configured create-channel gets a personal channel
// they own. Owners can lock, resize, rename, transfer and clear their channel;
// the channel is removed as soon as it empties. All state mutations go through
// the voice record's key mutex, so concurrent voice events cannot lose updates.
package voice

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/StreamBotDev/StreamBotGo/pkg/models"
	"github.com/StreamBotDev/StreamBotGo/pkg/store"
)

// Channel name and user limit bounds enforced on owner operations.
const (
	MinNameLength = 1
	MaxNameLength = 100
	MinUserLimit  = 0
	MaxUserLimit  = 99
)

var (
	// ErrNotConfigured is returned when the guild has no voice setup.
	ErrNotConfigured = errors.New("voice system is not configured for this guild")
	// ErrNotTracked is returned for channels the manager does not own.
	ErrNotTracked = errors.New("channel is not a managed voice channel")
	// ErrNotOwner is returned when a non-owner attempts an owner operation.
	ErrNotOwner = errors.New("only the channel owner can do that")
	// ErrNotInVoice is returned when the acting user is not in a managed channel.
	ErrNotInVoice = errors.New("user is not in a managed voice channel")
	// ErrInvalidName is returned for names outside the allowed length.
	ErrInvalidName = errors.New("channel name must be between 1 and 100 characters")
	// ErrInvalidLimit is returned for user limits outside [0, 99].
	ErrInvalidLimit = errors.New("user limit must be between 0 and 99")
	// ErrTargetNotPresent is returned when the target is not in the channel.
	ErrTargetNotPresent = errors.New("target user is not in the voice channel")
	// ErrPrivilegedTarget is returned when trying to kick a moderator or admin.
	ErrPrivilegedTarget = errors.New("target user cannot be kicked from the channel")
	// ErrOwnerPresent is returned when claiming a channel whose owner is still there.
	ErrOwnerPresent = errors.New("channel owner is still present")
)

// Manager owns the per-guild voice records.
type Manager struct {
	records *store.Record[models.VoiceRecord]
}

// NewManager creates a Manager backed by the given store.
func NewManager(s *store.Store) *Manager {
	return &Manager{
		records: store.NewRecord[models.VoiceRecord](s, store.CategoryVoice),
	}
}

// Config returns the guild's voice configuration and whether it exists.
func (m *Manager) Config(guildID string) (models.VoiceConfig, bool, error) {
	record, err := m.records.Read(guildID)
	if err != nil {
		return models.VoiceConfig{}, false, err
	}
	return record.Config, record.Configured(), nil
}

// SetConfig stores the guild's voice configuration, keeping tracked channels.
func (m *Manager) SetConfig(guildID string, cfg models.VoiceConfig) error {
	_, err := m.records.Update(guildID, func(r *models.VoiceRecord) error {
		r.Config = cfg
		return nil
	})
	return err
}

// Entry returns the tracked entry for a channel, if any.
func (m *Manager) Entry(guildID, channelID string) (models.VoiceChannelEntry, bool, error) {
	record, err := m.records.Read(guildID)
	if err != nil {
		return models.VoiceChannelEntry{}, false, err
	}
	entry, ok := record.Channels[channelID]
	return entry, ok, nil
}

// Register tracks a freshly created voice channel under its owner. The
// platform channel must already exist; its ID is the record key.
func (m *Manager) Register(guildID, channelID, ownerID, ownerTag, name string) (models.VoiceChannelEntry, error) {
	entry := models.VoiceChannelEntry{
		ChannelID: channelID,
		OwnerID:   ownerID,
		OwnerTag:  ownerTag,
		Name:      name,
		CreatedAt: time.Now().Unix(),
		UserLimit: 0,
		Locked:    false,
	}

	_, err := m.records.Update(guildID, func(r *models.VoiceRecord) error {
		if r.Channels == nil {
			r.Channels = make(map[string]models.VoiceChannelEntry)
		}
		r.Channels[channelID] = entry
		return nil
	})
	return entry, err
}

// mutateOwned runs fn on a tracked entry after verifying ownership.
func (m *Manager) mutateOwned(guildID, channelID, userID string, fn func(*models.VoiceChannelEntry) error) (models.VoiceChannelEntry, error) {
	var entry models.VoiceChannelEntry

	_, err := m.records.Update(guildID, func(r *models.VoiceRecord) error {
		current, ok := r.Channels[channelID]
		if !ok {
			return ErrNotTracked
		}
		if current.OwnerID != userID {
			return ErrNotOwner
		}
		if err := fn(&current); err != nil {
			return err
		}
		r.Channels[channelID] = current
		entry = current
		return nil
	})
	return entry, err
}

// SetLocked sets the lock state of an owned channel.
func (m *Manager) SetLocked(guildID, channelID, userID string, locked bool) (models.VoiceChannelEntry, error) {
	return m.mutateOwned(guildID, channelID, userID, func(e *models.VoiceChannelEntry) error {
		e.Locked = locked
		return nil
	})
}

// SetUserLimit sets the user limit of an owned channel.
func (m *Manager) SetUserLimit(guildID, channelID, userID string, limit int) (models.VoiceChannelEntry, error) {
	if limit < MinUserLimit || limit > MaxUserLimit {
		return models.VoiceChannelEntry{}, ErrInvalidLimit
	}
	return m.mutateOwned(guildID, channelID, userID, func(e *models.VoiceChannelEntry) error {
		e.UserLimit = limit
		return nil
	})
}

// Rename changes the display name of an owned channel.
func (m *Manager) Rename(guildID, channelID, userID, name string) (models.VoiceChannelEntry, error) {
	length := utf8.RuneCountInString(name)
	if length < MinNameLength || length > MaxNameLength {
		return models.VoiceChannelEntry{}, ErrInvalidName
	}
	return m.mutateOwned(guildID, channelID, userID, func(e *models.VoiceChannelEntry) error {
		e.Name = name
		return nil
	})
}

// Transfer hands ownership of a channel to another member. The target must be
// in the channel.
func (m *Manager) Transfer(guildID, channelID, ownerID, targetID, targetTag string, targetPresent bool) (models.VoiceChannelEntry, error) {
	if !targetPresent {
		return models.VoiceChannelEntry{}, ErrTargetNotPresent
	}
	return m.mutateOwned(guildID, channelID, ownerID, func(e *models.VoiceChannelEntry) error {
		e.OwnerID = targetID
		e.OwnerTag = targetTag
		return nil
	})
}

// Kick validates that the owner may remove the target from the channel. It
// mutates nothing; moving the member out is the caller's platform call.
func (m *Manager) Kick(guildID, channelID, ownerID string, targetPresent, targetPrivileged bool) error {
	entry, ok, err := m.Entry(guildID, channelID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotTracked
	}
	if entry.OwnerID != ownerID {
		return ErrNotOwner
	}
	if !targetPresent {
		return ErrTargetNotPresent
	}
	if targetPrivileged {
		return ErrPrivilegedTarget
	}
	return nil
}

// Claim reassigns ownership to the claimant when the stored owner has left
// the channel. present holds the user IDs currently in the channel.
func (m *Manager) Claim(guildID, channelID, claimantID, claimantTag string, present []string) (models.VoiceChannelEntry, error) {
	var entry models.VoiceChannelEntry

	_, err := m.records.Update(guildID, func(r *models.VoiceRecord) error {
		current, ok := r.Channels[channelID]
		if !ok {
			return ErrNotTracked
		}
		for _, id := range present {
			if id == current.OwnerID {
				return ErrOwnerPresent
			}
		}
		current.OwnerID = claimantID
		current.OwnerTag = claimantTag
		r.Channels[channelID] = current
		entry = current
		return nil
	})
	return entry, err
}

// HandleEmpty removes the tracked entry when the channel has no members left.
// It reports whether the caller should delete the platform channel. Untracked
// channels and channels that still hold members are a no-op.
func (m *Manager) HandleEmpty(guildID, channelID string, liveCount int) (bool, error) {
	if liveCount > 0 {
		return false, nil
	}

	remove := false
	_, err := m.records.Update(guildID, func(r *models.VoiceRecord) error {
		if _, ok := r.Channels[channelID]; !ok {
			return store.ErrUnchanged
		}
		delete(r.Channels, channelID)
		remove = true
		return nil
	})
	return remove, err
}

// Unregister drops a tracked entry without an emptiness check. Used when the
// platform channel disappears out from under the manager.
func (m *Manager) Unregister(guildID, channelID string) error {
	_, err := m.records.Update(guildID, func(r *models.VoiceRecord) error {
		if _, ok := r.Channels[channelID]; !ok {
			return store.ErrUnchanged
		}
		delete(r.Channels, channelID)
		return nil
	})
	return err
}

// Channels returns all tracked channels for a guild.
func (m *Manager) Channels(guildID string) (map[string]models.VoiceChannelEntry, error) {
	record, err := m.records.Read(guildID)
	if err != nil {
		return nil, err
	}
	return record.Channels, nil
}
