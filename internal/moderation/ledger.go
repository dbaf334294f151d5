// Package moderation keeps the per-guild warning ledger and moderation setup.
//
// Warnings are the only persisted moderation state; kicks, bans and timeouts
// are platform calls issued by the command layer.
package moderation

import (
	"errors"
	"time"

	"github.com/StreamBotDev/StreamBotGo/pkg/models"
	"github.com/StreamBotDev/StreamBotGo/pkg/store"
	"github.com/google/uuid"
)

// ErrWarningNotFound is returned when removing a warning that does not exist.
var ErrWarningNotFound = errors.New("warning not found")

// Ledger owns the per-guild warnings and moderation records.
type Ledger struct {
	warnings *store.Record[models.WarningsRecord]
	config   *store.Record[models.ModerationRecord]
}

// NewLedger creates a Ledger backed by the given store.
func NewLedger(s *store.Store) *Ledger {
	return &Ledger{
		warnings: store.NewRecord[models.WarningsRecord](s, store.CategoryWarnings),
		config:   store.NewRecord[models.ModerationRecord](s, store.CategoryModeration),
	}
}

// AddWarning appends a warning for a user and returns the new total.
func (l *Ledger) AddWarning(guildID, userID, moderatorID, reason string) (int, models.Warning, error) {
	warning := models.Warning{
		ID:          uuid.NewString(),
		ModeratorID: moderatorID,
		Reason:      reason,
		Timestamp:   time.Now().Unix(),
	}

	var count int
	_, err := l.warnings.Update(guildID, func(r *models.WarningsRecord) error {
		if *r == nil {
			*r = make(models.WarningsRecord)
		}
		(*r)[userID] = append((*r)[userID], warning)
		count = len((*r)[userID])
		return nil
	})
	if err != nil {
		return 0, models.Warning{}, err
	}
	return count, warning, nil
}

// Warnings returns a user's warnings in the order they were issued.
// A user with no warnings yields an empty list.
func (l *Ledger) Warnings(guildID, userID string) ([]models.Warning, error) {
	record, err := l.warnings.Read(guildID)
	if err != nil {
		return nil, err
	}
	return record[userID], nil
}

// ClearWarnings removes all warnings for a user and returns how many there
// were. Clearing a user with none is a zero-count no-op.
func (l *Ledger) ClearWarnings(guildID, userID string) (int, error) {
	var previous int
	_, err := l.warnings.Update(guildID, func(r *models.WarningsRecord) error {
		previous = len((*r)[userID])
		delete(*r, userID)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return previous, nil
}

// RemoveWarning deletes a single warning by ID.
func (l *Ledger) RemoveWarning(guildID, userID, warningID string) (models.Warning, error) {
	var removed models.Warning
	_, err := l.warnings.Update(guildID, func(r *models.WarningsRecord) error {
		list := (*r)[userID]
		for i, w := range list {
			if w.ID == warningID {
				removed = w
				list = append(list[:i], list[i+1:]...)
				if len(list) == 0 {
					delete(*r, userID)
				} else {
					(*r)[userID] = list
				}
				return nil
			}
		}
		return ErrWarningNotFound
	})
	if err != nil {
		return models.Warning{}, err
	}
	return removed, nil
}

// LogChannel returns the configured moderation log channel, if any.
func (l *Ledger) LogChannel(guildID string) (string, error) {
	record, err := l.config.Read(guildID)
	if err != nil {
		return "", err
	}
	return record.LogChannelID, nil
}

// SetLogChannel stores the moderation log channel for a guild.
func (l *Ledger) SetLogChannel(guildID, channelID string) error {
	_, err := l.config.Update(guildID, func(r *models.ModerationRecord) error {
		r.LogChannelID = channelID
		return nil
	})
	return err
}
