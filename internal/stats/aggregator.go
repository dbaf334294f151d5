// Package stats aggregates guild activity counters.
//
// Four records per guild: server totals, per-user totals, per-user message
// distributions and per-user voice sessions. All writes are serialized per
// record by the store; message and voice events on the same guild never lose
// each other's increments.
package stats

import (
	"time"

	"github.com/StreamBotDev/StreamBotGo/pkg/models"
	"github.com/StreamBotDev/StreamBotGo/pkg/store"
)

// Aggregator owns the per-guild statistics records.
type Aggregator struct {
	server   *store.Record[models.ServerStats]
	users    *store.Record[models.UserStatsRecord]
	messages *store.Record[models.MessageStatsRecord]
	voice    *store.Record[models.VoiceStatsRecord]
}

// NewAggregator creates an Aggregator backed by the given store.
func NewAggregator(s *store.Store) *Aggregator {
	return &Aggregator{
		server:   store.NewRecord[models.ServerStats](s, store.CategoryServerStats),
		users:    store.NewRecord[models.UserStatsRecord](s, store.CategoryUserStats),
		messages: store.NewRecord[models.MessageStatsRecord](s, store.CategoryMessageStats),
		voice:    store.NewRecord[models.VoiceStatsRecord](s, store.CategoryVoiceStats),
	}
}

// touchServer updates the server record with fn, stamping guild ID and times.
func (a *Aggregator) touchServer(guildID string, fn func(*models.ServerStats)) error {
	_, err := a.server.Update(guildID, func(r *models.ServerStats) error {
		if r.GuildID == "" {
			r.GuildID = guildID
			r.Created = time.Now().Unix()
		}
		fn(r)
		r.LastUpdated = time.Now().Unix()
		return nil
	})
	return err
}

// userEntry fetches or creates a user's entry in a UserStatsRecord.
func userEntry(r *models.UserStatsRecord, userID, username string) *models.UserStats {
	if *r == nil {
		*r = make(models.UserStatsRecord)
	}
	entry, ok := (*r)[userID]
	if !ok {
		entry = &models.UserStats{UserID: userID, JoinedAt: time.Now().Unix()}
		(*r)[userID] = entry
	}
	if username != "" {
		entry.Username = username
	}
	entry.LastActive = time.Now().Unix()
	return entry
}

// RecordMessage counts one message for the guild and its author.
func (a *Aggregator) RecordMessage(guildID, userID, username, channelID string, at time.Time) error {
	if err := a.touchServer(guildID, func(r *models.ServerStats) {
		r.MessagesTotal++
	}); err != nil {
		return err
	}

	if _, err := a.users.Update(guildID, func(r *models.UserStatsRecord) error {
		userEntry(r, userID, username).MessagesTotal++
		return nil
	}); err != nil {
		return err
	}

	_, err := a.messages.Update(guildID, func(r *models.MessageStatsRecord) error {
		if *r == nil {
			*r = make(models.MessageStatsRecord)
		}
		entry, ok := (*r)[userID]
		if !ok {
			entry = &models.MessageStats{UserID: userID}
			(*r)[userID] = entry
		}
		if username != "" {
			entry.Username = username
		}
		if entry.Channels == nil {
			entry.Channels = make(map[string]int)
		}
		entry.Total++
		entry.Channels[channelID]++
		entry.Hourly[at.Hour()]++
		entry.Daily[int(at.Weekday())]++
		return nil
	})
	return err
}

// RecordMemberJoin counts one member join.
func (a *Aggregator) RecordMemberJoin(guildID string) error {
	return a.touchServer(guildID, func(r *models.ServerStats) {
		r.MemberJoins++
	})
}

// RecordMemberLeave counts one member leave.
func (a *Aggregator) RecordMemberLeave(guildID string) error {
	return a.touchServer(guildID, func(r *models.ServerStats) {
		r.MemberLeaves++
	})
}

// RecordCommand counts one command invocation for the guild and the user.
func (a *Aggregator) RecordCommand(guildID, userID, username string) error {
	if err := a.touchServer(guildID, func(r *models.ServerStats) {
		r.CommandsUsed++
	}); err != nil {
		return err
	}

	_, err := a.users.Update(guildID, func(r *models.UserStatsRecord) error {
		userEntry(r, userID, username).CommandsUsed++
		return nil
	})
	return err
}

// OpenVoiceSession starts a session for a user in a channel. The session
// history is capped; the oldest session is evicted to make room.
func (a *Aggregator) OpenVoiceSession(guildID, userID, username, channelID string, at time.Time) error {
	_, err := a.voice.Update(guildID, func(r *models.VoiceStatsRecord) error {
		if *r == nil {
			*r = make(models.VoiceStatsRecord)
		}
		entry, ok := (*r)[userID]
		if !ok {
			entry = &models.VoiceStats{UserID: userID}
			(*r)[userID] = entry
		}
		if username != "" {
			entry.Username = username
		}
		entry.Sessions = append(entry.Sessions, models.VoiceSession{
			ChannelID: channelID,
			Start:     at,
		})
		if len(entry.Sessions) > models.MaxVoiceSessions {
			entry.Sessions = entry.Sessions[len(entry.Sessions)-models.MaxVoiceSessions:]
		}
		return nil
	})
	return err
}

// CloseVoiceSession ends the open session for (user, channel) and credits the
// elapsed whole minutes. A close with no matching open session is ignored;
// that only happens after a crash mid-update.
func (a *Aggregator) CloseVoiceSession(guildID, userID, username, channelID string, at time.Time) error {
	minutes := -1

	_, err := a.voice.Update(guildID, func(r *models.VoiceStatsRecord) error {
		entry, ok := (*r)[userID]
		if !ok {
			return store.ErrUnchanged
		}

		for i := len(entry.Sessions) - 1; i >= 0; i-- {
			session := &entry.Sessions[i]
			if session.ChannelID != channelID || session.End != nil {
				continue
			}

			end := at
			session.End = &end

			minutes = int(at.Sub(session.Start).Minutes())
			if minutes < 0 {
				minutes = 0
			}
			if entry.Channels == nil {
				entry.Channels = make(map[string]int)
			}
			entry.Channels[channelID] += minutes
			entry.TotalMinutes += minutes
			if username != "" {
				entry.Username = username
			}
			return nil
		}
		return store.ErrUnchanged
	})
	if err != nil {
		return err
	}
	if minutes < 0 {
		return nil
	}

	if _, err := a.users.Update(guildID, func(r *models.UserStatsRecord) error {
		userEntry(r, userID, username).VoiceMinutesTotal += minutes
		return nil
	}); err != nil {
		return err
	}

	return a.touchServer(guildID, func(r *models.ServerStats) {
		r.VoiceMinutesTotal += minutes
	})
}

// ServerStats returns the aggregate counters for a guild.
func (a *Aggregator) ServerStats(guildID string) (models.ServerStats, error) {
	return a.server.Read(guildID)
}

// UserStats returns all per-user totals for a guild.
func (a *Aggregator) UserStats(guildID string) (models.UserStatsRecord, error) {
	return a.users.Read(guildID)
}

// User returns one user's totals, if tracked.
func (a *Aggregator) User(guildID, userID string) (*models.UserStats, bool, error) {
	record, err := a.users.Read(guildID)
	if err != nil {
		return nil, false, err
	}
	entry, ok := record[userID]
	return entry, ok, nil
}

// MessageStats returns all per-user message distributions for a guild.
func (a *Aggregator) MessageStats(guildID string) (models.MessageStatsRecord, error) {
	return a.messages.Read(guildID)
}

// VoiceStats returns all per-user voice activity for a guild.
func (a *Aggregator) VoiceStats(guildID string) (models.VoiceStatsRecord, error) {
	return a.voice.Read(guildID)
}
