// Package store provides keyed JSON persistence for guild records.
// Each guild keeps one JSON file per category under the data directory, and
// every read-modify-write on a record is serialized by a per-key mutex.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/goccy/go-json"
)

// Category identifies one record file per guild.
type Category string

const (
	CategoryModeration   Category = "moderation"
	CategoryTicket       Category = "ticket"
	CategoryVoice        Category = "voice"
	CategoryWarnings     Category = "warnings"
	CategoryServerStats  Category = "stats/server"
	CategoryUserStats    Category = "stats/users"
	CategoryMessageStats Category = "stats/messages"
	CategoryVoiceStats   Category = "stats/voice"
)

// ErrUnchanged can be returned by an Update callback to signal that it did
// not modify the record. Update then skips the write and returns no error.
var ErrUnchanged = errors.New("store: record unchanged")

// PersistenceError wraps a failed read or write of a record file.
type PersistenceError struct {
	GuildID  string
	Category Category
	Op       string
	Err      error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("store: %s %s/%s: %v", e.Op, e.GuildID, e.Category, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Store manages the on-disk record tree rooted at a data directory.
type Store struct {
	root  string
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a Store rooted at the given data directory.
func New(root string) *Store {
	return &Store{
		root:  root,
		locks: make(map[string]*sync.Mutex),
	}
}

// Root returns the data directory the store was created with.
func (s *Store) Root() string {
	return s.root
}

// GuildIDs lists the guilds that have at least one persisted record.
func (s *Store) GuildIDs() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, "guilds"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() {
			ids = append(ids, entry.Name())
		}
	}
	return ids, nil
}

// keyLock returns the mutex serializing access to one (guild, category) record.
func (s *Store) keyLock(guildID string, category Category) *sync.Mutex {
	key := guildID + "/" + string(category)

	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}

// recordPath builds the file path for one (guild, category) record.
func (s *Store) recordPath(guildID string, category Category) string {
	parts := append([]string{s.root, "guilds", guildID}, strings.Split(string(category), "/")...)
	return filepath.Join(parts...) + ".json"
}

// readRecord loads a record file into dst. A missing file leaves dst untouched.
func (s *Store) readRecord(guildID string, category Category, dst interface{}) error {
	data, err := os.ReadFile(s.recordPath(guildID, category))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &PersistenceError{GuildID: guildID, Category: category, Op: "read", Err: err}
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return &PersistenceError{GuildID: guildID, Category: category, Op: "decode", Err: err}
	}
	return nil
}

// writeRecord atomically rewrites a record file (temp file + rename).
func (s *Store) writeRecord(guildID string, category Category, value interface{}) error {
	path := s.recordPath(guildID, category)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &PersistenceError{GuildID: guildID, Category: category, Op: "mkdir", Err: err}
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return &PersistenceError{GuildID: guildID, Category: category, Op: "encode", Err: err}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return &PersistenceError{GuildID: guildID, Category: category, Op: "write", Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return &PersistenceError{GuildID: guildID, Category: category, Op: "rename", Err: err}
	}
	return nil
}

// deleteRecord removes a record file. Missing files are not an error.
func (s *Store) deleteRecord(guildID string, category Category) error {
	err := os.Remove(s.recordPath(guildID, category))
	if err != nil && !os.IsNotExist(err) {
		return &PersistenceError{GuildID: guildID, Category: category, Op: "delete", Err: err}
	}
	return nil
}

// Record provides typed access to one category of guild records.
type Record[T any] struct {
	store    *Store
	category Category
}

// NewRecord creates a typed accessor for a category.
func NewRecord[T any](store *Store, category Category) *Record[T] {
	return &Record[T]{store: store, category: category}
}

// Read loads the record for a guild. A guild with no persisted record
// yields the zero value, never an error.
func (r *Record[T]) Read(guildID string) (T, error) {
	lock := r.store.keyLock(guildID, r.category)
	lock.Lock()
	defer lock.Unlock()

	var value T
	if err := r.store.readRecord(guildID, r.category, &value); err != nil {
		return value, err
	}
	return value, nil
}

// Write replaces the record for a guild.
func (r *Record[T]) Write(guildID string, value T) error {
	lock := r.store.keyLock(guildID, r.category)
	lock.Lock()
	defer lock.Unlock()

	return r.store.writeRecord(guildID, r.category, value)
}

// Update performs a serialized read-modify-write on the record for a guild.
// The key mutex is held across load, mutate and persist, so two concurrent
// updates of the same record cannot lose each other's changes. If fn returns
// an error the record is not persisted; ErrUnchanged skips the write without
// reporting an error, so no-op updates never materialize a record file.
func (r *Record[T]) Update(guildID string, fn func(*T) error) (T, error) {
	lock := r.store.keyLock(guildID, r.category)
	lock.Lock()
	defer lock.Unlock()

	var value T
	if err := r.store.readRecord(guildID, r.category, &value); err != nil {
		return value, err
	}

	if err := fn(&value); err != nil {
		if errors.Is(err, ErrUnchanged) {
			return value, nil
		}
		return value, err
	}

	if err := r.store.writeRecord(guildID, r.category, value); err != nil {
		return value, err
	}
	return value, nil
}

// Delete removes the record for a guild.
func (r *Record[T]) Delete(guildID string) error {
	lock := r.store.keyLock(guildID, r.category)
	lock.Lock()
	defer lock.Unlock()

	return r.store.deleteRecord(guildID, r.category)
}
