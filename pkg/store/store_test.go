package store

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

type testRecord struct {
	Counter int            `json:"counter"`
	Names   map[string]int `json:"names,omitempty"`
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(t.TempDir())
}

func TestReadMissingRecordReturnsZeroValue(t *testing.T) {
	s := newTestStore(t)
	rec := NewRecord[testRecord](s, CategoryTicket)

	value, err := rec.Read("guild-1")
	if err != nil {
		t.Fatalf("Read() returned error: %v", err)
	}
	if value.Counter != 0 || value.Names != nil {
		t.Errorf("Read() of missing record = %+v, want zero value", value)
	}
}

func TestWriteThenRead(t *testing.T) {
	s := newTestStore(t)
	rec := NewRecord[testRecord](s, CategoryVoice)

	want := testRecord{Counter: 7, Names: map[string]int{"a": 1}}
	if err := rec.Write("guild-1", want); err != nil {
		t.Fatalf("Write() returned error: %v", err)
	}

	got, err := rec.Read("guild-1")
	if err != nil {
		t.Fatalf("Read() returned error: %v", err)
	}
	if got.Counter != want.Counter || got.Names["a"] != 1 {
		t.Errorf("Read() = %+v, want %+v", got, want)
	}

	// Records must land in the per-guild file tree
	path := filepath.Join(s.Root(), "guilds", "guild-1", "voice.json")
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected record file at %s: %v", path, err)
	}
}

func TestNestedCategoryPath(t *testing.T) {
	s := newTestStore(t)
	rec := NewRecord[testRecord](s, CategoryServerStats)

	if err := rec.Write("guild-1", testRecord{Counter: 1}); err != nil {
		t.Fatalf("Write() returned error: %v", err)
	}

	path := filepath.Join(s.Root(), "guilds", "guild-1", "stats", "server.json")
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected record file at %s: %v", path, err)
	}
}

func TestUpdateAbortsWithoutPersisting(t *testing.T) {
	s := newTestStore(t)
	rec := NewRecord[testRecord](s, CategoryTicket)

	if err := rec.Write("guild-1", testRecord{Counter: 3}); err != nil {
		t.Fatalf("Write() returned error: %v", err)
	}

	wantErr := os.ErrInvalid
	_, err := rec.Update("guild-1", func(r *testRecord) error {
		r.Counter = 99
		return wantErr
	})
	if err != wantErr {
		t.Fatalf("Update() error = %v, want %v", err, wantErr)
	}

	got, _ := rec.Read("guild-1")
	if got.Counter != 3 {
		t.Errorf("Counter = %d after failed Update, want 3", got.Counter)
	}
}

func TestUpdateUnchangedSkipsWrite(t *testing.T) {
	s := newTestStore(t)
	rec := NewRecord[testRecord](s, CategoryVoice)

	value, err := rec.Update("guild-1", func(r *testRecord) error {
		return ErrUnchanged
	})
	if err != nil {
		t.Fatalf("Update() returned error: %v", err)
	}
	if value.Counter != 0 {
		t.Errorf("Counter = %d, want 0", value.Counter)
	}

	// A no-op update must not materialize a record file
	path := filepath.Join(s.Root(), "guilds", "guild-1", "voice.json")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("record file should not exist after unchanged Update: %v", err)
	}
}

func TestUpdateUnchangedKeepsExistingRecord(t *testing.T) {
	s := newTestStore(t)
	rec := NewRecord[testRecord](s, CategoryTicket)

	if err := rec.Write("guild-1", testRecord{Counter: 3}); err != nil {
		t.Fatalf("Write() returned error: %v", err)
	}

	if _, err := rec.Update("guild-1", func(r *testRecord) error {
		return ErrUnchanged
	}); err != nil {
		t.Fatalf("Update() returned error: %v", err)
	}

	got, _ := rec.Read("guild-1")
	if got.Counter != 3 {
		t.Errorf("Counter = %d after unchanged Update, want 3", got.Counter)
	}
}

func TestConcurrentUpdatesDoNotLoseIncrements(t *testing.T) {
	s := newTestStore(t)
	rec := NewRecord[testRecord](s, CategoryServerStats)

	const goroutines = 20
	const increments = 10

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < increments; j++ {
				_, err := rec.Update("guild-1", func(r *testRecord) error {
					r.Counter++
					return nil
				})
				if err != nil {
					t.Errorf("Update() returned error: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	got, err := rec.Read("guild-1")
	if err != nil {
		t.Fatalf("Read() returned error: %v", err)
	}
	if got.Counter != goroutines*increments {
		t.Errorf("Counter = %d, want %d (lost updates)", got.Counter, goroutines*increments)
	}
}

func TestDistinctGuildsDoNotShareRecords(t *testing.T) {
	s := newTestStore(t)
	rec := NewRecord[testRecord](s, CategoryWarnings)

	if err := rec.Write("guild-1", testRecord{Counter: 1}); err != nil {
		t.Fatalf("Write() returned error: %v", err)
	}
	if err := rec.Write("guild-2", testRecord{Counter: 2}); err != nil {
		t.Fatalf("Write() returned error: %v", err)
	}

	one, _ := rec.Read("guild-1")
	two, _ := rec.Read("guild-2")
	if one.Counter != 1 || two.Counter != 2 {
		t.Errorf("cross-guild records mixed: guild-1=%d guild-2=%d", one.Counter, two.Counter)
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	rec := NewRecord[testRecord](s, CategoryVoice)

	if err := rec.Write("guild-1", testRecord{Counter: 5}); err != nil {
		t.Fatalf("Write() returned error: %v", err)
	}
	if err := rec.Delete("guild-1"); err != nil {
		t.Fatalf("Delete() returned error: %v", err)
	}

	got, err := rec.Read("guild-1")
	if err != nil {
		t.Fatalf("Read() returned error: %v", err)
	}
	if got.Counter != 0 {
		t.Errorf("Counter = %d after Delete, want 0", got.Counter)
	}

	// Deleting a missing record is not an error
	if err := rec.Delete("guild-1"); err != nil {
		t.Errorf("Delete() of missing record returned error: %v", err)
	}
}

func TestGuildIDs(t *testing.T) {
	s := newTestStore(t)
	rec := NewRecord[testRecord](s, CategoryVoice)

	ids, err := s.GuildIDs()
	if err != nil {
		t.Fatalf("GuildIDs() returned error: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("GuildIDs() = %v, want empty", ids)
	}

	rec.Write("guild-1", testRecord{})
	rec.Write("guild-2", testRecord{})

	ids, err = s.GuildIDs()
	if err != nil {
		t.Fatalf("GuildIDs() returned error: %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("GuildIDs() = %v, want 2 guilds", ids)
	}
}
