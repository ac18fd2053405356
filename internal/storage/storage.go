// Package storage persists saved games, the autosave slot, preferences and
// lifetime statistics in BadgerDB.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
	keyAutosave    = "autosave"
	prefixGame     = "game/"
)

// ErrNotFound is returned when a saved game or the autosave slot is missing.
var ErrNotFound = errors.New("not found")

// Preferences stores user settings.
type Preferences struct {
	SoundEnabled bool `json:"sound_enabled"`
	ShowHolds    bool `json:"show_holds"`
	Autosave     bool `json:"autosave"`
}

// DefaultPreferences returns default user preferences.
func DefaultPreferences() *Preferences {
	return &Preferences{
		SoundEnabled: true,
		ShowHolds:    true,
		Autosave:     true,
	}
}

// Storage wraps BadgerDB for persistent storage.
type Storage struct {
	db *badger.DB
}

// Open opens (or creates) the database under dataDir. An empty dataDir
// selects the platform data directory.
func Open(dataDir string) (*Storage, error) {
	dbDir, err := GetDatabaseDir(dataDir)
	if err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", dbDir, err)
	}

	return &Storage{db: db}, nil
}

// OpenInMemory opens a database that lives only as long as the process.
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open in-memory database: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// putJSON stores v as JSON under key.
func (s *Storage) putJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// getJSON decodes the value under key into v. A missing key returns
// ErrNotFound and leaves v untouched.
func (s *Storage) getJSON(key string, v any) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
}

// SavePreferences saves user preferences.
func (s *Storage) SavePreferences(prefs *Preferences) error {
	return s.putJSON(keyPreferences, prefs)
}

// LoadPreferences loads user preferences, returns defaults if not found.
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()
	if err := s.getJSON(keyPreferences, prefs); err != nil && !errors.Is(err, ErrNotFound) {
		return prefs, err
	}
	return prefs, nil
}
