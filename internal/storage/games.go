package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/hailam/occupychess/internal/game"
)

// SavedGame is a named snapshot.
type SavedGame struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	SavedAt time.Time  `json:"saved_at"`
	State   game.State `json:"state"`
}

// GameInfo is the listing entry for a saved game.
type GameInfo struct {
	ID      string
	Name    string
	SavedAt time.Time
	Turn    string
	Coins   [2]int
}

// SaveGame stores a new snapshot and returns its id. An empty name is
// replaced with the save time.
func (s *Storage) SaveGame(name string, st game.State) (string, error) {
	if _, err := st.Validate(); err != nil {
		return "", err
	}

	now := time.Now()
	if strings.TrimSpace(name) == "" {
		name = now.Format("2006-01-02 15:04:05")
	}

	saved := SavedGame{
		ID:      uuid.NewString(),
		Name:    name,
		SavedAt: now,
		State:   st,
	}
	if err := s.putJSON(prefixGame+saved.ID, saved); err != nil {
		return "", fmt.Errorf("save game %q: %w", name, err)
	}
	return saved.ID, nil
}

// LoadGame returns the snapshot stored under id.
func (s *Storage) LoadGame(id string) (*SavedGame, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("game %q: %w", id, ErrNotFound)
	}

	var saved SavedGame
	if err := s.getJSON(prefixGame+id, &saved); err != nil {
		return nil, fmt.Errorf("game %s: %w", id, err)
	}
	return &saved, nil
}

// DeleteGame removes the snapshot stored under id.
func (s *Storage) DeleteGame(id string) error {
	if _, err := s.LoadGame(id); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(prefixGame + id))
	})
}

// ListGames returns every saved game, newest first.
func (s *Storage) ListGames() ([]GameInfo, error) {
	var games []GameInfo

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefixGame)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var saved SavedGame
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &saved)
			})
			if err != nil {
				return err
			}
			games = append(games, GameInfo{
				ID:      saved.ID,
				Name:    saved.Name,
				SavedAt: saved.SavedAt,
				Turn:    saved.State.Turn.String(),
				Coins:   saved.State.Coins,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(games, func(a, b GameInfo) int {
		return b.SavedAt.Compare(a.SavedAt)
	})
	return games, nil
}

// SaveAutosave overwrites the autosave slot.
func (s *Storage) SaveAutosave(st game.State) error {
	if _, err := st.Validate(); err != nil {
		return err
	}
	return s.putJSON(keyAutosave, st)
}

// LoadAutosave returns the autosaved state, or ErrNotFound.
func (s *Storage) LoadAutosave() (game.State, error) {
	var st game.State
	if err := s.getJSON(keyAutosave, &st); err != nil {
		return game.State{}, fmt.Errorf("autosave: %w", err)
	}
	return st, nil
}

// ClearAutosave empties the autosave slot.
func (s *Storage) ClearAutosave() error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyAutosave))
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil
	}
	return err
}
