// Package session routes pointer-style input to a game and keeps the
// persistence side effects (autosave, statistics, preferences) in one place,
// so the graphical front end only has to draw and forward clicks.
package session

import (
	"errors"
	"fmt"
	"log"

	"github.com/hailam/occupychess/internal/board"
	"github.com/hailam/occupychess/internal/game"
	"github.com/hailam/occupychess/internal/storage"
)

// Store is the persistence a session uses. *storage.Storage satisfies it.
type Store interface {
	SaveGame(name string, st game.State) (string, error)
	LoadGame(id string) (*storage.SavedGame, error)
	ListGames() ([]storage.GameInfo, error)
	DeleteGame(id string) error
	SaveAutosave(st game.State) error
	LoadAutosave() (game.State, error)
	ClearAutosave() error
	LoadStats() (*storage.Stats, error)
	RecordNewGame() error
	RecordEvent(g *game.Game) error
	SavePreferences(prefs *storage.Preferences) error
	LoadPreferences() (*storage.Preferences, error)
}

// ErrNoStore is returned by persistence operations when storage is disabled.
var ErrNoStore = errors.New("storage disabled")

// ClickResult classifies what a board click did.
type ClickResult uint8

const (
	ClickIgnored ClickResult = iota
	ClickSelected
	ClickDeselected
	ClickMoved
	ClickPlaced
	ClickFired
	ClickRejected
)

// String returns the result name.
func (r ClickResult) String() string {
	switch r {
	case ClickIgnored:
		return "ignored"
	case ClickSelected:
		return "selected"
	case ClickDeselected:
		return "deselected"
	case ClickMoved:
		return "moved"
	case ClickPlaced:
		return "placed"
	case ClickFired:
		return "fired"
	case ClickRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Completed returns true if the click finished an action and passed the turn.
func (r ClickResult) Completed() bool {
	return r == ClickMoved || r == ClickPlaced || r == ClickFired
}

// Outcome reports a click. Event is set when Result.Completed() is true,
// Err when the rules refused the click.
type Outcome struct {
	Result ClickResult
	Event  game.Event
	Err    error
}

// Session owns one game and its optional store.
type Session struct {
	game   *game.Game
	store  Store // nil disables persistence
	prefs  storage.Preferences
	logger *log.Logger

	noAutosave bool
}

// Option configures a Session.
type Option func(*Session)

// WithStore enables persistence. Preferences are loaded from the store.
func WithStore(s Store) Option {
	return func(ss *Session) { ss.store = s }
}

// WithoutAutosave disables the autosave slot regardless of preferences.
func WithoutAutosave() Option {
	return func(ss *Session) { ss.noAutosave = true }
}

// WithLogger replaces the default logger.
func WithLogger(l *log.Logger) Option {
	return func(ss *Session) { ss.logger = l }
}

// New creates a session around g.
func New(g *game.Game, opts ...Option) *Session {
	s := &Session{
		game:   g,
		prefs:  *storage.DefaultPreferences(),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.store != nil {
		if prefs, err := s.store.LoadPreferences(); err == nil {
			s.prefs = *prefs
		} else {
			s.logger.Printf("[STORAGE] Warning: failed to load preferences: %v", err)
		}
	}
	return s
}

// Game returns the underlying game for read access.
func (s *Session) Game() *game.Game {
	return s.game
}

// HasStore returns true if persistence is enabled.
func (s *Session) HasStore() bool {
	return s.store != nil
}

// Preferences returns the current preferences.
func (s *Session) Preferences() storage.Preferences {
	return s.prefs
}

// SetPreferences replaces and persists the preferences. Turning autosave off
// clears the slot.
func (s *Session) SetPreferences(p storage.Preferences) error {
	wasOn := s.prefs.Autosave
	s.prefs = p
	if s.store == nil {
		return nil
	}
	if wasOn && !p.Autosave {
		if err := s.store.ClearAutosave(); err != nil {
			return err
		}
	}
	return s.store.SavePreferences(&p)
}

// Click routes a click on sq.
//
// While a purchase is pending the click commits it; an ineligible square
// leaves the purchase pending and is reported as ignored. Otherwise a click on
// one of the active side's pieces selects it, a click on a legal destination
// of the selection moves there, and anything else clears the selection.
func (s *Session) Click(sq board.Square) Outcome {
	if !sq.IsValid() {
		return Outcome{Result: ClickIgnored}
	}

	g := s.game
	if shop := g.Shop(); shop.Active() {
		ev, err := s.Commit(sq)
		if err != nil {
			if errors.Is(err, game.ErrNotPlaceable) || errors.Is(err, game.ErrNotTargetable) {
				return Outcome{Result: ClickIgnored, Err: err}
			}
			return Outcome{Result: ClickRejected, Err: err}
		}
		if ev.Kind == game.EventMissile {
			return Outcome{Result: ClickFired, Event: ev}
		}
		return Outcome{Result: ClickPlaced, Event: ev}
	}

	if p := g.PieceAt(sq); p != board.NoPiece && p.Color() == g.Turn() {
		g.Select(sq)
		return Outcome{Result: ClickSelected}
	}

	from, legal := g.Selected()
	if from == board.NoSquare {
		return Outcome{Result: ClickIgnored}
	}
	if !legal.Has(sq) {
		g.Deselect()
		return Outcome{Result: ClickDeselected}
	}
	ev, err := s.Move(from, sq)
	if err != nil {
		g.Deselect()
		return Outcome{Result: ClickRejected, Err: err}
	}
	return Outcome{Result: ClickMoved, Event: ev}
}

// Move plays from-to for the active side. On success the action is logged,
// counted in the statistics and autosaved.
func (s *Session) Move(from, to board.Square) (game.Event, error) {
	if err := s.game.AttemptMove(from, to); err != nil {
		return game.Event{}, err
	}
	return s.completed("[MOVE]"), nil
}

// Commit places the pending purchase or fires the pending missile at sq, with
// the same side effects as Move.
func (s *Session) Commit(sq board.Square) (game.Event, error) {
	if err := s.game.CommitShopAction(sq); err != nil {
		return game.Event{}, err
	}
	return s.completed("[SHOP]"), nil
}

// Buy enters placement mode for pt.
func (s *Session) Buy(pt board.PieceType) error {
	return s.game.RequestPurchase(pt)
}

// Missile enters missile targeting mode.
func (s *Session) Missile() error {
	return s.game.RequestMissile()
}

// Cancel abandons a pending purchase and clears the selection.
func (s *Session) Cancel() {
	s.game.CancelShop()
	s.game.Deselect()
}

// Highlights returns the squares an adapter should mark for the current
// input state: legal destinations of the selection, or the eligible squares
// of a pending purchase.
func (s *Session) Highlights() board.SquareSet {
	switch s.game.Shop().Kind {
	case game.ShopPlacement:
		return s.game.PlaceableSquares()
	case game.ShopMissile:
		return s.game.TargetableSquares()
	}
	_, legal := s.game.Selected()
	return legal
}

// NewGame resets the game and counts it in the statistics.
func (s *Session) NewGame() {
	s.game.Reset()
	if s.store != nil {
		if err := s.store.RecordNewGame(); err != nil {
			s.logger.Printf("[STORAGE] Warning: failed to record new game: %v", err)
		}
	}
	s.autosave()
}

// Save stores the current state under name and returns its id.
func (s *Session) Save(name string) (string, error) {
	if s.store == nil {
		return "", ErrNoStore
	}
	id, err := s.store.SaveGame(name, s.game.State())
	if err != nil {
		return "", err
	}
	s.logger.Printf("[STORAGE] Saved game %s", id)
	return id, nil
}

// Load replaces the game with the saved game id.
func (s *Session) Load(id string) error {
	if s.store == nil {
		return ErrNoStore
	}
	saved, err := s.store.LoadGame(id)
	if err != nil {
		return err
	}
	if err := s.game.Restore(saved.State); err != nil {
		return fmt.Errorf("load %s: %w", id, err)
	}
	s.logger.Printf("[STORAGE] Loaded game %s", id)
	s.autosave()
	return nil
}

// Delete removes the saved game id.
func (s *Session) Delete(id string) error {
	if s.store == nil {
		return ErrNoStore
	}
	return s.store.DeleteGame(id)
}

// SavedGames lists saved games, newest first.
func (s *Session) SavedGames() ([]storage.GameInfo, error) {
	if s.store == nil {
		return nil, ErrNoStore
	}
	return s.store.ListGames()
}

// Resume restores the autosave slot.
func (s *Session) Resume() error {
	if s.store == nil {
		return ErrNoStore
	}
	st, err := s.store.LoadAutosave()
	if err != nil {
		return err
	}
	return s.game.Restore(st)
}

// Stats returns the lifetime statistics.
func (s *Session) Stats() (*storage.Stats, error) {
	if s.store == nil {
		return nil, ErrNoStore
	}
	return s.store.LoadStats()
}

// completed logs and persists the action that just finished.
func (s *Session) completed(tag string) game.Event {
	ev, _ := s.game.LastEvent()
	s.logger.Printf("%s %v", tag, ev)

	if s.store != nil {
		if err := s.store.RecordEvent(s.game); err != nil {
			s.logger.Printf("[STORAGE] Warning: failed to record stats: %v", err)
		}
	}
	s.autosave()
	return ev
}

func (s *Session) autosave() {
	if s.store == nil || s.noAutosave || !s.prefs.Autosave {
		return
	}
	if err := s.store.SaveAutosave(s.game.State()); err != nil {
		s.logger.Printf("[STORAGE] Warning: autosave failed: %v", err)
	}
}
