package storage

import (
	"errors"

	"github.com/hailam/occupychess/internal/game"
)

// Stats stores lifetime statistics across every game played.
type Stats struct {
	GamesStarted  int            `json:"games_started"`
	Moves         int            `json:"moves"`
	Captures      int            `json:"captures"`
	Promotions    int            `json:"promotions"`
	PiecesBought  map[string]int `json:"pieces_bought"`
	MissilesFired int            `json:"missiles_fired"`
	MissileKills  int            `json:"missile_kills"`
	CoinsSpent    int            `json:"coins_spent"`
	ActionsBySide map[string]int `json:"actions_by_side"`
	PeakBalance   int            `json:"peak_balance"`
}

// NewStats returns empty statistics.
func NewStats() *Stats {
	return &Stats{
		PiecesBought:  make(map[string]int),
		ActionsBySide: make(map[string]int),
	}
}

// Apply folds a completed action into the statistics. balance is the acting
// side's coin balance after the action.
func (st *Stats) Apply(ev game.Event, balance int) {
	st.ActionsBySide[ev.Side.String()]++
	st.CoinsSpent += ev.Cost

	switch ev.Kind {
	case game.EventMove:
		st.Moves++
		if ev.IsCapture() {
			st.Captures++
		}
		if ev.Promoted {
			st.Promotions++
		}
	case game.EventPlace:
		st.PiecesBought[ev.Piece.Type().String()]++
	case game.EventMissile:
		st.MissilesFired++
		if ev.IsCapture() {
			st.MissileKills++
		}
	}

	if balance > st.PeakBalance {
		st.PeakBalance = balance
	}
}

// TotalBought returns the number of pieces bought across all kinds.
func (st *Stats) TotalBought() int {
	n := 0
	for _, c := range st.PiecesBought {
		n += c
	}
	return n
}

// SaveStats saves statistics.
func (s *Storage) SaveStats(stats *Stats) error {
	return s.putJSON(keyStats, stats)
}

// LoadStats loads statistics, returns empty stats if not found.
func (s *Storage) LoadStats() (*Stats, error) {
	stats := NewStats()
	if err := s.getJSON(keyStats, stats); err != nil && !errors.Is(err, ErrNotFound) {
		return stats, err
	}
	if stats.PiecesBought == nil {
		stats.PiecesBought = make(map[string]int)
	}
	if stats.ActionsBySide == nil {
		stats.ActionsBySide = make(map[string]int)
	}
	return stats, nil
}

// RecordNewGame counts a started game.
func (s *Storage) RecordNewGame() error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}
	stats.GamesStarted++
	return s.SaveStats(stats)
}

// RecordEvent folds the last action of g into the stored statistics.
// It does nothing when g has not completed an action yet.
func (s *Storage) RecordEvent(g *game.Game) error {
	ev, ok := g.LastEvent()
	if !ok {
		return nil
	}
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}
	stats.Apply(ev, g.Coins(ev.Side))
	return s.SaveStats(stats)
}
