package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/hailam/occupychess/internal/board"
	"github.com/hailam/occupychess/internal/game"
)

func openTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPreferences(t *testing.T) {
	s := openTestStorage(t)

	t.Run("Defaults", func(t *testing.T) {
		prefs, err := s.LoadPreferences()
		if err != nil {
			t.Fatalf("LoadPreferences failed: %v", err)
		}
		if *prefs != *DefaultPreferences() {
			t.Errorf("got %+v, want defaults", prefs)
		}
	})

	t.Run("SaveAndLoad", func(t *testing.T) {
		want := &Preferences{SoundEnabled: false, ShowHolds: true, Autosave: false}
		if err := s.SavePreferences(want); err != nil {
			t.Fatalf("SavePreferences failed: %v", err)
		}
		got, err := s.LoadPreferences()
		if err != nil {
			t.Fatalf("LoadPreferences failed: %v", err)
		}
		if *got != *want {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})
}

func TestOpenOnDisk(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	g := game.New()
	if err := g.AttemptMove(board.E2, board.E4); err != nil {
		t.Fatalf("AttemptMove failed: %v", err)
	}
	id, err := s.SaveGame("persisted", g.State())
	if err != nil {
		t.Fatalf("SaveGame failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	s, err = Open(dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s.Close()

	saved, err := s.LoadGame(id)
	if err != nil {
		t.Fatalf("LoadGame after reopen failed: %v", err)
	}
	if saved.State != g.State() {
		t.Error("state changed across reopen")
	}
}

func TestSavedGames(t *testing.T) {
	s := openTestStorage(t)

	g := game.New()
	first, err := s.SaveGame("opening", g.State())
	if err != nil {
		t.Fatalf("SaveGame failed: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if err := g.AttemptMove(board.G1, board.F3); err != nil {
		t.Fatalf("AttemptMove failed: %v", err)
	}
	second, err := s.SaveGame("", g.State())
	if err != nil {
		t.Fatalf("SaveGame failed: %v", err)
	}

	t.Run("LoadGame", func(t *testing.T) {
		saved, err := s.LoadGame(second)
		if err != nil {
			t.Fatalf("LoadGame failed: %v", err)
		}
		if saved.State != g.State() {
			t.Errorf("loaded state differs from saved")
		}
		if saved.Name == "" {
			t.Error("empty name was not replaced")
		}

		restored := game.New()
		if err := restored.Restore(saved.State); err != nil {
			t.Fatalf("Restore failed: %v", err)
		}
		if restored.Turn() != board.Black || restored.PieceAt(board.F3) != board.WhiteKnight {
			t.Error("restored game does not match the saved position")
		}
	})

	t.Run("ListGamesNewestFirst", func(t *testing.T) {
		games, err := s.ListGames()
		if err != nil {
			t.Fatalf("ListGames failed: %v", err)
		}
		if len(games) != 2 {
			t.Fatalf("got %d games, want 2", len(games))
		}
		if games[0].ID != second || games[1].ID != first {
			t.Errorf("order = %s, %s; want %s, %s", games[0].ID, games[1].ID, second, first)
		}
		if games[1].Name != "opening" || games[1].Turn != "White" {
			t.Errorf("listing entry = %+v", games[1])
		}
	})

	t.Run("LoadMissing", func(t *testing.T) {
		for _, id := range []string{"not-a-uuid", "9b2f2b53-5f3c-4f0e-8a53-3c9f7f0b1d11"} {
			if _, err := s.LoadGame(id); !errors.Is(err, ErrNotFound) {
				t.Errorf("LoadGame(%q) = %v, want ErrNotFound", id, err)
			}
		}
	})

	t.Run("DeleteGame", func(t *testing.T) {
		if err := s.DeleteGame(first); err != nil {
			t.Fatalf("DeleteGame failed: %v", err)
		}
		if _, err := s.LoadGame(first); !errors.Is(err, ErrNotFound) {
			t.Errorf("deleted game still loads: %v", err)
		}
		if err := s.DeleteGame(first); !errors.Is(err, ErrNotFound) {
			t.Errorf("second delete = %v, want ErrNotFound", err)
		}
	})
}

func TestSaveGameRejectsInvalidState(t *testing.T) {
	s := openTestStorage(t)
	st := game.New().State()
	st.Placement = "garbage"

	if _, err := s.SaveGame("bad", st); !errors.Is(err, game.ErrInvalidState) {
		t.Errorf("SaveGame = %v, want ErrInvalidState", err)
	}
}

func TestAutosave(t *testing.T) {
	s := openTestStorage(t)

	if _, err := s.LoadAutosave(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("LoadAutosave on empty db = %v, want ErrNotFound", err)
	}

	g := game.New()
	if err := g.AttemptMove(board.E2, board.E4); err != nil {
		t.Fatalf("AttemptMove failed: %v", err)
	}
	if err := s.SaveAutosave(g.State()); err != nil {
		t.Fatalf("SaveAutosave failed: %v", err)
	}
	st, err := s.LoadAutosave()
	if err != nil {
		t.Fatalf("LoadAutosave failed: %v", err)
	}
	if st != g.State() {
		t.Error("autosave differs from the saved state")
	}

	if err := s.ClearAutosave(); err != nil {
		t.Fatalf("ClearAutosave failed: %v", err)
	}
	if _, err := s.LoadAutosave(); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadAutosave after clear = %v, want ErrNotFound", err)
	}
}

func TestRecordEvent(t *testing.T) {
	s := openTestStorage(t)

	if err := s.RecordNewGame(); err != nil {
		t.Fatalf("RecordNewGame failed: %v", err)
	}

	g := game.New()
	if err := s.RecordEvent(g); err != nil {
		t.Fatalf("RecordEvent without an action failed: %v", err)
	}

	moves := [][2]board.Square{
		{board.E2, board.E4}, {board.D7, board.D5}, {board.E4, board.D5},
	}
	for _, m := range moves {
		if err := g.AttemptMove(m[0], m[1]); err != nil {
			t.Fatalf("AttemptMove(%v, %v) failed: %v", m[0], m[1], err)
		}
		if err := s.RecordEvent(g); err != nil {
			t.Fatalf("RecordEvent failed: %v", err)
		}
	}

	// Black to act. A pawn cannot go on White's b2, so Black cancels and
	// strikes its own queen instead.
	if err := g.RequestPurchase(board.Pawn); err != nil {
		t.Fatalf("RequestPurchase failed: %v", err)
	}
	if err := g.CommitShopAction(board.B2); !errors.Is(err, game.ErrNotPlaceable) {
		t.Fatalf("CommitShopAction(b2) = %v, want ErrNotPlaceable", err)
	}
	g.CancelShop()
	if err := g.RequestMissile(); err != nil {
		t.Fatalf("RequestMissile failed: %v", err)
	}
	if err := g.CommitShopAction(board.D8); err != nil {
		t.Fatalf("CommitShopAction(d8) failed: %v", err)
	}
	if err := s.RecordEvent(g); err != nil {
		t.Fatalf("RecordEvent failed: %v", err)
	}

	stats, err := s.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats failed: %v", err)
	}
	if stats.GamesStarted != 1 {
		t.Errorf("GamesStarted = %d, want 1", stats.GamesStarted)
	}
	if stats.Moves != 3 || stats.Captures != 1 {
		t.Errorf("Moves/Captures = %d/%d, want 3/1", stats.Moves, stats.Captures)
	}
	if stats.MissilesFired != 1 || stats.MissileKills != 1 {
		t.Errorf("MissilesFired/MissileKills = %d/%d, want 1/1", stats.MissilesFired, stats.MissileKills)
	}
	if stats.CoinsSpent != game.MissilePrice {
		t.Errorf("CoinsSpent = %d, want %d", stats.CoinsSpent, game.MissilePrice)
	}
	if stats.ActionsBySide["White"] != 2 || stats.ActionsBySide["Black"] != 2 {
		t.Errorf("ActionsBySide = %v", stats.ActionsBySide)
	}
}

func TestStatsApply(t *testing.T) {
	st := NewStats()
	st.Apply(game.Event{Kind: game.EventPlace, Side: board.Black, Piece: board.BlackKnight, Captured: board.NoPiece, Cost: 3}, 7)
	st.Apply(game.Event{Kind: game.EventPlace, Side: board.Black, Piece: board.BlackPawn, Captured: board.NoPiece, Cost: 1}, 2)
	st.Apply(game.Event{Kind: game.EventMove, Side: board.White, Piece: board.WhitePawn, Captured: board.NoPiece, Promoted: true}, 12)

	if st.TotalBought() != 2 || st.PiecesBought["Knight"] != 1 {
		t.Errorf("PiecesBought = %v", st.PiecesBought)
	}
	if st.Promotions != 1 || st.Captures != 0 {
		t.Errorf("Promotions/Captures = %d/%d, want 1/0", st.Promotions, st.Captures)
	}
	if st.PeakBalance != 12 {
		t.Errorf("PeakBalance = %d, want 12", st.PeakBalance)
	}
	if st.CoinsSpent != 4 {
		t.Errorf("CoinsSpent = %d, want 4", st.CoinsSpent)
	}
}
