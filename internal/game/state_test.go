package game

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/hailam/occupychess/internal/board"
)

func TestStateRestoreRoundTrip(t *testing.T) {
	g := New()
	mustMove(t, g, board.E2, board.E4)
	mustMove(t, g, board.E7, board.E5)
	if err := g.RequestPurchase(board.Knight); err != nil {
		t.Fatalf("RequestPurchase failed: %v", err)
	}

	data, err := json.Marshal(g.State())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	restored := New()
	if err := restored.Restore(s); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if restored.State() != g.State() {
		t.Errorf("restored state differs:\n got %+v\nwant %+v", restored.State(), g.State())
	}

	// The restored game carries on exactly like the original.
	for _, game := range []*Game{g, restored} {
		if err := game.CommitShopAction(board.B1); !errors.Is(err, ErrNotPlaceable) {
			t.Errorf("commit on occupied b1 = %v", err)
		}
		game.CancelShop()
		if err := game.AttemptMove(board.G1, board.F3); err != nil {
			t.Errorf("move after restore failed: %v", err)
		}
	}
	if restored.State() != g.State() {
		t.Error("games diverged after the same commit")
	}
}

func TestRestoreRejectsInvalidState(t *testing.T) {
	valid := New().State()

	tests := []struct {
		name   string
		mutate func(*State)
	}{
		{"bad placement", func(s *State) { s.Placement = "8/8/8" }},
		{"bad piece", func(s *State) { s.Placement = "8/8/8/8/8/8/8/7X" }},
		{"negative coins", func(s *State) { s.Coins[board.Black] = -1 }},
		{"bad turn", func(s *State) { s.Turn = board.NoColor }},
		{"bad owner", func(s *State) { s.Cells[board.A1].Owner = 7 }},
		{"hold over threshold", func(s *State) { s.Cells[board.A1].Hold[board.White] = 3 }},
		{"both sides holding", func(s *State) { s.Cells[board.A1].Hold = [2]uint8{1, 1} }},
		{"held to threshold but unowned", func(s *State) { s.Cells[board.A1].Hold = [2]uint8{2, 0} }},
		{"held to threshold by the other side", func(s *State) {
			s.Cells[board.A1] = board.Cell{Owner: board.White, Hold: [2]uint8{0, 2}}
		}},
		{"king for sale", func(s *State) { s.Shop = ShopMode{Kind: ShopPlacement, Piece: board.King} }},
		{"bad shop kind", func(s *State) { s.Shop.Kind = 9 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := New()
			mustMove(t, g, board.E2, board.E4)
			before := g.State()

			s := valid
			tc.mutate(&s)
			if err := g.Restore(s); !errors.Is(err, ErrInvalidState) {
				t.Fatalf("Restore = %v, want ErrInvalidState", err)
			}
			if g.State() != before {
				t.Error("failed Restore changed the game")
			}
		})
	}
}

func TestDecodeRejectsIncompleteCells(t *testing.T) {
	data, err := json.Marshal(New().State())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	cells := make([]string, 64)
	for i := range cells {
		cells[i] = `{"owner":2,"hold":[0,0]}`
	}
	grid := func(cs []string) json.RawMessage {
		return json.RawMessage("[" + strings.Join(cs, ",") + "]")
	}
	missingOwner := append([]string{`{"hold":[0,0]}`}, cells[1:]...)
	missingHold := append([]string{`{"owner":2}`}, cells[1:]...)

	tests := []struct {
		name  string
		cells json.RawMessage
	}{
		{"missing", nil},
		{"null", json.RawMessage("null")},
		{"empty", grid(nil)},
		{"short", grid(cells[:63])},
		{"long", grid(append(cells[:64:64], cells[0]))},
		{"cell without owner", grid(missingOwner)},
		{"cell without hold", grid(missingHold)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := make(map[string]json.RawMessage, len(fields))
			for k, v := range fields {
				doc[k] = v
			}
			delete(doc, "cells")
			if tc.cells != nil {
				doc["cells"] = tc.cells
			}
			data, err := json.Marshal(doc)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}

			var s State
			if err := json.Unmarshal(data, &s); !errors.Is(err, ErrInvalidState) {
				t.Fatalf("Unmarshal = %v, want ErrInvalidState", err)
			}
		})
	}

	t.Run("complete", func(t *testing.T) {
		doc := make(map[string]json.RawMessage, len(fields))
		for k, v := range fields {
			doc[k] = v
		}
		doc["cells"] = grid(cells)
		data, err := json.Marshal(doc)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		var s State
		if err := json.Unmarshal(data, &s); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if s.Cells != board.NewGrid() {
			t.Errorf("decoded grid is not empty: %+v", s.Cells)
		}
	})
}
