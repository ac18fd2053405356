package console

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/hailam/occupychess/internal/board"
	"github.com/hailam/occupychess/internal/game"
	"github.com/hailam/occupychess/internal/session"
	"github.com/hailam/occupychess/internal/storage"
)

var quiet = session.WithLogger(log.New(io.Discard, "", 0))

// newConsole wraps g in a session built from opts.
func newConsole(g *game.Game, out io.Writer, opts ...session.Option) *Console {
	return New(session.New(g, append([]session.Option{quiet}, opts...)...), out)
}

// run feeds script to a console and returns its reply lines.
func run(t *testing.T, c *Console, out *bytes.Buffer, script string) []string {
	t.Helper()
	out.Reset()
	if err := c.Run(strings.NewReader(script)); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
}

func TestMoveAndRejections(t *testing.T) {
	var out bytes.Buffer
	g := game.New()
	c := newConsole(g, &out)

	lines := run(t, c, &out, `
select g1
move e2e4
move a1 a2
buy king
buy bishop
coins
quit
move e7 e5
`)

	want := []string{
		"ok g1: f3 h3",
		"ok White Pawn e2-e4; Black to act",
		"rejected: move a1-a2: piece belongs to the inactive side",
		"rejected: King: piece is not for sale",
		"rejected: Bishop costs 3, Black has 0: insufficient coins",
		"ok White 0 Black 0",
		"ok bye",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), strings.Join(lines, "\n"))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
	if g.Turn() != board.Black {
		t.Error("commands after quit were executed")
	}
}

func TestMalformedInput(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"move z9 e4", "error: invalid square: z9"},
		{"move e2", "error: expected 2 square(s), got 1"},
		{"frobnicate", `error: unknown command "frobnicate"`},
		{"buy dragon", `error: unknown piece "dragon"`},
		{"commit", "error: expected 1 square(s), got 0"},
		{"save mine", "error: storage disabled"},
		{"load autosave", "error: storage disabled"},
		{"games", "error: storage disabled"},
		{"place e4", "rejected: no purchase pending"},
	}

	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			var out bytes.Buffer
			c := newConsole(game.New(), &out)
			c.Execute(tc.line)
			if got := strings.TrimSpace(out.String()); got != tc.want {
				t.Errorf("%q -> %q, want %q", tc.line, got, tc.want)
			}
		})
	}
}

func TestShopCommands(t *testing.T) {
	g := game.New()
	st := game.State{
		Placement: "4k3/8/8/8/8/8/8/4K3",
		Cells:     board.NewGrid(),
		Coins:     [2]int{3, 0},
		Turn:      board.White,
	}
	st.Cells[board.D3].Owner = board.White
	st.Cells[board.E1].Owner = board.White
	if err := g.Restore(st); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	var out bytes.Buffer
	c := newConsole(g, &out)
	lines := run(t, c, &out, `
buy n
move e1 e2
commit e1
place d3
missile
`)

	want := []string{
		"ok placing Knight (3): d3",
		"rejected: moves are disabled while a purchase is pending",
		"rejected: place on e1: square must be empty and owned by the active side",
		"ok White places Knight on d3 for 3; Black to act",
		"rejected: missile costs 4, Black has 0: insufficient coins",
	}
	if strings.Join(lines, "\n") != strings.Join(want, "\n") {
		t.Errorf("got:\n%s\nwant:\n%s", strings.Join(lines, "\n"), strings.Join(want, "\n"))
	}
}

func TestCancel(t *testing.T) {
	var out bytes.Buffer
	g := game.New()
	st := g.State()
	st.Coins = [2]int{4, 0}
	if err := g.Restore(st); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	c := newConsole(g, &out)

	lines := run(t, c, &out, "missile\ncancel\nstatus\n")
	if lines[1] != "ok cancelled" {
		t.Errorf("cancel -> %q", lines[1])
	}
	if lines[2] != "ok turn White, coins 4/0, shop inactive, last none" {
		t.Errorf("status -> %q", lines[2])
	}
}

func TestPersistenceCommands(t *testing.T) {
	store, err := storage.OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory failed: %v", err)
	}
	defer store.Close()

	var out bytes.Buffer
	g := game.New()
	c := newConsole(g, &out, session.WithStore(store))

	lines := run(t, c, &out, "new\nmove e2 e4\nsave opening\n")
	if !strings.HasPrefix(lines[2], "ok saved ") {
		t.Fatalf("save -> %q", lines[2])
	}
	id := strings.TrimPrefix(lines[2], "ok saved ")
	saved := g.State()

	auto, err := store.LoadAutosave()
	if err != nil {
		t.Fatalf("LoadAutosave failed: %v", err)
	}
	if auto != saved {
		t.Error("autosave does not match the game after the move")
	}

	lines = run(t, c, &out, "new\nload "+id+"\n")
	if lines[1] != "ok loaded, Black to act" || g.State() != saved {
		t.Errorf("load -> %q, state restored=%v", lines[1], g.State() == saved)
	}

	lines = run(t, c, &out, "games\nstats\n")
	if len(lines) != 3 {
		t.Fatalf("games/stats output:\n%s", strings.Join(lines, "\n"))
	}
	if !strings.HasPrefix(lines[0], id) || !strings.Contains(lines[0], "opening") {
		t.Errorf("games listing = %q", lines[0])
	}
	if lines[1] != "ok 1 saved games" {
		t.Errorf("games -> %q", lines[1])
	}
	if lines[2] != "ok games 2, moves 1, captures 0, promotions 0, bought 0, missiles 0, spent 0" {
		t.Errorf("stats -> %q", lines[2])
	}

	lines = run(t, c, &out, "load 00000000-0000-0000-0000-000000000000\n")
	if !strings.HasPrefix(lines[0], "error: ") {
		t.Errorf("load of a missing game -> %q", lines[0])
	}
}

func TestRender(t *testing.T) {
	g := game.New()
	if err := g.AttemptMove(board.E2, board.E4); err != nil {
		t.Fatalf("AttemptMove failed: %v", err)
	}
	out := Render(g)

	for _, want := range []string{
		"8 r n b q k b n r   8 b b b b b b b b",
		"4 . . . . P . . .   4 . . . . w . . .",
		"2 P P P P . P P P   2 w w w w . w w w",
		"Black to act",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
}
