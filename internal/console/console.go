// Package console drives a game over a line-oriented text protocol.
//
// One command per line. Replies start with "ok" on success, "rejected:" when
// the rules refuse an action and "error:" for malformed input or storage
// failures.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hailam/occupychess/internal/board"
	"github.com/hailam/occupychess/internal/game"
	"github.com/hailam/occupychess/internal/session"
)

// Console implements the text protocol for one session. Logging, statistics
// and autosave happen in the session, as they do for the graphical front end.
type Console struct {
	session *session.Session
	game    *game.Game
	out     io.Writer
}

// New creates a console for s writing replies to out.
func New(s *session.Session, out io.Writer) *Console {
	return &Console{
		session: s,
		game:    s.Game(),
		out:     out,
	}
}

// Run reads commands from in until "quit" or end of input.
func (c *Console) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !c.Execute(line) {
			return nil
		}
	}
	return scanner.Err()
}

// Execute handles one command line. It returns false after "quit".
func (c *Console) Execute(line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "new":
		c.handleNew()
	case "select":
		c.handleSelect(args)
	case "move":
		c.handleMove(args)
	case "buy":
		c.handleBuy(args)
	case "missile":
		c.handleMissile()
	case "cancel":
		c.session.Cancel()
		c.reply("ok cancelled")
	case "commit", "place", "fire":
		c.handleCommit(args)
	case "show", "d":
		fmt.Fprint(c.out, Render(c.game))
	case "coins":
		c.reply("ok White %d Black %d", c.game.Coins(board.White), c.game.Coins(board.Black))
	case "status":
		c.handleStatus()
	case "save":
		c.handleSave(args)
	case "load":
		c.handleLoad(args)
	case "games":
		c.handleGames()
	case "stats":
		c.handleStats()
	case "help":
		c.handleHelp()
	case "quit", "exit":
		c.reply("ok bye")
		return false
	default:
		c.reply("error: unknown command %q", cmd)
	}
	return true
}

func (c *Console) reply(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

func (c *Console) reject(err error) {
	c.reply("rejected: %v", err)
}

// parseSquares converts algebraic arguments, accepting "e2 e4" or "e2e4".
func parseSquares(args []string, n int) ([]board.Square, error) {
	if n == 2 && len(args) == 1 && len(args[0]) == 4 {
		args = []string{args[0][:2], args[0][2:]}
	}
	if len(args) != n {
		return nil, fmt.Errorf("expected %d square(s), got %d", n, len(args))
	}
	squares := make([]board.Square, n)
	for i, a := range args {
		sq, err := board.ParseSquare(strings.ToLower(a))
		if err != nil {
			return nil, err
		}
		squares[i] = sq
	}
	return squares, nil
}

func (c *Console) handleNew() {
	c.session.NewGame()
	c.reply("ok new game, %v to act", c.game.Turn())
}

func (c *Console) handleSelect(args []string) {
	squares, err := parseSquares(args, 1)
	if err != nil {
		c.reply("error: %v", err)
		return
	}
	moves := c.game.Select(squares[0])
	if sel, _ := c.game.Selected(); sel == board.NoSquare {
		c.reply("ok nothing selected")
		return
	}
	c.reply("ok %v: %v", squares[0], formatSet(moves))
}

func (c *Console) handleMove(args []string) {
	squares, err := parseSquares(args, 2)
	if err != nil {
		c.reply("error: %v", err)
		return
	}
	ev, err := c.session.Move(squares[0], squares[1])
	if err != nil {
		c.reject(err)
		return
	}
	c.completed(ev)
}

func (c *Console) handleBuy(args []string) {
	if len(args) != 1 {
		c.reply("error: usage: buy <pawn|knight|bishop|rook|queen>")
		return
	}
	pt, ok := board.ParsePieceType(args[0])
	if !ok {
		c.reply("error: unknown piece %q", args[0])
		return
	}
	if err := c.session.Buy(pt); err != nil {
		c.reject(err)
		return
	}
	c.reply("ok %v (%d): %v", c.game.Shop(), c.game.Shop().Price(), formatSet(c.game.PlaceableSquares()))
}

func (c *Console) handleMissile() {
	if err := c.session.Missile(); err != nil {
		c.reject(err)
		return
	}
	c.reply("ok %v (%d): %v", c.game.Shop(), c.game.Shop().Price(), formatSet(c.game.TargetableSquares()))
}

func (c *Console) handleCommit(args []string) {
	squares, err := parseSquares(args, 1)
	if err != nil {
		c.reply("error: %v", err)
		return
	}
	ev, err := c.session.Commit(squares[0])
	if err != nil {
		c.reject(err)
		return
	}
	c.completed(ev)
}

func (c *Console) completed(ev game.Event) {
	c.reply("ok %v; %v to act", ev, c.game.Turn())
}

func (c *Console) handleStatus() {
	last := "none"
	if ev, ok := c.game.LastEvent(); ok {
		last = ev.String()
	}
	c.reply("ok turn %v, coins %d/%d, shop %v, last %s",
		c.game.Turn(), c.game.Coins(board.White), c.game.Coins(board.Black), c.game.Shop(), last)
}

func (c *Console) handleSave(args []string) {
	id, err := c.session.Save(strings.Join(args, " "))
	if err != nil {
		c.reply("error: %v", err)
		return
	}
	c.reply("ok saved %s", id)
}

func (c *Console) handleLoad(args []string) {
	if !c.session.HasStore() {
		c.reply("error: %v", session.ErrNoStore)
		return
	}
	if len(args) != 1 {
		c.reply("error: usage: load <id|autosave>")
		return
	}

	var err error
	if strings.EqualFold(args[0], "autosave") {
		err = c.session.Resume()
	} else {
		err = c.session.Load(args[0])
	}
	if err != nil {
		c.reply("error: %v", err)
		return
	}
	c.reply("ok loaded, %v to act", c.game.Turn())
}

func (c *Console) handleGames() {
	games, err := c.session.SavedGames()
	if err != nil {
		c.reply("error: %v", err)
		return
	}
	for _, g := range games {
		fmt.Fprintf(c.out, "%s  %s  %s  %v to act  coins %d/%d\n",
			g.ID, g.SavedAt.Format("2006-01-02 15:04"), g.Name, g.Turn, g.Coins[0], g.Coins[1])
	}
	c.reply("ok %d saved games", len(games))
}

func (c *Console) handleStats() {
	st, err := c.session.Stats()
	if err != nil {
		c.reply("error: %v", err)
		return
	}
	c.reply("ok games %d, moves %d, captures %d, promotions %d, bought %d, missiles %d, spent %d",
		st.GamesStarted, st.Moves, st.Captures, st.Promotions, st.TotalBought(), st.MissilesFired, st.CoinsSpent)
}

func (c *Console) handleHelp() {
	fmt.Fprint(c.out, `commands:
  new                       start over
  select <sq>               list destinations for the piece on sq
  move <from> <to>          move a piece (also "move e2e4")
  buy <piece>               pawn 1, knight 3, bishop 3, rook 5, queen 9
  missile                   target an owned square for 4 coins
  cancel                    abandon a pending purchase
  commit <sq>               place the bought piece or fire (aliases place, fire)
  show | d                  print the board and ownership
  coins | status            balances, turn and shop state
  save [name] | load <id|autosave> | games | stats
  quit
`)
	c.reply("ok")
}

func formatSet(s board.SquareSet) string {
	if s.IsEmpty() {
		return "none"
	}
	return s.String()
}
