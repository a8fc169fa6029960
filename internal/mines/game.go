package mines

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Status int8

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Game is a single session: the board plus everything the player has
// done to it. Once the status leaves Playing every action is a no-op.
//
// A Game is not safe for concurrent use.
type Game struct {
	id      string
	board   *Board
	overlay Grid /* player knowledge */
	focus   Point

	flags    int
	revealed int
	status   Status

	now       func() time.Time
	startedAt time.Time
	elapsed   time.Duration
}

type Option func(*Game)

// WithClock replaces time.Now as the source of the elapsed time.
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.now = now
	}
}

func NewGame(board *Board, opts ...Option) *Game {
	g := &Game{
		id:      uuid.New().String()[:8],
		board:   board,
		overlay: repeat(Unrevealed, board.Cells()),
		focus:   Point{board.Width / 2, board.Height / 2},
		status:  Playing,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID is a short random tag that tells games apart in the logs.
func (g *Game) ID() string {
	return g.id
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) Status() Status {
	return g.status
}

func (g *Game) Ended() bool {
	return g.status != Playing
}

// MinesLeft is the mine count minus the flags placed, whether or not the
// flags are correct. It goes negative when the player over-flags.
func (g *Game) MinesLeft() int {
	return g.board.MineCount - g.flags
}

// Revealed is the number of safe cells opened so far.
func (g *Game) Revealed() int {
	return g.revealed
}

// Elapsed measures from the first successful reveal; it stops at a win.
func (g *Game) Elapsed() time.Duration {
	switch {
	case g.status == Won:
		return g.elapsed
	case g.revealed == 0:
		return 0
	default:
		return g.now().Sub(g.startedAt)
	}
}

// State returns the player-visible state of p, or Unrevealed off the board.
func (g *Game) State(p Point) CellState {
	if !g.board.Contains(p) {
		return Unrevealed
	}
	return g.overlay[g.board.index(p)]
}

func (g *Game) Focus() Point {
	return g.focus
}

// SetFocus moves the cursor to p if p is on the board.
func (g *Game) SetFocus(p Point) bool {
	if !g.board.Contains(p) {
		return false
	}
	g.focus = p
	return true
}

// Move shifts the cursor one cell, stopping at the board edges.
func (g *Game) Move(dir Direction) {
	dx, dy := dir.delta()
	g.focus = Point{
		X: clamp(g.focus.X+dx, 0, g.board.Width-1),
		Y: clamp(g.focus.Y+dy, 0, g.board.Height-1),
	}
}

func (g *Game) Reveal(p Point) Outcome {
	if g.Ended() || !g.board.Contains(p) || g.overlay[g.board.index(p)] != Unrevealed {
		return Outcome{}
	}

	if g.open(p) {
		Log.WithFields(logrus.Fields{
			"game":      g.id,
			"cell":      p.String(),
			"minesLeft": g.MinesLeft(),
			"revealed":  g.revealed,
		}).Info("game lost")
		Log.WithField("game", g.id).Debugf("final grid:\n%s", g.Postmortem().ToString(g.board.Width))
		return Outcome{Kind: Loss, MinesLeft: g.MinesLeft()}
	}

	if g.revealed == g.board.Cells()-g.board.MineCount {
		g.status = Won
		g.elapsed = g.now().Sub(g.startedAt)
		Log.WithFields(logrus.Fields{
			"game":    g.id,
			"params":  g.board.Seed(),
			"elapsed": g.elapsed.String(),
		}).Info("game won")
		return Outcome{Kind: Win, Elapsed: g.elapsed}
	}

	return Outcome{}
}

// open reveals p and, through zero-count cells, everything connected to
// it. It returns true if a mine went off, in which case the fill stops
// right there.
func (g *Game) open(p Point) (detonated bool) {
	todo := []Point{p}
	for len(todo) > 0 {
		q := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		i := g.board.index(q)
		if g.overlay[i] != Unrevealed {
			continue
		}

		c := g.board.cells[i]
		if c.Mine {
			g.overlay[i] = Detonated
			g.status = Lost
			return true
		}

		g.overlay[i] = CellState(c.Surrounding)
		if g.revealed == 0 {
			g.startedAt = g.now()
		}
		g.revealed++

		if c.Surrounding == 0 {
			todo = append(todo, g.board.Neighbours(q)...)
		}
	}
	return false
}

// Flag toggles a flag on an unrevealed cell. It never ends the game.
func (g *Game) Flag(p Point) Outcome {
	if g.Ended() || !g.board.Contains(p) {
		return Outcome{}
	}

	i := g.board.index(p)
	switch g.overlay[i] {
	case Unrevealed:
		g.overlay[i] = Flagged
		g.flags++
	case Flagged:
		g.overlay[i] = Unrevealed
		g.flags--
	}
	return Outcome{}
}

// Chord reveals every neighbour of a numbered cell once the player has
// flagged as many neighbours as the number says.
func (g *Game) Chord(p Point) Outcome {
	if g.Ended() || !g.board.Contains(p) {
		return Outcome{}
	}

	n := g.State(p)
	if !n.Revealed() {
		return Outcome{}
	}

	ns := g.board.Neighbours(p)
	flagged := 0
	for _, q := range ns {
		flagged += iif(g.State(q) == Flagged, 1, 0)
	}
	if flagged != int(n) {
		return Outcome{}
	}

	result := Outcome{}
	for _, q := range ns {
		o := g.Reveal(q)
		if o.Kind == Loss {
			return o
		}
		if o.Ended() {
			result = o
		}
	}
	return result
}

// Postmortem is the overlay as shown once the game is over: flags are
// marked right or wrong, hidden mines are exposed and hidden safe cells
// show their counts. The game itself is left untouched.
func (g *Game) Postmortem() Grid {
	grid := make(Grid, len(g.overlay))
	copy(grid, g.overlay)
	for i, c := range g.board.cells {
		switch grid[i] {
		case Flagged:
			grid[i] = iif(c.Mine, CorrectFlag, WrongFlag)
		case Unrevealed:
			grid[i] = iif(c.Mine, UnflaggedMine, CellState(c.Surrounding))
		}
	}
	return grid
}
