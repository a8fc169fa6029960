package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/vancomm/minesweeper-term/internal/mines"
)

// BoardView draws a game and turns key and mouse events into game
// actions. Each cell takes two columns.
type BoardView struct {
	*tview.Box

	game  *mines.Game
	onEnd func(mines.Outcome)
	onEsc func()
}

func NewBoardView(game *mines.Game, onEnd func(mines.Outcome), onEsc func()) *BoardView {
	return &BoardView{
		Box:   tview.NewBox().SetBorder(true),
		game:  game,
		onEnd: onEnd,
		onEsc: onEsc,
	}
}

// statusWidth fits "Mines left: " and a three digit count.
const statusWidth = 16

// Size is the outer size of the view, border included.
func (v *BoardView) Size() (width, height int) {
	w, h := v.game.Board().Size()
	return max(w*2, statusWidth) + 2, h + 2 + 2
}

func (v *BoardView) state(p mines.Point, postmortem mines.Grid) mines.CellState {
	if postmortem != nil {
		return postmortem[p.Y*v.game.Board().Width+p.X]
	}
	return v.game.State(p)
}

func (v *BoardView) Draw(screen tcell.Screen) {
	v.DrawForSubclass(screen, v)

	x, y, width, _ := v.GetInnerRect()
	board := v.game.Board()
	focus := v.game.Focus()

	var postmortem mines.Grid
	if v.game.Status() == mines.Lost {
		postmortem = v.game.Postmortem()
	}

	for row := range board.Height {
		for col := range board.Width {
			p := mines.Point{X: col, Y: row}
			s := v.state(p, postmortem)
			style := cellStyle(s, p == focus)
			for i, r := range cellText(s) {
				screen.SetContent(x+col*2+i, y+row, r, nil, style)
			}
		}
	}

	tview.Print(
		screen, fmt.Sprintf("Mines left: %d", v.game.MinesLeft()),
		x, y+board.Height+1, width, tview.AlignLeft, tview.Styles.PrimaryTextColor,
	)
}

// cellAt maps a screen position to a board cell.
func (v *BoardView) cellAt(x, y int) (mines.Point, bool) {
	ix, iy, _, _ := v.GetInnerRect()
	if x < ix || y < iy {
		return mines.Point{}, false
	}
	p := mines.Point{X: (x - ix) / 2, Y: y - iy}
	return p, v.game.Board().Contains(p)
}

func (v *BoardView) act(o mines.Outcome) {
	if o.Ended() && v.onEnd != nil {
		v.onEnd(o)
	}
}

func (v *BoardView) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return v.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		switch event.Key() {
		case tcell.KeyUp:
			v.game.Move(mines.Up)
		case tcell.KeyDown:
			v.game.Move(mines.Down)
		case tcell.KeyLeft:
			v.game.Move(mines.Left)
		case tcell.KeyRight:
			v.game.Move(mines.Right)
		case tcell.KeyEscape:
			if v.onEsc != nil {
				v.onEsc()
			}
		case tcell.KeyRune:
			switch event.Rune() {
			case 'c':
				v.act(v.game.Reveal(v.game.Focus()))
			case 'x':
				v.act(v.game.Flag(v.game.Focus()))
			case 'z':
				v.act(v.game.Chord(v.game.Focus()))
			case 'k':
				v.game.Move(mines.Up)
			case 'j':
				v.game.Move(mines.Down)
			case 'h':
				v.game.Move(mines.Left)
			case 'l':
				v.game.Move(mines.Right)
			}
		}
	})
}

// MouseHandler focuses the cell under a button press; releasing the same
// button over the focused cell acts on it.
func (v *BoardView) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return v.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		p, ok := v.cellAt(event.Position())
		if !ok {
			return false, nil
		}

		switch action {
		case tview.MouseLeftDown, tview.MouseRightDown, tview.MouseMiddleDown:
			setFocus(v)
			v.game.SetFocus(p)
			return true, nil
		}

		if p != v.game.Focus() {
			return false, nil
		}

		switch action {
		case tview.MouseLeftUp:
			v.act(v.game.Reveal(p))
		case tview.MouseRightUp:
			v.act(v.game.Flag(p))
		case tview.MouseMiddleUp:
			v.act(v.game.Chord(p))
		default:
			return false, nil
		}
		return true, nil
	})
}
