package ui

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-term/internal/mines"
)

const (
	pageMenu       = "menu"
	pageDifficulty = "difficulty"
	pageGame       = "game"
	pageDialog     = "dialog"
	pageQuit       = "quit"
)

type Options struct {
	Presets []mines.Difficulty
	Rand    *rand.Rand
	Logger  *logrus.Logger
	// Screen replaces the terminal, e.g. with a simulation screen.
	Screen tcell.Screen
}

// App is the terminal front end: a main menu, a difficulty list and one
// game at a time, with dialogs stacked on top.
type App struct {
	app     *tview.Application
	pages   *tview.Pages
	presets []mines.Difficulty
	rnd     *rand.Rand
	log     *logrus.Logger

	game *mines.Game
}

func New(opts Options) *App {
	a := &App{
		app:     tview.NewApplication(),
		pages:   tview.NewPages(),
		presets: opts.Presets,
		rnd:     opts.Rand,
		log:     opts.Logger,
	}
	if a.presets == nil {
		a.presets = mines.Difficulties
	}
	if a.log == nil {
		a.log = logrus.StandardLogger()
	}
	if opts.Screen != nil {
		a.app.SetScreen(opts.Screen)
	}

	a.pages.AddPage(pageMenu, a.menu(), true, true)
	a.app.SetRoot(a.pages, true).EnableMouse(true)
	a.app.SetInputCapture(a.captureQuit)

	return a
}

// Run blocks until the player quits, Stop is called or ctx is done.
func (a *App) Run(ctx context.Context) error {
	// Stop is a no-op until the screen is up, so the watch on ctx starts
	// with the first frame.
	var once sync.Once
	stop := func() bool { return true }
	a.app.SetAfterDrawFunc(func(tcell.Screen) {
		once.Do(func() {
			stop = context.AfterFunc(ctx, a.app.Stop)
		})
	})
	err := a.app.Run()
	a.app.SetAfterDrawFunc(nil)
	stop()
	return err
}

func (a *App) Stop() {
	a.app.Stop()
}

func (a *App) captureQuit(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyCtrlC ||
		event.Key() == tcell.KeyRune && event.Rune() == 'q' {
		a.confirmQuit()
		return nil
	}
	return event
}

func (a *App) confirmQuit() {
	if a.pages.HasPage(pageQuit) {
		return
	}
	modal := tview.NewModal().
		SetText("Do you want to quit?").
		AddButtons([]string{"Yes", "No"}).
		SetDoneFunc(func(_ int, label string) {
			if label == "Yes" {
				a.log.Info("quit")
				a.app.Stop()
				return
			}
			a.pages.RemovePage(pageQuit)
		})
	a.pages.AddPage(pageQuit, modal, false, true)
}

// center places p in the middle of the screen at a fixed size.
func center(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
}

func (a *App) menu() tview.Primitive {
	list := tview.NewList().
		ShowSecondaryText(false).
		AddItem("New game", "", 'n', a.showDifficulties).
		AddItem("Exit", "", 'e', a.app.Stop)
	list.SetBorder(true).SetTitle("Minesweeper").SetBorderPadding(1, 1, 2, 2)
	return center(list, 24, 6)
}

func (a *App) showDifficulties() {
	list := tview.NewList()
	for i, d := range a.presets {
		var shortcut rune
		if i < 9 {
			shortcut = rune('1' + i)
		}
		list.AddItem(
			d.Name, fmt.Sprintf("%dx%d, %d mines", d.Width, d.Height, d.MineCount),
			shortcut, func() {
				a.pages.RemovePage(pageDifficulty)
				a.StartGame(d)
			},
		)
	}
	list.AddItem("Back", "", 'b', func() {
		a.pages.RemovePage(pageDifficulty)
	})
	list.SetDoneFunc(func() {
		a.pages.RemovePage(pageDifficulty)
	})
	list.SetBorder(true).SetTitle("Select difficulty")

	a.pages.AddPage(pageDifficulty, center(list, 32, 2*(len(a.presets)+1)+2), true, true)
}

// StartGame generates a board for d and shows it with the controls help
// on top.
func (a *App) StartGame(d mines.Difficulty) {
	board, err := mines.NewBoard(d.GameParams, a.rnd)
	if err != nil {
		a.log.WithError(err).WithField("difficulty", d.Name).Error("unable to create board")
		a.showDialog(err.Error(), nil)
		return
	}

	a.game = mines.NewGame(board)
	a.log.WithFields(logrus.Fields{
		"game":       a.game.ID(),
		"difficulty": d.Name,
		"params":     d.Seed(),
	}).Info("new game")

	view := NewBoardView(a.game, a.endGame, a.closeGame)
	view.SetTitle("Minesweeper: " + d.Name)
	width, height := view.Size()

	quit := tview.NewButton("Quit game").SetSelectedFunc(a.closeGame)
	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(view, height, 0, true).
		AddItem(quit, 1, 0, false)

	a.pages.AddPage(pageGame, center(layout, width, height+1), true, true)
	a.showDialog(controlsHelp, nil)
}

func (a *App) endGame(o mines.Outcome) {
	a.log.WithFields(logrus.Fields{
		"game":     a.game.ID(),
		"outcome":  o.String(),
		"revealed": a.game.Revealed(),
	}).Info("game over")
	a.showDialog(outcomeMessage(o), a.closeGame)
}

func (a *App) closeGame() {
	a.pages.RemovePage(pageDialog)
	a.pages.RemovePage(pageGame)
	a.game = nil
}

// showDialog stacks a message with an Ok button; then runs after it is
// dismissed.
func (a *App) showDialog(text string, then func()) {
	modal := tview.NewModal().
		SetText(text).
		AddButtons([]string{"Ok"}).
		SetDoneFunc(func(int, string) {
			a.pages.RemovePage(pageDialog)
			if then != nil {
				then()
			}
		})
	a.pages.AddPage(pageDialog, modal, false, true)
}
