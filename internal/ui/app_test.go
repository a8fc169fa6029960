package ui

import (
	"context"
	"io"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper-term/internal/mines"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(Options{
		Rand:   rand.New(rand.NewPCG(1, 2)),
		Logger: log,
	})
}

func TestNewShowsMenu(t *testing.T) {
	a := newTestApp(t)
	assert.True(t, a.pages.HasPage(pageMenu))
	assert.Equal(t, mines.Difficulties, a.presets)
	assert.Nil(t, a.game)
}

func TestStartGame(t *testing.T) {
	a := newTestApp(t)
	a.StartGame(mines.Intermediate)

	require.NotNil(t, a.game)
	assert.Equal(t, mines.Intermediate.GameParams, a.game.Board().GameParams)
	assert.True(t, a.pages.HasPage(pageGame))
	assert.True(t, a.pages.HasPage(pageDialog), "controls help is shown")

	name, _ := a.pages.GetFrontPage()
	assert.Equal(t, pageDialog, name)
}

func TestStartGameWithInvalidParams(t *testing.T) {
	a := newTestApp(t)
	a.StartGame(mines.Difficulty{
		Name:       "Broken",
		GameParams: mines.GameParams{Width: 3, Height: 3, MineCount: 9},
	})

	assert.Nil(t, a.game)
	assert.False(t, a.pages.HasPage(pageGame))
	assert.True(t, a.pages.HasPage(pageDialog))
}

func TestEndGameReturnsToMenu(t *testing.T) {
	a := newTestApp(t)
	a.StartGame(mines.Easy)
	a.pages.RemovePage(pageDialog)

	a.endGame(mines.Outcome{Kind: mines.Loss, MinesLeft: 10})
	assert.True(t, a.pages.HasPage(pageDialog))

	a.closeGame()
	assert.False(t, a.pages.HasPage(pageDialog))
	assert.False(t, a.pages.HasPage(pageGame))
	assert.Nil(t, a.game)

	name, _ := a.pages.GetFrontPage()
	assert.Equal(t, pageMenu, name)
}

func TestShowDifficulties(t *testing.T) {
	a := newTestApp(t)
	a.showDifficulties()
	assert.True(t, a.pages.HasPage(pageDifficulty))
}

func TestCaptureQuit(t *testing.T) {
	a := newTestApp(t)

	c := tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone)
	assert.Same(t, c, a.captureQuit(c))
	assert.False(t, a.pages.HasPage(pageQuit))

	assert.Nil(t, a.captureQuit(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.True(t, a.pages.HasPage(pageQuit))

	assert.Nil(t, a.captureQuit(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	assert.Len(t, a.pages.GetPageNames(false), 2, "one quit dialog at a time")
}

func TestRunReturnsWhenContextIsDone(t *testing.T) {
	tests := []struct {
		name   string
		cancel func(context.CancelFunc)
	}{
		{"before start", func(cancel context.CancelFunc) { cancel() }},
		{"while running", func(cancel context.CancelFunc) {
			time.AfterFunc(50*time.Millisecond, cancel)
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			log := logrus.New()
			log.SetOutput(io.Discard)
			a := New(Options{
				Rand:   rand.New(rand.NewPCG(1, 2)),
				Logger: log,
				Screen: tcell.NewSimulationScreen("UTF-8"),
			})

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			test.cancel(cancel)

			done := make(chan error, 1)
			go func() { done <- a.Run(ctx) }()

			select {
			case err := <-done:
				assert.NoError(t, err)
			case <-time.After(5 * time.Second):
				t.Fatal("Run did not return")
			}
		})
	}
}
