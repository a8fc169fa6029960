package ui

import (
	"fmt"
	"time"

	"github.com/vancomm/minesweeper-term/internal/mines"
)

const controlsHelp = `Controls:
Reveal cell:                  left click   / c
Mark as mine:                 right-click  / x
Reveal nearby unmarked cells: middle-click / z
Move around:                  arrow keys   / h j k l
Leave the game:               Esc`

func lossMessage(minesLeft int) string {
	plural := "s"
	if minesLeft == 1 {
		plural = ""
	}
	return fmt.Sprintf("YOU LOST! You had %d mine%s left to clear", minesLeft, plural)
}

func winMessage(elapsed time.Duration) string {
	return fmt.Sprintf("YOU WON! It took you %.3fs", elapsed.Seconds())
}

func outcomeMessage(o mines.Outcome) string {
	switch o.Kind {
	case mines.Win:
		return winMessage(o.Elapsed)
	case mines.Loss:
		return lossMessage(o.MinesLeft)
	default:
		return ""
	}
}
