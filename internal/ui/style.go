package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/vancomm/minesweeper-term/internal/mines"
)

// lowRes picks a colour from the 6x6x6 xterm cube, each component 0-5.
func lowRes(r, g, b int) tcell.Color {
	return tcell.PaletteColor(16 + 36*r + 6*g + b)
}

var numberColors = [9]tcell.Color{
	tcell.ColorSilver,
	lowRes(3, 5, 3),
	lowRes(5, 5, 3),
	lowRes(5, 4, 3),
	lowRes(5, 3, 3),
	lowRes(5, 2, 2),
	lowRes(5, 0, 1),
	lowRes(5, 0, 2),
	lowRes(5, 0, 3),
}

var (
	unrevealedColor = lowRes(3, 3, 3)
	flaggedColor    = lowRes(4, 4, 2)
	wrongFlagColor  = lowRes(5, 2, 2)
)

// cellText is two columns wide.
func cellText(s mines.CellState) string {
	switch {
	case s == mines.Unrevealed:
		return "[]"
	case s == mines.Flagged, s == mines.CorrectFlag:
		return "##"
	case s == 0:
		return "  "
	case s.Revealed():
		return " " + s.String()
	case s == mines.Detonated:
		return " X"
	case s == mines.WrongFlag:
		return "#x"
	case s == mines.UnflaggedMine:
		return " *"
	default:
		return "??"
	}
}

func cellStyle(s mines.CellState, focused bool) tcell.Style {
	if focused {
		bg := tcell.ColorBlack
		if s == mines.Detonated {
			bg = tcell.ColorMaroon
		}
		return tcell.StyleDefault.Foreground(tcell.ColorNavy).Background(bg)
	}

	var bg tcell.Color
	switch {
	case s.Revealed():
		bg = numberColors[s]
	case s == mines.Detonated:
		bg = tcell.ColorMaroon
	case s == mines.Flagged, s == mines.CorrectFlag:
		bg = flaggedColor
	case s == mines.WrongFlag:
		bg = wrongFlagColor
	default:
		bg = unrevealedColor
	}
	return tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(bg)
}
