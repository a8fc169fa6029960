package mines

import (
	"strconv"
	"strings"
)

type CellState int8

const (
	Unrevealed    CellState = -2
	Flagged       CellState = -1
	CorrectFlag   CellState = 64 // post-game-over
	Detonated     CellState = 65
	WrongFlag     CellState = 66
	UnflaggedMine CellState = 67
	// 0-8 for a revealed cell with given number of mined neighbours
)

// Revealed reports whether s is an opened cell with a mine count.
func (s CellState) Revealed() bool {
	return 0 <= s && s <= 8
}

func (s CellState) String() string {
	switch {
	case s == Unrevealed:
		return " "
	case s == Flagged:
		return "*"
	case s.Revealed():
		return strconv.Itoa(int(s))
	case s == Detonated:
		return "X"
	case s == CorrectFlag:
		return "+"
	case s == WrongFlag:
		return "-"
	case s == UnflaggedMine:
		return "o"
	default:
		return "!"
	}
}

// Grid is a row-major overlay of player-visible cell states.
type Grid []CellState

// ToString lays g out in rows of width cells for debug logs. A trailing
// partial row is kept.
func (g Grid) ToString(width int) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	for i, s := range g {
		b.WriteString(s.String())
		b.WriteByte(' ')
		if (i+1)%width == 0 || i == len(g)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
