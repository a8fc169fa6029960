package mines

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

type Cell struct {
	Mine        bool
	Surrounding int // mined neighbours, 0-8
}

// Board is the ground-truth mine layout of a single game. It does not
// change after construction.
type Board struct {
	GameParams
	cells []Cell
}

// NewBoard places params.MineCount mines on distinct cells chosen
// uniformly at random.
func NewBoard(params GameParams, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	width, height, mineCount := params.Unpack()

	/*
	 * Pick mineCount cells off the candidate list: each pick swaps the
	 * chosen candidate out of the live prefix so it cannot be drawn
	 * again.
	 */
	candidates := make([]int, width*height)
	for i := range candidates {
		candidates[i] = i
	}
	k := len(candidates)
	mines := make([]Point, 0, mineCount)
	for range mineCount {
		i := r.IntN(k)
		mines = append(mines, Point{candidates[i] % width, candidates[i] / width})
		k--
		candidates[i] = candidates[k]
	}

	b, err := NewBoardFromMines(width, height, mines)
	if err != nil {
		return nil, err
	}

	Log.WithField("params", params.Seed()).Debugf("generated board:\n%s", b)

	return b, nil
}

// NewBoardFromMines builds a board with mines at exactly the given points.
func NewBoardFromMines(width, height int, mines []Point) (*Board, error) {
	params := GameParams{Width: width, Height: height, MineCount: len(mines)}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	b := &Board{
		GameParams: params,
		cells:      make([]Cell, width*height),
	}

	for _, p := range mines {
		if !b.Contains(p) {
			return nil, &ParamsError{Params: params, Reason: fmt.Sprintf("mine %s out of bounds", p)}
		}
		i := b.index(p)
		if b.cells[i].Mine {
			return nil, &ParamsError{Params: params, Reason: fmt.Sprintf("duplicate mine %s", p)}
		}
		b.cells[i].Mine = true
	}

	for y := range height {
		for x := range width {
			p := Point{x, y}
			if b.cells[b.index(p)].Mine {
				continue
			}
			n := 0
			for _, q := range b.Neighbours(p) {
				n += iif(b.cells[b.index(q)].Mine, 1, 0)
			}
			b.cells[b.index(p)].Surrounding = n
		}
	}

	return b, nil
}

func (b *Board) index(p Point) int {
	return p.Y*b.Width + p.X
}

func (b *Board) Size() (width, height int) {
	return b.Width, b.Height
}

func (b *Board) Contains(p Point) bool {
	return b.PointInBounds(p)
}

// At returns a copy of the cell at p; ok is false when p is off the board.
func (b *Board) At(p Point) (c Cell, ok bool) {
	if !b.Contains(p) {
		return Cell{}, false
	}
	return b.cells[b.index(p)], true
}

// Neighbours returns the in-bounds points around p, excluding p.
func (b *Board) Neighbours(p Point) []Point {
	return neighbours(p, b.Width, b.Height)
}

// Mines lists mined points in row-major order.
func (b *Board) Mines() []Point {
	ps := make([]Point, 0, b.MineCount)
	for i, c := range b.cells {
		if c.Mine {
			ps = append(ps, Point{i % b.Width, i / b.Width})
		}
	}
	return ps
}

// Board implements [fmt.Stringer]
func (b *Board) String() string {
	var s strings.Builder
	for y := range b.Height {
		for x := range b.Width {
			c := b.cells[y*b.Width+x]
			switch {
			case c.Mine:
				s.WriteString("* ")
			case c.Surrounding == 0:
				s.WriteString(". ")
			default:
				fmt.Fprintf(&s, "%d ", c.Surrounding)
			}
		}
		s.WriteString("\n")
	}
	return s.String()
}
