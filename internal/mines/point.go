package mines

import "fmt"

type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.X, p.Y)
}

type Direction int8

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

func (d Direction) delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, +1
	case Left:
		return -1, 0
	case Right:
		return +1, 0
	}
	return 0, 0
}

// neighbours lists the points of the 3x3 window around p that fit in a
// width x height grid, row by row, leaving p itself out.
func neighbours(p Point, width, height int) []Point {
	ns := make([]Point, 0, 8)
	for dy := -1; dy <= +1; dy++ {
		for dx := -1; dx <= +1; dx++ {
			x, y := p.X+dx, p.Y+dy
			if (dx != 0 || dy != 0) &&
				0 <= x && x < width &&
				0 <= y && y < height {
				ns = append(ns, Point{x, y})
			}
		}
	}
	return ns
}
