package mines

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxSide bounds both board dimensions; nothing larger fits a terminal.
const MaxSide = 1000

type GameParams struct {
	Width     int `json:"width" yaml:"width"`
	Height    int `json:"height" yaml:"height"`
	MineCount int `json:"mines" yaml:"mines"`
}

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

func (p GameParams) Cells() int {
	return p.Width * p.Height
}

// Seed encodes params as "width:height:mines".
func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseSeed(seed string) (*GameParams, error) {
	fields := strings.Split(seed, ":")
	if len(fields) != 3 {
		return nil, fmt.Errorf("invalid game params seed %q: want width:height:mines", seed)
	}

	var values [3]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid game params seed %q: %w", seed, err)
		}
		values[i] = v
	}

	p := &GameParams{Width: values[0], Height: values[1], MineCount: values[2]}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate reports a *ParamsError unless both sides are in 1..MaxSide and
// there are strictly fewer mines than cells.
func (p GameParams) Validate() error {
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return &ParamsError{Params: p, Reason: "width and height must be positive"}
	case p.Width > MaxSide || p.Height > MaxSide:
		return &ParamsError{Params: p, Reason: fmt.Sprintf("width and height must not exceed %d", MaxSide)}
	case p.MineCount < 0:
		return &ParamsError{Params: p, Reason: "mine count must not be negative"}
	case p.MineCount >= p.Cells():
		return &ParamsError{Params: p, Reason: "mine count must be less than the number of cells"}
	}
	return nil
}

func (p GameParams) PointInBounds(pt Point) bool {
	return 0 <= pt.X && pt.X < p.Width && 0 <= pt.Y && pt.Y < p.Height
}

type Difficulty struct {
	Name       string `json:"name" yaml:"name"`
	GameParams `yaml:",inline"`
}

func (d Difficulty) String() string {
	return fmt.Sprintf("%s (%dx%d, %d mines)", d.Name, d.Width, d.Height, d.MineCount)
}

var (
	Easy         = Difficulty{"Easy", GameParams{Width: 9, Height: 9, MineCount: 10}}
	Intermediate = Difficulty{"Intermediate", GameParams{Width: 16, Height: 16, MineCount: 40}}
	Expert       = Difficulty{"Expert", GameParams{Width: 30, Height: 16, MineCount: 99}}
)

// Difficulties is the preset catalog in menu order.
var Difficulties = []Difficulty{Easy, Intermediate, Expert}

// DifficultyByName looks name up in presets, ignoring case.
func DifficultyByName(presets []Difficulty, name string) (Difficulty, bool) {
	for _, d := range presets {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return Difficulty{}, false
}
