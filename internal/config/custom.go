package config

import (
	"fmt"
	"net/url"

	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper-term/internal/mines"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type customParams struct {
	Name      string `schema:"name"`
	Width     int    `schema:"width,required"`
	Height    int    `schema:"height,required"`
	MineCount int    `schema:"mines,required"`
}

// ParseCustom decodes a difficulty written as a query string, e.g.
// "width=20&height=10&mines=30&name=Wide".
func ParseCustom(query string) (mines.Difficulty, error) {
	values, err := url.ParseQuery(query)
	if err != nil {
		return mines.Difficulty{}, fmt.Errorf("malformed custom difficulty: %w", err)
	}

	var params customParams
	if err := decoder.Decode(&params, values); err != nil {
		return mines.Difficulty{}, fmt.Errorf("invalid custom difficulty: %w", err)
	}

	d := mines.Difficulty{
		Name: params.Name,
		GameParams: mines.GameParams{
			Width:     params.Width,
			Height:    params.Height,
			MineCount: params.MineCount,
		},
	}
	if d.Name == "" {
		d.Name = "Custom"
	}
	if err := d.Validate(); err != nil {
		return mines.Difficulty{}, err
	}
	return d, nil
}
