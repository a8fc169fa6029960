package mines

import (
	"fmt"
	"time"
)

type OutcomeKind int8

const (
	Continue OutcomeKind = iota
	Win
	Loss
)

func (k OutcomeKind) String() string {
	switch k {
	case Continue:
		return "continue"
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return "unknown"
	}
}

// Outcome is the result of a player action. Elapsed is set for a win,
// MinesLeft for a loss. The zero value is Continue.
type Outcome struct {
	Kind      OutcomeKind
	Elapsed   time.Duration
	MinesLeft int
}

// Ended reports whether the outcome finishes the game.
func (o Outcome) Ended() bool {
	return o.Kind != Continue
}

func (o Outcome) String() string {
	switch o.Kind {
	case Win:
		return fmt.Sprintf("win after %s", o.Elapsed.Round(time.Millisecond))
	case Loss:
		return fmt.Sprintf("loss with %d mines left", o.MinesLeft)
	default:
		return o.Kind.String()
	}
}
