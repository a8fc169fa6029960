package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIif(t *testing.T) {
	assert.Equal(t, 1, iif(true, 1, 0))
	assert.Equal(t, 0, iif(false, 1, 0))
}

func TestRepeat(t *testing.T) {
	assert.Equal(t, []int(nil), repeat(1, 0))
	assert.Equal(t, []int{1, 1, 1}, repeat(1, 3))
	assert.Equal(t, Grid{Unrevealed, Unrevealed}, Grid(repeat(Unrevealed, 2)))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, clamp(-1, 0, 8))
	assert.Equal(t, 8, clamp(9, 0, 8))
	assert.Equal(t, 4, clamp(4, 0, 8))
}
