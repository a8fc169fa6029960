package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper-term/internal/mines"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadMissingFile(t *testing.T) {
	config, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)

	assert.Equal(t, ModeProduction, config.Mode)
	assert.Equal(t, logrus.InfoLevel, config.Level())
	assert.Nil(t, config.Seed)
	assert.Equal(t, mines.Difficulties, config.Presets())
	assert.NotEmpty(t, config.LogFile)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `{
		"mode": "development",
		"log_level": "debug",
		"log_file": "/tmp/mines.log",
		"seed": 42,
		"difficulties": [{"name": "Wide", "width": 40, "height": 10, "mines": 60}]
	}`)

	config, err := Load(path)
	require.NoError(t, err)

	assert.True(t, config.Development())
	assert.False(t, config.Production())
	assert.Equal(t, logrus.DebugLevel, config.Level())
	assert.Equal(t, "/tmp/mines.log", config.LogFile)
	require.NotNil(t, config.Seed)
	assert.Equal(t, uint64(42), *config.Seed)

	presets := config.Presets()
	require.Len(t, presets, 4)
	assert.Equal(t, mines.Difficulty{
		Name:       "Wide",
		GameParams: mines.GameParams{Width: 40, Height: 10, MineCount: 60},
	}, presets[3])
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, `{"log_level": "warn"}`)
	t.Setenv("MINES_LOG_LEVEL", "trace")
	t.Setenv("MINES_LOG_FILE", "/var/tmp/x.log")
	t.Setenv("MINES_SEED", "7")
	t.Setenv("MINES_DIFFICULTY", "expert")
	t.Setenv("DEVELOPMENT", "1")

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, logrus.TraceLevel, config.Level())
	assert.Equal(t, "/var/tmp/x.log", config.LogFile)
	assert.Equal(t, uint64(7), *config.Seed)
	assert.Equal(t, "expert", config.Difficulty)
	assert.True(t, config.Development())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{name: "malformed json", content: `{"mode":`},
		{name: "unknown mode", content: `{"mode": "staging"}`},
		{name: "bad level", content: `{"log_level": "loud"}`},
		{name: "unnamed difficulty", content: `{"difficulties": [{"width": 5, "height": 5, "mines": 1}]}`},
		{name: "too many mines", content: `{"difficulties": [{"name": "x", "width": 2, "height": 2, "mines": 4}]}`},
		{name: "bad seed", content: `{}`, env: map[string]string{"MINES_SEED": "-1"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for k, v := range test.env {
				t.Setenv(k, v)
			}
			_, err := Load(writeConfig(t, test.content))
			assert.Error(t, err)
		})
	}
}

func TestResolveDifficulty(t *testing.T) {
	config := Default()
	config.Difficulties = []mines.Difficulty{
		{Name: "Tiny", GameParams: mines.GameParams{Width: 4, Height: 4, MineCount: 2}},
	}

	d, err := config.ResolveDifficulty("EASY")
	require.NoError(t, err)
	assert.Equal(t, mines.Easy, d)

	d, err = config.ResolveDifficulty("tiny")
	require.NoError(t, err)
	assert.Equal(t, 4, d.Width)

	d, err = config.ResolveDifficulty("12:8:20")
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Width: 12, Height: 8, MineCount: 20}, d.GameParams)

	_, err = config.ResolveDifficulty("impossible")
	assert.Error(t, err)

	_, err = config.ResolveDifficulty("2:2:4")
	assert.ErrorIs(t, err, mines.ErrInvalidParams)
}

func TestFields(t *testing.T) {
	config := Default()
	seed := uint64(3)
	config.Seed = &seed

	fields := config.Fields()
	assert.Equal(t, ModeProduction, fields["mode"])
	assert.Equal(t, uint64(3), fields["seed"])
}

func TestDevelopmentEnv(t *testing.T) {
	t.Setenv("DEVELOPMENT", "0")
	assert.False(t, Development())

	t.Setenv("DEVELOPMENT", "yes")
	assert.True(t, Development())
}

func TestLoadDotEnv(t *testing.T) {
	path := writeConfig(t, `{}`)
	require.NoError(t, os.WriteFile(
		filepath.Join(filepath.Dir(path), ".env"),
		[]byte("MINES_DIFFICULTY=intermediate\nMINES_LOG_LEVEL=error\n"), 0o600,
	))

	t.Setenv("MINES_DIFFICULTY", "")
	require.NoError(t, os.Unsetenv("MINES_DIFFICULTY"))
	t.Setenv("MINES_LOG_LEVEL", "warn")

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "intermediate", config.Difficulty)
	assert.Equal(t, logrus.WarnLevel, config.Level(), "environment wins over .env")
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
mode: development
seed: 9
difficulties:
  - name: Tall
    width: 8
    height: 24
    mines: 30
`), 0o600))

	config, err := Load(path)
	require.NoError(t, err)

	assert.True(t, config.Development())
	require.NotNil(t, config.Seed)
	assert.Equal(t, uint64(9), *config.Seed)
	require.Len(t, config.Difficulties, 1)
	assert.Equal(t, mines.Difficulty{
		Name:       "Tall",
		GameParams: mines.GameParams{Width: 8, Height: 24, MineCount: 30},
	}, config.Difficulties[0])
}
