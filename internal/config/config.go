package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-term/internal/mines"
	"gopkg.in/yaml.v3"
)

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"
)

type Config struct {
	Mode     string `json:"mode" yaml:"mode"`
	LogFile  string `json:"log_file" yaml:"log_file"`
	LogLevel string `json:"log_level" yaml:"log_level"`
	// Difficulty starts a game straight away instead of showing the menu.
	// It is a preset name or a "width:height:mines" seed.
	Difficulty   string             `json:"difficulty" yaml:"difficulty"`
	Seed         *uint64            `json:"seed" yaml:"seed"`
	Difficulties []mines.Difficulty `json:"difficulties" yaml:"difficulties"`
}

func Default() *Config {
	return &Config{
		Mode:     ModeProduction,
		LogFile:  defaultLogFile(),
		LogLevel: logrus.InfoLevel.String(),
	}
}

// Load reads the config file at path on top of the defaults, then applies
// environment overrides. Variables from a .env file next to the config
// fill in whatever the environment does not set. Missing files are not an
// error.
func Load(path string) (*Config, error) {
	config := Default()

	envPath := filepath.Join(filepath.Dir(path), ".env")
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("unable to load %s: %w", envPath, err)
	}

	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("unable to read config %s: %w", path, err)
	default:
		if err := unmarshal(path, b, config); err != nil {
			return nil, fmt.Errorf("unable to parse config %s: %w", path, err)
		}
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// unmarshal decodes YAML for .yaml and .yml files and JSON otherwise.
func unmarshal(path string, b []byte, config *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(b, config)
	default:
		return json.Unmarshal(b, config)
	}
}

func (c *Config) applyEnv() error {
	if Development() {
		c.Mode = ModeDevelopment
	}
	if mode, ok := os.LookupEnv("MINES_MODE"); ok {
		c.Mode = mode
	}
	if logFile, ok := os.LookupEnv("MINES_LOG_FILE"); ok {
		c.LogFile = logFile
	}
	if logLevel, ok := os.LookupEnv("MINES_LOG_LEVEL"); ok {
		c.LogLevel = logLevel
	}
	if difficulty, ok := os.LookupEnv("MINES_DIFFICULTY"); ok {
		c.Difficulty = difficulty
	}
	if seedStr, ok := os.LookupEnv("MINES_SEED"); ok {
		seed, err := strconv.ParseUint(seedStr, 10, 64)
		if err != nil {
			return fmt.Errorf("unable to parse MINES_SEED: %w", err)
		}
		c.Seed = &seed
	}
	return nil
}

func (c Config) Validate() error {
	if c.Mode != ModeProduction && c.Mode != ModeDevelopment {
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	for _, d := range c.Difficulties {
		if strings.TrimSpace(d.Name) == "" {
			return fmt.Errorf("difficulty %s has no name", d.Seed())
		}
		if err := d.Validate(); err != nil {
			return fmt.Errorf("difficulty %s: %w", d.Name, err)
		}
	}
	return nil
}

func (c Config) Production() bool {
	return c.Mode == ModeProduction
}

func (c Config) Development() bool {
	return c.Mode != ModeProduction
}

func (c Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// Presets is the built-in catalog followed by the configured difficulties.
func (c Config) Presets() []mines.Difficulty {
	presets := make([]mines.Difficulty, 0, len(mines.Difficulties)+len(c.Difficulties))
	presets = append(presets, mines.Difficulties...)
	return append(presets, c.Difficulties...)
}

// ResolveDifficulty accepts a preset name or a "width:height:mines" seed.
func (c Config) ResolveDifficulty(name string) (mines.Difficulty, error) {
	if d, ok := mines.DifficultyByName(c.Presets(), name); ok {
		return d, nil
	}
	params, err := mines.ParseSeed(name)
	if err != nil {
		return mines.Difficulty{}, fmt.Errorf("unknown difficulty %q: %w", name, err)
	}
	return mines.Difficulty{Name: "Custom", GameParams: *params}, nil
}

func (c Config) Fields() logrus.Fields {
	fields := logrus.Fields{
		"mode":         c.Mode,
		"log_file":     c.LogFile,
		"log_level":    c.LogLevel,
		"difficulty":   c.Difficulty,
		"difficulties": len(c.Difficulties),
	}
	if c.Seed != nil {
		fields["seed"] = *c.Seed
	}
	return fields
}
