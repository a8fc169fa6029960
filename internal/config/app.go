package config

import (
	"os"
	"path/filepath"
)

const appName = "minesweeper"

// DefaultPath is where the config file is looked up when no -config flag
// is given.
func DefaultPath() string {
	if path, ok := os.LookupEnv("MINES_CONFIG"); ok {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, appName, "config.json")
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, appName, appName+".log")
}

// Development reports whether DEVELOPMENT is set to anything but "0".
// It is read before the config file so start-up errors are logged in the
// right format.
func Development() bool {
	v, ok := os.LookupEnv("DEVELOPMENT")
	return ok && v != "0"
}
