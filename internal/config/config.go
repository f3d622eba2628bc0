// Package config resolves the puzzle CLI settings from defaults and the
// environment.
package config

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Environment variables overriding the defaults.
const (
	EnvDatabase   = "PUZZLE_DB"
	EnvDictionary = "PUZZLE_DICT"
	EnvLogLevel   = "PUZZLE_LOG_LEVEL"
)

// Config holds the CLI settings.
type Config struct {
	// DatabasePath is the SQLite anagram index.
	DatabasePath string
	// Dictionary is a doublestar glob of word lists, empty for none.
	Dictionary string
	LogLevel   string
}

// Load returns the defaults overridden by any PUZZLE_* variables set.
func Load() *Config {
	homeDir, _ := os.UserHomeDir()
	puzzleDir := filepath.Join(homeDir, ".puzzlekit")

	c := &Config{
		DatabasePath: filepath.Join(puzzleDir, "anagram.db"),
		LogLevel:     "info",
	}
	if v := os.Getenv(EnvDatabase); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv(EnvDictionary); v != "" {
		c.Dictionary = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}

	return c
}

// Level parses LogLevel, falling back to info when it is not a logrus level.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// EnsureDirectories creates the directory holding the database.
func (c *Config) EnsureDirectories() error {
	return os.MkdirAll(filepath.Dir(c.DatabasePath), 0700)
}
