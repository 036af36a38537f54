// Package config holds path and environment helpers shared by the catsync commands.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultDatabasePath is the SQLite location used when database.path is unset.
// It lives under $XDG_DATA_HOME when set, otherwise ~/.local/share.
func DefaultDatabasePath() string {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "catsync", "catsync.db")
	}
	return filepath.Join("~", ".local", "share", "catsync", "catsync.db")
}

// ExpandPath resolves a leading ~ to the home directory, then expands $VAR references.
// The path is left untouched when the home directory cannot be determined.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return os.ExpandEnv(path)
}
