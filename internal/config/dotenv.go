package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// DefaultDotEnvPaths are searched, in order, when no explicit .env file is given.
var DefaultDotEnvPaths = []string{
	".env",
	"../.env",
}

// LoadDotEnv loads the first .env file that exists among paths into the process
// environment. Variables already set are not overridden. It returns the loaded path,
// or "" when none of the files exist.
func LoadDotEnv(paths ...string) (string, error) {
	if len(paths) == 0 {
		paths = DefaultDotEnvPaths
	}

	for _, path := range paths {
		path = ExpandPath(path)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return "", fmt.Errorf("failed to stat %s: %w", path, err)
		}

		if err := godotenv.Load(path); err != nil {
			return "", fmt.Errorf("failed to load %s: %w", path, err)
		}
		return path, nil
	}

	return "", nil
}
