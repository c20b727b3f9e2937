// Package configfile locates the docfile configuration file.
package configfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Name is the file searched for in each directory.
const Name = ".docfile.yaml"

// ErrNotFound is returned when no configuration file was found.
var ErrNotFound = errors.New(Name + " not found")

// Find returns explicitPath if set, otherwise the nearest Name found by
// walking up from startDir. The walk stops after the home directory, a
// directory containing .git, or the filesystem root.
func Find(startDir, explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %w", err)
		}
		return explicitPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(currentDir, Name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		if currentDir == homeDir {
			break
		}

		if _, err := os.Stat(filepath.Join(currentDir, ".git")); err == nil {
			break
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", ErrNotFound
}
