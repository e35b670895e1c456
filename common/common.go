// Package common holds helpers shared by the commands.
package common

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindProjectRoot finds the nearest directory at or above start holding a
// file called name, and returns the path of that file.
func FindProjectRoot(start, name string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("unable to determine absolute path: %w", err)
	}
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil // Found it, dir is the project root
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // Reached the root directory
		}
		dir = parent
	}
	return "", fmt.Errorf("%s not found in %s or any parent directory", name, start)
}
