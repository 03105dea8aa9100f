// Package homedir resolves "~" prefixed paths given on the command line.
package homedir

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
)

// Get returns the home directory of the current user, preferring the
// environment and falling back to the user database.
func Get() (string, error) {
	home, err := os.UserHomeDir()
	if err == nil && home != "" {
		return home, nil
	}
	u, uerr := user.Current()
	if uerr == nil && u.HomeDir != "" {
		return u.HomeDir, nil
	}
	return "", fmt.Errorf("unable to determine home directory: %w", errors.Join(err, uerr))
}

// Expand replaces a leading "~" in path with the home directory of the
// current user. Other paths are returned as-is.
func Expand(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	// "~name" would need a lookup of another user
	if len(path) > 1 && path[1] != '/' && path[1] != '\\' {
		return "", fmt.Errorf("cannot expand user-specific home dir in %q", path)
	}
	home, err := Get()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}
