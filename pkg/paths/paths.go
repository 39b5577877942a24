// Package paths provides centralized path handling for modgraft.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppDirName is the directory name for modgraft-specific files
const AppDirName = "modgraft"

// DatabaseFileName is the name of the mod database file
const DatabaseFileName = "mods.db"

// DataDir returns the directory for durable application data.
func DataDir() string {
	return filepath.Join(xdg.DataHome, AppDirName)
}

// ConfigDir returns the directory user configuration is read from.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the directory for logs and other mutable state.
func StateDir() string {
	return filepath.Join(xdg.StateHome, AppDirName)
}

// DatabaseFile returns the default mod database path.
func DatabaseFile() string {
	return filepath.Join(DataDir(), DatabaseFileName)
}
