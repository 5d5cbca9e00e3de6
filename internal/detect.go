package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// StoragePaths holds the detected paths for Cursor storage.
type StoragePaths struct {
	BasePath         string // base Cursor User directory
	WorkspaceStorage string // workspaceStorage directory
}

// DetectStoragePaths detects the Cursor storage location for the
// current operating system.
func DetectStoragePaths() (StoragePaths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return StoragePaths{}, fmt.Errorf("failed to get home directory: %w", err)
	}

	var basePath string
	switch runtime.GOOS {
	case "darwin":
		basePath = filepath.Join(home, "Library/Application Support/Cursor/User")
	case "linux":
		basePath = filepath.Join(home, ".config/Cursor/User")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		basePath = filepath.Join(appData, "Cursor", "User")
	default:
		return StoragePaths{}, fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}

	return StoragePaths{
		BasePath:         basePath,
		WorkspaceStorage: filepath.Join(basePath, "workspaceStorage"),
	}, nil
}

// GetStoragePaths returns storage paths, honoring an explicit override
// before falling back to auto-detection.
func GetStoragePaths(custom string) (StoragePaths, error) {
	if custom != "" {
		return StoragePaths{
			BasePath:         custom,
			WorkspaceStorage: filepath.Join(custom, "workspaceStorage"),
		}, nil
	}
	return DetectStoragePaths()
}
