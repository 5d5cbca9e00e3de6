// Package testutil builds throwaway Cursor storage trees for tests.
package testutil

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// Well-known ItemTable keys, mirrored from the store layer.
const (
	ComposerDataKey = "composer.composerData"
	ChatDataKey     = "workbench.panel.aichat.view.aichat.chatdata"
)

// CreateStorageDir creates an empty storage base path containing a
// workspaceStorage directory, cleaned up with the test.
func CreateStorageDir(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "workspaceStorage"), 0o755); err != nil {
		t.Fatalf("Failed to create workspaceStorage: %v", err)
	}
	return base
}

// AddWorkspace creates one workspace directory with an optional
// workspace.json and returns the directory path. No store database is
// created; use SeedWorkspaceStore for that.
func AddWorkspace(t *testing.T, basePath, workspaceID, folder string) string {
	t.Helper()
	dir := filepath.Join(basePath, "workspaceStorage", workspaceID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("Failed to create workspace dir: %v", err)
	}

	if folder != "" {
		meta, err := json.Marshal(map[string]string{"folder": folder})
		if err != nil {
			t.Fatalf("Failed to marshal workspace.json: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, "workspace.json"), meta, 0o644); err != nil {
			t.Fatalf("Failed to write workspace.json: %v", err)
		}
	}

	return dir
}

// SeedWorkspaceStore creates the workspace's state database and stores
// the given key/value pairs in ItemTable.
func SeedWorkspaceStore(t *testing.T, workspaceDir string, items map[string]string) {
	t.Helper()
	dbPath := filepath.Join(workspaceDir, "state.vscdb")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to create state database: %v", err)
	}
	defer func() { _ = db.Close() }()

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS ItemTable (
		key TEXT PRIMARY KEY,
		value BLOB
	)`
	if _, err := db.Exec(createTableSQL); err != nil {
		t.Fatalf("Failed to create ItemTable: %v", err)
	}

	for key, value := range items {
		if _, err := db.Exec("INSERT OR REPLACE INTO ItemTable (key, value) VALUES (?, ?)", key, value); err != nil {
			t.Fatalf("Failed to insert item %s: %v", key, err)
		}
	}
}

// CorruptWorkspaceStore writes garbage where the state database should
// be, so opening it fails.
func CorruptWorkspaceStore(t *testing.T, workspaceDir string) {
	t.Helper()
	dbPath := filepath.Join(workspaceDir, "state.vscdb")
	if err := os.WriteFile(dbPath, []byte("not a sqlite database"), 0o644); err != nil {
		t.Fatalf("Failed to write corrupt store: %v", err)
	}
}
