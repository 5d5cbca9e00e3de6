package internal

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// WorkspaceInfo describes one workspace storage entry.
type WorkspaceInfo struct {
	ID        string // directory name under workspaceStorage
	Folder    string // folder path from workspace.json, may be empty
	StorePath string // path to the workspace's state database
}

// HasStore reports whether the workspace's state database exists.
func (w *WorkspaceInfo) HasStore() bool {
	_, err := os.Stat(w.StorePath)
	return err == nil
}

// ListWorkspaces enumerates all workspaces under the storage base
// path, in directory-listing order. The order is stable across runs;
// callers rely on it for deterministic export output. A missing
// workspaceStorage directory yields an empty list.
func ListWorkspaces(basePath string) ([]*WorkspaceInfo, error) {
	workspaceStorage := filepath.Join(basePath, "workspaceStorage")

	entries, err := os.ReadDir(workspaceStorage)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &StoreReadError{Path: workspaceStorage, Op: "read", Err: err}
	}

	var workspaces []*WorkspaceInfo
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		workspaces = append(workspaces, workspaceInfo(workspaceStorage, entry.Name()))
	}

	return workspaces, nil
}

// FindWorkspace resolves a single workspace by id.
func FindWorkspace(basePath, workspaceID string) (*WorkspaceInfo, error) {
	workspaceStorage := filepath.Join(basePath, "workspaceStorage")
	dir := filepath.Join(workspaceStorage, workspaceID)

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, &NotFoundError{Resource: "workspace", WorkspaceID: workspaceID}
	}

	return workspaceInfo(workspaceStorage, workspaceID), nil
}

func workspaceInfo(workspaceStorage, id string) *WorkspaceInfo {
	dir := filepath.Join(workspaceStorage, id)
	return &WorkspaceInfo{
		ID:        id,
		Folder:    readWorkspaceFolder(filepath.Join(dir, "workspace.json")),
		StorePath: filepath.Join(dir, "state.vscdb"),
	}
}

// readWorkspaceFolder reads the optional workspace.json sibling file.
// An unreadable or absent file is not an error; the workspace just has
// no folder reference.
func readWorkspaceFolder(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	var meta struct {
		Folder string `json:"folder"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		LogDebug("unreadable workspace.json at %s: %v", path, err)
		return ""
	}

	return strings.TrimPrefix(meta.Folder, "file://")
}
