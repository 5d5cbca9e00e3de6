package internal

import (
	"errors"
	"testing"

	"github.com/iksnae/cursor-archive/testutil"
)

func TestListWorkspaces_MissingStorage(t *testing.T) {
	workspaces, err := ListWorkspaces(t.TempDir())
	if err != nil {
		t.Fatalf("ListWorkspaces() error = %v", err)
	}
	if workspaces != nil {
		t.Errorf("workspaces = %v, want nil", workspaces)
	}
}

func TestListWorkspaces(t *testing.T) {
	base := testutil.CreateStorageDir(t)
	dirA := testutil.AddWorkspace(t, base, "aaa", "file:///home/user/project-a")
	testutil.SeedWorkspaceStore(t, dirA, map[string]string{})
	testutil.AddWorkspace(t, base, "bbb", "")

	workspaces, err := ListWorkspaces(base)
	if err != nil {
		t.Fatalf("ListWorkspaces() error = %v", err)
	}
	if len(workspaces) != 2 {
		t.Fatalf("got %d workspaces, want 2", len(workspaces))
	}

	// Directory listing order is stable; entries come back sorted.
	if workspaces[0].ID != "aaa" || workspaces[1].ID != "bbb" {
		t.Errorf("order = %s, %s", workspaces[0].ID, workspaces[1].ID)
	}

	if workspaces[0].Folder != "/home/user/project-a" {
		t.Errorf("folder = %q, want file:// prefix stripped", workspaces[0].Folder)
	}
	if !workspaces[0].HasStore() {
		t.Error("workspace aaa HasStore() = false, want true")
	}

	if workspaces[1].Folder != "" {
		t.Errorf("folder = %q, want empty without workspace.json", workspaces[1].Folder)
	}
	if workspaces[1].HasStore() {
		t.Error("workspace bbb HasStore() = true, want false")
	}
}

func TestFindWorkspace(t *testing.T) {
	base := testutil.CreateStorageDir(t)
	dir := testutil.AddWorkspace(t, base, "ws1", "file:///home/user/project")
	testutil.SeedWorkspaceStore(t, dir, map[string]string{})

	ws, err := FindWorkspace(base, "ws1")
	if err != nil {
		t.Fatalf("FindWorkspace() error = %v", err)
	}
	if ws.ID != "ws1" || ws.Folder != "/home/user/project" {
		t.Errorf("workspace = %+v", ws)
	}
	if !ws.HasStore() {
		t.Error("HasStore() = false, want true")
	}
}

func TestFindWorkspace_NotFound(t *testing.T) {
	base := testutil.CreateStorageDir(t)

	_, err := FindWorkspace(base, "nope")
	if err == nil {
		t.Fatal("FindWorkspace() succeeded on a missing workspace")
	}
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %T, want *NotFoundError", err)
	}
	if notFound.Resource != "workspace" {
		t.Errorf("Resource = %q, want workspace", notFound.Resource)
	}
}
