package internal

import "fmt"

// ValidationError reports a missing or invalid request parameter.
// Always client-facing.
type ValidationError struct {
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s", e.Reason)
}

// NotFoundError reports an absent workspace, store, or conversation.
type NotFoundError struct {
	Resource    string // "workspace", "store", "conversation"
	ID          string
	Type        string
	WorkspaceID string
}

func (e *NotFoundError) Error() string {
	switch e.Resource {
	case "conversation":
		return fmt.Sprintf("conversation not found: id=%s type=%s workspace=%s", e.ID, e.Type, e.WorkspaceID)
	case "store":
		return fmt.Sprintf("no store found for workspace %s", e.WorkspaceID)
	default:
		return fmt.Sprintf("workspace not found: %s", e.WorkspaceID)
	}
}

// StoreReadError reports an I/O failure or a malformed persisted blob.
type StoreReadError struct {
	Path string
	Op   string // "open", "read", "parse"
	Err  error
}

func (e *StoreReadError) Error() string {
	return fmt.Sprintf("store error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StoreReadError) Unwrap() error {
	return e.Err
}
