package internal

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestValidationError(t *testing.T) {
	err := &ValidationError{Param: "type", Reason: "type is required"}
	if got := err.Error(); got != "invalid request: type is required" {
		t.Errorf("Error() = %q", got)
	}

	var target *ValidationError
	if !errors.As(error(err), &target) {
		t.Error("errors.As failed for ValidationError")
	}
}

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name string
		err  *NotFoundError
		want string
	}{
		{
			name: "conversation",
			err:  &NotFoundError{Resource: "conversation", ID: "c1", Type: "chat", WorkspaceID: "ws1"},
			want: "conversation not found: id=c1 type=chat workspace=ws1",
		},
		{
			name: "store",
			err:  &NotFoundError{Resource: "store", WorkspaceID: "ws1"},
			want: "no store found for workspace ws1",
		},
		{
			name: "workspace",
			err:  &NotFoundError{Resource: "workspace", WorkspaceID: "ws1"},
			want: "workspace not found: ws1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStoreReadError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("disk on fire")
	err := &StoreReadError{Path: "/tmp/state.vscdb", Op: "open", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is failed to find the wrapped cause")
	}
	if !strings.Contains(err.Error(), "open") || !strings.Contains(err.Error(), "/tmp/state.vscdb") {
		t.Errorf("Error() = %q, want op and path included", err.Error())
	}

	var target *StoreReadError
	wrapped := fmt.Errorf("outer: %w", err)
	if !errors.As(wrapped, &target) {
		t.Error("errors.As failed through wrapping")
	}
}
