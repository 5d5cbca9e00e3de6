package internal

import (
	"reflect"
	"testing"
)

func TestFileSet_Order(t *testing.T) {
	s := newFileSet()
	s.Add("/a.go")
	s.Add("/b.go")
	s.Add("/a.go")
	s.Add("")
	s.Add("/c.go")

	want := []string{"/a.go", "/b.go", "/c.go"}
	if !reflect.DeepEqual(s.Paths(), want) {
		t.Errorf("Paths() = %v, want %v", s.Paths(), want)
	}
}

func TestExtractContext_Nil(t *testing.T) {
	if got := ExtractContext(nil); got != nil {
		t.Errorf("ExtractContext(nil) = %v, want nil", got)
	}
}

func TestExtractContext(t *testing.T) {
	tests := []struct {
		name string
		raw  *RawContext
		want *ContextBundle
	}{
		{
			name: "empty context",
			raw:  &RawContext{},
			want: &ContextBundle{Files: []string{}},
		},
		{
			name: "selections with empty text filtered",
			raw: &RawContext{
				Selections: []RawSelection{
					{Text: "func main() {}"},
					{Text: ""},
					{Text: "return nil"},
				},
			},
			want: &ContextBundle{
				CodeSelections: []string{"func main() {}", "return nil"},
				Files:          []string{},
			},
		},
		{
			name: "files deduplicated in first-seen order",
			raw: &RawContext{
				FileSelections: []RawFileSelection{
					{URI: &RawURI{FsPath: "/src/main.go"}},
					{URI: &RawURI{FsPath: "/src/util.go"}},
					{URI: &RawURI{FsPath: "/src/main.go"}},
				},
			},
			want: &ContextBundle{
				Files: []string{"/src/main.go", "/src/util.go"},
			},
		},
		{
			name: "file path fallback chain",
			raw: &RawContext{
				FileSelections: []RawFileSelection{
					{URI: &RawURI{FsPath: "/a.go", Path: "/ignored.go"}},
					{URI: &RawURI{Path: "/b.go"}},
					{FileName: "c.go"},
					{},
				},
			},
			want: &ContextBundle{
				Files: []string{"/a.go", "/b.go", "c.go"},
			},
		},
		{
			name: "folders are not deduplicated",
			raw: &RawContext{
				FolderSelections: []RawFolderSelection{
					{RelativePath: "src"},
					{Name: "docs"},
					{RelativePath: "src"},
					{},
				},
			},
			want: &ContextBundle{
				Files:   []string{},
				Folders: []string{"src", "docs", "src"},
			},
		},
		{
			name: "docs and commits mapped",
			raw: &RawContext{
				SelectedDocs: []RawDoc{
					{Name: "README", Content: "intro"},
				},
				SelectedCommits: []RawCommit{
					{SHA: "abc123", Message: "first"},
					{Hash: "def456", Message: "second"},
				},
			},
			want: &ContextBundle{
				Files: []string{},
				Docs:  []DocRef{{Title: "README", Content: "intro"}},
				Commits: []CommitRef{
					{Hash: "abc123", Message: "first"},
					{Hash: "def456", Message: "second"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractContext(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractContext() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestContextBundle_IsEmpty(t *testing.T) {
	tests := []struct {
		name   string
		bundle *ContextBundle
		want   bool
	}{
		{"nil bundle", nil, true},
		{"empty bundle", &ContextBundle{}, true},
		{"with selection", &ContextBundle{CodeSelections: []string{"x"}}, false},
		{"with file", &ContextBundle{Files: []string{"/a.go"}}, false},
		{"with folder", &ContextBundle{Folders: []string{"src"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.bundle.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}
