package internal

// fileSet collects unique file paths in first-seen order. The order of
// set construction is what the canonical output carries; paths are
// never sorted.
type fileSet struct {
	seen  map[string]struct{}
	paths []string
}

func newFileSet() *fileSet {
	return &fileSet{seen: make(map[string]struct{})}
}

// Add records a path unless it is empty or already present.
func (s *fileSet) Add(path string) {
	if path == "" {
		return
	}
	if _, ok := s.seen[path]; ok {
		return
	}
	s.seen[path] = struct{}{}
	s.paths = append(s.paths, path)
}

// AddAll records every path in order.
func (s *fileSet) AddAll(paths []string) {
	for _, p := range paths {
		s.Add(p)
	}
}

// Paths returns the collected paths in insertion order.
func (s *fileSet) Paths() []string {
	return s.paths
}

// ExtractContext maps a raw context sub-structure into a ContextBundle.
// Pure function of its input: file paths are deduplicated, folder paths
// are listed as-is, docs and commits are mapped field for field, and
// empty code selections are filtered out. A nil input yields nil.
func ExtractContext(raw *RawContext) *ContextBundle {
	if raw == nil {
		return nil
	}

	bundle := &ContextBundle{}

	for _, sel := range raw.Selections {
		if sel.Text == "" {
			continue
		}
		bundle.CodeSelections = append(bundle.CodeSelections, sel.Text)
	}

	files := newFileSet()
	for _, sel := range raw.FileSelections {
		files.Add(selectionFilePath(sel))
	}
	bundle.Files = files.Paths()

	for _, sel := range raw.FolderSelections {
		if path := selectionFolderPath(sel); path != "" {
			bundle.Folders = append(bundle.Folders, path)
		}
	}

	for _, doc := range raw.SelectedDocs {
		bundle.Docs = append(bundle.Docs, DocRef{Title: doc.Name, Content: doc.Content})
	}

	for _, commit := range raw.SelectedCommits {
		bundle.Commits = append(bundle.Commits, CommitRef{Hash: commitHash(commit), Message: commit.Message})
	}

	return bundle
}

// selectionFilePath resolves the path of a file selection across the
// spellings different record vintages use.
func selectionFilePath(sel RawFileSelection) string {
	if sel.URI != nil {
		if sel.URI.FsPath != "" {
			return sel.URI.FsPath
		}
		if sel.URI.Path != "" {
			return sel.URI.Path
		}
	}
	return sel.FileName
}

func selectionFolderPath(sel RawFolderSelection) string {
	if sel.RelativePath != "" {
		return sel.RelativePath
	}
	return sel.Name
}

func commitHash(c RawCommit) string {
	if c.SHA != "" {
		return c.SHA
	}
	return c.Hash
}
