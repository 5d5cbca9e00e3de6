package internal

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Well-known keys in a workspace's ItemTable. One holds the composer
// thread collection, the other the chat tab collection.
const (
	ComposerDataKey = "composer.composerData"
	ChatDataKey     = "workbench.panel.aichat.view.aichat.chatdata"
)

// Store provides read-only access to one workspace's persisted
// key-value state database. It never mutates the underlying file.
type Store struct {
	db   *sql.DB
	path string
}

// OpenStore opens a workspace state database in read-only mode.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, &StoreReadError{Path: path, Op: "open", Err: err}
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StoreReadError{Path: path, Op: "open", Err: fmt.Errorf("ping failed: %w", err)}
	}

	return &Store{db: db, path: path}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// GetValue returns the raw blob stored under key, with ok=false when
// the key is absent.
func (s *Store) GetValue(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow("SELECT value FROM ItemTable WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &StoreReadError{Path: s.path, Op: "read", Err: err}
	}
	return value, true, nil
}

// LoadComposerThreads reads the thread collection. An absent key means
// the workspace simply has no composer threads.
func (s *Store) LoadComposerThreads() ([]RawComposerThread, error) {
	value, ok, err := s.GetValue(ComposerDataKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	threads, err := ParseComposerCollection(value)
	if err != nil {
		return nil, &StoreReadError{Path: s.path, Op: "parse", Err: err}
	}
	return threads, nil
}

// LoadChatTabs reads the chat tab collection. An absent key means the
// workspace has no chat tabs.
func (s *Store) LoadChatTabs() ([]RawChatTab, error) {
	value, ok, err := s.GetValue(ChatDataKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	tabs, err := ParseChatTabs(value)
	if err != nil {
		return nil, &StoreReadError{Path: s.path, Op: "parse", Err: err}
	}
	return tabs, nil
}
