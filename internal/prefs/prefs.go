// Package prefs keeps per-tool preferences in the user's config directory.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kirsle/configdir"
)

const fileName = "config.json"

type section struct {
	Token string `json:"token,omitempty"`
}

// Store is a small JSON key-value file of the shape
// {"<namespace>": {"token": "..."}}.
type Store struct {
	path  string
	data  map[string]section
	dirty bool
}

// Open opens the preferences of tool, creating its config folder on first
// use.
func Open(tool string) (*Store, error) {
	dir := configdir.LocalConfig(tool)
	if err := configdir.MakePath(dir); err != nil {
		return nil, fmt.Errorf("create config dir %s: %w", dir, err)
	}
	return OpenPath(filepath.Join(dir, fileName))
}

// OpenPath opens the preferences file at path. A missing file is an empty
// store.
func OpenPath(path string) (*Store, error) {
	s := &Store{path: path, data: make(map[string]section)}

	buf, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read preferences: %w", err)
	}
	if len(buf) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(buf, &s.data); err != nil {
		return nil, fmt.Errorf("parse preferences %s: %w", path, err)
	}
	return s, nil
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

// Token returns the token stored under namespace.
func (s *Store) Token(namespace string) (string, bool) {
	sec, ok := s.data[namespace]
	if !ok || sec.Token == "" {
		return "", false
	}
	return sec.Token, true
}

// SetToken stores token under namespace, replacing any previous value, and
// writes the file before returning.
func (s *Store) SetToken(namespace, token string) error {
	sec := s.data[namespace]
	sec.Token = token
	s.data[namespace] = sec
	s.dirty = true
	return s.flush()
}

// Close writes any pending change.
func (s *Store) Close() error {
	if !s.dirty {
		return nil
	}
	return s.flush()
}

// flush replaces the file atomically; the token must never be half written.
func (s *Store) flush() error {
	buf, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".config-*.json")
	if err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf); err != nil {
		tmp.Close()
		return fmt.Errorf("write preferences: %w", err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("write preferences: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}

	s.dirty = false
	return nil
}
