package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"zavvi-web/internal/pkg/errs"
)

// FileStore keeps every key in one JSON document, rewritten atomically on each change.
type FileStore struct {
	mu    sync.Mutex
	path  string
	items map[string]string
}

func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, items: make(map[string]string)}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return s, nil
	case err != nil:
		return nil, errs.Wrap(err, "read state file")
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.items); err != nil {
			// A corrupt document is treated as empty storage.
			s.items = make(map[string]string)
		}
	}
	return s, nil
}

func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.items[key]
	return v, ok, nil
}

func (s *FileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.items[key]
	s.items[key] = value
	if err := s.flush(); err != nil {
		if had {
			s.items[key] = prev
		} else {
			delete(s.items, key)
		}
		return err
	}
	return nil
}

func (s *FileStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.items[key]
	if !had {
		return nil
	}
	delete(s.items, key)
	if err := s.flush(); err != nil {
		s.items[key] = prev
		return err
	}
	return nil
}

func (s *FileStore) flush() error {
	raw, err := json.MarshalIndent(s.items, "", "  ")
	if err != nil {
		return errs.Wrap(err, "encode state file")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errs.Wrap(err, "create state dir")
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return errs.Wrap(err, "write state file")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errs.Wrap(err, "replace state file")
	}
	return nil
}
