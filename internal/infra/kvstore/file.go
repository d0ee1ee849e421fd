package kvstore

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps one file per key under a state directory. Writes go through
// a temp file and rename so a crash never leaves a half-written value.
type FileStore struct {
	dir    string
	logger *slog.Logger
}

func NewFileStore(dir string, logger *slog.Logger) *FileStore {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("failed to create state dir", "dir", dir, "error", err)
	}
	return &FileStore{dir: dir, logger: logger}
}

func (s *FileStore) Get(key string) (string, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Debug("state read failed, treating as miss", "key", key, "error", err)
		}
		return "", false
	}
	return string(data), true
}

func (s *FileStore) Set(key, value string) {
	path := s.path(key)
	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		s.logger.Debug("state write skipped", "key", key, "error", err)
		return
	}
	_, werr := tmp.WriteString(value)
	cerr := tmp.Close()
	if werr != nil || cerr != nil {
		os.Remove(tmp.Name())
		s.logger.Debug("state write skipped", "key", key, "write_error", werr, "close_error", cerr)
		return
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		s.logger.Debug("state write skipped", "key", key, "error", err)
	}
}

func (s *FileStore) path(key string) string {
	// Keys are fixed identifiers, but never trust them as path components.
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		}
		return '_'
	}, key)
	return filepath.Join(s.dir, safe+".json")
}
