package localstore

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// Store is a small key-value store for client-local browsing state. Get must
// follow the parse-or-reset contract: corrupt stored state is logged, the
// key is reset and the caller sees an empty value, never an error.
type Store interface {
	Get(key string, into any) error
	Set(key string, v any) error
	Clear(key string) error
}

// FileStore keeps one JSON file per key under a state directory, the
// filesystem analog of browser localStorage. Writes are last-writer-wins
// across processes; no stronger guarantee is provided.
type FileStore struct {
	dir string
	mu  sync.Mutex
	log zerolog.Logger
}

func NewFileStore(dir string, log zerolog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir, log: log}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Get(key string, into any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	if err := json.Unmarshal(b, into); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("corrupt local state, resetting")
		_ = os.Remove(s.path(key))
		return nil
	}
	return nil
}

func (s *FileStore) Set(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return os.WriteFile(s.path(key), b, 0o644)
}

func (s *FileStore) Clear(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
