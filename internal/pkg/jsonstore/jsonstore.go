// Package jsonstore persists named records as whole JSON documents on
// disk. Each record is loaded once at startup and rewritten in full on
// every mutation; the in-memory state stays authoritative for the
// session, so write failures are logged and swallowed rather than
// surfaced to callers.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Store writes JSON documents under a single data directory.
type Store struct {
	dir string
	log zerolog.Logger
}

// Open prepares the data directory and returns a store over it.
func Open(dir string, log zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory %s: %w", dir, err)
	}
	return &Store{dir: dir, log: log}, nil
}

// Dir returns the data directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Load reads the named record into v. A missing file is not an error:
// Load reports found=false and leaves v untouched.
func (s *Store) Load(name string, v interface{}) (found bool, err error) {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", name, err)
	}
	return true, nil
}

// Save serializes v and replaces the named record atomically (temp file
// plus rename). Failures are logged, never returned: durability is
// best-effort and memory remains the source of truth.
func (s *Store) Save(name string, v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		s.log.Error().Err(err).Str("record", name).Msg("Failed to encode record")
		return
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		s.log.Error().Err(err).Str("record", name).Msg("Failed to write record")
		return
	}
	if err := os.Rename(tmp, path); err != nil {
		s.log.Error().Err(err).Str("record", name).Msg("Failed to replace record")
	}
}
