// Package store persists the user subset of the preference table as a
// JSON array. A missing file is an empty table, not an error; a
// malformed file yields an empty table plus a coded error so the
// caller can surface it and keep going.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/arthur-debert/dirprefs/pkg/errors"
	"github.com/arthur-debert/dirprefs/pkg/logging"
	"github.com/arthur-debert/dirprefs/pkg/rules"
	"github.com/arthur-debert/dirprefs/pkg/types"
)

// Store reads and writes the persisted preference file.
type Store struct {
	fs   types.FS
	path string
}

// New creates a store over the given filesystem and file path.
func New(fs types.FS, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Path returns the store's file path.
func (s *Store) Path() string { return s.path }

// Load reads the persisted rules. A missing file yields an empty slice
// and no error. A malformed file yields an empty slice and a
// STORE_PARSE error; callers are expected to notify and continue.
func (s *Store) Load() ([]*rules.Rule, error) {
	logger := logging.GetLogger("store")

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("path", s.path).Msg("No preference file, starting empty")
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrStoreRead, "failed to read preference file %s", s.path)
	}

	var loaded []*rules.Rule
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, errors.Wrapf(err, errors.ErrStoreParse, "malformed preference file %s", s.path)
	}

	logger.Debug().Str("path", s.path).Int("rules", len(loaded)).Msg("Loaded preference file")
	return loaded, nil
}

// Save writes the table's non-predefined rules, creating the parent
// directory if needed. In-memory state is not rolled back on failure;
// the next successful save converges disk with memory.
func (s *Store) Save(table *rules.Table) error {
	logger := logging.GetLogger("store")

	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dir)
	}

	user := table.UserRules()
	if user == nil {
		user = []*rules.Rule{}
	}
	data, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return errors.Wrap(err, errors.ErrStoreWrite, "failed to encode preferences")
	}

	if err := s.fs.WriteFile(s.path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrStoreWrite, "failed to write preference file %s", s.path)
	}

	logger.Debug().Str("path", s.path).Int("rules", len(user)).Msg("Saved preference file")
	return nil
}
