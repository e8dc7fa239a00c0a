// Package storage persists the task collection to a single JSON file and
// maintains a chain of numbered backup generations that makes every save
// reversible. The newest backup carries suffix 000, the oldest 010; saving
// rotates the chain one slot older and undoing shifts it one slot newer.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"todo/internal/errors"
	"todo/internal/logging"
	"todo/internal/tasks"
)

// maxBackups is the highest backup generation suffix. Rotation evicts
// whatever holds that slot when a new generation is created.
const maxBackups = 10

// Store binds the persistence engine to one primary file path.
type Store struct {
	path string
	flk  *flock.Flock
}

// New creates a store for the given primary file path. The path's
// extension is replaced by the 3-digit generation suffix for backups
// (tasks.json -> tasks.000 .. tasks.010).
func New(path string) *Store {
	return &Store{
		path: path,
		flk:  flock.New(lockPath(path)),
	}
}

// Path returns the primary file path.
func (s *Store) Path() string {
	return s.path
}

// Lock takes an exclusive advisory lock guarding the whole load-to-save
// span of an invocation, so concurrent invocations cannot race the backup
// rotation. The lock lives in a sibling file next to the primary.
func (s *Store) Lock() error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	if err := s.flk.Lock(); err != nil {
		return errors.NewStorageError("acquire file lock", err)
	}
	return nil
}

// Unlock releases the advisory lock.
func (s *Store) Unlock() error {
	return s.flk.Unlock()
}

// Load reads and decodes the task collection from the primary file. A
// missing file is the first-run case and yields an empty collection; a
// file that cannot be decoded is a fatal error.
func (s *Store) Load() (tasks.List, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Debugf("no tasks file at %s, starting empty\n", s.path)
			return tasks.List{}, nil
		}
		return nil, errors.NewStorageError("read tasks file", err)
	}

	var list tasks.List
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, errors.NewDecodeError(err)
	}
	return list, nil
}

// Save encodes the full collection and replaces the primary file with it,
// after rotating the existing file into the backup chain. The parent
// directory is created when absent. A failure at any step aborts the save;
// renames already performed by a failed rotation are not rolled back.
func (s *Store) Save(list tasks.List) error {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return errors.NewStorageError("encode tasks", err)
	}

	if err := s.ensureDir(); err != nil {
		return err
	}
	if err := s.rotateBackups(); err != nil {
		return err
	}

	// Write via a temp file in the same directory so the primary path is
	// replaced atomically.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return errors.NewStorageError("write tasks file", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.NewStorageError("replace tasks file", err)
	}
	return nil
}

// Rollback restores the newest backup generation over the primary file and
// shifts every remaining generation one slot newer. It fails when no
// backup generation exists, leaving the primary file untouched.
func (s *Store) Rollback() error {
	newest := s.backupPath(0)
	if !fileExists(newest) {
		return errors.NewNoBackupError()
	}
	if err := os.Rename(newest, s.path); err != nil {
		return errors.NewStorageError("restore backup", err)
	}
	logging.Debugf("restored %s over %s\n", newest, s.path)

	for i := 1; i <= maxBackups; i++ {
		older := s.backupPath(i)
		if !fileExists(older) {
			continue
		}
		if err := os.Rename(older, s.backupPath(i-1)); err != nil {
			return errors.NewStorageError("shift backup generations", err)
		}
	}
	return nil
}

// rotateBackups shifts every existing generation one slot older, oldest
// first so each slot is freed before it is overwritten, then moves the
// current primary file into slot 000. With no backups and no primary file
// this is a no-op.
func (s *Store) rotateBackups() error {
	for i := maxBackups - 1; i >= 0; i-- {
		newer := s.backupPath(i)
		if !fileExists(newer) {
			continue
		}
		if err := os.Rename(newer, s.backupPath(i+1)); err != nil {
			return errors.NewStorageError("rotate backups", err)
		}
		logging.Debugf("rotated backup %s\n", newer)
	}

	if fileExists(s.path) {
		if err := os.Rename(s.path, s.backupPath(0)); err != nil {
			return errors.NewStorageError("rotate backups", err)
		}
	}
	return nil
}

// backupPath returns the path of generation i: the primary path with its
// extension replaced by the zero-padded slot number.
func (s *Store) backupPath(i int) string {
	base := strings.TrimSuffix(s.path, filepath.Ext(s.path))
	return fmt.Sprintf("%s.%03d", base, i)
}

// ensureDir creates the primary file's parent directory when absent.
func (s *Store) ensureDir() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.NewStorageError("create data directory", err)
	}
	return nil
}

func lockPath(path string) string {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	return base + ".lock"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
