package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"moria-kernel/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Extension of snapshot files.
const Extension = ".cvsn"

// Store keeps named snapshots.
type Store interface {
	Save(name string, s *Snapshot) error
	Load(name string) (*Snapshot, error)
	List() ([]string, error)
}

// SnapshotName is the default name of a save for a game seed and level.
func SnapshotName(seed uint32, level int) string {
	return fmt.Sprintf("cave_%d_lvl%d", seed, level)
}

// FileStore keeps one snapshot per file in a directory.
type FileStore struct {
	SaveDir string
	log     *logrus.Entry
}

// NewFileStore returns a store rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create save dir: %w", err)
	}
	return &FileStore{
		SaveDir: dir,
		log: logger.Log.WithFields(logrus.Fields{
			"component": "file_store",
			"dir":       dir,
		}),
	}, nil
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.SaveDir, name+Extension)
}

// Save writes the snapshot, replacing any previous one under name. The file
// is written beside the target and renamed over it, so a crash never leaves
// a half-written save.
func (s *FileStore) Save(name string, snap *Snapshot) error {
	tmp, err := os.CreateTemp(s.SaveDir, name+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := WriteSnapshot(tmp, snap); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), s.path(name)); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{"name": name, "level": snap.Level}).Info("Snapshot saved.")
	return nil
}

// Load reads the snapshot saved under name.
func (s *FileStore) Load(name string) (*Snapshot, error) {
	f, err := os.Open(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	snap, err := ReadSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return snap, nil
}

// List returns the names of the saved snapshots, sorted.
func (s *FileStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.SaveDir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Extension) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), Extension))
	}
	sort.Strings(names)
	return names, nil
}
