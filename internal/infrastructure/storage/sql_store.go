package storage

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"moria-kernel/pkg/logger"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// SQLStore keeps snapshots as blobs in a SQLite database, alongside a few
// columns for listing them without decoding.
type SQLStore struct {
	conn *sqlx.DB
	log  *logrus.Entry
}

// SnapshotInfo describes a stored snapshot.
type SnapshotInfo struct {
	Name    string `db:"name"`
	Seed    int64  `db:"seed"`
	Level   int    `db:"level"`
	Turn    int64  `db:"turn"`
	SavedAt int64  `db:"saved_at"`
}

// OpenSQL opens or creates the database at path.
func OpenSQL(path string) (*SQLStore, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLStore{
		conn: conn,
		log: logger.Log.WithFields(logrus.Fields{
			"component": "sql_store",
			"path":      path,
		}),
	}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *SQLStore) Close() error {
	return s.conn.Close()
}

func (s *SQLStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		name TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		level INTEGER NOT NULL,
		turn INTEGER NOT NULL,
		saved_at INTEGER NOT NULL,
		data BLOB NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_snapshots_seed ON snapshots(seed);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Save stores the snapshot under name, replacing any previous one.
func (s *SQLStore) Save(name string, snap *Snapshot) error {
	var buf bytes.Buffer
	if err := WriteSnapshot(&buf, snap); err != nil {
		return err
	}

	_, err := s.conn.Exec(
		`INSERT OR REPLACE INTO snapshots (name, seed, level, turn, saved_at, data)
		VALUES (?, ?, ?, ?, ?, ?)`,
		name, int64(snap.RNG.Magic), snap.Level, int64(snap.Turn), time.Now().Unix(), buf.Bytes(),
	)
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}

	s.log.WithFields(logrus.Fields{"name": name, "bytes": buf.Len()}).Info("Snapshot saved.")
	return nil
}

// Load decodes the snapshot stored under name.
func (s *SQLStore) Load(name string) (*Snapshot, error) {
	var data []byte
	err := s.conn.Get(&data, "SELECT data FROM snapshots WHERE name = ?", name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, err
	}

	snap, err := ReadSnapshot(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return snap, nil
}

// List returns the stored snapshot names, sorted.
func (s *SQLStore) List() ([]string, error) {
	var names []string
	err := s.conn.Select(&names, "SELECT name FROM snapshots ORDER BY name")
	return names, err
}

// Recent describes the most recently saved snapshots, newest first.
func (s *SQLStore) Recent(limit int) ([]SnapshotInfo, error) {
	var infos []SnapshotInfo
	err := s.conn.Select(&infos,
		"SELECT name, seed, level, turn, saved_at FROM snapshots ORDER BY saved_at DESC, name LIMIT ?",
		limit,
	)
	return infos, err
}

// Delete removes the snapshot stored under name.
func (s *SQLStore) Delete(name string) error {
	res, err := s.conn.Exec("DELETE FROM snapshots WHERE name = ?", name)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}
