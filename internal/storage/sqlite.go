package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/atomicstack/gradebook/internal/logging/events"
)

// SQLiteFile is the database file name inside the data directory.
const SQLiteFile = "gradebook.db"

// SQLiteStore keeps every collection as one JSON blob row.
type SQLiteStore struct {
	conn *sql.DB
	path string
}

func NewSQLiteStore(dir string) (*SQLiteStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	path := filepath.Join(dir, SQLiteFile)
	conn, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	s := &SQLiteStore{conn: conn, path: path}
	if err := s.init(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initialize database: %w", err)
	}
	events.Store.Open(KindSQLite, path)
	return s, nil
}

func (s *SQLiteStore) init() error {
	_, err := s.conn.Exec(`
	CREATE TABLE IF NOT EXISTS collections (
		name TEXT PRIMARY KEY,
		data BLOB NOT NULL,
		modified INTEGER NOT NULL
	);`)
	return err
}

func (s *SQLiteStore) Location() string { return s.path }

func (s *SQLiteStore) Close() error { return s.conn.Close() }

func (s *SQLiteStore) Load(name string, v any) (err error) {
	defer func() { events.Store.Load(name, err) }()
	if err := checkName(name); err != nil {
		return err
	}
	var data []byte
	err = s.conn.QueryRow("SELECT data FROM collections WHERE name = ?", name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}
	return decode(name, data, v)
}

func (s *SQLiteStore) Save(name string, v any) (err error) {
	defer func() { events.Store.Save(name, err) }()
	if err := checkName(name); err != nil {
		return err
	}
	data, err := encode(name, v)
	if err != nil {
		return err
	}
	_, err = s.conn.Exec(`
		INSERT INTO collections (name, data, modified) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, modified = excluded.modified
	`, name, data, time.Now().UnixNano())
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(name string) (err error) {
	defer func() { events.Store.Delete(name, err) }()
	if err := checkName(name); err != nil {
		return err
	}
	res, err := s.conn.Exec("DELETE FROM collections WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("delete %s: %w", name, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return nil
}

func (s *SQLiteStore) List() ([]Info, error) {
	rows, err := s.conn.Query("SELECT name, modified FROM collections ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer rows.Close()
	var infos []Info
	for rows.Next() {
		var name string
		var modified int64
		if err := rows.Scan(&name, &modified); err != nil {
			return nil, fmt.Errorf("scan collection: %w", err)
		}
		infos = append(infos, Info{Name: name, Modified: time.Unix(0, modified)})
	}
	return infos, rows.Err()
}
