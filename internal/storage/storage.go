// Package storage persists named JSON collections. The gradebook keeps one
// collection per table plus a settings collection.
package storage

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// ErrNotFound is returned when a collection does not exist.
var ErrNotFound = errors.New("collection not found")

// Info describes a stored collection.
type Info struct {
	Name     string
	Modified time.Time
}

// Store reads and writes whole collections.
type Store interface {
	Load(name string, v any) error
	Save(name string, v any) error
	Delete(name string) error
	List() ([]Info, error)
	// Location is the directory or database file backing the store.
	Location() string
	Close() error
}

const (
	KindJSON   = "json"
	KindSQLite = "sqlite"
)

// Kinds lists the supported backends.
func Kinds() []string { return []string{KindJSON, KindSQLite} }

// Open returns the backend named by kind rooted at dir.
func Open(kind, dir string) (Store, error) {
	switch kind {
	case KindJSON, "":
		return NewFileStore(dir)
	case KindSQLite:
		return NewSQLiteStore(dir)
	default:
		return nil, fmt.Errorf("unknown store %q", kind)
	}
}

var validName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

func checkName(name string) error {
	if !validName.MatchString(name) {
		return fmt.Errorf("invalid collection name %q", name)
	}
	return nil
}
