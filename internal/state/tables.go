package state

import (
	"sort"

	"github.com/atomicstack/gradebook/internal/gradebook"
)

// TableStore holds the in-memory tables. Every getter returns a deep copy,
// so callers edit a copy and hand it back with Put.
type TableStore interface {
	Tables() []gradebook.Table
	Table(id string) (gradebook.Table, bool)
	// SetTables replaces everything, e.g. after the initial load.
	SetTables([]gradebook.Table)
	// Put inserts or replaces a table and marks it dirty.
	Put(gradebook.Table)
	// Remove drops a table and remembers the deletion until MarkClean.
	Remove(id string) bool
	// Reload replaces a clean table with its stored version. Dirty tables
	// keep the local edits and Reload reports false.
	Reload(gradebook.Table) bool
	// Forget drops a clean table that vanished from storage.
	Forget(id string) bool
	Dirty() []gradebook.Table
	Removed() []string
	MarkClean(id string)
}

type tableStore struct {
	tables  []gradebook.Table
	dirty   map[string]bool
	removed map[string]bool
}

func NewTableStore() TableStore {
	return &tableStore{dirty: map[string]bool{}, removed: map[string]bool{}}
}

func (s *tableStore) Tables() []gradebook.Table {
	return cloneTables(s.tables)
}

func (s *tableStore) Table(id string) (gradebook.Table, bool) {
	if i := s.index(id); i >= 0 {
		return s.tables[i].Clone(), true
	}
	return gradebook.Table{}, false
}

func (s *tableStore) SetTables(tables []gradebook.Table) {
	s.tables = cloneTables(tables)
	s.sort()
	s.dirty = map[string]bool{}
	s.removed = map[string]bool{}
}

func (s *tableStore) Put(t gradebook.Table) {
	s.put(t)
	s.dirty[t.ID] = true
	delete(s.removed, t.ID)
}

func (s *tableStore) Remove(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.tables = append(s.tables[:i:i], s.tables[i+1:]...)
	delete(s.dirty, id)
	s.removed[id] = true
	return true
}

func (s *tableStore) Reload(t gradebook.Table) bool {
	if s.dirty[t.ID] || s.removed[t.ID] {
		return false
	}
	s.put(t)
	return true
}

func (s *tableStore) Forget(id string) bool {
	if s.dirty[id] {
		return false
	}
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.tables = append(s.tables[:i:i], s.tables[i+1:]...)
	return true
}

func (s *tableStore) Dirty() []gradebook.Table {
	var out []gradebook.Table
	for _, t := range s.tables {
		if s.dirty[t.ID] {
			out = append(out, t.Clone())
		}
	}
	return out
}

func (s *tableStore) Removed() []string {
	out := make([]string, 0, len(s.removed))
	for id := range s.removed {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (s *tableStore) MarkClean(id string) {
	delete(s.dirty, id)
	delete(s.removed, id)
}

func (s *tableStore) put(t gradebook.Table) {
	t = t.Clone()
	if i := s.index(t.ID); i >= 0 {
		s.tables[i] = t
	} else {
		s.tables = append(s.tables, t)
	}
	s.sort()
}

func (s *tableStore) index(id string) int {
	for i, t := range s.tables {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// sort keeps tables ordered by creation time so entry numbers stay stable
// while a picker is open.
func (s *tableStore) sort() {
	sort.SliceStable(s.tables, func(i, j int) bool {
		if !s.tables[i].Created.Equal(s.tables[j].Created) {
			return s.tables[i].Created.Before(s.tables[j].Created)
		}
		return s.tables[i].ID < s.tables[j].ID
	})
}

func cloneTables(tables []gradebook.Table) []gradebook.Table {
	if len(tables) == 0 {
		return nil
	}
	dup := make([]gradebook.Table, len(tables))
	for i, t := range tables {
		dup[i] = t.Clone()
	}
	return dup
}
