// Package gradebook holds the school-term model: tables of subjects, each
// with weighted grades on the Swiss 1..6 scale.
package gradebook

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MinGrade = 1.0
	MaxGrade = 6.0
	PassMark = 4.0
)

type Grade struct {
	ID     string    `json:"id"`
	Value  float64   `json:"value"`
	Weight float64   `json:"weight"`
	Note   string    `json:"note,omitempty"`
	Date   time.Time `json:"date"`
}

type Subject struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Grades []Grade `json:"grades"`
}

// Table is one term's set of subjects.
type Table struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Subjects []Subject `json:"subjects"`
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`
}

// SubjectRef addresses a subject by id instead of by pointer, so it stays
// valid across reloads and copies of the table.
type SubjectRef struct {
	Table   string
	Subject string
}

func NewTable(name string) Table {
	now := time.Now()
	return Table{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(name),
		Created:  now,
		Modified: now,
	}
}

// Touch records a modification.
func (t *Table) Touch() {
	t.Modified = time.Now()
}

func NewSubject(name string) Subject {
	return Subject{ID: uuid.NewString(), Name: strings.TrimSpace(name)}
}

func NewGrade(value, weight float64, note string) Grade {
	if weight <= 0 {
		weight = 1
	}
	return Grade{
		ID:     uuid.NewString(),
		Value:  value,
		Weight: weight,
		Note:   strings.TrimSpace(note),
		Date:   time.Now(),
	}
}

// Clone returns a deep copy.
func (t Table) Clone() Table {
	out := t
	out.Subjects = make([]Subject, len(t.Subjects))
	for i, s := range t.Subjects {
		out.Subjects[i] = s.Clone()
	}
	return out
}

func (s Subject) Clone() Subject {
	out := s
	out.Grades = append([]Grade(nil), s.Grades...)
	return out
}

// SubjectNames lists the subject names in order.
func (t Table) SubjectNames() []string {
	names := make([]string, len(t.Subjects))
	for i, s := range t.Subjects {
		names[i] = s.Name
	}
	return names
}

// SubjectIndex returns the position of the subject with the given id, or -1.
func (t Table) SubjectIndex(id string) int {
	for i, s := range t.Subjects {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// HasSubject reports whether a subject named name exists, ignoring case and
// surrounding space.
func (t Table) HasSubject(name string) bool {
	name = strings.TrimSpace(name)
	for _, s := range t.Subjects {
		if strings.EqualFold(s.Name, name) {
			return true
		}
	}
	return false
}

// RemoveGrade drops the grade at index and reports whether it existed.
func (s *Subject) RemoveGrade(index int) bool {
	if index < 0 || index >= len(s.Grades) {
		return false
	}
	s.Grades = append(s.Grades[:index:index], s.Grades[index+1:]...)
	return true
}

const tablePrefix = "table-"

// CollectionName is the storage key for a table.
func (t Table) CollectionName() string {
	return tablePrefix + t.ID
}

// IsTableCollection reports whether a storage key belongs to a table.
func IsTableCollection(name string) bool {
	return strings.HasPrefix(name, tablePrefix)
}

// TableID extracts the table id from a storage key.
func TableID(collection string) (string, bool) {
	return strings.CutPrefix(collection, tablePrefix)
}
