// Package memory provides the slice-backed implementation of
// storage.Storage.
//
// The store keeps students in insertion order and answers lookups with a
// linear scan. It does no locking; wrap it with storage.Synchronized when
// more than one goroutine uses it.
package memory

import (
	"fmt"

	"github.com/grxxnzzz/SDM/internal/types"
)

// Store is an ordered, append-only list of students.
// The zero value is an empty store ready for use.
type Store struct {
	students []types.Student
}

// New returns an empty Store.
func New() *Store {
	return &Store{}
}

// AddStudent appends s. It never fails; the error is there to satisfy
// storage.Storage.
func (s *Store) AddStudent(student types.Student) error {
	s.students = append(s.students, student)
	return nil
}

// FindByField returns every student whose field equals value.
//
// The field and value are checked BEFORE the scan, so a bad selector is
// reported even when the store is empty.
func (s *Store) FindByField(field types.Field, value any) ([]types.Student, error) {
	match, err := field.Matcher(value)
	if err != nil {
		return nil, fmt.Errorf("FindByField: %w", err)
	}
	return filter(s.students, match), nil
}

// FindByName returns every student called exactly name.
func (s *Store) FindByName(name string) ([]types.Student, error) {
	return s.FindByField(types.FieldName, name)
}

// Students returns a copy of every stored student.
func (s *Store) Students() ([]types.Student, error) {
	out := make([]types.Student, len(s.students))
	copy(out, s.students)
	return out, nil
}

// Len reports how many students are stored.
func (s *Store) Len() int {
	return len(s.students)
}

// filter keeps the students for which keep returns true.
// The result is a fresh non-nil slice, so callers may modify it freely.
func filter(students []types.Student, keep func(types.Student) bool) []types.Student {
	out := make([]types.Student, 0)
	for _, st := range students {
		if keep(st) {
			out = append(out, st)
		}
	}
	return out
}
