// Package storage defines the Storage interface, the contract that any
// student store must satisfy to work with this application.
//
// Two implementations live in sub-packages:
//
//   - memory: an ordered slice, the reference implementation.
//   - sqlite: a named in-memory SQLite database (nothing touches disk).
//
// Handlers and the demo only ever see this interface, so switching
// backends is a one-line change in main.go.
package storage

import (
	"sync"

	"github.com/grxxnzzz/SDM/internal/types"
)

// Storage is the student store contract.
//
// Every lookup returns students in insertion order and returns an EMPTY
// slice (never nil, never an error) when nothing matches. Errors are
// reserved for programming mistakes (unknown field, wrong value type)
// and for backend failures.
type Storage interface {
	// AddStudent appends s to the end of the store. Duplicates are allowed.
	AddStudent(s types.Student) error

	// FindByField returns every student whose field equals value under
	// that field's natural equality. See types.Field.Matcher.
	FindByField(field types.Field, value any) ([]types.Student, error)

	// FindByName is FindByField(types.FieldName, name).
	FindByName(name string) ([]types.Student, error)

	// Students returns every stored student.
	Students() ([]types.Student, error)
}

// ─────────────────────────────────────────────────────────────────────────────
// Synchronized wraps st so that every call holds one mutex.
//
// The in-memory store is NOT safe for concurrent use on its own: it is a
// plain slice, exactly as single-threaded callers need it. A caller that
// shares one store across goroutines (the HTTP server does) is responsible
// for serialising access, and this wrapper is how it does that.
// ─────────────────────────────────────────────────────────────────────────────
func Synchronized(st Storage) Storage {
	return &synchronized{st: st}
}

type synchronized struct {
	mu sync.Mutex
	st Storage
}

func (s *synchronized) AddStudent(student types.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.AddStudent(student)
}

func (s *synchronized) FindByField(field types.Field, value any) ([]types.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.FindByField(field, value)
}

func (s *synchronized) FindByName(name string) ([]types.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.FindByName(name)
}

func (s *synchronized) Students() ([]types.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.Students()
}
