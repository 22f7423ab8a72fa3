package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFaculty is returned by ParseFaculty for a key outside the
// fixed set of faculties.
var ErrUnknownFaculty = errors.New("unknown faculty")

// Faculty is the academic department a student belongs to.
//
// The set is CLOSED: the only valid values are the three constants below.
// The zero value is deliberately not a faculty, so a Student built from an
// uninitialised Faculty is easy to spot (Valid() returns false).
type Faculty uint8

const (
	FacultyMath Faculty = iota + 1
	FacultyPhysics
	FacultyCS
)

// Faculties returns every faculty in declaration order.
func Faculties() []Faculty {
	return []Faculty{FacultyMath, FacultyPhysics, FacultyCS}
}

// Valid reports whether f is one of the declared faculties.
func (f Faculty) Valid() bool {
	return f >= FacultyMath && f <= FacultyCS
}

// Label returns the human-readable name printed by the formatter,
// e.g. "Computer Science".
//
// A switch is used instead of a lookup map so there is no package-level
// table anyone could mutate at runtime.
func (f Faculty) Label() string {
	switch f {
	case FacultyMath:
		return "Math"
	case FacultyPhysics:
		return "Physics"
	case FacultyCS:
		return "Computer Science"
	default:
		return fmt.Sprintf("Faculty(%d)", uint8(f))
	}
}

// Key returns the short lowercase identifier used in JSON bodies and URLs.
func (f Faculty) Key() string {
	switch f {
	case FacultyMath:
		return "math"
	case FacultyPhysics:
		return "physics"
	case FacultyCS:
		return "cs"
	default:
		return ""
	}
}

// String implements fmt.Stringer using the display label.
func (f Faculty) String() string {
	return f.Label()
}

// ParseFaculty maps a key ("math", "physics", "cs") back to a Faculty.
// Matching is case-insensitive.
func ParseFaculty(key string) (Faculty, error) {
	for _, f := range Faculties() {
		if strings.EqualFold(key, f.Key()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFaculty, key)
}
