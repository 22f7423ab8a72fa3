package types

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrUnknownField means a caller asked for a field Student does not have.
	ErrUnknownField = errors.New("unknown student field")

	// ErrFieldValue means the value passed for a field has the wrong type
	// (e.g. a string for Age) or could not be parsed.
	ErrFieldValue = errors.New("invalid value for student field")
)

// Field names one of the five Student fields.
// The numeric order of the constants IS the canonical output order.
type Field uint8

const (
	FieldAge Field = iota
	FieldName
	FieldAverageGrade
	FieldFaculty
	FieldIsLeader
)

// Fields returns every field in canonical order.
func Fields() []Field {
	return []Field{FieldAge, FieldName, FieldAverageGrade, FieldFaculty, FieldIsLeader}
}

// Valid reports whether f is one of the five Student fields.
func (f Field) Valid() bool {
	return f <= FieldIsLeader
}

// Label is the prefix used by the text formatter ("Average Grade: 4.5").
func (f Field) Label() string {
	switch f {
	case FieldAge:
		return "Age"
	case FieldName:
		return "Name"
	case FieldAverageGrade:
		return "Average Grade"
	case FieldFaculty:
		return "Faculty"
	case FieldIsLeader:
		return "Is Leader"
	default:
		return fmt.Sprintf("Field(%d)", uint8(f))
	}
}

// Key is the snake_case name used in JSON and query strings.
func (f Field) Key() string {
	switch f {
	case FieldAge:
		return "age"
	case FieldName:
		return "name"
	case FieldAverageGrade:
		return "average_grade"
	case FieldFaculty:
		return "faculty"
	case FieldIsLeader:
		return "is_leader"
	default:
		return ""
	}
}

func (f Field) String() string {
	if !f.Valid() {
		return f.Label()
	}
	return f.Key()
}

// ParseField maps a key such as "average_grade" back to its Field.
func ParseField(key string) (Field, error) {
	for _, f := range Fields() {
		if f.Key() == key {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, key)
}

// Value returns the field's value from s, boxed in an interface.
// The dynamic type is the one Matcher expects: int, string, float64,
// Faculty or bool.
func (f Field) Value(s Student) (any, error) {
	switch f {
	case FieldAge:
		return s.age, nil
	case FieldName:
		return s.name, nil
	case FieldAverageGrade:
		return s.averageGrade, nil
	case FieldFaculty:
		return s.faculty, nil
	case FieldIsLeader:
		return s.isLeader, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownField, uint8(f))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Matcher returns a predicate reporting whether a Student's field f equals
// value under that field's natural equality:
//
//	Age          — int equality
//	Name         — exact, case-sensitive string match
//	AverageGrade — exact float64 equality (no tolerance)
//	Faculty      — same variant
//	IsLeader     — bool equality
//
// Asking for a field that does not exist, or passing a value of the wrong
// Go type, is a programming error. It is reported immediately instead of
// silently matching nothing.
// ─────────────────────────────────────────────────────────────────────────────
func (f Field) Matcher(value any) (func(Student) bool, error) {
	switch f {
	case FieldAge:
		want, ok := value.(int)
		if !ok {
			return nil, fieldValueError(f, value)
		}
		return func(s Student) bool { return s.age == want }, nil

	case FieldName:
		want, ok := value.(string)
		if !ok {
			return nil, fieldValueError(f, value)
		}
		return func(s Student) bool { return s.name == want }, nil

	case FieldAverageGrade:
		want, ok := value.(float64)
		if !ok {
			return nil, fieldValueError(f, value)
		}
		return func(s Student) bool { return s.averageGrade == want }, nil

	case FieldFaculty:
		want, ok := value.(Faculty)
		if !ok {
			return nil, fieldValueError(f, value)
		}
		return func(s Student) bool { return s.faculty == want }, nil

	case FieldIsLeader:
		want, ok := value.(bool)
		if !ok {
			return nil, fieldValueError(f, value)
		}
		return func(s Student) bool { return s.isLeader == want }, nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownField, uint8(f))
	}
}

// ParseValue converts a raw string (from a URL path, for example) into the
// typed value Matcher expects for f.
func (f Field) ParseValue(raw string) (any, error) {
	switch f {
	case FieldAge:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrFieldValue, f.Key(), err)
		}
		return v, nil
	case FieldName:
		return raw, nil
	case FieldAverageGrade:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrFieldValue, f.Key(), err)
		}
		return v, nil
	case FieldFaculty:
		v, err := ParseFaculty(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrFieldValue, f.Key(), err)
		}
		return v, nil
	case FieldIsLeader:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrFieldValue, f.Key(), err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownField, uint8(f))
	}
}

func fieldValueError(f Field, value any) error {
	return fmt.Errorf("%w: %s does not accept %T", ErrFieldValue, f.Key(), value)
}
