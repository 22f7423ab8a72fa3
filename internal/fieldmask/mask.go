// Package fieldmask selects a subset of a Student's fields for display.
//
// Two independent mask representations are provided:
//
//   - BoolMask: five plain booleans, one per field.
//   - BitMask: the same five flags packed into one integer, one bit each,
//     combinable with Union / Intersection / Complement.
//
// Neither type knows about the other. The formatter only depends on the
// one-method Selector interface, which both satisfy, so callers pick
// whichever representation suits them.
package fieldmask

import "github.com/grxxnzzz/SDM/internal/types"

// Selector answers a single question: is this field part of the mask?
type Selector interface {
	IsSelected(f types.Field) bool
}

// BoolMask is the unpacked representation: one flag per Student field.
// Any of the 32 combinations is valid, including all-false and all-true.
type BoolMask struct {
	IncludeAge          bool
	IncludeName         bool
	IncludeAverageGrade bool
	IncludeFaculty      bool
	IncludeIsLeader     bool
}

// NewBoolMask takes the five flags in canonical field order.
func NewBoolMask(age, name, averageGrade, faculty, isLeader bool) BoolMask {
	return BoolMask{
		IncludeAge:          age,
		IncludeName:         name,
		IncludeAverageGrade: averageGrade,
		IncludeFaculty:      faculty,
		IncludeIsLeader:     isLeader,
	}
}

// IsSelected implements Selector. Unknown fields are never selected.
func (m BoolMask) IsSelected(f types.Field) bool {
	switch f {
	case types.FieldAge:
		return m.IncludeAge
	case types.FieldName:
		return m.IncludeName
	case types.FieldAverageGrade:
		return m.IncludeAverageGrade
	case types.FieldFaculty:
		return m.IncludeFaculty
	case types.FieldIsLeader:
		return m.IncludeIsLeader
	default:
		return false
	}
}
