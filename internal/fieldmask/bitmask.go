package fieldmask

import (
	"fmt"
	"strings"

	"github.com/grxxnzzz/SDM/internal/types"
)

// BitMask packs the five field flags into the low five bits of a byte.
// Every value in 0–31 is a legal combination.
type BitMask uint8

// None selects nothing. It is declared apart from the iota block so the
// first field still lands on bit 0.
const None BitMask = 0

const (
	Age          BitMask = 1 << iota // 1
	Name                             // 2
	AverageGrade                     // 4
	Faculty                          // 8
	IsLeader                         // 16
)

// All selects every field (31).
const All = Age | Name | AverageGrade | Faculty | IsLeader

// BitFor returns the bit assigned to f, or None for an unknown field.
func BitFor(f types.Field) BitMask {
	if !f.Valid() {
		return None
	}
	return 1 << f
}

// Has is the membership test: it reports whether m and flag share at
// least one selected field, i.e. (m & flag) != 0.
func (m BitMask) Has(flag BitMask) bool {
	return m&flag != 0
}

// IsSelected implements Selector.
func (m BitMask) IsSelected(f types.Field) bool {
	return m&BitFor(f) != 0
}

// Fields returns the selected fields in canonical order.
func (m BitMask) Fields() []types.Field {
	fields := make([]types.Field, 0, len(types.Fields()))
	for _, f := range types.Fields() {
		if m.IsSelected(f) {
			fields = append(fields, f)
		}
	}
	return fields
}

// String renders the mask as "age|name", or "none" for the empty mask.
func (m BitMask) String() string {
	fields := m.Fields()
	if len(fields) == 0 {
		return "none"
	}
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key()
	}
	return strings.Join(keys, "|")
}

// Union selects every field selected by a or b.
func Union(a, b BitMask) BitMask {
	return (a | b) & All
}

// Intersection selects only the fields selected by both a and b.
func Intersection(a, b BitMask) BitMask {
	return a & b & All
}

// Complement selects exactly the fields m does not select.
// The result is clipped to the five field bits, so
// Complement(Complement(m)) == m for every valid m.
func Complement(m BitMask) BitMask {
	return ^m & All
}

// ParseBitMask builds a mask from field keys such as "age" or
// "average_grade". Empty keys are skipped; an unknown key is an error.
func ParseBitMask(keys []string) (BitMask, error) {
	m := None
	for _, key := range keys {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		f, err := types.ParseField(key)
		if err != nil {
			return None, fmt.Errorf("ParseBitMask: %w", err)
		}
		m = Union(m, BitFor(f))
	}
	return m, nil
}
