package fieldmask

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/grxxnzzz/SDM/internal/types"
)

// Header is the line Print writes before the selected fields.
const Header = "Student Info:"

// ─────────────────────────────────────────────────────────────────────────────
// Format writes one "<Label>: <value>" line for every field sel selects,
// walking the fields in canonical order:
//
//	Age, Name, Average Grade, Faculty, Is Leader
//
// Unselected fields write nothing, so an empty mask writes nothing at all.
// Output goes only to w: a *bytes.Buffer in tests, os.Stdout in a CLI.
// ─────────────────────────────────────────────────────────────────────────────
func Format(w io.Writer, s types.Student, sel Selector) error {
	for _, f := range types.Fields() {
		if !sel.IsSelected(f) {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", f.Label(), formatValue(s, f)); err != nil {
			return fmt.Errorf("Format: write %s: %w", f.Key(), err)
		}
	}
	return nil
}

// Print is Format preceded by the "Student Info:" header.
func Print(w io.Writer, s types.Student, sel Selector) error {
	if _, err := fmt.Fprintln(w, Header); err != nil {
		return fmt.Errorf("Print: write header: %w", err)
	}
	return Format(w, s, sel)
}

// Project returns the selected fields keyed by their JSON key.
// Faculty is reported by its display label, as in the text form.
func Project(s types.Student, sel Selector) map[string]any {
	out := make(map[string]any)
	for _, f := range types.Fields() {
		if !sel.IsSelected(f) {
			continue
		}
		switch f {
		case types.FieldFaculty:
			out[f.Key()] = s.Faculty().Label()
		default:
			v, _ := f.Value(s) // f comes from types.Fields(), always valid
			out[f.Key()] = v
		}
	}
	return out
}

func formatValue(s types.Student, f types.Field) string {
	switch f {
	case types.FieldAge:
		return strconv.Itoa(s.Age())
	case types.FieldName:
		return s.Name()
	case types.FieldAverageGrade:
		return formatGrade(s.AverageGrade())
	case types.FieldFaculty:
		return s.Faculty().Label()
	case types.FieldIsLeader:
		return strconv.FormatBool(s.IsLeader())
	default:
		return ""
	}
}

// formatGrade prints the shortest decimal that round-trips, keeping a
// trailing ".0" on whole numbers: 4.5 → "4.5", 4 → "4.0".
// NaN and ±Inf are printed as strconv spells them.
func formatGrade(v float64) string {
	out := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return out
	}
	return out + ".0"
}
