// students-demo walks through the field-mask pattern on stdout:
// it fills a store, looks students up by name, prints them through a
// boolean mask and through a bit mask, and shows the three mask
// combinators.
//
//	go run ./cmd/students-demo
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/grxxnzzz/SDM/internal/fieldmask"
	"github.com/grxxnzzz/SDM/internal/storage"
	"github.com/grxxnzzz/SDM/internal/storage/memory"
	"github.com/grxxnzzz/SDM/internal/types"
)

const rule = "--------------------"

func main() {
	if err := run(os.Stdout, memory.New()); err != nil {
		slog.Error("demo failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(w io.Writer, st storage.Storage) error {
	for _, s := range []types.Student{
		types.NewStudent(20, "Ion", 4.5, types.FacultyCS, true),
		types.NewStudent(22, "Alex", 3.8, types.FacultyMath, false),
		types.NewStudent(20, "Ion", 4.0, types.FacultyPhysics, false),
	} {
		if err := st.AddStudent(s); err != nil {
			return fmt.Errorf("run: add: %w", err)
		}
	}

	ions, err := st.FindByName("Ion")
	if err != nil {
		return fmt.Errorf("run: find: %w", err)
	}

	// age, name and faculty, once as flags and once as bits
	boolMask := fieldmask.NewBoolMask(true, true, false, true, false)
	bitMask := fieldmask.Age | fieldmask.Name | fieldmask.Faculty

	for _, section := range []struct {
		title string
		sel   fieldmask.Selector
	}{
		{"Testing boolean mask:", boolMask},
		{"Testing bit mask:", bitMask},
	} {
		if _, err := fmt.Fprintf(w, "%s\n%s\n%s\n", rule, section.title, rule); err != nil {
			return fmt.Errorf("run: write: %w", err)
		}
		for _, s := range ions {
			if err := fieldmask.Print(w, s, section.sel); err != nil {
				return fmt.Errorf("run: print: %w", err)
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return fmt.Errorf("run: write: %w", err)
		}
	}

	mask1 := fieldmask.Age | fieldmask.Name
	mask2 := fieldmask.Faculty | fieldmask.IsLeader

	union := fieldmask.Union(mask1, mask2)
	intersection := fieldmask.Intersection(mask1, mask2)
	complement := fieldmask.Complement(mask1)

	_, err = fmt.Fprintf(w,
		"%s\nTesting mask combinations:\n%s\n"+
			"OR mask: %s (%d)\n"+
			"AND mask: %s (%d)\n"+
			"NOT mask: %s (%d)\n",
		rule, rule,
		union, uint8(union),
		intersection, uint8(intersection),
		complement, uint8(complement),
	)
	if err != nil {
		return fmt.Errorf("run: write: %w", err)
	}

	return nil
}
