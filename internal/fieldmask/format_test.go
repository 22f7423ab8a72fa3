package fieldmask

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grxxnzzz/SDM/internal/types"
)

func format(t *testing.T, s types.Student, sel Selector) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Format(&buf, s, sel))
	return buf.String()
}

func TestBoolMaskFlags(t *testing.T) {
	m := NewBoolMask(true, false, true, false, true)

	assert.True(t, m.IncludeAge)
	assert.False(t, m.IncludeName)
	assert.True(t, m.IncludeAverageGrade)
	assert.False(t, m.IncludeFaculty)
	assert.True(t, m.IncludeIsLeader)

	assert.True(t, m.IsSelected(types.FieldAge))
	assert.False(t, m.IsSelected(types.FieldName))
	assert.False(t, m.IsSelected(types.Field(9)))
}

func TestFormatAllFields(t *testing.T) {
	s := types.NewStudent(20, "Test", 4.5, types.FacultyCS, true)

	want := "Age: 20\n" +
		"Name: Test\n" +
		"Average Grade: 4.5\n" +
		"Faculty: Computer Science\n" +
		"Is Leader: true\n"

	assert.Equal(t, want, format(t, s, NewBoolMask(true, true, true, true, true)))
	assert.Equal(t, want, format(t, s, All))
}

func TestFormatNoFields(t *testing.T) {
	s := types.NewStudent(20, "Test", 4.5, types.FacultyCS, true)

	assert.Empty(t, format(t, s, BoolMask{}))
	assert.Empty(t, format(t, s, None))
}

func TestFormatAgeAndGradeOnly(t *testing.T) {
	s := types.NewStudent(20, "Ion", 4.5, types.FacultyCS, true)

	for name, sel := range map[string]Selector{
		"bool": NewBoolMask(true, false, true, false, false),
		"bits": Age | AverageGrade,
	} {
		t.Run(name, func(t *testing.T) {
			out := format(t, s, sel)
			lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

			assert.Equal(t, []string{"Age: 20", "Average Grade: 4.5"}, lines)
			assert.NotContains(t, out, "Name")
			assert.NotContains(t, out, "Faculty")
			assert.NotContains(t, out, "Is Leader")
		})
	}
}

// Every bool mask must print exactly what the equivalent bit mask prints.
func TestBoolAndBitMasksAgree(t *testing.T) {
	s := types.NewStudent(22, "Alex", 3.8, types.FacultyMath, false)

	for bits := None; bits <= All; bits++ {
		boolMask := NewBoolMask(
			bits&Age != 0,
			bits&Name != 0,
			bits&AverageGrade != 0,
			bits&Faculty != 0,
			bits&IsLeader != 0,
		)

		got := format(t, s, bits)
		require.Equal(t, format(t, s, boolMask), got, "mask %s", bits)

		for _, f := range types.Fields() {
			require.Equal(t, bits.IsSelected(f), strings.Contains(got, f.Label()+": "),
				"mask %s field %s", bits, f)
		}
	}
}

func TestFormatGrade(t *testing.T) {
	tests := []struct {
		grade float64
		want  string
	}{
		{4.5, "4.5"},
		{4.0, "4.0"},
		{0, "0.0"},
		{-2, "-2.0"},
		{3.75, "3.75"},
		{100, "100.0"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "+Inf"},
		{math.Inf(-1), "-Inf"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			s := types.NewStudent(20, "Ion", tt.grade, types.FacultyPhysics, false)
			assert.Equal(t, "Average Grade: "+tt.want+"\n", format(t, s, AverageGrade))
		})
	}
}

func TestPrintWritesHeader(t *testing.T) {
	s := types.NewStudent(20, "Test", 4.5, types.FacultyCS, true)

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, s, None))
	assert.Equal(t, "Student Info:\n", buf.String())

	buf.Reset()
	require.NoError(t, Print(&buf, s, Age|Faculty))
	assert.Equal(t, "Student Info:\nAge: 20\nFaculty: Computer Science\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("sink closed") }

func TestFormatReportsWriteErrors(t *testing.T) {
	s := types.NewStudent(20, "Test", 4.5, types.FacultyCS, true)

	assert.Error(t, Format(failingWriter{}, s, All))
	assert.NoError(t, Format(failingWriter{}, s, None))
	assert.Error(t, Print(failingWriter{}, s, None))
}

func TestProject(t *testing.T) {
	s := types.NewStudent(20, "Ion", 4.5, types.FacultyCS, true)

	assert.Equal(t, map[string]any{
		"age":     20,
		"faculty": "Computer Science",
	}, Project(s, Age|Faculty))

	assert.Empty(t, Project(s, None))
	assert.Len(t, Project(s, NewBoolMask(true, true, true, true, true)), 5)
}
