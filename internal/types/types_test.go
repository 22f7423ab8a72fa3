package types

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStudent(t *testing.T) {
	s := NewStudent(20, "John", 4.5, FacultyCS, true)

	assert.Equal(t, 20, s.Age())
	assert.Equal(t, "John", s.Name())
	assert.Equal(t, 4.5, s.AverageGrade())
	assert.Equal(t, FacultyCS, s.Faculty())
	assert.True(t, s.IsLeader())
}

func TestNewStudentAcceptsOutOfRangeValues(t *testing.T) {
	s := NewStudent(-1, "", 9.9, FacultyMath, false)

	assert.Equal(t, -1, s.Age())
	assert.Equal(t, "", s.Name())
	assert.Equal(t, 9.9, s.AverageGrade())
}

func TestFacultyLabels(t *testing.T) {
	assert.Equal(t, "Math", FacultyMath.Label())
	assert.Equal(t, "Physics", FacultyPhysics.Label())
	assert.Equal(t, "Computer Science", FacultyCS.Label())
	assert.Equal(t, "Computer Science", FacultyCS.String())

	assert.Len(t, Faculties(), 3)
	seen := map[string]bool{}
	for _, f := range Faculties() {
		assert.True(t, f.Valid())
		assert.False(t, seen[f.Label()], "duplicate label %s", f.Label())
		seen[f.Label()] = true
	}
}

func TestFacultyZeroValueIsInvalid(t *testing.T) {
	var f Faculty
	assert.False(t, f.Valid())
	assert.False(t, Faculty(42).Valid())
	assert.Equal(t, "", f.Key())
}

func TestParseFaculty(t *testing.T) {
	tests := []struct {
		key  string
		want Faculty
	}{
		{"math", FacultyMath},
		{"physics", FacultyPhysics},
		{"cs", FacultyCS},
		{"CS", FacultyCS},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := ParseFaculty(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseFaculty("biology")
	assert.ErrorIs(t, err, ErrUnknownFaculty)
}

func TestStudentInputValidation(t *testing.T) {
	validate := validator.New()

	t.Run("valid body", func(t *testing.T) {
		var in StudentInput
		body := `{"age":0,"name":"Ion","average_grade":0,"faculty":"cs","is_leader":false}`
		require.NoError(t, json.Unmarshal([]byte(body), &in))
		require.NoError(t, validate.Struct(in))

		s, err := in.ToStudent()
		require.NoError(t, err)
		assert.Equal(t, NewStudent(0, "Ion", 0, FacultyCS, false), s)
	})

	t.Run("missing fields", func(t *testing.T) {
		var in StudentInput
		require.NoError(t, json.Unmarshal([]byte(`{"name":"Ion"}`), &in))

		err := validate.Struct(in)
		require.Error(t, err)
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Len(t, verrs, 4)
	})

	t.Run("unknown faculty", func(t *testing.T) {
		var in StudentInput
		body := `{"age":20,"name":"Ion","average_grade":4.5,"faculty":"art","is_leader":true}`
		require.NoError(t, json.Unmarshal([]byte(body), &in))
		assert.Error(t, validate.Struct(in))
	})
}
