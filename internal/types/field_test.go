package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldsCanonicalOrder(t *testing.T) {
	assert.Equal(t,
		[]Field{FieldAge, FieldName, FieldAverageGrade, FieldFaculty, FieldIsLeader},
		Fields())

	var labels []string
	for _, f := range Fields() {
		labels = append(labels, f.Label())
	}
	assert.Equal(t, []string{"Age", "Name", "Average Grade", "Faculty", "Is Leader"}, labels)
}

func TestParseField(t *testing.T) {
	for _, f := range Fields() {
		got, err := ParseField(f.Key())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseField("email")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestFieldMatcher(t *testing.T) {
	s := NewStudent(20, "Ion", 4.5, FacultyCS, true)

	tests := []struct {
		name  string
		field Field
		value any
		want  bool
	}{
		{"age match", FieldAge, 20, true},
		{"age miss", FieldAge, 21, false},
		{"name match", FieldName, "Ion", true},
		{"name is case sensitive", FieldName, "ion", false},
		{"grade exact", FieldAverageGrade, 4.5, true},
		{"grade no tolerance", FieldAverageGrade, 4.5000001, false},
		{"faculty match", FieldFaculty, FacultyCS, true},
		{"faculty miss", FieldFaculty, FacultyMath, false},
		{"leader match", FieldIsLeader, true, true},
		{"leader miss", FieldIsLeader, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, err := tt.field.Matcher(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, match(s))
		})
	}
}

func TestFieldMatcherRejectsBadSelectors(t *testing.T) {
	_, err := Field(99).Matcher("x")
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = FieldAge.Matcher("20")
	assert.ErrorIs(t, err, ErrFieldValue)

	_, err = FieldAverageGrade.Matcher(4)
	assert.ErrorIs(t, err, ErrFieldValue)

	_, err = FieldFaculty.Matcher("cs")
	assert.ErrorIs(t, err, ErrFieldValue)
}

func TestFieldValue(t *testing.T) {
	s := NewStudent(20, "Ion", 4.5, FacultyCS, true)
	want := []any{20, "Ion", 4.5, FacultyCS, true}

	for i, f := range Fields() {
		v, err := f.Value(s)
		require.NoError(t, err)
		assert.Equal(t, want[i], v)
	}

	_, err := Field(7).Value(s)
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestFieldParseValue(t *testing.T) {
	tests := []struct {
		field Field
		raw   string
		want  any
	}{
		{FieldAge, "22", 22},
		{FieldName, "Alex", "Alex"},
		{FieldAverageGrade, "3.8", 3.8},
		{FieldFaculty, "physics", FacultyPhysics},
		{FieldIsLeader, "true", true},
	}
	for _, tt := range tests {
		t.Run(tt.field.Key(), func(t *testing.T) {
			got, err := tt.field.ParseValue(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// a parsed value must always be accepted by Matcher
			_, err = tt.field.Matcher(got)
			assert.NoError(t, err)
		})
	}

	_, err := FieldAge.ParseValue("twenty")
	assert.ErrorIs(t, err, ErrFieldValue)
	_, err = FieldFaculty.ParseValue("art")
	assert.ErrorIs(t, err, ErrFieldValue)
	_, err = FieldIsLeader.ParseValue("maybe")
	assert.ErrorIs(t, err, ErrFieldValue)
}
