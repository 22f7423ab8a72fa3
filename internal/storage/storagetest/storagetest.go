// Package storagetest holds the behaviour every storage.Storage backend
// must share. Backend packages call Run from their own tests.
package storagetest

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grxxnzzz/SDM/internal/storage"
	"github.com/grxxnzzz/SDM/internal/types"
)

// Run exercises a fresh store returned by newStore in every subtest.
func Run(t *testing.T, newStore func(t *testing.T) storage.Storage) {
	t.Helper()

	alice1 := types.NewStudent(20, "Alice", 4.5, types.FacultyCS, true)
	alice2 := types.NewStudent(22, "Alice", 3.9, types.FacultyMath, false)
	bob := types.NewStudent(22, "Bob", 3.7, types.FacultyMath, false)

	seed := func(t *testing.T, st storage.Storage, students ...types.Student) {
		t.Helper()
		for _, s := range students {
			require.NoError(t, st.AddStudent(s))
		}
	}

	t.Run("empty store lists nothing", func(t *testing.T) {
		st := newStore(t)

		all, err := st.Students()
		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)
	})

	t.Run("add then find returns the student", func(t *testing.T) {
		st := newStore(t)
		seed(t, st, bob)

		got, err := st.FindByField(types.FieldAge, 22)
		require.NoError(t, err)
		assertStudents(t, []types.Student{bob}, got)
	})

	t.Run("find by name keeps insertion order", func(t *testing.T) {
		st := newStore(t)
		seed(t, st, alice1, bob, alice2)

		got, err := st.FindByName("Alice")
		require.NoError(t, err)
		assertStudents(t, []types.Student{alice1, alice2}, got)
	})

	t.Run("no match is an empty slice", func(t *testing.T) {
		st := newStore(t)
		seed(t, st, alice1, alice2)

		got, err := st.FindByName("Bob")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("find by every field", func(t *testing.T) {
		st := newStore(t)
		seed(t, st, alice1, alice2, bob)

		tests := []struct {
			field types.Field
			value any
			want  []types.Student
		}{
			{types.FieldAge, 22, []types.Student{alice2, bob}},
			{types.FieldName, "Bob", []types.Student{bob}},
			{types.FieldAverageGrade, 4.5, []types.Student{alice1}},
			{types.FieldAverageGrade, 4.4, []types.Student{}},
			{types.FieldFaculty, types.FacultyMath, []types.Student{alice2, bob}},
			{types.FieldFaculty, types.FacultyPhysics, []types.Student{}},
			{types.FieldIsLeader, true, []types.Student{alice1}},
			{types.FieldIsLeader, false, []types.Student{alice2, bob}},
		}
		for _, tt := range tests {
			got, err := st.FindByField(tt.field, tt.value)
			require.NoError(t, err, "%s=%v", tt.field, tt.value)
			assertStudents(t, tt.want, got)
		}
	})

	t.Run("bad selectors fail fast", func(t *testing.T) {
		st := newStore(t)

		_, err := st.FindByField(types.Field(42), "Alice")
		assert.ErrorIs(t, err, types.ErrUnknownField)

		_, err = st.FindByField(types.FieldAge, "20")
		assert.ErrorIs(t, err, types.ErrFieldValue)
	})

	t.Run("out-of-range values are stored as given", func(t *testing.T) {
		st := newStore(t)
		nanGrade := types.NewStudent(20, "Ion", math.NaN(), types.FacultyCS, true)
		negInfGrade := types.NewStudent(21, "Dan", math.Inf(-1), types.FacultyMath, false)
		negativeAge := types.NewStudent(-3, "Eva", 2.5, types.FacultyPhysics, false)
		noFaculty := types.NewStudent(19, "Lia", 3.0, types.Faculty(0), true)
		seed(t, st, nanGrade, negInfGrade, negativeAge, noFaculty)

		all, err := st.Students()
		require.NoError(t, err)
		assertStudents(t, []types.Student{nanGrade, negInfGrade, negativeAge, noFaculty}, all)

		// NaN never equals anything, itself included
		got, err := st.FindByField(types.FieldAverageGrade, math.NaN())
		require.NoError(t, err)
		assertStudents(t, []types.Student{}, got)

		got, err = st.FindByField(types.FieldAverageGrade, math.Inf(-1))
		require.NoError(t, err)
		assertStudents(t, []types.Student{negInfGrade}, got)

		got, err = st.FindByField(types.FieldAge, -3)
		require.NoError(t, err)
		assertStudents(t, []types.Student{negativeAge}, got)

		got, err = st.FindByField(types.FieldFaculty, types.Faculty(0))
		require.NoError(t, err)
		assertStudents(t, []types.Student{noFaculty}, got)
	})

	t.Run("lookups do not modify the store", func(t *testing.T) {
		st := newStore(t)
		seed(t, st, alice1, bob)

		_, err := st.FindByName("Alice")
		require.NoError(t, err)

		all, err := st.Students()
		require.NoError(t, err)
		assertStudents(t, []types.Student{alice1, bob}, all)
	})
}

func assertStudents(t *testing.T, want, got []types.Student) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(types.Student{}), cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("students mismatch (-want +got):\n%s", diff)
	}
}
