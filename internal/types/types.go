// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// fieldmask, storage, and handlers can all import types without depending
// on each other.
package types

// Student represents a single student record.
//
// All fields are UNEXPORTED. The only way to build a Student is
// NewStudent, and the only way to read it is through the accessor
// methods below. Once created a Student never changes, so it can be
// copied into a store and handed back to callers without aliasing
// mutable state.
type Student struct {
	age          int
	name         string
	averageGrade float64
	faculty      Faculty
	isLeader     bool
}

// NewStudent builds a Student from its five fields in canonical order.
//
// No validation happens here: a negative age or a grade outside 0.0–5.0
// is stored as given. Request payloads are validated one layer up, in
// StudentInput.
func NewStudent(age int, name string, averageGrade float64, faculty Faculty, isLeader bool) Student {
	return Student{
		age:          age,
		name:         name,
		averageGrade: averageGrade,
		faculty:      faculty,
		isLeader:     isLeader,
	}
}

func (s Student) Age() int              { return s.age }
func (s Student) Name() string          { return s.name }
func (s Student) AverageGrade() float64 { return s.averageGrade }
func (s Student) Faculty() Faculty      { return s.faculty }
func (s Student) IsLeader() bool        { return s.isLeader }

// StudentInput is the JSON body accepted by POST /api/students.
//
// Struct tags serve two purposes:
//
//  1. json:"..."  — controls how the field appears in the request body.
//
//  2. validate:"..." — rules checked by the go-playground/validator
//     package. Pointers are used for Age, AverageGrade and IsLeader so
//     that "required" can tell a missing value apart from a legitimate
//     zero (age 0, grade 0.0, is_leader false).
type StudentInput struct {
	Age          *int     `json:"age"           validate:"required,gte=0"`
	Name         string   `json:"name"          validate:"required"`
	AverageGrade *float64 `json:"average_grade" validate:"required,gte=0,lte=5"`
	Faculty      string   `json:"faculty"       validate:"required,oneof=math physics cs"`
	IsLeader     *bool    `json:"is_leader"     validate:"required"`
}

// ToStudent converts a validated input into a Student.
// Call it only after the validator has accepted the input.
func (in StudentInput) ToStudent() (Student, error) {
	faculty, err := ParseFaculty(in.Faculty)
	if err != nil {
		return Student{}, err
	}
	return NewStudent(*in.Age, in.Name, *in.AverageGrade, faculty, *in.IsLeader), nil
}
