// Package student contains all HTTP handlers related to the Student resource.
//
// HANDLER PATTERN — THE CLOSURE / FACTORY PATTERN:
// ─────────────────────────────────────────────────
// Each exported function receives its dependencies (the store) once, at
// route registration, and returns the http.HandlerFunc the router calls
// on every request:
//
//	router.HandleFunc("POST /api/students", student.New(storage))
//
// FIELD MASKS
// ───────────
// Every GET accepts two optional query parameters that decide which fields
// are returned:
//
//	fields=age,name       — include only these (default: all five)
//	exclude=faculty       — drop these from whatever "fields" selected
//
// and format=text switches the body from JSON to the plain-text
// "Student Info:" listing.
package student

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/grxxnzzz/SDM/internal/fieldmask"
	"github.com/grxxnzzz/SDM/internal/storage"
	"github.com/grxxnzzz/SDM/internal/types"
	"github.com/grxxnzzz/SDM/internal/utils/response"
)

// ─────────────────────────────────────────────────────────────────────────────
// New handles POST /api/students
//
// Request body (JSON):
//
//	{ "age": 20, "name": "Ion", "average_grade": 4.5, "faculty": "cs", "is_leader": true }
//
// Success response (201 Created):
//
//	{ "status": "ok" }
//
// Error responses:
//
//	400 Bad Request  — empty body, malformed JSON, or failed validation
//	500 Internal     — store error
//
// ─────────────────────────────────────────────────────────────────────────────
func New(storage storage.Storage) http.HandlerFunc {
	validate := validator.New()

	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a student")

		var input types.StudentInput
		err := json.NewDecoder(r.Body).Decode(&input)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if err := validate.Struct(input); err != nil {
			var validateErrs validator.ValidationErrors
			if errors.As(err, &validateErrs) {
				response.WriteJSON(w, http.StatusBadRequest,
					response.ValidationError(validateErrs))
				return
			}
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		student, err := input.ToStudent()
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if err := storage.AddStudent(student); err != nil {
			slog.Error("error adding student", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("student created", slog.String("name", student.Name()))
		response.WriteJSON(w, http.StatusCreated, response.OK())
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetList handles GET /api/students and GET /api/students?name=Ion
//
// Without "name" every student is returned; with it, only exact matches.
// An empty result is [] (not null).
// ─────────────────────────────────────────────────────────────────────────────
func GetList(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mask, err := maskFromQuery(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		var students []types.Student
		if r.URL.Query().Has("name") {
			name := r.URL.Query().Get("name")
			slog.Info("finding students by name", slog.String("name", name))
			students, err = storage.FindByName(name)
		} else {
			slog.Info("getting all students")
			students, err = storage.Students()
		}
		if err != nil {
			slog.Error("error getting students", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		render(w, r, students, mask)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetByField handles GET /api/students/{field}/{value}
//
//	GET /api/students/faculty/cs
//	GET /api/students/average_grade/4.5?fields=name
//
// {field} is a field key; {value} is parsed into that field's type.
//
// Error responses:
//
//	400 Bad Request  — unknown field, unparsable value, or bad mask
//	500 Internal     — store error
//
// ─────────────────────────────────────────────────────────────────────────────
func GetByField(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, raw := r.PathValue("field"), r.PathValue("value")
		slog.Info("finding students by field",
			slog.String("field", key), slog.String("value", raw))

		field, err := types.ParseField(key)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		value, err := field.ParseValue(raw)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		mask, err := maskFromQuery(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		students, err := storage.FindByField(field, value)
		if err != nil {
			slog.Error("error finding students",
				slog.String("field", key),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		render(w, r, students, mask)
	}
}

// maskFromQuery combines ?fields= and ?exclude= into one BitMask:
//
//	Intersection(fields, Complement(exclude))
//
// A missing "fields" parameter means every field.
func maskFromQuery(r *http.Request) (fieldmask.BitMask, error) {
	q := r.URL.Query()

	include := fieldmask.All
	if q.Has("fields") {
		m, err := fieldmask.ParseBitMask(strings.Split(q.Get("fields"), ","))
		if err != nil {
			return fieldmask.None, err
		}
		include = m
	}

	exclude, err := fieldmask.ParseBitMask(strings.Split(q.Get("exclude"), ","))
	if err != nil {
		return fieldmask.None, err
	}

	return fieldmask.Intersection(include, fieldmask.Complement(exclude)), nil
}

// render writes the masked students as JSON (default) or as text.
func render(w http.ResponseWriter, r *http.Request, students []types.Student, mask fieldmask.BitMask) {
	if r.URL.Query().Get("format") == "text" {
		err := response.WriteText(w, http.StatusOK, func(w http.ResponseWriter) error {
			for _, s := range students {
				if err := fieldmask.Print(w, s, mask); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			slog.Error("error writing students", slog.String("error", err.Error()))
		}
		return
	}

	out := make([]map[string]any, 0, len(students))
	for _, s := range students {
		out = append(out, fieldmask.Project(s, mask))
	}
	response.WriteJSON(w, http.StatusOK, out)
}
