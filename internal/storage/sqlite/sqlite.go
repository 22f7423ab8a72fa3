// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// IN-MEMORY ONLY
// ──────────────
// The database is opened with mode=memory, so nothing is ever written to
// disk and the data disappears when the last connection closes. The
// cache=shared flag makes every pooled connection see the SAME database
// (without it each connection would get its own private, empty one).
//
// The blank import below registers the sqlite3 driver with database/sql.
package sqlite

import (
	"database/sql"
	"fmt"
	"math"

	"github.com/grxxnzzz/SDM/internal/config"
	"github.com/grxxnzzz/SDM/internal/types"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Storage.
// It holds a *sql.DB which is a connection pool managed by database/sql.
// A single *sql.DB is safe for concurrent use by multiple goroutines.
type SQLite struct {
	Db *sql.DB
}

// New opens the named in-memory database cfg.Storage.Name, creates the
// students table if it does not already exist, and returns a ready-to-use
// *SQLite.
func New(cfg *config.Config) (*SQLite, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", cfg.Storage.Name)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// A shared-cache memory database lives only as long as at least one
	// connection to it is open. Keep exactly one, forever.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// Schema:
	//   id            — insertion order; lookups ORDER BY it
	//   age           — INTEGER
	//   name          — TEXT, compared exactly (BINARY collation)
	//   average_grade — REAL, compared exactly; NULL holds NaN
	//   faculty       — the types.Faculty code (1, 2, 3)
	//   is_leader     — 0 / 1
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS students (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			age           INTEGER NOT NULL,
			name          TEXT    NOT NULL,
			average_grade REAL,
			faculty       INTEGER NOT NULL,
			is_leader     BOOLEAN NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// Close releases the connection; the in-memory data is dropped with it.
func (s *SQLite) Close() error {
	return s.Db.Close()
}

// AddStudent inserts a new row. Placeholders (?) keep the values out of
// the SQL text, so a name like "'; DROP TABLE students; --" is just data.
func (s *SQLite) AddStudent(student types.Student) error {
	stmt, err := s.Db.Prepare(
		"INSERT INTO students (age, name, average_grade, faculty, is_leader) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("AddStudent: prepare: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(
		student.Age(),
		student.Name(),
		student.AverageGrade(),
		int64(student.Faculty()),
		student.IsLeader(),
	)
	if err != nil {
		return fmt.Errorf("AddStudent: exec: %w", err)
	}

	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// FindByField runs SELECT ... WHERE <column> = ? ORDER BY id.
//
// The column name cannot be a placeholder, so it comes from a fixed switch
// over types.Field (never from user input). The value is checked with the
// same types.Field.Matcher the memory store uses, so both backends reject
// exactly the same bad selectors.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) FindByField(field types.Field, value any) ([]types.Student, error) {
	if _, err := field.Matcher(value); err != nil {
		return nil, fmt.Errorf("FindByField: %w", err)
	}

	column, arg := columnFor(field, value)
	return s.query("FindByField",
		"SELECT age, name, average_grade, faculty, is_leader FROM students WHERE "+column+" = ? ORDER BY id",
		arg,
	)
}

// FindByName returns every student called exactly name.
func (s *SQLite) FindByName(name string) ([]types.Student, error) {
	return s.FindByField(types.FieldName, name)
}

// Students returns every row in insertion order.
func (s *SQLite) Students() ([]types.Student, error) {
	return s.query("Students",
		"SELECT age, name, average_grade, faculty, is_leader FROM students ORDER BY id",
	)
}

// query runs a SELECT over the five student columns and scans every row.
func (s *SQLite) query(op, q string, args ...any) ([]types.Student, error) {
	stmt, err := s.Db.Prepare(q)
	if err != nil {
		return nil, fmt.Errorf("%s: prepare: %w", op, err)
	}
	defer stmt.Close()

	rows, err := stmt.Query(args...)
	if err != nil {
		return nil, fmt.Errorf("%s: query: %w", op, err)
	}
	defer rows.Close()

	// Pre-allocate an empty (non-nil) slice: "no match" is [] not null.
	students := make([]types.Student, 0)

	for rows.Next() {
		var (
			age      int
			name     string
			grade    sql.NullFloat64
			faculty  int64
			isLeader bool
		)
		if err := rows.Scan(&age, &name, &grade, &faculty, &isLeader); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}
		students = append(students,
			types.NewStudent(age, name, gradeFromColumn(grade), types.Faculty(faculty), isLeader))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration: %w", op, err)
	}

	return students, nil
}

// SQLite binds a NaN double as NULL. A NULL grade therefore reads back as
// NaN, and "average_grade = NULL" never matches, just as NaN != NaN.
func gradeFromColumn(grade sql.NullFloat64) float64 {
	if !grade.Valid {
		return math.NaN()
	}
	return grade.Float64
}

// columnFor maps a validated field/value pair to its column and SQL argument.
func columnFor(field types.Field, value any) (string, any) {
	switch field {
	case types.FieldAge:
		return "age", value
	case types.FieldName:
		return "name", value
	case types.FieldAverageGrade:
		return "average_grade", value
	case types.FieldFaculty:
		return "faculty", int64(value.(types.Faculty))
	default: // types.FieldIsLeader
		return "is_leader", value
	}
}
