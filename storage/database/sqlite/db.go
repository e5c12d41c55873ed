package sqlitedb

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS "user" (
	id            TEXT PRIMARY KEY,
	username      TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	role          TEXT NOT NULL,
	password_hash BLOB NOT NULL,
	created_at    TEXT NOT NULL,
	updated_at    TEXT NOT NULL,
	last_login    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS course (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	teacher_email TEXT NOT NULL,
	created_at    TEXT NOT NULL,
	updated_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS course_content (
	course_id TEXT NOT NULL REFERENCES course (id) ON DELETE CASCADE,
	content   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS course_grade (
	course_id     TEXT NOT NULL REFERENCES course (id) ON DELETE CASCADE,
	student_email TEXT NOT NULL,
	score         INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS course_student (
	course_id     TEXT NOT NULL REFERENCES course (id) ON DELETE CASCADE,
	student_email TEXT NOT NULL
);
`

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Open connects an in-memory sqlite database and bootstraps the schema.
func Open() (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", ":memory:")
	if err != nil {
		return nil, errors.Wrap(err, "connecting")
	}
	// a second connection would get its own empty memory database
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, errors.Wrap(err, "enabling foreign keys")
	}
	if _, err = db.Exec(schema); err != nil {
		return nil, errors.Wrap(err, "bootstrapping schema")
	}
	return db, nil
}

// inTx runs fn in a transaction, rolling back on error.
func inTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}
	if err = fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return errors.Wrap(tx.Commit(), "committing transaction")
}

// formatTime stores times as RFC3339Nano strings; the zero time maps to "".
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
