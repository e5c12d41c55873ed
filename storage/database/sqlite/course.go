package sqlitedb

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/course"
)

type courseRow struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	TeacherEmail string `db:"teacher_email"`
	CreatedAt    string `db:"created_at"`
	UpdatedAt    string `db:"updated_at"`
}

func newCourseRow(crs course.Course) courseRow {
	return courseRow{
		ID:           crs.ID,
		Name:         crs.Name,
		TeacherEmail: crs.TeacherEmail,
		CreatedAt:    formatTime(crs.CreatedAt),
		UpdatedAt:    formatTime(crs.UpdatedAt),
	}
}

func (row courseRow) course() course.Course {
	return course.Course{
		ID:           row.ID,
		Name:         row.Name,
		TeacherEmail: row.TeacherEmail,
		CreatedAt:    parseTime(row.CreatedAt),
		UpdatedAt:    parseTime(row.UpdatedAt),
	}
}

type gradeRow struct {
	StudentEmail string `db:"student_email"`
	Score        int    `db:"score"`
}

type courseRepository struct {
	db *sqlx.DB
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(db *sqlx.DB) *courseRepository {
	return &courseRepository{db: db}
}

// trapNoRowsErr maps sql "no rows" err to course.ErrNotFound
func (repo *courseRepository) trapNoRowsErr(err error, msg string) error {
	if err == sql.ErrNoRows {
		return course.ErrNotFound
	}
	return errors.Wrap(err, msg)
}

// loadChildren fills the contents, grades and students of crs in insertion order.
func (repo *courseRepository) loadChildren(ctx context.Context, crs *course.Course) error {
	err := repo.db.SelectContext(ctx, &crs.Contents,
		`SELECT content FROM course_content WHERE course_id = ? ORDER BY rowid`, crs.ID)
	if err != nil {
		return errors.Wrap(err, "querying course contents")
	}

	var grades []gradeRow
	err = repo.db.SelectContext(ctx, &grades,
		`SELECT student_email, score FROM course_grade WHERE course_id = ? ORDER BY rowid`, crs.ID)
	if err != nil {
		return errors.Wrap(err, "querying course grades")
	}
	for _, row := range grades {
		crs.Grades = append(crs.Grades, course.Grade{StudentEmail: row.StudentEmail, Score: row.Score})
	}

	err = repo.db.SelectContext(ctx, &crs.Students,
		`SELECT student_email FROM course_student WHERE course_id = ? ORDER BY rowid`, crs.ID)
	if err != nil {
		return errors.Wrap(err, "querying course students")
	}
	return nil
}

func (repo *courseRepository) insertChildren(ctx context.Context, tx *sqlx.Tx, crs course.Course) error {
	for _, content := range crs.Contents {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO course_content (course_id, content) VALUES (?, ?)`, crs.ID, content)
		if err != nil {
			return errors.Wrap(err, "inserting course content")
		}
	}
	for _, grade := range crs.Grades {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO course_grade (course_id, student_email, score) VALUES (?, ?, ?)`,
			crs.ID, grade.StudentEmail, grade.Score)
		if err != nil {
			return errors.Wrap(err, "inserting course grade")
		}
	}
	for _, email := range crs.Students {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO course_student (course_id, student_email) VALUES (?, ?)`, crs.ID, email)
		if err != nil {
			return errors.Wrap(err, "inserting course student")
		}
	}
	return nil
}

func (repo *courseRepository) CreateCourse(ctx context.Context, crs course.Course) (course.Course, error) {
	crs.ID = uuid.New().String()
	err := inTx(ctx, repo.db, func(tx *sqlx.Tx) error {
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO course (id, name, teacher_email, created_at, updated_at)
			VALUES (:id, :name, :teacher_email, :created_at, :updated_at)`,
			newCourseRow(crs))
		if err != nil {
			return errors.Wrap(err, "inserting course")
		}
		return repo.insertChildren(ctx, tx, crs)
	})
	if err != nil {
		return course.Course{}, err
	}
	return crs, nil
}

func (repo *courseRepository) QueryAllCourses(ctx context.Context) ([]course.Course, error) {
	var rows []courseRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM course ORDER BY rowid`); err != nil {
		return nil, errors.Wrap(err, "querying courses")
	}
	courses := make([]course.Course, 0, len(rows))
	for _, row := range rows {
		crs := row.course()
		if err := repo.loadChildren(ctx, &crs); err != nil {
			return nil, err
		}
		courses = append(courses, crs)
	}
	return courses, nil
}

func (repo *courseRepository) GetCourseByID(ctx context.Context, id string) (course.Course, error) {
	var row courseRow
	if err := repo.db.GetContext(ctx, &row, `SELECT * FROM course WHERE id = ?`, id); err != nil {
		return course.Course{}, repo.trapNoRowsErr(err, "finding course by ID")
	}
	crs := row.course()
	if err := repo.loadChildren(ctx, &crs); err != nil {
		return course.Course{}, err
	}
	return crs, nil
}

func (repo *courseRepository) FilterCourses(ctx context.Context, filter course.QueryFilter) ([]course.Course, error) {
	var (
		conds []string
		args  []interface{}
	)
	if filter.TeacherEmail != "" {
		conds = append(conds, "teacher_email = ?")
		args = append(args, filter.TeacherEmail)
	}
	if filter.EnrolledStudent != "" {
		conds = append(conds, "EXISTS (SELECT 1 FROM course_student WHERE course_id = course.id AND student_email = ?)")
		args = append(args, filter.EnrolledStudent)
	}
	if filter.NotEnrolledStudent != "" {
		conds = append(conds, "NOT EXISTS (SELECT 1 FROM course_student WHERE course_id = course.id AND student_email = ?)")
		args = append(args, filter.NotEnrolledStudent)
	}

	q := `SELECT * FROM course`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY rowid"

	var rows []courseRow
	if err := repo.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, errors.Wrap(err, "querying courses")
	}
	courses := make([]course.Course, 0, len(rows))
	for _, row := range rows {
		crs := row.course()
		if err := repo.loadChildren(ctx, &crs); err != nil {
			return nil, err
		}
		courses = append(courses, crs)
	}
	return courses, nil
}

func (repo *courseRepository) UpdateCourse(ctx context.Context, crs course.Course) (course.Course, error) {
	err := inTx(ctx, repo.db, func(tx *sqlx.Tx) error {
		// the row keeps its rowid so creation order survives updates
		res, err := tx.NamedExecContext(ctx, `
			UPDATE course
			SET name = :name, teacher_email = :teacher_email, created_at = :created_at, updated_at = :updated_at
			WHERE id = :id`,
			newCourseRow(crs))
		if err != nil {
			return errors.Wrap(err, "updating course")
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return course.ErrNotFound
		}

		for _, table := range []string{"course_content", "course_grade", "course_student"} {
			if _, err = tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE course_id = ?`, crs.ID); err != nil {
				return errors.Wrap(err, "clearing course children")
			}
		}
		return repo.insertChildren(ctx, tx, crs)
	})
	if err != nil {
		return course.Course{}, err
	}
	return crs, nil
}

func (repo *courseRepository) DeleteCourse(ctx context.Context, id string) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM course WHERE id = ?`, id)
	if err != nil {
		return errors.Wrap(err, "deleting course")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return course.ErrNotFound
	}
	return nil
}
