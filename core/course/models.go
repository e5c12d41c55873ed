package course

import (
	"time"

	"github.com/trezcool/darasa/core"
)

// Grade is a score awarded to an enrolled student, in percent.
type Grade struct {
	StudentEmail string `json:"student_email"`
	Score        int    `json:"score"`
}

type Course struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	TeacherEmail string    `json:"teacher_email"`
	Contents     []string  `json:"contents"`
	Grades       []Grade   `json:"grades"`
	Students     []string  `json:"students"` // enrolled student emails
	CreatedAt    time.Time `json:"created_at"` // UTC
	UpdatedAt    time.Time `json:"updated_at"` // UTC
}

func (c *Course) AddContent(content string) error {
	if !core.IsValidString(content) {
		return ErrInvalidContent
	}
	c.Contents = append(c.Contents, content)
	return nil
}

// RemoveContent drops the content at 0-based index idx, preserving order.
func (c *Course) RemoveContent(idx int) error {
	if !core.IsValidIndex(idx, len(c.Contents)) {
		return ErrInvalidIndex
	}
	c.Contents = append(c.Contents[:idx], c.Contents[idx+1:]...)
	return nil
}

// AddGrade records a grade for a student. Repeated grades for the same
// student are kept; readers see the first one.
func (c *Course) AddGrade(studentEmail string, score int) error {
	if !core.IsValidEmail(studentEmail) {
		return ErrInvalidStudentEmail
	}
	if !core.IsValidGrade(score) {
		return ErrInvalidGrade
	}
	c.Grades = append(c.Grades, Grade{StudentEmail: studentEmail, Score: score})
	return nil
}

func (c *Course) EnrollStudent(studentEmail string) error {
	if !core.IsValidEmail(studentEmail) {
		return ErrInvalidStudentEmail
	}
	if c.HasStudent(studentEmail) {
		return ErrAlreadyEnrolled
	}
	c.Students = append(c.Students, studentEmail)
	return nil
}

// RemoveStudent drops the first matching enrollment.
func (c *Course) RemoveStudent(studentEmail string) error {
	for i, email := range c.Students {
		if email == studentEmail {
			c.Students = append(c.Students[:i], c.Students[i+1:]...)
			return nil
		}
	}
	return ErrStudentNotFound
}

func (c *Course) HasStudent(studentEmail string) bool {
	for _, email := range c.Students {
		if email == studentEmail {
			return true
		}
	}
	return false
}

// GradeFor returns the first grade recorded for the student.
func (c *Course) GradeFor(studentEmail string) (Grade, bool) {
	for _, g := range c.Grades {
		if g.StudentEmail == studentEmail {
			return g, true
		}
	}
	return Grade{}, false
}

// NewCourse contains information needed to create a new Course.
type NewCourse struct {
	Name         string `json:"name" validate:"required,max=100"`
	TeacherEmail string `json:"teacher_email" validate:"required,email_"`
}

func (nc *NewCourse) Validate() error {
	nc.Name = core.CleanString(nc.Name)
	nc.TeacherEmail = core.CleanString(nc.TeacherEmail)
	return core.Validate.Struct(nc)
}

type QueryFilter struct {
	TeacherEmail       string
	EnrolledStudent    string
	NotEnrolledStudent string
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.TeacherEmail == "" && qf.EnrolledStudent == "" && qf.NotEnrolledStudent == ""
}
