package course

import (
	"context"
	"errors"
	"time"

	"github.com/trezcool/darasa/core"
)

var (
	// errors
	ErrNotFound            = errors.New("course not found")
	ErrInvalidIndex        = errors.New("invalid course index")
	ErrInvalidContent      = errors.New("invalid content")
	ErrInvalidStudentEmail = errors.New("invalid student email")
	ErrInvalidGrade        = errors.New("invalid grade")
	ErrAlreadyEnrolled     = errors.New("student already enrolled")
	ErrStudentNotFound     = errors.New("student not found")
)

type (
	Repository interface {
		CreateCourse(ctx context.Context, crs Course) (Course, error)
		// QueryAllCourses returns all courses in creation order.
		QueryAllCourses(ctx context.Context) ([]Course, error)
		GetCourseByID(ctx context.Context, id string) (Course, error)
		// FilterCourses applies AND operation on available QueryFilter fields,
		// keeping creation order.
		FilterCourses(ctx context.Context, filter QueryFilter) ([]Course, error)
		UpdateCourse(ctx context.Context, crs Course) (Course, error)
		DeleteCourse(ctx context.Context, id string) error
	}

	Service interface {
		Create(ctx context.Context, nc NewCourse) (Course, error)
		QueryAll(ctx context.Context) ([]Course, error)
		// GetByIndex returns the course at 0-based index idx in creation order.
		GetByIndex(ctx context.Context, idx int) (Course, error)
		// RemoveByIndex deletes the course at 0-based index idx and returns it.
		RemoveByIndex(ctx context.Context, idx int) (Course, error)
		Filter(ctx context.Context, filter QueryFilter) ([]Course, error)
		AddContent(ctx context.Context, id, content string) (Course, error)
		RemoveContent(ctx context.Context, id string, idx int) (Course, error)
		AddGrade(ctx context.Context, id, studentEmail string, score int) (Course, error)
		EnrollStudent(ctx context.Context, id, studentEmail string) (Course, error)
		RemoveStudent(ctx context.Context, id, studentEmail string) (Course, error)
	}

	service struct {
		repo Repository
	}
)

var _ Service = (*service)(nil) // interface compliance check

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (svc *service) Create(ctx context.Context, nc NewCourse) (Course, error) {
	if err := nc.Validate(); err != nil {
		return Course{}, err
	}

	now := time.Now().UTC()
	crs := Course{
		Name:         nc.Name,
		TeacherEmail: nc.TeacherEmail,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return svc.repo.CreateCourse(ctx, crs)
}

func (svc *service) QueryAll(ctx context.Context) ([]Course, error) {
	return svc.repo.QueryAllCourses(ctx)
}

func (svc *service) GetByIndex(ctx context.Context, idx int) (Course, error) {
	courses, err := svc.repo.QueryAllCourses(ctx)
	if err != nil {
		return Course{}, err
	}
	if !core.IsValidIndex(idx, len(courses)) {
		return Course{}, ErrInvalidIndex
	}
	return courses[idx], nil
}

func (svc *service) RemoveByIndex(ctx context.Context, idx int) (Course, error) {
	crs, err := svc.GetByIndex(ctx, idx)
	if err != nil {
		return Course{}, err
	}
	if err = svc.repo.DeleteCourse(ctx, crs.ID); err != nil {
		return Course{}, err
	}
	return crs, nil
}

func (svc *service) Filter(ctx context.Context, filter QueryFilter) ([]Course, error) {
	if filter.IsEmpty() {
		return svc.repo.QueryAllCourses(ctx)
	}
	return svc.repo.FilterCourses(ctx, filter)
}

// mutate loads the course, applies fn and saves it back.
func (svc *service) mutate(ctx context.Context, id string, fn func(*Course) error) (Course, error) {
	crs, err := svc.repo.GetCourseByID(ctx, id)
	if err != nil {
		return Course{}, err
	}
	if err = fn(&crs); err != nil {
		return Course{}, err
	}
	crs.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateCourse(ctx, crs)
}

func (svc *service) AddContent(ctx context.Context, id, content string) (Course, error) {
	return svc.mutate(ctx, id, func(crs *Course) error { return crs.AddContent(content) })
}

func (svc *service) RemoveContent(ctx context.Context, id string, idx int) (Course, error) {
	return svc.mutate(ctx, id, func(crs *Course) error { return crs.RemoveContent(idx) })
}

func (svc *service) AddGrade(ctx context.Context, id, studentEmail string, score int) (Course, error) {
	return svc.mutate(ctx, id, func(crs *Course) error { return crs.AddGrade(studentEmail, score) })
}

func (svc *service) EnrollStudent(ctx context.Context, id, studentEmail string) (Course, error) {
	return svc.mutate(ctx, id, func(crs *Course) error { return crs.EnrollStudent(studentEmail) })
}

func (svc *service) RemoveStudent(ctx context.Context, id, studentEmail string) (Course, error) {
	return svc.mutate(ctx, id, func(crs *Course) error { return crs.RemoveStudent(studentEmail) })
}
