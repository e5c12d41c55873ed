package inmemdb

import (
	"context"

	"github.com/google/uuid"

	"github.com/trezcool/darasa/core/course"
)

type courseRepository struct {
	db *courseTable
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(db *DB) *courseRepository {
	return &courseRepository{db: db.course}
}

// clone copies crs so callers cannot alias table rows through shared slices.
func (repo *courseRepository) clone(crs course.Course) course.Course {
	crs.Contents = append([]string(nil), crs.Contents...)
	crs.Grades = append([]course.Grade(nil), crs.Grades...)
	crs.Students = append([]string(nil), crs.Students...)
	return crs
}

func (repo *courseRepository) matches(crs *course.Course, filter course.QueryFilter) bool {
	if filter.TeacherEmail != "" && crs.TeacherEmail != filter.TeacherEmail {
		return false
	}
	if filter.EnrolledStudent != "" && !crs.HasStudent(filter.EnrolledStudent) {
		return false
	}
	if filter.NotEnrolledStudent != "" && crs.HasStudent(filter.NotEnrolledStudent) {
		return false
	}
	return true
}

func (repo *courseRepository) CreateCourse(ctx context.Context, crs course.Course) (course.Course, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	crs.ID = uuid.New().String()
	clone := repo.clone(crs)
	repo.db.table = append(repo.db.table, &clone)
	return crs, nil
}

func (repo *courseRepository) QueryAllCourses(ctx context.Context) ([]course.Course, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	courses := make([]course.Course, 0, len(repo.db.table))
	for _, crs := range repo.db.table {
		courses = append(courses, repo.clone(*crs))
	}
	return courses, nil
}

func (repo *courseRepository) GetCourseByID(ctx context.Context, id string) (course.Course, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, crs := range repo.db.table {
		if crs.ID == id {
			return repo.clone(*crs), nil
		}
	}
	return course.Course{}, course.ErrNotFound
}

func (repo *courseRepository) FilterCourses(ctx context.Context, filter course.QueryFilter) ([]course.Course, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	var courses []course.Course
	for _, crs := range repo.db.table {
		if repo.matches(crs, filter) {
			courses = append(courses, repo.clone(*crs))
		}
	}
	return courses, nil
}

func (repo *courseRepository) UpdateCourse(ctx context.Context, crs course.Course) (course.Course, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for i, c := range repo.db.table {
		if c.ID == crs.ID {
			clone := repo.clone(crs)
			repo.db.table[i] = &clone
			return crs, nil
		}
	}
	return course.Course{}, course.ErrNotFound
}

func (repo *courseRepository) DeleteCourse(ctx context.Context, id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for i, crs := range repo.db.table {
		if crs.ID == id {
			repo.db.table = append(repo.db.table[:i], repo.db.table[i+1:]...)
			return nil
		}
	}
	return course.ErrNotFound
}
