package main

import (
	"context"

	"github.com/trezcool/darasa/core/course"
	"github.com/trezcool/darasa/core/user"
)

func (s *session) studentMenu(ctx context.Context, usr user.User) error {
	for {
		s.cons.printf("\nStudent Menu:\n")
		s.cons.printf("1. View Enrolled Courses\n")
		s.cons.printf("2. View Grades\n")
		s.cons.printf("3. Enroll in Course\n")
		s.cons.printf("4. Log Out\n")

		choice, err := s.cons.readIntInRange("Enter choice (1-4): ", 1, 4)
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = s.viewEnrolledCourses(ctx, usr)
		case 2:
			err = s.viewGrades(ctx, usr)
		case 3:
			err = s.enrollInCourse(ctx, usr)
		case 4:
			s.cons.printf("Logging out...\n")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// enrolledCourses lists the student's enrollments 1-based, returning an empty
// slice after printing a notice when there are none.
func (s *session) enrolledCourses(ctx context.Context, usr user.User) ([]course.Course, error) {
	enrolled, err := s.crsSvc.Filter(ctx, course.QueryFilter{EnrolledStudent: usr.Email})
	if err != nil {
		return nil, err
	}
	if len(enrolled) == 0 {
		s.cons.printf("You are not enrolled in any courses.\n")
		return nil, nil
	}

	s.cons.printf("Your Enrolled Courses:\n")
	for i, crs := range enrolled {
		s.cons.printf("%d: %s (Teacher: %s)\n", i+1, crs.Name, crs.TeacherEmail)
	}
	return enrolled, nil
}

func (s *session) viewEnrolledCourses(ctx context.Context, usr user.User) error {
	enrolled, err := s.enrolledCourses(ctx, usr)
	if err != nil || len(enrolled) == 0 {
		return err
	}

	idx, err := s.cons.readIntInRange(
		"Enter course index to view content (or 0 to go back): ", 0, len(enrolled))
	if err != nil {
		return err
	}
	if idx == 0 {
		return nil
	}
	crs := enrolled[idx-1]
	s.cons.printf("Selected course: %s\n", crs.Name)
	s.printContents(crs)
	return nil
}

func (s *session) viewGrades(ctx context.Context, usr user.User) error {
	enrolled, err := s.enrolledCourses(ctx, usr)
	if err != nil || len(enrolled) == 0 {
		return err
	}

	idx, err := s.cons.readIntInRange(
		"Enter course index to view grades (or 0 to go back): ", 0, len(enrolled))
	if err != nil {
		return err
	}
	if idx == 0 {
		return nil
	}
	crs := enrolled[idx-1]
	if g, ok := crs.GradeFor(usr.Email); ok {
		s.cons.printf("Your Grade in %s: %d%%\n", crs.Name, g.Score)
	} else {
		s.cons.printf("No grade available for this course.\n")
	}
	return nil
}

func (s *session) enrollInCourse(ctx context.Context, usr user.User) error {
	available, err := s.crsSvc.Filter(ctx, course.QueryFilter{NotEnrolledStudent: usr.Email})
	if err != nil {
		return err
	}
	if len(available) == 0 {
		s.cons.printf("No courses available for enrollment.\n")
		return nil
	}

	s.cons.printf("Available Courses:\n")
	for i, crs := range available {
		s.cons.printf("%d: %s (Teacher: %s)\n", i+1, crs.Name, crs.TeacherEmail)
	}

	idx, err := s.cons.readIntInRange(
		"Enter course index to enroll (or 0 to go back): ", 0, len(available))
	if err != nil {
		return err
	}
	if idx == 0 {
		return nil
	}
	crs := available[idx-1]
	if _, err = s.crsSvc.EnrollStudent(ctx, crs.ID, usr.Email); err != nil {
		return s.reportErr(err)
	}
	s.cons.printf("Successfully enrolled in the course: %s\n", crs.Name)
	return nil
}
