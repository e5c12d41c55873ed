package main

import (
	"context"
	"fmt"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/course"
	"github.com/trezcool/darasa/core/user"
)

func (s *session) teacherMenu(ctx context.Context, usr user.User) error {
	for {
		s.cons.printf("\nTeacher Menu:\n")
		s.cons.printf("1. Manage Courses\n")
		s.cons.printf("2. View Reports\n")
		s.cons.printf("3. Log Out\n")

		choice, err := s.cons.readIntInRange("Enter choice (1-3): ", 1, 3)
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = s.teacherManageCourses(ctx, usr)
		case 2:
			err = s.teacherViewReports(ctx, usr)
		case 3:
			s.cons.printf("Logging out...\n")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *session) teacherManageCourses(ctx context.Context, usr user.User) error {
	for {
		s.cons.printf("\nManage Courses:\n")
		s.cons.printf("1. View Course\n")
		s.cons.printf("2. Add Content\n")
		s.cons.printf("3. Add Grade\n")
		s.cons.printf("4. View Assigned Students\n")
		s.cons.printf("5. Back\n")

		choice, err := s.cons.readIntInRange("Enter choice (1-5): ", 1, 5)
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = s.viewCourse(ctx, usr)
		case 2:
			err = s.addContent(ctx, usr)
		case 3:
			err = s.addGrade(ctx, usr)
		case 4:
			err = s.viewAssignedStudents(ctx, usr)
		case 5:
			s.cons.printf("Returning...\n")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// assignedCourses lists the teacher's courses 1-based. It prints emptyMsg when
// no courses exist at all and noneMsg when none is assigned to the teacher,
// returning an empty slice in both cases.
func (s *session) assignedCourses(ctx context.Context, usr user.User, emptyMsg, noneMsg string) ([]course.Course, error) {
	all, err := s.crsSvc.QueryAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		s.cons.printf("%s\n", emptyMsg)
		return nil, nil
	}

	assigned, err := s.crsSvc.Filter(ctx, course.QueryFilter{TeacherEmail: usr.Email})
	if err != nil {
		return nil, err
	}
	if len(assigned) == 0 {
		s.cons.printf("%s\n", noneMsg)
		return nil, nil
	}

	s.cons.printf("Your Assigned Courses:\n")
	for i, crs := range assigned {
		s.cons.printf("%d. %s\n", i+1, crs.Name)
	}
	return assigned, nil
}

func (s *session) viewCourse(ctx context.Context, usr user.User) error {
	assigned, err := s.assignedCourses(ctx, usr,
		"No courses available to view.", "No courses are assigned to you.")
	if err != nil || len(assigned) == 0 {
		return err
	}

	idx, err := s.cons.readInt("Enter course index to view (1-based): ")
	if err != nil {
		return err
	}
	if !core.IsValidIndex(idx-1, len(assigned)) {
		s.cons.printf("Invalid course index.\n")
		return nil
	}
	crs := assigned[idx-1]
	s.cons.printf("Viewing course: %s\n", crs.Name)
	s.printContents(crs)
	return nil
}

func (s *session) addContent(ctx context.Context, usr user.User) error {
	assigned, err := s.assignedCourses(ctx, usr,
		"No courses available.", "You are not assigned to any courses. Cannot add content.")
	if err != nil || len(assigned) == 0 {
		return err
	}

	idx, err := s.cons.readIntInRange(
		fmt.Sprintf("Enter course index (1-%d): ", len(assigned)), 1, len(assigned))
	if err != nil {
		return err
	}
	crs := assigned[idx-1]

	content, err := s.cons.readLine("Enter the content to add: ")
	if err != nil {
		return err
	}
	if _, err = s.crsSvc.AddContent(ctx, crs.ID, content); err != nil {
		return s.reportErr(err)
	}
	s.cons.printf("Content added to the course: %s\n", crs.Name)
	return nil
}

func (s *session) addGrade(ctx context.Context, usr user.User) error {
	assigned, err := s.assignedCourses(ctx, usr,
		"No courses available.", "You are not assigned to any courses. Cannot add grades.")
	if err != nil || len(assigned) == 0 {
		return err
	}

	idx, err := s.cons.readIntInRange(
		fmt.Sprintf("Enter course index (1-%d): ", len(assigned)), 1, len(assigned))
	if err != nil {
		return err
	}
	crs := assigned[idx-1]

	email, err := s.cons.readEmail("Enter student's email: ")
	if err != nil {
		return err
	}
	if !crs.HasStudent(email) {
		s.cons.printf("Student is not enrolled in this course.\n")
		return nil
	}

	grade, err := s.cons.readIntInRange("Enter grade (0-100): ", 0, 100)
	if err != nil {
		return err
	}
	if _, err = s.crsSvc.AddGrade(ctx, crs.ID, email, grade); err != nil {
		return s.reportErr(err)
	}
	s.cons.printf("Grade added successfully for student: %s\n", email)
	return nil
}

func (s *session) viewAssignedStudents(ctx context.Context, usr user.User) error {
	assigned, err := s.assignedCourses(ctx, usr,
		"No courses available.", "You are not assigned to any courses. Cannot view students.")
	if err != nil || len(assigned) == 0 {
		return err
	}

	idx, err := s.cons.readIntInRange(
		fmt.Sprintf("Enter course index (1-%d): ", len(assigned)), 1, len(assigned))
	if err != nil {
		return err
	}
	crs := assigned[idx-1]

	s.cons.printf("Course: %s has %d students.\n", crs.Name, len(crs.Students))
	if len(crs.Students) == 0 {
		s.cons.printf("There are no students enrolled in this course.\n")
		return nil
	}
	s.printStudents(crs)
	return nil
}

func (s *session) teacherViewReports(ctx context.Context, usr user.User) error {
	assigned, err := s.crsSvc.Filter(ctx, course.QueryFilter{TeacherEmail: usr.Email})
	if err != nil {
		return err
	}

	s.cons.printf("Courses Report for %s:\n", usr.Email)
	if len(assigned) == 0 {
		s.cons.printf("No courses assigned to you.\n")
		return nil
	}
	for _, crs := range assigned {
		s.cons.printf("Course: %s\n", crs.Name)
		s.cons.printf("Enrolled Students:\n")
		s.printStudents(crs)
		s.cons.printf("Grades:\n")
		s.printGrades(crs)
		s.cons.printf("----------------------\n")
	}
	return nil
}
