package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/course"
	"github.com/trezcool/darasa/core/user"
)

func (s *session) adminMenu(ctx context.Context, usr user.User) error {
	for {
		s.cons.printf("\nAdmin Menu:\n")
		s.cons.printf("1. Manage Courses\n")
		s.cons.printf("2. View Reports\n")
		s.cons.printf("3. Enroll Student\n")
		s.cons.printf("4. Remove Student\n")
		s.cons.printf("5. Log Out\n")

		choice, err := s.cons.readIntInRange("Enter choice (1-5): ", 1, 5)
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = s.adminManageCourses(ctx)
		case 2:
			err = s.adminViewReports(ctx)
		case 3:
			err = s.enrollStudent(ctx)
		case 4:
			err = s.removeStudent(ctx)
		case 5:
			s.cons.printf("Logging out...\n")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *session) adminManageCourses(ctx context.Context) error {
	for {
		s.cons.printf("\nManage Courses:\n")
		s.cons.printf("1. Add Course\n")
		s.cons.printf("2. Delete Course\n")
		s.cons.printf("3. Edit Course\n")
		s.cons.printf("4. Display Courses\n")
		s.cons.printf("5. Back\n")

		choice, err := s.cons.readIntInRange("Enter choice (1-5): ", 1, 5)
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = s.addCourse(ctx)
		case 2:
			err = s.deleteCourse(ctx)
		case 3:
			err = s.editCourse(ctx)
		case 4:
			err = s.displayCourses(ctx)
		case 5:
			s.cons.printf("Returning...\n")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *session) displayCourses(ctx context.Context) error {
	courses, err := s.crsSvc.QueryAll(ctx)
	if err != nil {
		return err
	}
	s.printCourses(courses)
	return nil
}

func (s *session) addCourse(ctx context.Context) error {
	name, err := s.cons.readLine("Enter course name: ")
	if err != nil {
		return err
	}
	teacherEmail, err := s.cons.readLine("Enter teacher's email: ")
	if err != nil {
		return err
	}

	// any registered account qualifies, whatever its role
	if _, err = s.usrSvc.GetByEmail(ctx, teacherEmail); err != nil {
		if errors.Cause(err) != user.ErrNotFound {
			return err
		}
		s.cons.printf("Error: The email does not belong to a registered teacher.\n")
		ans, err := s.cons.readLine("Would you like to register this teacher? (y/n): ")
		if err != nil {
			return err
		}
		if !yes(ans) {
			s.cons.printf("Course addition canceled.\n")
			return nil
		}

		teacherName, err := s.cons.readLine("Enter teacher's name: ")
		if err != nil {
			return err
		}
		teacherPwd, err := s.cons.readPassword("Enter teacher's password: ")
		if err != nil {
			return err
		}
		if _, err = s.usrSvc.Create(ctx, user.NewUser{
			Username: teacherName,
			Email:    teacherEmail,
			Password: teacherPwd,
			Role:     user.RoleTeacher,
		}); err != nil {
			return s.reportErr(err)
		}
		s.cons.printf("Teacher registered successfully: %s (%s)\n", teacherName, teacherEmail)
	}

	assigned, err := s.crsSvc.Filter(ctx, course.QueryFilter{TeacherEmail: teacherEmail})
	if err != nil {
		return err
	}
	if len(assigned) > 0 {
		s.cons.printf("Error: Teacher is already assigned to another course.\n")
		return nil
	}

	if _, err = s.crsSvc.Create(ctx, course.NewCourse{Name: name, TeacherEmail: teacherEmail}); err != nil {
		return s.reportErr(err)
	}
	s.cons.printf("Course added successfully.\n")
	return nil
}

func (s *session) deleteCourse(ctx context.Context) error {
	courses, err := s.crsSvc.QueryAll(ctx)
	if err != nil {
		return err
	}
	if len(courses) == 0 {
		s.cons.printf("There are no courses to delete.\n")
		return nil
	}
	s.printCourses(courses)

	idx, err := s.cons.readInt("Enter course index to delete: ")
	if err != nil {
		return err
	}
	crs, err := s.crsSvc.RemoveByIndex(ctx, idx-1)
	if err != nil {
		if errors.Cause(err) == course.ErrInvalidIndex {
			s.cons.printf("Invalid course index.\n")
			return nil
		}
		return err
	}
	s.cons.printf("Successfully deleted course: %s\n", crs.Name)
	return nil
}

func (s *session) editCourse(ctx context.Context) error {
	courses, err := s.crsSvc.QueryAll(ctx)
	if err != nil {
		return err
	}
	if len(courses) == 0 {
		s.cons.printf("There are no courses available.\n")
		return nil
	}
	s.printCourses(courses)

	idx, err := s.cons.readInt(fmt.Sprintf("Enter course index to edit (1-%d): ", len(courses)))
	if err != nil {
		return err
	}
	crs, err := s.crsSvc.GetByIndex(ctx, idx-1)
	if err != nil {
		if errors.Cause(err) == course.ErrInvalidIndex {
			s.cons.printf("Invalid course index. Please enter a number between 1 and %d.\n", len(courses))
			return nil
		}
		return err
	}
	s.cons.printf("Editing course: %s\n", crs.Name)

	ans, err := s.cons.readLine("Would you like to edit the course content? (y/n): ")
	if err != nil {
		return err
	}
	if !yes(ans) {
		return nil
	}

	choice, err := s.cons.readInt("1. Add content\n2. Remove content\nEnter choice: ")
	if err != nil {
		return err
	}
	switch choice {
	case 1:
		content, err := s.cons.readLine("Enter content: ")
		if err != nil {
			return err
		}
		if _, err = s.crsSvc.AddContent(ctx, crs.ID, content); err != nil {
			return s.reportErr(err)
		}
		s.cons.printf("Content added successfully.\n")
	case 2:
		if len(crs.Contents) == 0 {
			s.cons.printf("There is no content to remove.\n")
			return nil
		}
		s.cons.printf("\nCurrent content:\n")
		for i, content := range crs.Contents {
			s.cons.printf("%d. %s\n", i+1, content)
		}
		cIdx, err := s.cons.readInt(fmt.Sprintf("Enter content index to remove (1-%d): ", len(crs.Contents)))
		if err != nil {
			return err
		}
		if _, err = s.crsSvc.RemoveContent(ctx, crs.ID, cIdx-1); err != nil {
			if errors.Cause(err) == course.ErrInvalidIndex {
				s.cons.printf("Invalid content index. Please enter a number between 1 and %d.\n", len(crs.Contents))
				return nil
			}
			return err
		}
		s.cons.printf("Content removed successfully.\n")
	default:
		s.cons.printf("Invalid choice. Please select 1 or 2.\n")
	}
	return nil
}

func (s *session) adminViewReports(ctx context.Context) error {
	courses, err := s.crsSvc.QueryAll(ctx)
	if err != nil {
		return err
	}
	if len(courses) == 0 {
		s.cons.printf("No courses available to generate reports.\n")
		return nil
	}

	s.cons.printf("Courses Report:\n")
	for _, crs := range courses {
		s.cons.printf("Course: %s (Teacher: %s)\n", crs.Name, crs.TeacherEmail)
		s.cons.printf("Enrolled Students:\n")
		s.printStudents(crs)
		s.cons.printf("Grades:\n")
		s.printGrades(crs)
		s.cons.printf("----------------------\n")
	}
	return nil
}

func (s *session) enrollStudent(ctx context.Context) error {
	courses, err := s.crsSvc.QueryAll(ctx)
	if err != nil {
		return err
	}
	if len(courses) == 0 {
		s.cons.printf("There are no courses available for enrollment.\n")
		return nil
	}
	s.printCourses(courses)

	idx, err := s.cons.readIntInRange(
		fmt.Sprintf("Enter course index to enroll student (1-%d): ", len(courses)), 1, len(courses))
	if err != nil {
		return err
	}
	crs := courses[idx-1]

	email, err := s.cons.readEmail("Enter student's email: ")
	if err != nil {
		return err
	}
	if _, err = s.usrSvc.GetByEmail(ctx, email); err == nil {
		s.cons.printf("Student with this email already exists. Cannot create a duplicate account.\n")
		return nil
	} else if errors.Cause(err) != user.ErrNotFound {
		return err
	}

	pwd, err := s.cons.readPassword("Enter password for the student: ")
	if err != nil {
		return err
	}

	// the local part of the email doubles as the username
	uname := email
	if at := strings.Index(email, "@"); at > 0 {
		uname = email[:at]
	}
	newStudent, err := s.usrSvc.Create(ctx, user.NewUser{
		Username: uname,
		Email:    email,
		Password: pwd,
		Role:     user.RoleStudent,
	})
	if err != nil {
		return s.reportErr(err)
	}

	if _, err = s.crsSvc.EnrollStudent(ctx, crs.ID, newStudent.Email); err != nil {
		return s.reportErr(err)
	}
	s.cons.printf("Student enrolled successfully and account created.\n")
	s.cons.printf("Username: %s\n", newStudent.Email)
	return nil
}

func (s *session) removeStudent(ctx context.Context) error {
	courses, err := s.crsSvc.QueryAll(ctx)
	if err != nil {
		return err
	}
	if len(courses) == 0 {
		s.cons.printf("There are no courses available.\n")
		return nil
	}
	s.printCourses(courses)

	idx, err := s.cons.readInt(fmt.Sprintf("Enter course index to remove student (1-%d): ", len(courses)))
	if err != nil {
		return err
	}
	crs, err := s.crsSvc.GetByIndex(ctx, idx-1)
	if err != nil {
		if errors.Cause(err) == course.ErrInvalidIndex {
			s.cons.printf("Invalid course index. Please enter a number between 1 and %d.\n", len(courses))
			return nil
		}
		return err
	}
	if len(crs.Students) == 0 {
		s.cons.printf("There is no student here.\n")
		return nil
	}

	email, err := s.cons.readLine("Enter student's email to remove: ")
	if err != nil {
		return err
	}
	if _, err = s.crsSvc.RemoveStudent(ctx, crs.ID, email); err != nil {
		if errors.Cause(err) == course.ErrStudentNotFound {
			s.cons.printf("Student not found in the course.\n")
			return nil
		}
		return err
	}
	s.cons.printf("Student removed successfully.\n")
	return nil
}
