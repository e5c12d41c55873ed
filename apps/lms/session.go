package main

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/course"
	"github.com/trezcool/darasa/core/user"
)

// menus maps each role to its home menu.
var menus = map[string]func(*session, context.Context, user.User) error{
	user.RoleAdmin:   (*session).adminMenu,
	user.RoleTeacher: (*session).teacherMenu,
	user.RoleStudent: (*session).studentMenu,
}

type session struct {
	cons   *console
	usrSvc user.Service
	crsSvc course.Service
	logger core.Logger
}

func newSession(cons *console, usrSvc user.Service, crsSvc course.Service, logger core.Logger) *session {
	return &session{
		cons:   cons,
		usrSvc: usrSvc,
		crsSvc: crsSvc,
		logger: logger,
	}
}

// run drives the login loop until the user exits.
func (s *session) run(ctx context.Context) error {
	for {
		s.cons.printf("Learning Management System Login\n")
		s.cons.printf("================================\n")

		email, err := s.cons.readLine("Enter your email (or type '0' to exit): ")
		if err != nil {
			return err
		}
		if email == "0" {
			s.cons.printf("Exiting program...\n")
			return nil
		}
		pwd, err := s.cons.readPassword("Enter your password: ")
		if err != nil {
			return err
		}

		usr, err := s.usrSvc.Authenticate(ctx, email, pwd)
		if err != nil {
			if errors.Cause(err) == user.ErrInvalidCredentials {
				s.cons.printf("Invalid login credentials. Please try again.\n")
				continue
			}
			return err
		}

		menu, ok := menus[usr.Role]
		if !ok {
			s.logger.Warn("no menu for role", map[string]interface{}{"role": usr.Role}, usr)
			continue
		}
		if err = menu(s, ctx, usr); err != nil {
			return err
		}

		again, err := s.cons.readLine("Do you want to log in as a different role? (y/n): ")
		if err != nil {
			return err
		}
		if no(again) {
			s.cons.printf("Logging out...\n")
			return nil
		}
	}
}

// reportErr prints expected input errors and propagates everything else.
func (s *session) reportErr(err error) error {
	switch cause := errors.Cause(err).(type) {
	case validator.ValidationErrors:
		for _, fErr := range cause {
			s.cons.printf("Error: %s: %s.\n", fErr.Field(), fErr.Translate(core.Translator))
		}
	case *core.ValidationError:
		for _, fErr := range cause.Fields {
			s.cons.printf("Error: %s: %s.\n", fErr.Field, fErr.Error)
		}
	default:
		switch cause {
		case course.ErrInvalidIndex, course.ErrInvalidContent, course.ErrInvalidStudentEmail,
			course.ErrInvalidGrade, course.ErrAlreadyEnrolled, course.ErrStudentNotFound:
			s.cons.printf("Error: %s.\n", cause)
		default:
			return err
		}
	}
	return nil
}

func yes(s string) bool { return strings.HasPrefix(strings.ToLower(s), "y") }
func no(s string) bool  { return strings.HasPrefix(strings.ToLower(s), "n") }

// printCourses lists courses 1-based, as shown to admins.
func (s *session) printCourses(courses []course.Course) {
	if len(courses) == 0 {
		s.cons.printf("There are no courses available.\n")
		return
	}
	for i, crs := range courses {
		s.cons.printf("%d: %s (Teacher: %s)\n", i+1, crs.Name, crs.TeacherEmail)
	}
}

func (s *session) printContents(crs course.Course) {
	if len(crs.Contents) == 0 {
		s.cons.printf("No content available for this course.\n")
		return
	}
	s.cons.printf("Course Contents:\n")
	for _, content := range crs.Contents {
		s.cons.printf("- %s\n", content)
	}
}

func (s *session) printStudents(crs course.Course) {
	for _, email := range crs.Students {
		s.cons.printf("%s\n", email)
	}
}

func (s *session) printGrades(crs course.Course) {
	for _, g := range crs.Grades {
		s.cons.printf("%s: %d%%\n", g.StudentEmail, g.Score)
	}
}
