package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/course"
	"github.com/trezcool/darasa/core/user"
	emailsvc "github.com/trezcool/darasa/services/email"
	"github.com/trezcool/darasa/storage/database"
	testutil "github.com/trezcool/darasa/tests"
)

var repos *database.Repositories

func setup(t *testing.T) (user.Service, course.Service) {
	conf := new(core.Config)
	conf.AppName = "Darasa"
	conf.TestMode = true

	var err error
	if repos, err = database.Open(conf); err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	t.Cleanup(func() { _ = repos.Close() })

	mailSvc := emailsvc.NewConsoleServiceMock(conf)
	return user.NewService(repos.User, mailSvc), course.NewService(repos.Course)
}

// runSession feeds script to a fresh session and returns everything it printed.
func runSession(t *testing.T, usrSvc user.Service, crsSvc course.Service, script string) string {
	out := new(bytes.Buffer)
	sess := newSession(newConsole(strings.NewReader(script), out), usrSvc, crsSvc, nopLogger{})
	if err := sess.run(context.Background()); err != nil {
		t.Fatalf("session.run() failed: %v", err)
	}
	return out.String()
}

// script joins input lines into what a user would type.
func script(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Warn(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Fatal(msg string, args ...interface{}) {}

func Test_session_login(t *testing.T) {
	usrSvc, crsSvc := setup(t)
	testutil.CreateUser(t, repos.User, "admin1", "admin1@example.com", "adminpass", user.RoleAdmin)
	testutil.CreateUser(t, repos.User, "s1", "s1@example.com", "s1pass", user.RoleStudent)

	tests := []struct {
		name    string
		script  string
		wantOut []string
	}{
		{
			name:   "exit right away",
			script: script("0"),
			wantOut: []string{
				"Learning Management System Login\n================================\n",
				"Enter your email (or type '0' to exit): ",
				"Exiting program...",
			},
		},
		{
			name:    "wrong password",
			script:  script("admin1@example.com", "lol", "0"),
			wantOut: []string{"Invalid login credentials. Please try again."},
		},
		{
			name:    "unknown email",
			script:  script("who@example.com", "adminpass", "0"),
			wantOut: []string{"Invalid login credentials. Please try again."},
		},
		{
			name:    "email is case sensitive",
			script:  script("Admin1@example.com", "adminpass", "0"),
			wantOut: []string{"Invalid login credentials. Please try again."},
		},
		{
			name:   "admin logs in and out",
			script: script("admin1@example.com", "adminpass", "5", "n"),
			wantOut: []string{
				"\nAdmin Menu:\n1. Manage Courses\n2. View Reports\n3. Enroll Student\n4. Remove Student\n5. Log Out\n",
				"Do you want to log in as a different role? (y/n): ",
				"Logging out...",
			},
		},
		{
			name:   "student logs in and out",
			script: script("s1@example.com", "s1pass", "4", "n"),
			wantOut: []string{
				"\nStudent Menu:\n1. View Enrolled Courses\n2. View Grades\n3. Enroll in Course\n4. Log Out\n",
				"Logging out...",
			},
		},
		{
			name:    "relogin as a different user",
			script:  script("admin1@example.com", "adminpass", "5", "y", "0"),
			wantOut: []string{"Exiting program..."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runSession(t, usrSvc, crsSvc, tt.script)
			for _, want := range tt.wantOut {
				assert.Contains(t, out, want)
			}
		})
	}
}

// Test_session_endToEnd walks the full demo flow: the admin enrolls a student,
// the teacher grades them and the student checks the grade, all in one sitting.
func Test_session_endToEnd(t *testing.T) {
	usrSvc, crsSvc := setup(t)
	if err := seedDemoData(context.Background(), repos); err != nil {
		t.Fatalf("seedDemoData() failed: %v", err)
	}
	emailsvc.SentMessages = nil // reset

	out := runSession(t, usrSvc, crsSvc, script(
		// the admin opens an account for s1 and enrolls it in Mathematics
		"admin1@example.com", "adminpass",
		"3", "1",
		"s1@example.com", "s1pass",
		"5", "y",
		// the teacher grades s1
		"teacher1@example.com", "teacherpass",
		"1", "3", "1",
		"s1@example.com", "85",
		"5", "3", "y",
		// the student checks the grade
		"s1@example.com", "s1pass",
		"2", "1",
		"4", "n",
	))

	assert.Contains(t, out, "Student enrolled successfully and account created.\nUsername: s1@example.com\n")
	assert.Contains(t, out, "Grade added successfully for student: s1@example.com")
	assert.Contains(t, out, "Your Enrolled Courses:\n1: Mathematics (Teacher: teacher1@example.com)\n")
	assert.Contains(t, out, "Your Grade in Mathematics: 85%")

	// the student account got its welcome email
	if assert.Len(t, emailsvc.SentMessages, 1) {
		assert.Equal(t, "Welcome!", emailsvc.SentMessages[0].Subject)
	}

	// the grade survived the teacher's session
	courses, err := crsSvc.Filter(context.Background(), course.QueryFilter{EnrolledStudent: "s1@example.com"})
	if err != nil {
		t.Fatalf("Filter() failed: %v", err)
	}
	if assert.Len(t, courses, 1) {
		g, ok := courses[0].GradeFor("s1@example.com")
		assert.True(t, ok)
		assert.Equal(t, 85, g.Score)
	}
}
