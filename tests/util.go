package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/trezcool/darasa/core/course"
	"github.com/trezcool/darasa/core/user"
)

func CreateUser(
	t *testing.T,
	repo user.Repository,
	uname, email, pwd, role string,
	createdAt ...time.Time,
) user.User {
	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	usr := user.User{
		Username:  uname,
		Email:     email,
		Role:      role,
		CreatedAt: tstamp,
		UpdatedAt: tstamp,
	}
	if pwd != "" {
		if err := usr.SetPassword(pwd); err != nil {
			t.Fatalf("createUser() failed: %v", err)
		}
	}
	usr, err := repo.CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("createUser() failed: %v", err)
	}
	return usr
}

func CreateCourse(
	t *testing.T,
	repo course.Repository,
	name, teacherEmail string,
	contents ...string,
) course.Course {
	tstamp := time.Now().UTC()
	crs := course.Course{
		Name:         name,
		TeacherEmail: teacherEmail,
		Contents:     contents,
		CreatedAt:    tstamp,
		UpdatedAt:    tstamp,
	}
	crs, err := repo.CreateCourse(context.Background(), crs)
	if err != nil {
		t.Fatalf("createCourse() failed: %v", err)
	}
	return crs
}
