package main

import (
	"context"
	"time"

	"github.com/trezcool/darasa/core/course"
	"github.com/trezcool/darasa/core/user"
	"github.com/trezcool/darasa/storage/database"
)

// seedDemoData loads the demo accounts and courses, unless data already exists.
func seedDemoData(ctx context.Context, repos *database.Repositories) error {
	existing, err := repos.User.QueryAllUsers(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now().UTC()
	users := []struct {
		uname, email, pwd, role string
	}{
		{"admin1", "admin1@example.com", "adminpass", user.RoleAdmin},
		{"teacher1", "teacher1@example.com", "teacherpass", user.RoleTeacher},
		{"teacher2", "teacher2@example.com", "teacherpass", user.RoleTeacher},
	}
	for _, u := range users {
		usr := user.User{
			Username:  u.uname,
			Email:     u.email,
			Role:      u.role,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err = usr.SetPassword(u.pwd); err != nil {
			return err
		}
		if _, err = repos.User.CreateUser(ctx, usr); err != nil {
			return err
		}
	}

	courses := []course.Course{
		{
			Name:         "Mathematics",
			TeacherEmail: "teacher1@example.com",
			Contents:     []string{"Introduction to Algebra", "Advanced Calculus"},
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			Name:         "Physics",
			TeacherEmail: "teacher2@example.com",
			Contents:     []string{"Newton's Laws", "Thermodynamics"},
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
	for _, crs := range courses {
		if _, err = repos.Course.CreateCourse(ctx, crs); err != nil {
			return err
		}
	}
	return nil
}
