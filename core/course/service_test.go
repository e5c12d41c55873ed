package course

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
)

// repositoryMock is an in-memory Repository holding courses in creation order.
type repositoryMock struct {
	mu      sync.Mutex
	courses []Course
}

var _ Repository = (*repositoryMock)(nil) // interface compliance check

func cloneCourse(crs Course) Course {
	crs.Contents = append([]string(nil), crs.Contents...)
	crs.Grades = append([]Grade(nil), crs.Grades...)
	crs.Students = append([]string(nil), crs.Students...)
	return crs
}

func (repo *repositoryMock) CreateCourse(ctx context.Context, crs Course) (Course, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	crs.ID = uuid.New().String()
	repo.courses = append(repo.courses, cloneCourse(crs))
	return crs, nil
}

func (repo *repositoryMock) QueryAllCourses(ctx context.Context) ([]Course, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	courses := make([]Course, 0, len(repo.courses))
	for _, crs := range repo.courses {
		courses = append(courses, cloneCourse(crs))
	}
	return courses, nil
}

func (repo *repositoryMock) GetCourseByID(ctx context.Context, id string) (Course, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	for _, crs := range repo.courses {
		if crs.ID == id {
			return cloneCourse(crs), nil
		}
	}
	return Course{}, ErrNotFound
}

func (repo *repositoryMock) FilterCourses(ctx context.Context, filter QueryFilter) ([]Course, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	var courses []Course
	for _, crs := range repo.courses {
		if filter.TeacherEmail != "" && crs.TeacherEmail != filter.TeacherEmail {
			continue
		}
		if filter.EnrolledStudent != "" && !crs.HasStudent(filter.EnrolledStudent) {
			continue
		}
		if filter.NotEnrolledStudent != "" && crs.HasStudent(filter.NotEnrolledStudent) {
			continue
		}
		courses = append(courses, cloneCourse(crs))
	}
	return courses, nil
}

func (repo *repositoryMock) UpdateCourse(ctx context.Context, crs Course) (Course, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	for i, c := range repo.courses {
		if c.ID == crs.ID {
			repo.courses[i] = cloneCourse(crs)
			return crs, nil
		}
	}
	return Course{}, ErrNotFound
}

func (repo *repositoryMock) DeleteCourse(ctx context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	for i, crs := range repo.courses {
		if crs.ID == id {
			repo.courses = append(repo.courses[:i], repo.courses[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func createCourse(t *testing.T, svc Service, name, teacherEmail string) Course {
	crs, err := svc.Create(context.Background(), NewCourse{Name: name, TeacherEmail: teacherEmail})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return crs
}

func TestService_CreateAndGetByIndex(t *testing.T) {
	ctx := context.Background()
	svc := NewService(new(repositoryMock))

	if _, err := svc.Create(ctx, NewCourse{Name: "", TeacherEmail: "teacher1@example.com"}); err == nil {
		t.Error("Create() expected an error for a missing name")
	}

	math := createCourse(t, svc, "Mathematics", "teacher1@example.com")
	physics := createCourse(t, svc, "Physics", "teacher2@example.com")
	if math.ID == "" || physics.ID == "" {
		t.Fatal("Create() did not set ID")
	}

	// creation order is preserved
	courses, err := svc.QueryAll(ctx)
	if err != nil {
		t.Fatalf("QueryAll() error = %v", err)
	}
	if len(courses) != 2 || courses[0].Name != "Mathematics" || courses[1].Name != "Physics" {
		t.Errorf("QueryAll() = %v, want [Mathematics Physics]", courses)
	}

	crs, err := svc.GetByIndex(ctx, 1)
	if err != nil {
		t.Fatalf("GetByIndex() error = %v", err)
	}
	if crs.ID != physics.ID {
		t.Errorf("GetByIndex() ID = %v, want %v", crs.ID, physics.ID)
	}
	if _, err = svc.GetByIndex(ctx, 2); err != ErrInvalidIndex {
		t.Errorf("GetByIndex() error = %v, want %v", err, ErrInvalidIndex)
	}
	if _, err = svc.GetByIndex(ctx, -1); err != ErrInvalidIndex {
		t.Errorf("GetByIndex() error = %v, want %v", err, ErrInvalidIndex)
	}
}

func TestService_RemoveByIndex(t *testing.T) {
	ctx := context.Background()
	svc := NewService(new(repositoryMock))

	createCourse(t, svc, "Mathematics", "teacher1@example.com")
	physics := createCourse(t, svc, "Physics", "teacher2@example.com")
	createCourse(t, svc, "Chemistry", "teacher3@example.com")

	removed, err := svc.RemoveByIndex(ctx, 1)
	if err != nil {
		t.Fatalf("RemoveByIndex() error = %v", err)
	}
	if removed.ID != physics.ID {
		t.Errorf("RemoveByIndex() ID = %v, want %v", removed.ID, physics.ID)
	}

	courses, err := svc.QueryAll(ctx)
	if err != nil {
		t.Fatalf("QueryAll() error = %v", err)
	}
	if len(courses) != 2 || courses[0].Name != "Mathematics" || courses[1].Name != "Chemistry" {
		t.Errorf("QueryAll() = %v, want [Mathematics Chemistry]", courses)
	}

	if _, err = svc.RemoveByIndex(ctx, 2); err != ErrInvalidIndex {
		t.Errorf("RemoveByIndex() error = %v, want %v", err, ErrInvalidIndex)
	}
}

func TestService_Filter(t *testing.T) {
	ctx := context.Background()
	svc := NewService(new(repositoryMock))

	math := createCourse(t, svc, "Mathematics", "teacher1@example.com")
	createCourse(t, svc, "Physics", "teacher2@example.com")
	createCourse(t, svc, "Algebra II", "teacher1@example.com")

	if _, err := svc.EnrollStudent(ctx, math.ID, "s1@example.com"); err != nil {
		t.Fatalf("EnrollStudent() error = %v", err)
	}

	tests := []struct {
		name      string
		filter    QueryFilter
		wantNames []string
	}{
		{name: "empty returns all", wantNames: []string{"Mathematics", "Physics", "Algebra II"}},
		{name: "by teacher", filter: QueryFilter{TeacherEmail: "teacher1@example.com"}, wantNames: []string{"Mathematics", "Algebra II"}},
		{name: "by unknown teacher", filter: QueryFilter{TeacherEmail: "who@example.com"}, wantNames: []string{}},
		{name: "by enrolled student", filter: QueryFilter{EnrolledStudent: "s1@example.com"}, wantNames: []string{"Mathematics"}},
		{name: "by not enrolled student", filter: QueryFilter{NotEnrolledStudent: "s1@example.com"}, wantNames: []string{"Physics", "Algebra II"}},
		{name: "by teacher and not enrolled", filter: QueryFilter{TeacherEmail: "teacher1@example.com", NotEnrolledStudent: "s1@example.com"}, wantNames: []string{"Algebra II"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			courses, err := svc.Filter(ctx, tt.filter)
			if err != nil {
				t.Fatalf("Filter() error = %v", err)
			}
			names := make([]string, 0, len(courses))
			for _, crs := range courses {
				names = append(names, crs.Name)
			}
			if len(names) != len(tt.wantNames) {
				t.Fatalf("Filter() = %v, want %v", names, tt.wantNames)
			}
			for i, name := range names {
				if name != tt.wantNames[i] {
					t.Fatalf("Filter() = %v, want %v", names, tt.wantNames)
				}
			}
		})
	}
}

func TestService_MutationsPersist(t *testing.T) {
	ctx := context.Background()
	svc := NewService(new(repositoryMock))

	crs := createCourse(t, svc, "Mathematics", "teacher1@example.com")

	if _, err := svc.AddContent(ctx, crs.ID, "Introduction to Algebra"); err != nil {
		t.Fatalf("AddContent() error = %v", err)
	}
	if _, err := svc.AddContent(ctx, crs.ID, "Advanced Calculus"); err != nil {
		t.Fatalf("AddContent() error = %v", err)
	}
	if _, err := svc.EnrollStudent(ctx, crs.ID, "s1@example.com"); err != nil {
		t.Fatalf("EnrollStudent() error = %v", err)
	}
	if _, err := svc.AddGrade(ctx, crs.ID, "s1@example.com", 85); err != nil {
		t.Fatalf("AddGrade() error = %v", err)
	}

	reloaded, err := svc.GetByIndex(ctx, 0)
	if err != nil {
		t.Fatalf("GetByIndex() error = %v", err)
	}
	if len(reloaded.Contents) != 2 {
		t.Errorf("len(Contents) = %d, want 2", len(reloaded.Contents))
	}
	if !reloaded.HasStudent("s1@example.com") {
		t.Error("HasStudent() = false after EnrollStudent")
	}
	if grade, ok := reloaded.GradeFor("s1@example.com"); !ok || grade.Score != 85 {
		t.Errorf("GradeFor() = %v, %v, want score 85", grade, ok)
	}
	if reloaded.UpdatedAt.Before(crs.UpdatedAt) {
		t.Error("UpdatedAt was not refreshed by mutations")
	}

	if _, err = svc.RemoveContent(ctx, crs.ID, 0); err != nil {
		t.Fatalf("RemoveContent() error = %v", err)
	}
	if _, err = svc.RemoveStudent(ctx, crs.ID, "s1@example.com"); err != nil {
		t.Fatalf("RemoveStudent() error = %v", err)
	}

	reloaded, err = svc.GetByIndex(ctx, 0)
	if err != nil {
		t.Fatalf("GetByIndex() error = %v", err)
	}
	if len(reloaded.Contents) != 1 || reloaded.Contents[0] != "Advanced Calculus" {
		t.Errorf("Contents = %v, want [Advanced Calculus]", reloaded.Contents)
	}
	if reloaded.HasStudent("s1@example.com") {
		t.Error("HasStudent() = true after RemoveStudent")
	}

	// unknown course
	if _, err = svc.AddContent(ctx, "nope", "Limits"); err != ErrNotFound {
		t.Errorf("AddContent() error = %v, want %v", err, ErrNotFound)
	}
	// domain errors propagate
	if _, err = svc.EnrollStudent(ctx, crs.ID, "not-an-email"); err != ErrInvalidStudentEmail {
		t.Errorf("EnrollStudent() error = %v, want %v", err, ErrInvalidStudentEmail)
	}
}
