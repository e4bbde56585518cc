package services

import (
	"context"
	"errors"
	"testing"

	"github.com/deniz/courseboard/internal/app/models"
	"github.com/deniz/courseboard/internal/pkg/apperrors"
)

type courseTestEnv struct {
	users       *fakeUserRepo
	courses     *fakeCourseRepo
	enrollments *fakeEnrollmentRepo
	svc         CourseService
}

func newCourseTestEnv() *courseTestEnv {
	users := newFakeUserRepo()
	courses := newFakeCourseRepo(users)
	grades := newFakeGradeRepo()
	enrollments := newFakeEnrollmentRepo(users, courses, grades)
	return &courseTestEnv{
		users:       users,
		courses:     courses,
		enrollments: enrollments,
		svc:         NewCourseService(courses, users, enrollments),
	}
}

func TestCourseCreate(t *testing.T) {
	env := newCourseTestEnv()
	teacher := env.users.mustAddUser("Teacher", "t@example.com", models.RoleTeacher)
	ctx := context.Background()

	course, err := env.svc.Create(ctx, "Algorithms", "Sorting and graphs", teacher.ID)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if course.ID == 0 {
		t.Error("expected a non-zero course ID")
	}
	if course.TeacherID != teacher.ID {
		t.Errorf("TeacherID = %d, want %d", course.TeacherID, teacher.ID)
	}
}

func TestCourseCreateValidation(t *testing.T) {
	env := newCourseTestEnv()
	teacher := env.users.mustAddUser("Teacher", "t@example.com", models.RoleTeacher)
	student := env.users.mustAddUser("Student", "s@example.com", models.RoleStudent)
	ctx := context.Background()

	tests := []struct {
		name      string
		title     string
		teacherID int64
		wantErr   error
	}{
		{name: "empty title", title: "", teacherID: teacher.ID, wantErr: apperrors.ErrValidationFailed},
		{name: "blank title", title: "   ", teacherID: teacher.ID, wantErr: apperrors.ErrValidationFailed},
		{name: "zero teacher id", title: "Algorithms", teacherID: 0, wantErr: apperrors.ErrValidationFailed},
		{name: "unknown teacher", title: "Algorithms", teacherID: 999, wantErr: apperrors.ErrTeacherNotFound},
		{name: "teacher id refers to a student", title: "Algorithms", teacherID: student.ID, wantErr: apperrors.ErrTeacherNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.svc.Create(ctx, tt.title, "desc", tt.teacherID)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCourseUpdate(t *testing.T) {
	env := newCourseTestEnv()
	teacher := env.users.mustAddUser("Teacher", "t@example.com", models.RoleTeacher)
	ctx := context.Background()

	created, err := env.svc.Create(ctx, "Algorithms", "old", teacher.ID)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := env.svc.Update(ctx, created.ID, "Advanced Algorithms", "new", teacher.ID)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Title != "Advanced Algorithms" {
		t.Errorf("Title = %q, want %q", updated.Title, "Advanced Algorithms")
	}

	stored, err := env.courses.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if stored.Description != "new" {
		t.Errorf("stored Description = %q, want %q", stored.Description, "new")
	}
}

func TestCourseUpdateNotFound(t *testing.T) {
	env := newCourseTestEnv()
	teacher := env.users.mustAddUser("Teacher", "t@example.com", models.RoleTeacher)

	_, err := env.svc.Update(context.Background(), 404, "Algorithms", "desc", teacher.ID)
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Errorf("Update error = %v, want ErrCourseNotFound", err)
	}
}

func TestCourseDelete(t *testing.T) {
	env := newCourseTestEnv()
	teacher := env.users.mustAddUser("Teacher", "t@example.com", models.RoleTeacher)
	ctx := context.Background()

	created, err := env.svc.Create(ctx, "Algorithms", "desc", teacher.ID)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := env.svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := env.courses.GetByID(ctx, created.ID); !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Error("course still retrievable after delete")
	}

	if err := env.svc.Delete(ctx, created.ID); !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Errorf("second Delete error = %v, want ErrCourseNotFound", err)
	}
}

func TestCourseListByTeacher(t *testing.T) {
	env := newCourseTestEnv()
	first := env.users.mustAddUser("Teacher One", "t1@example.com", models.RoleTeacher)
	second := env.users.mustAddUser("Teacher Two", "t2@example.com", models.RoleTeacher)
	ctx := context.Background()

	if _, err := env.svc.Create(ctx, "Algorithms", "", first.ID); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := env.svc.Create(ctx, "Databases", "", second.ID); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	courses, err := env.svc.ListByTeacher(ctx, first.ID)
	if err != nil {
		t.Fatalf("ListByTeacher returned error: %v", err)
	}
	if len(courses) != 1 {
		t.Fatalf("len(courses) = %d, want 1", len(courses))
	}
	if courses[0].Title != "Algorithms" {
		t.Errorf("courses[0].Title = %q, want %q", courses[0].Title, "Algorithms")
	}
}

func TestCourseListStudents(t *testing.T) {
	env := newCourseTestEnv()
	teacher := env.users.mustAddUser("Teacher", "t@example.com", models.RoleTeacher)
	student := env.users.mustAddUser("Student", "s@example.com", models.RoleStudent)
	ctx := context.Background()

	course, err := env.svc.Create(ctx, "Algorithms", "", teacher.ID)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := env.enrollments.Enroll(ctx, course.ID, student.ID); err != nil {
		t.Fatalf("Enroll returned error: %v", err)
	}

	students, err := env.svc.ListStudents(ctx, course.ID)
	if err != nil {
		t.Fatalf("ListStudents returned error: %v", err)
	}
	if len(students) != 1 || students[0].ID != student.ID {
		t.Errorf("unexpected roster: %+v", students)
	}

	if _, err := env.svc.ListStudents(ctx, 404); !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Errorf("ListStudents error = %v, want ErrCourseNotFound", err)
	}
}
