package services

import (
	"context"
	"sort"

	"github.com/deniz/courseboard/internal/app/models"
	"github.com/deniz/courseboard/internal/pkg/apperrors"
)

// In-memory repository fakes backing the service tests.

type pairKey struct {
	courseID  int64
	studentID int64
}

type fakeUserRepo struct {
	nextID int64
	users  map[int64]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) (int64, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	r.nextID++
	copied := *user
	copied.ID = r.nextID
	r.users[copied.ID] = &copied
	return copied.ID, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) ListByRole(_ context.Context, role models.RoleType) ([]*models.User, error) {
	var users []*models.User
	for _, user := range r.users {
		if user.RoleType == role {
			users = append(users, user)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// mustAddUser seeds a user directly, bypassing validation
func (r *fakeUserRepo) mustAddUser(name, email string, role models.RoleType) *models.User {
	r.nextID++
	user := &models.User{ID: r.nextID, Name: name, Email: email, RoleType: role}
	r.users[user.ID] = user
	return user
}

type fakeCourseRepo struct {
	nextID  int64
	courses map[int64]*models.Course
	users   *fakeUserRepo
}

func newFakeCourseRepo(users *fakeUserRepo) *fakeCourseRepo {
	return &fakeCourseRepo{courses: make(map[int64]*models.Course), users: users}
}

func (r *fakeCourseRepo) Create(_ context.Context, course *models.Course) (int64, error) {
	r.nextID++
	copied := *course
	copied.ID = r.nextID
	r.courses[copied.ID] = &copied
	return copied.ID, nil
}

func (r *fakeCourseRepo) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := r.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

func (r *fakeCourseRepo) Update(_ context.Context, course *models.Course) error {
	if _, ok := r.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	copied := *course
	r.courses[course.ID] = &copied
	return nil
}

func (r *fakeCourseRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(r.courses, id)
	return nil
}

func (r *fakeCourseRepo) list() []*models.Course {
	var courses []*models.Course
	for _, course := range r.courses {
		copied := *course
		if r.users != nil {
			if teacher, ok := r.users.users[course.TeacherID]; ok {
				copied.Teacher = teacher
			}
		}
		courses = append(courses, &copied)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses
}

func (r *fakeCourseRepo) ListWithTeacher(_ context.Context) ([]*models.Course, error) {
	return r.list(), nil
}

func (r *fakeCourseRepo) ListWithStudents(_ context.Context) ([]*models.Course, error) {
	return r.list(), nil
}

func (r *fakeCourseRepo) ListByTeacher(_ context.Context, teacherID int64) ([]*models.Course, error) {
	var courses []*models.Course
	for _, course := range r.list() {
		if course.TeacherID == teacherID {
			courses = append(courses, course)
		}
	}
	return courses, nil
}

type fakeGradeRepo struct {
	nextID int64
	grades map[pairKey]*models.Grade
}

func newFakeGradeRepo() *fakeGradeRepo {
	return &fakeGradeRepo{grades: make(map[pairKey]*models.Grade)}
}

func (r *fakeGradeRepo) Upsert(_ context.Context, grade *models.Grade) error {
	key := pairKey{courseID: grade.CourseID, studentID: grade.StudentID}
	if existing, ok := r.grades[key]; ok {
		existing.Marks = grade.Marks
		grade.ID = existing.ID
		return nil
	}
	r.nextID++
	copied := *grade
	copied.ID = r.nextID
	r.grades[key] = &copied
	grade.ID = copied.ID
	return nil
}

func (r *fakeGradeRepo) GetByCourseAndStudent(_ context.Context, courseID, studentID int64) (*models.Grade, error) {
	grade, ok := r.grades[pairKey{courseID: courseID, studentID: studentID}]
	if !ok {
		return nil, apperrors.ErrGradeNotFound
	}
	return grade, nil
}

type fakeEnrollmentRepo struct {
	enrolled map[pairKey]bool
	users    *fakeUserRepo
	courses  *fakeCourseRepo
	grades   *fakeGradeRepo
}

func newFakeEnrollmentRepo(users *fakeUserRepo, courses *fakeCourseRepo, grades *fakeGradeRepo) *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{
		enrolled: make(map[pairKey]bool),
		users:    users,
		courses:  courses,
		grades:   grades,
	}
}

func (r *fakeEnrollmentRepo) Enroll(_ context.Context, courseID, studentID int64) error {
	r.enrolled[pairKey{courseID: courseID, studentID: studentID}] = true
	return nil
}

func (r *fakeEnrollmentRepo) Withdraw(_ context.Context, courseID, studentID int64) error {
	delete(r.enrolled, pairKey{courseID: courseID, studentID: studentID})
	return nil
}

func (r *fakeEnrollmentRepo) IsEnrolled(_ context.Context, courseID, studentID int64) (bool, error) {
	return r.enrolled[pairKey{courseID: courseID, studentID: studentID}], nil
}

func (r *fakeEnrollmentRepo) ListStudents(_ context.Context, courseID int64) ([]*models.User, error) {
	var students []*models.User
	for key := range r.enrolled {
		if key.courseID != courseID {
			continue
		}
		if student, ok := r.users.users[key.studentID]; ok {
			students = append(students, student)
		}
	}
	sort.Slice(students, func(i, j int) bool { return students[i].ID < students[j].ID })
	return students, nil
}

func (r *fakeEnrollmentRepo) ListStudentCourses(_ context.Context, studentID int64) ([]*models.StudentCourse, error) {
	var result []*models.StudentCourse
	for key := range r.enrolled {
		if key.studentID != studentID {
			continue
		}
		course, ok := r.courses.courses[key.courseID]
		if !ok {
			continue
		}
		entry := &models.StudentCourse{Course: *course}
		if grade, ok := r.grades.grades[key]; ok {
			marks := grade.Marks
			entry.Marks = &marks
		}
		result = append(result, entry)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}
