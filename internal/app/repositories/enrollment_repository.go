package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deniz/courseboard/internal/app/models"
)

// IEnrollmentRepository defines the interface for enrollment database operations
type IEnrollmentRepository interface {
	Enroll(ctx context.Context, courseID, studentID int64) error
	Withdraw(ctx context.Context, courseID, studentID int64) error
	IsEnrolled(ctx context.Context, courseID, studentID int64) (bool, error)
	ListStudents(ctx context.Context, courseID int64) ([]*models.User, error)
	ListStudentCourses(ctx context.Context, studentID int64) ([]*models.StudentCourse, error)
}

// EnrollmentRepository handles the student/course enrollment relation
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

// Enroll adds the student to the course. Enrolling an already-enrolled
// student is a no-op, guaranteed by the composite primary key.
func (r *EnrollmentRepository) Enroll(ctx context.Context, courseID, studentID int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO enrollments (course_id, student_id)
		VALUES ($1, $2)
		ON CONFLICT (course_id, student_id) DO NOTHING`,
		courseID, studentID)

	if err != nil {
		return fmt.Errorf("error enrolling student: %w", err)
	}

	return nil
}

// Withdraw removes the student from the course
func (r *EnrollmentRepository) Withdraw(ctx context.Context, courseID, studentID int64) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM enrollments
		WHERE course_id = $1 AND student_id = $2`,
		courseID, studentID)

	if err != nil {
		return fmt.Errorf("error withdrawing student: %w", err)
	}

	return nil
}

// IsEnrolled checks whether the student is enrolled in the course
func (r *EnrollmentRepository) IsEnrolled(ctx context.Context, courseID, studentID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM enrollments WHERE course_id = $1 AND student_id = $2)`,
		courseID, studentID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking enrollment: %w", err)
	}

	return exists, nil
}

// ListStudents retrieves the enrolled students of a course
func (r *EnrollmentRepository) ListStudents(ctx context.Context, courseID int64) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT u.id, u.name, u.email, u.role_type, u.created_at, u.updated_at
		FROM enrollments e
		JOIN users u ON u.id = e.student_id
		WHERE e.course_id = $1
		ORDER BY u.id`,
		courseID)
	if err != nil {
		return nil, fmt.Errorf("error listing enrolled students: %w", err)
	}
	defer rows.Close()

	var students []*models.User
	for rows.Next() {
		student := &models.User{}
		if err := rows.Scan(
			&student.ID, &student.Name, &student.Email,
			&student.RoleType, &student.CreatedAt, &student.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning enrolled student: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error listing enrolled students: %w", err)
	}

	return students, nil
}

// ListStudentCourses retrieves the courses a student is enrolled in, each
// with the teacher expanded and the student's own marks when graded.
func (r *EnrollmentRepository) ListStudentCourses(ctx context.Context, studentID int64) ([]*models.StudentCourse, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.title, c.description, c.teacher_id, c.created_at, c.updated_at,
		       u.id, u.name, u.email, u.role_type, u.created_at, u.updated_at,
		       g.marks
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		JOIN users u ON u.id = c.teacher_id
		LEFT JOIN grades g ON g.course_id = e.course_id AND g.student_id = e.student_id
		WHERE e.student_id = $1
		ORDER BY c.id`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing student courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.StudentCourse
	for rows.Next() {
		course := &models.StudentCourse{}
		course.Teacher = &models.User{}
		if err := rows.Scan(
			&course.ID, &course.Title, &course.Description, &course.TeacherID,
			&course.CreatedAt, &course.UpdatedAt,
			&course.Teacher.ID, &course.Teacher.Name, &course.Teacher.Email,
			&course.Teacher.RoleType, &course.Teacher.CreatedAt, &course.Teacher.UpdatedAt,
			&course.Marks); err != nil {
			return nil, fmt.Errorf("error scanning student course: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error listing student courses: %w", err)
	}

	return courses, nil
}
