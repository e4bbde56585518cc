package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deniz/courseboard/internal/app/models"
	"github.com/deniz/courseboard/internal/pkg/apperrors"
)

// ICourseRepository defines the interface for course-related database operations
type ICourseRepository interface {
	Create(ctx context.Context, course *models.Course) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
	ListWithTeacher(ctx context.Context) ([]*models.Course, error)
	ListWithStudents(ctx context.Context) ([]*models.Course, error)
	ListByTeacher(ctx context.Context, teacherID int64) ([]*models.Course, error)
}

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create creates a new course and returns its id
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO courses (title, description, teacher_id)
		VALUES ($1, $2, $3)
		RETURNING id`,
		course.Title, course.Description, course.TeacherID).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	return id, nil
}

// GetByID retrieves a course by ID, without relations
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	course := &models.Course{}
	err := r.db.QueryRow(ctx, `
		SELECT id, title, description, teacher_id, created_at, updated_at
		FROM courses
		WHERE id = $1`,
		id).Scan(
		&course.ID, &course.Title, &course.Description, &course.TeacherID,
		&course.CreatedAt, &course.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// Update updates an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE courses
		SET title = $1, description = $2, teacher_id = $3, updated_at = NOW()
		WHERE id = $4`,
		course.Title, course.Description, course.TeacherID, course.ID)

	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete deletes a course by ID
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM courses
		WHERE id = $1`,
		id)

	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// ListWithTeacher retrieves all courses with the teacher relation expanded
func (r *CourseRepository) ListWithTeacher(ctx context.Context) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, courseWithTeacherQuery+` ORDER BY c.id`)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	return scanCoursesWithTeacher(rows)
}

// ListWithStudents retrieves all courses with teacher and enrolled students expanded
func (r *CourseRepository) ListWithStudents(ctx context.Context) ([]*models.Course, error) {
	courses, err := r.ListWithTeacher(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.attachStudents(ctx, courses); err != nil {
		return nil, err
	}

	return courses, nil
}

// ListByTeacher retrieves a teacher's courses with enrolled students expanded
func (r *CourseRepository) ListByTeacher(ctx context.Context, teacherID int64) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, courseWithTeacherQuery+` WHERE c.teacher_id = $1 ORDER BY c.id`, teacherID)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	courses, err := scanCoursesWithTeacher(rows)
	if err != nil {
		return nil, err
	}

	if err := r.attachStudents(ctx, courses); err != nil {
		return nil, err
	}

	return courses, nil
}

const courseWithTeacherQuery = `
	SELECT c.id, c.title, c.description, c.teacher_id, c.created_at, c.updated_at,
	       u.id, u.name, u.email, u.role_type, u.created_at, u.updated_at
	FROM courses c
	JOIN users u ON u.id = c.teacher_id`

// scanCoursesWithTeacher scans joined course+teacher rows
func scanCoursesWithTeacher(rows pgx.Rows) ([]*models.Course, error) {
	var courses []*models.Course
	for rows.Next() {
		course := &models.Course{Teacher: &models.User{}}
		if err := rows.Scan(
			&course.ID, &course.Title, &course.Description, &course.TeacherID,
			&course.CreatedAt, &course.UpdatedAt,
			&course.Teacher.ID, &course.Teacher.Name, &course.Teacher.Email,
			&course.Teacher.RoleType, &course.Teacher.CreatedAt, &course.Teacher.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning course: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}

	return courses, nil
}

// attachStudents loads the enrolled-student sets for the given courses in one query
func (r *CourseRepository) attachStudents(ctx context.Context, courses []*models.Course) error {
	if len(courses) == 0 {
		return nil
	}

	byID := make(map[int64]*models.Course, len(courses))
	ids := make([]int64, 0, len(courses))
	for _, course := range courses {
		byID[course.ID] = course
		ids = append(ids, course.ID)
	}

	rows, err := r.db.Query(ctx, `
		SELECT e.course_id, u.id, u.name, u.email, u.role_type, u.created_at, u.updated_at
		FROM enrollments e
		JOIN users u ON u.id = e.student_id
		WHERE e.course_id = ANY($1)
		ORDER BY e.course_id, u.id`,
		ids)
	if err != nil {
		return fmt.Errorf("error listing enrolled students: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var courseID int64
		student := &models.User{}
		if err := rows.Scan(
			&courseID, &student.ID, &student.Name, &student.Email,
			&student.RoleType, &student.CreatedAt, &student.UpdatedAt); err != nil {
			return fmt.Errorf("error scanning enrolled student: %w", err)
		}
		if course, ok := byID[courseID]; ok {
			course.Students = append(course.Students, student)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error listing enrolled students: %w", err)
	}

	return nil
}
