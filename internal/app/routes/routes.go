package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/deniz/courseboard/internal/app/controllers"
	"github.com/deniz/courseboard/internal/app/models"
	"github.com/deniz/courseboard/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	accountController *controllers.AccountController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	gradingController *controllers.GradingController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public routes ---
	router.POST("/register", accountController.Register)
	router.POST("/login", accountController.Login)
	router.GET("/teachers", accountController.ListTeachers)

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.Authenticate())

	// Course listing for any authenticated role
	authenticated.GET("/courses", courseController.List)

	// Admin-only course management
	admin := authenticated.Group("/admin")
	admin.Use(authMiddleware.RequireRoles(models.RoleAdmin))
	{
		admin.POST("/course", courseController.Create)
		admin.GET("/courses", courseController.ListAll)
		admin.PUT("/course/:id", courseController.Update)
		admin.DELETE("/course/:id", courseController.Delete)
	}

	// Student-only enrollment and grade viewing
	student := authenticated.Group("/student")
	student.Use(authMiddleware.RequireRoles(models.RoleStudent))
	{
		student.POST("/course", enrollmentController.Enroll)
		student.DELETE("/course/:courseId", enrollmentController.Withdraw)
		student.GET("/courses", enrollmentController.ListMyCourses)
		student.GET("/course/:courseId/grade", gradingController.GetMyGrade)
	}

	// Teacher-only rosters and grading
	teacher := authenticated.Group("/teacher")
	teacher.Use(authMiddleware.RequireRoles(models.RoleTeacher))
	{
		teacher.GET("/courses", courseController.ListMine)
		teacher.GET("/course/:courseId/students", courseController.ListStudents)
		teacher.POST("/course/:courseId/student/:studentId/grade", gradingController.AssignGrade)
	}
}
