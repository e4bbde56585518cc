package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/deniz/courseboard/internal/app/models/dto"
	"github.com/deniz/courseboard/internal/app/services"
	"github.com/deniz/courseboard/internal/middleware"
)

// GradingController handles grade assignment and retrieval
type GradingController struct {
	gradingService services.GradingService
}

// NewGradingController creates a new GradingController
func NewGradingController(gradingService services.GradingService) *GradingController {
	return &GradingController{
		gradingService: gradingService,
	}
}

// AssignGrade handles POST /teacher/course/:courseId/student/:studentId/grade
func (c *GradingController) AssignGrade(ctx *gin.Context) {
	courseID, err := strconv.ParseInt(ctx.Param("courseId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID")
		errorDetail = errorDetail.WithDetails("Course ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	studentID, err := strconv.ParseInt(ctx.Param("studentId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		errorDetail = errorDetail.WithDetails("Student ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.AssignGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid grade data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.gradingService.AssignGrade(ctx, courseID, studentID, *req.Grade); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Grade assigned successfully"})
}

// GetMyGrade handles GET /student/course/:courseId/grade
func (c *GradingController) GetMyGrade(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	courseID, err := strconv.ParseInt(ctx.Param("courseId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID")
		errorDetail = errorDetail.WithDetails("Course ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	grade, letter, err := c.gradingService.GetMyGrade(ctx, courseID, user.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GradeResponse{
		Marks: grade.Marks,
		Grade: letter,
	})
}
