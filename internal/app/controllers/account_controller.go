package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deniz/courseboard/internal/app/models"
	"github.com/deniz/courseboard/internal/app/models/dto"
	"github.com/deniz/courseboard/internal/app/services"
	"github.com/deniz/courseboard/internal/middleware"
)

// AccountController handles registration, login and the public teacher listing
type AccountController struct {
	accountService services.AccountService
}

// NewAccountController creates a new AccountController
func NewAccountController(accountService services.AccountService) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Register handles POST /register
func (c *AccountController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid registration data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	user, err := c.accountService.Register(ctx, req.Name, req.Email, req.Password, models.RoleType(req.Role))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.RegisterResponse{
		Message: "User registered successfully",
		User:    dto.NewUserResponse(user),
	})
}

// Login handles POST /login
func (c *AccountController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	token, user, err := c.accountService.Login(ctx, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	})
}

// ListTeachers handles GET /teachers
func (c *AccountController) ListTeachers(ctx *gin.Context) {
	teachers, err := c.accountService.ListTeachers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := make([]dto.TeacherResponse, 0, len(teachers))
	for _, teacher := range teachers {
		response = append(response, dto.TeacherResponse{
			ID:    teacher.ID,
			Name:  teacher.Name,
			Email: teacher.Email,
		})
	}

	ctx.JSON(http.StatusOK, response)
}
