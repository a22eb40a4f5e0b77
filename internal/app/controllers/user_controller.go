package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kaan/internlink/internal/app/models/dto"
	"github.com/kaan/internlink/internal/app/services"
	"github.com/kaan/internlink/internal/middleware"
)

// UserController handles identity lookups and staff account operations
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// currentUserID returns the authenticated user's ID from the request context
func currentUserID(ctx *gin.Context) string {
	id, _ := ctx.Get(middleware.ContextUserID)
	s, _ := id.(string)
	return s
}

// Me returns the authenticated user's record
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.User} "User profile"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/me [get]
func (c *UserController) Me(ctx *gin.Context) {
	user, err := c.userService.GetByID(currentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      user,
		Timestamp: time.Now(),
	})
}

// ApproveRepresentative approves a company representative account
// @Summary Approve a representative account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "Representative ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Representative approved"
// @Failure 404 {object} dto.ErrorResponse "Representative not found"
// @Failure 409 {object} dto.ErrorResponse "Already approved"
// @Router /representatives/{id}/approve [post]
func (c *UserController) ApproveRepresentative(ctx *gin.Context) {
	if err := c.userService.ApproveRepresentative(ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Representative approved"},
		Timestamp: time.Now(),
	})
}

// PendingRepresentatives lists representative accounts awaiting approval
// @Summary List pending representative accounts
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.User} "Pending representatives"
// @Router /representatives/pending [get]
func (c *UserController) PendingRepresentatives(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.userService.PendingRepresentatives(),
		Timestamp: time.Now(),
	})
}
