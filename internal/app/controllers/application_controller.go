package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kaan/internlink/internal/app/models"
	"github.com/kaan/internlink/internal/app/models/dto"
	"github.com/kaan/internlink/internal/app/services"
	"github.com/kaan/internlink/internal/middleware"
	"github.com/kaan/internlink/internal/pkg/apperrors"
)

// ApplicationController handles application and withdrawal operations
type ApplicationController struct {
	applicationService services.ApplicationService
	internshipService  services.InternshipService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService services.ApplicationService, internshipService services.InternshipService) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
		internshipService:  internshipService,
	}
}

// Submit creates a new application for the authenticated student
// @Summary Apply to an internship
// @Description Submits an application; the eligibility, capacity and date gates all apply
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitApplicationRequest true "Target internship"
// @Success 201 {object} dto.APIResponse{data=models.Application} "Application submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Application cap reached or internship closed"
// @Failure 422 {object} dto.ErrorResponse "Student not eligible"
// @Router /applications [post]
func (c *ApplicationController) Submit(ctx *gin.Context) {
	var req dto.SubmitApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid application data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	application, err := c.applicationService.Submit(currentUserID(ctx), req.InternshipID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      application,
		Timestamp: time.Now(),
	})
}

// Mine lists the authenticated student's applications, newest first
// @Summary List own applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Application} "Applications"
// @Router /applications/me [get]
func (c *ApplicationController) Mine(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.applicationService.ByStudent(currentUserID(ctx)),
		Timestamp: time.Now(),
	})
}

// Incoming lists applications to the representative's internships
// @Summary List incoming applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Application} "Applications"
// @Router /applications/incoming [get]
func (c *ApplicationController) Incoming(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.applicationService.ByRepresentative(currentUserID(ctx)),
		Timestamp: time.Now(),
	})
}

// ByInternship lists an internship's applications, oldest first. Staff can
// view any internship; representatives only their own.
// @Summary List applications to one internship
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Internship ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Application} "Applications"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Router /internships/{id}/applications [get]
func (c *ApplicationController) ByInternship(ctx *gin.Context) {
	internshipID := ctx.Param("id")

	internship, err := c.internshipService.GetByID(internshipID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	role, _ := ctx.Get(middleware.ContextRole)
	if role != string(models.RoleStaff) && internship.RepresentativeID != currentUserID(ctx) {
		middleware.HandleAPIError(ctx, apperrors.NewForbiddenError("internship belongs to another representative"))
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.applicationService.ByInternship(internshipID),
		Timestamp: time.Now(),
	})
}

// Approve marks a pending application successful
// @Summary Approve an application
// @Description Marks the application successful; the slot itself is only consumed when the student accepts
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Application approved"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 409 {object} dto.ErrorResponse "Not pending or no slots left"
// @Router /applications/{id}/approve [post]
func (c *ApplicationController) Approve(ctx *gin.Context) {
	if err := c.applicationService.Approve(ctx.Param("id"), currentUserID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Application approved"},
		Timestamp: time.Now(),
	})
}

// Reject marks a pending application unsuccessful
// @Summary Reject an application
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Application rejected"
// @Router /applications/{id}/reject [post]
func (c *ApplicationController) Reject(ctx *gin.Context) {
	if err := c.applicationService.Reject(ctx.Param("id"), currentUserID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Application rejected"},
		Timestamp: time.Now(),
	})
}

// Accept confirms a successful application as the student's placement
// @Summary Accept a placement
// @Description Confirms the placement, consumes a slot and withdraws the student's other active applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Placement accepted"
// @Failure 403 {object} dto.ErrorResponse "Not the applicant"
// @Failure 409 {object} dto.ErrorResponse "Not successful or already placed"
// @Router /applications/{id}/accept [post]
func (c *ApplicationController) Accept(ctx *gin.Context) {
	if err := c.applicationService.AcceptPlacement(ctx.Param("id"), currentUserID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Placement accepted"},
		Timestamp: time.Now(),
	})
}

// RequestWithdrawal flags the application for staff withdrawal review
// @Summary Request withdrawal
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param request body dto.WithdrawalRequest true "Withdrawal reason"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Withdrawal requested"
// @Router /applications/{id}/withdrawal [post]
func (c *ApplicationController) RequestWithdrawal(ctx *gin.Context) {
	var req dto.WithdrawalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid withdrawal data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.applicationService.RequestWithdrawal(ctx.Param("id"), currentUserID(ctx), req.Reason); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Withdrawal requested"},
		Timestamp: time.Now(),
	})
}

// WithdrawalRequests lists applications awaiting a withdrawal decision
// @Summary List withdrawal requests
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Application} "Withdrawal requests"
// @Router /applications/withdrawal-requests [get]
func (c *ApplicationController) WithdrawalRequests(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.applicationService.WithdrawalRequests(),
		Timestamp: time.Now(),
	})
}

// ApproveWithdrawal finalizes a requested withdrawal
// @Summary Approve a withdrawal request
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Withdrawal approved"
// @Failure 409 {object} dto.ErrorResponse "No withdrawal requested"
// @Router /applications/{id}/withdrawal/approve [post]
func (c *ApplicationController) ApproveWithdrawal(ctx *gin.Context) {
	if err := c.applicationService.ApproveWithdrawal(ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Withdrawal approved"},
		Timestamp: time.Now(),
	})
}

// RejectWithdrawal clears a withdrawal request without changing the status
// @Summary Reject a withdrawal request
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Withdrawal rejected"
// @Router /applications/{id}/withdrawal/reject [post]
func (c *ApplicationController) RejectWithdrawal(ctx *gin.Context) {
	if err := c.applicationService.RejectWithdrawal(ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Withdrawal rejected"},
		Timestamp: time.Now(),
	})
}

// Statistics returns application counts by status
// @Summary Application statistics
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ApplicationStatisticsResponse} "Statistics"
// @Router /applications/statistics [get]
func (c *ApplicationController) Statistics(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.applicationService.Statistics(),
		Timestamp: time.Now(),
	})
}
