package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kaan/internlink/internal/app/models"
	"github.com/kaan/internlink/internal/app/models/dto"
	"github.com/kaan/internlink/internal/app/services"
	"github.com/kaan/internlink/internal/middleware"
)

// InternshipController handles internship posting and listing operations
type InternshipController struct {
	internshipService services.InternshipService
}

// NewInternshipController creates a new InternshipController
func NewInternshipController(internshipService services.InternshipService) *InternshipController {
	return &InternshipController{internshipService: internshipService}
}

// bindFilter parses the listing filters from query parameters, writing the
// error response itself when parsing fails
func bindFilter(ctx *gin.Context) (*models.FilterSettings, bool) {
	var req dto.InternshipFilterRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid filter parameters")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return nil, false
	}

	filter, err := services.ParseFilterSettings(&req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return nil, false
	}
	return filter, true
}

// Create posts a new internship
// @Summary Create an internship
// @Description Posts a new internship opportunity; it stays pending and invisible until staff approval
// @Tags internships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateInternshipRequest true "Internship details"
// @Success 201 {object} dto.APIResponse{data=models.Internship} "Internship created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Representative not approved"
// @Failure 409 {object} dto.ErrorResponse "Creation cap reached"
// @Router /internships [post]
func (c *InternshipController) Create(ctx *gin.Context) {
	var req dto.CreateInternshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid internship data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	internship, err := c.internshipService.Create(currentUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      internship,
		Timestamp: time.Now(),
	})
}

// Update edits a pending internship
// @Summary Update a pending internship
// @Tags internships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Internship ID"
// @Param request body dto.UpdateInternshipRequest true "New internship details"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Internship updated"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 409 {object} dto.ErrorResponse "Internship no longer pending"
// @Router /internships/{id} [put]
func (c *InternshipController) Update(ctx *gin.Context) {
	var req dto.UpdateInternshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid internship data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.internshipService.Update(ctx.Param("id"), currentUserID(ctx), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Internship updated"},
		Timestamp: time.Now(),
	})
}

// Delete removes an internship without applicants
// @Summary Delete an internship
// @Tags internships
// @Produce json
// @Security BearerAuth
// @Param id path string true "Internship ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Internship deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 409 {object} dto.ErrorResponse "Internship already has applicants"
// @Router /internships/{id} [delete]
func (c *InternshipController) Delete(ctx *gin.Context) {
	if err := c.internshipService.Delete(ctx.Param("id"), currentUserID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Internship deleted"},
		Timestamp: time.Now(),
	})
}

// SetVisibility toggles an approved internship's visibility
// @Summary Toggle internship visibility
// @Tags internships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Internship ID"
// @Param request body dto.VisibilityRequest true "Visibility flag"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Visibility changed"
// @Router /internships/{id}/visibility [put]
func (c *InternshipController) SetVisibility(ctx *gin.Context) {
	var req dto.VisibilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Visible == nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid visibility data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.internshipService.SetVisibility(ctx.Param("id"), currentUserID(ctx), *req.Visible); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Visibility updated"},
		Timestamp: time.Now(),
	})
}

// GetByID returns a single internship
// @Summary Get internship by ID
// @Tags internships
// @Produce json
// @Security BearerAuth
// @Param id path string true "Internship ID"
// @Success 200 {object} dto.APIResponse{data=models.Internship} "Internship"
// @Failure 404 {object} dto.ErrorResponse "Internship not found"
// @Router /internships/{id} [get]
func (c *InternshipController) GetByID(ctx *gin.Context) {
	internship, err := c.internshipService.GetByID(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      internship,
		Timestamp: time.Now(),
	})
}

// Browse lists internships visible to the authenticated student
// @Summary Browse internships
// @Description Lists approved internships matching the student's profile, including hidden ones the student applied to
// @Tags internships
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param major query string false "Preferred major filter"
// @Param level query string false "Level filter"
// @Param closingDateFrom query string false "Closing date lower bound (inclusive)"
// @Param closingDateTo query string false "Closing date upper bound (inclusive)"
// @Param minSlots query string false "Minimum available slots"
// @Param appliedOnly query bool false "Only internships the student applied to"
// @Success 200 {object} dto.APIResponse{data=[]models.Internship} "Internships"
// @Router /internships [get]
func (c *InternshipController) Browse(ctx *gin.Context) {
	filter, ok := bindFilter(ctx)
	if !ok {
		return
	}

	internships, err := c.internshipService.VisibleToStudent(currentUserID(ctx), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      internships,
		Timestamp: time.Now(),
	})
}

// Mine lists the representative's own postings
// @Summary List own internships
// @Tags internships
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Internship} "Internships"
// @Router /internships/mine [get]
func (c *InternshipController) Mine(ctx *gin.Context) {
	filter, ok := bindFilter(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.internshipService.ByRepresentative(currentUserID(ctx), filter),
		Timestamp: time.Now(),
	})
}

// All lists every internship for staff
// @Summary List all internships
// @Tags internships
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Internship} "Internships"
// @Router /internships/all [get]
func (c *InternshipController) All(ctx *gin.Context) {
	filter, ok := bindFilter(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.internshipService.AllWithFilters(filter),
		Timestamp: time.Now(),
	})
}

// Pending lists internships awaiting staff review
// @Summary List pending internships
// @Tags internships
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Internship} "Pending internships"
// @Router /internships/pending [get]
func (c *InternshipController) Pending(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.internshipService.Pending(),
		Timestamp: time.Now(),
	})
}

// Approve approves a pending internship
// @Summary Approve an internship
// @Tags internships
// @Produce json
// @Security BearerAuth
// @Param id path string true "Internship ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Internship approved"
// @Failure 409 {object} dto.ErrorResponse "Internship not pending"
// @Router /internships/{id}/approve [post]
func (c *InternshipController) Approve(ctx *gin.Context) {
	if err := c.internshipService.Approve(ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Internship approved"},
		Timestamp: time.Now(),
	})
}

// Reject rejects a pending internship
// @Summary Reject an internship
// @Tags internships
// @Produce json
// @Security BearerAuth
// @Param id path string true "Internship ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Internship rejected"
// @Failure 409 {object} dto.ErrorResponse "Internship not pending"
// @Router /internships/{id}/reject [post]
func (c *InternshipController) Reject(ctx *gin.Context) {
	if err := c.internshipService.Reject(ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Internship rejected"},
		Timestamp: time.Now(),
	})
}

// Statistics returns internship counts by status
// @Summary Internship statistics
// @Tags internships
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.InternshipStatisticsResponse} "Statistics"
// @Router /internships/statistics [get]
func (c *InternshipController) Statistics(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.internshipService.Statistics(),
		Timestamp: time.Now(),
	})
}
