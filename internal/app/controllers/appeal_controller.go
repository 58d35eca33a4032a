package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tomascl/horarium/internal/app/models"
	"github.com/tomascl/horarium/internal/app/models/dto"
	"github.com/tomascl/horarium/internal/app/services"
	"github.com/tomascl/horarium/internal/middleware"
)

// AppealController handles schedule change request operations
type AppealController struct {
	appealService *services.AppealService
}

// NewAppealController creates a new AppealController
func NewAppealController(appealService *services.AppealService) *AppealController {
	return &AppealController{
		appealService: appealService,
	}
}

// PreviewAppeals derives the appeals a snapshot would file
// @Summary Preview appeals
// @Description Derives the change requests the given working snapshot would file against the persisted schedule, without persisting anything
// @Tags appeals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.WorkingScheduleRequest true "Working snapshot"
// @Success 200 {object} dto.APIResponse{data=dto.AppealPreviewResponse} "Preview derived successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid snapshot data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Subject or group not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /appeals/preview [post]
func (c *AppealController) PreviewAppeals(ctx *gin.Context) {
	studentID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.WorkingScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid snapshot data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	preview, err := c.appealService.Preview(ctx, studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      preview,
		Timestamp: time.Now(),
	})
}

// SubmitAppeals files the pending changes of a snapshot
// @Summary Submit appeals
// @Description Files the change requests derived from the given working snapshot as pending appeals
// @Tags appeals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitAppealsRequest true "Working snapshot and optional reason"
// @Success 201 {object} dto.APIResponse{data=[]models.Appeal} "Appeals filed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid snapshot data or no pending changes"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Subject or group not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /appeals [post]
func (c *AppealController) SubmitAppeals(ctx *gin.Context) {
	studentID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.SubmitAppealsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid appeal data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	appeals, err := c.appealService.Submit(ctx, studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      appeals,
		Timestamp: time.Now(),
	})
}

// GetOwnAppeals lists the student's appeals
// @Summary Get own appeals
// @Description Retrieves the authenticated student's appeals, newest first
// @Tags appeals
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Appeal} "Appeals retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /appeals [get]
func (c *AppealController) GetOwnAppeals(ctx *gin.Context) {
	studentID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	appeals, err := c.appealService.GetByStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      appeals,
		Timestamp: time.Now(),
	})
}

// GetAllAppeals lists every appeal for review
// @Summary Get all appeals
// @Description Retrieves every appeal, optionally filtered by status. Advisor role required
// @Tags appeals
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(PENDING, APPROVED, REJECTED)
// @Success 200 {object} dto.APIResponse{data=[]models.Appeal} "Appeals retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Unknown status filter"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Advisor role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /appeals/all [get]
func (c *AppealController) GetAllAppeals(ctx *gin.Context) {
	var status *models.AppealStatus
	if raw := ctx.Query("status"); raw != "" {
		s := models.AppealStatus(raw)
		status = &s
	}

	appeals, err := c.appealService.GetAll(ctx, status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      appeals,
		Timestamp: time.Now(),
	})
}

// UpdateAppealStatus reviews a pending appeal
// @Summary Review an appeal
// @Description Approves or rejects a pending appeal. Approval applies the change to the student's schedule. Advisor role required
// @Tags appeals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appeal ID"
// @Param request body dto.UpdateAppealStatusRequest true "Review decision"
// @Success 200 {object} dto.APIResponse{data=models.Appeal} "Appeal reviewed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid review data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Advisor role required"
// @Failure 404 {object} dto.ErrorResponse "Appeal not found"
// @Failure 409 {object} dto.ErrorResponse "Appeal already reviewed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /appeals/{id}/status [patch]
func (c *AppealController) UpdateAppealStatus(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid appeal ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateAppealStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid review data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	appeal, err := c.appealService.UpdateStatus(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      appeal,
		Timestamp: time.Now(),
	})
}
