package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tomascl/horarium/internal/app/models/dto"
	"github.com/tomascl/horarium/internal/app/services"
	"github.com/tomascl/horarium/internal/middleware"
)

// ScheduleController handles schedule viewing and editing operations
type ScheduleController struct {
	scheduleService *services.ScheduleService
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(scheduleService *services.ScheduleService) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
	}
}

// GetSchedule retrieves the student's persisted schedule
// @Summary Get own schedule
// @Description Retrieves the authenticated student's confirmed schedule
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ScheduleResponse} "Schedule retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedule [get]
func (c *ScheduleController) GetSchedule(ctx *gin.Context) {
	studentID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	entries, err := c.scheduleService.GetBaseline(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.ScheduleResponse{Entries: entries},
		Timestamp: time.Now(),
	})
}

// SaveSchedule replaces the student's persisted schedule
// @Summary Save schedule
// @Description Replaces the authenticated student's confirmed schedule with the given snapshot
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.WorkingScheduleRequest true "Schedule snapshot, one group per subject"
// @Success 200 {object} dto.APIResponse{data=dto.ScheduleResponse} "Schedule saved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid schedule data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Subject or group not found"
// @Failure 409 {object} dto.ErrorResponse "Time conflict or requirement violation"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedule [put]
func (c *ScheduleController) SaveSchedule(ctx *gin.Context) {
	studentID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.WorkingScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid schedule data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	entries, err := c.scheduleService.SaveSchedule(ctx, studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.ScheduleResponse{Entries: entries},
		Timestamp: time.Now(),
	})
}

// CheckCandidate evaluates a candidate group against a working snapshot
// @Summary Check candidate group
// @Description Reports whether a group can join the given working snapshot without time conflicts or requirement violations
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CandidateCheckRequest true "Candidate group and working snapshot"
// @Success 200 {object} dto.APIResponse{data=dto.CandidateCheckResponse} "Check evaluated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Subject or group not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedule/check [post]
func (c *ScheduleController) CheckCandidate(ctx *gin.Context) {
	var req dto.CandidateCheckRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid check request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.scheduleService.CheckCandidate(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// DescribeWorking classifies a working snapshot against the baseline
// @Summary Classify working snapshot
// @Description Returns every group of the working snapshot with its edit state against the persisted schedule
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.WorkingScheduleRequest true "Working snapshot"
// @Success 200 {object} dto.APIResponse{data=[]dto.ScheduleEntryResponse} "Snapshot classified successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid snapshot data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Subject or group not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedule/state [post]
func (c *ScheduleController) DescribeWorking(ctx *gin.Context) {
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

	entries, err := c.scheduleService.DescribeWorking(ctx, studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      entries,
		Timestamp: time.Now(),
	})
}

// GetGrid projects a working snapshot onto the calendar grid
// @Summary Project calendar grid
// @Description Projects the union of the persisted schedule and the given working snapshot onto the weekly grid
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.WorkingScheduleRequest true "Working snapshot"
// @Success 200 {object} dto.APIResponse{data=dto.GridResponse} "Grid projected successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid snapshot data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Subject or group not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedule/grid [post]
func (c *ScheduleController) GetGrid(ctx *gin.Context) {
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

	grid, err := c.scheduleService.GetGrid(ctx, studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      grid,
		Timestamp: time.Now(),
	})
}

func respondUnauthenticated(ctx *gin.Context) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
	ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}
