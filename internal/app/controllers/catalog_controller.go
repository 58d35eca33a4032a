package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tomascl/horarium/internal/app/models/dto"
	"github.com/tomascl/horarium/internal/app/services"
	"github.com/tomascl/horarium/internal/middleware"
)

// CatalogController handles subject catalog operations
type CatalogController struct {
	catalogService *services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService *services.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// GetAllSubjects retrieves the full subject catalog
// @Summary Get all subjects
// @Description Retrieves every subject with its requirements, groups and weekly slots
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Subject} "Subjects retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /catalog/subjects [get]
func (c *CatalogController) GetAllSubjects(ctx *gin.Context) {
	subjects, err := c.catalogService.GetAllSubjects(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      subjects,
		Timestamp: time.Now(),
	})
}

// GetSubjectBySku retrieves a subject by sku
// @Summary Get subject by sku
// @Description Retrieves a specific subject by its sku
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param sku path string true "Subject sku"
// @Success 200 {object} dto.APIResponse{data=models.Subject} "Subject retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /catalog/subjects/{sku} [get]
func (c *CatalogController) GetSubjectBySku(ctx *gin.Context) {
	sku := ctx.Param("sku")
	if sku == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid subject sku")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	subject, err := c.catalogService.GetSubjectBySku(ctx, sku)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      subject,
		Timestamp: time.Now(),
	})
}
