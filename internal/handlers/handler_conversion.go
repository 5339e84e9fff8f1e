package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samandar-s/exchange_office_app/internal/apperrors"
	portssvc "github.com/samandar-s/exchange_office_app/internal/core/ports/services"
	"github.com/samandar-s/exchange_office_app/internal/dto"
	"github.com/samandar-s/exchange_office_app/internal/middleware"
)

// conversionHandler handles HTTP requests related to currency conversions.
type conversionHandler struct {
	conversionService portssvc.ConversionSvcFacade
}

// newConversionHandler creates a new conversionHandler.
func newConversionHandler(cs portssvc.ConversionSvcFacade) *conversionHandler {
	return &conversionHandler{
		conversionService: cs,
	}
}

// registerConversionRoutes registers routes related to conversions.
func registerConversionRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvcFacade) {
	h := newConversionHandler(conversionService)

	conversions := rg.Group("/conversions")
	{
		conversions.POST("/preview", h.previewConversion)
		conversions.POST("", h.recordConversion)
		conversions.GET("", h.listConversions)
	}
}

// previewConversion godoc
// @Summary Preview a conversion
// @Description Resolves the rate for the pair and computes the open side of the exchange form. Nothing is persisted.
// @Tags conversions
// @Accept  json
// @Produce  json
// @Param   preview body dto.ConversionPreviewRequest true "Preview request"
// @Success 200 {object} dto.ConversionPreviewResponse
// @Failure 400 {object} ErrorResponse "Validation error or identical currencies"
// @Failure 404 {object} ErrorResponse "No rate stored for the pair"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /conversions/preview [post]
func (h *conversionHandler) previewConversion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConversionPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PreviewConversion", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	preview, err := h.conversionService.PreviewConversion(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrSameCurrency), errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrRateNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to preview conversion", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to preview conversion"})
		}
		return
	}

	c.JSON(http.StatusOK, preview)
}

// recordConversion godoc
// @Summary Record a conversion
// @Description Validates, resolves the rate and records the exchange with its ledger entries.
// @Tags conversions
// @Accept  json
// @Produce  json
// @Param   conversion body dto.RecordConversionRequest true "Conversion details"
// @Success 201 {object} dto.ConversionResponse
// @Failure 400 {object} ErrorResponse "Validation error or identical currencies"
// @Failure 403 {object} ErrorResponse "No access to branch"
// @Failure 404 {object} ErrorResponse "No rate stored for the pair"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /conversions [post]
func (h *conversionHandler) recordConversion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordConversion", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	conversion, err := h.conversionService.RecordConversion(c.Request.Context(), actor, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrSameCurrency), errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrRateNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to record conversion", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record conversion"})
		}
		return
	}

	logger.Info("Conversion recorded", slog.String("conversion_id", conversion.ConversionID), slog.String("branch_id", conversion.BranchID))
	c.JSON(http.StatusCreated, dto.ToConversionResponse(conversion))
}

// listConversions godoc
// @Summary List conversions
// @Description Retrieves conversion history visible to the caller, newest first.
// @Tags conversions
// @Produce  json
// @Param   branchID query string false "Filter by branch"
// @Param   page query int false "Page number (default 1)"
// @Param   pageSize query int false "Page size (default 20)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse "Branch filter required"
// @Failure 403 {object} ErrorResponse "No access to branch"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /conversions [get]
func (h *conversionHandler) listConversions(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	var branchID *string
	if v := c.Query("branchID"); v != "" {
		branchID = &v
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	conversions, total, err := h.conversionService.ListConversions(c.Request.Context(), actor, branchID, page, pageSize)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger := middleware.GetLoggerFromCtx(c.Request.Context())
			logger.Error("Failed to list conversions", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list conversions"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"conversions": dto.ToListConversionResponse(conversions),
		"total":       total,
	})
}
