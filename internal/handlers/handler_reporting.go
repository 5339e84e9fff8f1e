package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samandar-s/exchange_office_app/internal/apperrors"
	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	portssvc "github.com/samandar-s/exchange_office_app/internal/core/ports/services"
	"github.com/samandar-s/exchange_office_app/internal/dto"
	"github.com/samandar-s/exchange_office_app/internal/middleware"
)

// reportingHandler handles HTTP requests related to balance reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to balance reporting.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	rg.GET("/reports/balance", h.balanceReport)
}

// balanceReport godoc
// @Summary Build a period balance report
// @Description Aggregates daily balance snapshots into a per-currency report over the requested window. Use branchID "combined" for the sum across all branches.
// @Tags reports
// @Produce  json
// @Param   period query string false "Report period: daily, weekly, monthly or custom (default daily)"
// @Param   branchID query string true "Branch id, or combined"
// @Param   from query string false "Window start (YYYY-MM-DD), custom period only"
// @Param   to query string false "Window end (YYYY-MM-DD), custom period only"
// @Success 200 {object} dto.BalanceReportResponse
// @Failure 400 {object} ErrorResponse "Invalid period or window"
// @Failure 403 {object} ErrorResponse "No access to branch"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/balance [get]
func (h *reportingHandler) balanceReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	branchID := c.Query("branchID")
	if branchID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "branchID query parameter is required"})
		return
	}

	period := domain.ReportPeriod(c.DefaultQuery("period", string(domain.PeriodDaily)))

	var from, to time.Time
	if period == domain.PeriodCustom {
		var err error
		from, err = time.Parse("2006-01-02", c.Query("from"))
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "from must be a date in YYYY-MM-DD format"})
			return
		}
		to, err = time.Parse("2006-01-02", c.Query("to"))
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "to must be a date in YYYY-MM-DD format"})
			return
		}
	}

	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	reports, window, err := h.reportingService.BalanceReport(c.Request.Context(), actor, period, branchID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to build balance report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build balance report"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceReportResponse(reports, period, branchID, window.From, window.To))
}
