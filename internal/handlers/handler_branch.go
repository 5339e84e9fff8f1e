package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samandar-s/exchange_office_app/internal/apperrors"
	portssvc "github.com/samandar-s/exchange_office_app/internal/core/ports/services"
	"github.com/samandar-s/exchange_office_app/internal/dto"
	"github.com/samandar-s/exchange_office_app/internal/middleware"
)

// branchHandler handles HTTP requests related to branches.
type branchHandler struct {
	branchService portssvc.BranchSvcFacade
}

// newBranchHandler creates a new branchHandler.
func newBranchHandler(bs portssvc.BranchSvcFacade) *branchHandler {
	return &branchHandler{
		branchService: bs,
	}
}

// registerBranchRoutes registers routes related to branches.
func registerBranchRoutes(rg *gin.RouterGroup, branchService portssvc.BranchSvcFacade) {
	h := newBranchHandler(branchService)

	branches := rg.Group("/branches")
	{
		branches.POST("", h.createBranch)
		branches.GET("", h.listBranches)
		branches.GET("/:id", h.getBranch)
		branches.PUT("/:id", h.updateBranch)
		branches.DELETE("/:id", h.deleteBranch)
	}
}

// createBranch godoc
// @Summary Create a branch
// @Description Registers a new branch. Admin only.
// @Tags branches
// @Accept  json
// @Produce  json
// @Param   branch body dto.CreateBranchRequest true "Branch details"
// @Success 201 {object} dto.BranchResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 403 {object} ErrorResponse "Requires the ADMIN role"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /branches [post]
func (h *branchHandler) createBranch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBranch", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	branch, err := h.branchService.CreateBranch(c.Request.Context(), actor, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to create branch", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create branch"})
		}
		return
	}

	logger.Info("Branch created", slog.String("branch_id", branch.BranchID))
	c.JSON(http.StatusCreated, dto.ToBranchResponse(branch))
}

// listBranches godoc
// @Summary List branches
// @Description Retrieves the branches visible to the caller. Managers see only their assigned branches.
// @Tags branches
// @Produce  json
// @Success 200 {array} dto.BranchResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /branches [get]
func (h *branchHandler) listBranches(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	branches, err := h.branchService.ListBranches(c.Request.Context(), actor)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list branches", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list branches"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBranchResponse(branches))
}

// getBranch godoc
// @Summary Get a branch
// @Description Retrieves a branch by id.
// @Tags branches
// @Produce  json
// @Param   id path string true "Branch id"
// @Success 200 {object} dto.BranchResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /branches/{id} [get]
func (h *branchHandler) getBranch(c *gin.Context) {
	branchID := c.Param("id")

	branch, err := h.branchService.GetBranchByID(c.Request.Context(), branchID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		default:
			logger := middleware.GetLoggerFromCtx(c.Request.Context())
			logger.Error("Failed to get branch", slog.String("error", err.Error()), slog.String("branch_id", branchID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get branch"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBranchResponse(branch))
}

// updateBranch godoc
// @Summary Update a branch
// @Description Applies partial updates to a branch. Admin only.
// @Tags branches
// @Accept  json
// @Produce  json
// @Param   id path string true "Branch id"
// @Param   branch body dto.UpdateBranchRequest true "Fields to update"
// @Success 200 {object} dto.BranchResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 403 {object} ErrorResponse "Requires the ADMIN role"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /branches/{id} [put]
func (h *branchHandler) updateBranch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	branchID := c.Param("id")

	var req dto.UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBranch", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	branch, err := h.branchService.UpdateBranch(c.Request.Context(), actor, branchID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update branch", slog.String("error", err.Error()), slog.String("branch_id", branchID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update branch"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBranchResponse(branch))
}

// deleteBranch godoc
// @Summary Delete a branch
// @Description Removes a branch. Admin only.
// @Tags branches
// @Produce  json
// @Param   id path string true "Branch id"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse "Requires the ADMIN role"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /branches/{id} [delete]
func (h *branchHandler) deleteBranch(c *gin.Context) {
	branchID := c.Param("id")

	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	if err := h.branchService.DeleteBranch(c.Request.Context(), actor, branchID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		default:
			logger := middleware.GetLoggerFromCtx(c.Request.Context())
			logger.Error("Failed to delete branch", slog.String("error", err.Error()), slog.String("branch_id", branchID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete branch"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
