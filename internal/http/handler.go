package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskforperks.com/taskforperks/internal/data_models"
	apperrors "taskforperks.com/taskforperks/internal/errors"
	"taskforperks.com/taskforperks/internal/http/validators"
	"taskforperks.com/taskforperks/internal/services"
)

type Handler struct {
	claimService *services.ClaimService
	taskService  *services.TaskService
}

func NewHandler(claimService *services.ClaimService, taskService *services.TaskService) *Handler {
	return &Handler{
		claimService: claimService,
		taskService:  taskService,
	}
}

func (h *Handler) SubmitClaim(c echo.Context) error {
	taskID := c.Param("id")

	var req dto.SubmitClaimRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.InvalidBody("invalid JSON payload"))
	}

	in, err := validators.ValidateSubmitClaimRequest(&req)
	if err != nil {
		return respondError(c, err)
	}

	claim, err := h.claimService.SubmitClaim(c.Request().Context(), taskID, in)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.SubmitClaimResponse{ClaimID: claim.ID})
}

func (h *Handler) GetTask(c echo.Context) error {
	id := c.Param("id")

	task, pending, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TaskDetailResponse{
		Task:          task,
		PendingClaims: pending,
	})
}

func respondError(c echo.Context, err error) error {
	return c.JSON(apperrors.StatusCode(err), dto.ErrorResponse{
		Code:    apperrors.Code(err),
		Message: err.Error(),
	})
}
