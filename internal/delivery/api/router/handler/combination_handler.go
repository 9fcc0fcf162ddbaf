package handler

import (
	"log/slog"
	"net/http"

	"mandoob/internal/delivery/api/middleware"
	"mandoob/internal/delivery/api/response"
	"mandoob/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CombinationHandlerParams holds dependencies for CombinationHandler, injected by Fx.
type CombinationHandlerParams struct {
	fx.In

	CombinationUC usecase.CombinationUsecase
	Logger        *slog.Logger
}

// CombinationHandler serves order combination endpoints.
type CombinationHandler struct {
	combinationUC usecase.CombinationUsecase
	logger        *slog.Logger
}

// NewCombinationHandler is the constructor for CombinationHandler.
func NewCombinationHandler(params CombinationHandlerParams) *CombinationHandler {
	return &CombinationHandler{
		combinationUC: params.CombinationUC,
		logger:        params.Logger,
	}
}

// ListCombinations returns the courier's most recent combinations.
func (h *CombinationHandler) ListCombinations(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	combinations, err := h.combinationUC.ListCombinations(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, combinations)
}

// GenerateCombinations pairs the courier's pending orders.
func (h *CombinationHandler) GenerateCombinations(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	combinations, err := h.combinationUC.GenerateCombinations(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, combinations)
}

// AcceptCombination accepts a combination and all of its orders.
func (h *CombinationHandler) AcceptCombination(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	combinationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid combination ID")
	}

	combination, err := h.combinationUC.AcceptCombination(c.Request().Context(), userID, combinationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, combination)
}
