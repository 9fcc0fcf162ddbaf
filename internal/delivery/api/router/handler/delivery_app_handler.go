package handler

import (
	"log/slog"

	"mandoob/internal/delivery/api/response"
	"mandoob/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeliveryAppHandlerParams holds dependencies for DeliveryAppHandler, injected by Fx.
type DeliveryAppHandlerParams struct {
	fx.In

	DeliveryAppUC usecase.DeliveryAppUsecase
	Logger        *slog.Logger
}

// DeliveryAppHandler serves the partner app catalog.
type DeliveryAppHandler struct {
	deliveryAppUC usecase.DeliveryAppUsecase
	logger        *slog.Logger
}

// NewDeliveryAppHandler is the constructor for DeliveryAppHandler.
func NewDeliveryAppHandler(params DeliveryAppHandlerParams) *DeliveryAppHandler {
	return &DeliveryAppHandler{
		deliveryAppUC: params.DeliveryAppUC,
		logger:        params.Logger,
	}
}

// ListDeliveryApps returns all known partner apps.
func (h *DeliveryAppHandler) ListDeliveryApps(c echo.Context) error {
	apps, err := h.deliveryAppUC.ListDeliveryApps(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, apps)
}
