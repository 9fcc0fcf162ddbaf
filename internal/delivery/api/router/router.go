// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mandoob/internal/delivery/api/middleware"
	"mandoob/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	StatusHandler       *handler.StatusHandler
	DeliveryAppHandler  *handler.DeliveryAppHandler
	NotificationHandler *handler.NotificationHandler
	OrderHandler        *handler.OrderHandler
	CombinationHandler  *handler.CombinationHandler
	DeviceHandler       *handler.DeviceHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	statusHandler       *handler.StatusHandler
	deliveryAppHandler  *handler.DeliveryAppHandler
	notificationHandler *handler.NotificationHandler
	orderHandler        *handler.OrderHandler
	combinationHandler  *handler.CombinationHandler
	deviceHandler       *handler.DeviceHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		statusHandler:       params.StatusHandler,
		deliveryAppHandler:  params.DeliveryAppHandler,
		notificationHandler: params.NotificationHandler,
		orderHandler:        params.OrderHandler,
		combinationHandler:  params.CombinationHandler,
		deviceHandler:       params.DeviceHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/token", r.userHandler.Token)
	}

	apiV1 := e.Group("/api/v1")

	// Public
	apiV1.GET("/status", r.statusHandler.Status)
	apiV1.GET("/delivery-apps", r.deliveryAppHandler.ListDeliveryApps)

	authed := apiV1.Group("", r.authMiddleware.Authenticate)

	authed.GET("/users/me", r.userHandler.Me)

	notificationsGroup := authed.Group("/notifications")
	{
		notificationsGroup.POST("/simulate", r.notificationHandler.SimulateNotification)
		notificationsGroup.GET("", r.notificationHandler.ListNotifications)
	}

	ordersGroup := authed.Group("/orders")
	{
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.POST("", r.orderHandler.CreateOrder)
		ordersGroup.POST("/handoff", r.orderHandler.ConfirmHandoff)
		ordersGroup.PUT("/:id/status", r.orderHandler.UpdateOrderStatus)
		ordersGroup.PUT("/:id/accept", r.orderHandler.AcceptOrder)
		ordersGroup.GET("/:id/qr", r.orderHandler.GetHandoffQR)
	}

	combinationsGroup := authed.Group("/combinations")
	{
		combinationsGroup.GET("", r.combinationHandler.ListCombinations)
		combinationsGroup.POST("/generate", r.combinationHandler.GenerateCombinations)
		combinationsGroup.PUT("/:id/accept", r.combinationHandler.AcceptCombination)
	}

	devicesGroup := authed.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}
