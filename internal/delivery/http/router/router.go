// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ecopoint/internal/delivery/http/middleware"
	"ecopoint/internal/delivery/http/router/handler"
	"ecopoint/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	ProfileHandler    *handler.ProfileHandler
	MaterialHandler   *handler.MaterialHandler
	CollectionHandler *handler.CollectionHandler
	RedemptionHandler *handler.RedemptionHandler
	DeviceHandler     *handler.DeviceHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler       *handler.UserHandler
	profileHandler    *handler.ProfileHandler
	materialHandler   *handler.MaterialHandler
	collectionHandler *handler.CollectionHandler
	redemptionHandler *handler.RedemptionHandler
	deviceHandler     *handler.DeviceHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:       params.UserHandler,
		profileHandler:    params.ProfileHandler,
		materialHandler:   params.MaterialHandler,
		collectionHandler: params.CollectionHandler,
		redemptionHandler: params.RedemptionHandler,
		deviceHandler:     params.DeviceHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.Refresh)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// Profile routes for any authenticated account
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("/payout", r.profileHandler.UpdatePayoutSettings)
	}

	// Catalog routes: reads for any authenticated account, writes for admins
	materialGroup := e.Group("/materials")
	materialGroup.Use(r.authMiddleware.Authenticate)
	{
		materialGroup.GET("", r.materialHandler.ListMaterialTypes)
		materialGroup.GET("/:id", r.materialHandler.GetMaterialType)
		materialGroup.GET("/code/:code", r.materialHandler.GetMaterialTypeByCode)
		materialGroup.GET("/:id/label", r.materialHandler.GetMaterialLabel)
		materialGroup.POST("", r.materialHandler.DefineMaterialType,
			r.authMiddleware.RequireRole(entity.RoleAdmin.String()))
	}

	// Collection routes for collectors at a collection point
	collectGroup := e.Group("/collections")
	collectGroup.Use(r.authMiddleware.Authenticate)
	collectGroup.Use(r.authMiddleware.RequireRole(entity.RoleCollector.String()))
	{
		collectGroup.POST("/scan", r.collectionHandler.ProcessScan)
		collectGroup.POST("/weight", r.collectionHandler.ProcessWeight)
		collectGroup.GET("/scale", r.collectionHandler.CurrentScaleReading)
		collectGroup.GET("/history", r.collectionHandler.ListProcessedHistory)
	}

	// Ledger routes for participants
	ledgerGroup := e.Group("/ledger")
	ledgerGroup.Use(r.authMiddleware.Authenticate)
	{
		ledgerGroup.GET("/history", r.collectionHandler.ListMyHistory)
	}

	// Redemption routes
	redemptionGroup := e.Group("/redemptions")
	redemptionGroup.Use(r.authMiddleware.Authenticate)
	{
		redemptionGroup.POST("", r.redemptionHandler.RequestRedemption)
		redemptionGroup.GET("", r.redemptionHandler.ListMyRedemptions)
		redemptionGroup.GET("/:id", r.redemptionHandler.GetRedemption)

		adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin.String())
		redemptionGroup.GET("/pending", r.redemptionHandler.ListPendingRedemptions, adminOnly)
		redemptionGroup.POST("/:id/complete", r.redemptionHandler.CompleteRedemption, adminOnly)
		redemptionGroup.POST("/:id/fail", r.redemptionHandler.FailRedemption, adminOnly)
	}

	// Device routes for push notification targets
	deviceGroup := e.Group("/devices")
	deviceGroup.Use(r.authMiddleware.Authenticate)
	{
		deviceGroup.POST("", r.deviceHandler.RegisterDevice)
		deviceGroup.GET("", r.deviceHandler.GetUserDevices)
		deviceGroup.DELETE("/:deviceID", r.deviceHandler.DeactivateDevice)
	}
}
