// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"courier/internal/delivery/http/middleware"
	"courier/internal/delivery/http/router/handler"
	"courier/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	ParcelHandler    *handler.ParcelHandler
	LocationHandler  *handler.LocationHandler
	QRCodeHandler    *handler.QRCodeHandler
	AnalyticsHandler *handler.AnalyticsHandler
	MapsHandler      *handler.MapsHandler
	WSHandler        *handler.WSHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware
	adminOnly := auth.RequireRole(entity.RoleAdmin)
	agentOrAdmin := auth.RequireRole(entity.RoleDeliveryAgent, entity.RoleAdmin)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public tracking: anyone holding a tracking number may follow a parcel.
	e.GET("/parcels/track/:trackingNumber", r.params.ParcelHandler.Track)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.UserHandler.Register)
		authGroup.POST("/login", r.params.UserHandler.Login)
		authGroup.POST("/refresh", r.params.UserHandler.Refresh)
	}

	// User routes. Administration requires the admin role; profile reads
	// only require authentication.
	userGroup := e.Group("/users")
	userGroup.Use(auth.Authenticate)
	{
		userGroup.GET("/me", r.params.UserHandler.Me)
		userGroup.GET("", r.params.UserHandler.List, adminOnly)
		userGroup.GET("/agents", r.params.UserHandler.ListAgents, adminOnly)
		userGroup.GET("/:id", r.params.UserHandler.Get, adminOnly)
		userGroup.PATCH("/:id", r.params.UserHandler.Update, adminOnly)
		userGroup.PATCH("/:id/toggle-active", r.params.UserHandler.ToggleActive, adminOnly)
		userGroup.PATCH("/:id/role", r.params.UserHandler.UpdateRole, adminOnly)
		userGroup.DELETE("/:id", r.params.UserHandler.Delete, adminOnly)
	}

	// Parcel lifecycle routes
	parcelGroup := e.Group("/parcels")
	parcelGroup.Use(auth.Authenticate)
	{
		parcelGroup.POST("", r.params.ParcelHandler.Create,
			auth.RequireRole(entity.RoleCustomer, entity.RoleAdmin))
		parcelGroup.GET("", r.params.ParcelHandler.List, adminOnly)
		parcelGroup.GET("/my", r.params.ParcelHandler.MyBookings)
		parcelGroup.GET("/assigned", r.params.ParcelHandler.Assigned,
			auth.RequireRole(entity.RoleDeliveryAgent))
		parcelGroup.GET("/:id", r.params.ParcelHandler.Get)
		parcelGroup.PATCH("/:id", r.params.ParcelHandler.Update, adminOnly)
		parcelGroup.DELETE("/:id", r.params.ParcelHandler.Delete, adminOnly)
		parcelGroup.POST("/:id/assign", r.params.ParcelHandler.AssignAgent, adminOnly)
		parcelGroup.PATCH("/:id/status", r.params.ParcelHandler.UpdateStatus, agentOrAdmin)
		parcelGroup.PATCH("/:id/location", r.params.ParcelHandler.UpdateLocation,
			auth.RequireRole(entity.RoleDeliveryAgent))

		// Tracking history
		parcelGroup.POST("/:id/locations", r.params.LocationHandler.Add, agentOrAdmin)
		parcelGroup.GET("/:id/locations", r.params.LocationHandler.History)
		parcelGroup.GET("/:id/locations/latest", r.params.LocationHandler.Latest)

		// QR code
		parcelGroup.GET("/:id/qrcode", r.params.QRCodeHandler.Generate)
	}

	// Scan-driven workflows
	qrGroup := e.Group("/qrcode")
	qrGroup.Use(auth.Authenticate)
	{
		qrGroup.POST("/validate", r.params.QRCodeHandler.Validate)
		qrGroup.POST("/confirm-pickup", r.params.QRCodeHandler.ConfirmPickup, agentOrAdmin)
		qrGroup.POST("/confirm-delivery", r.params.QRCodeHandler.ConfirmDelivery, agentOrAdmin)
	}

	// Admin dashboard and reports
	analyticsGroup := e.Group("/analytics")
	analyticsGroup.Use(auth.Authenticate, adminOnly)
	{
		analyticsGroup.GET("/dashboard", r.params.AnalyticsHandler.Dashboard)
		analyticsGroup.GET("/report.csv", r.params.AnalyticsHandler.CSVReport)
		analyticsGroup.GET("/report.pdf", r.params.AnalyticsHandler.PDFReport)
	}

	// Maps provider
	mapsGroup := e.Group("/maps")
	mapsGroup.Use(auth.Authenticate)
	{
		mapsGroup.GET("/geocode", r.params.MapsHandler.Geocode)
		mapsGroup.GET("/reverse-geocode", r.params.MapsHandler.ReverseGeocode)
		mapsGroup.GET("/distance", r.params.MapsHandler.Distance)
		mapsGroup.POST("/optimize-route", r.params.MapsHandler.OptimizeRoute, agentOrAdmin)
	}

	// Realtime: the WebSocket endpoint does its own token handshake because
	// browsers cannot set headers on the dial.
	e.GET("/ws", r.params.WSHandler.Serve)
}
