// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ngopi/internal/delivery/http/middleware"
	"ngopi/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	StatusHandler  *handler.StatusHandler
	CafeHandler    *handler.CafeHandler
	RatingHandler  *handler.RatingHandler
	SessionHandler *handler.SessionHandler
	PhotoHandler   *handler.PhotoHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	statusHandler  *handler.StatusHandler
	cafeHandler    *handler.CafeHandler
	ratingHandler  *handler.RatingHandler
	sessionHandler *handler.SessionHandler
	photoHandler   *handler.PhotoHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		statusHandler:  params.StatusHandler,
		cafeHandler:    params.CafeHandler,
		ratingHandler:  params.RatingHandler,
		sessionHandler: params.SessionHandler,
		photoHandler:   params.PhotoHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/health", r.statusHandler.Health)
	api.GET("/ratelimit", r.statusHandler.RateLimit)

	// Public discovery routes
	cafeGroup := api.Group("/cafes")
	{
		cafeGroup.GET("", r.cafeHandler.ListCafes)
		cafeGroup.GET("/:id", r.cafeHandler.GetCafe)
		cafeGroup.GET("/:id/qr", r.cafeHandler.ShareQR)
		cafeGroup.GET("/:id/ratings", r.ratingHandler.ListRatings)
	}

	// Contribution routes require an anonymous session
	cafeGroup.POST("", r.cafeHandler.CreateCafe, r.authMiddleware.RequireSession)
	cafeGroup.PUT("/:id", r.cafeHandler.UpdateCafe, r.authMiddleware.RequireSession)
	cafeGroup.POST("/:id/ratings", r.ratingHandler.CreateRating, r.authMiddleware.RequireSession)

	// Curator routes require the shared curator key
	cafeGroup.POST("/batch", r.cafeHandler.BatchCreateCafes, r.authMiddleware.RequireCuratorKey)
	cafeGroup.POST("/:id/verify", r.cafeHandler.VerifyCafe, r.authMiddleware.RequireCuratorKey)

	api.POST("/sessions", r.sessionHandler.IssueSession)
	api.POST("/photos", r.photoHandler.UploadPhoto, r.authMiddleware.RequireSession)
}
