// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fmt"
	"net/http"

	"catalog/config"
	"catalog/internal/delivery/api/middleware"
	"catalog/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// multipartOverhead leaves room for the multipart envelope around an image.
const multipartOverhead = 64 << 10

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	VerificationHandler *handler.VerificationHandler
	ProductHandler      *handler.ProductHandler
	ImageHandler        *handler.ImageHandler
	HealthHandler       *handler.HealthHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	verificationHandler *handler.VerificationHandler
	productHandler      *handler.ProductHandler
	imageHandler        *handler.ImageHandler
	healthHandler       *handler.HealthHandler
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		verificationHandler: params.VerificationHandler,
		productHandler:      params.ProductHandler,
		imageHandler:        params.ImageHandler,
		healthHandler:       params.HealthHandler,
		authMiddleware:      params.AuthMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Liveness probe: every method is routed here so that the wrong ones get 405
	e.Any("/healthz", r.healthHandler.Probe,
		middleware.NoCache,
		middleware.AllowMethods(http.MethodGet),
		middleware.RequireEmptyRequest,
	)

	bodyLimit := echomiddleware.BodyLimit(r.config.HTTP.MaxRequestBodySize)
	imageLimit := echomiddleware.BodyLimit(fmt.Sprintf("%dB", r.config.Storage.MaxImageSize+multipartOverhead))
	auth := r.authMiddleware.Authenticate

	v1 := e.Group("/v1")

	// Public identity routes
	v1.POST("/user", r.userHandler.CreateUser, bodyLimit)
	v1.POST("/user/verification", r.userHandler.ResendVerification, bodyLimit)
	v1.GET("/verify", r.verificationHandler.Verify)

	// Routes acting as the authenticated user
	selfGroup := v1.Group("/user/self", auth)
	{
		selfGroup.GET("", r.userHandler.GetSelf)
		selfGroup.PUT("", r.userHandler.UpdateSelf, bodyLimit)
	}

	productGroup := v1.Group("/product")
	{
		productGroup.GET("/:id", r.productHandler.GetProduct)
		productGroup.GET("/:id/image", r.imageHandler.ListImages)
		productGroup.GET("/:id/image/:image_id", r.imageHandler.GetImage)

		productGroup.POST("", r.productHandler.CreateProduct, bodyLimit, auth)
		productGroup.PUT("/:id", r.productHandler.ReplaceProduct, bodyLimit, auth)
		productGroup.PATCH("/:id", r.productHandler.PatchProduct, bodyLimit, auth)
		productGroup.DELETE("/:id", r.productHandler.DeleteProduct, auth)

		productGroup.POST("/:id/image", r.imageHandler.UploadImage, imageLimit, auth)
		productGroup.DELETE("/:id/image/:image_id", r.imageHandler.DeleteImage, auth)
	}
}
