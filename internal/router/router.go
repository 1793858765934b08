package router

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"contacthub/internal/auth"
	"contacthub/internal/config"
	"contacthub/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	contactHandler *handler.ContactHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "OK",
			"message":   "Contact Management API is running",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Public routes
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)

	// Secured routes (require a valid bearer token)
	secured := api.Group("", auth.Middleware(jwtService))

	secured.GET("/auth/verify", authHandler.Verify)

	secured.GET("/contacts", contactHandler.List)
	secured.GET("/contacts/stats", contactHandler.Stats)
	secured.GET("/contacts/:id", contactHandler.Get)
	secured.POST("/contacts", contactHandler.Create)
	secured.PUT("/contacts/:id", contactHandler.Update)
	secured.DELETE("/contacts/:id", contactHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
