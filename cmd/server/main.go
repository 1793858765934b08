package main

import (
	"log"
	"net/http"

	_ "contacthub/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"contacthub/internal/auth"
	"contacthub/internal/cache"
	"contacthub/internal/config"
	"contacthub/internal/handler"
	"contacthub/internal/repository"
	"contacthub/internal/router"
	"contacthub/internal/service"
)

// @title Contact Management API
// @version 1.0
// @description Contact management API with per-user address books and JWT authentication. State is in-memory and lost on restart.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Stores are constructed here and injected; all state dies with the process.
	userRepo := repository.NewUserRepository()
	contactRepo := repository.NewContactRepository()

	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)

	phonePolicy := service.PhonePolicyFromName(cfg.PhonePolicy)
	contactValidator := service.NewContactValidator(phonePolicy)

	authService := service.NewAuthService(userRepo, jwtService)
	contactService := service.NewContactService(contactRepo, contactValidator, cacheClient)

	authHandler := handler.NewAuthHandler(authService)
	contactHandler := handler.NewContactHandler(contactService)

	router.Register(e, cfg, jwtService, authHandler, contactHandler)

	log.Printf("phone validation policy: %s", phonePolicy.Name())
	log.Printf("token TTL: %s", cfg.TokenTTL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
