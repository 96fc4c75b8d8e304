package main

import (
	"context"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Sanyaraj24/CrimeReporting/internal/config"
	"github.com/Sanyaraj24/CrimeReporting/internal/controllers"
	"github.com/Sanyaraj24/CrimeReporting/internal/database"
	"github.com/Sanyaraj24/CrimeReporting/internal/models"
	"github.com/Sanyaraj24/CrimeReporting/internal/services"
)

func main() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Connect to the database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.CrimeReport{}, &models.UserProfile{}); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	// Instantiate services
	reportSvc := services.NewReportService(db)
	userSvc := services.NewUserService(db)

	// Create controllers
	reportCtrl := controllers.NewReportController(reportSvc)
	userCtrl := controllers.NewUserController(userSvc)

	// Initialize Echo
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType},
		MaxAge:       600,
	}))

	// Register routes
	api := e.Group("")
	reportCtrl.Register(api)
	userCtrl.Register(api)

	// The stats endpoint runs raw SQL on its own pool; the server
	// still comes up without it if the pool cannot be opened.
	if pool, err := database.NewPool(context.Background(), cfg); err != nil {
		log.Printf("stats pool unavailable, /crime-stats disabled: %v", err)
	} else {
		defer pool.Close()
		controllers.NewStatsController(services.NewStatsService(pool)).Register(api)
	}

	// Run server
	e.Logger.Fatal(e.Start(cfg.HTTPAddr))
}
