package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gomesdev1/portfolio-api/internal/config"
	"github.com/gomesdev1/portfolio-api/internal/database"
	"github.com/gomesdev1/portfolio-api/internal/handlers"
	apimw "github.com/gomesdev1/portfolio-api/internal/middleware"
	"github.com/gomesdev1/portfolio-api/internal/services"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.MongoURL, cfg.DBName, cfg.MongoConnectTimeout)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	personalInfoService := services.NewPersonalInfoService(db)
	skillService := services.NewSkillService(db)
	educationService := services.NewEducationService(db)
	projectService := services.NewProjectService(db)
	goalService := services.NewGoalService(db)
	learningService := services.NewLearningService(db)
	portfolioService := services.NewPortfolioService(
		personalInfoService,
		skillService,
		educationService,
		projectService,
		goalService,
		learningService,
	)

	healthHandler := handlers.NewHealthHandler(db)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
	personalInfoHandler := handlers.NewPersonalInfoHandler(personalInfoService)
	skillHandler := handlers.NewSkillHandler(skillService)
	educationHandler := handlers.NewEducationHandler(educationService)
	projectHandler := handlers.NewProjectHandler(projectService)
	goalHandler := handlers.NewGoalHandler(goalService)
	learningHandler := handlers.NewLearningHandler(learningService)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(apimw.RequestID())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", apimw.RequestIDHeader},
		MaxAge:       86400,
	}))
	app.Use(apimw.Timeout(cfg.RequestTimeout))
	app.Use(middleware.BodyParser())

	api := app.Group("/api")

	api.Get("/health", healthHandler.Check)
	api.Get("/portfolio", portfolioHandler.Get)

	api.Get("/personal-info", personalInfoHandler.Get)
	api.Put("/personal-info", personalInfoHandler.Update)

	api.Get("/skills", skillHandler.List)
	api.Post("/skills", skillHandler.Create)
	api.Put("/skills/:id", skillHandler.Update)
	api.Delete("/skills/:id", skillHandler.Delete)

	api.Get("/education", educationHandler.List)
	api.Post("/education", educationHandler.Create)
	api.Put("/education/:id", educationHandler.Update)

	api.Get("/projects", projectHandler.List)
	api.Get("/projects/featured", projectHandler.Featured)
	api.Post("/projects", projectHandler.Create)
	api.Put("/projects/:id", projectHandler.Update)

	api.Get("/goals", goalHandler.List)
	api.Post("/goals", goalHandler.Create)
	api.Put("/goals/:id", goalHandler.Update)

	api.Get("/current-learning", learningHandler.List)
	api.Post("/current-learning", learningHandler.Create)
	api.Put("/current-learning/:id", learningHandler.Update)

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Server starting on %s", addr)
		if err := app.Run(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
}
