package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"bandbook/internal/artist"
	artist_api "bandbook/internal/artist/api"
	artist_db "bandbook/internal/artist/db"
	"bandbook/internal/config"
	"bandbook/internal/database/migrations"
	"bandbook/internal/logger"
	"bandbook/internal/show"
	show_api "bandbook/internal/show/api"
	show_db "bandbook/internal/show/db"
	"bandbook/internal/venue"
	venue_api "bandbook/internal/venue/api"
	venue_db "bandbook/internal/venue/db"
	"bandbook/internal/view"
)

func connectDatabase(cfg config.DatabaseConfig, log *logger.Logger) *bun.DB {
	var sqldb *sql.DB
	var err error
	maxRetries := 5

	for i := 0; i < maxRetries; i++ {
		log.Info("DATABASE", fmt.Sprintf("Attempting to connect to PostgreSQL (attempt %d/%d)", i+1, maxRetries))
		sqldb, err = sql.Open("postgres", cfg.DSN)
		if err != nil {
			log.Error("DATABASE", fmt.Sprintf("Failed to open PostgreSQL: %v", err))
			time.Sleep(2 * time.Second)
			continue
		}

		err = sqldb.Ping()
		if err == nil {
			break
		}

		log.Error("DATABASE", fmt.Sprintf("Failed to connect to PostgreSQL: %v", err))
		if i < maxRetries-1 {
			time.Sleep(2 * time.Second)
		}
	}
	if err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Failed to connect to PostgreSQL after %d attempts: %v", maxRetries, err))
	}

	sqldb.SetMaxOpenConns(cfg.MaxOpenConns)
	sqldb.SetMaxIdleConns(cfg.MaxIdleConns)
	sqldb.SetConnMaxLifetime(cfg.MaxLifetime)

	log.Info("DATABASE", "PostgreSQL connection successful")
	return bun.NewDB(sqldb, pgdialect.New())
}

func main() {
	log := logger.NewLogger()
	defer log.Close()

	log.Info("APP", "Starting Bandbook initialization")

	if err := godotenv.Load(); err != nil {
		log.Warn("CONFIG", ".env file not found, using environment variables")
	}

	cfg := config.Load()

	bunDB := connectDatabase(cfg.Database, log)
	defer bunDB.Close()

	if cfg.Migrations.AutoMigrate {
		runner := migrations.NewRunner(bunDB, cfg.Migrations.Dir)
		if err := runner.MigrateUp(); err != nil {
			log.Fatal("DATABASE", fmt.Sprintf("Migration failed: %v", err))
		}
		version, err := runner.Version()
		if err != nil {
			log.Warn("DATABASE", fmt.Sprintf("Could not read schema version: %v", err))
		} else {
			log.Info("DATABASE", fmt.Sprintf("Schema at version %d", version))
		}
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatal("VIEW", fmt.Sprintf("Failed to parse templates: %v", err))
	}

	venueService := venue.NewVenueService(&venue_db.DB{Bun: bunDB})
	artistService := artist.NewArtistService(&artist_db.DB{Bun: bunDB})
	showService := show.NewShowService(&show_db.DB{Bun: bunDB})

	venueHandler := venue_api.NewHandler(venueService, renderer, log)
	artistHandler := artist_api.NewHandler(artistService, renderer, log)
	showHandler := show_api.NewHandler(showService, renderer, log)

	log.Info("HTTP", "Setting up router and middleware")
	r := chi.NewRouter()
	r.Use(requestLogger(log))
	r.Use(recoverer(log, renderer))

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		_ = renderer.Render(w, http.StatusOK, "home.html", view.Page{})
	})

	venueHandler.RegisterRoutes(r)
	artistHandler.RegisterRoutes(r)
	showHandler.RegisterRoutes(r)
	log.Info("ROUTER", "Venue, artist and show routes registered")

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		renderer.RenderNotFound(w)
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP", fmt.Sprintf("Bandbook running on %s", cfg.Server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP", fmt.Sprintf("HTTP server error: %v", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	log.Info("APP", "Service started successfully, waiting for shutdown signal")
	<-stop

	log.Info("APP", "Shutdown signal received, initiating graceful shutdown")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Error("HTTP", fmt.Sprintf("Server shutdown failed: %v", err))
	} else {
		log.Info("HTTP", "Bandbook shutdown complete")
	}
}
