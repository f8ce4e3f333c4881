package main

import (
	"log"
	"net/http"

	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/alerts"
	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/api"
	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/config"
	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/database"
	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/ingest"
	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/logging"
	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/query"
	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/scanner"
	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	logger := logging.NewLogger(cfg.LogLevel)

	localStorage, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		log.Fatal("Failed to initialize storage:", err)
	}

	db, err := database.NewDB(database.Config{
		Type:       cfg.DB.Type,
		Host:       cfg.DB.Host,
		Port:       cfg.DB.Port,
		User:       cfg.DB.User,
		Password:   cfg.DB.Password,
		Name:       cfg.DB.Name,
		SQLitePath: cfg.DB.SQLitePath,
	})
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	migrator := database.NewMigrator(db.Conn(), db.Type(), logging.WithComponent(logger, "migrator"))
	if err := migrator.Run(cfg.MigrationsPath); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	if cfg.OpenAIAPIKey == "" {
		logger.Warn("OPENAI_API_KEY not set; alert submission will fail until configured")
	}

	translator := alerts.NewTranslator(cfg.OpenAIAPIKey)
	alertService := alerts.NewService(translator, cfg.BackendURL, logging.WithComponent(logger, "alerts"))

	sink := database.NewSQLSink(db)
	coordinator := ingest.NewCoordinator(cfg.DetectionsDir, sink, alertService, logging.WithComponent(logger, "ingest"))

	app := &api.App{
		Storage:       localStorage,
		Scanner:       scanner.NewScanner(cfg.PythonBin, cfg.ScannerScript, cfg.UploadDir, cfg.DetectionsDir, logging.WithComponent(logger, "scanner")),
		Ingestor:      coordinator,
		Alerts:        alertService,
		Query:         query.NewClient(cfg.BackendURL),
		Results:       database.NewResultsRepository(db),
		DetectionsDir: cfg.DetectionsDir,
		MaxUploadSize: cfg.MaxUploadSize,
		Logger:        logging.WithComponent(logger, "api"),
	}

	logger.Info("server starting", "port", cfg.Port, "db_type", db.Type())
	if err := http.ListenAndServe(":"+cfg.Port, api.NewRouter(app)); err != nil {
		log.Fatal("Server failed:", err)
	}
}
