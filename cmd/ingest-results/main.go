// ingest-results loads one scanned video's artifacts into the result tables
// without going through the HTTP server. Useful for re-ingesting after a
// partial failure.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/config"
	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/database"
	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/ingest"
	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/logging"
)

func main() {
	var videoName = flag.String("video", "", "Name of the scanned video to ingest")
	flag.Parse()

	if *videoName == "" {
		log.Fatal("Please provide a video name with -video")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}
	logger := logging.NewLogger(cfg.LogLevel)

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

	// No alert executor: a manual re-ingest should not re-fire alerts.
	coordinator := ingest.NewCoordinator(cfg.DetectionsDir, database.NewSQLSink(db), nil, logging.WithComponent(logger, "ingest"))

	summary, err := coordinator.IngestVideo(context.Background(), *videoName)
	if err != nil {
		log.Fatal("Ingestion failed: ", err)
	}

	fmt.Println(summary.String())
}
