// Package api exposes the backend over HTTP: uploads, scan triggering,
// result listings, queries and alert submission.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/alerts"
	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/database"
	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/ingest"
	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/query"
	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/storage"
)

// VideoScanner runs the external scanning subprocess.
type VideoScanner interface {
	Run() ([]string, error)
}

// Ingestor loads one scanned video's artifacts into the result tables.
type Ingestor interface {
	IngestVideo(ctx context.Context, videoName string) (ingest.Summary, error)
}

// QuerySender forwards a canonical predicate to the query cluster.
type QuerySender interface {
	Send(ctx context.Context, predicate query.Predicate) (json.RawMessage, error)
}

type App struct {
	Storage       storage.Storage
	Scanner       VideoScanner
	Ingestor      Ingestor
	Alerts        *alerts.Service
	Query         QuerySender
	Results       *database.ResultsRepository
	DetectionsDir string
	MaxUploadSize int64
	Logger        *slog.Logger

	mu       sync.Mutex
	uploaded []string
}

// trackUpload remembers an uploaded video; the scan endpoint processes the
// most recent one.
func (app *App) trackUpload(videoName string) {
	app.mu.Lock()
	defer app.mu.Unlock()
	app.uploaded = append(app.uploaded, videoName)
}

func (app *App) lastUpload() (string, bool) {
	app.mu.Lock()
	defer app.mu.Unlock()
	if len(app.uploaded) == 0 {
		return "", false
	}
	return app.uploaded[len(app.uploaded)-1], true
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
