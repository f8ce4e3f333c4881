package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/artifacts"
	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/query"
	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/storage"
)

func (app *App) UploadHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, app.MaxUploadSize)

	if err := r.ParseMultipartForm(app.MaxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "File too large")
		return
	}

	file, header, err := r.FormFile("video")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to get file")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "video/") {
		ext := strings.ToLower(filepath.Ext(header.Filename))
		if ext != ".mp4" {
			respondError(w, http.StatusBadRequest, "Only MP4 video files are allowed")
			return
		}
		contentType = "video/mp4"
	}

	filename, err := app.Storage.SaveFile(file, storage.FileInfo{
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to save file")
		return
	}

	videoName := strings.TrimSuffix(filename, filepath.Ext(filename))
	app.trackUpload(videoName)
	app.Logger.Info("video uploaded", "filename", filename, "video_name", videoName)

	respondJSON(w, http.StatusOK, map[string]string{
		"message":  "File uploaded successfully",
		"filePath": filename,
	})
}

func (app *App) ScannedVideosHandler(w http.ResponseWriter, r *http.Request) {
	videos, err := artifacts.ListScannedVideos(app.DetectionsDir)
	if err != nil {
		app.Logger.Error("listing scanned videos failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Error reading videos")
		return
	}
	respondJSON(w, http.StatusOK, map[string][]string{"videos": videos})
}

func (app *App) UploadedVideosHandler(w http.ResponseWriter, r *http.Request) {
	videos, err := app.Storage.ListFiles(".mp4")
	if err != nil {
		app.Logger.Error("listing uploaded videos failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Error reading uploaded videos")
		return
	}
	respondJSON(w, http.StatusOK, map[string][]string{"videos": videos})
}

// ScanHandler runs the vision scanner over the uploads directory, then
// ingests the most recently uploaded video's artifacts. Rows written before
// an ingestion failure stay committed.
func (app *App) ScanHandler(w http.ResponseWriter, r *http.Request) {
	videoName, ok := app.lastUpload()
	if !ok {
		respondError(w, http.StatusBadRequest, "No video found in queue")
		return
	}

	output, err := app.Scanner.Run()
	if err != nil {
		app.Logger.Error("scan failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Video scan failed")
		return
	}

	summary, err := app.Ingestor.IngestVideo(r.Context(), videoName)
	if err != nil {
		app.Logger.Error("ingestion failed", "video_name", videoName, "error", err)
		if errors.Is(err, artifacts.ErrNoArtifacts) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Video scan completed successfully",
		"summary": summary,
		"results": output,
	})
}

// ScanResultsHandler returns the raw artifacts of one scanned video: the
// parsed scene document and the per-line parsed detection files. It reads the
// artifact directory directly and never touches the database.
func (app *App) ScanResultsHandler(w http.ResponseWriter, r *http.Request) {
	videoName := chi.URLParam(r, "videoName")

	set, err := artifacts.Locate(app.DetectionsDir, videoName)
	if err != nil {
		if errors.Is(err, artifacts.ErrNoArtifacts) {
			respondError(w, http.StatusNotFound, "No results found for the specified video")
			return
		}
		app.Logger.Error("reading results failed", "video_name", videoName, "error", err)
		respondError(w, http.StatusInternalServerError, "Error reading results")
		return
	}

	results, err := app.collectRawResults(set)
	if err != nil {
		app.Logger.Error("reading results failed", "video_name", videoName, "error", err)
		respondError(w, http.StatusInternalServerError, "Error reading results")
		return
	}
	if len(results) == 0 {
		respondError(w, http.StatusNotFound, "No results found for the specified video")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"results": results})
}

func (app *App) MakeQueryHandler(w http.ResponseWriter, r *http.Request) {
	var payload query.FilterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid query payload")
		return
	}

	predicate, err := query.Normalize(payload)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	app.Logger.Info("forwarding query", "type", predicate.Type)
	response, err := app.Query.Send(r.Context(), predicate)
	if err != nil {
		app.Logger.Error("query forwarding failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Error processing query")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(response)
}

func (app *App) SubmitAlertHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Alert string `json:"alert"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.Alert) == "" {
		respondError(w, http.StatusBadRequest, "Alert text is required")
		return
	}

	alert, err := app.Alerts.Submit(r.Context(), strings.TrimSpace(body.Alert))
	if err != nil {
		app.Logger.Error("alert translation failed", "error", err)
		respondError(w, http.StatusBadGateway, "Failed to translate alert")
		return
	}

	respondJSON(w, http.StatusOK, alert)
}

func (app *App) PendingAlertsHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"alerts": app.Alerts.Pending()})
}
