package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(app *App) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/ping", PingHandler)

	r.Route("/video", func(r chi.Router) {
		r.Post("/upload", app.UploadHandler)
		r.Get("/list-videos-scanned", app.ScannedVideosHandler)
		r.Get("/list-videos-uploaded", app.UploadedVideosHandler)
		r.Post("/scan", app.ScanHandler)
		r.Get("/results/{videoName}", app.ScanResultsHandler)
		r.Post("/make-query", app.MakeQueryHandler)
		r.Post("/alert", app.SubmitAlertHandler)
		r.Get("/alerts", app.PendingAlertsHandler)
	})

	r.Route("/video-results", func(r chi.Router) {
		r.Get("/features", app.FeaturesHandler)
		r.Get("/objects", app.ObjectsHandler)
		r.Get("/scenarios", app.ScenariosHandler)
		r.Get("/objects/{name}", app.ObjectsByNameHandler)
		r.Get("/scenarios/{type}", app.ScenariosByTypeHandler)
	})

	return r
}

func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
