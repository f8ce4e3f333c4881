package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (app *App) FeaturesHandler(w http.ResponseWriter, r *http.Request) {
	features, err := app.Results.ListFeatures(r.Context())
	if err != nil {
		app.Logger.Error("listing features failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Error reading features")
		return
	}
	respondJSON(w, http.StatusOK, features)
}

func (app *App) ObjectsHandler(w http.ResponseWriter, r *http.Request) {
	objects, err := app.Results.ListObjects(r.Context())
	if err != nil {
		app.Logger.Error("listing objects failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Error reading objects")
		return
	}
	respondJSON(w, http.StatusOK, objects)
}

func (app *App) ScenariosHandler(w http.ResponseWriter, r *http.Request) {
	scenarios, err := app.Results.ListScenarios(r.Context())
	if err != nil {
		app.Logger.Error("listing scenarios failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Error reading scenarios")
		return
	}
	respondJSON(w, http.StatusOK, scenarios)
}

func (app *App) ObjectsByNameHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	objects, err := app.Results.FindObjectsByName(r.Context(), name)
	if err != nil {
		app.Logger.Error("finding objects failed", "name", name, "error", err)
		respondError(w, http.StatusInternalServerError, "Error reading objects")
		return
	}
	respondJSON(w, http.StatusOK, objects)
}

func (app *App) ScenariosByTypeHandler(w http.ResponseWriter, r *http.Request) {
	envType := chi.URLParam(r, "type")
	scenarios, err := app.Results.FindScenariosByType(r.Context(), envType)
	if err != nil {
		app.Logger.Error("finding scenarios failed", "type", envType, "error", err)
		respondError(w, http.StatusInternalServerError, "Error reading scenarios")
		return
	}
	respondJSON(w, http.StatusOK, scenarios)
}
