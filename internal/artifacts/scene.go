package artifacts

import (
	"encoding/json"
	"path/filepath"

	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/models"
)

type sceneDocument struct {
	Scene sceneBody `json:"scene"`
}

type sceneBody struct {
	EnvironmentType string            `json:"environment_type"`
	Description     string            `json:"description"`
	Features        map[string]string `json:"features"`
}

// ParseScene decodes the escenario_analysis.json artifact. The scanner
// sometimes emits the document double-encoded: a JSON string whose content is
// the real JSON object. The first decode tells the two apart; a string value
// triggers exactly one more decode.
func ParseScene(data []byte, videoName string, file string) (models.ScenarioRecord, error) {
	payload := data

	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return models.ScenarioRecord{}, &ParseError{File: filepath.Base(file), Err: err}
	}
	if inner, ok := probe.(string); ok {
		payload = []byte(inner)
	}

	var doc sceneDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		return models.ScenarioRecord{}, &ParseError{File: filepath.Base(file), Err: err}
	}

	scene := doc.Scene
	f := scene.Features
	return models.ScenarioRecord{
		VideoName:       videoName,
		EnvironmentType: scene.EnvironmentType,
		Description:     scene.Description,
		Weather:         firstOf(f, "weather"),
		TimeOfDay:       firstOf(f, "time_of_day"),
		Terrain:         firstOf(f, "terrain"),
		CrowdLevel:      firstOf(f, "crowd_level"),
		Lighting:        firstOf(f, "lighting"),
	}, nil
}
