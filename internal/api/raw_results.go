package api

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/artifacts"
)

// RawResult is one artifact file rendered for the results view.
type RawResult struct {
	Type     string `json:"type"`
	FileName string `json:"fileName"`
	Content  any    `json:"content,omitempty"`
	Error    string `json:"error,omitempty"`
}

// collectRawResults renders the scene document and the detection files of one
// artifact set. A single unreadable artifact becomes an error entry instead
// of failing the whole view.
func (app *App) collectRawResults(set *artifacts.ArtifactSet) ([]RawResult, error) {
	results := []RawResult{}

	if set.ScenePath != "" {
		results = append(results, app.rawScene(set.ScenePath))
	}

	for _, file := range set.Detections {
		data, err := os.ReadFile(file.Path)
		if err != nil {
			return nil, err
		}
		records, warnings := artifacts.ParseDetections(data, set.VideoName)
		for _, warn := range warnings {
			app.Logger.Warn("skipped detection line", "file", filepath.Base(file.Path), "detail", warn.String())
		}
		results = append(results, RawResult{
			Type:     "txt",
			FileName: filepath.Base(file.Path),
			Content:  records,
		})
	}

	return results, nil
}

// rawScene decodes the scene artifact, unwrapping the string-encoded variant,
// and returns the decoded document as-is.
func (app *App) rawScene(scenePath string) RawResult {
	result := RawResult{Type: "json", FileName: filepath.Base(scenePath)}

	data, err := os.ReadFile(scenePath)
	if err != nil {
		result.Error = "Invalid or empty JSON file"
		return result
	}

	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		result.Error = "Invalid or empty JSON file"
		return result
	}
	if inner, ok := probe.(string); ok {
		if err := json.Unmarshal([]byte(inner), &probe); err != nil {
			result.Error = "Invalid or empty JSON file"
			return result
		}
	}

	result.Content = probe
	return result
}
