package artifacts

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/models"
)

const sceneJSON = `{
	"scene": {
		"environment_type": "park",
		"description": "open park with paths",
		"features": {
			"weather": "clear",
			"time_of_day": "day",
			"terrain": "grass",
			"crowd_level": "low",
			"lighting": "natural"
		}
	}
}`

func TestParseSceneDirectObject(t *testing.T) {
	record, err := ParseScene([]byte(sceneJSON), "cam_1", "escenario_analysis.json")
	require.NoError(t, err)

	assert.Equal(t, models.ScenarioRecord{
		VideoName:       "cam_1",
		EnvironmentType: "park",
		Description:     "open park with paths",
		Weather:         "clear",
		TimeOfDay:       "day",
		Terrain:         "grass",
		CrowdLevel:      "low",
		Lighting:        "natural",
	}, record)
}

func TestParseSceneStringWrapped(t *testing.T) {
	wrapped, err := json.Marshal(sceneJSON)
	require.NoError(t, err)

	direct, err := ParseScene([]byte(sceneJSON), "cam_1", "escenario_analysis.json")
	require.NoError(t, err)

	unwrapped, err := ParseScene(wrapped, "cam_1", "escenario_analysis.json")
	require.NoError(t, err)

	// Both encodings of the same logical content yield the same record
	assert.Equal(t, direct, unwrapped)
}

func TestParseSceneMissingSceneKey(t *testing.T) {
	record, err := ParseScene([]byte(`{"other": 1}`), "cam_1", "escenario_analysis.json")
	require.NoError(t, err)
	assert.Equal(t, "cam_1", record.VideoName)
	assert.Equal(t, "", record.EnvironmentType)
	assert.Equal(t, "", record.Weather)
}

func TestParseSceneMalformedOuterLayer(t *testing.T) {
	_, err := ParseScene([]byte(`{not json`), "cam_1", "/data/escenario_analysis.json")

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "escenario_analysis.json", parseErr.File)
}

func TestParseSceneMalformedInnerLayer(t *testing.T) {
	wrapped, err := json.Marshal(`{"scene": `)
	require.NoError(t, err)

	_, err = ParseScene(wrapped, "cam_1", "escenario_analysis.json")

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}
