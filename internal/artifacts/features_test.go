package artifacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/models"
)

func TestParseCollagePersonVocabulary(t *testing.T) {
	data := []byte(`{
		"detections": [
			{"object_name": "person", "features": {"upper_clothing_color": "red"}}
		]
	}`)

	records, err := ParseCollage(data, "cam_plaza", 12, "collage_12_analysis.json")
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, models.FeatureRecord{
		VideoName:  "cam_plaza",
		Sec:        12,
		ObjectName: "person",
		Color1:     "red",
		Color2:     "",
	}, records[0])
}

func TestParseCollageVehicleVocabulary(t *testing.T) {
	data := []byte(`{
		"detections": [
			{
				"object_name": "car",
				"description": "sedan heading north",
				"features": {
					"color1": "white",
					"color2": "black",
					"size": "large",
					"orientation": "frontal",
					"type": "sedan"
				}
			}
		]
	}`)

	records, err := ParseCollage(data, "cam_1", 4, "collage_4_analysis.json")
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "white", r.Color1)
	assert.Equal(t, "black", r.Color2)
	assert.Equal(t, "large", r.Size)
	assert.Equal(t, "frontal", r.Orientation)
	assert.Equal(t, "sedan", r.Type)
	assert.Equal(t, "sedan heading north", r.Description)
}

func TestParseCollagePrimaryNameWins(t *testing.T) {
	data := []byte(`{
		"detections": [
			{"object_name": "person", "features": {"color1": "green", "upper_clothing_color": "red", "posture": "standing"}}
		]
	}`)

	records, err := ParseCollage(data, "v", 0, "collage_0_analysis.json")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "green", records[0].Color1)
	assert.Equal(t, "standing", records[0].Orientation)
}

func TestParseCollageMissingDetectionsKey(t *testing.T) {
	records, err := ParseCollage([]byte(`{"summary": "nothing here"}`), "v", 9, "collage_9_analysis.json")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseCollageMissingFeatures(t *testing.T) {
	data := []byte(`{"detections": [{"object_name": "dog", "description": "a dog"}]}`)

	records, err := ParseCollage(data, "v", 2, "collage_2_analysis.json")
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "", r.Color1)
	assert.Equal(t, "", r.Color2)
	assert.Equal(t, "", r.Size)
	assert.Equal(t, "", r.Orientation)
	assert.Equal(t, "", r.Type)
}

func TestParseCollageMalformedJSON(t *testing.T) {
	_, err := ParseCollage([]byte(`{"detections": [`), "v", 1, "/tmp/collage_1_analysis.json")

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "collage_1_analysis.json", parseErr.File)
}
