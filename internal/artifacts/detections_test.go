package artifacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/models"
)

func TestParseDetectionsValidLine(t *testing.T) {
	records, warnings := ParseDetections([]byte("car,10,20,110,220,white,near,5\n"), "cam_1")

	require.Empty(t, warnings)
	require.Len(t, records, 1)
	assert.Equal(t, models.DetectedObjectRecord{
		ObjectName: "car",
		VideoName:  "cam_1",
		X1:         10,
		Y1:         20,
		X2:         110,
		Y2:         220,
		Color:      "white",
		Proximity:  "near",
		Sec:        5,
	}, records[0])
}

func TestParseDetectionsSkipsShortLine(t *testing.T) {
	data := []byte("car,10,20\nperson,1,2,3,4,blue,far,7\n")

	records, warnings := ParseDetections(data, "cam_1")

	require.Len(t, records, 1)
	assert.Equal(t, "person", records[0].ObjectName)

	require.Len(t, warnings, 1)
	assert.Equal(t, 1, warnings[0].LineNumber)
	assert.Contains(t, warnings[0].Reason, "expected 8 fields")
}

func TestParseDetectionsSkipsNonNumericFields(t *testing.T) {
	data := []byte("car,ten,20,110,220,white,near,5\nbike,0,0,50,60,red,middle,9\n")

	records, warnings := ParseDetections(data, "cam_1")

	require.Len(t, records, 1)
	assert.Equal(t, "bike", records[0].ObjectName)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Reason, "non-numeric")
}

func TestParseDetectionsIgnoresBlankLines(t *testing.T) {
	data := []byte("\n\ncar,1,2,3,4,white,near,0\n\n")

	records, warnings := ParseDetections(data, "cam_1")
	assert.Empty(t, warnings)
	assert.Len(t, records, 1)
}

func TestParseDetectionsEmptyFile(t *testing.T) {
	records, warnings := ParseDetections([]byte(""), "cam_1")
	assert.Empty(t, records)
	assert.Empty(t, warnings)
}

func TestParseDetectionsContinuesAfterWarning(t *testing.T) {
	data := []byte("bad,line\nalso,bad\ncar,1,2,3,4,gray,far,3\ntruck,5,6,7,8,blue,near,3\n")

	records, warnings := ParseDetections(data, "cam_1")
	assert.Len(t, warnings, 2)
	require.Len(t, records, 2)
	assert.Equal(t, "car", records[0].ObjectName)
	assert.Equal(t, "truck", records[1].ObjectName)
}
