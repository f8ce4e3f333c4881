package artifacts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLocate(t *testing.T) {
	root := t.TempDir()
	videoDir := filepath.Join(root, "cam_plaza")
	require.NoError(t, os.MkdirAll(videoDir, 0755))

	writeArtifact(t, videoDir, "collage_12_analysis.json", "{}")
	writeArtifact(t, videoDir, "collage_3_analysis.json", "{}")
	writeArtifact(t, videoDir, "detections_5.txt", "")
	writeArtifact(t, videoDir, "detections_1.txt", "")
	writeArtifact(t, videoDir, "escenario_analysis.json", "{}")
	writeArtifact(t, videoDir, "notes.md", "ignored")
	require.NoError(t, os.MkdirAll(filepath.Join(videoDir, "frames"), 0755))

	set, err := Locate(root, "cam_plaza")
	require.NoError(t, err)

	require.Len(t, set.Collages, 2)
	assert.Equal(t, 3, set.Collages[0].Sec)
	assert.Equal(t, 12, set.Collages[1].Sec)

	require.Len(t, set.Detections, 2)
	assert.Equal(t, 1, set.Detections[0].Sec)
	assert.Equal(t, 5, set.Detections[1].Sec)

	assert.Equal(t, filepath.Join(videoDir, "escenario_analysis.json"), set.ScenePath)
	assert.Equal(t, "cam_plaza", set.VideoName)
}

func TestLocateMissingDirectory(t *testing.T) {
	root := t.TempDir()

	_, err := Locate(root, "never_scanned")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoArtifacts)
}

func TestLocateNoSceneFile(t *testing.T) {
	root := t.TempDir()
	videoDir := filepath.Join(root, "cam_1")
	require.NoError(t, os.MkdirAll(videoDir, 0755))
	writeArtifact(t, videoDir, "detections_0.txt", "")

	set, err := Locate(root, "cam_1")
	require.NoError(t, err)
	assert.Empty(t, set.ScenePath)
}

func TestLocateIgnoresNonMatchingNames(t *testing.T) {
	root := t.TempDir()
	videoDir := filepath.Join(root, "cam_1")
	require.NoError(t, os.MkdirAll(videoDir, 0755))

	writeArtifact(t, videoDir, "collage_analysis.json", "{}")
	writeArtifact(t, videoDir, "detections_x.txt", "")
	writeArtifact(t, videoDir, "collage_7_analysis.json.bak", "{}")

	set, err := Locate(root, "cam_1")
	require.NoError(t, err)
	assert.Empty(t, set.Collages)
	assert.Empty(t, set.Detections)
}

func TestListScannedVideos(t *testing.T) {
	root := filepath.Join(t.TempDir(), "detections")

	// Root gets created on first listing
	videos, err := ListScannedVideos(root)
	require.NoError(t, err)
	assert.Empty(t, videos)

	require.NoError(t, os.MkdirAll(filepath.Join(root, "cam_a"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "cam_b"), 0755))
	writeArtifact(t, root, "stray.txt", "not a video dir")

	videos, err = ListScannedVideos(root)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"cam_a", "cam_b"}, videos)
}
