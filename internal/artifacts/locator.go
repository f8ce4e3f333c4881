// Package artifacts locates and parses the per-video files emitted by the
// vision scanner: collage feature JSON, per-second detection lines and the
// scene analysis document.
package artifacts

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
)

const sceneFileName = "escenario_analysis.json"

var (
	collagePattern   = regexp.MustCompile(`^collage_(\d+)_analysis\.json$`)
	detectionPattern = regexp.MustCompile(`^detections_(\d+)\.txt$`)
)

// TimedFile is an artifact file whose name carries the detection timestamp.
type TimedFile struct {
	Path string
	Sec  int
}

// ArtifactSet is the classified content of one video's artifact directory.
// ScenePath is empty when the scene file is missing.
type ArtifactSet struct {
	VideoName  string
	Collages   []TimedFile
	Detections []TimedFile
	ScenePath  string
}

// Locate enumerates the artifact directory of a video and partitions its
// files by name pattern. Files that match no pattern are ignored.
func Locate(detectionsRoot, videoName string) (*ArtifactSet, error) {
	dir := filepath.Join(detectionsRoot, videoName)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoArtifacts, videoName)
		}
		return nil, fmt.Errorf("reading artifact directory %s: %w", dir, err)
	}

	set := &ArtifactSet{VideoName: videoName}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		full := filepath.Join(dir, name)

		switch {
		case name == sceneFileName:
			set.ScenePath = full
		case collagePattern.MatchString(name):
			set.Collages = append(set.Collages, TimedFile{Path: full, Sec: timestampOf(collagePattern, name)})
		case detectionPattern.MatchString(name):
			set.Detections = append(set.Detections, TimedFile{Path: full, Sec: timestampOf(detectionPattern, name)})
		}
	}

	sortTimed(set.Collages)
	sortTimed(set.Detections)
	return set, nil
}

// ListScannedVideos returns the names of videos with an artifact directory
// under the detections root, creating the root if it does not exist yet.
func ListScannedVideos(detectionsRoot string) ([]string, error) {
	if err := os.MkdirAll(detectionsRoot, 0755); err != nil {
		return nil, fmt.Errorf("creating detections root: %w", err)
	}

	entries, err := os.ReadDir(detectionsRoot)
	if err != nil {
		return nil, fmt.Errorf("reading detections root: %w", err)
	}

	videos := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			videos = append(videos, entry.Name())
		}
	}
	return videos, nil
}

// timestampOf extracts the second encoded in an artifact filename. Producers
// should never emit an unparseable timestamp; if one appears it maps to 0.
func timestampOf(pattern *regexp.Regexp, name string) int {
	m := pattern.FindStringSubmatch(name)
	if len(m) < 2 {
		return 0
	}
	sec, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return sec
}

func sortTimed(files []TimedFile) {
	sort.Slice(files, func(i, j int) bool {
		if files[i].Sec != files[j].Sec {
			return files[i].Sec < files[j].Sec
		}
		return files[i].Path < files[j].Path
	})
}
