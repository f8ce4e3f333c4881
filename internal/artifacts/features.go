package artifacts

import (
	"encoding/json"
	"path/filepath"

	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/models"
)

type collageDocument struct {
	Detections []collageDetection `json:"detections"`
}

type collageDetection struct {
	ObjectName  string            `json:"object_name"`
	Description string            `json:"description"`
	Features    map[string]string `json:"features"`
}

// ParseCollage decodes one collage_<sec>_analysis.json artifact into feature
// records. A document without a detections key yields an empty slice.
//
// The scanner describes persons with a clothing vocabulary
// (upper_clothing_color, lower_clothing_color, posture, age_group) and
// vehicles with a generic one (color1, color2, orientation, type); this is
// the normalization boundary that folds both into one schema.
func ParseCollage(data []byte, videoName string, sec int, file string) ([]models.FeatureRecord, error) {
	var doc collageDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{File: filepath.Base(file), Err: err}
	}

	records := make([]models.FeatureRecord, 0, len(doc.Detections))
	for _, det := range doc.Detections {
		f := det.Features
		records = append(records, models.FeatureRecord{
			VideoName:   videoName,
			Sec:         sec,
			ObjectName:  det.ObjectName,
			Description: det.Description,
			Color1:      firstOf(f, "color1", "upper_clothing_color"),
			Color2:      firstOf(f, "color2", "lower_clothing_color"),
			Size:        firstOf(f, "size"),
			Orientation: firstOf(f, "orientation", "posture"),
			Type:        firstOf(f, "type", "age_group"),
		})
	}
	return records, nil
}

// firstOf returns the first key present in the feature map, or "".
func firstOf(features map[string]string, keys ...string) string {
	for _, key := range keys {
		if v, ok := features[key]; ok {
			return v
		}
	}
	return ""
}
