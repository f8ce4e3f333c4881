package artifacts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/models"
)

const detectionFieldCount = 8

// ParseDetections decodes one detections_<sec>.txt artifact. Each non-empty
// line is object_name,x1,y1,x2,y2,color,proximity,sec. Lines with the wrong
// field count or unparseable numeric fields are skipped and reported as
// warnings; they never abort the file.
func ParseDetections(data []byte, videoName string) ([]models.DetectedObjectRecord, []LineWarning) {
	var records []models.DetectedObjectRecord
	var warnings []LineWarning

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) != detectionFieldCount {
			warnings = append(warnings, LineWarning{
				LineNumber: i + 1,
				Line:       line,
				Reason:     fmt.Sprintf("expected %d fields, got %d", detectionFieldCount, len(parts)),
			})
			continue
		}

		nums, err := parseInts(parts[1], parts[2], parts[3], parts[4], parts[7])
		if err != nil {
			warnings = append(warnings, LineWarning{
				LineNumber: i + 1,
				Line:       line,
				Reason:     err.Error(),
			})
			continue
		}

		records = append(records, models.DetectedObjectRecord{
			ObjectName: parts[0],
			VideoName:  videoName,
			X1:         nums[0],
			Y1:         nums[1],
			X2:         nums[2],
			Y2:         nums[3],
			Color:      parts[5],
			Proximity:  parts[6],
			Sec:        nums[4],
		})
	}

	return records, warnings
}

func parseInts(fields ...string) ([]int, error) {
	out := make([]int, len(fields))
	for i, field := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("non-numeric field %q", field)
		}
		out[i] = n
	}
	return out, nil
}
