package models

// DetectedObjectRecord is one bounding-box detection at a single second of a
// video, as emitted by the scanner in detections_<sec>.txt lines.
// Coordinates are passed through as produced; x1<=x2 / y1<=y2 is not enforced.
type DetectedObjectRecord struct {
	ObjectName string `json:"object_name"`
	VideoName  string `json:"video_name"`
	X1         int    `json:"x1"`
	Y1         int    `json:"y1"`
	X2         int    `json:"x2"`
	Y2         int    `json:"y2"`
	Color      string `json:"color"`
	Proximity  string `json:"proximity"`
	Sec        int    `json:"sec"`
}

// FeatureRecord is one semantic feature description of a detected entity at a
// timestamp, from a collage_<sec>_analysis.json artifact. The scanner uses a
// clothing vocabulary for persons and a vehicle vocabulary for everything
// else; the parser folds both into these fields.
type FeatureRecord struct {
	VideoName   string `json:"video_name"`
	Sec         int    `json:"sec"`
	ObjectName  string `json:"object_name"`
	Description string `json:"description"`
	Color1      string `json:"color1"`
	Color2      string `json:"color2"`
	Size        string `json:"size"`
	Orientation string `json:"orientation"`
	Type        string `json:"type"`
}

// ScenarioRecord describes the scene of a whole video, from
// escenario_analysis.json. One logical scenario per video per ingestion run.
type ScenarioRecord struct {
	VideoName       string `json:"video_name"`
	EnvironmentType string `json:"environment_type"`
	Description     string `json:"description"`
	Weather         string `json:"weather"`
	TimeOfDay       string `json:"time_of_day"`
	Terrain         string `json:"terrain"`
	CrowdLevel      string `json:"crowd_level"`
	Lighting        string `json:"lighting"`
}
