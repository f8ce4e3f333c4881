// Package ingest loads one video's scan artifacts into the result tables.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/artifacts"
	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/database"
	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/logging"
	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/models"
)

var (
	featureColumns  = []string{"video_name", "sec", "object_name", "description", "color1", "color2", "size", "orientation", "type"}
	objectColumns   = []string{"object_name", "video_name", "x1", "y1", "x2", "y2", "color", "proximity", "sec"}
	scenarioColumns = []string{"video_name", "environment_type", "description", "weather", "time_of_day", "terrain", "crowd_level", "lighting"}
)

// AlertExecutor runs the queued alerts once an ingestion completes.
type AlertExecutor interface {
	Execute(ctx context.Context) error
}

// IngestionError identifies the stage and file where an ingestion run stopped.
// Rows inserted before the failure stay committed; there is no rollback.
type IngestionError struct {
	Stage string // "features", "objects" or "scenario"
	File  string
	Err   error
}

func (e *IngestionError) Error() string {
	return fmt.Sprintf("ingestion failed at %s stage (%s): %v", e.Stage, e.File, e.Err)
}

func (e *IngestionError) Unwrap() error { return e.Err }

// Summary counts what one ingestion run wrote.
type Summary struct {
	VideoName    string `json:"video_name"`
	Features     int    `json:"features"`
	Objects      int    `json:"objects"`
	Scenarios    int    `json:"scenarios"`
	SkippedLines int    `json:"skipped_lines"`
}

func (s Summary) String() string {
	return fmt.Sprintf("video %s: %d features, %d objects, %d scenarios ingested (%d lines skipped)",
		s.VideoName, s.Features, s.Objects, s.Scenarios, s.SkippedLines)
}

// Coordinator drives the three parsers over a video's artifact set and writes
// every record through the sink, one insert at a time.
type Coordinator struct {
	detectionsRoot string
	sink           database.Sink
	alerts         AlertExecutor
	logger         *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewCoordinator(detectionsRoot string, sink database.Sink, alerts AlertExecutor, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		detectionsRoot: detectionsRoot,
		sink:           sink,
		alerts:         alerts,
		logger:         logger,
		locks:          make(map[string]*sync.Mutex),
	}
}

// IngestVideo processes every collage file, then every detection file, then
// the scene file of one video, in timestamp order. The first parse or sink
// failure aborts the run; earlier inserts are not rolled back. Concurrent
// calls for the same video serialize on an advisory per-video lock.
func (c *Coordinator) IngestVideo(ctx context.Context, videoName string) (Summary, error) {
	lock := c.videoLock(videoName)
	lock.Lock()
	defer lock.Unlock()

	summary := Summary{VideoName: videoName}
	log := logging.WithVideo(c.logger, videoName)

	set, err := artifacts.Locate(c.detectionsRoot, videoName)
	if err != nil {
		return summary, err
	}

	for _, file := range set.Collages {
		n, err := c.ingestCollage(ctx, file, videoName)
		if err != nil {
			return summary, err
		}
		summary.Features += n
	}

	for _, file := range set.Detections {
		n, skipped, err := c.ingestDetections(ctx, file, videoName, log)
		if err != nil {
			return summary, err
		}
		summary.Objects += n
		summary.SkippedLines += skipped
	}

	if err := c.ingestScene(ctx, set.ScenePath, videoName); err != nil {
		return summary, err
	}
	summary.Scenarios = 1

	log.Info("ingestion complete", "summary", summary.String())

	if c.alerts != nil {
		if err := c.alerts.Execute(ctx); err != nil {
			// Alert delivery is fire-and-forget; the ingested data is good.
			log.Error("alert execution failed", "error", err)
		}
	}

	return summary, nil
}

func (c *Coordinator) ingestCollage(ctx context.Context, file artifacts.TimedFile, videoName string) (int, error) {
	data, err := os.ReadFile(file.Path)
	if err != nil {
		return 0, &IngestionError{Stage: "features", File: filepath.Base(file.Path), Err: err}
	}

	records, err := artifacts.ParseCollage(data, videoName, file.Sec, file.Path)
	if err != nil {
		return 0, &IngestionError{Stage: "features", File: filepath.Base(file.Path), Err: err}
	}

	for _, rec := range records {
		if err := c.insertFeature(ctx, rec); err != nil {
			return 0, &IngestionError{Stage: "features", File: filepath.Base(file.Path), Err: err}
		}
	}
	return len(records), nil
}

func (c *Coordinator) ingestDetections(ctx context.Context, file artifacts.TimedFile, videoName string, log *slog.Logger) (int, int, error) {
	data, err := os.ReadFile(file.Path)
	if err != nil {
		return 0, 0, &IngestionError{Stage: "objects", File: filepath.Base(file.Path), Err: err}
	}

	records, warnings := artifacts.ParseDetections(data, videoName)
	for _, w := range warnings {
		log.Warn("skipped detection line", "file", filepath.Base(file.Path), "detail", w.String())
	}

	for _, rec := range records {
		if err := c.insertObject(ctx, rec); err != nil {
			return 0, 0, &IngestionError{Stage: "objects", File: filepath.Base(file.Path), Err: err}
		}
	}
	return len(records), len(warnings), nil
}

func (c *Coordinator) ingestScene(ctx context.Context, scenePath, videoName string) error {
	if scenePath == "" {
		return &IngestionError{Stage: "scenario", File: "escenario_analysis.json", Err: os.ErrNotExist}
	}

	data, err := os.ReadFile(scenePath)
	if err != nil {
		return &IngestionError{Stage: "scenario", File: filepath.Base(scenePath), Err: err}
	}

	record, err := artifacts.ParseScene(data, videoName, scenePath)
	if err != nil {
		return &IngestionError{Stage: "scenario", File: filepath.Base(scenePath), Err: err}
	}

	if err := c.insertScenario(ctx, record); err != nil {
		return &IngestionError{Stage: "scenario", File: filepath.Base(scenePath), Err: err}
	}
	return nil
}

func (c *Coordinator) insertFeature(ctx context.Context, f models.FeatureRecord) error {
	return c.sink.Insert(ctx, "features_new", featureColumns, []any{
		f.VideoName, f.Sec, f.ObjectName, f.Description,
		f.Color1, f.Color2, f.Size, f.Orientation, f.Type,
	})
}

func (c *Coordinator) insertObject(ctx context.Context, o models.DetectedObjectRecord) error {
	return c.sink.Insert(ctx, "objects_new", objectColumns, []any{
		o.ObjectName, o.VideoName, o.X1, o.Y1, o.X2, o.Y2,
		o.Color, o.Proximity, o.Sec,
	})
}

func (c *Coordinator) insertScenario(ctx context.Context, s models.ScenarioRecord) error {
	return c.sink.Insert(ctx, "scenarios_new", scenarioColumns, []any{
		s.VideoName, s.EnvironmentType, s.Description, s.Weather,
		s.TimeOfDay, s.Terrain, s.CrowdLevel, s.Lighting,
	})
}

func (c *Coordinator) videoLock(videoName string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()

	lock, ok := c.locks[videoName]
	if !ok {
		lock = &sync.Mutex{}
		c.locks[videoName] = lock
	}
	return lock
}
