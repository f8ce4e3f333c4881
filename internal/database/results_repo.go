package database

import (
	"context"
	"fmt"

	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/models"
)

// ResultsRepository reads back the rows the ingestion pipeline wrote.
type ResultsRepository struct {
	db *DB
}

func NewResultsRepository(db *DB) *ResultsRepository {
	return &ResultsRepository{db: db}
}

func (r *ResultsRepository) ListObjects(ctx context.Context) ([]models.DetectedObjectRecord, error) {
	query := `SELECT object_name, video_name, x1, y1, x2, y2, color, proximity, sec FROM objects_new`

	rows, err := r.db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list objects: %w", err)
	}
	defer rows.Close()

	objects := []models.DetectedObjectRecord{}
	for rows.Next() {
		var o models.DetectedObjectRecord
		if err := rows.Scan(&o.ObjectName, &o.VideoName, &o.X1, &o.Y1, &o.X2, &o.Y2, &o.Color, &o.Proximity, &o.Sec); err != nil {
			return nil, fmt.Errorf("failed to scan object row: %w", err)
		}
		objects = append(objects, o)
	}
	return objects, rows.Err()
}

func (r *ResultsRepository) ListFeatures(ctx context.Context) ([]models.FeatureRecord, error) {
	query := `SELECT video_name, sec, object_name, description, color1, color2, size, orientation, type FROM features_new`

	rows, err := r.db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list features: %w", err)
	}
	defer rows.Close()

	features := []models.FeatureRecord{}
	for rows.Next() {
		var f models.FeatureRecord
		if err := rows.Scan(&f.VideoName, &f.Sec, &f.ObjectName, &f.Description, &f.Color1, &f.Color2, &f.Size, &f.Orientation, &f.Type); err != nil {
			return nil, fmt.Errorf("failed to scan feature row: %w", err)
		}
		features = append(features, f)
	}
	return features, rows.Err()
}

func (r *ResultsRepository) ListScenarios(ctx context.Context) ([]models.ScenarioRecord, error) {
	query := `SELECT video_name, environment_type, description, weather, time_of_day, terrain, crowd_level, lighting FROM scenarios_new`

	rows, err := r.db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	defer rows.Close()

	scenarios := []models.ScenarioRecord{}
	for rows.Next() {
		var s models.ScenarioRecord
		if err := rows.Scan(&s.VideoName, &s.EnvironmentType, &s.Description, &s.Weather, &s.TimeOfDay, &s.Terrain, &s.CrowdLevel, &s.Lighting); err != nil {
			return nil, fmt.Errorf("failed to scan scenario row: %w", err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, rows.Err()
}

func (r *ResultsRepository) FindObjectsByName(ctx context.Context, name string) ([]models.DetectedObjectRecord, error) {
	query := `SELECT object_name, video_name, x1, y1, x2, y2, color, proximity, sec FROM objects_new WHERE object_name = ` + r.placeholder(1)

	rows, err := r.db.conn.QueryContext(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("failed to find objects by name: %w", err)
	}
	defer rows.Close()

	objects := []models.DetectedObjectRecord{}
	for rows.Next() {
		var o models.DetectedObjectRecord
		if err := rows.Scan(&o.ObjectName, &o.VideoName, &o.X1, &o.Y1, &o.X2, &o.Y2, &o.Color, &o.Proximity, &o.Sec); err != nil {
			return nil, fmt.Errorf("failed to scan object row: %w", err)
		}
		objects = append(objects, o)
	}
	return objects, rows.Err()
}

func (r *ResultsRepository) FindScenariosByType(ctx context.Context, environmentType string) ([]models.ScenarioRecord, error) {
	query := `SELECT video_name, environment_type, description, weather, time_of_day, terrain, crowd_level, lighting FROM scenarios_new WHERE environment_type = ` + r.placeholder(1)

	rows, err := r.db.conn.QueryContext(ctx, query, environmentType)
	if err != nil {
		return nil, fmt.Errorf("failed to find scenarios by type: %w", err)
	}
	defer rows.Close()

	scenarios := []models.ScenarioRecord{}
	for rows.Next() {
		var s models.ScenarioRecord
		if err := rows.Scan(&s.VideoName, &s.EnvironmentType, &s.Description, &s.Weather, &s.TimeOfDay, &s.Terrain, &s.CrowdLevel, &s.Lighting); err != nil {
			return nil, fmt.Errorf("failed to scan scenario row: %w", err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, rows.Err()
}

func (r *ResultsRepository) placeholder(n int) string {
	if r.db.dbType == "postgres" {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}
