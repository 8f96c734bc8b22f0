package scenario

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempScenario(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadValidScenario(t *testing.T) {
	path := writeTempScenario(t, `{
		"obstacles": [[{"x":1,"y":1},{"x":2,"y":1},{"x":2,"y":2},{"x":1,"y":2}]],
		"bounds": {"x_min":0,"x_max":10,"y_min":0,"y_max":10},
		"robot_radius": 0.3,
		"cell_size": 1,
		"grid_resolution": 1,
		"start": {"x":0,"y":0},
		"goal": {"x":9,"y":9},
		"sensor_range": 3
	}`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(s.Obstacles) != 1 {
		t.Errorf("Obstacles len = %d, want 1", len(s.Obstacles))
	}
	if s.CellSize != 1 {
		t.Errorf("CellSize = %v, want 1", s.CellSize)
	}
	if len(s.ObstaclePolygons()) != 1 {
		t.Errorf("ObstaclePolygons() len = %d, want 1", len(s.ObstaclePolygons()))
	}
}

func TestLoadRejectsInvalidBounds(t *testing.T) {
	path := writeTempScenario(t, `{
		"bounds": {"x_min":10,"x_max":0,"y_min":0,"y_max":10},
		"cell_size": 1,
		"grid_resolution": 1,
		"sensor_range": 3
	}`)

	if _, err := Load(path); err == nil {
		t.Error("Load() err = nil, want a validation error for x_max <= x_min")
	}
}

func TestLoadRejectsMissingCellSize(t *testing.T) {
	path := writeTempScenario(t, `{
		"bounds": {"x_min":0,"x_max":10,"y_min":0,"y_max":10},
		"grid_resolution": 1,
		"sensor_range": 3
	}`)

	if _, err := Load(path); err == nil {
		t.Error("Load() err = nil, want a validation error for missing cell_size")
	}
}
