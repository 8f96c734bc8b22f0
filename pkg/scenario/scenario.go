// Package scenario loads and validates the grid-planning scenarios
// cmd/planner replays: a set of polygon obstacles, map bounds, a robot
// footprint, grid resolution, a start/goal pair, and a sensor range. The
// field set mirrors the ROS parameter block the original sensor-driven
// D* Lite demo read at startup.
package scenario

import (
	"fmt"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/spf13/viper"

	"github.com/arclab-robotics/gridsearch/pkg/geometry"
)

// Point is the JSON-friendly coordinate pair used in scenario files.
type Point struct {
	X float64 `mapstructure:"x" json:"x"`
	Y float64 `mapstructure:"y" json:"y"`
}

func (p Point) toGeometry() geometry.Point {
	return geometry.NewPoint(p.X, p.Y)
}

// Bounds describes the rectangular extent of the map.
type Bounds struct {
	XMin float64 `mapstructure:"x_min" json:"x_min"`
	XMax float64 `mapstructure:"x_max" json:"x_max" validate:"gtfield=XMin"`
	YMin float64 `mapstructure:"y_min" json:"y_min"`
	YMax float64 `mapstructure:"y_max" json:"y_max" validate:"gtfield=YMin"`
}

// Scenario is the fully validated, ready-to-run description of one
// planning session.
type Scenario struct {
	Obstacles      [][]Point `mapstructure:"obstacles" json:"obstacles"`
	Bounds         Bounds    `mapstructure:"bounds" json:"bounds" validate:"required"`
	RobotRadius    float64   `mapstructure:"robot_radius" json:"robot_radius" validate:"gte=0"`
	CellSize       float64   `mapstructure:"cell_size" json:"cell_size" validate:"gt=0"`
	GridResolution float64   `mapstructure:"grid_resolution" json:"grid_resolution" validate:"gt=0"`
	Start          Point     `mapstructure:"start" json:"start"`
	Goal           Point     `mapstructure:"goal" json:"goal"`
	SensorRange    float64   `mapstructure:"sensor_range" json:"sensor_range" validate:"gt=0"`
}

// StartPoint and GoalPoint return the scenario's start/goal in geometry
// coordinates, for convenience at call sites building a graph.
func (s Scenario) StartPoint() geometry.Point { return s.Start.toGeometry() }
func (s Scenario) GoalPoint() geometry.Point  { return s.Goal.toGeometry() }

// ObstaclePolygons returns the scenario's obstacles as geometry polygons.
func (s Scenario) ObstaclePolygons() []geometry.Polygon {
	polys := make([]geometry.Polygon, len(s.Obstacles))
	for i, verts := range s.Obstacles {
		poly := make(geometry.Polygon, len(verts))
		for j, v := range verts {
			poly[j] = v.toGeometry()
		}
		polys[i] = poly
	}
	return polys
}

var (
	validate *validator.Validate
	trans    ut.Translator
)

func init() {
	validate = validator.New()
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ = uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)
}

// Load reads a scenario file (any format viper supports: JSON, YAML, TOML)
// from path and validates it, translating the first validation failure
// into a readable error message.
func Load(path string) (Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Scenario{}, fmt.Errorf("reading scenario file: %w", err)
	}

	var s Scenario
	if err := v.Unmarshal(&s); err != nil {
		return Scenario{}, fmt.Errorf("decoding scenario file: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			return Scenario{}, fmt.Errorf("invalid scenario: %s", verrs[0].Translate(trans))
		}
		return Scenario{}, fmt.Errorf("invalid scenario: %w", err)
	}

	return s, nil
}
