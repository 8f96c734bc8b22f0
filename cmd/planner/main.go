// Command planner replays a sensor-driven D* Lite session against a
// scenario file from the command line: the robot starts with an empty
// occupancy grid, sweeps a simulated sensor around its position each
// step, and replans whenever the sweep reveals new obstacles, until it
// reaches the goal or the remaining map proves unsolvable.
package main

import (
	"flag"
	"math"

	"go.uber.org/zap"

	"github.com/arclab-robotics/gridsearch/pkg/geometry"
	"github.com/arclab-robotics/gridsearch/pkg/gridworld"
	"github.com/arclab-robotics/gridsearch/pkg/logger"
	"github.com/arclab-robotics/gridsearch/pkg/scenario"
	"github.com/arclab-robotics/gridsearch/pkg/search"
)

var scenarioPath = flag.String("scenario", "scenario.json", "path to a scenario file")

func main() {
	flag.Parse()

	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	sc, err := scenario.Load(*scenarioPath)
	if err != nil {
		log.Fatal("loading scenario", zap.Error(err))
	}

	width := int(math.Ceil((sc.Bounds.XMax-sc.Bounds.XMin)/sc.CellSize)) + 1
	height := int(math.Ceil((sc.Bounds.YMax-sc.Bounds.YMin)/sc.CellSize)) + 1

	// knownGrid mirrors the ground truth: every obstacle in the scenario,
	// visible from the start. freeGrid is what the robot actually plans
	// against, revealed incrementally by simulated sensor sweeps.
	knownGrid := gridworld.NewGrid(width, height, sc.CellSize, sc.GridResolution)
	markObstaclesOnGrid(knownGrid, sc.ObstaclePolygons())

	freeGrid := gridworld.NewGrid(width, height, sc.CellSize, sc.GridResolution)
	freeGraph := gridworld.NewGridGraph(freeGrid, sc.RobotRadius)

	startX, startY := freeGrid.WorldToGrid(sc.StartPoint())
	goalX, goalY := freeGrid.WorldToGrid(sc.GoalPoint())
	startID := startY*freeGrid.Width() + startX
	goalID := goalY*freeGrid.Width() + goalX

	planner, err := search.NewDStarLite(freeGraph, startID, goalID)
	if err != nil {
		log.Fatal("building d* lite planner", zap.Error(err))
	}

	sensorRangeCells := int(math.Ceil(sc.SensorRange * sc.GridResolution / sc.CellSize))
	if sensorRangeCells < 2 {
		sensorRangeCells = 2
	}

	robotID := startID
	log.Info("planner started",
		zap.Int("start", startID), zap.Int("goal", goalID),
		zap.Int("sensor_range_cells", sensorRangeCells))

	sweepAndApply(freeGrid, freeGraph, knownGrid, planner, robotID, sensorRangeCells, log)

	for step := 0; ; step++ {
		result, err := planner.ComputeShortestPath()
		if err != nil {
			log.Fatal("planning failed for current map configuration", zap.Error(err))
		}
		log.Info("replanned", zap.Int("step", step), zap.Int("path_len", len(result.Path)), zap.Float64("cost", result.Cost))

		if len(result.Path) <= 1 || result.Path[len(result.Path)-1] == robotID {
			log.Info("goal reached", zap.Int("steps", step))
			return
		}

		robotID = nextStepTowardGoal(result.Path, robotID)
		if err := planner.UpdateRobotLoc(robotID); err != nil {
			log.Fatal("robot location left the planning grid", zap.Error(err))
		}

		sweepAndApply(freeGrid, freeGraph, knownGrid, planner, robotID, sensorRangeCells, log)
	}
}

// nextStepTowardGoal returns the path vertex adjacent to robotID, one hop
// closer to the goal, mirroring the original loop's dsl_path.pop_back().
func nextStepTowardGoal(path []int, robotID int) int {
	for i, id := range path {
		if id == robotID && i+1 < len(path) {
			return path[i+1]
		}
	}
	if len(path) > 0 {
		return path[len(path)-1]
	}
	return robotID
}

func markObstaclesOnGrid(grid *gridworld.Grid, obstacles []geometry.Polygon) {
	for _, poly := range obstacles {
		if len(poly) == 0 {
			continue
		}
		minX, maxX := poly[0].X, poly[0].X
		minY, maxY := poly[0].Y, poly[0].Y
		for _, p := range poly[1:] {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
		x0, y0 := grid.WorldToGrid(geometry.NewPoint(minX, minY))
		x1, y1 := grid.WorldToGrid(geometry.NewPoint(maxX, maxY))
		for y := min(y0, y1); y <= max(y0, y1); y++ {
			for x := min(x0, x1); x <= max(x0, x1); x++ {
				if !grid.InBounds(x, y) {
					continue
				}
				if geometry.PointInsideConvex(grid.GridToWorld(x, y), poly, 0) {
					grid.SetOccupied(x, y, true)
				}
			}
		}
	}
}

// sweepAndApply simulates a sensor centered on robotID reading every cell
// within rangeCells, folding any newly revealed occupancy into freeGrid
// and pushing the resulting edge-cost changes into planner via MapChange.
func sweepAndApply(freeGrid *gridworld.Grid, freeGraph *gridworld.GridGraph, knownGrid *gridworld.Grid, planner *search.DStarLite, robotID, rangeCells int, log *zap.Logger) {
	robotX, robotY := robotID%freeGrid.Width(), robotID/freeGrid.Width()

	var readings []gridworld.OccupancyUpdate
	for dy := -rangeCells; dy <= rangeCells; dy++ {
		y := robotY + dy
		if y < 0 || y >= freeGrid.Height() {
			continue
		}
		for dx := -rangeCells; dx <= rangeCells; dx++ {
			x := robotX + dx
			if x < 0 || x >= freeGrid.Width() {
				continue
			}
			readings = append(readings, gridworld.OccupancyUpdate{X: x, Y: y, Occupied: knownGrid.Occupied(x, y)})
		}
	}

	changed := freeGrid.Update(readings)
	if len(changed) == 0 {
		return
	}

	log.Info("sensor revealed new occupancy", zap.Int("changed_cells", len(changed)))
	edgeChanges := freeGraph.ApplyOccupancyChanges(changed)
	if len(edgeChanges) > 0 {
		planner.MapChange(edgeChanges)
	}
}
