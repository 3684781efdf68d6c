package level

import (
	"fmt"
	"os"
	"time"

	"github.com/lawnchairsociety/openmaze/server/internal/maze"
	"gopkg.in/yaml.v3"
)

// LevelData is the serialized level structure for persistence.
type LevelData struct {
	Name          string     `yaml:"name"`
	Seed          int64      `yaml:"seed"`
	XMin          int        `yaml:"x_min"`
	XMax          int        `yaml:"x_max"`
	ZMin          int        `yaml:"z_min"`
	ZMax          int        `yaml:"z_max"`
	RoomSide      float64    `yaml:"room_side"`
	WallRadius    float64    `yaml:"wall_radius"`
	GeneratedAt   time.Time  `yaml:"generated_at"`
	RoomCount     int        `yaml:"room_count"`
	PassageCount  int        `yaml:"passage_count"`
	SpawnDistance int        `yaml:"spawn_distance"`
	Start         RoomData   `yaml:"start"`
	Goal          RoomData   `yaml:"goal"`
	Walls         []WallData `yaml:"walls"`
}

// RoomData is a serialized room coordinate pair.
type RoomData struct {
	X int `yaml:"x"`
	Z int `yaml:"z"`
}

// WallData is a serialized wall.
type WallData struct {
	X           int    `yaml:"x"`
	Z           int    `yaml:"z"`
	Orientation string `yaml:"orientation"`
	Disposition string `yaml:"disposition"`
}

// Save writes the level to a YAML file. Walls keep their list order, so a
// level regenerated from the same seed saves to the same bytes apart from
// the timestamp.
func (l *Level) Save(filename string) error {
	data := serializeLevel(l)

	yamlData, err := yaml.Marshal(&data)
	if err != nil {
		return fmt.Errorf("failed to marshal level data: %w", err)
	}

	if err := os.WriteFile(filename, yamlData, 0644); err != nil {
		return fmt.Errorf("failed to write level file: %w", err)
	}

	return nil
}

// Load reads a level back from a YAML file.
func Load(filename string) (*Level, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file: %w", err)
	}

	var levelData LevelData
	if err := yaml.Unmarshal(data, &levelData); err != nil {
		return nil, fmt.Errorf("failed to parse level YAML: %w", err)
	}

	return deserializeLevel(&levelData)
}

func serializeLevel(l *Level) LevelData {
	data := LevelData{
		Name:          l.Name,
		Seed:          l.Seed,
		XMin:          l.XRange.Min,
		XMax:          l.XRange.Max,
		ZMin:          l.ZRange.Min,
		ZMax:          l.ZRange.Max,
		RoomSide:      l.Sizes.RoomSide,
		WallRadius:    l.Sizes.WallRadius,
		GeneratedAt:   l.GeneratedAt,
		RoomCount:     l.RoomCount,
		PassageCount:  l.PassageCount,
		SpawnDistance: l.SpawnDistance,
		Start:         RoomData{X: l.Spawns.Start.X, Z: l.Spawns.Start.Z},
		Goal:          RoomData{X: l.Spawns.Goal.X, Z: l.Spawns.Goal.Z},
		Walls:         make([]WallData, 0, len(l.Walls)),
	}
	for _, w := range l.Walls {
		data.Walls = append(data.Walls, WallData{
			X:           w.X,
			Z:           w.Z,
			Orientation: w.Orientation.String(),
			Disposition: w.Disposition.String(),
		})
	}
	return data
}

func deserializeLevel(data *LevelData) (*Level, error) {
	l := &Level{
		Name:          data.Name,
		Seed:          data.Seed,
		XRange:        maze.Range{Min: data.XMin, Max: data.XMax},
		ZRange:        maze.Range{Min: data.ZMin, Max: data.ZMax},
		Sizes:         maze.Sizes{RoomSide: data.RoomSide, WallRadius: data.WallRadius},
		GeneratedAt:   data.GeneratedAt,
		RoomCount:     data.RoomCount,
		PassageCount:  data.PassageCount,
		SpawnDistance: data.SpawnDistance,
		Spawns: maze.SpawnPositions{
			Start: maze.Room{X: data.Start.X, Z: data.Start.Z},
			Goal:  maze.Room{X: data.Goal.X, Z: data.Goal.Z},
		},
		Walls: make([]maze.Wall, 0, len(data.Walls)),
	}
	for _, w := range data.Walls {
		orientation, err := parseOrientation(w.Orientation)
		if err != nil {
			return nil, fmt.Errorf("wall at (%d,%d): %w", w.X, w.Z, err)
		}
		disposition, err := parseDisposition(w.Disposition)
		if err != nil {
			return nil, fmt.Errorf("wall at (%d,%d): %w", w.X, w.Z, err)
		}
		l.Walls = append(l.Walls, maze.Wall{
			X:           w.X,
			Z:           w.Z,
			Orientation: orientation,
			Disposition: disposition,
		})
	}
	return l, nil
}

func parseOrientation(s string) (maze.Orientation, error) {
	switch s {
	case "parallel_to_x":
		return maze.ParallelToX, nil
	case "parallel_to_z":
		return maze.ParallelToZ, nil
	}
	return 0, fmt.Errorf("unknown orientation %q", s)
}

func parseDisposition(s string) (maze.Disposition, error) {
	switch s {
	case "present":
		return maze.Present, nil
	case "absent":
		return maze.Absent, nil
	case "unknown":
		return maze.Unknown, nil
	}
	return 0, fmt.Errorf("unknown disposition %q", s)
}
