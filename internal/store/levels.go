package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lawnchairsociety/openmaze/server/internal/level"
	"github.com/lawnchairsociety/openmaze/server/internal/maze"
)

var (
	// ErrLevelExists is returned when saving a level whose name is taken.
	ErrLevelExists = errors.New("level name already exists")

	// ErrLevelNotFound is returned when looking up a level that isn't stored.
	ErrLevelNotFound = errors.New("level not found")
)

// LevelSummary is the metadata row for a stored level, without the walls.
type LevelSummary struct {
	Name          string
	Seed          int64
	XRange        maze.Range
	ZRange        maze.Range
	SpawnDistance int
	CreatedAt     time.Time
}

// wallRecord is the compact JSON form a wall takes in the walls column.
type wallRecord struct {
	X int `json:"x"`
	Z int `json:"z"`
	O int `json:"o"`
	D int `json:"d"`
}

// SaveLevel stores a generated level. Names are unique (case-insensitive);
// a taken name returns ErrLevelExists.
func (s *Store) SaveLevel(l *level.Level) error {
	records := make([]wallRecord, 0, len(l.Walls))
	for _, w := range l.Walls {
		records = append(records, wallRecord{X: w.X, Z: w.Z, O: int(w.Orientation), D: int(w.Disposition)})
	}
	walls, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode walls: %w", err)
	}

	query := s.qb.Build(`INSERT INTO levels
		(name, seed, x_min, x_max, z_min, z_max, room_side, wall_radius,
		 start_x, start_z, goal_x, goal_z, spawn_distance, walls, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	_, err = s.db.Exec(query,
		l.Name, l.Seed,
		l.XRange.Min, l.XRange.Max, l.ZRange.Min, l.ZRange.Max,
		l.Sizes.RoomSide, l.Sizes.WallRadius,
		l.Spawns.Start.X, l.Spawns.Start.Z, l.Spawns.Goal.X, l.Spawns.Goal.Z,
		l.SpawnDistance, string(walls), l.GeneratedAt)
	if err != nil {
		if s.dialect.IsDuplicateKeyError(err) {
			return ErrLevelExists
		}
		return fmt.Errorf("failed to save level: %w", err)
	}

	return nil
}

// GetLevel loads a stored level by name, walls included.
func (s *Store) GetLevel(name string) (*level.Level, error) {
	query := s.qb.Build(`SELECT name, seed, x_min, x_max, z_min, z_max,
		room_side, wall_radius, start_x, start_z, goal_x, goal_z,
		spawn_distance, walls, created_at
		FROM levels WHERE name = ?`)

	l := &level.Level{}
	var walls string
	err := s.db.QueryRow(query, name).Scan(
		&l.Name, &l.Seed,
		&l.XRange.Min, &l.XRange.Max, &l.ZRange.Min, &l.ZRange.Max,
		&l.Sizes.RoomSide, &l.Sizes.WallRadius,
		&l.Spawns.Start.X, &l.Spawns.Start.Z, &l.Spawns.Goal.X, &l.Spawns.Goal.Z,
		&l.SpawnDistance, &walls, &l.GeneratedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLevelNotFound
		}
		return nil, fmt.Errorf("failed to load level: %w", err)
	}

	var records []wallRecord
	if err := json.Unmarshal([]byte(walls), &records); err != nil {
		return nil, fmt.Errorf("failed to decode walls for level %q: %w", name, err)
	}
	l.Walls = make([]maze.Wall, 0, len(records))
	for _, r := range records {
		l.Walls = append(l.Walls, maze.Wall{
			X:           r.X,
			Z:           r.Z,
			Orientation: maze.Orientation(r.O),
			Disposition: maze.Disposition(r.D),
		})
	}

	l.RoomCount = l.XRange.Len() * l.ZRange.Len()
	l.PassageCount = l.RoomCount - 1
	l.GeneratedAt = l.GeneratedAt.UTC()

	return l, nil
}

// ListLevels returns summaries of all stored levels, newest first.
func (s *Store) ListLevels() ([]LevelSummary, error) {
	query := `SELECT name, seed, x_min, x_max, z_min, z_max, spawn_distance, created_at
		FROM levels ORDER BY created_at DESC, name`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list levels: %w", err)
	}
	defer rows.Close()

	var summaries []LevelSummary
	for rows.Next() {
		var sum LevelSummary
		if err := rows.Scan(&sum.Name, &sum.Seed,
			&sum.XRange.Min, &sum.XRange.Max, &sum.ZRange.Min, &sum.ZRange.Max,
			&sum.SpawnDistance, &sum.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan level summary: %w", err)
		}
		sum.CreatedAt = sum.CreatedAt.UTC()
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}

// DeleteLevel removes a stored level by name.
func (s *Store) DeleteLevel(name string) error {
	query := s.qb.Build(`DELETE FROM levels WHERE name = ?`)

	result, err := s.db.Exec(query, name)
	if err != nil {
		return fmt.Errorf("failed to delete level: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrLevelNotFound
	}
	return nil
}
