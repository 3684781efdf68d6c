package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/lawnchairsociety/openmaze/server/internal/level"
	"github.com/lawnchairsociety/openmaze/server/internal/logger"
	"github.com/lawnchairsociety/openmaze/server/internal/maze"
	"github.com/lawnchairsociety/openmaze/server/internal/store"
)

// generateRequest is the POST /api/levels body. Every field except the name
// may be omitted; omitted fields fall back to the configured generator
// defaults, and an omitted seed is drawn from the clock.
type generateRequest struct {
	Name   string     `json:"name"`
	XRange *rangeJSON `json:"x_range,omitempty"`
	ZRange *rangeJSON `json:"z_range,omitempty"`
	Seed   *int64     `json:"seed,omitempty"`
	Sizes  *sizesJSON `json:"sizes,omitempty"`
}

type rangeJSON struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type sizesJSON struct {
	RoomSide   float64 `json:"room_side"`
	WallRadius float64 `json:"wall_radius"`
}

type roomJSON struct {
	X int `json:"x"`
	Z int `json:"z"`
}

type wallJSON struct {
	X           int    `json:"x"`
	Z           int    `json:"z"`
	Orientation string `json:"orientation"`
	Disposition string `json:"disposition"`
}

type levelJSON struct {
	Name          string     `json:"name"`
	Seed          int64      `json:"seed"`
	XRange        rangeJSON  `json:"x_range"`
	ZRange        rangeJSON  `json:"z_range"`
	Sizes         sizesJSON  `json:"sizes"`
	GeneratedAt   time.Time  `json:"generated_at"`
	RoomCount     int        `json:"room_count"`
	PassageCount  int        `json:"passage_count"`
	SpawnDistance int        `json:"spawn_distance"`
	Start         roomJSON   `json:"start"`
	Goal          roomJSON   `json:"goal"`
	Walls         []wallJSON `json:"walls"`
}

type summaryJSON struct {
	Name          string    `json:"name"`
	Seed          int64     `json:"seed"`
	XRange        rangeJSON `json:"x_range"`
	ZRange        rangeJSON `json:"z_range"`
	SpawnDistance int       `json:"spawn_distance"`
	CreatedAt     time.Time `json:"created_at"`
}

type errorJSON struct {
	Error string `json:"error"`
}

func (s *Server) handleGenerateLevel(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "level name is required")
		return
	}

	gen := s.config.Generator
	xRange := maze.Range{Min: 0, Max: gen.Width}
	if req.XRange != nil {
		xRange = maze.Range{Min: req.XRange.Min, Max: req.XRange.Max}
	}
	zRange := maze.Range{Min: 0, Max: gen.Depth}
	if req.ZRange != nil {
		zRange = maze.Range{Min: req.ZRange.Min, Max: req.ZRange.Max}
	}
	if xRange.Len() <= 0 || zRange.Len() <= 0 {
		writeError(w, http.StatusBadRequest, "extent must span at least one room on each axis")
		return
	}
	if gen.MaxRooms > 0 && xRange.Len()*zRange.Len() > gen.MaxRooms {
		writeError(w, http.StatusBadRequest, "extent exceeds the configured room limit")
		return
	}

	sizes := maze.Sizes{RoomSide: gen.RoomSide, WallRadius: gen.WallRadius}
	if req.Sizes != nil {
		sizes = maze.Sizes{RoomSide: req.Sizes.RoomSide, WallRadius: req.Sizes.WallRadius}
	}
	if sizes.RoomSide <= 0 || sizes.WallRadius <= 0 {
		writeError(w, http.StatusBadRequest, "sizes must be positive")
		return
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	l := level.Build(req.Name, xRange, zRange, seed, sizes)
	if err := s.store.SaveLevel(l); err != nil {
		if errors.Is(err, store.ErrLevelExists) {
			writeError(w, http.StatusConflict, "level name already exists")
			return
		}
		logger.Error("Failed to save level", "name", req.Name, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save level")
		return
	}

	logger.Info("Level generated",
		"name", l.Name, "seed", l.Seed,
		"rooms", l.RoomCount, "spawn_distance", l.SpawnDistance)

	s.broadcastLevel(l)
	writeJSON(w, http.StatusCreated, levelToJSON(l, false))
}

func (s *Server) handleListLevels(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.store.ListLevels()
	if err != nil {
		logger.Error("Failed to list levels", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list levels")
		return
	}

	out := make([]summaryJSON, 0, len(summaries))
	for _, sum := range summaries {
		out = append(out, summaryJSON{
			Name:          sum.Name,
			Seed:          sum.Seed,
			XRange:        rangeJSON{Min: sum.XRange.Min, Max: sum.XRange.Max},
			ZRange:        rangeJSON{Min: sum.ZRange.Min, Max: sum.ZRange.Max},
			SpawnDistance: sum.SpawnDistance,
			CreatedAt:     sum.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetLevel(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	l, err := s.store.GetLevel(name)
	if err != nil {
		if errors.Is(err, store.ErrLevelNotFound) {
			writeError(w, http.StatusNotFound, "level not found")
			return
		}
		logger.Error("Failed to load level", "name", name, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load level")
		return
	}

	presentOnly := r.URL.Query().Get("walls") == "present"
	writeJSON(w, http.StatusOK, levelToJSON(l, presentOnly))
}

func (s *Server) handleDeleteLevel(w http.ResponseWriter, r *http.Request) {
	if status, msg := s.authorize(r); status != http.StatusOK {
		writeError(w, status, msg)
		return
	}

	name := r.PathValue("name")
	if err := s.store.DeleteLevel(name); err != nil {
		if errors.Is(err, store.ErrLevelNotFound) {
			writeError(w, http.StatusNotFound, "level not found")
			return
		}
		logger.Error("Failed to delete level", "name", name, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete level")
		return
	}

	logger.Info("Level deleted", "name", name)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"uptime": time.Since(s.StartTime).String(),
	})
}

// levelToJSON converts a level to its wire form, optionally filtering the
// wall list down to standing walls.
func levelToJSON(l *level.Level, presentOnly bool) levelJSON {
	walls := l.Walls
	if presentOnly {
		walls = l.PresentWalls()
	}

	out := levelJSON{
		Name:          l.Name,
		Seed:          l.Seed,
		XRange:        rangeJSON{Min: l.XRange.Min, Max: l.XRange.Max},
		ZRange:        rangeJSON{Min: l.ZRange.Min, Max: l.ZRange.Max},
		Sizes:         sizesJSON{RoomSide: l.Sizes.RoomSide, WallRadius: l.Sizes.WallRadius},
		GeneratedAt:   l.GeneratedAt,
		RoomCount:     l.RoomCount,
		PassageCount:  l.PassageCount,
		SpawnDistance: l.SpawnDistance,
		Start:         roomJSON{X: l.Spawns.Start.X, Z: l.Spawns.Start.Z},
		Goal:          roomJSON{X: l.Spawns.Goal.X, Z: l.Spawns.Goal.Z},
		Walls:         make([]wallJSON, 0, len(walls)),
	}
	for _, w := range walls {
		out.Walls = append(out.Walls, wallJSON{
			X:           w.X,
			Z:           w.Z,
			Orientation: w.Orientation.String(),
			Disposition: w.Disposition.String(),
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorJSON{Error: msg})
}
