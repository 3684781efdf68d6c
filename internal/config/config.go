// Package config loads the level service's YAML configuration.
package config

import (
	"os"
	"strings"

	"github.com/lawnchairsociety/openmaze/server/internal/store"
	"gopkg.in/yaml.v3"
)

// ServiceConfig holds service-wide configuration settings.
type ServiceConfig struct {
	Listen    string          `yaml:"listen"`
	WebSocket WebSocketConfig `yaml:"websocket"`
	Generator GeneratorConfig `yaml:"generator"`
	Store     store.Config    `yaml:"store"`
	Admin     AdminConfig     `yaml:"admin"`
}

// WebSocketConfig holds WebSocket feed settings.
type WebSocketConfig struct {
	// AllowedOrigins is a list of origins allowed to connect to the feed.
	// Empty list enforces same-origin policy.
	// Use "*" to allow all origins (not recommended for production).
	AllowedOrigins []string `yaml:"allowed_origins"`

	// MaxMessageSize is the maximum inbound WebSocket message size in bytes.
	MaxMessageSize int64 `yaml:"max_message_size"`
}

// GeneratorConfig holds the defaults used when a generation request leaves
// a field out.
type GeneratorConfig struct {
	// Width and Depth are the default extent in rooms per axis.
	Width int `yaml:"width"`
	Depth int `yaml:"depth"`

	// RoomSide is the world-space side length of one room.
	RoomSide float64 `yaml:"room_side"`

	// WallRadius is the world-space half-thickness of a wall.
	WallRadius float64 `yaml:"wall_radius"`

	// MaxRooms caps the extent a single request may ask for. 0 means unlimited.
	MaxRooms int `yaml:"max_rooms"`
}

// AdminConfig holds administrative access settings.
type AdminConfig struct {
	// TokenHash is the bcrypt hash of the admin bearer token. Empty disables
	// destructive endpoints entirely.
	TokenHash string `yaml:"token_hash"`
}

// DefaultConfig returns a ServiceConfig with secure defaults.
func DefaultConfig() *ServiceConfig {
	return &ServiceConfig{
		Listen: ":8080",
		WebSocket: WebSocketConfig{
			AllowedOrigins: []string{}, // Same-origin only by default
			MaxMessageSize: 4096,
		},
		Generator: GeneratorConfig{
			Width:      10,
			Depth:      10,
			RoomSide:   2.0,
			WallRadius: 0.1,
			MaxRooms:   10000,
		},
		Store: store.DefaultConfig("data/openmaze.db"),
	}
}

// LoadConfig loads service configuration from a YAML file.
// A missing file means defaults; a malformed file is an error.
func LoadConfig(path string) (*ServiceConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), err
	}

	return config, nil
}

// IsOriginAllowed checks if the given origin is allowed based on the config.
// Returns true if:
// - AllowedOrigins contains "*" (allow all)
// - AllowedOrigins contains the exact origin
// - AllowedOrigins is empty and origin matches the request host (same-origin)
func (c *WebSocketConfig) IsOriginAllowed(origin, requestHost string) bool {
	if len(c.AllowedOrigins) == 0 {
		return isSameOrigin(origin, requestHost)
	}

	for _, allowed := range c.AllowedOrigins {
		if allowed == "*" {
			return true
		}
		if allowed == origin {
			return true
		}
	}

	return false
}

// isSameOrigin checks if the origin matches the request host (same-origin policy).
func isSameOrigin(origin, requestHost string) bool {
	if origin == "" {
		return true // No origin header means same-origin (e.g., non-browser client)
	}

	// Extract host from origin URL (e.g., "http://localhost:3000" -> "localhost:3000")
	originHost := origin
	if idx := strings.Index(origin, "://"); idx != -1 {
		originHost = origin[idx+3:]
	}
	originHost = strings.TrimSuffix(originHost, "/")

	return originHost == requestHost
}
