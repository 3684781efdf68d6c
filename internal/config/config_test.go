package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Listen != ":8080" {
		t.Errorf("default listen = %q, want %q", cfg.Listen, ":8080")
	}
	if len(cfg.WebSocket.AllowedOrigins) != 0 {
		t.Errorf("default allowed origins = %v, want same-origin only", cfg.WebSocket.AllowedOrigins)
	}
	if cfg.Generator.Width != 10 || cfg.Generator.Depth != 10 {
		t.Errorf("default extent = %dx%d, want 10x10", cfg.Generator.Width, cfg.Generator.Depth)
	}
	if cfg.Store.Driver != "sqlite" {
		t.Errorf("default store driver = %q, want sqlite", cfg.Store.Driver)
	}
	if cfg.Admin.TokenHash != "" {
		t.Error("default admin token hash is set; destructive endpoints should start disabled")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig returned error for missing file: %v", err)
	}
	if cfg.Listen != ":8080" {
		t.Errorf("missing file listen = %q, want default", cfg.Listen)
	}
}

func TestLoadConfigFromYAML(t *testing.T) {
	yaml := `
listen: ":9000"
websocket:
  allowed_origins:
    - "https://editor.example.com"
  max_message_size: 8192
generator:
  width: 20
  depth: 15
  room_side: 3.5
  wall_radius: 0.25
store:
  driver: postgres
  postgres:
    host: db.internal
    database: openmaze
admin:
  token_hash: "$2a$10$abcdefghijklmnopqrstuv"
`
	path := filepath.Join(t.TempDir(), "service.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Listen != ":9000" {
		t.Errorf("listen = %q, want %q", cfg.Listen, ":9000")
	}
	if len(cfg.WebSocket.AllowedOrigins) != 1 || cfg.WebSocket.AllowedOrigins[0] != "https://editor.example.com" {
		t.Errorf("allowed origins = %v", cfg.WebSocket.AllowedOrigins)
	}
	if cfg.WebSocket.MaxMessageSize != 8192 {
		t.Errorf("max message size = %d, want 8192", cfg.WebSocket.MaxMessageSize)
	}
	if cfg.Generator.Width != 20 || cfg.Generator.Depth != 15 {
		t.Errorf("extent = %dx%d, want 20x15", cfg.Generator.Width, cfg.Generator.Depth)
	}
	if cfg.Generator.RoomSide != 3.5 || cfg.Generator.WallRadius != 0.25 {
		t.Errorf("sizes = %v/%v, want 3.5/0.25", cfg.Generator.RoomSide, cfg.Generator.WallRadius)
	}
	if cfg.Store.Driver != "postgres" || cfg.Store.Postgres.Host != "db.internal" {
		t.Errorf("store = %+v", cfg.Store)
	}
	if cfg.Admin.TokenHash == "" {
		t.Error("admin token hash not loaded")
	}
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("listen: [not a string"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err == nil {
		t.Error("LoadConfig accepted malformed YAML")
	}
	if cfg == nil || cfg.Listen != ":8080" {
		t.Error("malformed config did not fall back to defaults")
	}
}

func TestIsOriginAllowed(t *testing.T) {
	tests := []struct {
		name        string
		origins     []string
		origin      string
		requestHost string
		want        bool
	}{
		{"same-origin match", nil, "http://localhost:8080", "localhost:8080", true},
		{"same-origin mismatch", nil, "http://evil.example.com", "localhost:8080", false},
		{"no origin header", nil, "", "localhost:8080", true},
		{"wildcard", []string{"*"}, "http://anywhere.example.com", "localhost:8080", true},
		{"explicit allow", []string{"https://editor.example.com"}, "https://editor.example.com", "localhost:8080", true},
		{"explicit deny", []string{"https://editor.example.com"}, "https://other.example.com", "localhost:8080", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &WebSocketConfig{AllowedOrigins: tt.origins}
			if got := c.IsOriginAllowed(tt.origin, tt.requestHost); got != tt.want {
				t.Errorf("IsOriginAllowed(%q, %q) = %v, want %v", tt.origin, tt.requestHost, got, tt.want)
			}
		})
	}
}
