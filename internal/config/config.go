// Package config holds the YAML configuration of the navgraph service.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/MaastrichtU-BISS/navgraph"
)

var validate = validator.New()

// Config is the root of the service configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Roadmap RoadmapConfig `yaml:"roadmap"`
	Search  SearchConfig  `yaml:"search"`
	Log     LogConfig     `yaml:"log"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr string `yaml:"addr" validate:"required"`
	// RateLimit is the sustained requests per second; 0 disables limiting.
	RateLimit float64 `yaml:"rate_limit" validate:"gte=0"`
	Burst     int     `yaml:"burst" validate:"gte=0"`
	// AllowedOrigin is returned in Access-Control-Allow-Origin.
	AllowedOrigin string `yaml:"allowed_origin"`
}

// RoadmapConfig describes the roadmap built at startup.
type RoadmapConfig struct {
	// BuildOnStart builds a roadmap before the server accepts requests.
	BuildOnStart     bool          `yaml:"build_on_start"`
	NumSamples       int           `yaml:"num_samples" validate:"gte=0,lte=100000"`
	ConnectionRadius float64       `yaml:"connection_radius" validate:"gt=0"`
	Seed             uint64        `yaml:"seed"`
	Min              navgraph.Vec3 `yaml:"min"`
	Max              navgraph.Vec3 `yaml:"max"`
	// ObstacleDir is scanned for *.geojson obstacle files.
	ObstacleDir string `yaml:"obstacle_dir"`
	// SimplifyTolerance simplifies obstacle footprints before building. Zero disables it.
	SimplifyTolerance float64 `yaml:"simplify_tolerance" validate:"gte=0"`
}

// SearchConfig sets search defaults.
type SearchConfig struct {
	Algorithm     string `yaml:"algorithm" validate:"oneof=astar bounded"`
	MaxExpansions int    `yaml:"max_expansions" validate:"gte=1"`
	// AttachRadius is how far route endpoints may be from roadmap vertices.
	AttachRadius float64 `yaml:"attach_radius" validate:"gt=0"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// DefaultConfig returns a configuration that passes Validate.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:          ":8080",
			RateLimit:     50,
			Burst:         100,
			AllowedOrigin: "*",
		},
		Roadmap: RoadmapConfig{
			NumSamples:       500,
			ConnectionRadius: 10,
			Seed:             1,
			Min:              navgraph.V3(0, 0, 0),
			Max:              navgraph.V3(100, 100, 0),
		},
		Search: SearchConfig{
			Algorithm:     string(navgraph.AlgorithmAStar),
			MaxExpansions: navgraph.DefaultMaxExpansions,
			AttachRadius:  15,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a YAML file on top of DefaultConfig and validates the result.
// Keys missing from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks field constraints and cross-field rules.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	r := c.Roadmap
	if r.Max.X < r.Min.X || r.Max.Y < r.Min.Y || r.Max.Z < r.Min.Z {
		return errors.New("config: roadmap max must not be below min")
	}
	return nil
}

// SlogLevel maps the configured level to slog.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds a logger writing to stderr with the configured handler.
func (l LogConfig) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.SlogLevel()}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
