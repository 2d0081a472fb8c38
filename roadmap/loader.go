package roadmap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Feature properties read by ParseObstacles.
const (
	PropMinZ = "min_z"
	PropMaxZ = "max_z"
)

// ParseObstacles converts the Polygon and MultiPolygon features of a GeoJSON
// FeatureCollection into obstacles. Heights come from the min_z/max_z
// properties; missing heights give unbounded columns. Other geometry types
// are skipped.
func ParseObstacles(data []byte) ([]Obstacle, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("roadmap: parse obstacles: %w", err)
	}
	return FeatureObstacles(fc), nil
}

// FeatureObstacles converts an already decoded FeatureCollection.
func FeatureObstacles(fc *geojson.FeatureCollection) []Obstacle {
	var obstacles []Obstacle
	for _, f := range fc.Features {
		minZ := f.Properties.MustFloat64(PropMinZ, 0)
		maxZ := f.Properties.MustFloat64(PropMaxZ, 0)

		switch geom := f.Geometry.(type) {
		case orb.Polygon:
			obstacles = append(obstacles, Obstacle{Footprint: geom, MinZ: minZ, MaxZ: maxZ})
		case orb.MultiPolygon:
			for _, poly := range geom {
				obstacles = append(obstacles, Obstacle{Footprint: poly, MinZ: minZ, MaxZ: maxZ})
			}
		}
	}
	return obstacles
}

// LoadObstacles reads a GeoJSON document from r.
func LoadObstacles(r io.Reader) ([]Obstacle, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("roadmap: read obstacles: %w", err)
	}
	return ParseObstacles(data)
}

// LoadObstacleDir loads every *.geojson file in dir. Files that cannot be
// read or parsed are logged and skipped.
func LoadObstacleDir(dir string, logger *slog.Logger) ([]Obstacle, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.geojson"))
	if err != nil {
		return nil, fmt.Errorf("roadmap: list %s: %w", dir, err)
	}

	logger.Info("loading obstacles", "dir", dir, "files", len(files))

	var all []Obstacle
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			logger.Warn("failed to read obstacle file", "file", file, "error", err)
			continue
		}
		obstacles, err := ParseObstacles(data)
		if err != nil {
			logger.Warn("failed to parse obstacle file", "file", file, "error", err)
			continue
		}
		all = append(all, obstacles...)
		logger.Debug("loaded obstacle file", "file", filepath.Base(file), "obstacles", len(obstacles))
	}

	logger.Info("obstacles loaded", "total", len(all))
	return all, nil
}
