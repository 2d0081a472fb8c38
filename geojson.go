package navgraph

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// EdgesFeatureCollection returns the graph's links as GeoJSON LineStrings for
// visualization. X and Y become the planar coordinates; the heights of both
// endpoints are kept in the "z" property. Bidirectional links are emitted once.
func (g *Graph) EdgesFeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	// Use a set to avoid duplicate edges (since most links are bidirectional)
	seen := make(map[[2]int]bool)

	for i, v := range g.vertices {
		for _, n := range v.Neighbors {
			if n < 0 || n >= len(g.vertices) || n == i {
				continue
			}
			key := [2]int{min(i, n), max(i, n)}
			if seen[key] {
				continue
			}
			seen[key] = true

			a, b := v.Position, g.vertices[n].Position
			f := geojson.NewFeature(orb.LineString{planar(a), planar(b)})
			f.Properties["from"] = i
			f.Properties["to"] = n
			f.Properties["z"] = []float64{a.Z, b.Z}
			fc.Append(f)
		}
	}

	return fc
}

// Feature returns the path as a GeoJSON LineString feature carrying its kind,
// cost, length and per-waypoint heights as properties.
func (p Path) Feature() *geojson.Feature {
	line := make(orb.LineString, 0, len(p.Positions))
	heights := make([]float64, 0, len(p.Positions))
	for _, pos := range p.Positions {
		line = append(line, planar(pos))
		heights = append(heights, pos.Z)
	}

	f := geojson.NewFeature(line)
	f.Properties["kind"] = p.Kind.String()
	f.Properties["cost"] = p.Cost
	f.Properties["length"] = p.Length()
	f.Properties["z"] = heights
	return f
}

func planar(p Vec3) orb.Point {
	return orb.Point{p.X, p.Y}
}
