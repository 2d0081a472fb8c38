package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MaastrichtU-BISS/navgraph"
	"github.com/MaastrichtU-BISS/navgraph/roadmap"
)

type routeOptions struct {
	width, height int
	from, to      int
	algorithm     string
	maxExpansions int
	diagonal      bool
	simplify      float64
	geoJSON       bool
}

func newRouteCmd() *cobra.Command {
	opts := routeOptions{}

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Search a route on a generated grid",
		Long: "Builds a width x height grid (vertex (x, y) has index y*width+x) and " +
			"prints the route between two vertex indices.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoute(cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.width, "width", 10, "grid width")
	f.IntVar(&opts.height, "height", 10, "grid height")
	f.IntVar(&opts.from, "from", 0, "start vertex index")
	f.IntVar(&opts.to, "to", -1, "goal vertex index, defaults to the last vertex")
	f.StringVar(&opts.algorithm, "algorithm", string(navgraph.AlgorithmAStar), "search engine: astar or bounded")
	f.IntVar(&opts.maxExpansions, "max-expansions", navgraph.DefaultMaxExpansions, "expansion budget of the bounded engine")
	f.BoolVar(&opts.diagonal, "diagonal", false, "link diagonal neighbors")
	f.Float64Var(&opts.simplify, "simplify", 0, "Douglas-Peucker tolerance, 0 keeps every waypoint")
	f.BoolVar(&opts.geoJSON, "geojson", false, "print the route as a GeoJSON feature")
	return cmd
}

func runRoute(w io.Writer, opts routeOptions) error {
	algorithm := navgraph.Algorithm(opts.algorithm)
	if algorithm != navgraph.AlgorithmAStar && algorithm != navgraph.AlgorithmBounded {
		return fmt.Errorf("unknown algorithm %q", opts.algorithm)
	}

	g := roadmap.Grid(opts.width, opts.height, roadmap.GridOptions{Diagonal: opts.diagonal})
	to := opts.to
	if to < 0 {
		to = g.Len() - 1
	}

	path, err := g.Find(opts.from, to,
		navgraph.WithAlgorithm(algorithm),
		navgraph.WithMaxExpansions(opts.maxExpansions),
	)
	if err != nil {
		return fmt.Errorf("route %d -> %d: %w", opts.from, to, err)
	}
	if opts.simplify > 0 {
		path = path.Simplify(opts.simplify)
	}

	if opts.geoJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(path.Feature())
	}

	fmt.Fprintf(w, "%s route, %d waypoints, length %.3f, cost %.3f\n", path.Kind, path.Len(), path.Length(), path.Cost)
	for i, p := range path.Positions {
		fmt.Fprintf(w, "%4d  (%g, %g, %g)\n", i, p.X, p.Y, p.Z)
	}
	return nil
}
