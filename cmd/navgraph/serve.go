package main

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/MaastrichtU-BISS/navgraph/internal/config"
	"github.com/MaastrichtU-BISS/navgraph/internal/server"
	"github.com/MaastrichtU-BISS/navgraph/roadmap"
)

func newServeCmd() *cobra.Command {
	var (
		configPath string
		addr       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP route service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			logger := cfg.Log.NewLogger()
			if cfg.Log.SlogLevel() > slog.LevelDebug {
				gin.SetMode(gin.ReleaseMode)
			}

			srv := server.New(cfg, logger)

			var obstacles []roadmap.Obstacle
			if cfg.Roadmap.ObstacleDir != "" {
				loaded, err := roadmap.LoadObstacleDir(cfg.Roadmap.ObstacleDir, logger)
				if err != nil {
					return err
				}
				obstacles = loaded
				srv.SetObstacles(obstacles)
			}

			if cfg.Roadmap.BuildOnStart {
				stats, err := srv.BuildRoadmap(srv.PRMConfig(), obstacles)
				if err != nil {
					return err
				}
				logger.Info("startup roadmap ready", "vertices", stats.Samples, "edges", stats.Edges)
			} else {
				logger.Info("no roadmap built at startup, POST /roadmap to create one")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides the config")
	return cmd
}
