package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/Deedubsy/Snowpiercer-sub004/internal/entities"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/orchestrators/city"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/pkg/clock"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/pkg/idgen"
)

var (
	worldExtent   float64
	wallSize      float64
	wallThickness float64
	wallHeight    float64
	density       float64
	maxBuildings  int
	seed          int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run one full city generation",
	Long:  `Run the full generation pipeline against the given configuration and print the resulting layout statistics.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().Float64Var(&worldExtent, "world-extent", 1000, "side length of the generated world")
	generateCmd.Flags().Float64Var(&wallSize, "wall-size", 200, "side length of the square city wall")
	generateCmd.Flags().Float64Var(&wallThickness, "wall-thickness", 2, "thickness of the city wall")
	generateCmd.Flags().Float64Var(&wallHeight, "wall-height", 8, "height of the city wall")
	generateCmd.Flags().Float64Var(&density, "density", 0.6, "building density in [0,1]")
	generateCmd.Flags().IntVar(&maxBuildings, "max-buildings", 24, "maximum buildings per district")
	generateCmd.Flags().Int64Var(&seed, "seed", 0, "generation seed (0 derives one from the clock)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg := entities.DefaultConfiguration()
	cfg.WorldExtent = worldExtent
	cfg.WallWidth = wallSize
	cfg.WallDepth = wallSize
	cfg.WallThickness = wallThickness
	cfg.WallHeight = wallHeight
	cfg.BuildingDensity = density
	cfg.MaxBuildingsPerDistrict = maxBuildings
	cfg.Seed = seed

	svc, err := city.NewOrchestrator(&city.Config{
		IDGenerator:   idgen.NewPrefixed("city"),
		Clock:         clock.New(),
		EventBus:      events.NewBus(),
		Configuration: &cfg,
	})
	if err != nil {
		return err
	}

	out, err := svc.GenerateCity(context.Background(), &city.GenerateCityInput{})
	if err != nil {
		return err
	}

	stats := out.Layout.Stats
	slog.Info("city generated",
		"layout_id", out.Layout.ID,
		"valid", out.Layout.IsValid(),
		"total_objects", stats.TotalObjects,
		"terrain_features", stats.TerrainFeatures,
		"wall_segments", stats.WallSegments,
		"streets", stats.Streets,
		"buildings", stats.Buildings,
		"duration", stats.Duration,
	)
	return nil
}
