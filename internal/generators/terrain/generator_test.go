package terrain_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Deedubsy/Snowpiercer-sub004/internal/collision"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/entities"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/generators"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/generators/terrain"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/pkg/idgen"
)

type GeneratorTestSuite struct {
	suite.Suite
	generator *terrain.Generator
	genCtx    *generators.Context
	cfg       entities.Configuration
}

func (s *GeneratorTestSuite) SetupTest() {
	s.cfg = entities.DefaultConfiguration()
	s.cfg.Seed = 42

	cm := collision.NewManager()
	s.Require().NoError(cm.Initialize(s.cfg.WorldExtent))

	s.generator = terrain.New()
	s.genCtx = generators.NewContext(s.cfg, cm, idgen.NewSequential("terrain"))
}

func (s *GeneratorTestSuite) TestGenerate_DefaultConfiguration() {
	result, err := s.generator.Generate(context.Background(), s.genCtx)

	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.True(result.IsValid())
	s.Equal(s.cfg.TerrainFeatureCount, result.ObjectCount())

	stored := s.genCtx.Terrain()
	s.Require().NotNil(stored)
	s.Len(stored.Elevations, stored.Resolution*stored.Resolution)
	s.Equal(0, stored.Unsatisfied)
	s.Equal(s.cfg.TerrainFeatureCount, s.genCtx.Collision.CountType(collision.ObjectTypeTerrain))
}

func (s *GeneratorTestSuite) TestGenerate_FeaturesStayOutsideWallBand() {
	_, err := s.generator.Generate(context.Background(), s.genCtx)
	s.Require().NoError(err)

	clearX := s.cfg.WallWidth/2 + generators.TerrainClearance(s.cfg)
	clearY := s.cfg.WallDepth/2 + generators.TerrainClearance(s.cfg)
	half := s.cfg.WorldExtent / 2

	for _, f := range s.genCtx.Terrain().Features {
		inBand := math.Abs(f.Position.X) < clearX && math.Abs(f.Position.Y) < clearY
		s.False(inBand, "feature %s inside the wall clearance band", f.ID)
		s.LessOrEqual(math.Abs(f.Position.X)+f.Radius, half)
		s.LessOrEqual(math.Abs(f.Position.Y)+f.Radius, half)
		s.GreaterOrEqual(f.Radius, 2.0)
		s.LessOrEqual(f.Radius, generators.MaxTerrainFeatureRadius)
	}
}

func (s *GeneratorTestSuite) TestGenerate_DeterministicForSeed() {
	_, err := s.generator.Generate(context.Background(), s.genCtx)
	s.Require().NoError(err)
	first := s.genCtx.Terrain()

	cm := collision.NewManager()
	s.Require().NoError(cm.Initialize(s.cfg.WorldExtent))
	other := generators.NewContext(s.cfg, cm, idgen.NewSequential("terrain"))
	_, err = s.generator.Generate(context.Background(), other)
	s.Require().NoError(err)
	second := other.Terrain()

	s.Equal(first.Elevations, second.Elevations)
	s.Require().Equal(len(first.Features), len(second.Features))
	for i := range first.Features {
		s.Equal(first.Features[i].Position, second.Features[i].Position)
		s.Equal(first.Features[i].Radius, second.Features[i].Radius)
	}
}

func (s *GeneratorTestSuite) TestGenerate_Canceled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.generator.Generate(ctx, s.genCtx)

	s.Require().Error(err)
	s.Nil(s.genCtx.Terrain())
}

func (s *GeneratorTestSuite) TestClear_ReleasesFootprints() {
	_, err := s.generator.Generate(context.Background(), s.genCtx)
	s.Require().NoError(err)
	s.Require().Positive(s.genCtx.Collision.CountType(collision.ObjectTypeTerrain))

	s.Require().NoError(s.generator.Clear(s.genCtx))

	s.Equal(0, s.genCtx.Collision.CountType(collision.ObjectTypeTerrain))
	s.Nil(s.genCtx.Terrain())

	// A cleared module can run again on the same context.
	result, err := s.generator.Generate(context.Background(), s.genCtx)
	s.Require().NoError(err)
	s.True(result.IsValid())
}

func (s *GeneratorTestSuite) TestGenerate_ZeroFeatures() {
	s.cfg.TerrainFeatureCount = 0
	s.genCtx = generators.NewContext(s.cfg, s.genCtx.Collision, idgen.NewSequential("terrain"))

	result, err := s.generator.Generate(context.Background(), s.genCtx)

	s.Require().NoError(err)
	s.True(result.IsValid())
	s.Equal(0, result.ObjectCount())
}

func TestGeneratorTestSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}
