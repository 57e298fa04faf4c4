package building_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Deedubsy/Snowpiercer-sub004/internal/collision"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/entities"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/generators"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/generators/building"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/pkg/idgen"
)

type GeneratorTestSuite struct {
	suite.Suite
	generator *building.Generator
	genCtx    *generators.Context
	cfg       entities.Configuration
}

func (s *GeneratorTestSuite) SetupTest() {
	s.cfg = entities.DefaultConfiguration()
	s.cfg.Seed = 42

	cm := collision.NewManager()
	s.Require().NoError(cm.Initialize(s.cfg.WorldExtent))

	s.generator = building.New()
	s.genCtx = generators.NewContext(s.cfg, cm, idgen.NewSequential("building"))
}

func (s *GeneratorTestSuite) TestGenerate_DefaultConfiguration() {
	result, err := s.generator.Generate(context.Background(), s.genCtx)

	s.Require().NoError(err)
	s.Require().NotNil(result)

	buildings := s.genCtx.Buildings()
	s.Require().NotNil(buildings)
	s.Equal(4, buildings.Districts)

	required := 4 * int(math.Round(s.cfg.BuildingDensity*float64(s.cfg.MaxBuildingsPerDistrict)))
	s.Equal(required, len(buildings.Buildings)+buildings.Unsatisfied)
	s.LessOrEqual(buildings.Unsatisfied, s.cfg.PlacementFailureTolerance)
	s.Equal(len(buildings.Buildings), s.genCtx.Collision.CountType(collision.ObjectTypeBuilding))
}

func (s *GeneratorTestSuite) TestGenerate_NoOverlaps() {
	_, err := s.generator.Generate(context.Background(), s.genCtx)
	s.Require().NoError(err)

	placed := s.genCtx.Buildings().Buildings
	for i, a := range placed {
		for _, b := range placed[i+1:] {
			dist := a.Position.Distance(b.Position)
			s.GreaterOrEqual(dist, a.Radius+b.Radius, "%s overlaps %s", a.ID, b.ID)
		}
	}
}

func (s *GeneratorTestSuite) TestGenerate_BuildingAttributes() {
	_, err := s.generator.Generate(context.Background(), s.genCtx)
	s.Require().NoError(err)

	for _, b := range s.genCtx.Buildings().Buildings {
		s.GreaterOrEqual(b.Radius, 3.0)
		s.LessOrEqual(b.Radius, 7.0)
		s.GreaterOrEqual(b.Stories, 2)
		s.LessOrEqual(b.Stories, 5)
		s.Contains([]string{
			entities.BuildingKindResidential,
			entities.BuildingKindCommercial,
			entities.BuildingKindCivic,
		}, b.Kind)
		s.GreaterOrEqual(b.District, 0)
		s.Less(b.District, 4)
	}
}

func (s *GeneratorTestSuite) TestGenerate_ZeroDensity() {
	s.cfg.BuildingDensity = 0
	cm := collision.NewManager()
	s.Require().NoError(cm.Initialize(s.cfg.WorldExtent))
	s.genCtx = generators.NewContext(s.cfg, cm, idgen.NewSequential("building"))

	result, err := s.generator.Generate(context.Background(), s.genCtx)

	s.Require().NoError(err)
	s.True(result.IsValid())
	s.Equal(0, result.ObjectCount())
}

func (s *GeneratorTestSuite) TestGenerate_DensityScalesCount() {
	s.cfg.BuildingDensity = 0.25
	cm := collision.NewManager()
	s.Require().NoError(cm.Initialize(s.cfg.WorldExtent))
	sparse := generators.NewContext(s.cfg, cm, idgen.NewSequential("building"))

	_, err := s.generator.Generate(context.Background(), sparse)
	s.Require().NoError(err)

	_, err = s.generator.Generate(context.Background(), s.genCtx)
	s.Require().NoError(err)

	s.Less(len(sparse.Buildings().Buildings), len(s.genCtx.Buildings().Buildings))
}

func (s *GeneratorTestSuite) TestGenerate_Canceled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.generator.Generate(ctx, s.genCtx)

	s.Require().Error(err)
	s.Nil(s.genCtx.Buildings())
}

func (s *GeneratorTestSuite) TestClear_ReleasesFootprints() {
	_, err := s.generator.Generate(context.Background(), s.genCtx)
	s.Require().NoError(err)

	s.Require().NoError(s.generator.Clear(s.genCtx))

	s.Equal(0, s.genCtx.Collision.CountType(collision.ObjectTypeBuilding))
	s.Nil(s.genCtx.Buildings())
}

func TestGeneratorTestSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}
