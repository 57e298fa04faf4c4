package entities_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Deedubsy/Snowpiercer-sub004/internal/entities"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/errors"
)

type ConfigurationTestSuite struct {
	suite.Suite
	cfg entities.Configuration
}

func (s *ConfigurationTestSuite) SetupTest() {
	s.cfg = entities.DefaultConfiguration()
}

func (s *ConfigurationTestSuite) TestDefaultConfiguration_IsValid() {
	s.Require().NoError(s.cfg.Validate())
}

func (s *ConfigurationTestSuite) TestNormalized_ClampsDensity() {
	s.cfg.BuildingDensity = 2.5
	s.Equal(1.0, s.cfg.Normalized().BuildingDensity)

	s.cfg.BuildingDensity = -0.5
	s.Equal(0.0, s.cfg.Normalized().BuildingDensity)
}

func (s *ConfigurationTestSuite) TestNormalized_ClampsCounts() {
	s.cfg.MaxBuildingsPerDistrict = -3
	s.cfg.TerrainFeatureCount = -1
	s.cfg.MinStreetCount = -2
	s.cfg.PlacementAttempts = 0
	s.cfg.PlacementFailureTolerance = -1

	n := s.cfg.Normalized()

	s.Equal(0, n.MaxBuildingsPerDistrict)
	s.Equal(0, n.TerrainFeatureCount)
	s.Equal(0, n.MinStreetCount)
	s.Equal(1, n.PlacementAttempts)
	s.Equal(0, n.PlacementFailureTolerance)
}

func (s *ConfigurationTestSuite) TestNormalized_LeavesValidValues() {
	n := s.cfg.Normalized()
	s.Equal(s.cfg, n)
}

func (s *ConfigurationTestSuite) TestValidate_RejectsNonPositiveDimensions() {
	for _, mutate := range []func(*entities.Configuration){
		func(c *entities.Configuration) { c.WorldExtent = 0 },
		func(c *entities.Configuration) { c.WallThickness = -1 },
		func(c *entities.Configuration) { c.WallHeight = 0 },
		func(c *entities.Configuration) { c.WallWidth = -5 },
		func(c *entities.Configuration) { c.WallDepth = 0 },
		func(c *entities.Configuration) { c.StreetWidth = 0 },
	} {
		cfg := entities.DefaultConfiguration()
		mutate(&cfg)

		err := cfg.Validate()
		s.Require().Error(err)
		s.True(errors.IsConfiguration(err))
	}
}

func (s *ConfigurationTestSuite) TestValidate_RejectsWallLargerThanWorld() {
	s.cfg.WallWidth = s.cfg.WorldExtent

	err := s.cfg.Validate()

	s.Require().Error(err)
	s.True(errors.IsConfiguration(err))
}

func (s *ConfigurationTestSuite) TestValidate_RejectsOutOfRangeDensity() {
	s.cfg.BuildingDensity = 1.2

	err := s.cfg.Validate()

	s.Require().Error(err)
	s.True(errors.IsConfiguration(err))
}

func TestConfigurationTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigurationTestSuite))
}
