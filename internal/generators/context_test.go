package generators_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Deedubsy/Snowpiercer-sub004/internal/collision"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/entities"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/generators"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/pkg/idgen"
)

type blockEntity struct {
	id string
	t  collision.ObjectType
}

func (e *blockEntity) GetID() string {
	return e.id
}

func (e *blockEntity) GetType() string {
	return string(e.t)
}

type ContextTestSuite struct {
	suite.Suite
	genCtx *generators.Context
	cfg    entities.Configuration
}

func (s *ContextTestSuite) SetupTest() {
	s.cfg = entities.DefaultConfiguration()
	s.cfg.Seed = 7

	cm := collision.NewManager()
	s.Require().NoError(cm.Initialize(s.cfg.WorldExtent))

	s.genCtx = generators.NewContext(s.cfg, cm, idgen.NewSequential("test"))
}

func (s *ContextTestSuite) TestRand_StablePerModule() {
	a := s.genCtx.Rand("wall")
	b := s.genCtx.Rand("wall")

	for i := 0; i < 8; i++ {
		s.Equal(a.Int63(), b.Int63())
	}
}

func (s *ContextTestSuite) TestRand_IndependentAcrossModules() {
	a := s.genCtx.Rand("wall")
	b := s.genCtx.Rand("street")

	same := true
	for i := 0; i < 8; i++ {
		if a.Int63() != b.Int63() {
			same = false
		}
	}
	s.False(same)
}

func (s *ContextTestSuite) TestPlaceAt_ValidCandidateUnchanged() {
	candidate := collision.Position{X: 40, Y: -25}

	pos, ok := s.genCtx.PlaceAt(candidate, 5, collision.ObjectTypeBuilding)

	s.True(ok)
	s.Equal(candidate, pos)
}

func (s *ContextTestSuite) TestPlaceAt_BlockedCandidateNudged() {
	blocker := &blockEntity{id: "b1", t: collision.ObjectTypeBuilding}
	origin := collision.Position{X: 40, Y: -25}
	s.Require().NoError(s.genCtx.Collision.RegisterStaticObject(
		blocker, collision.ObjectTypeBuilding, origin, 5))

	pos, ok := s.genCtx.PlaceAt(origin, 5, collision.ObjectTypeBuilding)

	s.True(ok)
	s.NotEqual(origin, pos)
	s.GreaterOrEqual(pos.Distance(origin), 10.0)
}

func (s *ContextTestSuite) TestResultAccessors() {
	s.Nil(s.genCtx.Terrain())
	s.Nil(s.genCtx.Walls())
	s.Nil(s.genCtx.Streets())
	s.Nil(s.genCtx.Buildings())

	terrain := &entities.TerrainResult{Resolution: 4}
	s.genCtx.SetTerrain(terrain)
	s.Same(terrain, s.genCtx.Terrain())

	s.genCtx.SetTerrain(nil)
	s.Nil(s.genCtx.Terrain())
}

func TestContextTestSuite(t *testing.T) {
	suite.Run(t, new(ContextTestSuite))
}
