package wall_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Deedubsy/Snowpiercer-sub004/internal/collision"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/entities"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/generators"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/generators/wall"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/pkg/idgen"
)

type obstruction struct {
	id string
}

func (o *obstruction) GetID() string {
	return o.id
}

func (o *obstruction) GetType() string {
	return string(collision.ObjectTypeBuilding)
}

type GeneratorTestSuite struct {
	suite.Suite
	generator *wall.Generator
	genCtx    *generators.Context
	cfg       entities.Configuration
}

func (s *GeneratorTestSuite) SetupTest() {
	s.cfg = entities.DefaultConfiguration()
	s.cfg.Seed = 42

	cm := collision.NewManager()
	s.Require().NoError(cm.Initialize(s.cfg.WorldExtent))

	s.generator = wall.New()
	s.genCtx = generators.NewContext(s.cfg, cm, idgen.NewSequential("wall"))
}

func (s *GeneratorTestSuite) TestGenerate_ClosesLoop() {
	result, err := s.generator.Generate(context.Background(), s.genCtx)

	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.True(result.IsValid())

	walls := s.genCtx.Walls()
	s.Require().NotNil(walls)
	s.Equal(walls.ExpectedSegments, len(walls.Segments))
	s.Equal(0, walls.Unsatisfied)
	s.Len(walls.Gates, 4)
	s.Equal(len(walls.Segments), s.genCtx.Collision.CountType(collision.ObjectTypeWall))
}

func (s *GeneratorTestSuite) TestGenerate_TowersAtCorners() {
	_, err := s.generator.Generate(context.Background(), s.genCtx)
	s.Require().NoError(err)

	towerR := generators.TowerRadius(s.cfg)
	towers := 0
	for _, seg := range s.genCtx.Walls().Segments {
		if seg.Kind == entities.WallKindTower {
			towers++
			s.Equal(towerR, seg.Radius)
			s.Equal(s.cfg.WallHeight*1.5, seg.Height)
		}
	}
	s.Equal(4, towers)
}

func (s *GeneratorTestSuite) TestGenerate_SegmentsOnWallLine() {
	_, err := s.generator.Generate(context.Background(), s.genCtx)
	s.Require().NoError(err)

	halfW := s.cfg.WallWidth / 2
	halfD := s.cfg.WallDepth / 2
	for _, seg := range s.genCtx.Walls().Segments {
		onX := seg.Position.X == halfW || seg.Position.X == -halfW
		onY := seg.Position.Y == halfD || seg.Position.Y == -halfD
		s.True(onX || onY, "segment %s off the wall rectangle", seg.ID)
	}
}

func (s *GeneratorTestSuite) TestGenerate_GateWindowsStayOpen() {
	_, err := s.generator.Generate(context.Background(), s.genCtx)
	s.Require().NoError(err)

	walls := s.genCtx.Walls()
	for _, gate := range walls.Gates {
		for _, seg := range walls.Segments {
			dist := seg.Position.Distance(gate.Position)
			s.GreaterOrEqual(dist, gate.HalfWidth, "segment %s blocks the %s gate", seg.ID, gate.Side)
		}
	}
}

func (s *GeneratorTestSuite) TestGenerate_ObstructionCountsUnsatisfied() {
	// A building parked on the wall line displaces the segments planned
	// there beyond the acceptable nudge.
	blocker := &obstruction{id: "blocker"}
	pos := collision.Position{X: -s.cfg.WallWidth / 2, Y: s.cfg.WallDepth / 2}
	s.Require().NoError(s.genCtx.Collision.RegisterStaticObject(
		blocker, collision.ObjectTypeBuilding, pos, 10))

	result, err := s.generator.Generate(context.Background(), s.genCtx)

	s.Require().NoError(err)
	s.Positive(s.genCtx.Walls().Unsatisfied)
	s.False(result.IsValid())
}

func (s *GeneratorTestSuite) TestGenerate_Canceled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.generator.Generate(ctx, s.genCtx)

	s.Require().Error(err)
	s.Nil(s.genCtx.Walls())
}

func (s *GeneratorTestSuite) TestClear_ReleasesFootprints() {
	_, err := s.generator.Generate(context.Background(), s.genCtx)
	s.Require().NoError(err)

	s.Require().NoError(s.generator.Clear(s.genCtx))

	s.Equal(0, s.genCtx.Collision.CountType(collision.ObjectTypeWall))
	s.Nil(s.genCtx.Walls())

	result, err := s.generator.Generate(context.Background(), s.genCtx)
	s.Require().NoError(err)
	s.True(result.IsValid())
}

func TestGeneratorTestSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}
