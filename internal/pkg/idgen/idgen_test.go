package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Deedubsy/Snowpiercer-sub004/internal/pkg/idgen"
)

func TestPrefixedGenerator(t *testing.T) {
	gen := idgen.NewPrefixed("city")

	first := gen.Generate()
	second := gen.Generate()

	assert.True(t, strings.HasPrefix(first, "city_"))
	assert.NotEqual(t, first, second)
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("run")

	assert.Equal(t, "run_1", gen.Generate())
	assert.Equal(t, "run_2", gen.Generate())
}

func TestSequentialGeneratorNoPrefix(t *testing.T) {
	gen := idgen.NewSequential("")

	assert.Equal(t, "1", gen.Generate())
}

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("layout")

	id := gen.Generate()
	assert.True(t, strings.HasPrefix(id, "layout_"))
	assert.NotEqual(t, id, gen.Generate())
}
