package city

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Deedubsy/Snowpiercer-sub004/internal/errors"
)

func TestRunHandle_Lifecycle(t *testing.T) {
	h := newRunHandle()

	assert.False(t, h.Completed())
	select {
	case <-h.Done():
		t.Fatal("done channel closed before completion")
	default:
	}

	want := &GenerateCityOutput{}
	h.complete(want, nil)

	assert.True(t, h.Completed())
	<-h.Done()

	got, err := h.Result()
	assert.NoError(t, err)
	assert.Same(t, want, got)
}

func TestRunHandle_Failure(t *testing.T) {
	h := newRunHandle()
	h.complete(nil, errors.ModuleFailure("wall module failed"))

	got, err := h.Result()
	assert.Nil(t, got)
	assert.True(t, errors.IsModuleFailure(err))
}
