package trellis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RobertWHurst/trellis"
)

func TestMethods(t *testing.T) {
	t.Parallel()

	methods := trellis.Methods()
	assert.Len(t, methods, 20)
	assert.Equal(t, trellis.MethodGet, methods[0])
	assert.Contains(t, methods, trellis.MethodPropfind)

	// The returned slice is a copy.
	methods[0] = "BREW"
	assert.Equal(t, trellis.MethodGet, trellis.Methods()[0])
}

func TestIsKnownMethod(t *testing.T) {
	t.Parallel()

	assert.True(t, trellis.IsKnownMethod("GET"))
	assert.True(t, trellis.IsKnownMethod("MKACTIVITY"))
	assert.False(t, trellis.IsKnownMethod("get"))
	assert.False(t, trellis.IsKnownMethod("BREW"))
}
