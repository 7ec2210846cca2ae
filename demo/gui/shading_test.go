package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShadingMode(t *testing.T) {
	for _, name := range []string{"phong", "gouraud", "flat"} {
		mode, err := ParseShadingMode(name)
		require.NoError(t, err)
		assert.Equal(t, name, string(mode))
	}

	_, err := ParseShadingMode("toon")
	require.Error(t, err)
}

func TestShadingModeSources(t *testing.T) {
	for _, mode := range []ShadingMode{ShadingPhong, ShadingGouraud, ShadingFlat} {
		vertex, fragment := mode.sources()
		assert.NotEmpty(t, vertex)
		assert.NotEmpty(t, fragment)
		// go-gl wants NUL-terminated sources.
		assert.Equal(t, byte(0), vertex[len(vertex)-1])
		assert.Equal(t, byte(0), fragment[len(fragment)-1])
	}
}
