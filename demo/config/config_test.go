package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, 1000, s.Window.Width)
	assert.Equal(t, 800, s.Window.Height)
	assert.Equal(t, float32(0.5), s.Sphere.Radius)
	assert.Equal(t, 24, s.Sphere.Sectors)
	assert.Equal(t, 12, s.Sphere.Stacks)
	assert.Equal(t, ShadingPhong, s.Scene.Shading)
	assert.Equal(t, [3]float32{0, 0, 3.5}, s.Light.Center)
	assert.Equal(t, [3]float32{1, 0.5, 0.31}, s.Scene.ObjectColor)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	body := `
[window]
width = 640
height = 480

[sphere]
radius = 1.5
sectors = 48
stacks = 24

[scene]
shading = "gouraud"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 640, s.Window.Width)
	assert.Equal(t, 480, s.Window.Height)
	assert.Equal(t, float32(1.5), s.Sphere.Radius)
	assert.Equal(t, 48, s.Sphere.Sectors)
	assert.Equal(t, 24, s.Sphere.Stacks)
	assert.Equal(t, ShadingGouraud, s.Scene.Shading)
	// Untouched sections keep their defaults.
	assert.Equal(t, [3]float32{0, 0, 3.5}, s.Light.Center)
}

func TestLoadBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("window = {"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestClamp(t *testing.T) {
	s := Default()
	s.Sphere.Radius = -1
	s.Sphere.Sectors = 2
	s.Sphere.Stacks = 1
	s.Scene.Shading = "toon"
	s.Window.Width = 0

	s.Clamp()

	assert.Equal(t, float32(0.5), s.Sphere.Radius)
	assert.Equal(t, 3, s.Sphere.Sectors)
	assert.Equal(t, 2, s.Sphere.Stacks)
	assert.Equal(t, ShadingPhong, s.Scene.Shading)
	assert.Equal(t, 1000, s.Window.Width)
}
