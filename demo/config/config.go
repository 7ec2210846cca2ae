// Package config holds the demo settings, loaded from an optional TOML
// file with sane defaults matching the classic tutorial scene.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Shading mode names accepted in [scene].
const (
	ShadingPhong   = "phong"
	ShadingGouraud = "gouraud"
	ShadingFlat    = "flat"
)

type Settings struct {
	Window WindowSettings `toml:"window"`
	Sphere SphereSettings `toml:"sphere"`
	Light  LightSettings  `toml:"light"`
	Scene  SceneSettings  `toml:"scene"`
	Log    LogSettings    `toml:"log"`
}

type WindowSettings struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type SphereSettings struct {
	Radius  float32 `toml:"radius"`
	Sectors int     `toml:"sectors"`
	Stacks  int     `toml:"stacks"`
}

type LightSettings struct {
	Center      [3]float32 `toml:"center"`
	OrbitRadius float32    `toml:"orbit_radius"`
	Speed       float32    `toml:"speed"`
	Color       [3]float32 `toml:"color"`
}

type SceneSettings struct {
	Shading     string     `toml:"shading"`
	ObjectColor [3]float32 `toml:"object_color"`
	CameraPos   [3]float32 `toml:"camera_pos"`
}

type LogSettings struct {
	File  string `toml:"file"`
	Debug bool   `toml:"debug"`
}

// Default returns the tutorial scene: half-unit sphere at the origin,
// a white-ish light orbiting in front of it, camera three units back.
func Default() *Settings {
	return &Settings{
		Window: WindowSettings{
			Width:  1000,
			Height: 800,
			Title:  "spherelight",
		},
		Sphere: SphereSettings{
			Radius:  0.5,
			Sectors: 24,
			Stacks:  12,
		},
		Light: LightSettings{
			Center:      [3]float32{0, 0, 3.5},
			OrbitRadius: 2,
			Speed:       1,
			Color:       [3]float32{1.2, 1.2, 1.2},
		},
		Scene: SceneSettings{
			Shading:     ShadingPhong,
			ObjectColor: [3]float32{1, 0.5, 0.31},
			CameraPos:   [3]float32{0, 0, 3},
		},
		Log: LogSettings{
			File: "spherelight.log",
		},
	}
}

// Load reads settings from path, falling back to Default when the file
// does not exist. Loaded values are clamped to usable ranges.
func Load(path string) (*Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	s.Clamp()
	return s, nil
}

// Clamp enforces the sphere generator preconditions (radius > 0,
// sectors >= 3, stacks >= 2) and falls back to Phong on an unknown
// shading name, so a bad settings file cannot request degenerate
// geometry.
func (s *Settings) Clamp() {
	if s.Sphere.Radius <= 0 {
		s.Sphere.Radius = 0.5
	}
	if s.Sphere.Sectors < 3 {
		s.Sphere.Sectors = 3
	}
	if s.Sphere.Stacks < 2 {
		s.Sphere.Stacks = 2
	}
	switch s.Scene.Shading {
	case ShadingPhong, ShadingGouraud, ShadingFlat:
	default:
		s.Scene.Shading = ShadingPhong
	}
	if s.Window.Width <= 0 {
		s.Window.Width = 1000
	}
	if s.Window.Height <= 0 {
		s.Window.Height = 800
	}
}
