package gui

import (
	"fmt"

	"spherelight/demo/config"
)

// ShadingMode selects which lighting program the scene uses.
type ShadingMode string

const (
	ShadingPhong   ShadingMode = config.ShadingPhong
	ShadingGouraud ShadingMode = config.ShadingGouraud
	ShadingFlat    ShadingMode = config.ShadingFlat
)

// ParseShadingMode maps a settings-file name to a ShadingMode.
func ParseShadingMode(name string) (ShadingMode, error) {
	switch ShadingMode(name) {
	case ShadingPhong, ShadingGouraud, ShadingFlat:
		return ShadingMode(name), nil
	}
	return "", fmt.Errorf("unknown shading mode %q (want phong, gouraud or flat)", name)
}

// sources returns the vertex/fragment pair for the mode.
func (m ShadingMode) sources() (vertex, fragment string) {
	switch m {
	case ShadingGouraud:
		return gouraudVertexShader, gouraudFragmentShader
	case ShadingFlat:
		return flatVertexShader, flatFragmentShader
	default:
		return phongVertexShader, phongFragmentShader
	}
}
