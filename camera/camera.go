// Package camera implements the first-person fly camera shared by the
// demos: yaw/pitch mouse look, WASD translation and scroll zoom.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Movement is a camera-relative translation direction.
type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
)

const (
	defaultYaw         = -90.0
	defaultPitch       = 0.0
	defaultSpeed       = 2.5
	defaultSensitivity = 0.1
	defaultZoom        = 45.0

	pitchLimit = 89.0
	zoomMin    = 1.0
	zoomMax    = 45.0
)

// Camera holds the view state for one window.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	// Euler angles in degrees.
	Yaw   float32
	Pitch float32

	MovementSpeed    float32
	MouseSensitivity float32
	Zoom             float32
}

// New returns a camera at the given position looking down -Z.
func New(position mgl32.Vec3) *Camera {
	c := &Camera{
		Position:         position,
		WorldUp:          mgl32.Vec3{0, 1, 0},
		Yaw:              defaultYaw,
		Pitch:            defaultPitch,
		MovementSpeed:    defaultSpeed,
		MouseSensitivity: defaultSensitivity,
		Zoom:             defaultZoom,
	}
	c.updateVectors()
	return c
}

// ViewMatrix returns the look-at matrix for the current state.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// ProcessKeyboard translates the camera by speed * deltaTime in the
// given camera-relative direction.
func (c *Camera) ProcessKeyboard(direction Movement, deltaTime float32) {
	velocity := c.MovementSpeed * deltaTime
	switch direction {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	}
}

// ProcessMouseMovement applies a cursor delta to yaw and pitch. Pitch
// is clamped so the view never flips over the vertical.
func (c *Camera) ProcessMouseMovement(xoffset, yoffset float32) {
	c.Yaw += xoffset * c.MouseSensitivity
	c.Pitch += yoffset * c.MouseSensitivity

	if c.Pitch > pitchLimit {
		c.Pitch = pitchLimit
	}
	if c.Pitch < -pitchLimit {
		c.Pitch = -pitchLimit
	}
	c.updateVectors()
}

// ProcessMouseScroll narrows or widens the field of view.
func (c *Camera) ProcessMouseScroll(yoffset float32) {
	c.Zoom -= yoffset
	if c.Zoom < zoomMin {
		c.Zoom = zoomMin
	}
	if c.Zoom > zoomMax {
		c.Zoom = zoomMax
	}
}

func (c *Camera) updateVectors() {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)

	front := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
