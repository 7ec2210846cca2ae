package gui

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"spherelight/camera"
)

// Session bundles the per-window state: the window itself, its camera,
// its scene and the mouse/timing bookkeeping. The multi-window demo
// keeps a slice of sessions and steps each one every frame.
type Session struct {
	Window *glfw.Window
	Camera *camera.Camera
	Scene  *Scene

	lastX      float64
	lastY      float64
	firstMouse bool

	deltaTime float64
	lastFrame float64
}

// NewSession wires the window's cursor and scroll callbacks to the
// camera and returns the bundled state.
func NewSession(window *glfw.Window, cam *camera.Camera, scene *Scene) *Session {
	s := &Session{
		Window:     window,
		Camera:     cam,
		Scene:      scene,
		firstMouse: true,
	}

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if s.firstMouse {
			// Swallow the jump from wherever the cursor entered.
			s.lastX = xpos
			s.lastY = ypos
			s.firstMouse = false
		}
		xoffset := xpos - s.lastX
		yoffset := s.lastY - ypos // window y grows downward
		s.lastX = xpos
		s.lastY = ypos
		s.Camera.ProcessMouseMovement(float32(xoffset), float32(yoffset))
	})
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		s.Camera.ProcessMouseScroll(float32(yoff))
	})
	return s
}

// Step renders one frame for this session: makes the context current,
// advances timing, handles held keys and draws the scene.
func (s *Session) Step(now float64) {
	s.Window.MakeContextCurrent()

	s.deltaTime = now - s.lastFrame
	s.lastFrame = now
	s.processInput()

	gl.ClearColor(0.1, 0.1, 0.1, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	width, height := s.Window.GetFramebufferSize()
	if height == 0 {
		height = 1
	}
	projection := mgl32.Perspective(
		mgl32.DegToRad(s.Camera.Zoom),
		float32(width)/float32(height),
		0.1, 100)

	s.Scene.Render(s.Camera, projection, float32(now))

	s.Window.SwapBuffers()
}

func (s *Session) processInput() {
	w := s.Window
	if w.GetKey(glfw.KeyEscape) == glfw.Press {
		w.SetShouldClose(true)
	}

	dt := float32(s.deltaTime)
	if w.GetKey(glfw.KeyW) == glfw.Press {
		s.Camera.ProcessKeyboard(camera.Forward, dt)
	}
	if w.GetKey(glfw.KeyS) == glfw.Press {
		s.Camera.ProcessKeyboard(camera.Backward, dt)
	}
	if w.GetKey(glfw.KeyA) == glfw.Press {
		s.Camera.ProcessKeyboard(camera.Left, dt)
	}
	if w.GetKey(glfw.KeyD) == glfw.Press {
		s.Camera.ProcessKeyboard(camera.Right, dt)
	}
}
