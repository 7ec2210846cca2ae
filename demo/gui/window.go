// Package gui carries the window and render-loop glue for the demos:
// GLFW setup, per-window sessions and the lit-sphere scene.
package gui

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Init initializes GLFW and sets the context hints every demo window
// shares. Call once from the main goroutine before CreateWindow;
// pair with glfw.Terminate.
func Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	return nil
}

// CreateWindow opens a window, makes its context current and loads the
// GL function pointers. The returned window captures the cursor for
// mouse look.
func CreateWindow(width, height int, title string) (*glfw.Window, error) {
	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window %q: %w", title, err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("initialize gl for %q: %w", title, err)
	}

	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		w.MakeContextCurrent()
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	})

	gl.Enable(gl.DEPTH_TEST)
	return window, nil
}

// GLVersion reports the version string of the current context.
func GLVersion() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}
