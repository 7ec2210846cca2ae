// The multiwindow demo opens one window per shading variant so Phong,
// Gouraud and flat shading can be compared side by side. Each window
// is an independent session with its own context, camera and scene;
// the loop steps the live sessions round-robin every frame.
package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"spherelight/camera"
	"spherelight/common"
	"spherelight/demo/config"
	"spherelight/demo/gui"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

var modes = []gui.ShadingMode{gui.ShadingPhong, gui.ShadingGouraud, gui.ShadingFlat}

func main() {
	cfgPath := flag.String("config", "settings.toml", "path to the settings file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalln("failed to load settings:", err)
	}
	logger := common.NewLogger(cfg.Log.File, cfg.Log.Debug)
	defer logger.Sync()

	if err := gui.Init(); err != nil {
		logger.Fatal("glfw init failed", zap.Error(err))
	}
	defer glfw.Terminate()

	sessions := make([]*gui.Session, 0, len(modes))
	for i, mode := range modes {
		window, err := gui.CreateWindow(cfg.Window.Width, cfg.Window.Height,
			cfg.Window.Title+" - "+string(mode))
		if err != nil {
			logger.Fatal("window creation failed", zap.String("shading", string(mode)), zap.Error(err))
		}
		// Fan the windows out so they do not stack on one spot.
		window.SetPos(60+i*(cfg.Window.Width+20), 60)

		scene, err := gui.NewScene(cfg, mode)
		if err != nil {
			logger.Fatal("scene setup failed", zap.String("shading", string(mode)), zap.Error(err))
		}
		cam := camera.New(mgl32.Vec3(cfg.Scene.CameraPos))
		sessions = append(sessions, gui.NewSession(window, cam, scene))
	}
	logger.Info("opengl contexts ready",
		zap.String("version", gui.GLVersion()),
		zap.Int("windows", len(sessions)))

	for {
		alive := false
		now := glfw.GetTime()
		for _, s := range sessions {
			if s.Window.ShouldClose() {
				continue
			}
			alive = true
			s.Step(now)
		}
		if !alive {
			break
		}
		glfw.PollEvents()
	}
	logger.Info("shutting down")
}
