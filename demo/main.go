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
	"spherelight/mesh"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

func main() {
	cfgPath := flag.String("config", "settings.toml", "path to the settings file")
	shading := flag.String("shading", "", "override shading mode: phong, gouraud or flat")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalln("failed to load settings:", err)
	}
	logger := common.NewLogger(cfg.Log.File, cfg.Log.Debug)
	defer logger.Sync()

	if *shading != "" {
		cfg.Scene.Shading = *shading
	}
	mode, err := gui.ParseShadingMode(cfg.Scene.Shading)
	if err != nil {
		logger.Fatal("bad shading mode", zap.Error(err))
	}

	if err := gui.Init(); err != nil {
		logger.Fatal("glfw init failed", zap.Error(err))
	}
	defer glfw.Terminate()

	window, err := gui.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title)
	if err != nil {
		logger.Fatal("window creation failed", zap.Error(err))
	}
	logger.Info("opengl context ready", zap.String("version", gui.GLVersion()))

	scene, err := gui.NewScene(cfg, mode)
	if err != nil {
		logger.Fatal("scene setup failed", zap.Error(err))
	}
	cam := camera.New(mgl32.Vec3(cfg.Scene.CameraPos))
	session := gui.NewSession(window, cam, scene)

	logger.Info("entering render loop",
		zap.String("shading", string(mode)),
		zap.Int("sphere_triangles", mesh.SphereTriangleCount(cfg.Sphere.Sectors, cfg.Sphere.Stacks)))

	for !window.ShouldClose() {
		session.Step(glfw.GetTime())
		glfw.PollEvents()
	}
	logger.Info("shutting down")
}
