package gui

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"spherelight/camera"
	"spherelight/demo/config"
	"spherelight/demo/lib/canvas"
	"spherelight/mesh"
)

// Scene owns the GL resources of one context: the sphere and light
// cube VAOs and the two programs. Build it with the window's context
// current and render it only on that context.
type Scene struct {
	lighting  *canvas.Shader
	lightCube *canvas.Shader

	sphereVao         uint32
	sphereVertexCount int32
	cubeVao           uint32

	objectColor mgl32.Vec3
	lightColor  mgl32.Vec3
	lightCenter mgl32.Vec3
	orbitRadius float32
	orbitSpeed  float32
}

// NewScene generates the sphere for the configured parameters and
// compiles the programs for the given shading mode.
func NewScene(cfg *config.Settings, mode ShadingMode) (*Scene, error) {
	vertexSrc, fragmentSrc := mode.sources()
	lighting, err := canvas.NewShader(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("%s shader: %w", mode, err)
	}
	lightCube, err := canvas.NewShader(lightCubeVertexShader, lightCubeFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("light cube shader: %w", err)
	}

	sphere := mesh.GenerateSphere(cfg.Sphere.Radius, cfg.Sphere.Sectors, cfg.Sphere.Stacks)

	return &Scene{
		lighting:          lighting,
		lightCube:         lightCube,
		sphereVao:         canvas.MakeLitVao(sphere),
		sphereVertexCount: int32(len(sphere) / mesh.VertexStride),
		cubeVao:           canvas.MakePositionVao(mesh.CubeVertices()),
		objectColor:       mgl32.Vec3(cfg.Scene.ObjectColor),
		lightColor:        mgl32.Vec3(cfg.Light.Color),
		lightCenter:       mgl32.Vec3(cfg.Light.Center),
		orbitRadius:       cfg.Light.OrbitRadius,
		orbitSpeed:        cfg.Light.Speed,
	}, nil
}

// LightPos returns the orbiting light position at time t (seconds).
func (s *Scene) LightPos(t float32) mgl32.Vec3 {
	angle := t * s.orbitSpeed
	return s.lightCenter.Add(mgl32.Vec3{
		math32.Sin(angle) * s.orbitRadius,
		math32.Cos(angle) * s.orbitRadius,
		0,
	})
}

// Render draws the lit sphere and the light marker cube with the
// current per-frame uniforms.
func (s *Scene) Render(cam *camera.Camera, projection mgl32.Mat4, t float32) {
	lightPos := s.LightPos(t)
	view := cam.ViewMatrix()

	s.lighting.Use()
	s.lighting.SetVec3("objectColor", s.objectColor)
	s.lighting.SetVec3("lightColor", s.lightColor)
	s.lighting.SetVec3("lightPos", lightPos)
	s.lighting.SetVec3("viewPos", cam.Position)
	s.lighting.SetMat4("projection", projection)
	s.lighting.SetMat4("view", view)
	s.lighting.SetMat4("model", mgl32.Ident4())

	gl.BindVertexArray(s.sphereVao)
	gl.DrawArrays(gl.TRIANGLES, 0, s.sphereVertexCount)

	s.lightCube.Use()
	s.lightCube.SetMat4("projection", projection)
	s.lightCube.SetMat4("view", view)
	model := mgl32.Translate3D(lightPos.X(), lightPos.Y(), lightPos.Z()).
		Mul4(mgl32.Scale3D(0.2, 0.2, 0.2))
	s.lightCube.SetMat4("model", model)

	gl.BindVertexArray(s.cubeVao)
	gl.DrawArrays(gl.TRIANGLES, 0, 36)
	gl.BindVertexArray(0)
}
