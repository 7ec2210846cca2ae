package canvas

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Shader wraps a linked program and its uniform setters.
type Shader struct {
	ID uint32
}

// NewShader compiles and links a vertex/fragment source pair into a
// usable Shader. Sources must be NUL-terminated.
func NewShader(vertexSrc, fragmentSrc string) (*Shader, error) {
	program, err := NewProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &Shader{ID: program}, nil
}

// Use makes this program the active one.
func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

func (s *Shader) uniform(name string) int32 {
	return gl.GetUniformLocation(s.ID, gl.Str(name+"\x00"))
}

func (s *Shader) SetInt(name string, v int32) {
	gl.Uniform1i(s.uniform(name), v)
}

func (s *Shader) SetFloat(name string, v float32) {
	gl.Uniform1f(s.uniform(name), v)
}

func (s *Shader) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3fv(s.uniform(name), 1, &v[0])
}

func (s *Shader) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(s.uniform(name), 1, false, &m[0])
}
