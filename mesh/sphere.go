package mesh

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// VertexStride is the number of floats per emitted vertex:
// x y z nx ny nz.
const VertexStride = 6

// Vertex is one point of the sphere lattice: a position on the sphere
// surface and its outward unit normal.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
}

func (v Vertex) appendTo(dst []float32) []float32 {
	return append(dst,
		v.Position.X(), v.Position.Y(), v.Position.Z(),
		v.Normal.X(), v.Normal.Y(), v.Normal.Z())
}

// GenerateSphere produces the non-indexed triangle vertex buffer of a
// UV sphere centered at the origin. Vertices are interleaved
// position+normal records, VertexStride floats each, three vertices
// per triangle in draw order. Shared lattice vertices are emitted once
// per adjacent triangle; the result feeds glDrawArrays directly.
//
// Callers must pass radius > 0, sectorCount >= 3 and stackCount >= 2;
// the function does not validate and degenerate inputs yield
// degenerate geometry.
func GenerateSphere(radius float32, sectorCount, stackCount int) []float32 {
	lattice := sphereLattice(radius, sectorCount, stackCount)

	out := make([]float32, 0, SphereFloatCount(sectorCount, stackCount))
	for i := 0; i < stackCount; i++ {
		row := i * (sectorCount + 1)
		next := (i + 1) * (sectorCount + 1)
		for j := 0; j < sectorCount; j++ {
			k1 := row + j
			k2 := k1 + 1
			k3 := next + j
			k4 := k3 + 1

			// Row 0 collapses onto the north pole: k1 and k2 coincide
			// there, so the first triangle of the quad is skipped.
			if i != 0 {
				out = lattice[k1].appendTo(out)
				out = lattice[k2].appendTo(out)
				out = lattice[k3].appendTo(out)
			}
			// Same degeneracy at the south pole for the second triangle.
			if i != stackCount-1 {
				out = lattice[k2].appendTo(out)
				out = lattice[k4].appendTo(out)
				out = lattice[k3].appendTo(out)
			}
		}
	}
	return out
}

// sphereLattice builds the (stackCount+1) x (sectorCount+1) vertex
// grid in stack-major order. The stack angle sweeps from +pi/2 (north
// pole) down to -pi/2, the sector angle from 0 to 2pi.
func sphereLattice(radius float32, sectorCount, stackCount int) []Vertex {
	sectorStep := 2 * math32.Pi / float32(sectorCount)
	stackStep := math32.Pi / float32(stackCount)

	verts := make([]Vertex, 0, (stackCount+1)*(sectorCount+1))
	for i := 0; i <= stackCount; i++ {
		stackAngle := math32.Pi/2 - float32(i)*stackStep
		xy := radius * math32.Cos(stackAngle)
		z := radius * math32.Sin(stackAngle)

		for j := 0; j <= sectorCount; j++ {
			sectorAngle := float32(j) * sectorStep

			pos := mgl32.Vec3{
				xy * math32.Cos(sectorAngle),
				xy * math32.Sin(sectorAngle),
				z,
			}
			verts = append(verts, Vertex{
				Position: pos,
				Normal:   pos.Mul(1 / radius),
			})
		}
	}
	return verts
}

// SphereTriangleCount returns the number of triangles GenerateSphere
// emits: two per quad, minus the degenerate row at each pole.
func SphereTriangleCount(sectorCount, stackCount int) int {
	return 2*stackCount*sectorCount - 2*sectorCount
}

// SphereVertexCount returns the number of vertex records GenerateSphere
// emits (three per triangle, duplicates included).
func SphereVertexCount(sectorCount, stackCount int) int {
	return 3 * SphereTriangleCount(sectorCount, stackCount)
}

// SphereFloatCount returns the length of the buffer GenerateSphere
// returns.
func SphereFloatCount(sectorCount, stackCount int) int {
	return VertexStride * SphereVertexCount(sectorCount, stackCount)
}
