package mesh

import (
	"fmt"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

func vertexAt(buf []float32, i int) (pos, normal mgl32.Vec3) {
	off := i * VertexStride
	pos = mgl32.Vec3{buf[off], buf[off+1], buf[off+2]}
	normal = mgl32.Vec3{buf[off+3], buf[off+4], buf[off+5]}
	return pos, normal
}

func TestGenerateSphereLength(t *testing.T) {
	cases := []struct {
		radius  float32
		sectors int
		stacks  int
	}{
		{1, 3, 2},
		{1, 4, 2},
		{0.5, 24, 12},
		{2, 7, 5},
		{10, 36, 18},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%dx%d", tc.sectors, tc.stacks), func(t *testing.T) {
			buf := GenerateSphere(tc.radius, tc.sectors, tc.stacks)
			want := 18 * (2*tc.stacks*tc.sectors - 2*tc.sectors)
			require.Len(t, buf, want)
			assert.Equal(t, want, SphereFloatCount(tc.sectors, tc.stacks))
			assert.Equal(t, want/VertexStride, SphereVertexCount(tc.sectors, tc.stacks))
			assert.Equal(t, want/18, SphereTriangleCount(tc.sectors, tc.stacks))
		})
	}
}

func TestGenerateSphereVertexInvariants(t *testing.T) {
	const radius = 2.5
	buf := GenerateSphere(radius, 16, 9)
	for i := 0; i < len(buf)/VertexStride; i++ {
		pos, normal := vertexAt(buf, i)
		assert.InDelta(t, 1.0, normal.Len(), tol, "normal %d not unit length", i)
		assert.InDelta(t, radius, pos.Len(), tol, "vertex %d not on sphere", i)
		// Normal must be the outward radial direction.
		assert.InDelta(t, 1.0, normal.Dot(pos)/radius, tol, "normal %d not radial", i)
	}
}

// 4 sectors x 2 stacks is small enough to check by hand: the lattice
// is 3x5 = 15 vertices, the top row skips the first triangle of every
// quad and the bottom row the second, leaving 8 triangles.
func TestGenerateSphereSmallestGrid(t *testing.T) {
	buf := GenerateSphere(1, 4, 2)
	require.Len(t, buf, 144)
	assert.Equal(t, 24, len(buf)/VertexStride)
	assert.Equal(t, 8, len(buf)/18)
}

func TestGenerateSpherePoles(t *testing.T) {
	buf := GenerateSphere(2, 3, 2)

	// The first emitted vertex belongs to the top row and sits on the
	// north pole; the last emitted vertex is the south pole.
	pos, normal := vertexAt(buf, 0)
	assert.InDelta(t, 0, pos.X(), tol)
	assert.InDelta(t, 0, pos.Y(), tol)
	assert.InDelta(t, 2, pos.Z(), tol)
	assert.InDelta(t, 0, normal.X(), tol)
	assert.InDelta(t, 0, normal.Y(), tol)
	assert.InDelta(t, 1, normal.Z(), tol)

	last := len(buf)/VertexStride - 1
	pos, normal = vertexAt(buf, last)
	assert.InDelta(t, 0, pos.X(), tol)
	assert.InDelta(t, 0, pos.Y(), tol)
	assert.InDelta(t, -2, pos.Z(), tol)
	assert.InDelta(t, 0, normal.X(), tol)
	assert.InDelta(t, 0, normal.Y(), tol)
	assert.InDelta(t, -1, normal.Z(), tol)
}

// The pole-row skip rule must leave no zero-area triangles: every
// triangle's three corners are pairwise distinct positions.
func TestGenerateSphereNoDegenerateTriangles(t *testing.T) {
	for _, grid := range [][2]int{{3, 2}, {4, 2}, {24, 12}} {
		buf := GenerateSphere(1, grid[0], grid[1])
		for tri := 0; tri < len(buf)/18; tri++ {
			a, _ := vertexAt(buf, tri*3)
			b, _ := vertexAt(buf, tri*3+1)
			c, _ := vertexAt(buf, tri*3+2)
			assert.Greater(t, a.Sub(b).Len(), float32(tol), "triangle %d edge ab collapsed", tri)
			assert.Greater(t, b.Sub(c).Len(), float32(tol), "triangle %d edge bc collapsed", tri)
			assert.Greater(t, c.Sub(a).Len(), float32(tol), "triangle %d edge ca collapsed", tri)
		}
	}
}

func TestGenerateSphereIdempotent(t *testing.T) {
	first := GenerateSphere(0.5, 24, 12)
	second := GenerateSphere(0.5, 24, 12)
	require.Equal(t, first, second)
}

// Every position in the output must be one of the lattice points, and
// the equator ring of an even-stack sphere must land exactly on z=0
// up to float32 rounding of sin(0).
func TestGenerateSphereEquator(t *testing.T) {
	const radius = 1.0
	buf := GenerateSphere(radius, 8, 4)
	onEquator := 0
	for i := 0; i < len(buf)/VertexStride; i++ {
		pos, _ := vertexAt(buf, i)
		if math32.Abs(pos.Z()) < tol {
			onEquator++
			assert.InDelta(t, radius, mgl32.Vec2{pos.X(), pos.Y()}.Len(), tol)
		}
	}
	assert.NotZero(t, onEquator)
}

func TestCubeVertices(t *testing.T) {
	cube := CubeVertices()
	require.Len(t, cube, 36*VertexStride)
	for i := 0; i < 36; i++ {
		pos, normal := vertexAt(cube, i)
		assert.InDelta(t, 1, normal.Len(), tol, "cube normal %d", i)
		for axis := 0; axis < 3; axis++ {
			assert.InDelta(t, 0.5, math32.Abs(pos[axis]), tol, "cube corner %d axis %d", i, axis)
		}
	}
}
