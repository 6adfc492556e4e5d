package gfx

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/jfehr/glint/engine/colors"
)

// Vertex is one triangle corner: position followed by an RGBA color. The
// layout matches the vertex shader's attribute order.
type Vertex struct {
	Pos   mgl32.Vec3
	Color colors.Color
}

// VertexStride is the byte size of one Vertex (3 + 4 float32s).
const VertexStride = 7 * 4

// RenderAdapter hides the graphics backend behind exactly the surface the
// game states need. One concrete implementation exists; the seam is what
// keeps state logic independent of the backend.
//
// Initialize must succeed before any other call; a failure is fatal for the
// session. Cleanup releases every adapter-owned GPU resource and is safe to
// call more than once.
type RenderAdapter interface {
	Initialize(width, height int) error
	Resize(width, height int)
	BeginFrame()
	DrawTriangle(transform mgl32.Mat4, color colors.Color)
	EndFrame()
	Cleanup()
}

// ShaderMatrix converts a transform to the row-vector convention the shaders
// consume: the returned matrix is the transpose of the one passed in. Every
// matrix upload goes through here so the convention lives in one place.
func ShaderMatrix(m mgl32.Mat4) mgl32.Mat4 {
	return m.Transpose()
}
