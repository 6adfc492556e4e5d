package glbackend

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/jfehr/glint/engine/colors"
	"github.com/jfehr/glint/engine/gfx"
)

// TriangleSize is the edge box of the demo triangle in pixels.
const TriangleSize = 200.0

// triangleVertices builds the static mesh centered on the given client
// dimensions. The mesh is built once at adapter initialization and keeps
// these dimensions for its whole lifetime; resizing the window does not
// regenerate it.
func triangleVertices(width, height int) [3]gfx.Vertex {
	cx := float32(width) * 0.5
	cy := float32(height) * 0.5
	const half = TriangleSize / 2

	return [3]gfx.Vertex{
		{Pos: mgl32.Vec3{cx, cy - half, 0}, Color: colors.Red},
		{Pos: mgl32.Vec3{cx - half, cy + half, 0}, Color: colors.Red},
		{Pos: mgl32.Vec3{cx + half, cy + half, 0}, Color: colors.Red},
	}
}

// triangleIndices is the fixed index list for the mesh.
func triangleIndices() [3]uint16 {
	return [3]uint16{0, 1, 2}
}

// flatten packs vertices into the interleaved float layout the VBO expects.
func flatten(verts [3]gfx.Vertex) []float32 {
	out := make([]float32, 0, len(verts)*7)
	for _, v := range verts {
		out = append(out, v.Pos[0], v.Pos[1], v.Pos[2],
			v.Color[0], v.Color[1], v.Color[2], v.Color[3])
	}
	return out
}
