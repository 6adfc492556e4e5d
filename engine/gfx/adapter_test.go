package gfx

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestShaderMatrix_IsTranspose(t *testing.T) {
	m := mgl32.Mat4{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}

	got := ShaderMatrix(m)

	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			assert.Equal(t, m.At(row, col), got.At(col, row),
				"element (%d,%d) must come from (%d,%d)", col, row, row, col)
		}
	}
}

func TestShaderMatrix_InvolutionAndIdentity(t *testing.T) {
	id := mgl32.Ident4()
	assert.Equal(t, id, ShaderMatrix(id))

	m := mgl32.Translate3D(3, -7, 0).Mul4(mgl32.HomogRotate3DZ(0.5))
	assert.Equal(t, m, ShaderMatrix(ShaderMatrix(m)))
}
