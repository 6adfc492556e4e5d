package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/jfehr/glint/engine/gfx"
	"github.com/jfehr/glint/engine/input"
)

// State is one mode of the demo. Exactly one state is current at any time;
// the application shell calls Update then Draw once per frame and brackets a
// state's lifetime with Enter and Exit.
//
// The input snapshot and the projection are passed in explicitly: the shell
// owns both and states hold no global references.
type State interface {
	Enter()
	Update(dt float32, in input.Snapshot)
	Draw(adapter gfx.RenderAdapter, proj mgl32.Mat4)
	Exit()
}
